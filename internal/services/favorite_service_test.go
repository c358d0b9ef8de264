// internal/services/favorite_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFavorited(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	userID := newTestUUID(t)
	artworkID := newTestUUID(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	favorited, err := svc.IsFavorited(userID, artworkID)
	require.NoError(t, err)
	assert.True(t, favorited)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsFavoritedWhenAbsent(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "favorites"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	favorited, err := svc.IsFavorited(newTestUUID(t), newTestUUID(t))
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	// Soft delete translates to an UPDATE on deleted_at
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "favorites" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := svc.RemoveFavorite(newTestUUID(t), newTestUUID(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveFavorite(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "favorites" SET "deleted_at"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.RemoveFavorite(newTestUUID(t), newTestUUID(t))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
