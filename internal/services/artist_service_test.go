// internal/services/artist_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateArtistRejectsCollectorAccounts(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewArtistService(db)

	userID := newTestUUID(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "status"}).
			AddRow(userID.String(), "collector", "active"))

	_, err := svc.CreateArtist(userID, &CreateArtistRequest{Name: "Side Project"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only artist and gallery accounts")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateArtistAllowsAdminAccounts(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewArtistService(db)

	userID := newTestUUID(t)
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "status"}).
			AddRow(userID.String(), "admin", "active"))
	mock.ExpectQuery(`SELECT \* FROM "artists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).
			AddRow(newTestUUID(t).String(), userID.String()))

	// Admin passes the role gate; the existing profile stops the create
	_, err := svc.CreateArtist(userID, &CreateArtistRequest{Name: "House Collection"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}
