// internal/services/review_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculateRating(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewReviewService(db)

	artworkID := newTestUUID(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) as count, COALESCE\(AVG\(rating\), 0\) as avg FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg"}).AddRow(4, 4.375))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "artworks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.recalculateRating(db, artworkID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecalculateRatingNoReviews(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewReviewService(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) as count, COALESCE\(AVG\(rating\), 0\) as avg FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg"}).AddRow(0, 0.0))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "artworks" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.recalculateRating(db, newTestUUID(t))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	svc := NewReviewService(nil)

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.CreateReview(newTestUUID(t), newTestUUID(t), &CreateReviewRequest{Rating: rating})
		assert.Error(t, err, "rating %d should be rejected", rating)
	}
}
