// internal/handlers/artist_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/artvista/artmarket-backend/internal/services"
)

func newHandlerMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return gdb, mock
}

func TestCreateArtistDuplicateProfileReturnsConflict(t *testing.T) {
	db, mock := newHandlerMockDB(t)
	h := NewArtistHandler(services.NewArtistService(db), nil)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "status"}).
			AddRow(userID.String(), "artist", "active"))
	mock.ExpectQuery(`SELECT \* FROM "artists"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name"}).
			AddRow(uuid.New().String(), userID.String(), "Existing Studio"))

	r := gin.New()
	r.POST("/artists", func(c *gin.Context) {
		c.Set("user_id", userID.String())
		c.Set("role", "artist")
	}, h.CreateArtist)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/artists", strings.NewReader(`{"name":"Second Studio"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "CONFLICT", resp.Error.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
