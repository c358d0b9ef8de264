// internal/handlers/handlers_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artvista/artmarket-backend/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetArtworkRejectsMalformedID(t *testing.T) {
	h := NewArtworkHandler(nil, nil)

	r := gin.New()
	r.GET("/artworks/:id", h.GetArtwork)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/artworks/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "BAD_REQUEST", resp.Error.Code)
}

func TestAddFavoriteRejectsMalformedID(t *testing.T) {
	h := NewFavoriteHandler(nil)

	r := gin.New()
	r.POST("/favorites/:artworkId", h.AddFavorite)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/favorites/123", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, decodeResponse(t, w).Success)
}

func TestCreateOrderRejectsInvalidJSON(t *testing.T) {
	h := NewOrderHandler(nil)

	r := gin.New()
	r.POST("/orders", h.CreateOrder)

	req := httptest.NewRequest("POST", "/orders", nil)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteReviewRejectsMalformedID(t *testing.T) {
	h := NewReviewHandler(nil)

	r := gin.New()
	r.DELETE("/reviews/:id", h.DeleteReview)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/reviews/xyz", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
