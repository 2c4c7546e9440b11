package clear_cart

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-YogaStore/internal/api/middleware"
	"github.com/m04kA/SMC-YogaStore/internal/service/cart/models"
)

type stubService struct {
	gotOwner string
	resp     *models.ClearCartResponse
	err      error
}

func (s *stubService) Clear(_ context.Context, ownerID string) (*models.ClearCartResponse, error) {
	s.gotOwner = ownerID
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func withSession(r *http.Request, session string) *http.Request {
	return r.WithContext(middleware.WithSessionID(r.Context(), session))
}

func TestHandle_Cleared(t *testing.T) {
	svc := &stubService{resp: &models.ClearCartResponse{Removed: 3}}

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil), "session-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "session-1", svc.gotOwner)
	assert.JSONEq(t, `{"removed":3}`, rec.Body.String())
}

func TestHandle_MissingSession(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{err: errors.New("tx failed")}, nopLogger{}).Handle(rec,
		withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil), "session-1"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
