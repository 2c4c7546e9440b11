package search_classes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-YogaStore/internal/service/catalog"
	"github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
)

type stubService struct {
	gotQuery string
	resp     *models.ClassListResponse
	err      error
}

func (s *stubService) Search(_ context.Context, query string) (*models.ClassListResponse, error) {
	s.gotQuery = query
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{resp: &models.ClassListResponse{Classes: []models.ClassResponse{
		{ID: "c1", DayOfWeek: "Tuesday"},
		{ID: "c2", DayOfWeek: "Tuesday"},
	}}}

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/classes/search?q=Tuesday", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tuesday", svc.gotQuery)

	var body []models.ClassResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Len(t, body, 2)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "empty query", err: fmt.Errorf("%w: empty search query", catalog.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			NewHandler(&stubService{err: tt.err}, nopLogger{}).Handle(rec,
				httptest.NewRequest(http.MethodGet, "/api/v1/classes/search", nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
