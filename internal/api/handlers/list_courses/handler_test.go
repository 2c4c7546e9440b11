package list_courses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
)

type stubService struct {
	resp *models.CourseListResponse
	err  error
}

func (s *stubService) ListCourses(context.Context) (*models.CourseListResponse, error) {
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &stubService{resp: &models.CourseListResponse{Courses: []models.CourseResponse{{ID: "a"}, {ID: "b"}}}}

	rec := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.CourseResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "a", body[0].ID)
}

func TestHandle_InternalError(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{err: errors.New("db down")}, nopLogger{}).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
