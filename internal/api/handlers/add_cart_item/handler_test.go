package add_cart_item

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-YogaStore/internal/api/middleware"
	"github.com/m04kA/SMC-YogaStore/internal/service/cart"
	"github.com/m04kA/SMC-YogaStore/internal/service/cart/models"
	catalogModels "github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
)

type stubService struct {
	gotOwner string
	gotReq   *models.AddItemRequest
	resp     *models.CartItemResponse
	err      error
	called   int
}

func (s *stubService) Add(_ context.Context, ownerID string, req *models.AddItemRequest) (*models.CartItemResponse, error) {
	s.called++
	s.gotOwner = ownerID
	s.gotReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body))
	if session != "" {
		req = req.WithContext(middleware.WithSessionID(req.Context(), session))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &stubService{resp: &models.CartItemResponse{
		ID:        "item-1",
		YogaClass: catalogModels.ClassResponse{ID: "class-1", TeacherName: "Anna"},
		AddedAt:   time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}}

	rec := doRequest(NewHandler(svc, nopLogger{}), "session-1", `{"classId":"class-1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "session-1", svc.gotOwner)
	assert.Equal(t, "class-1", svc.gotReq.ClassID)

	var body models.CartItemResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "item-1", body.ID)
	assert.Equal(t, "Anna", body.YogaClass.TeacherName)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		session    string
		body       string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{name: "missing session", body: `{"classId":"class-1"}`, wantStatus: http.StatusUnauthorized},
		{name: "missing classId", session: "s", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", session: "s", body: `{"classId":`, wantStatus: http.StatusBadRequest},
		{name: "blank classId", session: "s", body: `{"classId":"  "}`, err: cart.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantCalls: 1},
		{name: "unknown class", session: "s", body: `{"classId":"nope"}`, err: cart.ErrClassNotFound, wantStatus: http.StatusNotFound, wantCalls: 1},
		{name: "internal", session: "s", body: `{"classId":"c"}`, err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := doRequest(NewHandler(svc, nopLogger{}), tt.session, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.called)
		})
	}
}
