package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-YogaStore/internal/api/middleware"
	"github.com/m04kA/SMC-YogaStore/internal/domain"
	checkoutUC "github.com/m04kA/SMC-YogaStore/internal/usecase/checkout"
)

type stubUseCase struct {
	got    *checkoutUC.Request
	resp   *checkoutUC.Response
	err    error
	called int
}

func (s *stubUseCase) Execute(_ context.Context, req *checkoutUC.Request) (*checkoutUC.Response, error) {
	s.called++
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	if session != "" {
		req = req.WithContext(middleware.WithSessionID(req.Context(), session))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func sampleResponse(replayed bool) *checkoutUC.Response {
	var ids []string
	if !replayed {
		ids = []string{"ub-1", "ub-2"}
	}
	return &checkoutUC.Response{
		BookingID: "booking-1",
		UserID:    "user-1",
		UserEmail: "anna@example.com",
		Classes: []domain.YogaClass{
			{ID: "c1", TeacherName: "Anna", Date: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), DayOfWeek: domain.Monday},
			{ID: "c2", TeacherName: "Anna", Date: time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC), DayOfWeek: domain.Tuesday},
		},
		TotalClasses:   2,
		Status:         string(domain.StatusPending),
		CheckoutID:     "attempt-1",
		UserBookingIDs: ids,
		Replayed:       replayed,
		CreatedAt:      time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: sampleResponse(false)}

	rec := doRequest(NewHandler(uc, nopLogger{}), "session-1",
		`{"userEmail":"anna@example.com","userName":"Anna","checkoutId":"attempt-1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "session-1", uc.got.OwnerID)
	assert.Equal(t, "anna@example.com", uc.got.UserEmail)
	require.NotNil(t, uc.got.UserName)
	assert.Equal(t, "Anna", *uc.got.UserName)
	assert.Equal(t, "attempt-1", uc.got.CheckoutID)

	var body CheckoutResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "booking-1", body.BookingID)
	assert.Equal(t, 2, body.TotalClasses)
	assert.Len(t, body.Classes, 2)
	assert.Equal(t, "2024-02-05", body.Classes[0].Date)
	assert.Equal(t, []string{"ub-1", "ub-2"}, body.UserBookingIDs)
	assert.False(t, body.Replayed)
	assert.Equal(t, "2024-02-01T12:00:00Z", body.CreatedAt)
}

func TestHandle_Replayed(t *testing.T) {
	uc := &stubUseCase{resp: sampleResponse(true)}

	rec := doRequest(NewHandler(uc, nopLogger{}), "session-1", `{"userEmail":"anna@example.com","checkoutId":"attempt-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body CheckoutResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.True(t, body.Replayed)
	assert.Equal(t, "booking-1", body.BookingID)
	assert.NotNil(t, body.UserBookingIDs)
	assert.Empty(t, body.UserBookingIDs)
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
		{name: "missing session", body: `{"userEmail":"a@b.c"}`, wantStatus: http.StatusUnauthorized},
		{name: "missing email", session: "s", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed json", session: "s", body: `{"userEmail":`, wantStatus: http.StatusBadRequest},
		{
			name: "invalid email", session: "s", body: `{"userEmail":"   "}`,
			err: fmt.Errorf("%w: email is required", checkoutUC.ErrInvalidInput), wantStatus: http.StatusBadRequest, wantCalls: 1,
		},
		{
			name: "empty cart", session: "s", body: `{"userEmail":"a@b.c"}`,
			err: checkoutUC.ErrEmptyCart, wantStatus: http.StatusUnprocessableEntity, wantCalls: 1,
		},
		{
			name: "conflict", session: "s", body: `{"userEmail":"a@b.c","checkoutId":"x"}`,
			err: fmt.Errorf("%w: checkoutId=x", checkoutUC.ErrCheckoutConflict), wantStatus: http.StatusConflict, wantCalls: 1,
		},
		{
			name: "internal", session: "s", body: `{"userEmail":"a@b.c"}`,
			err: fmt.Errorf("%w: db", checkoutUC.ErrInternal), wantStatus: http.StatusInternalServerError, wantCalls: 1,
		},
		{
			name: "unexpected", session: "s", body: `{"userEmail":"a@b.c"}`,
			err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			rec := doRequest(NewHandler(uc, nopLogger{}), tt.session, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, uc.called)
		})
	}
}
