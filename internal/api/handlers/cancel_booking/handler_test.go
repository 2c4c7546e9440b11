package cancel_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-YogaStore/internal/service/bookings"
	"github.com/m04kA/SMC-YogaStore/internal/service/bookings/models"
)

const bookingID = "6f1d2b8a-0c44-4b7e-9d3f-1f0c9a7e5b21"

type stubService struct {
	resp   *models.CancelBookingResponse
	err    error
	called int
}

func (s *stubService) Cancel(_ context.Context, id string) (*models.CancelBookingResponse, error) {
	s.called++
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		service    *stubService
		wantStatus int
		wantCalls  int
	}{
		{
			name: "cancelled",
			id:   bookingID,
			service: &stubService{resp: &models.CancelBookingResponse{
				BookingID: bookingID, Status: "cancelled", CancelledItems: 2,
			}},
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "invalid id",
			id:         "42",
			service:    &stubService{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			id:         bookingID,
			service:    &stubService{err: bookings.ErrBookingNotFound},
			wantStatus: http.StatusNotFound,
			wantCalls:  1,
		},
		{
			name:       "internal error",
			id:         bookingID,
			service:    &stubService{err: fmt.Errorf("%w: boom", bookings.ErrInternal)},
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
		{
			name:       "unexpected error",
			id:         bookingID,
			service:    &stubService{err: errors.New("boom")},
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(NewHandler(tt.service, nopLogger{}), tt.id)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, tt.service.called)
		})
	}
}

func TestHandle_ResponseBody(t *testing.T) {
	svc := &stubService{resp: &models.CancelBookingResponse{
		BookingID: bookingID, Status: "cancelled", CancelledItems: 3,
	}}

	rec := doRequest(NewHandler(svc, nopLogger{}), bookingID)
	require.Equal(t, http.StatusOK, rec.Code)

	var body models.CancelBookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, bookingID, body.BookingID)
	assert.Equal(t, "cancelled", body.Status)
	assert.Equal(t, int64(3), body.CancelledItems)
}
