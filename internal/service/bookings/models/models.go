package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	catalogModels "github.com/m04kA/SMC-YogaStore/internal/service/catalog/models"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string                        `json:"id"`
	UserID       string                        `json:"userId"`
	UserEmail    string                        `json:"userEmail"`
	Classes      []catalogModels.ClassResponse `json:"classes"`
	TotalClasses int                           `json:"totalClasses"`
	Status       string                        `json:"status"`

	// Позиции бронирования, заполняются при запросе по ID
	Items []UserBookingResponse `json:"items,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserBookingResponse одна позиция в истории бронирований пользователя
type UserBookingResponse struct {
	ID          string                      `json:"id"`
	BookingID   string                      `json:"bookingId"`
	YogaClassID string                      `json:"yogaClassId"`
	YogaClass   catalogModels.ClassResponse `json:"yogaClass"`
	UserEmail   string                      `json:"userEmail"`
	Status      string                      `json:"status"`
	BookedAt    time.Time                   `json:"bookedAt"`
	AttendedAt  *string                     `json:"attendedAt,omitempty"` // ISO 8601 format
}

// UserBookingListResponse ответ со списком позиций
type UserBookingListResponse struct {
	Bookings []UserBookingResponse `json:"bookings"`
}

// CancelBookingResponse результат отмены бронирования
type CancelBookingResponse struct {
	BookingID      string `json:"bookingId"`
	Status         string `json:"status"`
	CancelledItems int64  `json:"cancelledItems"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		UserEmail:    b.UserEmail,
		Classes:      make([]catalogModels.ClassResponse, 0, len(b.Classes)),
		TotalClasses: b.TotalClasses,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	for i := range b.Classes {
		resp.Classes = append(resp.Classes, *catalogModels.FromDomainClass(&b.Classes[i]))
	}

	return resp
}

// FromDomainUserBooking конвертирует domain модель позиции в DTO
func FromDomainUserBooking(ub *domain.UserBooking) *UserBookingResponse {
	if ub == nil {
		return nil
	}

	resp := &UserBookingResponse{
		ID:          ub.ID,
		BookingID:   ub.BookingID,
		YogaClassID: ub.YogaClassID,
		YogaClass:   *catalogModels.FromDomainClass(&ub.YogaClass),
		UserEmail:   ub.UserEmail,
		Status:      string(ub.Status),
		BookedAt:    ub.BookedAt,
	}

	// Конвертируем AttendedAt в строку ISO 8601
	if ub.AttendedAt != nil {
		attendedStr := ub.AttendedAt.Format(time.RFC3339)
		resp.AttendedAt = &attendedStr
	}

	return resp
}

// FromDomainUserBookingList конвертирует список позиций в DTO
func FromDomainUserBookingList(userBookings []*domain.UserBooking) *UserBookingListResponse {
	resp := &UserBookingListResponse{
		Bookings: make([]UserBookingResponse, 0, len(userBookings)),
	}

	for _, ub := range userBookings {
		if ubResp := FromDomainUserBooking(ub); ubResp != nil {
			resp.Bookings = append(resp.Bookings, *ubResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(strings.ToLower(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
