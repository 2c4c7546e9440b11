package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	bookingRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/booking"
	"github.com/m04kA/SMC-YogaStore/internal/integrations/events"
	"github.com/m04kA/SMC-YogaStore/internal/service/bookings/models"
	"github.com/m04kA/SMC-YogaStore/pkg/validation"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	publisher   EventPublisher
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		logger:      logger,
	}
}

// ListByEmail получает историю бронирований пользователя по email, сначала новые
// Отсутствие бронирований - пустой список, а не ошибка
func (s *Service) ListByEmail(ctx context.Context, email string) (*models.UserBookingListResponse, error) {
	email = strings.TrimSpace(email)
	if err := validateEmail(email); err != nil {
		s.logger.Warn("ListByEmail: invalid email %q: %v", email, err)
		return nil, err
	}

	s.logger.Info("ListByEmail: fetching bookings for email=%s", email)

	userBookings, err := s.bookingRepo.GetUserBookingsByEmail(ctx, email)
	if err != nil {
		s.logger.Error("ListByEmail: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: ListByEmail - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByEmail: successfully fetched %d bookings for email=%s", len(userBookings), email)
	return models.FromDomainUserBookingList(userBookings), nil
}

// GetByID получает бронирование по ID вместе с его позициями
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	items, err := s.bookingRepo.GetUserBookingsByBookingID(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: repository error for items of booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(booking)
	resp.Items = models.FromDomainUserBookingList(items).Bookings

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return resp, nil
}

// Cancel отменяет бронирование
// В одной транзакции: статус бронирования -> cancelled, затем все позиции
// с booking_id = id -> cancelled. Повторная отмена безопасна.
func (s *Service) Cancel(ctx context.Context, bookingID string) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	var cancelledItems int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(txCtx, bookingID, domain.StatusCancelled); err != nil {
			return err
		}

		var err error
		cancelledItems, err = s.bookingRepo.CancelUserBookings(txCtx, bookingID)
		return err
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to cancel booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - %v", ErrInternal, err)
	}

	// Событие публикуется после коммита; ошибка публикации не откатывает отмену
	if err := s.publisher.PublishBookingCancelled(ctx, events.NewBookingCancelledEvent(bookingID, cancelledItems)); err != nil {
		s.logger.Warn("Cancel: booking id=%s cancelled but event was not published: %v", bookingID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s with %d items", bookingID, cancelledItems)
	return &models.CancelBookingResponse{
		BookingID:      bookingID,
		Status:         string(domain.StatusCancelled),
		CancelledItems: cancelledItems,
	}, nil
}

// UpdateStatus обновляет статус бронирования
// Позиции бронирования не затрагиваются
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, bookingID)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", bookingID, newStatus)
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if err := validation.Email(email, domain.MaxEmailLength); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, validation.Message(err))
	}
	return nil
}
