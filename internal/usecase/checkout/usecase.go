package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	bookingRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/booking"
	userRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/user"
	"github.com/m04kA/SMC-YogaStore/internal/integrations/events"
	"github.com/m04kA/SMC-YogaStore/pkg/txmanager"
)

// UseCase use case оформления заказа: корзина -> бронирование
type UseCase struct {
	bookingRepo BookingRepository
	cartRepo    CartRepository
	userRepo    UserRepository
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     MetricsRecorder
	idProvider  IDProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cartRepo CartRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		idProvider:  &UUIDProvider{},
		logger:      logger,
	}
}

// Execute выполняет оформление заказа
// Чтение корзины, поиск/создание пользователя, запись бронирования и его позиций
// и очистка корзины выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, outcome, err := uc.execute(ctx, req)
	uc.metrics.IncCheckout(outcome)
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, string, error) {
	// 1. Валидация входных данных, до любых обращений к хранилищу
	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, OutcomeInvalidInput, err
	}

	if req.CheckoutID == "" {
		req.CheckoutID = uc.idProvider.NewID()
	}
	key := checkoutKey(req.OwnerID, req.UserEmail, req.CheckoutID)

	uc.logger.Info("Checkout: owner=%s, email=%s, checkoutId=%s", req.OwnerID, req.UserEmail, req.CheckoutID)

	var (
		result       *domain.Booking
		userBookings []*domain.UserBooking
		replayed     bool
	)

	// 2. Все операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Повтор уже выполненной попытки возвращает готовое бронирование
		existing, err := uc.bookingRepo.GetByCheckoutKey(txCtx, key)
		if err == nil {
			result = existing
			replayed = true
			return nil
		}
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return fmt.Errorf("%w: failed to look up checkout key: %w", ErrInternal, err)
		}

		// 2.2. Читаем корзину с блокировкой строк (FOR UPDATE)
		items, err := uc.cartRepo.GetByOwner(txCtx, req.OwnerID)
		if err != nil {
			return fmt.Errorf("%w: failed to read cart: %w", ErrInternal, err)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		// 2.3. Находим пользователя по email или создаём нового
		user, err := uc.resolveUser(txCtx, req)
		if err != nil {
			return err
		}

		// 2.4. Создаём бронирование со снимками занятий из корзины
		booking := domain.NewBooking(user.ID, req.UserEmail, key, domain.ClassesFromCart(items))

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrCheckoutConflict) {
				return ErrCheckoutConflict
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		// 2.5. Одна позиция на каждое занятие
		userBookings, err = uc.bookingRepo.CreateUserBookings(txCtx, domain.NewUserBookings(created))
		if err != nil {
			return fmt.Errorf("%w: failed to create user bookings: %w", ErrInternal, err)
		}

		// 2.6. Удаляем ровно прочитанные позиции корзины
		removed, err := uc.cartRepo.DeleteByIDs(txCtx, req.OwnerID, domain.CartItemIDs(items))
		if err != nil {
			return fmt.Errorf("%w: failed to clear cart: %w", ErrInternal, err)
		}
		if removed != int64(len(items)) {
			return fmt.Errorf("%w: cart changed during checkout: removed %d of %d items", ErrInternal, removed, len(items))
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyCart):
			uc.logger.Warn("Checkout: cart of owner=%s is empty", req.OwnerID)
			return nil, OutcomeEmptyCart, err
		case errors.Is(err, ErrCheckoutConflict), errors.Is(err, txmanager.ErrSerialization):
			uc.logger.Warn("Checkout: concurrent checkout for owner=%s, checkoutId=%s: %v", req.OwnerID, req.CheckoutID, err)
			return nil, OutcomeConflict, fmt.Errorf("%w: checkoutId=%s", ErrCheckoutConflict, req.CheckoutID)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("Checkout: failed for owner=%s: %v", req.OwnerID, err)
			return nil, OutcomeError, err
		default:
			uc.logger.Error("Checkout: transaction failed for owner=%s: %v", req.OwnerID, err)
			return nil, OutcomeError, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	if replayed {
		uc.logger.Info("Checkout: checkoutId=%s already completed as booking id=%s", req.CheckoutID, result.ID)
		return newResponse(result, req.CheckoutID, nil, true), OutcomeReplayed, nil
	}

	// 3. Событие публикуется после коммита; ошибка публикации не откатывает заказ
	if err := uc.publisher.PublishBookingCreated(ctx, events.NewBookingCreatedEvent(result)); err != nil {
		uc.logger.Warn("Checkout: booking id=%s created but event was not published: %v", result.ID, err)
	}

	uc.logger.Info("Checkout: successfully created booking id=%s with %d classes", result.ID, result.TotalClasses)
	return newResponse(result, req.CheckoutID, userBookings, false), OutcomeSuccess, nil
}

// resolveUser находит пользователя по точному email (первый по created_at) или создаёт нового
func (uc *UseCase) resolveUser(ctx context.Context, req *Request) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.UserEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: failed to look up user: %w", ErrInternal, err)
	}

	created, err := uc.userRepo.Create(ctx, &domain.User{
		Email: req.UserEmail,
		Name:  req.UserName,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create user: %w", ErrInternal, err)
	}

	uc.logger.Info("Checkout: created user id=%s for email=%s", created.ID, req.UserEmail)
	return created, nil
}
