package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	cartRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/cart"
	catalogRepo "github.com/m04kA/SMC-YogaStore/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-YogaStore/internal/service/cart/models"
)

// Service сервис корзины
// Все операции выполняются в рамках корзины владельца (ownerID = идентификатор сессии)
type Service struct {
	cartRepo  CartRepository
	classRepo ClassRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(
	cartRepo CartRepository,
	classRepo ClassRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		cartRepo:  cartRepo,
		classRepo: classRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Add добавляет занятие в корзину
// В корзину сохраняется снимок занятия на момент добавления
func (s *Service) Add(ctx context.Context, ownerID string, req *models.AddItemRequest) (*models.CartItemResponse, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}
	classID := strings.TrimSpace(req.ClassID)
	if classID == "" {
		return nil, fmt.Errorf("%w: empty class id", ErrInvalidInput)
	}

	s.logger.Info("Add: adding class id=%s to cart of owner=%s", classID, ownerID)

	class, err := s.classRepo.GetClassByID(ctx, classID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrClassNotFound) {
			s.logger.Warn("Add: class id=%s not found", classID)
			return nil, ErrClassNotFound
		}
		s.logger.Error("Add: catalog error for class id=%s: %v", classID, err)
		return nil, fmt.Errorf("%w: Add - catalog error: %v", ErrInternal, err)
	}

	item, err := s.cartRepo.Create(ctx, &domain.CartItem{
		OwnerID:   ownerID,
		YogaClass: *class,
	})
	if err != nil {
		s.logger.Error("Add: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: cart item id=%s created for owner=%s", item.ID, ownerID)
	return models.FromDomainCartItem(item), nil
}

// Remove удаляет позицию из корзины
func (s *Service) Remove(ctx context.Context, ownerID string, itemID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	if err := s.cartRepo.Delete(ctx, ownerID, itemID); err != nil {
		if errors.Is(err, cartRepo.ErrCartItemNotFound) {
			s.logger.Warn("Remove: cart item id=%s not found for owner=%s", itemID, ownerID)
			return ErrCartItemNotFound
		}
		s.logger.Error("Remove: repository error for cart item id=%s: %v", itemID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: cart item id=%s removed for owner=%s", itemID, ownerID)
	return nil
}

// List возвращает содержимое корзины в порядке добавления
func (s *Service) List(ctx context.Context, ownerID string) (*models.CartResponse, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	items, err := s.cartRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("List: repository error for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCart(items), nil
}

// Clear очищает корзину
// Чтение идентификаторов и удаление выполняются в одной транзакции:
// удаляется ровно прочитанный набор, либо ничего
func (s *Service) Clear(ctx context.Context, ownerID string) (*models.ClearCartResponse, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, fmt.Errorf("%w: empty owner", ErrInvalidInput)
	}

	var removed int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		items, err := s.cartRepo.GetByOwner(txCtx, ownerID)
		if err != nil {
			return err
		}

		removed, err = s.cartRepo.DeleteByIDs(txCtx, ownerID, domain.CartItemIDs(items))
		return err
	})
	if err != nil {
		s.logger.Error("Clear: failed to clear cart of owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Clear - %v", ErrInternal, err)
	}

	s.logger.Info("Clear: removed %d items from cart of owner=%s", removed, ownerID)
	return &models.ClearCartResponse{Removed: removed}, nil
}
