package cart

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-YogaStore/internal/domain"
	"github.com/m04kA/SMC-YogaStore/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-YogaStore/pkg/dbmetrics"
	"github.com/m04kA/SMC-YogaStore/pkg/psqlbuilder"
	"github.com/m04kA/SMC-YogaStore/pkg/types"
)

// Repository репозиторий корзины
// Все операции ограничены владельцем корзины (owner_id)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория корзины
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет позицию в корзину со снимком занятия
func (r *Repository) Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	classJSON, err := snapshot.EncodeClass(item.YogaClass)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - %w", ErrEncode, err)
	}

	query, args, err := psqlbuilder.Insert(domain.CollectionCart).
		Columns(
			"owner_id",
			"yoga_class_id",
			"yoga_class",
		).
		Values(
			item.OwnerID,
			item.YogaClass.ID,
			classJSON,
		).
		Suffix("RETURNING id, added_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var addedAt types.Timestamp
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&addedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	item.AddedAt = addedAt.Time

	return item, nil
}

// GetByOwner получает позиции корзины владельца в порядке добавления
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы оформление заказа
// и очистка работали ровно с прочитанным набором
func (r *Repository) GetByOwner(ctx context.Context, ownerID string) ([]*domain.CartItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"owner_id",
		"yoga_class",
		"added_at",
	).
		From(domain.CollectionCart).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("added_at ASC", "id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.CartItem, 0)
	for rows.Next() {
		var (
			item      domain.CartItem
			classJSON []byte
			addedAt   types.Timestamp
		)

		if err := rows.Scan(&item.ID, &item.OwnerID, &classJSON, &addedAt); err != nil {
			return nil, fmt.Errorf("%w: GetByOwner - scan cart item: %w", ErrScanRow, err)
		}

		class, err := snapshot.DecodeClass(classJSON)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByOwner - cart item %s: %w", ErrScanRow, item.ID, err)
		}

		item.YogaClass = class
		item.AddedAt = addedAt.Time
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByOwner - rows error: %w", ErrScanRow, err)
	}

	return items, nil
}

// Delete удаляет одну позицию корзины владельца
func (r *Repository) Delete(ctx context.Context, ownerID string, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(domain.CollectionCart).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// DeleteByIDs удаляет ровно переданный набор позиций владельца одним запросом
// Возвращает количество удалённых строк
func (r *Repository) DeleteByIDs(ctx context.Context, ownerID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(domain.CollectionCart).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - build delete query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByIDs - get rows affected: %w", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
