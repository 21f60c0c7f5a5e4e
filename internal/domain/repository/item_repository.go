package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
)

// ItemRepository defines the interface for inventory item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	CreateBatch(ctx context.Context, items []entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	GetByHSNSACCode(ctx context.Context, code string) (*entity.Item, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.Params, search string) ([]entity.Item, int64, error)
	ListLowStock(ctx context.Context) ([]entity.Item, error)
	// AdjustQuantityBatch changes stock by the given deltas, which may
	// be negative, applying every one in a single transaction. A
	// failure rolls back all of them.
	AdjustQuantityBatch(ctx context.Context, deltas map[uuid.UUID]float64) error
}
