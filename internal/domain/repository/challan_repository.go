package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
)

// ChallanRepository defines the interface for delivery challan data operations
type ChallanRepository interface {
	Create(ctx context.Context, challan *entity.Challan) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challan, error)
	GetByReference(ctx context.Context, reference string) (*entity.Challan, error)
	GetWithGoods(ctx context.Context, id uuid.UUID) (*entity.Challan, error)
	Update(ctx context.Context, challan *entity.Challan) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ChallanFilterParams) ([]entity.Challan, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ChallanStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// ChallanFilterParams contains filtering parameters for challan queries
type ChallanFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.ChallanStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ChallanItemRepository defines the interface for challan goods line operations
type ChallanItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.ChallanItem) error
	GetByChallanID(ctx context.Context, challanID uuid.UUID) ([]entity.ChallanItem, error)
	DeleteByChallanID(ctx context.Context, challanID uuid.UUID) error
}
