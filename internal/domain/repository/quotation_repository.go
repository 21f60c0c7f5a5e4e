package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
)

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetByReference(ctx context.Context, reference string) (*entity.Quotation, error)
	GetWithGoods(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.QuotationStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// QuotationItemRepository defines the interface for quotation goods line operations
type QuotationItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.QuotationItem) error
	GetByQuotationID(ctx context.Context, quotationID uuid.UUID) ([]entity.QuotationItem, error)
	DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error
}
