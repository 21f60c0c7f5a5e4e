package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
)

// TicketRepository defines the interface for sales ticket data operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	GetByReference(ctx context.Context, reference string) (*entity.Ticket, error)
	GetWithGoods(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	Update(ctx context.Context, ticket *entity.Ticket) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TicketFilterParams) ([]entity.Ticket, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TicketStatus) error
	GetNextReferenceNumber(ctx context.Context) (int, error)
}

// TicketFilterParams contains filtering parameters for ticket queries
type TicketFilterParams struct {
	Pagination *pagination.Params
	Search     string
	Status     *enum.TicketStatus
	ClientID   *uuid.UUID
	SortBy     string
	SortOrder  string
}

// TicketItemRepository defines the interface for ticket goods line operations
type TicketItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.TicketItem) error
	GetByTicketID(ctx context.Context, ticketID uuid.UUID) ([]entity.TicketItem, error)
	DeleteByTicketID(ctx context.Context, ticketID uuid.UUID) error
}
