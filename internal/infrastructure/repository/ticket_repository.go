package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	domainRepo "github.com/udyogbooks/backoffice-api/internal/domain/repository"
)

type ticketRepository struct {
	db *gorm.DB
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(db *gorm.DB) domainRepo.TicketRepository {
	return &ticketRepository{db: db}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	err := r.db.WithContext(ctx).Create(ticket).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateReference
	}
	return err
}

func (r *ticketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *ticketRepository) GetByReference(ctx context.Context, reference string) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := r.db.WithContext(ctx).First(&ticket, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *ticketRepository) GetWithGoods(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Goods", func(db *gorm.DB) *gorm.DB {
			return db.Order("sr_no ASC")
		}).
		First(&ticket, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ticket, err
}

func (r *ticketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *ticketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Ticket{}, "id = ?", id).Error
}

func (r *ticketRepository) List(ctx context.Context, params *domainRepo.TicketFilterParams) ([]entity.Ticket, int64, error) {
	var tickets []entity.Ticket
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Ticket{})

	if params.Search != "" {
		query = query.Where("reference ILIKE ? OR client_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Client").
		Order(orderClause(params.SortBy, params.SortOrder, ticketSortColumns)).
		Find(&tickets).Error

	return tickets, total, err
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TicketStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Ticket{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *ticketRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(CAST(SUBSTRING(reference FROM '[0-9]+$') AS INTEGER)), 0) + 1 FROM tickets`).
		Scan(&next).Error
	return next, err
}

type ticketItemRepository struct {
	db *gorm.DB
}

// NewTicketItemRepository creates a new ticket item repository
func NewTicketItemRepository(db *gorm.DB) domainRepo.TicketItemRepository {
	return &ticketItemRepository{db: db}
}

func (r *ticketItemRepository) CreateBatch(ctx context.Context, items []entity.TicketItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *ticketItemRepository) GetByTicketID(ctx context.Context, ticketID uuid.UUID) ([]entity.TicketItem, error) {
	var items []entity.TicketItem
	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("sr_no ASC").
		Find(&items).Error
	return items, err
}

func (r *ticketItemRepository) DeleteByTicketID(ctx context.Context, ticketID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.TicketItem{}, "ticket_id = ?", ticketID).Error
}
