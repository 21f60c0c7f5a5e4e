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

type challanRepository struct {
	db *gorm.DB
}

// NewChallanRepository creates a new challan repository
func NewChallanRepository(db *gorm.DB) domainRepo.ChallanRepository {
	return &challanRepository{db: db}
}

func (r *challanRepository) Create(ctx context.Context, challan *entity.Challan) error {
	err := r.db.WithContext(ctx).Create(challan).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domainRepo.ErrDuplicateReference
	}
	return err
}

func (r *challanRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challan, error) {
	var challan entity.Challan
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&challan, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &challan, err
}

func (r *challanRepository) GetByReference(ctx context.Context, reference string) (*entity.Challan, error) {
	var challan entity.Challan
	err := r.db.WithContext(ctx).First(&challan, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &challan, err
}

func (r *challanRepository) GetWithGoods(ctx context.Context, id uuid.UUID) (*entity.Challan, error) {
	var challan entity.Challan
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Goods", func(db *gorm.DB) *gorm.DB {
			return db.Order("sr_no ASC")
		}).
		First(&challan, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &challan, err
}

func (r *challanRepository) Update(ctx context.Context, challan *entity.Challan) error {
	return r.db.WithContext(ctx).Save(challan).Error
}

func (r *challanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Challan{}, "id = ?", id).Error
}

func (r *challanRepository) List(ctx context.Context, params *domainRepo.ChallanFilterParams) ([]entity.Challan, int64, error) {
	var challans []entity.Challan
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Challan{})

	if params.Search != "" {
		query = query.Where("reference ILIKE ? OR client_name ILIKE ? OR destination ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
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
		Order(orderClause(params.SortBy, params.SortOrder, challanSortColumns)).
		Find(&challans).Error

	return challans, total, err
}

func (r *challanRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ChallanStatus) error {
	updates := map[string]interface{}{"status": status}
	if status == enum.ChallanStatusDelivered {
		updates["delivered_at"] = gorm.Expr("NOW()")
	}
	return r.db.WithContext(ctx).Model(&entity.Challan{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *challanRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	var next int
	err := r.db.WithContext(ctx).
		Raw(`SELECT COALESCE(MAX(CAST(SUBSTRING(reference FROM '[0-9]+$') AS INTEGER)), 0) + 1 FROM challans`).
		Scan(&next).Error
	return next, err
}

type challanItemRepository struct {
	db *gorm.DB
}

// NewChallanItemRepository creates a new challan item repository
func NewChallanItemRepository(db *gorm.DB) domainRepo.ChallanItemRepository {
	return &challanItemRepository{db: db}
}

func (r *challanItemRepository) CreateBatch(ctx context.Context, items []entity.ChallanItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *challanItemRepository) GetByChallanID(ctx context.Context, challanID uuid.UUID) ([]entity.ChallanItem, error) {
	var items []entity.ChallanItem
	err := r.db.WithContext(ctx).
		Where("challan_id = ?", challanID).
		Order("sr_no ASC").
		Find(&items).Error
	return items, err
}

func (r *challanItemRepository) DeleteByChallanID(ctx context.Context, challanID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ChallanItem{}, "challan_id = ?", challanID).Error
}
