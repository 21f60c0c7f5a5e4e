package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	domainRepo "github.com/udyogbooks/backoffice-api/internal/domain/repository"
)

type timeLogRepository struct {
	db *gorm.DB
}

// NewTimeLogRepository creates a new time log repository
func NewTimeLogRepository(db *gorm.DB) domainRepo.TimeLogRepository {
	return &timeLogRepository{db: db}
}

func (r *timeLogRepository) Create(ctx context.Context, log *entity.TimeLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *timeLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TimeLog, error) {
	var log entity.TimeLog
	err := r.db.WithContext(ctx).
		Preload("Client").
		First(&log, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &log, err
}

func (r *timeLogRepository) Update(ctx context.Context, log *entity.TimeLog) error {
	return r.db.WithContext(ctx).Save(log).Error
}

func (r *timeLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.TimeLog{}, "id = ?", id).Error
}

func (r *timeLogRepository) List(ctx context.Context, params *domainRepo.TimeLogFilterParams) ([]entity.TimeLog, int64, error) {
	var logs []entity.TimeLog
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.TimeLog{})

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}

	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}

	if params.From != nil {
		query = query.Where("date >= ?", *params.From)
	}

	if params.To != nil {
		query = query.Where("date <= ?", *params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("User").
		Preload("Client").
		Order(orderClause(params.SortBy, params.SortOrder, timeLogSortColumns)).
		Find(&logs).Error

	return logs, total, err
}

func (r *timeLogRepository) SumHoursForDay(ctx context.Context, userID uuid.UUID, date time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&entity.TimeLog{}).
		Select("COALESCE(SUM(hours), 0)").
		Where("user_id = ? AND date = ?", userID, date.Format("2006-01-02")).
		Scan(&total).Error
	return total, err
}

func (r *timeLogRepository) DailyTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domainRepo.DailyHoursResult, error) {
	var results []domainRepo.DailyHoursResult
	err := r.db.WithContext(ctx).Model(&entity.TimeLog{}).
		Select("date as day, COALESCE(SUM(hours), 0) as total_hours, COUNT(id) as entry_count").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Group("date").
		Order("date ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
