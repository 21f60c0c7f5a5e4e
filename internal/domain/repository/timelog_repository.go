package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
)

// TimeLogRepository defines the interface for time log data operations
type TimeLogRepository interface {
	Create(ctx context.Context, log *entity.TimeLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TimeLog, error)
	Update(ctx context.Context, log *entity.TimeLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *TimeLogFilterParams) ([]entity.TimeLog, int64, error)
	// SumHoursForDay totals hours the user has already logged on a date.
	SumHoursForDay(ctx context.Context, userID uuid.UUID, date time.Time) (float64, error)
	// DailyTotals totals a user's hours per calendar day within a range.
	DailyTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]DailyHoursResult, error)
}

// DailyHoursResult represents hours totaled per calendar day
type DailyHoursResult struct {
	Day        time.Time
	TotalHours float64
	EntryCount int
}

// TimeLogFilterParams contains filtering parameters for time log queries
type TimeLogFilterParams struct {
	Pagination *pagination.Params
	UserID     *uuid.UUID
	ClientID   *uuid.UUID
	From       *time.Time
	To         *time.Time
	SortBy     string
	SortOrder  string
}
