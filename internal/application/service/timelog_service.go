package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
)

// maxHoursPerDay caps the total hours a user can log on one date.
const maxHoursPerDay = 24

// TimeLogService handles time logging operations
type TimeLogService struct {
	timeLogRepo repository.TimeLogRepository
}

// NewTimeLogService creates a new time log service
func NewTimeLogService(timeLogRepo repository.TimeLogRepository) *TimeLogService {
	return &TimeLogService{timeLogRepo: timeLogRepo}
}

// CreateTimeLogInput represents the input for logging time
type CreateTimeLogInput struct {
	UserID      uuid.UUID
	ClientID    *uuid.UUID
	TicketID    *uuid.UUID
	Date        time.Time
	Hours       float64
	Description string
}

// CreateTimeLog records hours against a date. A single entry must be
// positive and no date may accumulate more than 24 hours.
func (s *TimeLogService) CreateTimeLog(ctx context.Context, input *CreateTimeLogInput) (*entity.TimeLog, error) {
	if err := validateTimeLog(input.Hours, input.Description); err != nil {
		return nil, err
	}

	logged, err := s.timeLogRepo.SumHoursForDay(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, err
	}
	if logged+input.Hours > maxHoursPerDay {
		return nil, apperror.NewUnprocessableError("total hours for the day cannot exceed 24")
	}

	log := &entity.TimeLog{
		UserID:      input.UserID,
		ClientID:    input.ClientID,
		TicketID:    input.TicketID,
		Date:        input.Date,
		Hours:       input.Hours,
		Description: input.Description,
	}

	if err := s.timeLogRepo.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// GetTimeLog retrieves a time log by ID
func (s *TimeLogService) GetTimeLog(ctx context.Context, id uuid.UUID) (*entity.TimeLog, error) {
	log, err := s.timeLogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, apperror.NewNotFoundError("Time log")
	}
	return log, nil
}

// ListTimeLogsInput represents the input for listing time logs
type ListTimeLogsInput struct {
	Pagination *pagination.Params
	UserID     *uuid.UUID
	ClientID   *uuid.UUID
	From       *time.Time
	To         *time.Time
	SortBy     string
	SortOrder  string
}

// ListTimeLogs lists time logs with filtering
func (s *TimeLogService) ListTimeLogs(ctx context.Context, input *ListTimeLogsInput) (*pagination.Result[entity.TimeLog], error) {
	params := &repository.TimeLogFilterParams{
		Pagination: input.Pagination,
		UserID:     input.UserID,
		ClientID:   input.ClientID,
		From:       input.From,
		To:         input.To,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	logs, total, err := s.timeLogRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.New(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewResult(logs, pag), nil
}

// UpdateTimeLogInput represents the input for updating a time log
type UpdateTimeLogInput struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	ClientID    *uuid.UUID
	TicketID    *uuid.UUID
	Date        time.Time
	Hours       float64
	Description string
}

// UpdateTimeLog updates an existing time log. Only the owner can edit
// their own entries.
func (s *TimeLogService) UpdateTimeLog(ctx context.Context, input *UpdateTimeLogInput) (*entity.TimeLog, error) {
	log, err := s.timeLogRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, apperror.NewNotFoundError("Time log")
	}
	if log.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if err := validateTimeLog(input.Hours, input.Description); err != nil {
		return nil, err
	}

	logged, err := s.timeLogRepo.SumHoursForDay(ctx, log.UserID, input.Date)
	if err != nil {
		return nil, err
	}
	// The entry being edited already counts toward the same day.
	if sameDay(log.Date, input.Date) {
		logged -= log.Hours
	}
	if logged+input.Hours > maxHoursPerDay {
		return nil, apperror.NewUnprocessableError("total hours for the day cannot exceed 24")
	}

	log.ClientID = input.ClientID
	log.TicketID = input.TicketID
	log.Date = input.Date
	log.Hours = input.Hours
	log.Description = input.Description

	if err := s.timeLogRepo.Update(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// GetDailySummary totals a user's hours per day over a date range,
// defaulting to the current month.
func (s *TimeLogService) GetDailySummary(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]repository.DailyHoursResult, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}
	return s.timeLogRepo.DailyTotals(ctx, userID, start, end)
}

// DeleteTimeLog deletes a time log. Only the owner can delete their
// own entries.
func (s *TimeLogService) DeleteTimeLog(ctx context.Context, userID, id uuid.UUID) error {
	log, err := s.timeLogRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if log == nil {
		return apperror.NewNotFoundError("Time log")
	}
	if log.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.timeLogRepo.Delete(ctx, id)
}

func validateTimeLog(hours float64, description string) error {
	if hours <= 0 || hours > maxHoursPerDay {
		return apperror.NewUnprocessableError("hours must be greater than 0 and at most 24")
	}
	if strings.TrimSpace(description) == "" {
		return apperror.NewUnprocessableError("description is required")
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
