package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
)

func TestCreateTimeLog(t *testing.T) {
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		hours         float64
		description   string
		alreadyLogged float64
		wantCode      int
	}{
		{name: "valid entry", hours: 8, description: "Site inspection", alreadyLogged: 0},
		{name: "fills the day exactly", hours: 4, description: "Assembly work", alreadyLogged: 20},
		{name: "exceeds daily cap", hours: 5, description: "Assembly work", alreadyLogged: 20, wantCode: http.StatusUnprocessableEntity},
		{name: "zero hours", hours: 0, description: "Nothing", wantCode: http.StatusUnprocessableEntity},
		{name: "over 24 in one entry", hours: 25, description: "Marathon", wantCode: http.StatusUnprocessableEntity},
		{name: "blank description", hours: 2, description: "   ", wantCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTimeLogRepository)
			svc := NewTimeLogService(repo)
			userID := uuid.New()

			repo.On("SumHoursForDay", mock.Anything, userID, date).Return(tt.alreadyLogged, nil).Maybe()
			repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.TimeLog")).Return(nil).Maybe()

			log, err := svc.CreateTimeLog(context.Background(), &CreateTimeLogInput{
				UserID:      userID,
				Date:        date,
				Hours:       tt.hours,
				Description: tt.description,
			})

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, apperror.GetAppError(err).Code)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.hours, log.Hours)
			repo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateTimeLogOwnerOnly(t *testing.T) {
	repo := new(MockTimeLogRepository)
	svc := NewTimeLogService(repo)
	ctx := context.Background()
	id := uuid.New()
	owner := uuid.New()
	intruder := uuid.New()

	repo.On("GetByID", ctx, id).Return(&entity.TimeLog{
		ID:     id,
		UserID: owner,
		Date:   time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		Hours:  6,
	}, nil)

	_, err := svc.UpdateTimeLog(ctx, &UpdateTimeLogInput{
		ID:          id,
		UserID:      intruder,
		Date:        time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC),
		Hours:       2,
		Description: "Rework",
	})

	assert.Error(t, err)
	assert.Equal(t, http.StatusForbidden, apperror.GetAppError(err).Code)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateTimeLogAdjustsForExistingHours(t *testing.T) {
	repo := new(MockTimeLogRepository)
	svc := NewTimeLogService(repo)
	ctx := context.Background()
	id := uuid.New()
	owner := uuid.New()
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	// 10 hours on the day, 6 of them from this entry. Raising the entry
	// to 18 keeps the day at 22 and must pass.
	repo.On("GetByID", ctx, id).Return(&entity.TimeLog{
		ID:     id,
		UserID: owner,
		Date:   date,
		Hours:  6,
	}, nil)
	repo.On("SumHoursForDay", ctx, owner, date).Return(10.0, nil)
	repo.On("Update", ctx, mock.AnythingOfType("*entity.TimeLog")).Return(nil)

	log, err := svc.UpdateTimeLog(ctx, &UpdateTimeLogInput{
		ID:          id,
		UserID:      owner,
		Date:        date,
		Hours:       18,
		Description: "Extended shift",
	})

	assert.NoError(t, err)
	assert.Equal(t, 18.0, log.Hours)
}
