package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
)

func TestGetSummaryMapsStatusCounts(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	itemRepo := new(MockItemRepository)
	svc := NewDashboardService(analyticsRepo, itemRepo)

	analyticsRepo.On("GetRecordCounts", mock.Anything).Return(&repository.RecordCounts{
		Clients: 4, Items: 12, Quotations: 7, Tickets: 3,
	}, nil)
	analyticsRepo.On("GetTotalBilled", mock.Anything).Return(45000.0, nil)
	analyticsRepo.On("GetMonthlyBilled", mock.Anything).Return(9000.0, nil)
	analyticsRepo.On("GetPendingQuotationValue", mock.Anything).Return(2500.0, nil)
	analyticsRepo.On("GetQuotationStatusCounts", mock.Anything).Return([]repository.StatusCountResult{
		{Status: 0, Count: 3},
		{Status: 1, Count: 2},
		{Status: 2, Count: 2},
	}, nil)
	analyticsRepo.On("GetTicketStatusCounts", mock.Anything).Return([]repository.StatusCountResult{
		{Status: 0, Count: 1},
		{Status: 3, Count: 2},
	}, nil)
	itemRepo.On("ListLowStock", mock.Anything).Return([]entity.Item{{Name: "Bearing"}}, nil)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(4), summary.ClientCount)
	assert.Equal(t, int64(12), summary.ItemCount)
	assert.Equal(t, 45000.0, summary.TotalBilled)
	assert.Equal(t, 9000.0, summary.MonthlyBilled)
	assert.Equal(t, 2500.0, summary.PendingQuotationValue)
	assert.Equal(t, int64(3), summary.QuotationsByStatus["Draft"])
	assert.Equal(t, int64(2), summary.QuotationsByStatus["Accepted"])
	assert.Equal(t, int64(1), summary.TicketsByStatus["Open"])
	assert.Equal(t, int64(2), summary.TicketsByStatus["Canceled"])
	assert.Equal(t, 1, summary.LowStockCount)
}

func TestGetTopClientsClampsLimit(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	itemRepo := new(MockItemRepository)
	svc := NewDashboardService(analyticsRepo, itemRepo)

	analyticsRepo.On("GetTopClients", mock.Anything, 5).Return([]repository.TopClientResult{}, nil)

	_, err := svc.GetTopClients(context.Background(), 0)
	require.NoError(t, err)
	_, err = svc.GetTopClients(context.Background(), 500)
	require.NoError(t, err)

	analyticsRepo.AssertNumberOfCalls(t, "GetTopClients", 2)
}

func TestGetDailyRevenueDefaultsWindow(t *testing.T) {
	analyticsRepo := new(MockAnalyticsRepository)
	itemRepo := new(MockItemRepository)
	svc := NewDashboardService(analyticsRepo, itemRepo)

	analyticsRepo.On("GetDailyRevenue", mock.Anything, 30).Return([]repository.DailyRevenueResult{
		{Day: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), TotalBilled: 1200},
	}, nil)

	series, err := svc.GetDailyRevenue(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 1200.0, series[0].TotalBilled)
}
