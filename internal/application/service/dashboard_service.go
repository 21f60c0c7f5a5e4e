package service

import (
	"context"
	"time"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
)

// DashboardService aggregates the numbers shown on the dashboard
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	itemRepo      repository.ItemRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, itemRepo repository.ItemRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo, itemRepo: itemRepo}
}

// DashboardSummary is the headline card data
type DashboardSummary struct {
	ClientCount           int64            `json:"client_count"`
	ItemCount             int64            `json:"item_count"`
	QuotationCount        int64            `json:"quotation_count"`
	TicketCount           int64            `json:"ticket_count"`
	TotalBilled           float64          `json:"total_billed"`
	MonthlyBilled         float64          `json:"monthly_billed"`
	PendingQuotationValue float64          `json:"pending_quotation_value"`
	QuotationsByStatus    map[string]int64 `json:"quotations_by_status"`
	TicketsByStatus       map[string]int64 `json:"tickets_by_status"`
	LowStockCount         int              `json:"low_stock_count"`
}

// GetSummary computes the dashboard headline numbers
func (s *DashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	counts, err := s.analyticsRepo.GetRecordCounts(ctx)
	if err != nil {
		return nil, err
	}

	totalBilled, err := s.analyticsRepo.GetTotalBilled(ctx)
	if err != nil {
		return nil, err
	}

	monthlyBilled, err := s.analyticsRepo.GetMonthlyBilled(ctx)
	if err != nil {
		return nil, err
	}

	pendingValue, err := s.analyticsRepo.GetPendingQuotationValue(ctx)
	if err != nil {
		return nil, err
	}

	quotationCounts, err := s.analyticsRepo.GetQuotationStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	ticketCounts, err := s.analyticsRepo.GetTicketStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	lowStock, err := s.itemRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}

	summary := &DashboardSummary{
		ClientCount:           counts.Clients,
		ItemCount:             counts.Items,
		QuotationCount:        counts.Quotations,
		TicketCount:           counts.Tickets,
		TotalBilled:           totalBilled,
		MonthlyBilled:         monthlyBilled,
		PendingQuotationValue: pendingValue,
		QuotationsByStatus:    map[string]int64{},
		TicketsByStatus:       map[string]int64{},
		LowStockCount:         len(lowStock),
	}

	quotationNames := []string{"Draft", "Sent", "Accepted", "Declined"}
	for _, c := range quotationCounts {
		if c.Status >= 0 && c.Status < len(quotationNames) {
			summary.QuotationsByStatus[quotationNames[c.Status]] = c.Count
		}
	}
	ticketNames := []string{"Open", "Billed", "Closed", "Canceled"}
	for _, c := range ticketCounts {
		if c.Status >= 0 && c.Status < len(ticketNames) {
			summary.TicketsByStatus[ticketNames[c.Status]] = c.Count
		}
	}

	return summary, nil
}

// GetTopClients returns the highest billed clients
func (s *DashboardService) GetTopClients(ctx context.Context, limit int) ([]repository.TopClientResult, error) {
	if limit < 1 || limit > 50 {
		limit = 5
	}
	return s.analyticsRepo.GetTopClients(ctx, limit)
}

// GetMonthlySales returns billed totals for the last N months
func (s *DashboardService) GetMonthlySales(ctx context.Context, months int) ([]repository.MonthlySalesResult, error) {
	if months < 1 || months > 36 {
		months = 12
	}
	return s.analyticsRepo.GetMonthlySales(ctx, months)
}

// GetHoursByUser returns logged hours per user for a date range,
// defaulting to the current month.
func (s *DashboardService) GetHoursByUser(ctx context.Context, from, to *time.Time) ([]repository.HoursByUserResult, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := now
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}
	return s.analyticsRepo.GetHoursByUser(ctx, start, end)
}

// GetDailyRevenue returns billed totals per day for the last N days,
// defaulting to 30.
func (s *DashboardService) GetDailyRevenue(ctx context.Context, days int) ([]repository.DailyRevenueResult, error) {
	if days < 1 || days > 90 {
		days = 30
	}
	return s.analyticsRepo.GetDailyRevenue(ctx, days)
}

// GetRecentDocuments returns the latest documents across quotations,
// tickets and challans.
func (s *DashboardService) GetRecentDocuments(ctx context.Context, limit int) ([]repository.RecentDocumentResult, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.analyticsRepo.GetRecentDocuments(ctx, limit)
}

// GetLowStockItems returns items at or below their alert level
func (s *DashboardService) GetLowStockItems(ctx context.Context) ([]entity.Item, error) {
	return s.itemRepo.ListLowStock(ctx)
}
