package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TopClientResult represents a client's billed totals
type TopClientResult struct {
	ClientID    uuid.UUID
	ClientName  string
	TotalBilled float64
	TicketCount int
}

// MonthlySalesResult represents billed sales aggregated by month
type MonthlySalesResult struct {
	Month       time.Time
	TotalBilled float64
	TicketCount int
}

// HoursByUserResult represents logged hours aggregated per user
type HoursByUserResult struct {
	UserID     uuid.UUID
	UserName   string
	TotalHours float64
	EntryCount int
}

// StatusCountResult represents document counts grouped by status
type StatusCountResult struct {
	Status int
	Count  int64
}

// RecordCounts holds headline row counts for the dashboard
type RecordCounts struct {
	Clients    int64
	Items      int64
	Quotations int64
	Tickets    int64
}

// DailyRevenueResult represents billed totals per day
type DailyRevenueResult struct {
	Day         time.Time
	TotalBilled float64
}

// RecentDocumentResult is one row of the recent activity feed
type RecentDocumentResult struct {
	Kind       string
	ID         uuid.UUID
	Reference  string
	ClientName string
	Date       time.Time
	GrandTotal float64
	Status     int
	CreatedAt  time.Time
}

// AnalyticsRepository defines interface for analytics/aggregation queries
type AnalyticsRepository interface {
	// GetTopClients returns top clients by billed ticket totals
	GetTopClients(ctx context.Context, limit int) ([]TopClientResult, error)

	// GetMonthlySales returns billed totals for the last N months
	GetMonthlySales(ctx context.Context, months int) ([]MonthlySalesResult, error)

	// GetHoursByUser returns logged hours per user within a date range
	GetHoursByUser(ctx context.Context, from, to time.Time) ([]HoursByUserResult, error)

	// GetQuotationStatusCounts returns quotation counts grouped by status
	GetQuotationStatusCounts(ctx context.Context) ([]StatusCountResult, error)

	// GetTicketStatusCounts returns ticket counts grouped by status
	GetTicketStatusCounts(ctx context.Context) ([]StatusCountResult, error)

	// GetTotalBilled returns the billed total across closed and billed tickets
	GetTotalBilled(ctx context.Context) (float64, error)

	// GetMonthlyBilled returns the billed total for the current month
	GetMonthlyBilled(ctx context.Context) (float64, error)

	// GetPendingQuotationValue returns the grand total of quotations still awaiting a response
	GetPendingQuotationValue(ctx context.Context) (float64, error)

	// GetRecordCounts returns row counts for clients, items, quotations and tickets
	GetRecordCounts(ctx context.Context) (*RecordCounts, error)

	// GetDailyRevenue returns billed totals per day for the last N days
	GetDailyRevenue(ctx context.Context, days int) ([]DailyRevenueResult, error)

	// GetRecentDocuments returns the latest quotations, tickets and challans interleaved
	GetRecentDocuments(ctx context.Context, limit int) ([]RecentDocumentResult, error)
}
