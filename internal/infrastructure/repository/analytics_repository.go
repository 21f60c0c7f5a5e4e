package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domainRepo "github.com/udyogbooks/backoffice-api/internal/domain/repository"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetTopClients(ctx context.Context, limit int) ([]domainRepo.TopClientResult, error) {
	var results []domainRepo.TopClientResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as client_id,
			c.name as client_name,
			COALESCE(SUM(t.grand_total), 0) as total_billed,
			COUNT(t.id) as ticket_count
		FROM tickets t
		JOIN clients c ON c.id = t.client_id
		WHERE t.status IN (1, 2) AND t.deleted_at IS NULL
		GROUP BY c.id, c.name
		ORDER BY total_billed DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetMonthlySales(ctx context.Context, months int) ([]domainRepo.MonthlySalesResult, error) {
	var results []domainRepo.MonthlySalesResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('month', t.date) as month,
			COALESCE(SUM(t.grand_total), 0) as total_billed,
			COUNT(t.id) as ticket_count
		FROM tickets t
		WHERE t.status IN (1, 2)
			AND t.deleted_at IS NULL
			AND t.date >= date_trunc('month', NOW()) - (? || ' months')::interval
		GROUP BY date_trunc('month', t.date)
		ORDER BY month ASC
	`, months).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetHoursByUser(ctx context.Context, from, to time.Time) ([]domainRepo.HoursByUserResult, error) {
	var results []domainRepo.HoursByUserResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			u.id as user_id,
			u.first_name || ' ' || u.last_name as user_name,
			COALESCE(SUM(tl.hours), 0) as total_hours,
			COUNT(tl.id) as entry_count
		FROM time_logs tl
		JOIN users u ON u.id = tl.user_id
		WHERE tl.date >= ? AND tl.date <= ? AND tl.deleted_at IS NULL
		GROUP BY u.id, u.first_name, u.last_name
		ORDER BY total_hours DESC
	`, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetQuotationStatusCounts(ctx context.Context) ([]domainRepo.StatusCountResult, error) {
	var results []domainRepo.StatusCountResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM quotations
		WHERE deleted_at IS NULL
		GROUP BY status
	`).Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetTicketStatusCounts(ctx context.Context) ([]domainRepo.StatusCountResult, error) {
	var results []domainRepo.StatusCountResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) as count
		FROM tickets
		WHERE deleted_at IS NULL
		GROUP BY status
	`).Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) GetTotalBilled(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(grand_total), 0)
		FROM tickets
		WHERE status IN (1, 2) AND deleted_at IS NULL
	`).Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) GetMonthlyBilled(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(grand_total), 0)
		FROM tickets
		WHERE status IN (1, 2)
			AND deleted_at IS NULL
			AND date >= date_trunc('month', NOW())
	`).Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) GetPendingQuotationValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(grand_total), 0)
		FROM quotations
		WHERE status IN (0, 1) AND deleted_at IS NULL
	`).Scan(&total).Error
	return total, err
}

func (r *analyticsRepository) GetRecordCounts(ctx context.Context) (*domainRepo.RecordCounts, error) {
	var counts domainRepo.RecordCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM clients WHERE deleted_at IS NULL) as clients,
			(SELECT COUNT(*) FROM items WHERE deleted_at IS NULL) as items,
			(SELECT COUNT(*) FROM quotations WHERE deleted_at IS NULL) as quotations,
			(SELECT COUNT(*) FROM tickets WHERE deleted_at IS NULL) as tickets
	`).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *analyticsRepository) GetDailyRevenue(ctx context.Context, days int) ([]domainRepo.DailyRevenueResult, error) {
	var results []domainRepo.DailyRevenueResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('day', t.date) as day,
			COALESCE(SUM(t.grand_total), 0) as total_billed
		FROM tickets t
		WHERE t.status IN (1, 2)
			AND t.deleted_at IS NULL
			AND t.date >= date_trunc('day', NOW()) - (? || ' days')::interval
		GROUP BY date_trunc('day', t.date)
		ORDER BY day ASC
	`, days).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}

func (r *analyticsRepository) GetRecentDocuments(ctx context.Context, limit int) ([]domainRepo.RecentDocumentResult, error) {
	var results []domainRepo.RecentDocumentResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT * FROM (
			SELECT 'quotation' as kind, q.id, q.reference, q.client_name, q.date,
				q.grand_total, q.status, q.created_at
			FROM quotations q WHERE q.deleted_at IS NULL
			UNION ALL
			SELECT 'ticket', t.id, t.reference, t.client_name, t.date,
				t.grand_total, t.status, t.created_at
			FROM tickets t WHERE t.deleted_at IS NULL
			UNION ALL
			SELECT 'challan', c.id, c.reference, c.client_name, c.date,
				0, c.status, c.created_at
			FROM challans c WHERE c.deleted_at IS NULL
		) docs
		ORDER BY created_at DESC
		LIMIT ?
	`, limit).Scan(&results).Error

	if err != nil {
		return nil, err
	}

	return results, nil
}
