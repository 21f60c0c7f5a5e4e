package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
)

type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) GetByReference(ctx context.Context, reference string) (*entity.Quotation, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) GetWithGoods(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	args := m.Called(ctx, quotation)
	return args.Error(0)
}

func (m *MockQuotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockQuotationRepository) List(ctx context.Context, params *repository.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Quotation), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuotationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuotationStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockQuotationRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockQuotationItemRepository struct {
	mock.Mock
}

func (m *MockQuotationItemRepository) CreateBatch(ctx context.Context, items []entity.QuotationItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockQuotationItemRepository) GetByQuotationID(ctx context.Context, quotationID uuid.UUID) ([]entity.QuotationItem, error) {
	args := m.Called(ctx, quotationID)
	return args.Get(0).([]entity.QuotationItem), args.Error(1)
}

func (m *MockQuotationItemRepository) DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error {
	args := m.Called(ctx, quotationID)
	return args.Error(0)
}

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByReference(ctx context.Context, reference string) (*entity.Ticket, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetWithGoods(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Update(ctx context.Context, ticket *entity.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTicketRepository) List(ctx context.Context, params *repository.TicketFilterParams) ([]entity.Ticket, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Ticket), args.Get(1).(int64), args.Error(2)
}

func (m *MockTicketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.TicketStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockTicketRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTicketItemRepository struct {
	mock.Mock
}

func (m *MockTicketItemRepository) CreateBatch(ctx context.Context, items []entity.TicketItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockTicketItemRepository) GetByTicketID(ctx context.Context, ticketID uuid.UUID) ([]entity.TicketItem, error) {
	args := m.Called(ctx, ticketID)
	return args.Get(0).([]entity.TicketItem), args.Error(1)
}

func (m *MockTicketItemRepository) DeleteByTicketID(ctx context.Context, ticketID uuid.UUID) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}

type MockChallanRepository struct {
	mock.Mock
}

func (m *MockChallanRepository) Create(ctx context.Context, challan *entity.Challan) error {
	args := m.Called(ctx, challan)
	return args.Error(0)
}

func (m *MockChallanRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Challan), args.Error(1)
}

func (m *MockChallanRepository) GetByReference(ctx context.Context, reference string) (*entity.Challan, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Challan), args.Error(1)
}

func (m *MockChallanRepository) GetWithGoods(ctx context.Context, id uuid.UUID) (*entity.Challan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Challan), args.Error(1)
}

func (m *MockChallanRepository) Update(ctx context.Context, challan *entity.Challan) error {
	args := m.Called(ctx, challan)
	return args.Error(0)
}

func (m *MockChallanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChallanRepository) List(ctx context.Context, params *repository.ChallanFilterParams) ([]entity.Challan, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.Challan), args.Get(1).(int64), args.Error(2)
}

func (m *MockChallanRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.ChallanStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockChallanRepository) GetNextReferenceNumber(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockChallanItemRepository struct {
	mock.Mock
}

func (m *MockChallanItemRepository) CreateBatch(ctx context.Context, items []entity.ChallanItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockChallanItemRepository) GetByChallanID(ctx context.Context, challanID uuid.UUID) ([]entity.ChallanItem, error) {
	args := m.Called(ctx, challanID)
	return args.Get(0).([]entity.ChallanItem), args.Error(1)
}

func (m *MockChallanItemRepository) DeleteByChallanID(ctx context.Context, challanID uuid.UUID) error {
	args := m.Called(ctx, challanID)
	return args.Error(0)
}

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) Create(ctx context.Context, client *entity.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) GetByName(ctx context.Context, name string) (*entity.Client, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) Update(ctx context.Context, client *entity.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockClientRepository) List(ctx context.Context, params *pagination.Params, search string) ([]entity.Client, int64, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Client), args.Get(1).(int64), args.Error(2)
}

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *entity.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) CreateBatch(ctx context.Context, items []entity.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *MockItemRepository) GetByHSNSACCode(ctx context.Context, code string) (*entity.Item, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *MockItemRepository) GetBySlug(ctx context.Context, slug string) (*entity.Item, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Item), args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, item *entity.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) List(ctx context.Context, params *pagination.Params, search string) ([]entity.Item, int64, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Item), args.Get(1).(int64), args.Error(2)
}

func (m *MockItemRepository) ListLowStock(ctx context.Context) ([]entity.Item, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Item), args.Error(1)
}

func (m *MockItemRepository) AdjustQuantityBatch(ctx context.Context, deltas map[uuid.UUID]float64) error {
	args := m.Called(ctx, deltas)
	return args.Error(0)
}

type MockTimeLogRepository struct {
	mock.Mock
}

func (m *MockTimeLogRepository) Create(ctx context.Context, log *entity.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTimeLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TimeLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TimeLog), args.Error(1)
}

func (m *MockTimeLogRepository) Update(ctx context.Context, log *entity.TimeLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockTimeLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTimeLogRepository) List(ctx context.Context, params *repository.TimeLogFilterParams) ([]entity.TimeLog, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]entity.TimeLog), args.Get(1).(int64), args.Error(2)
}

func (m *MockTimeLogRepository) SumHoursForDay(ctx context.Context, userID uuid.UUID, date time.Time) (float64, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockTimeLogRepository) DailyTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]repository.DailyHoursResult, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).([]repository.DailyHoursResult), args.Error(1)
}

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserSettings), args.Error(1)
}

func (m *MockSettingsRepository) Create(ctx context.Context, settings *entity.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) Update(ctx context.Context, settings *entity.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) GetTopClients(ctx context.Context, limit int) ([]repository.TopClientResult, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]repository.TopClientResult), args.Error(1)
}

func (m *MockAnalyticsRepository) GetMonthlySales(ctx context.Context, months int) ([]repository.MonthlySalesResult, error) {
	args := m.Called(ctx, months)
	return args.Get(0).([]repository.MonthlySalesResult), args.Error(1)
}

func (m *MockAnalyticsRepository) GetHoursByUser(ctx context.Context, from, to time.Time) ([]repository.HoursByUserResult, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]repository.HoursByUserResult), args.Error(1)
}

func (m *MockAnalyticsRepository) GetQuotationStatusCounts(ctx context.Context) ([]repository.StatusCountResult, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.StatusCountResult), args.Error(1)
}

func (m *MockAnalyticsRepository) GetTicketStatusCounts(ctx context.Context) ([]repository.StatusCountResult, error) {
	args := m.Called(ctx)
	return args.Get(0).([]repository.StatusCountResult), args.Error(1)
}

func (m *MockAnalyticsRepository) GetTotalBilled(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockAnalyticsRepository) GetMonthlyBilled(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockAnalyticsRepository) GetPendingQuotationValue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockAnalyticsRepository) GetRecordCounts(ctx context.Context) (*repository.RecordCounts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RecordCounts), args.Error(1)
}

func (m *MockAnalyticsRepository) GetDailyRevenue(ctx context.Context, days int) ([]repository.DailyRevenueResult, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]repository.DailyRevenueResult), args.Error(1)
}

func (m *MockAnalyticsRepository) GetRecentDocuments(ctx context.Context, limit int) ([]repository.RecentDocumentResult, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]repository.RecentDocumentResult), args.Error(1)
}

var (
	_ repository.QuotationRepository     = (*MockQuotationRepository)(nil)
	_ repository.QuotationItemRepository = (*MockQuotationItemRepository)(nil)
	_ repository.TicketRepository       = (*MockTicketRepository)(nil)
	_ repository.TicketItemRepository   = (*MockTicketItemRepository)(nil)
	_ repository.ChallanRepository      = (*MockChallanRepository)(nil)
	_ repository.ChallanItemRepository  = (*MockChallanItemRepository)(nil)
	_ repository.ClientRepository       = (*MockClientRepository)(nil)
	_ repository.ItemRepository         = (*MockItemRepository)(nil)
	_ repository.TimeLogRepository      = (*MockTimeLogRepository)(nil)
	_ repository.SettingsRepository     = (*MockSettingsRepository)(nil)
	_ repository.AnalyticsRepository    = (*MockAnalyticsRepository)(nil)
)
