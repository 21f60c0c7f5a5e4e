package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/enum"
	"github.com/udyogbooks/backoffice-api/pkg/tabular"
)

func newReportServiceForTest() (*ReportService, *MockQuotationRepository, *MockItemRepository) {
	quotationRepo := new(MockQuotationRepository)
	ticketRepo := new(MockTicketRepository)
	challanRepo := new(MockChallanRepository)
	timeLogRepo := new(MockTimeLogRepository)
	itemRepo := new(MockItemRepository)
	svc := NewReportService(quotationRepo, ticketRepo, challanRepo, timeLogRepo, itemRepo)
	return svc, quotationRepo, itemRepo
}

func sampleQuotations() []entity.Quotation {
	return []entity.Quotation{
		{
			ID:         uuid.New(),
			Reference:  "QT-000001",
			Date:       time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			ClientName: "Acme Fabricators",
			GrandTotal: 500,
			Status:     enum.QuotationStatusSent,
		},
		{
			ID:         uuid.New(),
			Reference:  "QT-000002",
			Date:       time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			ClientName: "Bharat Engineering",
			GrandTotal: 1500,
			Status:     enum.QuotationStatusDraft,
		},
	}
}

func TestBuildQuotationReportSortsByGrandTotal(t *testing.T) {
	svc, quotationRepo, _ := newReportServiceForTest()
	quotationRepo.On("List", mock.Anything, mock.Anything).Return(sampleQuotations(), int64(2), nil)

	report, err := svc.BuildReport(context.Background(), "quotations", ReportParams{
		SortKey: "grand_total",
		SortDir: "descending",
	})

	require.NoError(t, err)
	assert.Equal(t, "Quotation Register", report.Title)
	assert.Equal(t, tabular.StateData, report.Table.State)
	require.Len(t, report.Table.Rows, 2)
	assert.Equal(t, "QT-000002", report.Table.Rows[0].Cells[0])
	assert.Equal(t, "QT-000001", report.Table.Rows[1].Cells[0])
	assert.Equal(t, "1500.00", report.Table.Rows[0].Cells[6])
	assert.Equal(t, int64(2), report.Pagination.Total)

	// The active sort column is marked on its header
	var indicator tabular.Indicator
	for _, h := range report.Table.Headers {
		if h.Key == "grand_total" {
			indicator = h.Indicator
		}
	}
	assert.Equal(t, tabular.IndicatorDesc, indicator)
}

func TestBuildReportEmptyState(t *testing.T) {
	svc, quotationRepo, _ := newReportServiceForTest()
	quotationRepo.On("List", mock.Anything, mock.Anything).Return([]entity.Quotation{}, int64(0), nil)

	report, err := svc.BuildReport(context.Background(), "quotations", ReportParams{})

	require.NoError(t, err)
	assert.Equal(t, tabular.StateEmpty, report.Table.State)
	assert.Equal(t, "No records found", report.Table.Message)
	assert.Empty(t, report.Table.Rows)
}

func TestBuildReportUnknownKind(t *testing.T) {
	svc, _, _ := newReportServiceForTest()

	_, err := svc.BuildReport(context.Background(), "invoices", ReportParams{})

	assert.Error(t, err)
}

func TestExportReportCSV(t *testing.T) {
	svc, quotationRepo, _ := newReportServiceForTest()
	quotationRepo.On("List", mock.Anything, mock.Anything).Return(sampleQuotations(), int64(2), nil)

	data, filename, err := svc.ExportReport(context.Background(), "quotations", "csv", ReportParams{})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "quotations-"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Reference")
	assert.Contains(t, lines[1], "QT-000001")
}

func TestExportReportRejectsUnknownFormat(t *testing.T) {
	svc, quotationRepo, _ := newReportServiceForTest()
	quotationRepo.On("List", mock.Anything, mock.Anything).Return(sampleQuotations(), int64(2), nil)

	_, _, err := svc.ExportReport(context.Background(), "quotations", "pdf", ReportParams{})

	assert.Error(t, err)
}

func TestExportInventoryReportExcel(t *testing.T) {
	svc, _, itemRepo := newReportServiceForTest()
	itemRepo.On("List", mock.Anything, mock.Anything, "").Return([]entity.Item{
		{ID: uuid.New(), Name: "Ball bearing 6204", HSNSACCode: "8482", Unit: "nos", Quantity: 40, QuantityAlert: 10, Price: 15000},
	}, int64(1), nil)

	data, filename, err := svc.ExportReport(context.Background(), "items", "xlsx", ReportParams{})

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	// xlsx files are zip archives
	require.True(t, len(data) > 4)
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
