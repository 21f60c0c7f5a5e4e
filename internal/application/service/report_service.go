package service

import (
	"context"
	"fmt"
	"time"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
	"github.com/udyogbooks/backoffice-api/pkg/export"
	"github.com/udyogbooks/backoffice-api/pkg/pagination"
	"github.com/udyogbooks/backoffice-api/pkg/tabular"
)

// reportFetchLimit caps how many records a report loads for in-memory
// sorting and paging.
const reportFetchLimit = 10000

// ReportService renders registers of documents and logs as table views
// and exports them as CSV or Excel downloads
type ReportService struct {
	quotationRepo repository.QuotationRepository
	ticketRepo    repository.TicketRepository
	challanRepo   repository.ChallanRepository
	timeLogRepo   repository.TimeLogRepository
	itemRepo      repository.ItemRepository
}

// NewReportService creates a new report service
func NewReportService(
	quotationRepo repository.QuotationRepository,
	ticketRepo repository.TicketRepository,
	challanRepo repository.ChallanRepository,
	timeLogRepo repository.TimeLogRepository,
	itemRepo repository.ItemRepository,
) *ReportService {
	return &ReportService{
		quotationRepo: quotationRepo,
		ticketRepo:    ticketRepo,
		challanRepo:   challanRepo,
		timeLogRepo:   timeLogRepo,
		itemRepo:      itemRepo,
	}
}

// ReportParams controls sorting, paging and the date window of a report
type ReportParams struct {
	Page    int
	PerPage int
	SortKey string
	SortDir string
	From    *time.Time
	To      *time.Time
}

// Report is a rendered report page
type Report struct {
	Title      string                 `json:"title"`
	Table      *tabular.Table         `json:"table"`
	Pagination *pagination.Pagination `json:"pagination"`
}

// BuildReport renders one page of the named report. Sorting happens over
// the full record set so page boundaries follow the sorted order.
func (s *ReportService) BuildReport(ctx context.Context, kind string, params ReportParams) (*Report, error) {
	title, columns, rows, err := s.loadReport(ctx, kind, params)
	if err != nil {
		return nil, err
	}

	sortCfg := sortConfig(params)
	sorted := tabular.ApplySort(rows, sortCfg)

	page := params.Page
	perPage := params.PerPage
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 15
	}
	pageRows, _ := tabular.Paginate(sorted, page, perPage)

	table, err := tabular.View(columns, pageRows, tabular.Options{
		KeyField:      "id",
		NoDataMessage: "No records found",
		Sort:          &sortCfg,
	})
	if err != nil {
		return nil, err
	}

	return &Report{
		Title:      title,
		Table:      table,
		Pagination: pagination.New(page, perPage, int64(len(rows))),
	}, nil
}

// ExportReport renders the full report (all pages) in the requested
// format and returns the file bytes with a download filename.
func (s *ReportService) ExportReport(ctx context.Context, kind, format string, params ReportParams) ([]byte, string, error) {
	title, columns, rows, err := s.loadReport(ctx, kind, params)
	if err != nil {
		return nil, "", err
	}

	sorted := tabular.ApplySort(rows, sortConfig(params))
	table, err := tabular.View(columns, sorted, tabular.Options{
		KeyField:      "id",
		NoDataMessage: "No records found",
	})
	if err != nil {
		return nil, "", err
	}

	stamp := time.Now().Format("2006-01-02")
	switch format {
	case "csv":
		data, err := export.CSV(table)
		if err != nil {
			return nil, "", err
		}
		return data, fmt.Sprintf("%s-%s.csv", kind, stamp), nil
	case "xlsx":
		data, err := export.Excel(title, table)
		if err != nil {
			return nil, "", err
		}
		return data, fmt.Sprintf("%s-%s.xlsx", kind, stamp), nil
	default:
		return nil, "", apperror.NewBadRequestError("unsupported export format, use csv or xlsx")
	}
}

func (s *ReportService) loadReport(ctx context.Context, kind string, params ReportParams) (string, []tabular.Column, []tabular.Row, error) {
	switch kind {
	case "quotations":
		rows, err := s.quotationRows(ctx)
		return "Quotation Register", quotationColumns(), rows, err
	case "tickets":
		rows, err := s.ticketRows(ctx)
		return "Sales Ticket Register", ticketColumns(), rows, err
	case "challans":
		rows, err := s.challanRows(ctx)
		return "Delivery Challan Register", challanColumns(), rows, err
	case "timelogs":
		rows, err := s.timeLogRows(ctx, params)
		return "Time Log Report", timeLogColumns(), rows, err
	case "items":
		rows, err := s.itemRows(ctx)
		return "Inventory Report", itemColumns(), rows, err
	default:
		return "", nil, nil, apperror.NewBadRequestError("unknown report: " + kind)
	}
}

func sortConfig(params ReportParams) tabular.SortConfig {
	dir := tabular.ParseDirection(params.SortDir, tabular.Ascending)
	return tabular.SortConfig{Key: params.SortKey, Direction: dir}
}

// collect walks a paginated listing and gathers every record, stopping
// at reportFetchLimit.
func collect[T any](list func(p *pagination.Params) ([]T, int64, error)) ([]T, error) {
	params := &pagination.Params{Page: 1, PerPage: 100}
	var all []T
	for {
		batch, total, err := list(params)
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < params.PerPage || int64(len(all)) >= total || len(all) >= reportFetchLimit {
			return all, nil
		}
		params.Page++
	}
}

func money(key string) func(tabular.Row) string {
	return func(r tabular.Row) string {
		v, ok := tabular.Value(r, key)
		if !ok {
			return ""
		}
		f, ok := v.(float64)
		if !ok {
			return tabular.FormatValue(v)
		}
		return fmt.Sprintf("%.2f", f)
	}
}

func quotationColumns() []tabular.Column {
	return []tabular.Column{
		{Key: "reference", Header: "Reference"},
		{Key: "date", Header: "Date"},
		{Key: "client_name", Header: "Client"},
		{Key: "total_quantity", Header: "Quantity"},
		{Key: "total_amount", Header: "Total", Render: money("total_amount")},
		{Key: "gst_amount", Header: "GST", Render: money("gst_amount"), NoSort: true},
		{Key: "grand_total", Header: "Grand Total", Render: money("grand_total")},
		{Key: "status", Header: "Status"},
	}
}

func (s *ReportService) quotationRows(ctx context.Context) ([]tabular.Row, error) {
	quotations, err := collect(func(p *pagination.Params) ([]entity.Quotation, int64, error) {
		return s.quotationRepo.List(ctx, &repository.QuotationFilterParams{Pagination: p})
	})
	if err != nil {
		return nil, err
	}
	rows := make([]tabular.Row, 0, len(quotations))
	for _, q := range quotations {
		rows = append(rows, tabular.Row{
			"id":             q.ID.String(),
			"reference":      q.Reference,
			"date":           q.Date,
			"client_name":    q.ClientName,
			"total_quantity": q.TotalQuantity,
			"total_amount":   q.TotalAmount,
			"gst_amount":     q.GSTAmount,
			"grand_total":    q.GrandTotal,
			"status":         q.Status.String(),
		})
	}
	return rows, nil
}

func ticketColumns() []tabular.Column {
	return []tabular.Column{
		{Key: "reference", Header: "Reference"},
		{Key: "date", Header: "Date"},
		{Key: "client_name", Header: "Client"},
		{Key: "vehicle_no", Header: "Vehicle No", NoSort: true},
		{Key: "total_quantity", Header: "Quantity"},
		{Key: "grand_total", Header: "Grand Total", Render: money("grand_total")},
		{Key: "status", Header: "Status"},
	}
}

func (s *ReportService) ticketRows(ctx context.Context) ([]tabular.Row, error) {
	tickets, err := collect(func(p *pagination.Params) ([]entity.Ticket, int64, error) {
		return s.ticketRepo.List(ctx, &repository.TicketFilterParams{Pagination: p})
	})
	if err != nil {
		return nil, err
	}
	rows := make([]tabular.Row, 0, len(tickets))
	for _, t := range tickets {
		row := tabular.Row{
			"id":             t.ID.String(),
			"reference":      t.Reference,
			"date":           t.Date,
			"client_name":    t.ClientName,
			"total_quantity": t.TotalQuantity,
			"grand_total":    t.GrandTotal,
			"status":         t.Status.String(),
		}
		if t.VehicleNo != nil {
			row["vehicle_no"] = *t.VehicleNo
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func challanColumns() []tabular.Column {
	return []tabular.Column{
		{Key: "reference", Header: "Reference"},
		{Key: "date", Header: "Date"},
		{Key: "client_name", Header: "Client"},
		{Key: "destination", Header: "Destination", NoSort: true},
		{Key: "vehicle_no", Header: "Vehicle No", NoSort: true},
		{Key: "total_quantity", Header: "Quantity"},
		{Key: "status", Header: "Status"},
	}
}

func (s *ReportService) challanRows(ctx context.Context) ([]tabular.Row, error) {
	challans, err := collect(func(p *pagination.Params) ([]entity.Challan, int64, error) {
		return s.challanRepo.List(ctx, &repository.ChallanFilterParams{Pagination: p})
	})
	if err != nil {
		return nil, err
	}
	rows := make([]tabular.Row, 0, len(challans))
	for _, c := range challans {
		row := tabular.Row{
			"id":             c.ID.String(),
			"reference":      c.Reference,
			"date":           c.Date,
			"client_name":    c.ClientName,
			"total_quantity": c.TotalQuantity,
			"status":         c.Status.String(),
		}
		if c.Destination != nil {
			row["destination"] = *c.Destination
		}
		if c.VehicleNo != nil {
			row["vehicle_no"] = *c.VehicleNo
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func timeLogColumns() []tabular.Column {
	return []tabular.Column{
		{Key: "date", Header: "Date"},
		{Key: "user", Header: "User"},
		{Key: "client", Header: "Client"},
		{Key: "hours", Header: "Hours"},
		{Key: "description", Header: "Description", NoSort: true},
	}
}

func (s *ReportService) timeLogRows(ctx context.Context, params ReportParams) ([]tabular.Row, error) {
	logs, err := collect(func(p *pagination.Params) ([]entity.TimeLog, int64, error) {
		return s.timeLogRepo.List(ctx, &repository.TimeLogFilterParams{
			Pagination: p,
			From:       params.From,
			To:         params.To,
		})
	})
	if err != nil {
		return nil, err
	}
	rows := make([]tabular.Row, 0, len(logs))
	for _, l := range logs {
		row := tabular.Row{
			"id":          l.ID.String(),
			"date":        l.Date,
			"user":        l.User.FullName(),
			"hours":       l.Hours,
			"description": l.Description,
		}
		if l.Client != nil {
			row["client"] = l.Client.Name
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func itemColumns() []tabular.Column {
	return []tabular.Column{
		{Key: "name", Header: "Name"},
		{Key: "hsn_sac_code", Header: "HSN/SAC", NoSort: true},
		{Key: "unit", Header: "Unit", NoSort: true},
		{Key: "quantity", Header: "In Stock"},
		{Key: "quantity_alert", Header: "Alert Level", NoSort: true},
		{Key: "price", Header: "Price", Render: money("price")},
		{Key: "low_stock", Header: "Low Stock", NoSort: true},
	}
}

func (s *ReportService) itemRows(ctx context.Context) ([]tabular.Row, error) {
	items, err := collect(func(p *pagination.Params) ([]entity.Item, int64, error) {
		return s.itemRepo.List(ctx, p, "")
	})
	if err != nil {
		return nil, err
	}
	rows := make([]tabular.Row, 0, len(items))
	for _, i := range items {
		rows = append(rows, tabular.Row{
			"id":             i.ID.String(),
			"name":           i.Name,
			"hsn_sac_code":   i.HSNSACCode,
			"unit":           i.Unit,
			"quantity":       i.Quantity,
			"quantity_alert": i.QuantityAlert,
			"price":          i.GetPriceDecimal(),
			"low_stock":      i.IsLowStock(),
		})
	}
	return rows, nil
}
