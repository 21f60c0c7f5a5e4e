package handler

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/udyogbooks/backoffice-api/internal/application/service"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func reportParamsFromQuery(c *gin.Context) (service.ReportParams, bool) {
	params := service.ReportParams{
		SortKey: c.Query("sort"),
		SortDir: c.Query("dir"),
	}

	if p := c.Query("page"); p != "" {
		parsed, err := parsePositiveInt(p)
		if err != nil {
			response.BadRequest(c, "Invalid page")
			return params, false
		}
		params.Page = parsed
	}
	if pp := c.Query("per_page"); pp != "" {
		parsed, err := parsePositiveInt(pp)
		if err != nil {
			response.BadRequest(c, "Invalid per_page")
			return params, false
		}
		params.PerPage = parsed
	}

	var parseRangeDate = func(key string) (*time.Time, bool) {
		v := c.Query(key)
		if v == "" {
			return nil, true
		}
		parsed, err := parseDate(v)
		if err != nil {
			response.BadRequest(c, "Invalid "+key+" date. Use YYYY-MM-DD")
			return nil, false
		}
		return &parsed, true
	}

	from, ok := parseRangeDate("from")
	if !ok {
		return params, false
	}
	to, ok := parseRangeDate("to")
	if !ok {
		return params, false
	}
	params.From = from
	params.To = to

	return params, true
}

// Get renders a report page, or exports the full report when a format
// query is present.
func (h *ReportHandler) Get(c *gin.Context) {
	kind := c.Param("kind")

	params, ok := reportParamsFromQuery(c)
	if !ok {
		return
	}

	if format := strings.ToLower(c.Query("format")); format != "" {
		h.export(c, kind, format, params)
		return
	}

	report, err := h.reportService.BuildReport(c.Request.Context(), kind, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Report retrieved successfully", report)
}

func (h *ReportHandler) export(c *gin.Context, kind, format string, params service.ReportParams) {
	data, filename, err := h.reportService.ExportReport(c.Request.Context(), kind, format, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	contentType := "text/csv"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, contentType, data)
}
