package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/application/service"
	"github.com/udyogbooks/backoffice-api/internal/presentation/http/dto/response"
)

// TimeLogHandler handles time log HTTP requests
type TimeLogHandler struct {
	timeLogService *service.TimeLogService
}

// NewTimeLogHandler creates a new time log handler
func NewTimeLogHandler(timeLogService *service.TimeLogService) *TimeLogHandler {
	return &TimeLogHandler{timeLogService: timeLogService}
}

// TimeLogRequest represents the create/update time log request body
type TimeLogRequest struct {
	ClientID    *string `json:"client_id"`
	TicketID    *string `json:"ticket_id"`
	Date        string  `json:"date" binding:"required"`
	Hours       float64 `json:"hours" binding:"required"`
	Description string  `json:"description" binding:"required"`
}

// List handles listing time logs
func (h *TimeLogHandler) List(c *gin.Context) {
	params := parsePaginationParams(c)

	var userID *uuid.UUID
	if uid := c.Query("user_id"); uid != "" {
		parsed, err := uuid.Parse(uid)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		userID = &parsed
	}

	var clientID *uuid.UUID
	if cid := c.Query("client_id"); cid != "" {
		parsed, err := uuid.Parse(cid)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		clientID = &parsed
	}

	var from, to *time.Time
	if f := c.Query("from"); f != "" {
		parsed, err := parseDate(f)
		if err != nil {
			response.BadRequest(c, "Invalid from date. Use YYYY-MM-DD")
			return
		}
		from = &parsed
	}
	if t := c.Query("to"); t != "" {
		parsed, err := parseDate(t)
		if err != nil {
			response.BadRequest(c, "Invalid to date. Use YYYY-MM-DD")
			return
		}
		to = &parsed
	}

	result, err := h.timeLogService.ListTimeLogs(c.Request.Context(), &service.ListTimeLogsInput{
		Pagination: params,
		UserID:     userID,
		ClientID:   clientID,
		From:       from,
		To:         to,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Time logs retrieved successfully", result)
}

// Summary totals the current user's hours per day over a date range
func (h *TimeLogHandler) Summary(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var from, to *time.Time
	if f := c.Query("from"); f != "" {
		parsed, err := parseDate(f)
		if err != nil {
			response.BadRequest(c, "Invalid from date. Use YYYY-MM-DD")
			return
		}
		from = &parsed
	}
	if t := c.Query("to"); t != "" {
		parsed, err := parseDate(t)
		if err != nil {
			response.BadRequest(c, "Invalid to date. Use YYYY-MM-DD")
			return
		}
		to = &parsed
	}

	summary, err := h.timeLogService.GetDailySummary(c.Request.Context(), *userID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Time log summary retrieved successfully", summary)
}

// Get handles getting a single time log
func (h *TimeLogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid time log ID")
		return
	}

	log, err := h.timeLogService.GetTimeLog(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Time log retrieved successfully", log)
}

// Create handles logging time
func (h *TimeLogHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req TimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	clientID, err := parseOptionalUUID(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	ticketID, err := parseOptionalUUID(req.TicketID)
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	log, err := h.timeLogService.CreateTimeLog(c.Request.Context(), &service.CreateTimeLogInput{
		UserID:      *userID,
		ClientID:    clientID,
		TicketID:    ticketID,
		Date:        date,
		Hours:       req.Hours,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Time log created successfully", log)
}

// Update handles updating a time log. Only the owner can edit an entry.
func (h *TimeLogHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid time log ID")
		return
	}

	var req TimeLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	clientID, err := parseOptionalUUID(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	ticketID, err := parseOptionalUUID(req.TicketID)
	if err != nil {
		response.BadRequest(c, "Invalid ticket ID")
		return
	}

	log, err := h.timeLogService.UpdateTimeLog(c.Request.Context(), &service.UpdateTimeLogInput{
		ID:          id,
		UserID:      *userID,
		ClientID:    clientID,
		TicketID:    ticketID,
		Date:        date,
		Hours:       req.Hours,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Time log updated successfully", log)
}

// Delete handles deleting a time log. Only the owner can delete an entry.
func (h *TimeLogHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid time log ID")
		return
	}

	if err := h.timeLogService.DeleteTimeLog(c.Request.Context(), *userID, id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
