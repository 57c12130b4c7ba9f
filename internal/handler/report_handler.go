package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smotired/bulletinator/internal/dto"
	"github.com/smotired/bulletinator/internal/middleware"
	"github.com/smotired/bulletinator/internal/response"
	"github.com/smotired/bulletinator/internal/service"
)

// ReportHandler serves the moderation report endpoints
type ReportHandler struct {
	reportService service.ReportService
	logger        *zap.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// ListAll returns every report. Staff only.
func (h *ReportHandler) ListAll(c *gin.Context) {
	reports, err := h.reportService.ListAll(c.Request.Context(), middleware.GetAccount(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, reports)
}

// ListSubmitted returns the reports the caller filed
func (h *ReportHandler) ListSubmitted(c *gin.Context) {
	reports, err := h.reportService.ListSubmitted(c.Request.Context(), middleware.GetAccount(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, reports)
}

// ListAssigned returns the reports assigned to the caller
func (h *ReportHandler) ListAssigned(c *gin.Context) {
	reports, err := h.reportService.ListAssigned(c.Request.Context(), middleware.GetAccount(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, reports)
}

// Get returns a single report
func (h *ReportHandler) Get(c *gin.Context) {
	reportID, ok := pathUUID(c, "report_id")
	if !ok {
		return
	}
	report, err := h.reportService.Get(c.Request.Context(), middleware.GetAccount(c), reportID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, report)
}

// Create files a report against an entity
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	report, err := h.reportService.Create(c.Request.Context(), middleware.GetAccount(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, report)
}

// UpdateText edits the report text. Submitter only.
func (h *ReportHandler) UpdateText(c *gin.Context) {
	reportID, ok := pathUUID(c, "report_id")
	if !ok {
		return
	}
	var req dto.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	report, err := h.reportService.UpdateText(c.Request.Context(), middleware.GetAccount(c), reportID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, report)
}

// UpdateStatus moves a report through its lifecycle. Assignee only.
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	reportID, ok := pathUUID(c, "report_id")
	if !ok {
		return
	}
	var req dto.UpdateReportStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	report, err := h.reportService.UpdateStatus(c.Request.Context(), middleware.GetAccount(c), reportID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, report)
}

// SetAssignee assigns a staff account to the report
func (h *ReportHandler) SetAssignee(c *gin.Context) {
	reportID, ok := pathUUID(c, "report_id")
	if !ok {
		return
	}
	var req dto.AssignReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	report, err := h.reportService.SetAssignee(c.Request.Context(), middleware.GetAccount(c), reportID, req.AccountID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, report)
}

// RemoveAssignee clears the assignee and resets the report to fresh
func (h *ReportHandler) RemoveAssignee(c *gin.Context) {
	reportID, ok := pathUUID(c, "report_id")
	if !ok {
		return
	}
	report, err := h.reportService.RemoveAssignee(c.Request.Context(), middleware.GetAccount(c), reportID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, report)
}

// Delete removes a report
func (h *ReportHandler) Delete(c *gin.Context) {
	reportID, ok := pathUUID(c, "report_id")
	if !ok {
		return
	}
	if err := h.reportService.Delete(c.Request.Context(), middleware.GetAccount(c), reportID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
