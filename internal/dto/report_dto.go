package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/smotired/bulletinator/internal/domain"
)

// CreateReportRequest carries the fields for filing a report
type CreateReportRequest struct {
	EntityID   uuid.UUID `json:"entity_id" binding:"required"`
	EntityType string    `json:"entity_type" binding:"required"`
	ReportText string    `json:"report_text" binding:"required"`
}

// UpdateReportRequest carries the submitter's report text edit
type UpdateReportRequest struct {
	ReportText string `json:"report_text" binding:"required"`
}

// UpdateReportStatusRequest carries the assignee's status change
type UpdateReportStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AssignReportRequest identifies the staff account to assign
type AssignReportRequest struct {
	AccountID uuid.UUID `json:"account_id" binding:"required"`
}

// ReportResponse is the API view of a report
type ReportResponse struct {
	ID          uuid.UUID               `json:"id"`
	AccountID   uuid.UUID               `json:"account_id"`
	EntityID    uuid.UUID               `json:"entity_id"`
	EntityType  domain.ReportEntityType `json:"entity_type"`
	ReportText  string                  `json:"report_text"`
	Status      domain.ReportStatus     `json:"status"`
	ModeratorID *uuid.UUID              `json:"moderator_id,omitempty"`
	ResolvedAt  *time.Time              `json:"resolved_at,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// ToReportResponse converts a report to its API view
func ToReportResponse(report *domain.Report) *ReportResponse {
	return &ReportResponse{
		ID:          report.ID,
		AccountID:   report.AccountID,
		EntityID:    report.EntityID,
		EntityType:  report.EntityType,
		ReportText:  report.ReportText,
		Status:      report.Status,
		ModeratorID: report.ModeratorID,
		ResolvedAt:  report.ResolvedAt,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
	}
}

// ToReportResponses converts a report slice to its API view
func ToReportResponses(reports []*domain.Report) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, report := range reports {
		responses[i] = ToReportResponse(report)
	}
	return responses
}
