package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReportStatus represents the moderation state of a report
type ReportStatus string

const (
	ReportStatusFresh      ReportStatus = "fresh"
	ReportStatusAssigned   ReportStatus = "assigned"
	ReportStatusInProgress ReportStatus = "in_progress"
	ReportStatusResolved   ReportStatus = "resolved"
)

// Valid reports whether this is a known report status
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusFresh, ReportStatusAssigned, ReportStatusInProgress, ReportStatusResolved:
		return true
	}
	return false
}

// ReportEntityType names the kind of entity a report targets
type ReportEntityType string

const (
	ReportEntityAccount ReportEntityType = "account"
	ReportEntityBoard   ReportEntityType = "board"
	ReportEntityItem    ReportEntityType = "item"
)

// Valid reports whether this is a known report entity type
func (t ReportEntityType) Valid() bool {
	switch t {
	case ReportEntityAccount, ReportEntityBoard, ReportEntityItem:
		return true
	}
	return false
}

// Report represents a complaint submitted by an account against some entity.
// ResolvedAt is non-nil exactly while Status is "resolved".
type Report struct {
	BaseModel
	AccountID   uuid.UUID        `gorm:"type:uuid;not null;index:idx_reports_account_id" json:"account_id"`
	EntityID    uuid.UUID        `gorm:"type:uuid;not null" json:"entity_id"`
	EntityType  ReportEntityType `gorm:"type:varchar(32);not null" json:"entity_type"`
	ReportText  string           `gorm:"type:text;not null" json:"report_text"`
	Status      ReportStatus     `gorm:"type:varchar(32);not null;default:'fresh';index:idx_reports_status" json:"status"`
	ModeratorID *uuid.UUID       `gorm:"type:uuid;index:idx_reports_moderator_id" json:"moderator_id,omitempty"`
	ResolvedAt  *time.Time       `json:"resolved_at,omitempty"`
}

// TableName specifies the table name for Report
func (Report) TableName() string {
	return "reports"
}
