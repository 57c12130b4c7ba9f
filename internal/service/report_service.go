package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/dto"
	"github.com/smotired/bulletinator/internal/metrics"
	"github.com/smotired/bulletinator/internal/permission"
	"github.com/smotired/bulletinator/internal/repository"
	"github.com/smotired/bulletinator/internal/response"
)

// ReportService defines the interface for report business logic: submission
// against an existing entity, the status state machine driven by the
// assigned moderator, and assignee management by staff.
type ReportService interface {
	ListAll(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error)
	ListSubmitted(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error)
	ListAssigned(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error)
	Get(ctx context.Context, actor *domain.Account, reportID uuid.UUID) (*dto.ReportResponse, error)
	Create(ctx context.Context, actor *domain.Account, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
	UpdateText(ctx context.Context, actor *domain.Account, reportID uuid.UUID, req *dto.UpdateReportRequest) (*dto.ReportResponse, error)
	UpdateStatus(ctx context.Context, actor *domain.Account, reportID uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error)
	Delete(ctx context.Context, actor *domain.Account, reportID uuid.UUID) error
	SetAssignee(ctx context.Context, actor *domain.Account, reportID, accountID uuid.UUID) (*dto.ReportResponse, error)
	RemoveAssignee(ctx context.Context, actor *domain.Account, reportID uuid.UUID) (*dto.ReportResponse, error)
}

// reportServiceImpl is the implementation of ReportService
type reportServiceImpl struct {
	reportRepo  repository.ReportRepository
	accountRepo repository.AccountRepository
	boardRepo   repository.BoardRepository
	itemRepo    repository.ItemRepository
	permissions permission.Deps
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewReportService creates a new instance of ReportService
func NewReportService(
	reportRepo repository.ReportRepository,
	accountRepo repository.AccountRepository,
	boardRepo repository.BoardRepository,
	itemRepo repository.ItemRepository,
	permissions permission.Deps,
	m *metrics.Metrics,
	logger *zap.Logger,
) ReportService {
	return &reportServiceImpl{
		reportRepo:  reportRepo,
		accountRepo: accountRepo,
		boardRepo:   boardRepo,
		itemRepo:    itemRepo,
		permissions: permissions,
		metrics:     m,
		logger:      logger,
	}
}

// ListAll returns every report. Staff only.
func (s *reportServiceImpl) ListAll(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error) {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureReadAll(); err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToReportResponses(reports), nil
}

// ListSubmitted returns the actor's own submitted reports
func (s *reportServiceImpl) ListSubmitted(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error) {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureQueryAll(); err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.FindBySubmitter(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToReportResponses(reports), nil
}

// ListAssigned returns the reports assigned to the actor
func (s *reportServiceImpl) ListAssigned(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error) {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureQueryAll(); err != nil {
		return nil, err
	}
	reports, err := s.reportRepo.FindByAssignee(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToReportResponses(reports), nil
}

// Get returns one report the actor is allowed to see
func (s *reportServiceImpl) Get(ctx context.Context, actor *domain.Account, reportID uuid.UUID) (*dto.ReportResponse, error) {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureRead(ctx, reportID); err != nil {
		return nil, err
	}
	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return dto.ToReportResponse(report), nil
}

// Create files a report against an existing account, board or item
func (s *reportServiceImpl) Create(ctx context.Context, actor *domain.Account, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureCreate(); err != nil {
		return nil, err
	}
	entityType := domain.ReportEntityType(req.EntityType)
	if !entityType.Valid() {
		return nil, response.NewInvalidField(req.EntityType, "entity_type")
	}
	if err := s.verifyEntity(ctx, entityType, req.EntityID); err != nil {
		return nil, err
	}

	report := &domain.Report{
		AccountID:  actor.ID,
		EntityID:   req.EntityID,
		EntityType: entityType,
		ReportText: req.ReportText,
		Status:     domain.ReportStatusFresh,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementReportOpened()
	}
	s.logger.Info("Report filed",
		zap.String("report_id", report.ID.String()),
		zap.String("entity_type", string(entityType)),
		zap.String("entity_id", req.EntityID.String()),
	)
	return dto.ToReportResponse(report), nil
}

// UpdateText edits the report text. Submitter only.
func (s *reportServiceImpl) UpdateText(ctx context.Context, actor *domain.Account, reportID uuid.UUID, req *dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureUpdate(ctx, reportID); err != nil {
		return nil, err
	}
	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	report.ReportText = req.ReportText
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return dto.ToReportResponse(report), nil
}

// UpdateStatus moves the report through its state machine. Setting resolved
// stamps the resolution time; setting anything else clears it. Assignee
// only.
func (s *reportServiceImpl) UpdateStatus(ctx context.Context, actor *domain.Account, reportID uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error) {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureUpdateStatus(ctx, reportID); err != nil {
		return nil, err
	}
	status := domain.ReportStatus(req.Status)
	if !status.Valid() {
		return nil, response.NewInvalidField(req.Status, "status")
	}
	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	report.Status = status
	if status == domain.ReportStatusResolved {
		if report.ResolvedAt == nil {
			now := time.Now().UTC()
			report.ResolvedAt = &now
			if s.metrics != nil {
				s.metrics.IncrementReportResolved()
			}
		}
	} else {
		report.ResolvedAt = nil
	}
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return dto.ToReportResponse(report), nil
}

// Delete removes a report. Submitter or staff.
func (s *reportServiceImpl) Delete(ctx context.Context, actor *domain.Account, reportID uuid.UUID) error {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureDelete(ctx, reportID); err != nil {
		return err
	}
	return s.reportRepo.Delete(ctx, reportID)
}

// SetAssignee assigns a staff account as the report's moderator, moving a
// fresh report to assigned. Staff only; the assignee itself must be staff.
func (s *reportServiceImpl) SetAssignee(ctx context.Context, actor *domain.Account, reportID, accountID uuid.UUID) (*dto.ReportResponse, error) {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureManageAssignee(ctx, reportID); err != nil {
		return nil, err
	}
	target, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("account", "id", accountID)
		}
		return nil, err
	}
	if err := permission.NewReportPDP(s.permissions, target).EnsureBecomeAssignee(reportID); err != nil {
		return nil, err
	}
	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	report.ModeratorID = &target.ID
	if report.Status == domain.ReportStatusFresh {
		report.Status = domain.ReportStatusAssigned
	}
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return dto.ToReportResponse(report), nil
}

// RemoveAssignee clears the moderator and returns the report to fresh.
// Staff only.
func (s *reportServiceImpl) RemoveAssignee(ctx context.Context, actor *domain.Account, reportID uuid.UUID) (*dto.ReportResponse, error) {
	if err := permission.NewReportPDP(s.permissions, actor).EnsureManageAssignee(ctx, reportID); err != nil {
		return nil, err
	}
	report, err := s.findReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	report.ModeratorID = nil
	report.Status = domain.ReportStatusFresh
	report.ResolvedAt = nil
	if err := s.reportRepo.Update(ctx, report); err != nil {
		return nil, err
	}
	return dto.ToReportResponse(report), nil
}

func (s *reportServiceImpl) findReport(ctx context.Context, reportID uuid.UUID) (*domain.Report, error) {
	report, err := s.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("report", "id", reportID)
		}
		return nil, err
	}
	return report, nil
}

// verifyEntity checks that the reported entity actually exists
func (s *reportServiceImpl) verifyEntity(ctx context.Context, entityType domain.ReportEntityType, entityID uuid.UUID) error {
	var err error
	switch entityType {
	case domain.ReportEntityAccount:
		_, err = s.accountRepo.FindByID(ctx, entityID)
	case domain.ReportEntityBoard:
		_, err = s.boardRepo.FindByID(ctx, entityID)
	case domain.ReportEntityItem:
		_, err = s.itemRepo.FindByID(ctx, entityID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewEntityNotFound(string(entityType), "id", entityID)
		}
		return err
	}
	return nil
}
