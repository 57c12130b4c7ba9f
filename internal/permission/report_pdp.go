package permission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/response"
)

// ReportPolicyDecisionPoint decides report operations for one acting account.
//
// Reports are visible only to staff and their submitter; everyone else gets
// not-found rather than forbidden so the existence of a report never leaks.
type ReportPolicyDecisionPoint struct {
	deps Deps
	pip  *PolicyInformationPoint
}

// NewReportPDP creates a report decision point for the given acting account
func NewReportPDP(deps Deps, account *domain.Account) *ReportPolicyDecisionPoint {
	return &ReportPolicyDecisionPoint{deps: deps, pip: deps.pip(account)}
}

func (p *ReportPolicyDecisionPoint) report(ctx context.Context, reportID uuid.UUID) (*domain.Report, error) {
	report, err := p.deps.Reports.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("report", "id", reportID)
		}
		return nil, err
	}
	return report, nil
}

// EnsureCreate checks that the account can submit reports. Anyone
// authenticated can.
func (p *ReportPolicyDecisionPoint) EnsureCreate() error {
	if p.pip.Account() == nil {
		p.deps.denied("report")
		return response.NewNotAuthenticated()
	}
	return nil
}

// EnsureReadAll checks that the account can list every report. Staff only.
func (p *ReportPolicyDecisionPoint) EnsureReadAll() error {
	if !p.pip.IsAppStaff() {
		p.deps.denied("report")
		return response.NewNoPermissions("view all reports", "account", p.pip.AccountID())
	}
	return nil
}

// EnsureQueryAll checks that the account can list its own submitted or
// assigned reports. Anyone authenticated can.
func (p *ReportPolicyDecisionPoint) EnsureQueryAll() error {
	if p.pip.Account() == nil {
		p.deps.denied("report")
		return response.NewNotAuthenticated()
	}
	return nil
}

// EnsureRead checks that the account can view this report: staff or the
// submitter, not-found otherwise.
func (p *ReportPolicyDecisionPoint) EnsureRead(ctx context.Context, reportID uuid.UUID) error {
	if p.pip.IsAppStaff() {
		return nil
	}
	report, err := p.report(ctx, reportID)
	if err != nil {
		return err
	}
	if !p.pip.IsReportSubmitter(report) {
		p.deps.denied("report")
		return response.NewEntityNotFound("report", "id", reportID)
	}
	return nil
}

// EnsureUpdate checks that the account can edit the report text. Submitter
// only: staff who can see the report are still forbidden, accounts who
// cannot see it get not-found.
func (p *ReportPolicyDecisionPoint) EnsureUpdate(ctx context.Context, reportID uuid.UUID) error {
	report, err := p.report(ctx, reportID)
	if err != nil {
		return err
	}
	if p.pip.IsReportSubmitter(report) {
		return nil
	}
	p.deps.denied("report")
	if p.pip.IsAppStaff() {
		return response.NewNoPermissions("update report", "report", reportID)
	}
	return response.NewEntityNotFound("report", "id", reportID)
}

// EnsureUpdateStatus checks that the account can move the report through its
// status state machine. The assigned moderator only.
func (p *ReportPolicyDecisionPoint) EnsureUpdateStatus(ctx context.Context, reportID uuid.UUID) error {
	report, err := p.report(ctx, reportID)
	if err != nil {
		return err
	}
	if p.pip.IsReportAssignee(report) {
		return nil
	}
	p.deps.denied("report")
	if p.pip.IsAppStaff() || p.pip.IsReportSubmitter(report) {
		return response.NewNoPermissions("update report status", "report", reportID)
	}
	return response.NewEntityNotFound("report", "id", reportID)
}

// EnsureDelete checks that the account can delete the report. Submitter or
// staff, not-found otherwise.
func (p *ReportPolicyDecisionPoint) EnsureDelete(ctx context.Context, reportID uuid.UUID) error {
	if p.pip.IsAppStaff() {
		return nil
	}
	report, err := p.report(ctx, reportID)
	if err != nil {
		return err
	}
	if !p.pip.IsReportSubmitter(report) {
		p.deps.denied("report")
		return response.NewEntityNotFound("report", "id", reportID)
	}
	return nil
}

// EnsureManageAssignee checks that the account can set or remove the
// report's assignee. Staff only; the submitter sees forbidden, everyone else
// not-found.
func (p *ReportPolicyDecisionPoint) EnsureManageAssignee(ctx context.Context, reportID uuid.UUID) error {
	if p.pip.IsAppStaff() {
		return nil
	}
	report, err := p.report(ctx, reportID)
	if err != nil {
		return err
	}
	p.deps.denied("report")
	if p.pip.IsReportSubmitter(report) {
		return response.NewNoPermissions("manage assignee", "report", reportID)
	}
	return response.NewEntityNotFound("report", "id", reportID)
}

// EnsureBecomeAssignee checks that this PDP's account can be assigned to the
// report. The prospective assignee must itself be staff.
func (p *ReportPolicyDecisionPoint) EnsureBecomeAssignee(reportID uuid.UUID) error {
	if !p.pip.IsAppStaff() {
		p.deps.denied("report")
		return response.NewInvalidOperation(
			fmt.Sprintf("Cannot assign report with id=%s to account with id=%s", reportID, p.pip.AccountID()))
	}
	return nil
}
