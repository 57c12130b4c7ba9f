package permission

import (
	"github.com/google/uuid"

	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/response"
)

// AccountPolicyDecisionPoint decides account operations for one acting
// account. Staff can read and delete any account; everything else is
// self-service only, and credential changes are never delegated to staff.
type AccountPolicyDecisionPoint struct {
	deps Deps
	pip  *PolicyInformationPoint
}

// NewAccountPDP creates an account decision point for the given acting account
func NewAccountPDP(deps Deps, account *domain.Account) *AccountPolicyDecisionPoint {
	return &AccountPolicyDecisionPoint{deps: deps, pip: deps.pip(account)}
}

func (p *AccountPolicyDecisionPoint) isSelf(targetID uuid.UUID) bool {
	return p.pip.Account() != nil && p.pip.AccountID() == targetID
}

// EnsureReadAll checks that the account can list every account. Staff only.
func (p *AccountPolicyDecisionPoint) EnsureReadAll() error {
	if !p.pip.IsAppStaff() {
		p.deps.denied("account")
		return response.NewNoPermissions("view all accounts", "account", p.pip.AccountID())
	}
	return nil
}

// EnsureRead checks that the account can view the target's full record.
// Non-staff readers of someone else's account are told it does not exist.
func (p *AccountPolicyDecisionPoint) EnsureRead(targetID uuid.UUID) error {
	if p.pip.IsAppStaff() || p.isSelf(targetID) {
		return nil
	}
	p.deps.denied("account")
	return response.NewEntityNotFound("account", "id", targetID)
}

// EnsureUpdate checks that the account can update the target's profile.
// Only the account itself.
func (p *AccountPolicyDecisionPoint) EnsureUpdate(targetID uuid.UUID) error {
	if p.isSelf(targetID) {
		return nil
	}
	p.deps.denied("account")
	if p.pip.IsAppStaff() {
		return response.NewNoPermissions("update account", "account", targetID)
	}
	return response.NewEntityNotFound("account", "id", targetID)
}

// EnsureUpdateCredentials checks that the account can change the target's
// email or password. Only the account itself, never staff.
func (p *AccountPolicyDecisionPoint) EnsureUpdateCredentials(targetID uuid.UUID) error {
	if p.isSelf(targetID) {
		return nil
	}
	p.deps.denied("account")
	if p.pip.IsAppStaff() {
		return response.NewNoPermissions("update credentials", "account", targetID)
	}
	return response.NewEntityNotFound("account", "id", targetID)
}

// EnsureDelete checks that the account can delete the target account.
// The account itself or staff.
func (p *AccountPolicyDecisionPoint) EnsureDelete(targetID uuid.UUID) error {
	if p.pip.IsAppStaff() || p.isSelf(targetID) {
		return nil
	}
	p.deps.denied("account")
	return response.NewEntityNotFound("account", "id", targetID)
}
