// Package permission implements the authorization engine: a policy
// information point that resolves relationship facts between an acting
// account and a target entity, and per-resource policy decision points that
// compose those facts into allow/deny outcomes with typed errors.
package permission

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
)

// BoardStore is the read-side board access the engine needs
type BoardStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	HasEditor(ctx context.Context, boardID, accountID uuid.UUID) (bool, error)
}

// AccountStore is the read-side account access the engine needs
type AccountStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	FindCustomerByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Customer, error)
}

// ItemStore is the read-side item access the engine needs
type ItemStore interface {
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// ReportStore is the read-side report access the engine needs
type ReportStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error)
}

// PolicyInformationPoint resolves relationship facts between an account and
// other entities. All facts are computed fresh per call so they never go
// stale across mutations within one request.
type PolicyInformationPoint struct {
	boards   BoardStore
	accounts AccountStore
	items    ItemStore
	account  *domain.Account // acting account; nil when unauthenticated
}

// NewPolicyInformationPoint creates a PIP for the given account. The account
// may be nil for unauthenticated requests; every fact is then false.
func NewPolicyInformationPoint(boards BoardStore, accounts AccountStore, items ItemStore, account *domain.Account) *PolicyInformationPoint {
	return &PolicyInformationPoint{
		boards:   boards,
		accounts: accounts,
		items:    items,
		account:  account,
	}
}

// Account returns the account this PIP resolves facts for
func (p *PolicyInformationPoint) Account() *domain.Account {
	return p.account
}

// AccountID returns the acting account id, or uuid.Nil when unauthenticated
func (p *PolicyInformationPoint) AccountID() uuid.UUID {
	if p.account == nil {
		return uuid.Nil
	}
	return p.account.ID
}

// IsAppStaff reports whether the account holds an application staff role
func (p *PolicyInformationPoint) IsAppStaff() bool {
	return p.account != nil && p.account.Role.IsStaff()
}

// IsBoardOwner reports whether the account owns this board
func (p *PolicyInformationPoint) IsBoardOwner(board *domain.Board) bool {
	return p.account != nil && board != nil && board.OwnerID == p.account.ID
}

// IsBoardEditor reports whether the account is listed as an editor of this board
func (p *PolicyInformationPoint) IsBoardEditor(ctx context.Context, board *domain.Board) (bool, error) {
	if p.account == nil || board == nil {
		return false, nil
	}
	return p.boards.HasEditor(ctx, board.ID, p.account.ID)
}

// IsReportSubmitter reports whether the account submitted this report
func (p *PolicyInformationPoint) IsReportSubmitter(report *domain.Report) bool {
	return p.account != nil && report != nil && report.AccountID == p.account.ID
}

// IsReportAssignee reports whether the account is the assigned moderator of
// this report. Staff role is a precondition: a stale moderator_id pointing at
// a demoted account grants nothing.
func (p *PolicyInformationPoint) IsReportAssignee(report *domain.Report) bool {
	if !p.IsAppStaff() || report == nil || report.ModeratorID == nil {
		return false
	}
	return *report.ModeratorID == p.account.ID
}

// IsPremium reports whether the account's subscription grants premium
// features. Accounts without a customer record are free tier.
func (p *PolicyInformationPoint) IsPremium(ctx context.Context) (bool, error) {
	if p.account == nil {
		return false, nil
	}
	customer, err := p.accounts.FindCustomerByAccountID(ctx, p.account.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return customer.Type.IsPremium(), nil
}

// CreatedItemCount returns the number of items across all boards owned by
// this account
func (p *PolicyInformationPoint) CreatedItemCount(ctx context.Context) (int64, error) {
	if p.account == nil {
		return 0, nil
	}
	return p.items.CountByOwner(ctx, p.account.ID)
}
