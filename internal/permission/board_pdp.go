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

// BoardPolicyDecisionPoint decides board operations for one acting account.
// Every Ensure method either returns nil (authorized) or a typed denial.
//
// Composition used throughout: staff bypass first, then the read check, which
// reports "not found" rather than "forbidden" for boards the account cannot
// see, then the capability check, which reports "forbidden".
type BoardPolicyDecisionPoint struct {
	deps Deps
	pip  *PolicyInformationPoint
}

// NewBoardPDP creates a board decision point for the given acting account.
// The account may be nil for unauthenticated requests.
func NewBoardPDP(deps Deps, account *domain.Account) *BoardPolicyDecisionPoint {
	return &BoardPolicyDecisionPoint{deps: deps, pip: deps.pip(account)}
}

// board loads the target, hiding storage-level absence behind the same
// not-found error the visibility rules use.
func (p *BoardPolicyDecisionPoint) board(ctx context.Context, boardID uuid.UUID) (*domain.Board, error) {
	board, err := p.deps.Boards.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("board", "id", boardID)
		}
		return nil, err
	}
	return board, nil
}

// EnsureCreate checks that the account can create boards. Anyone
// authenticated can.
func (p *BoardPolicyDecisionPoint) EnsureCreate() error {
	if p.pip.Account() == nil {
		p.deps.denied("board")
		return response.NewNotAuthenticated()
	}
	return nil
}

// EnsureReadAll checks that the account can list every board. Staff only.
func (p *BoardPolicyDecisionPoint) EnsureReadAll() error {
	if !p.pip.IsAppStaff() {
		p.deps.denied("board")
		return response.NewNoPermissions("view all boards", "account", p.pip.AccountID())
	}
	return nil
}

// EnsureRead checks that the account can view this board: staff, the owner,
// an editor, or anyone when the board is public. Invisible boards report
// not-found so their existence does not leak.
func (p *BoardPolicyDecisionPoint) EnsureRead(ctx context.Context, boardID uuid.UUID) error {
	if p.pip.IsAppStaff() {
		return nil
	}
	board, err := p.board(ctx, boardID)
	if err != nil {
		return err
	}
	if board.Public || p.pip.IsBoardOwner(board) {
		return nil
	}
	editor, err := p.pip.IsBoardEditor(ctx, board)
	if err != nil {
		return err
	}
	if !editor {
		p.deps.denied("board")
		return response.NewEntityNotFound("board", "id", boardID)
	}
	return nil
}

// EnsureUpdate checks that the account can change board fields. Owner only.
func (p *BoardPolicyDecisionPoint) EnsureUpdate(ctx context.Context, boardID uuid.UUID) error {
	return p.ensureOwner(ctx, boardID, "manage board")
}

// EnsureModify checks that the account can change board contents (items,
// pins). Owner or editor.
func (p *BoardPolicyDecisionPoint) EnsureModify(ctx context.Context, boardID uuid.UUID) error {
	if p.pip.IsAppStaff() {
		return nil
	}
	if err := p.EnsureRead(ctx, boardID); err != nil {
		return err
	}
	board, err := p.board(ctx, boardID)
	if err != nil {
		return err
	}
	if p.pip.IsBoardOwner(board) {
		return nil
	}
	editor, err := p.pip.IsBoardEditor(ctx, board)
	if err != nil {
		return err
	}
	if !editor {
		p.deps.denied("board")
		return response.NewNoPermissions("modify board", "board", boardID)
	}
	return nil
}

// EnsureDelete checks that the account can delete the board. Owner only.
func (p *BoardPolicyDecisionPoint) EnsureDelete(ctx context.Context, boardID uuid.UUID) error {
	return p.ensureOwner(ctx, boardID, "delete board")
}

// EnsureViewEditors checks that the account can see the editor list. Owner
// or editor.
func (p *BoardPolicyDecisionPoint) EnsureViewEditors(ctx context.Context, boardID uuid.UUID) error {
	if p.pip.IsAppStaff() {
		return nil
	}
	if err := p.EnsureRead(ctx, boardID); err != nil {
		return err
	}
	board, err := p.board(ctx, boardID)
	if err != nil {
		return err
	}
	if p.pip.IsBoardOwner(board) {
		return nil
	}
	editor, err := p.pip.IsBoardEditor(ctx, board)
	if err != nil {
		return err
	}
	if !editor {
		p.deps.denied("board")
		return response.NewNoPermissions("view editors", "board", boardID)
	}
	return nil
}

// EnsureManageEditors checks that the account can invite or remove editors.
// Owner only.
func (p *BoardPolicyDecisionPoint) EnsureManageEditors(ctx context.Context, boardID uuid.UUID) error {
	return p.ensureOwner(ctx, boardID, "manage editors")
}

// EnsureRemoveEditor checks removal of a specific editor. Editors may always
// remove themselves; removing anyone else requires manage-editors.
func (p *BoardPolicyDecisionPoint) EnsureRemoveEditor(ctx context.Context, boardID, editorID uuid.UUID) error {
	if p.pip.AccountID() == editorID {
		return nil
	}
	return p.EnsureManageEditors(ctx, boardID)
}

// EnsureBecomeEditor checks that this account may be added as an editor of
// the board. The owner can never also be an editor.
func (p *BoardPolicyDecisionPoint) EnsureBecomeEditor(ctx context.Context, boardID uuid.UUID) error {
	board, err := p.board(ctx, boardID)
	if err != nil {
		return err
	}
	if p.pip.IsBoardOwner(board) {
		p.deps.denied("board")
		return response.NewAddBoardOwnerAsEditor()
	}
	return nil
}

// EnsureTransfer checks that the account can transfer board ownership. Owner
// only.
func (p *BoardPolicyDecisionPoint) EnsureTransfer(ctx context.Context, boardID uuid.UUID) error {
	return p.ensureOwner(ctx, boardID, "transfer board")
}

// EnsureBecomeOwner checks that this account can receive ownership of the
// board: it must be able to create boards and already be an editor.
func (p *BoardPolicyDecisionPoint) EnsureBecomeOwner(ctx context.Context, boardID uuid.UUID) error {
	if err := p.EnsureCreate(); err != nil {
		return err
	}
	board, err := p.board(ctx, boardID)
	if err != nil {
		return err
	}
	editor, err := p.pip.IsBoardEditor(ctx, board)
	if err != nil {
		return err
	}
	if !editor {
		p.deps.denied("board")
		return response.NewInvalidOperation(
			fmt.Sprintf("Cannot transfer board with id=%s to account with id=%s", boardID, p.pip.AccountID()))
	}
	return nil
}

// EnsureCreateItem checks content modification plus subscription-tier gating
// for creating an item of the given type. Tier facts are evaluated against
// the board owner, never the acting editor.
func (p *BoardPolicyDecisionPoint) EnsureCreateItem(ctx context.Context, boardID uuid.UUID, itemType domain.ItemType) error {
	if err := p.EnsureModify(ctx, boardID); err != nil {
		return err
	}
	ownerPIP, err := p.ownerPIP(ctx, boardID)
	if err != nil {
		return err
	}
	premium, err := ownerPIP.IsPremium(ctx)
	if err != nil {
		return err
	}
	if premium {
		return nil
	}
	if itemType.Premium() {
		p.deps.denied("item")
		return response.NewPremiumFeature()
	}
	count, err := ownerPIP.CreatedItemCount(ctx)
	if err != nil {
		return err
	}
	if count >= int64(p.deps.FreeItemLimit) {
		p.deps.denied("item")
		return response.NewItemLimitExceeded()
	}
	return nil
}

// EnsureUpdateItem checks content modification plus the premium-type gate for
// updating an item of the given type. The item count is not re-checked on
// update.
func (p *BoardPolicyDecisionPoint) EnsureUpdateItem(ctx context.Context, boardID uuid.UUID, itemType domain.ItemType) error {
	if err := p.EnsureModify(ctx, boardID); err != nil {
		return err
	}
	if !itemType.Premium() {
		return nil
	}
	ownerPIP, err := p.ownerPIP(ctx, boardID)
	if err != nil {
		return err
	}
	premium, err := ownerPIP.IsPremium(ctx)
	if err != nil {
		return err
	}
	if !premium {
		p.deps.denied("item")
		return response.NewPremiumFeature()
	}
	return nil
}

// ownerPIP builds a fact resolver for the board owner, used for tier gating.
func (p *BoardPolicyDecisionPoint) ownerPIP(ctx context.Context, boardID uuid.UUID) (*PolicyInformationPoint, error) {
	board, err := p.board(ctx, boardID)
	if err != nil {
		return nil, err
	}
	owner, err := p.deps.Accounts.FindByID(ctx, board.OwnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("account", "id", board.OwnerID)
		}
		return nil, err
	}
	return p.deps.pip(owner), nil
}

// ensureOwner is the shared staff-bypass / read / owner composition.
func (p *BoardPolicyDecisionPoint) ensureOwner(ctx context.Context, boardID uuid.UUID, action string) error {
	if p.pip.IsAppStaff() {
		return nil
	}
	if err := p.EnsureRead(ctx, boardID); err != nil {
		return err
	}
	board, err := p.board(ctx, boardID)
	if err != nil {
		return err
	}
	if !p.pip.IsBoardOwner(board) {
		p.deps.denied("board")
		return response.NewNoPermissions(action, "board", boardID)
	}
	return nil
}
