package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/permission"
	"github.com/smotired/bulletinator/internal/response"
)

// Fixture for mock-driven service tests: one private board with an
// owner, an editor and a stranger, backed entirely by func-field mocks.
type serviceFixture struct {
	accounts *MockAccountRepository
	boards   *MockBoardRepository
	items    *MockItemRepository
	pins     *MockPinRepository
	reports  *MockReportRepository
	mail     *MockMailClient

	owner    *domain.Account
	editor   *domain.Account
	stranger *domain.Account
	staff    *domain.Account
	board    *domain.Board
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	f := &serviceFixture{
		items:   &MockItemRepository{},
		pins:    &MockPinRepository{},
		reports: &MockReportRepository{},
		mail:    &MockMailClient{},
	}
	f.owner = testAccount(domain.RoleUser, "owner")
	f.editor = testAccount(domain.RoleUser, "editor")
	f.stranger = testAccount(domain.RoleUser, "stranger")
	f.staff = testAccount(domain.RoleAppModerator, "staff")

	f.board = &domain.Board{OwnerID: f.owner.ID, Name: "plans", Icon: "default"}
	f.board.ID = uuid.New()

	f.accounts = &MockAccountRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
			for _, a := range []*domain.Account{f.owner, f.editor, f.stranger, f.staff} {
				if a.ID == id {
					return a, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	f.boards = &MockBoardRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
			if id == f.board.ID {
				return f.board, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		HasEditorFunc: func(ctx context.Context, boardID, accountID uuid.UUID) (bool, error) {
			return boardID == f.board.ID && accountID == f.editor.ID, nil
		},
	}
	return f
}

func (f *serviceFixture) permissions() permission.Deps {
	return permission.Deps{
		Boards:        f.boards,
		Accounts:      f.accounts,
		Items:         f.items,
		Reports:       f.reports,
		FreeItemLimit: 100,
	}
}

func testAccount(role domain.AccountRole, username string) *domain.Account {
	account := &domain.Account{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	account.ID = uuid.New()
	return account
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// stubItems makes FindByID resolve against a fixed set of items.
func (f *serviceFixture) stubItems(items ...*domain.Item) {
	f.items.FindByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
		for _, item := range items {
			if item.ID == id {
				return item, nil
			}
		}
		return nil, gorm.ErrRecordNotFound
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *response.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
