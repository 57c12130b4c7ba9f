package permission

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
)

type mockBoardStore struct {
	FindByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	HasEditorFunc func(ctx context.Context, boardID, accountID uuid.UUID) (bool, error)
}

func (m *mockBoardStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBoardStore) HasEditor(ctx context.Context, boardID, accountID uuid.UUID) (bool, error) {
	if m.HasEditorFunc != nil {
		return m.HasEditorFunc(ctx, boardID, accountID)
	}
	return false, nil
}

type mockAccountStore struct {
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	FindCustomerByAccountIDFunc func(ctx context.Context, accountID uuid.UUID) (*domain.Customer, error)
}

func (m *mockAccountStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAccountStore) FindCustomerByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Customer, error) {
	if m.FindCustomerByAccountIDFunc != nil {
		return m.FindCustomerByAccountIDFunc(ctx, accountID)
	}
	return nil, gorm.ErrRecordNotFound
}

type mockItemStore struct {
	CountByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

func (m *mockItemStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if m.CountByOwnerFunc != nil {
		return m.CountByOwnerFunc(ctx, ownerID)
	}
	return 0, nil
}

type mockReportStore struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
}

func (m *mockReportStore) FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func newAccount(role domain.AccountRole) *domain.Account {
	account := &domain.Account{Role: role}
	account.ID = uuid.New()
	return account
}
