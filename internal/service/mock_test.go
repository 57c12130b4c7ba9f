package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/client"
	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/repository"
)

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	CreateFunc                  func(ctx context.Context, account *domain.Account) error
	FindByIDFunc                func(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	FindByUsernameFunc          func(ctx context.Context, username string) (*domain.Account, error)
	FindByEmailFunc             func(ctx context.Context, email string) (*domain.Account, error)
	FindAllFunc                 func(ctx context.Context) ([]*domain.Account, error)
	UpdateFunc                  func(ctx context.Context, account *domain.Account) error
	DeleteFunc                  func(ctx context.Context, id uuid.UUID) error
	FindCustomerByAccountIDFunc func(ctx context.Context, accountID uuid.UUID) (*domain.Customer, error)
	SaveCustomerFunc            func(ctx context.Context, customer *domain.Customer) error
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	return nil
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	return nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockAccountRepository) FindCustomerByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Customer, error) {
	if m.FindCustomerByAccountIDFunc != nil {
		return m.FindCustomerByAccountIDFunc(ctx, accountID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockAccountRepository) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	if m.SaveCustomerFunc != nil {
		return m.SaveCustomerFunc(ctx, customer)
	}
	return nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc        func(ctx context.Context, board *domain.Board) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindAllFunc       func(ctx context.Context) ([]*domain.Board, error)
	FindEditableFunc  func(ctx context.Context, accountID uuid.UUID) ([]*domain.Board, error)
	UpdateFunc        func(ctx context.Context, board *domain.Board) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	TransferOwnerFunc func(ctx context.Context, boardID, newOwnerID uuid.UUID) error
	HasEditorFunc     func(ctx context.Context, boardID, accountID uuid.UUID) (bool, error)
	FindEditorsFunc   func(ctx context.Context, boardID uuid.UUID) ([]*domain.Account, error)
	AddEditorFunc     func(ctx context.Context, boardID, accountID uuid.UUID) error
	RemoveEditorFunc  func(ctx context.Context, boardID, accountID uuid.UUID) error
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardRepository) FindAll(ctx context.Context) ([]*domain.Board, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindEditable(ctx context.Context, accountID uuid.UUID) ([]*domain.Board, error) {
	if m.FindEditableFunc != nil {
		return m.FindEditableFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardRepository) TransferOwner(ctx context.Context, boardID, newOwnerID uuid.UUID) error {
	if m.TransferOwnerFunc != nil {
		return m.TransferOwnerFunc(ctx, boardID, newOwnerID)
	}
	return nil
}

func (m *MockBoardRepository) HasEditor(ctx context.Context, boardID, accountID uuid.UUID) (bool, error) {
	if m.HasEditorFunc != nil {
		return m.HasEditorFunc(ctx, boardID, accountID)
	}
	return false, nil
}

func (m *MockBoardRepository) FindEditors(ctx context.Context, boardID uuid.UUID) ([]*domain.Account, error) {
	if m.FindEditorsFunc != nil {
		return m.FindEditorsFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockBoardRepository) AddEditor(ctx context.Context, boardID, accountID uuid.UUID) error {
	if m.AddEditorFunc != nil {
		return m.AddEditorFunc(ctx, boardID, accountID)
	}
	return nil
}

func (m *MockBoardRepository) RemoveEditor(ctx context.Context, boardID, accountID uuid.UUID) error {
	if m.RemoveEditorFunc != nil {
		return m.RemoveEditorFunc(ctx, boardID, accountID)
	}
	return nil
}

// MockItemRepository is a mock implementation of ItemRepository. Transaction
// runs the callback against the mock itself.
type MockItemRepository struct {
	CreateFunc                func(ctx context.Context, item *domain.Item) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	FindByBoardFunc           func(ctx context.Context, boardID uuid.UUID) ([]*domain.Item, error)
	FindChildrenFunc          func(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error)
	FindChildrenForUpdateFunc func(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error)
	CountChildrenFunc         func(ctx context.Context, listID uuid.UUID) (int64, error)
	CountByOwnerFunc          func(ctx context.Context, ownerID uuid.UUID) (int64, error)
	UpdateFunc                func(ctx context.Context, item *domain.Item) error
	DeleteFunc                func(ctx context.Context, id uuid.UUID) error
	ShiftIndicesFunc          func(ctx context.Context, listID uuid.UUID, fromIndex int) error
	CollapseIndicesFunc       func(ctx context.Context, listID uuid.UUID, removedIndex int) error
	CreateTodoItemFunc        func(ctx context.Context, todo *domain.TodoItem) error
	FindTodoItemByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error)
	FindTodoItemsFunc         func(ctx context.Context, itemID uuid.UUID) ([]*domain.TodoItem, error)
	UpdateTodoItemFunc        func(ctx context.Context, todo *domain.TodoItem) error
	DeleteTodoItemFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockItemRepository) Transaction(ctx context.Context, fn func(txRepo repository.ItemRepository) error) error {
	return fn(m)
}

func (m *MockItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockItemRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Item, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockItemRepository) FindChildren(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error) {
	if m.FindChildrenFunc != nil {
		return m.FindChildrenFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockItemRepository) FindChildrenForUpdate(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error) {
	if m.FindChildrenForUpdateFunc != nil {
		return m.FindChildrenForUpdateFunc(ctx, listID)
	}
	return nil, nil
}

func (m *MockItemRepository) CountChildren(ctx context.Context, listID uuid.UUID) (int64, error) {
	if m.CountChildrenFunc != nil {
		return m.CountChildrenFunc(ctx, listID)
	}
	return 0, nil
}

func (m *MockItemRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if m.CountByOwnerFunc != nil {
		return m.CountByOwnerFunc(ctx, ownerID)
	}
	return 0, nil
}

func (m *MockItemRepository) Update(ctx context.Context, item *domain.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockItemRepository) ShiftIndices(ctx context.Context, listID uuid.UUID, fromIndex int) error {
	if m.ShiftIndicesFunc != nil {
		return m.ShiftIndicesFunc(ctx, listID, fromIndex)
	}
	return nil
}

func (m *MockItemRepository) CollapseIndices(ctx context.Context, listID uuid.UUID, removedIndex int) error {
	if m.CollapseIndicesFunc != nil {
		return m.CollapseIndicesFunc(ctx, listID, removedIndex)
	}
	return nil
}

func (m *MockItemRepository) CreateTodoItem(ctx context.Context, todo *domain.TodoItem) error {
	if m.CreateTodoItemFunc != nil {
		return m.CreateTodoItemFunc(ctx, todo)
	}
	return nil
}

func (m *MockItemRepository) FindTodoItemByID(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error) {
	if m.FindTodoItemByIDFunc != nil {
		return m.FindTodoItemByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockItemRepository) FindTodoItems(ctx context.Context, itemID uuid.UUID) ([]*domain.TodoItem, error) {
	if m.FindTodoItemsFunc != nil {
		return m.FindTodoItemsFunc(ctx, itemID)
	}
	return nil, nil
}

func (m *MockItemRepository) UpdateTodoItem(ctx context.Context, todo *domain.TodoItem) error {
	if m.UpdateTodoItemFunc != nil {
		return m.UpdateTodoItemFunc(ctx, todo)
	}
	return nil
}

func (m *MockItemRepository) DeleteTodoItem(ctx context.Context, id uuid.UUID) error {
	if m.DeleteTodoItemFunc != nil {
		return m.DeleteTodoItemFunc(ctx, id)
	}
	return nil
}

// MockPinRepository is a mock implementation of PinRepository
type MockPinRepository struct {
	CreateFunc          func(ctx context.Context, pin *domain.Pin) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Pin, error)
	FindByItemIDFunc    func(ctx context.Context, itemID uuid.UUID) (*domain.Pin, error)
	FindByBoardFunc     func(ctx context.Context, boardID uuid.UUID) ([]*domain.Pin, error)
	UpdateFunc          func(ctx context.Context, pin *domain.Pin) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	ConnectFunc         func(ctx context.Context, pinID, otherID uuid.UUID) error
	DisconnectFunc      func(ctx context.Context, pinID, otherID uuid.UUID) error
	LoadConnectionsFunc func(ctx context.Context, pin *domain.Pin) error
}

func (m *MockPinRepository) Create(ctx context.Context, pin *domain.Pin) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pin)
	}
	return nil
}

func (m *MockPinRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPinRepository) FindByItemID(ctx context.Context, itemID uuid.UUID) (*domain.Pin, error) {
	if m.FindByItemIDFunc != nil {
		return m.FindByItemIDFunc(ctx, itemID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockPinRepository) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Pin, error) {
	if m.FindByBoardFunc != nil {
		return m.FindByBoardFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockPinRepository) Update(ctx context.Context, pin *domain.Pin) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, pin)
	}
	return nil
}

func (m *MockPinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPinRepository) Connect(ctx context.Context, pinID, otherID uuid.UUID) error {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx, pinID, otherID)
	}
	return nil
}

func (m *MockPinRepository) Disconnect(ctx context.Context, pinID, otherID uuid.UUID) error {
	if m.DisconnectFunc != nil {
		return m.DisconnectFunc(ctx, pinID, otherID)
	}
	return nil
}

func (m *MockPinRepository) LoadConnections(ctx context.Context, pin *domain.Pin) error {
	if m.LoadConnectionsFunc != nil {
		return m.LoadConnectionsFunc(ctx, pin)
	}
	if pin.ConnectionIDs == nil {
		pin.ConnectionIDs = []uuid.UUID{}
	}
	return nil
}

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	CreateFunc               func(ctx context.Context, report *domain.Report) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	FindAllFunc              func(ctx context.Context) ([]*domain.Report, error)
	FindBySubmitterFunc      func(ctx context.Context, accountID uuid.UUID) ([]*domain.Report, error)
	FindByAssigneeFunc       func(ctx context.Context, moderatorID uuid.UUID) ([]*domain.Report, error)
	UpdateFunc               func(ctx context.Context, report *domain.Report) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	DeleteResolvedBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *MockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, report)
	}
	return nil
}

func (m *MockReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockReportRepository) FindAll(ctx context.Context) ([]*domain.Report, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockReportRepository) FindBySubmitter(ctx context.Context, accountID uuid.UUID) ([]*domain.Report, error) {
	if m.FindBySubmitterFunc != nil {
		return m.FindBySubmitterFunc(ctx, accountID)
	}
	return nil, nil
}

func (m *MockReportRepository) FindByAssignee(ctx context.Context, moderatorID uuid.UUID) ([]*domain.Report, error) {
	if m.FindByAssigneeFunc != nil {
		return m.FindByAssigneeFunc(ctx, moderatorID)
	}
	return nil, nil
}

func (m *MockReportRepository) Update(ctx context.Context, report *domain.Report) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, report)
	}
	return nil
}

func (m *MockReportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockReportRepository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.DeleteResolvedBeforeFunc != nil {
		return m.DeleteResolvedBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}

// MockMailClient is a mock implementation of MailClient
type MockMailClient struct {
	SendFunc func(ctx context.Context, message client.MailMessage) error
}

func (m *MockMailClient) Send(ctx context.Context, message client.MailMessage) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, message)
	}
	return nil
}
