package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/dto"
	"github.com/smotired/bulletinator/internal/middleware"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// withAccount installs a middleware that plants the actor the way the auth
// middleware would
func withAccount(r *gin.Engine, account *domain.Account) {
	r.Use(func(c *gin.Context) {
		if account != nil {
			c.Set(middleware.AccountKey, account)
		}
		c.Next()
	})
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// MockBoardService is a mock implementation of service.BoardService
type MockBoardService struct {
	ListEditableFunc  func(ctx context.Context, actor *domain.Account) ([]*dto.BoardResponse, error)
	ListAllFunc       func(ctx context.Context, actor *domain.Account) ([]*dto.BoardResponse, error)
	CreateFunc        func(ctx context.Context, actor *domain.Account, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetFunc           func(ctx context.Context, actor *domain.Account, boardID uuid.UUID) (*dto.BoardResponse, error)
	UpdateFunc        func(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	DeleteFunc        func(ctx context.Context, actor *domain.Account, boardID uuid.UUID) error
	ListEditorsFunc   func(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.ProfileResponse, error)
	AddEditorFunc     func(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) error
	RemoveEditorFunc  func(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) error
	TransferFunc      func(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) (*dto.BoardResponse, error)
}

func (m *MockBoardService) ListEditable(ctx context.Context, actor *domain.Account) ([]*dto.BoardResponse, error) {
	if m.ListEditableFunc != nil {
		return m.ListEditableFunc(ctx, actor)
	}
	return nil, nil
}

func (m *MockBoardService) ListAll(ctx context.Context, actor *domain.Account) ([]*dto.BoardResponse, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, actor)
	}
	return nil, nil
}

func (m *MockBoardService) Create(ctx context.Context, actor *domain.Account, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockBoardService) Get(ctx context.Context, actor *domain.Account, boardID uuid.UUID) (*dto.BoardResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) Update(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, boardID, req)
	}
	return nil, nil
}

func (m *MockBoardService) Delete(ctx context.Context, actor *domain.Account, boardID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, boardID)
	}
	return nil
}

func (m *MockBoardService) ListEditors(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.ProfileResponse, error) {
	if m.ListEditorsFunc != nil {
		return m.ListEditorsFunc(ctx, actor, boardID)
	}
	return nil, nil
}

func (m *MockBoardService) AddEditor(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) error {
	if m.AddEditorFunc != nil {
		return m.AddEditorFunc(ctx, actor, boardID, accountID)
	}
	return nil
}

func (m *MockBoardService) RemoveEditor(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) error {
	if m.RemoveEditorFunc != nil {
		return m.RemoveEditorFunc(ctx, actor, boardID, accountID)
	}
	return nil
}

func (m *MockBoardService) Transfer(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) (*dto.BoardResponse, error) {
	if m.TransferFunc != nil {
		return m.TransferFunc(ctx, actor, boardID, accountID)
	}
	return nil, nil
}

// MockItemService is a mock implementation of service.ItemService
type MockItemService struct {
	ListBoardItemsFunc func(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.ItemResponse, error)
	GetFunc            func(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID) (*dto.ItemResponse, error)
	CreateFunc         func(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.CreateItemRequest) (*dto.ItemResponse, error)
	UpdateFunc         func(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID, req *dto.UpdateItemRequest) (*dto.ItemResponse, error)
	DeleteFunc         func(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID) error
	AddTodoItemFunc    func(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID, req *dto.CreateTodoItemRequest) (*dto.TodoItemResponse, error)
	UpdateTodoItemFunc func(ctx context.Context, actor *domain.Account, boardID, itemID, todoID uuid.UUID, req *dto.UpdateTodoItemRequest) (*dto.TodoItemResponse, error)
	DeleteTodoItemFunc func(ctx context.Context, actor *domain.Account, boardID, itemID, todoID uuid.UUID) error
}

func (m *MockItemService) ListBoardItems(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.ItemResponse, error) {
	if m.ListBoardItemsFunc != nil {
		return m.ListBoardItemsFunc(ctx, actor, boardID)
	}
	return nil, nil
}

func (m *MockItemService) Get(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID) (*dto.ItemResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, boardID, itemID)
	}
	return nil, nil
}

func (m *MockItemService) Create(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, boardID, req)
	}
	return nil, nil
}

func (m *MockItemService) Update(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID, req *dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, boardID, itemID, req)
	}
	return nil, nil
}

func (m *MockItemService) Delete(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, boardID, itemID)
	}
	return nil
}

func (m *MockItemService) AddTodoItem(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID, req *dto.CreateTodoItemRequest) (*dto.TodoItemResponse, error) {
	if m.AddTodoItemFunc != nil {
		return m.AddTodoItemFunc(ctx, actor, boardID, itemID, req)
	}
	return nil, nil
}

func (m *MockItemService) UpdateTodoItem(ctx context.Context, actor *domain.Account, boardID, itemID, todoID uuid.UUID, req *dto.UpdateTodoItemRequest) (*dto.TodoItemResponse, error) {
	if m.UpdateTodoItemFunc != nil {
		return m.UpdateTodoItemFunc(ctx, actor, boardID, itemID, todoID, req)
	}
	return nil, nil
}

func (m *MockItemService) DeleteTodoItem(ctx context.Context, actor *domain.Account, boardID, itemID, todoID uuid.UUID) error {
	if m.DeleteTodoItemFunc != nil {
		return m.DeleteTodoItemFunc(ctx, actor, boardID, itemID, todoID)
	}
	return nil
}

// MockPinService is a mock implementation of service.PinService
type MockPinService struct {
	ListBoardPinsFunc func(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.PinResponse, error)
	GetFunc           func(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID) (*dto.PinResponse, error)
	CreateFunc        func(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.CreatePinRequest) (*dto.PinResponse, error)
	UpdateFunc        func(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID, req *dto.UpdatePinRequest) (*dto.PinResponse, error)
	MoveFunc          func(ctx context.Context, actor *domain.Account, boardID, pinID, itemID uuid.UUID) (*dto.PinResponse, error)
	DeleteFunc        func(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID) error
	ConnectFunc       func(ctx context.Context, actor *domain.Account, boardID, pinID, otherID uuid.UUID) ([]*dto.PinResponse, error)
	DisconnectFunc    func(ctx context.Context, actor *domain.Account, boardID, pinID, otherID uuid.UUID) ([]*dto.PinResponse, error)
}

func (m *MockPinService) ListBoardPins(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.PinResponse, error) {
	if m.ListBoardPinsFunc != nil {
		return m.ListBoardPinsFunc(ctx, actor, boardID)
	}
	return nil, nil
}

func (m *MockPinService) Get(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID) (*dto.PinResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, boardID, pinID)
	}
	return nil, nil
}

func (m *MockPinService) Create(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.CreatePinRequest) (*dto.PinResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, boardID, req)
	}
	return nil, nil
}

func (m *MockPinService) Update(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID, req *dto.UpdatePinRequest) (*dto.PinResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, boardID, pinID, req)
	}
	return nil, nil
}

func (m *MockPinService) Move(ctx context.Context, actor *domain.Account, boardID, pinID, itemID uuid.UUID) (*dto.PinResponse, error) {
	if m.MoveFunc != nil {
		return m.MoveFunc(ctx, actor, boardID, pinID, itemID)
	}
	return nil, nil
}

func (m *MockPinService) Delete(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, boardID, pinID)
	}
	return nil
}

func (m *MockPinService) Connect(ctx context.Context, actor *domain.Account, boardID, pinID, otherID uuid.UUID) ([]*dto.PinResponse, error) {
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx, actor, boardID, pinID, otherID)
	}
	return nil, nil
}

func (m *MockPinService) Disconnect(ctx context.Context, actor *domain.Account, boardID, pinID, otherID uuid.UUID) ([]*dto.PinResponse, error) {
	if m.DisconnectFunc != nil {
		return m.DisconnectFunc(ctx, actor, boardID, pinID, otherID)
	}
	return nil, nil
}

// MockReportService is a mock implementation of service.ReportService
type MockReportService struct {
	ListAllFunc        func(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error)
	ListSubmittedFunc  func(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error)
	ListAssignedFunc   func(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error)
	GetFunc            func(ctx context.Context, actor *domain.Account, reportID uuid.UUID) (*dto.ReportResponse, error)
	CreateFunc         func(ctx context.Context, actor *domain.Account, req *dto.CreateReportRequest) (*dto.ReportResponse, error)
	UpdateTextFunc     func(ctx context.Context, actor *domain.Account, reportID uuid.UUID, req *dto.UpdateReportRequest) (*dto.ReportResponse, error)
	UpdateStatusFunc   func(ctx context.Context, actor *domain.Account, reportID uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error)
	DeleteFunc         func(ctx context.Context, actor *domain.Account, reportID uuid.UUID) error
	SetAssigneeFunc    func(ctx context.Context, actor *domain.Account, reportID, accountID uuid.UUID) (*dto.ReportResponse, error)
	RemoveAssigneeFunc func(ctx context.Context, actor *domain.Account, reportID uuid.UUID) (*dto.ReportResponse, error)
}

func (m *MockReportService) ListAll(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, actor)
	}
	return nil, nil
}

func (m *MockReportService) ListSubmitted(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error) {
	if m.ListSubmittedFunc != nil {
		return m.ListSubmittedFunc(ctx, actor)
	}
	return nil, nil
}

func (m *MockReportService) ListAssigned(ctx context.Context, actor *domain.Account) ([]*dto.ReportResponse, error) {
	if m.ListAssignedFunc != nil {
		return m.ListAssignedFunc(ctx, actor)
	}
	return nil, nil
}

func (m *MockReportService) Get(ctx context.Context, actor *domain.Account, reportID uuid.UUID) (*dto.ReportResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, actor, reportID)
	}
	return nil, nil
}

func (m *MockReportService) Create(ctx context.Context, actor *domain.Account, req *dto.CreateReportRequest) (*dto.ReportResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, actor, req)
	}
	return nil, nil
}

func (m *MockReportService) UpdateText(ctx context.Context, actor *domain.Account, reportID uuid.UUID, req *dto.UpdateReportRequest) (*dto.ReportResponse, error) {
	if m.UpdateTextFunc != nil {
		return m.UpdateTextFunc(ctx, actor, reportID, req)
	}
	return nil, nil
}

func (m *MockReportService) UpdateStatus(ctx context.Context, actor *domain.Account, reportID uuid.UUID, req *dto.UpdateReportStatusRequest) (*dto.ReportResponse, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, actor, reportID, req)
	}
	return nil, nil
}

func (m *MockReportService) Delete(ctx context.Context, actor *domain.Account, reportID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, reportID)
	}
	return nil
}

func (m *MockReportService) SetAssignee(ctx context.Context, actor *domain.Account, reportID, accountID uuid.UUID) (*dto.ReportResponse, error) {
	if m.SetAssigneeFunc != nil {
		return m.SetAssigneeFunc(ctx, actor, reportID, accountID)
	}
	return nil, nil
}

func (m *MockReportService) RemoveAssignee(ctx context.Context, actor *domain.Account, reportID uuid.UUID) (*dto.ReportResponse, error) {
	if m.RemoveAssigneeFunc != nil {
		return m.RemoveAssigneeFunc(ctx, actor, reportID)
	}
	return nil, nil
}

// MockAccountService is a mock implementation of service.AccountService
type MockAccountService struct {
	GetCurrentFunc    func(ctx context.Context, actor *domain.Account) (*dto.AccountResponse, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*dto.ProfileResponse, error)
	ListAllFunc       func(ctx context.Context, actor *domain.Account) ([]*dto.AccountResponse, error)
	UpdateFunc        func(ctx context.Context, actor *domain.Account, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*dto.AccountResponse, error)
	DeleteFunc        func(ctx context.Context, actor *domain.Account, accountID uuid.UUID) error
}

func (m *MockAccountService) GetCurrent(ctx context.Context, actor *domain.Account) (*dto.AccountResponse, error) {
	if m.GetCurrentFunc != nil {
		return m.GetCurrentFunc(ctx, actor)
	}
	return nil, nil
}

func (m *MockAccountService) GetByUsername(ctx context.Context, username string) (*dto.ProfileResponse, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *MockAccountService) ListAll(ctx context.Context, actor *domain.Account) ([]*dto.AccountResponse, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, actor)
	}
	return nil, nil
}

func (m *MockAccountService) Update(ctx context.Context, actor *domain.Account, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, actor, accountID, req)
	}
	return nil, nil
}

func (m *MockAccountService) Delete(ctx context.Context, actor *domain.Account, accountID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, actor, accountID)
	}
	return nil
}
