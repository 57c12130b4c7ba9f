package service

import (
	"context"
	"errors"
	"sort"

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

// ItemService defines the interface for item business logic: creation with
// list or free placement, field edits, placement moves, cascade deletion and
// todo entries. All mutations run inside a transaction so list indices stay
// contiguous or roll back whole.
type ItemService interface {
	ListBoardItems(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.ItemResponse, error)
	Get(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID) (*dto.ItemResponse, error)
	Create(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.CreateItemRequest) (*dto.ItemResponse, error)
	Update(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID, req *dto.UpdateItemRequest) (*dto.ItemResponse, error)
	Delete(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID) error

	AddTodoItem(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID, req *dto.CreateTodoItemRequest) (*dto.TodoItemResponse, error)
	UpdateTodoItem(ctx context.Context, actor *domain.Account, boardID, itemID, todoID uuid.UUID, req *dto.UpdateTodoItemRequest) (*dto.TodoItemResponse, error)
	DeleteTodoItem(ctx context.Context, actor *domain.Account, boardID, itemID, todoID uuid.UUID) error
}

// itemServiceImpl is the implementation of ItemService
type itemServiceImpl struct {
	itemRepo    repository.ItemRepository
	pinRepo     repository.PinRepository
	permissions permission.Deps
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewItemService creates a new instance of ItemService
func NewItemService(
	itemRepo repository.ItemRepository,
	pinRepo repository.PinRepository,
	permissions permission.Deps,
	m *metrics.Metrics,
	logger *zap.Logger,
) ItemService {
	return &itemServiceImpl{
		itemRepo:    itemRepo,
		pinRepo:     pinRepo,
		permissions: permissions,
		metrics:     m,
		logger:      logger,
	}
}

// ListBoardItems returns the board's top-level items with nested list
// contents, todo entries and pins
func (s *itemServiceImpl) ListBoardItems(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.ItemResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureRead(ctx, boardID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	pins, err := s.pinRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	pinsByItem := make(map[uuid.UUID]*domain.Pin, len(pins))
	for _, pin := range pins {
		pinsByItem[pin.ItemID] = pin
	}

	byList := make(map[uuid.UUID][]*domain.Item)
	var topLevel []*domain.Item
	for _, item := range items {
		if item.InList() {
			byList[*item.ListID] = append(byList[*item.ListID], item)
		} else {
			topLevel = append(topLevel, item)
		}
	}

	// FindByBoard orders by created_at; list contents must come back in
	// list_index order
	for _, children := range byList {
		sort.Slice(children, func(i, j int) bool {
			return *children[i].Index < *children[j].Index
		})
	}

	responses := make([]*dto.ItemResponse, 0, len(topLevel))
	for _, item := range topLevel {
		if err := s.populate(ctx, item, byList[item.ID], pinsByItem); err != nil {
			return nil, err
		}
		responses = append(responses, dto.ToItemResponse(item))
	}
	return responses, nil
}

// Get returns one item with its nested contents
func (s *itemServiceImpl) Get(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID) (*dto.ItemResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureRead(ctx, boardID); err != nil {
		return nil, err
	}
	item, err := s.findItem(ctx, s.itemRepo, boardID, itemID)
	if err != nil {
		return nil, err
	}

	var children []*domain.Item
	if item.Type == domain.ItemTypeList {
		if children, err = s.itemRepo.FindChildren(ctx, item.ID); err != nil {
			return nil, err
		}
	}
	if err := s.populate(ctx, item, children, nil); err != nil {
		return nil, err
	}
	return dto.ToItemResponse(item), nil
}

// Create creates an item on a board, either freely positioned or inserted
// into a list at a validated index
func (s *itemServiceImpl) Create(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.CreateItemRequest) (*dto.ItemResponse, error) {
	itemType := domain.ItemType(req.Type)
	if !itemType.Valid() {
		return nil, response.NewInvalidItemType(req.Type)
	}
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureCreateItem(ctx, boardID, itemType); err != nil {
		return nil, err
	}

	item := &domain.Item{
		BoardID: boardID,
		Type:    itemType,
		Text:    req.Text,
		Size:    req.Size,
		Title:   req.Title,
		URL:     req.URL,
	}
	if err := validateItemFields(item); err != nil {
		return nil, err
	}
	if req.ListID != nil && req.Position != nil {
		return nil, response.NewInvalidField(*req.Position, "position")
	}
	if itemType == domain.ItemTypeNote && item.Size == nil {
		size := domain.DefaultNoteSize
		item.Size = &size
	}

	err := s.itemRepo.Transaction(ctx, func(txRepo repository.ItemRepository) error {
		if req.ListID != nil {
			list, err := s.resolveList(ctx, txRepo, boardID, *req.ListID, itemType)
			if err != nil {
				return err
			}
			return s.insertIntoList(ctx, txRepo, item, list.ID, req.Index, true)
		}

		position := domain.DefaultPosition
		if req.Position != nil {
			position = *req.Position
		}
		item.Position = &position
		return txRepo.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementItemCreated(string(itemType))
	}
	s.logger.Info("Item created",
		zap.String("item_id", item.ID.String()),
		zap.String("board_id", boardID.String()),
		zap.String("type", string(itemType)),
	)
	return dto.ToItemResponse(item), nil
}

// Update applies field edits and placement moves to an item. Supplying
// list_id moves it into that list; supplying position moves it to free
// placement; supplying only index reorders it within its current list.
func (s *itemServiceImpl) Update(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID, req *dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.findItem(ctx, s.itemRepo, boardID, itemID)
	if err != nil {
		return nil, err
	}
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureUpdateItem(ctx, boardID, item.Type); err != nil {
		return nil, err
	}
	if req.ListID != nil && req.Position != nil {
		return nil, response.NewInvalidField(*req.Position, "position")
	}
	if err := applyItemEdits(item, req); err != nil {
		return nil, err
	}

	err = s.itemRepo.Transaction(ctx, func(txRepo repository.ItemRepository) error {
		switch {
		case req.ListID != nil:
			return s.moveIntoList(ctx, txRepo, item, boardID, *req.ListID, req.Index)
		case req.Position != nil:
			return s.moveToFreePlacement(ctx, txRepo, item, *req.Position)
		case req.Index != nil:
			if !item.InList() {
				return response.NewInvalidOperation("Cannot set an index on an item outside a list")
			}
			return s.moveIntoList(ctx, txRepo, item, boardID, *item.ListID, req.Index)
		default:
			return txRepo.Update(ctx, item)
		}
	})
	if err != nil {
		return nil, err
	}

	var children []*domain.Item
	if item.Type == domain.ItemTypeList {
		if children, err = s.itemRepo.FindChildren(ctx, item.ID); err != nil {
			return nil, err
		}
	}
	if err := s.populate(ctx, item, children, nil); err != nil {
		return nil, err
	}
	return dto.ToItemResponse(item), nil
}

// Delete removes an item, its descendants, todo entries and pins, and closes
// the index gap it leaves in its list
func (s *itemServiceImpl) Delete(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID) error {
	item, err := s.findItem(ctx, s.itemRepo, boardID, itemID)
	if err != nil {
		return err
	}
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureModify(ctx, boardID); err != nil {
		return err
	}

	return s.itemRepo.Transaction(ctx, func(txRepo repository.ItemRepository) error {
		if err := txRepo.Delete(ctx, item.ID); err != nil {
			return err
		}
		if item.InList() {
			return txRepo.CollapseIndices(ctx, *item.ListID, *item.Index)
		}
		return nil
	})
}

// AddTodoItem appends a todo entry to a todo-type item
func (s *itemServiceImpl) AddTodoItem(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID, req *dto.CreateTodoItemRequest) (*dto.TodoItemResponse, error) {
	item, err := s.findTodoParent(ctx, actor, boardID, itemID)
	if err != nil {
		return nil, err
	}
	todo := &domain.TodoItem{
		ItemID: item.ID,
		Text:   req.Text,
		Link:   req.Link,
	}
	if err := s.itemRepo.CreateTodoItem(ctx, todo); err != nil {
		return nil, err
	}
	return dto.ToTodoItemResponse(todo), nil
}

// UpdateTodoItem edits a todo entry
func (s *itemServiceImpl) UpdateTodoItem(ctx context.Context, actor *domain.Account, boardID, itemID, todoID uuid.UUID, req *dto.UpdateTodoItemRequest) (*dto.TodoItemResponse, error) {
	if _, err := s.findTodoParent(ctx, actor, boardID, itemID); err != nil {
		return nil, err
	}
	todo, err := s.findTodoEntry(ctx, itemID, todoID)
	if err != nil {
		return nil, err
	}

	if req.Text != nil {
		todo.Text = *req.Text
	}
	if req.Link != nil {
		todo.Link = req.Link
	}
	if req.Done != nil {
		todo.Done = *req.Done
	}
	if err := s.itemRepo.UpdateTodoItem(ctx, todo); err != nil {
		return nil, err
	}
	return dto.ToTodoItemResponse(todo), nil
}

// DeleteTodoItem removes a todo entry
func (s *itemServiceImpl) DeleteTodoItem(ctx context.Context, actor *domain.Account, boardID, itemID, todoID uuid.UUID) error {
	if _, err := s.findTodoParent(ctx, actor, boardID, itemID); err != nil {
		return err
	}
	todo, err := s.findTodoEntry(ctx, itemID, todoID)
	if err != nil {
		return err
	}
	return s.itemRepo.DeleteTodoItem(ctx, todo.ID)
}

// findItem loads an item and hides items on other boards behind not-found
func (s *itemServiceImpl) findItem(ctx context.Context, repo repository.ItemRepository, boardID, itemID uuid.UUID) (*domain.Item, error) {
	item, err := repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("item", "id", itemID)
		}
		return nil, err
	}
	if item.BoardID != boardID {
		return nil, response.NewEntityNotFound("item", "id", itemID)
	}
	return item, nil
}

// findTodoParent resolves a todo-type item and checks content modification
func (s *itemServiceImpl) findTodoParent(ctx context.Context, actor *domain.Account, boardID, itemID uuid.UUID) (*domain.Item, error) {
	item, err := s.findItem(ctx, s.itemRepo, boardID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Type != domain.ItemTypeTodo {
		return nil, response.NewItemTypeMismatch(item.ID, string(domain.ItemTypeTodo), string(item.Type))
	}
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureModify(ctx, boardID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemServiceImpl) findTodoEntry(ctx context.Context, itemID, todoID uuid.UUID) (*domain.TodoItem, error) {
	todo, err := s.itemRepo.FindTodoItemByID(ctx, todoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("todo item", "id", todoID)
		}
		return nil, err
	}
	if todo.ItemID != itemID {
		return nil, response.NewEntityNotFound("todo item", "id", todoID)
	}
	return todo, nil
}

// resolveList validates a list placement target: it must exist on the same
// board, actually be a list, and never receive another list
func (s *itemServiceImpl) resolveList(ctx context.Context, repo repository.ItemRepository, boardID, listID uuid.UUID, incoming domain.ItemType) (*domain.Item, error) {
	if incoming == domain.ItemTypeList {
		return nil, response.NewAddListToList()
	}
	list, err := s.findItem(ctx, repo, boardID, listID)
	if err != nil {
		return nil, err
	}
	if list.Type != domain.ItemTypeList {
		return nil, response.NewItemTypeMismatch(list.ID, string(domain.ItemTypeList), string(list.Type))
	}
	return list, nil
}

// insertIntoList opens a slot at the requested index (appending when nil)
// and writes the item into it. The list's children are row-locked for the
// surrounding transaction.
func (s *itemServiceImpl) insertIntoList(ctx context.Context, repo repository.ItemRepository, item *domain.Item, listID uuid.UUID, index *int, create bool) error {
	children, err := repo.FindChildrenForUpdate(ctx, listID)
	if err != nil {
		return err
	}
	idx := len(children)
	if index != nil {
		idx = *index
	}
	if idx < 0 || idx > len(children) {
		return response.NewIndexOutOfRange("list", listID, idx)
	}
	if err := repo.ShiftIndices(ctx, listID, idx); err != nil {
		return err
	}

	item.ListID = &listID
	item.Index = &idx
	item.Position = nil
	if create {
		return repo.Create(ctx, item)
	}
	return repo.Update(ctx, item)
}

// detachFromList removes the item from its current list and closes the gap
func (s *itemServiceImpl) detachFromList(ctx context.Context, repo repository.ItemRepository, item *domain.Item) error {
	if !item.InList() {
		return nil
	}
	listID, oldIndex := *item.ListID, *item.Index
	item.ListID = nil
	item.Index = nil
	if err := repo.Update(ctx, item); err != nil {
		return err
	}
	return repo.CollapseIndices(ctx, listID, oldIndex)
}

// moveIntoList composes detach and insert: validate the destination, detach
// from the source context, then insert at the destination index
func (s *itemServiceImpl) moveIntoList(ctx context.Context, repo repository.ItemRepository, item *domain.Item, boardID, listID uuid.UUID, index *int) error {
	if item.ID == listID {
		return response.NewInvalidOperation("Cannot add an item to itself")
	}
	list, err := s.resolveList(ctx, repo, boardID, listID, item.Type)
	if err != nil {
		return err
	}
	if err := s.detachFromList(ctx, repo, item); err != nil {
		return err
	}
	return s.insertIntoList(ctx, repo, item, list.ID, index, false)
}

// moveToFreePlacement detaches the item from any list and gives it a bare
// board position
func (s *itemServiceImpl) moveToFreePlacement(ctx context.Context, repo repository.ItemRepository, item *domain.Item, position string) error {
	if err := s.detachFromList(ctx, repo, item); err != nil {
		return err
	}
	item.Position = &position
	return repo.Update(ctx, item)
}

// populate fills an item's association fields for the response view. When
// children is nil and the item is a list, contents are left empty; pins come
// from the supplied map or a direct lookup.
func (s *itemServiceImpl) populate(ctx context.Context, item *domain.Item, children []*domain.Item, pinsByItem map[uuid.UUID]*domain.Pin) error {
	if err := s.attachPin(ctx, item, pinsByItem); err != nil {
		return err
	}

	switch item.Type {
	case domain.ItemTypeTodo:
		todos, err := s.itemRepo.FindTodoItems(ctx, item.ID)
		if err != nil {
			return err
		}
		item.TodoItems = make([]domain.TodoItem, len(todos))
		for i, todo := range todos {
			item.TodoItems[i] = *todo
		}
	case domain.ItemTypeList:
		item.Contents = make([]domain.Item, len(children))
		for i, child := range children {
			if err := s.populate(ctx, child, nil, pinsByItem); err != nil {
				return err
			}
			item.Contents[i] = *child
		}
	}
	return nil
}

func (s *itemServiceImpl) attachPin(ctx context.Context, item *domain.Item, pinsByItem map[uuid.UUID]*domain.Pin) error {
	if item.Type == domain.ItemTypeList {
		return nil
	}
	if pinsByItem != nil {
		item.Pin = pinsByItem[item.ID]
		return nil
	}
	pin, err := s.pinRepo.FindByItemID(ctx, item.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	item.Pin = pin
	return nil
}

// validateItemFields checks the type-required payload fields on creation.
// The switch is exhaustive over valid types.
func validateItemFields(item *domain.Item) error {
	var missing []string
	requireText := func() {
		if item.Text == nil || *item.Text == "" {
			missing = append(missing, "text")
		}
	}
	requireTitle := func() {
		if item.Title == nil || *item.Title == "" {
			missing = append(missing, "title")
		}
	}
	requireURL := func() {
		if item.URL == nil || *item.URL == "" {
			missing = append(missing, "url")
		}
	}

	switch item.Type {
	case domain.ItemTypeNote:
		requireText()
	case domain.ItemTypeLink:
		requireURL()
	case domain.ItemTypeMedia:
		requireURL()
	case domain.ItemTypeTodo:
		requireTitle()
	case domain.ItemTypeList:
		requireTitle()
	case domain.ItemTypeDocument:
		requireTitle()
	}
	if len(missing) > 0 {
		return response.NewMissingItemFields(string(item.Type), missing)
	}
	return nil
}

// applyItemEdits copies request fields onto the item, rejecting fields the
// item's type does not carry. The switch is exhaustive over valid types.
func applyItemEdits(item *domain.Item, req *dto.UpdateItemRequest) error {
	allowed := map[string]bool{}
	switch item.Type {
	case domain.ItemTypeNote:
		allowed["text"], allowed["size"] = true, true
	case domain.ItemTypeLink:
		allowed["url"], allowed["title"] = true, true
	case domain.ItemTypeMedia:
		allowed["url"] = true
	case domain.ItemTypeTodo:
		allowed["title"] = true
	case domain.ItemTypeList:
		allowed["title"] = true
	case domain.ItemTypeDocument:
		allowed["title"], allowed["text"] = true, true
	}

	if req.Text != nil {
		if !allowed["text"] {
			return response.NewInvalidField(*req.Text, "text")
		}
		item.Text = req.Text
	}
	if req.Size != nil {
		if !allowed["size"] {
			return response.NewInvalidField(*req.Size, "size")
		}
		item.Size = req.Size
	}
	if req.Title != nil {
		if !allowed["title"] {
			return response.NewInvalidField(*req.Title, "title")
		}
		item.Title = req.Title
	}
	if req.URL != nil {
		if !allowed["url"] {
			return response.NewInvalidField(*req.URL, "url")
		}
		item.URL = req.URL
	}
	return nil
}
