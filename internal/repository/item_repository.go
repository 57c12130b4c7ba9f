package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/smotired/bulletinator/internal/domain"
)

// ItemRepository defines the interface for item data access. List ordering
// mutations run inside Transaction so sibling indices stay contiguous under
// concurrent writers.
type ItemRepository interface {
	Transaction(ctx context.Context, fn func(txRepo ItemRepository) error) error

	Create(ctx context.Context, item *domain.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Item, error)
	FindChildren(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error)
	FindChildrenForUpdate(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error)
	CountChildren(ctx context.Context, listID uuid.UUID) (int64, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id uuid.UUID) error

	ShiftIndices(ctx context.Context, listID uuid.UUID, fromIndex int) error
	CollapseIndices(ctx context.Context, listID uuid.UUID, removedIndex int) error

	CreateTodoItem(ctx context.Context, todo *domain.TodoItem) error
	FindTodoItemByID(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error)
	FindTodoItems(ctx context.Context, itemID uuid.UUID) ([]*domain.TodoItem, error)
	UpdateTodoItem(ctx context.Context, todo *domain.TodoItem) error
	DeleteTodoItem(ctx context.Context, id uuid.UUID) error
}

// itemRepositoryImpl is the GORM implementation of ItemRepository
type itemRepositoryImpl struct {
	db *gorm.DB
}

// NewItemRepository creates a new instance of ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepositoryImpl{db: db}
}

// Transaction runs fn against a transaction-scoped repository
func (r *itemRepositoryImpl) Transaction(ctx context.Context, fn func(txRepo ItemRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&itemRepositoryImpl{db: tx})
	})
}

// Create creates a new item
func (r *itemRepositoryImpl) Create(ctx context.Context, item *domain.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds an item by its ID
func (r *itemRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByBoard returns every item on a board, list members ordered before
// positioned items so views can assemble list contents in one pass
func (r *itemRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Item, error) {
	var items []*domain.Item
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindChildren returns the items inside a list ordered by index
func (r *itemRepositoryImpl) FindChildren(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error) {
	var items []*domain.Item
	if err := r.db.WithContext(ctx).
		Where("list_id = ?", listID).
		Order("list_index ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindChildrenForUpdate returns the items inside a list ordered by index,
// row-locked for the duration of the surrounding transaction
func (r *itemRepositoryImpl) FindChildrenForUpdate(ctx context.Context, listID uuid.UUID) ([]*domain.Item, error) {
	var items []*domain.Item
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("list_id = ?", listID).
		Order("list_index ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountChildren returns the number of items inside a list
func (r *itemRepositoryImpl) CountChildren(ctx context.Context, listID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("list_id = ?", listID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByOwner returns the number of items across all boards owned by an
// account
func (r *itemRepositoryImpl) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("board_id IN (?)", r.db.Model(&domain.Board{}).Select("id").Where("owner_id = ?", ownerID)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update saves changed item fields
func (r *itemRepositoryImpl) Update(ctx context.Context, item *domain.Item) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes an item along with its descendants, todo entries, pins and
// pin connections
func (r *itemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := []uuid.UUID{id}
		// walk list containment breadth-first; cycles are impossible because
		// lists never nest
		frontier := ids
		for len(frontier) > 0 {
			var children []uuid.UUID
			if err := tx.Model(&domain.Item{}).Where("list_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}

		var pinIDs []uuid.UUID
		if err := tx.Model(&domain.Pin{}).Where("item_id IN ?", ids).Pluck("id", &pinIDs).Error; err != nil {
			return err
		}
		if len(pinIDs) > 0 {
			if err := tx.Where("pin_id IN ? OR connected_id IN ?", pinIDs, pinIDs).
				Delete(&domain.PinConnection{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", pinIDs).Delete(&domain.Pin{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("item_id IN ?", ids).Delete(&domain.TodoItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&domain.Item{}).Error
	})
}

// ShiftIndices opens a gap at fromIndex by incrementing the index of every
// sibling at or after it
func (r *itemRepositoryImpl) ShiftIndices(ctx context.Context, listID uuid.UUID, fromIndex int) error {
	return r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("list_id = ? AND list_index >= ?", listID, fromIndex).
		UpdateColumn("list_index", gorm.Expr("list_index + 1")).Error
}

// CollapseIndices closes the gap left at removedIndex by decrementing the
// index of every sibling after it
func (r *itemRepositoryImpl) CollapseIndices(ctx context.Context, listID uuid.UUID, removedIndex int) error {
	return r.db.WithContext(ctx).Model(&domain.Item{}).
		Where("list_id = ? AND list_index > ?", listID, removedIndex).
		UpdateColumn("list_index", gorm.Expr("list_index - 1")).Error
}

// CreateTodoItem creates a new todo entry under a todo item
func (r *itemRepositoryImpl) CreateTodoItem(ctx context.Context, todo *domain.TodoItem) error {
	if err := r.db.WithContext(ctx).Create(todo).Error; err != nil {
		return err
	}
	return nil
}

// FindTodoItemByID finds a todo entry by its ID
func (r *itemRepositoryImpl) FindTodoItemByID(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error) {
	var todo domain.TodoItem
	if err := r.db.WithContext(ctx).First(&todo, id).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

// FindTodoItems returns the todo entries under an item ordered by creation
// time
func (r *itemRepositoryImpl) FindTodoItems(ctx context.Context, itemID uuid.UUID) ([]*domain.TodoItem, error) {
	var todos []*domain.TodoItem
	if err := r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("created_at ASC").
		Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

// UpdateTodoItem saves changed todo entry fields
func (r *itemRepositoryImpl) UpdateTodoItem(ctx context.Context, todo *domain.TodoItem) error {
	if err := r.db.WithContext(ctx).Save(todo).Error; err != nil {
		return err
	}
	return nil
}

// DeleteTodoItem removes a todo entry
func (r *itemRepositoryImpl) DeleteTodoItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.TodoItem{}, id).Error
}
