package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, board *domain.Board) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindAll(ctx context.Context) ([]*domain.Board, error)
	FindEditable(ctx context.Context, accountID uuid.UUID) ([]*domain.Board, error)
	Update(ctx context.Context, board *domain.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
	TransferOwner(ctx context.Context, boardID, newOwnerID uuid.UUID) error
	HasEditor(ctx context.Context, boardID, accountID uuid.UUID) (bool, error)
	FindEditors(ctx context.Context, boardID uuid.UUID) ([]*domain.Account, error)
	AddEditor(ctx context.Context, boardID, accountID uuid.UUID) error
	RemoveEditor(ctx context.Context, boardID, accountID uuid.UUID) error
}

// boardRepositoryImpl is the GORM implementation of BoardRepository
type boardRepositoryImpl struct {
	db *gorm.DB
}

// NewBoardRepository creates a new instance of BoardRepository
func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepositoryImpl{db: db}
}

// Create creates a new board
func (r *boardRepositoryImpl) Create(ctx context.Context, board *domain.Board) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a board by its ID
func (r *boardRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	var board domain.Board
	if err := r.db.WithContext(ctx).First(&board, id).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// FindAll returns every board ordered by creation time
func (r *boardRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// FindEditable returns the boards an account owns plus the boards it edits
func (r *boardRepositoryImpl) FindEditable(ctx context.Context, accountID uuid.UUID) ([]*domain.Board, error) {
	var boards []*domain.Board
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", accountID).
		Or("id IN (?)", r.db.Model(&domain.BoardEditor{}).Select("board_id").Where("account_id = ?", accountID)).
		Order("created_at ASC").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

// Update saves changed board fields
func (r *boardRepositoryImpl) Update(ctx context.Context, board *domain.Board) error {
	if err := r.db.WithContext(ctx).Save(board).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes a board along with its items, pins, connections and editor
// memberships
func (r *boardRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteBoardContents(tx, id); err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", id).Delete(&domain.BoardEditor{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Board{}, id).Error
	})
}

// TransferOwner moves ownership to another account and drops that account
// from the editor list in the same transaction
func (r *boardRepositoryImpl) TransferOwner(ctx context.Context, boardID, newOwnerID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Board{}).Where("id = ?", boardID).
			Update("owner_id", newOwnerID).Error; err != nil {
			return err
		}
		return tx.Where("board_id = ? AND account_id = ?", boardID, newOwnerID).
			Delete(&domain.BoardEditor{}).Error
	})
}

// HasEditor reports whether the account is on the board's editor list
func (r *boardRepositoryImpl) HasEditor(ctx context.Context, boardID, accountID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.BoardEditor{}).
		Where("board_id = ? AND account_id = ?", boardID, accountID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindEditors returns the accounts on the board's editor list
func (r *boardRepositoryImpl) FindEditors(ctx context.Context, boardID uuid.UUID) ([]*domain.Account, error) {
	var accounts []*domain.Account
	if err := r.db.WithContext(ctx).
		Where("id IN (?)", r.db.Model(&domain.BoardEditor{}).Select("account_id").Where("board_id = ?", boardID)).
		Order("created_at ASC").
		Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// AddEditor puts the account on the board's editor list. Adding an existing
// editor is a no-op.
func (r *boardRepositoryImpl) AddEditor(ctx context.Context, boardID, accountID uuid.UUID) error {
	exists, err := r.HasEditor(ctx, boardID, accountID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return r.db.WithContext(ctx).Create(&domain.BoardEditor{BoardID: boardID, AccountID: accountID}).Error
}

// RemoveEditor drops the account from the board's editor list
func (r *boardRepositoryImpl) RemoveEditor(ctx context.Context, boardID, accountID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND account_id = ?", boardID, accountID).
		Delete(&domain.BoardEditor{}).Error
}

// deleteBoardContents removes the items, todo entries, pins and pin
// connections belonging to one board inside an open transaction
func deleteBoardContents(tx *gorm.DB, boardID uuid.UUID) error {
	var pinIDs []uuid.UUID
	if err := tx.Model(&domain.Pin{}).Where("board_id = ?", boardID).Pluck("id", &pinIDs).Error; err != nil {
		return err
	}
	if len(pinIDs) > 0 {
		if err := tx.Where("pin_id IN ? OR connected_id IN ?", pinIDs, pinIDs).
			Delete(&domain.PinConnection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", boardID).Delete(&domain.Pin{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Where("item_id IN (?)",
		tx.Model(&domain.Item{}).Select("id").Where("board_id = ?", boardID)).
		Delete(&domain.TodoItem{}).Error; err != nil {
		return err
	}
	return tx.Where("board_id = ?", boardID).Delete(&domain.Item{}).Error
}
