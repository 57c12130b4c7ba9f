package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
)

// PinRepository defines the interface for pin data access. Connections are
// stored as two directed rows per edge so either endpoint can enumerate its
// neighbors with a single indexed lookup.
type PinRepository interface {
	Create(ctx context.Context, pin *domain.Pin) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error)
	FindByItemID(ctx context.Context, itemID uuid.UUID) (*domain.Pin, error)
	FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Pin, error)
	Update(ctx context.Context, pin *domain.Pin) error
	Delete(ctx context.Context, id uuid.UUID) error
	Connect(ctx context.Context, pinID, otherID uuid.UUID) error
	Disconnect(ctx context.Context, pinID, otherID uuid.UUID) error
	LoadConnections(ctx context.Context, pin *domain.Pin) error
}

// pinRepositoryImpl is the GORM implementation of PinRepository
type pinRepositoryImpl struct {
	db *gorm.DB
}

// NewPinRepository creates a new instance of PinRepository
func NewPinRepository(db *gorm.DB) PinRepository {
	return &pinRepositoryImpl{db: db}
}

// Create creates a new pin
func (r *pinRepositoryImpl) Create(ctx context.Context, pin *domain.Pin) error {
	if err := r.db.WithContext(ctx).Create(pin).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a pin by its ID with connections loaded
func (r *pinRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Pin, error) {
	var pin domain.Pin
	if err := r.db.WithContext(ctx).First(&pin, id).Error; err != nil {
		return nil, err
	}
	if err := r.LoadConnections(ctx, &pin); err != nil {
		return nil, err
	}
	return &pin, nil
}

// FindByItemID finds the pin attached to an item, with connections loaded
func (r *pinRepositoryImpl) FindByItemID(ctx context.Context, itemID uuid.UUID) (*domain.Pin, error) {
	var pin domain.Pin
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&pin).Error; err != nil {
		return nil, err
	}
	if err := r.LoadConnections(ctx, &pin); err != nil {
		return nil, err
	}
	return &pin, nil
}

// FindByBoard returns every pin on a board with connections loaded
func (r *pinRepositoryImpl) FindByBoard(ctx context.Context, boardID uuid.UUID) ([]*domain.Pin, error) {
	var pins []*domain.Pin
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&pins).Error; err != nil {
		return nil, err
	}
	for _, pin := range pins {
		if err := r.LoadConnections(ctx, pin); err != nil {
			return nil, err
		}
	}
	return pins, nil
}

// Update saves changed pin fields
func (r *pinRepositoryImpl) Update(ctx context.Context, pin *domain.Pin) error {
	if err := r.db.WithContext(ctx).Save(pin).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes a pin and both directions of every edge touching it
func (r *pinRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pin_id = ? OR connected_id = ?", id, id).
			Delete(&domain.PinConnection{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Pin{}, id).Error
	})
}

// Connect records an edge between two pins in both directions. Connecting
// already-connected pins is a no-op.
func (r *pinRepositoryImpl) Connect(ctx context.Context, pinID, otherID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.PinConnection{}).
			Where("pin_id = ? AND connected_id = ?", pinID, otherID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
		rows := []domain.PinConnection{
			{PinID: pinID, ConnectedID: otherID},
			{PinID: otherID, ConnectedID: pinID},
		}
		return tx.Create(&rows).Error
	})
}

// Disconnect removes both directions of the edge between two pins.
// Disconnecting unconnected pins is a no-op.
func (r *pinRepositoryImpl) Disconnect(ctx context.Context, pinID, otherID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("(pin_id = ? AND connected_id = ?) OR (pin_id = ? AND connected_id = ?)",
			pinID, otherID, otherID, pinID).
		Delete(&domain.PinConnection{}).Error
}

// LoadConnections fills the pin's neighbor id list from its outgoing edges
func (r *pinRepositoryImpl) LoadConnections(ctx context.Context, pin *domain.Pin) error {
	ids := []uuid.UUID{}
	if err := r.db.WithContext(ctx).Model(&domain.PinConnection{}).
		Where("pin_id = ?", pin.ID).
		Order("connected_id ASC").
		Pluck("connected_id", &ids).Error; err != nil {
		return err
	}
	pin.ConnectionIDs = ids
	return nil
}
