package service

import (
	"context"
	"errors"

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

// PinService defines the interface for pin business logic: at most one pin
// per item, never on a list, and a symmetric connection graph between pins
// on the same board.
type PinService interface {
	ListBoardPins(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.PinResponse, error)
	Get(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID) (*dto.PinResponse, error)
	Create(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.CreatePinRequest) (*dto.PinResponse, error)
	Update(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID, req *dto.UpdatePinRequest) (*dto.PinResponse, error)
	Move(ctx context.Context, actor *domain.Account, boardID, pinID, itemID uuid.UUID) (*dto.PinResponse, error)
	Delete(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID) error
	Connect(ctx context.Context, actor *domain.Account, boardID, pinID, otherID uuid.UUID) ([]*dto.PinResponse, error)
	Disconnect(ctx context.Context, actor *domain.Account, boardID, pinID, otherID uuid.UUID) ([]*dto.PinResponse, error)
}

// pinServiceImpl is the implementation of PinService
type pinServiceImpl struct {
	pinRepo     repository.PinRepository
	itemRepo    repository.ItemRepository
	permissions permission.Deps
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewPinService creates a new instance of PinService
func NewPinService(
	pinRepo repository.PinRepository,
	itemRepo repository.ItemRepository,
	permissions permission.Deps,
	m *metrics.Metrics,
	logger *zap.Logger,
) PinService {
	return &pinServiceImpl{
		pinRepo:     pinRepo,
		itemRepo:    itemRepo,
		permissions: permissions,
		metrics:     m,
		logger:      logger,
	}
}

// ListBoardPins returns every pin on the board with its connections
func (s *pinServiceImpl) ListBoardPins(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.PinResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureRead(ctx, boardID); err != nil {
		return nil, err
	}
	pins, err := s.pinRepo.FindByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return dto.ToPinResponses(pins), nil
}

// Get returns one pin
func (s *pinServiceImpl) Get(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID) (*dto.PinResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureRead(ctx, boardID); err != nil {
		return nil, err
	}
	pin, err := s.findPin(ctx, boardID, pinID)
	if err != nil {
		return nil, err
	}
	return dto.ToPinResponse(pin), nil
}

// Create pins an item. The item must be on this board, not be a list, and
// not already carry a pin.
func (s *pinServiceImpl) Create(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.CreatePinRequest) (*dto.PinResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureModify(ctx, boardID); err != nil {
		return nil, err
	}
	if err := s.validatePinTarget(ctx, boardID, req.ItemID); err != nil {
		return nil, err
	}

	pin := &domain.Pin{
		BoardID: boardID,
		ItemID:  req.ItemID,
		Label:   req.Label,
		Compass: req.Compass,
	}
	if err := s.pinRepo.Create(ctx, pin); err != nil {
		return nil, err
	}
	pin.ConnectionIDs = []uuid.UUID{}
	return dto.ToPinResponse(pin), nil
}

// Update edits the pin's label or compass flag
func (s *pinServiceImpl) Update(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID, req *dto.UpdatePinRequest) (*dto.PinResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureModify(ctx, boardID); err != nil {
		return nil, err
	}
	pin, err := s.findPin(ctx, boardID, pinID)
	if err != nil {
		return nil, err
	}

	if req.Label != nil {
		pin.Label = req.Label
	}
	if req.Compass != nil {
		pin.Compass = *req.Compass
	}
	if err := s.pinRepo.Update(ctx, pin); err != nil {
		return nil, err
	}
	return dto.ToPinResponse(pin), nil
}

// Move re-attaches the pin to another item, re-validating the pin target
// rules against the new item first. The target must be unpinned, so moving a
// pin onto its own item is a duplicate.
func (s *pinServiceImpl) Move(ctx context.Context, actor *domain.Account, boardID, pinID, itemID uuid.UUID) (*dto.PinResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureModify(ctx, boardID); err != nil {
		return nil, err
	}
	pin, err := s.findPin(ctx, boardID, pinID)
	if err != nil {
		return nil, err
	}
	if err := s.validatePinTarget(ctx, boardID, itemID); err != nil {
		return nil, err
	}

	pin.ItemID = itemID
	if err := s.pinRepo.Update(ctx, pin); err != nil {
		return nil, err
	}
	return dto.ToPinResponse(pin), nil
}

// Delete removes a pin; every other pin's connection set is scrubbed of it
func (s *pinServiceImpl) Delete(ctx context.Context, actor *domain.Account, boardID, pinID uuid.UUID) error {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureModify(ctx, boardID); err != nil {
		return err
	}
	pin, err := s.findPin(ctx, boardID, pinID)
	if err != nil {
		return err
	}
	return s.pinRepo.Delete(ctx, pin.ID)
}

// Connect links two pins on the board. Connecting a pin to itself is
// rejected; reconnecting an existing edge is a no-op. The response carries
// both pins, in the order the caller named them.
func (s *pinServiceImpl) Connect(ctx context.Context, actor *domain.Account, boardID, pinID, otherID uuid.UUID) ([]*dto.PinResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureModify(ctx, boardID); err != nil {
		return nil, err
	}
	if pinID == otherID {
		return nil, response.NewInvalidOperation("Cannot connect a pin to itself")
	}
	pin, err := s.findPin(ctx, boardID, pinID)
	if err != nil {
		return nil, err
	}
	other, err := s.findPin(ctx, boardID, otherID)
	if err != nil {
		return nil, err
	}

	if err := s.pinRepo.Connect(ctx, pin.ID, otherID); err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.IncrementPinConnected()
	}
	return s.connectionViews(ctx, pin, other)
}

// Disconnect removes the edge between two pins. Disconnecting pins that were
// never connected is a no-op. Like Connect, both pins come back in caller
// order.
func (s *pinServiceImpl) Disconnect(ctx context.Context, actor *domain.Account, boardID, pinID, otherID uuid.UUID) ([]*dto.PinResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureModify(ctx, boardID); err != nil {
		return nil, err
	}
	pin, err := s.findPin(ctx, boardID, pinID)
	if err != nil {
		return nil, err
	}
	other, err := s.findPin(ctx, boardID, otherID)
	if err != nil {
		return nil, err
	}

	if err := s.pinRepo.Disconnect(ctx, pin.ID, otherID); err != nil {
		return nil, err
	}
	return s.connectionViews(ctx, pin, other)
}

// connectionViews reloads both endpoints' connection sets and returns their
// views in the given order
func (s *pinServiceImpl) connectionViews(ctx context.Context, pin, other *domain.Pin) ([]*dto.PinResponse, error) {
	if err := s.pinRepo.LoadConnections(ctx, pin); err != nil {
		return nil, err
	}
	if err := s.pinRepo.LoadConnections(ctx, other); err != nil {
		return nil, err
	}
	return []*dto.PinResponse{dto.ToPinResponse(pin), dto.ToPinResponse(other)}, nil
}

// findPin loads a pin and hides pins on other boards behind not-found
func (s *pinServiceImpl) findPin(ctx context.Context, boardID, pinID uuid.UUID) (*domain.Pin, error) {
	pin, err := s.pinRepo.FindByID(ctx, pinID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("pin", "id", pinID)
		}
		return nil, err
	}
	if pin.BoardID != boardID {
		return nil, response.NewEntityNotFound("pin", "id", pinID)
	}
	return pin, nil
}

// validatePinTarget enforces the pin target rules: the item exists on this
// board, is not a list, and carries no other pin
func (s *pinServiceImpl) validatePinTarget(ctx context.Context, boardID, itemID uuid.UUID) error {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewEntityNotFound("item", "id", itemID)
		}
		return err
	}
	if item.BoardID != boardID {
		return response.NewEntityNotFound("item", "id", itemID)
	}
	if item.Type == domain.ItemTypeList {
		return response.NewInvalidOperation("Cannot pin a list item")
	}

	if _, err := s.pinRepo.FindByItemID(ctx, itemID); err == nil {
		return response.NewDuplicateEntity("pin", "item_id", itemID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
