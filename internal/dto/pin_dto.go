package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/smotired/bulletinator/internal/domain"
)

// CreatePinRequest carries the fields for pinning an item
type CreatePinRequest struct {
	ItemID  uuid.UUID `json:"item_id" binding:"required"`
	Label   *string   `json:"label" binding:"omitempty,max=255"`
	Compass bool      `json:"compass"`
}

// UpdatePinRequest carries pin field edits. Nil fields are left untouched.
type UpdatePinRequest struct {
	Label   *string `json:"label" binding:"omitempty,max=255"`
	Compass *bool   `json:"compass"`
}

// ConnectPinRequest identifies the other endpoint of a connection
type ConnectPinRequest struct {
	PinID uuid.UUID `json:"pin_id" binding:"required"`
}

// PinResponse is the API view of a pin with its connected pin ids
type PinResponse struct {
	ID          uuid.UUID   `json:"id"`
	BoardID     uuid.UUID   `json:"board_id"`
	ItemID      uuid.UUID   `json:"item_id"`
	Label       *string     `json:"label,omitempty"`
	Compass     bool        `json:"compass"`
	Connections []uuid.UUID `json:"connections"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ToPinResponse converts a pin to its API view
func ToPinResponse(pin *domain.Pin) *PinResponse {
	connections := pin.ConnectionIDs
	if connections == nil {
		connections = []uuid.UUID{}
	}
	return &PinResponse{
		ID:          pin.ID,
		BoardID:     pin.BoardID,
		ItemID:      pin.ItemID,
		Label:       pin.Label,
		Compass:     pin.Compass,
		Connections: connections,
		CreatedAt:   pin.CreatedAt,
	}
}

// ToPinResponses converts a pin slice to its API view
func ToPinResponses(pins []*domain.Pin) []*PinResponse {
	responses := make([]*PinResponse, len(pins))
	for i, pin := range pins {
		responses[i] = ToPinResponse(pin)
	}
	return responses
}
