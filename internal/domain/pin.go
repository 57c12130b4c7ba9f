package domain

import "github.com/google/uuid"

// Pin is a visual anchor attached to a single non-list item. Pins on the same
// board can be connected to each other; the connection relation is symmetric.
type Pin struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_pins_board_id" json:"board_id"`
	ItemID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_pins_item_id" json:"item_id"`
	Label   *string   `gorm:"type:varchar(255)" json:"label,omitempty"`
	Compass bool      `gorm:"not null;default:false" json:"compass"`

	// ConnectionIDs holds the ids of connected pins. Stored through the
	// pin_connections table, one row per direction, and loaded by the
	// repository rather than through an association so cascade cleanup
	// stays explicit.
	ConnectionIDs []uuid.UUID `gorm:"-" json:"connections"`
}

// PinConnection is one direction of a symmetric edge between two pins. Every
// edge is persisted as two rows, (A,B) and (B,A).
type PinConnection struct {
	PinID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"pin_id"`
	ConnectedID uuid.UUID `gorm:"type:uuid;primaryKey" json:"connected_id"`
}

// TableName specifies the table name for Pin
func (Pin) TableName() string {
	return "pins"
}

// TableName specifies the table name for PinConnection
func (PinConnection) TableName() string {
	return "pin_connections"
}
