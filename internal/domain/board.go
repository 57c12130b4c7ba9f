package domain

import "github.com/google/uuid"

// Board represents a bulletin board owned by exactly one account
type Board struct {
	BaseModel
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_boards_owner_id" json:"owner_id"`
	Name    string    `gorm:"type:varchar(255);not null" json:"name"`
	Icon    string    `gorm:"type:varchar(64);not null;default:'default'" json:"icon"`
	Public  bool      `gorm:"not null;default:false" json:"public"`
	Owner   *Account  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Editors []Account `gorm:"many2many:board_editors;constraint:OnDelete:CASCADE" json:"editors,omitempty"`
	Items   []Item    `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BoardEditor is a row of the join table granting an account edit access to a
// board. The owner is never present in this table.
type BoardEditor struct {
	BoardID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"board_id"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey" json:"account_id"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// TableName specifies the table name for BoardEditor
func (BoardEditor) TableName() string {
	return "board_editors"
}
