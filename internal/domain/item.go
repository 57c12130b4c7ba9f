package domain

import "github.com/google/uuid"

// ItemType discriminates the polymorphic item payload
type ItemType string

const (
	ItemTypeNote     ItemType = "note"
	ItemTypeLink     ItemType = "link"
	ItemTypeMedia    ItemType = "media"
	ItemTypeTodo     ItemType = "todo"
	ItemTypeList     ItemType = "list"
	ItemTypeDocument ItemType = "document"
)

// Valid reports whether this is a known item type
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeNote, ItemTypeLink, ItemTypeMedia, ItemTypeTodo, ItemTypeList, ItemTypeDocument:
		return true
	}
	return false
}

// Premium reports whether creating or editing items of this type requires the
// board owner to hold a premium subscription
func (t ItemType) Premium() bool {
	return t == ItemTypeDocument
}

// RequiredFields returns the payload fields that must be present when creating
// an item of this type. The switch is exhaustive over valid types.
func (t ItemType) RequiredFields() []string {
	switch t {
	case ItemTypeNote:
		return []string{"text"}
	case ItemTypeLink:
		return []string{"url"}
	case ItemTypeMedia:
		return []string{"url"}
	case ItemTypeTodo:
		return []string{"title"}
	case ItemTypeList:
		return []string{"title"}
	case ItemTypeDocument:
		return []string{"title"}
	}
	return nil
}

// DefaultNoteSize is applied to notes created without an explicit size.
const DefaultNoteSize = "300,200"

// DefaultPosition is applied to free-placed items created without a position.
const DefaultPosition = "0,0"

// Item represents a positionable content entity on a board.
//
// Placement is exclusive: either Position is set (free placement on the board
// surface) or ListID and Index are both set (contained in a list item at a
// contiguous zero-based index). Never both, never neither.
//
// The payload columns are a tagged union keyed by Type:
//
//	note:     Text, Size
//	link:     Title (optional), URL
//	media:    URL, Size (optional)
//	todo:     Title, TodoItems
//	list:     Title, Contents
//	document: Title, Text (optional)
type Item struct {
	BaseModel
	BoardID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_items_board_id" json:"board_id"`
	Type     ItemType   `gorm:"type:varchar(16);not null" json:"type"`
	Position *string    `gorm:"type:varchar(32)" json:"position,omitempty"`
	ListID   *uuid.UUID `gorm:"type:uuid;index:idx_items_list_id" json:"list_id,omitempty"`
	Index    *int       `gorm:"column:list_index" json:"index,omitempty"`

	Text  *string `gorm:"type:text" json:"text,omitempty"`
	Size  *string `gorm:"type:varchar(32)" json:"size,omitempty"`
	Title *string `gorm:"type:varchar(255)" json:"title,omitempty"`
	URL   *string `gorm:"type:text" json:"url,omitempty"`

	Contents  []Item     `gorm:"foreignKey:ListID" json:"contents,omitempty"`
	TodoItems []TodoItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"todo_items,omitempty"`
	Pin       *Pin       `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"pin,omitempty"`
}

// InList reports whether the item currently has list placement
func (i *Item) InList() bool {
	return i.ListID != nil
}

// TodoItem is a lightweight entry inside a todo-type item, ordered by creation
// rather than by index
type TodoItem struct {
	BaseModel
	ItemID uuid.UUID `gorm:"type:uuid;not null;index:idx_todo_items_item_id" json:"item_id"`
	Text   string    `gorm:"type:text;not null" json:"text"`
	Link   *string   `gorm:"type:text" json:"link,omitempty"`
	Done   bool      `gorm:"not null;default:false" json:"done"`
}

// TableName specifies the table name for Item
func (Item) TableName() string {
	return "items"
}

// TableName specifies the table name for TodoItem
func (TodoItem) TableName() string {
	return "todo_items"
}
