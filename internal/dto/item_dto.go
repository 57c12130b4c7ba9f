package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/smotired/bulletinator/internal/domain"
)

// CreateItemRequest carries the fields for creating an item. ListID places
// the new item inside a list; Index picks the slot (appended when nil).
// Position places it freely on the board; the two are mutually exclusive.
type CreateItemRequest struct {
	Type     string     `json:"type" binding:"required"`
	ListID   *uuid.UUID `json:"list_id"`
	Index    *int       `json:"index"`
	Position *string    `json:"position" binding:"omitempty,max=32"`

	Text  *string `json:"text"`
	Size  *string `json:"size" binding:"omitempty,max=32"`
	Title *string `json:"title" binding:"omitempty,max=255"`
	URL   *string `json:"url"`
}

// UpdateItemRequest carries item field edits and placement moves. Nil fields
// are left untouched. Supplying ListID moves the item into that list;
// supplying Position moves it to free placement and clears any list slot.
type UpdateItemRequest struct {
	ListID   *uuid.UUID `json:"list_id"`
	Index    *int       `json:"index"`
	Position *string    `json:"position" binding:"omitempty,max=32"`

	Text  *string `json:"text"`
	Size  *string `json:"size" binding:"omitempty,max=32"`
	Title *string `json:"title" binding:"omitempty,max=255"`
	URL   *string `json:"url"`
}

// CreateTodoItemRequest carries the fields for a new todo entry
type CreateTodoItemRequest struct {
	Text string  `json:"text" binding:"required"`
	Link *string `json:"link"`
}

// UpdateTodoItemRequest carries todo entry edits. Nil fields are left
// untouched.
type UpdateTodoItemRequest struct {
	Text *string `json:"text"`
	Link *string `json:"link"`
	Done *bool   `json:"done"`
}

// TodoItemResponse is the API view of a todo entry
type TodoItemResponse struct {
	ID     uuid.UUID `json:"id"`
	ItemID uuid.UUID `json:"item_id"`
	Text   string    `json:"text"`
	Link   *string   `json:"link,omitempty"`
	Done   bool      `json:"done"`
}

// ItemResponse is the API view of an item. Only the fields belonging to the
// item's type are populated.
type ItemResponse struct {
	ID       uuid.UUID       `json:"id"`
	BoardID  uuid.UUID       `json:"board_id"`
	Type     domain.ItemType `json:"type"`
	Position *string         `json:"position,omitempty"`
	ListID   *uuid.UUID      `json:"list_id,omitempty"`
	Index    *int            `json:"index,omitempty"`

	Text  *string `json:"text,omitempty"`
	Size  *string `json:"size,omitempty"`
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`

	Contents  []*ItemResponse     `json:"contents,omitempty"`
	TodoItems []*TodoItemResponse `json:"todo_items,omitempty"`
	Pin       *PinResponse        `json:"pin,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTodoItemResponse converts a todo entry to its API view
func ToTodoItemResponse(todo *domain.TodoItem) *TodoItemResponse {
	return &TodoItemResponse{
		ID:     todo.ID,
		ItemID: todo.ItemID,
		Text:   todo.Text,
		Link:   todo.Link,
		Done:   todo.Done,
	}
}

// ToItemResponse converts an item to its API view. Nested contents, todo
// entries and the pin are taken from the association fields; callers populate
// them before converting. The payload switch is exhaustive over valid types.
func ToItemResponse(item *domain.Item) *ItemResponse {
	resp := &ItemResponse{
		ID:        item.ID,
		BoardID:   item.BoardID,
		Type:      item.Type,
		Position:  item.Position,
		ListID:    item.ListID,
		Index:     item.Index,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}

	switch item.Type {
	case domain.ItemTypeNote:
		resp.Text = item.Text
		resp.Size = item.Size
	case domain.ItemTypeLink:
		resp.URL = item.URL
		resp.Title = item.Title
	case domain.ItemTypeMedia:
		resp.URL = item.URL
	case domain.ItemTypeTodo:
		resp.Title = item.Title
		resp.TodoItems = make([]*TodoItemResponse, len(item.TodoItems))
		for i := range item.TodoItems {
			resp.TodoItems[i] = ToTodoItemResponse(&item.TodoItems[i])
		}
	case domain.ItemTypeList:
		resp.Title = item.Title
		resp.Contents = make([]*ItemResponse, len(item.Contents))
		for i := range item.Contents {
			resp.Contents[i] = ToItemResponse(&item.Contents[i])
		}
	case domain.ItemTypeDocument:
		resp.Title = item.Title
		resp.Text = item.Text
	}

	if item.Pin != nil {
		resp.Pin = ToPinResponse(item.Pin)
	}
	return resp
}

// ToItemResponses converts an item slice to its API view
func ToItemResponses(items []*domain.Item) []*ItemResponse {
	responses := make([]*ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return responses
}
