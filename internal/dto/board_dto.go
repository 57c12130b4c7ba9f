package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/smotired/bulletinator/internal/domain"
)

// CreateBoardRequest carries the fields for creating a board
type CreateBoardRequest struct {
	Name   string  `json:"name" binding:"required,max=255"`
	Icon   *string `json:"icon" binding:"omitempty,max=64"`
	Public bool    `json:"public"`
}

// UpdateBoardRequest carries board field edits. Nil fields are left
// untouched.
type UpdateBoardRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=255"`
	Icon   *string `json:"icon" binding:"omitempty,max=64"`
	Public *bool   `json:"public"`
}

// AddEditorRequest identifies the account to invite as an editor
type AddEditorRequest struct {
	AccountID uuid.UUID `json:"account_id" binding:"required"`
}

// TransferBoardRequest identifies the editor receiving ownership
type TransferBoardRequest struct {
	AccountID uuid.UUID `json:"account_id" binding:"required"`
}

// BoardResponse is the API view of a board
type BoardResponse struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	Public    bool      `json:"public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToBoardResponse converts a board to its API view
func ToBoardResponse(board *domain.Board) *BoardResponse {
	return &BoardResponse{
		ID:        board.ID,
		OwnerID:   board.OwnerID,
		Name:      board.Name,
		Icon:      board.Icon,
		Public:    board.Public,
		CreatedAt: board.CreatedAt,
		UpdatedAt: board.UpdatedAt,
	}
}

// ToBoardResponses converts a board slice to its API view
func ToBoardResponses(boards []*domain.Board) []*BoardResponse {
	responses := make([]*BoardResponse, len(boards))
	for i, board := range boards {
		responses[i] = ToBoardResponse(board)
	}
	return responses
}
