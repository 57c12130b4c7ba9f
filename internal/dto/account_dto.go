package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/smotired/bulletinator/internal/domain"
)

// AccountResponse is the full account view, visible to the account itself
// and to staff
type AccountResponse struct {
	ID           uuid.UUID          `json:"id"`
	Username     string             `json:"username"`
	Email        string             `json:"email"`
	DisplayName  *string            `json:"display_name,omitempty"`
	ProfileImage *string            `json:"profile_image,omitempty"`
	Role         domain.AccountRole `json:"role"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ProfileResponse is the public account view returned from username lookups
type ProfileResponse struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	DisplayName  *string   `json:"display_name,omitempty"`
	ProfileImage *string   `json:"profile_image,omitempty"`
}

// UpdateAccountRequest carries profile field edits. Nil fields are left
// untouched.
type UpdateAccountRequest struct {
	DisplayName  *string `json:"display_name"`
	ProfileImage *string `json:"profile_image"`
}

// ToAccountResponse converts an account to its full view
func ToAccountResponse(account *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		DisplayName:  account.DisplayName,
		ProfileImage: account.ProfileImage,
		Role:         account.Role,
		CreatedAt:    account.CreatedAt,
	}
}

// ToProfileResponse converts an account to its public view
func ToProfileResponse(account *domain.Account) *ProfileResponse {
	return &ProfileResponse{
		ID:           account.ID,
		Username:     account.Username,
		DisplayName:  account.DisplayName,
		ProfileImage: account.ProfileImage,
	}
}
