package domain

import "github.com/google/uuid"

// AccountRole represents the application-level role of an account
type AccountRole string

const (
	RoleUser             AccountRole = "user"
	RoleAppModerator     AccountRole = "app_moderator"
	RoleAppAdministrator AccountRole = "app_administrator"
)

// IsStaff reports whether the role grants application staff privileges
func (r AccountRole) IsStaff() bool {
	return r == RoleAppModerator || r == RoleAppAdministrator
}

// Account represents a registered account that can own and edit boards
type Account struct {
	BaseModel
	Username     string      `gorm:"type:varchar(64);not null;uniqueIndex:uq_accounts_username" json:"username"`
	Email        string      `gorm:"type:varchar(64);not null;uniqueIndex:uq_accounts_email" json:"email"`
	DisplayName  *string     `gorm:"type:varchar(64)" json:"display_name,omitempty"`
	ProfileImage *string     `gorm:"type:text" json:"profile_image,omitempty"`
	Role         AccountRole `gorm:"type:varchar(32);not null;default:'user';index:idx_accounts_role" json:"role"`
	Customer     *Customer   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Boards       []Board     `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"boards,omitempty"`
}

// CustomerType represents the subscription state of an account
type CustomerType string

const (
	CustomerFree       CustomerType = "free"
	CustomerActive     CustomerType = "active"
	CustomerInactive   CustomerType = "inactive"
	CustomerLifetime   CustomerType = "lifetime"
	CustomerTerminated CustomerType = "terminated"
)

// IsPremium reports whether this subscription state grants premium features.
// Inactive subscriptions keep premium access until the paid period lapses.
func (t CustomerType) IsPremium() bool {
	return t == CustomerActive || t == CustomerInactive || t == CustomerLifetime
}

// Customer represents the one-to-one subscription record for an account
type Customer struct {
	BaseModel
	AccountID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:uq_customers_account_id" json:"account_id"`
	Type      CustomerType `gorm:"type:varchar(32);not null;default:'free'" json:"type"`
}

// TableName specifies the table name for Account
func (Account) TableName() string {
	return "accounts"
}

// TableName specifies the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
