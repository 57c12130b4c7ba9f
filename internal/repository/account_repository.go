package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindAll(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindCustomerByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Customer, error)
	SaveCustomer(ctx context.Context, customer *domain.Customer) error
}

// accountRepositoryImpl is the GORM implementation of AccountRepository
type accountRepositoryImpl struct {
	db *gorm.DB
}

// NewAccountRepository creates a new instance of AccountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepositoryImpl{db: db}
}

// Create creates a new account
func (r *accountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds an account by its ID
func (r *accountRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByUsername finds an account by its unique username
func (r *accountRepositoryImpl) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByEmail finds an account by its unique email
func (r *accountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindAll returns every account ordered by creation time
func (r *accountRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Account, error) {
	var accounts []*domain.Account
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// Update saves changed account fields
func (r *accountRepositoryImpl) Update(ctx context.Context, account *domain.Account) error {
	if err := r.db.WithContext(ctx).Save(account).Error; err != nil {
		return err
	}
	return nil
}

// Delete removes an account along with its boards, editor memberships,
// reports and subscription record. Reports the account was moderating lose
// their assignment and return to fresh.
func (r *accountRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var boardIDs []uuid.UUID
		if err := tx.Model(&domain.Board{}).Where("owner_id = ?", id).Pluck("id", &boardIDs).Error; err != nil {
			return err
		}
		for _, boardID := range boardIDs {
			if err := deleteBoardContents(tx, boardID); err != nil {
				return err
			}
		}
		if len(boardIDs) > 0 {
			if err := tx.Where("board_id IN ?", boardIDs).Delete(&domain.BoardEditor{}).Error; err != nil {
				return err
			}
			if err := tx.Where("owner_id = ?", id).Delete(&domain.Board{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("account_id = ?", id).Delete(&domain.BoardEditor{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&domain.Report{}).Error; err != nil {
			return err
		}
		// Reports this account moderated go back to the unassigned pool.
		if err := tx.Model(&domain.Report{}).Where("moderator_id = ?", id).Updates(map[string]interface{}{
			"moderator_id": nil,
			"status":       domain.ReportStatusFresh,
			"resolved_at":  nil,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&domain.Customer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Account{}, id).Error
	})
}

// FindCustomerByAccountID finds the subscription record for an account
func (r *accountRepositoryImpl) FindCustomerByAccountID(ctx context.Context, accountID uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// SaveCustomer creates or updates the subscription record for an account
func (r *accountRepositoryImpl) SaveCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := r.db.WithContext(ctx).Save(customer).Error; err != nil {
		return err
	}
	return nil
}
