package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/dto"
	"github.com/smotired/bulletinator/internal/permission"
	"github.com/smotired/bulletinator/internal/repository"
	"github.com/smotired/bulletinator/internal/response"
)

// AccountService defines the interface for account business logic
type AccountService interface {
	GetCurrent(ctx context.Context, actor *domain.Account) (*dto.AccountResponse, error)
	GetByUsername(ctx context.Context, username string) (*dto.ProfileResponse, error)
	ListAll(ctx context.Context, actor *domain.Account) ([]*dto.AccountResponse, error)
	Update(ctx context.Context, actor *domain.Account, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*dto.AccountResponse, error)
	Delete(ctx context.Context, actor *domain.Account, accountID uuid.UUID) error
}

// accountServiceImpl is the implementation of AccountService
type accountServiceImpl struct {
	accountRepo repository.AccountRepository
	permissions permission.Deps
	logger      *zap.Logger
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(
	accountRepo repository.AccountRepository,
	permissions permission.Deps,
	logger *zap.Logger,
) AccountService {
	return &accountServiceImpl{
		accountRepo: accountRepo,
		permissions: permissions,
		logger:      logger,
	}
}

// GetCurrent returns the acting account's own record
func (s *accountServiceImpl) GetCurrent(ctx context.Context, actor *domain.Account) (*dto.AccountResponse, error) {
	if actor == nil {
		return nil, response.NewNotAuthenticated()
	}
	return dto.ToAccountResponse(actor), nil
}

// GetByUsername returns the public profile for a username
func (s *accountServiceImpl) GetByUsername(ctx context.Context, username string) (*dto.ProfileResponse, error) {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("account", "username", username)
		}
		return nil, err
	}
	return dto.ToProfileResponse(account), nil
}

// ListAll returns every account. Staff only.
func (s *accountServiceImpl) ListAll(ctx context.Context, actor *domain.Account) ([]*dto.AccountResponse, error) {
	if err := permission.NewAccountPDP(s.permissions, actor).EnsureReadAll(); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.AccountResponse, len(accounts))
	for i, account := range accounts {
		responses[i] = dto.ToAccountResponse(account)
	}
	return responses, nil
}

// Update applies profile edits to an account. Self only.
func (s *accountServiceImpl) Update(ctx context.Context, actor *domain.Account, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if err := permission.NewAccountPDP(s.permissions, actor).EnsureUpdate(accountID); err != nil {
		return nil, err
	}
	account, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		account.DisplayName = req.DisplayName
	}
	if req.ProfileImage != nil {
		account.ProfileImage = req.ProfileImage
	}
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}
	return dto.ToAccountResponse(account), nil
}

// Delete removes an account and cascades its boards, editor memberships and
// reports. Self or staff.
func (s *accountServiceImpl) Delete(ctx context.Context, actor *domain.Account, accountID uuid.UUID) error {
	if err := permission.NewAccountPDP(s.permissions, actor).EnsureDelete(accountID); err != nil {
		return err
	}
	if _, err := s.findAccount(ctx, accountID); err != nil {
		return err
	}
	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		return err
	}
	s.logger.Info("Account deleted", zap.String("account_id", accountID.String()))
	return nil
}

func (s *accountServiceImpl) findAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("account", "id", accountID)
		}
		return nil, err
	}
	return account, nil
}
