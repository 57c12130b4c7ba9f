package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/client"
	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/dto"
	"github.com/smotired/bulletinator/internal/metrics"
	"github.com/smotired/bulletinator/internal/permission"
	"github.com/smotired/bulletinator/internal/repository"
	"github.com/smotired/bulletinator/internal/response"
)

// BoardService defines the interface for board business logic. Every method
// takes the acting account; authorization runs through the board decision
// point before any mutation.
type BoardService interface {
	ListEditable(ctx context.Context, actor *domain.Account) ([]*dto.BoardResponse, error)
	ListAll(ctx context.Context, actor *domain.Account) ([]*dto.BoardResponse, error)
	Create(ctx context.Context, actor *domain.Account, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	Get(ctx context.Context, actor *domain.Account, boardID uuid.UUID) (*dto.BoardResponse, error)
	Update(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error)
	Delete(ctx context.Context, actor *domain.Account, boardID uuid.UUID) error
	ListEditors(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.ProfileResponse, error)
	AddEditor(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) error
	RemoveEditor(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) error
	Transfer(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) (*dto.BoardResponse, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo   repository.BoardRepository
	accountRepo repository.AccountRepository
	permissions permission.Deps
	mail        client.MailClient
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	accountRepo repository.AccountRepository,
	permissions permission.Deps,
	mail client.MailClient,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:   boardRepo,
		accountRepo: accountRepo,
		permissions: permissions,
		mail:        mail,
		metrics:     m,
		logger:      logger,
	}
}

// ListEditable returns the boards the actor owns or edits
func (s *boardServiceImpl) ListEditable(ctx context.Context, actor *domain.Account) ([]*dto.BoardResponse, error) {
	if actor == nil {
		return nil, response.NewNotAuthenticated()
	}
	boards, err := s.boardRepo.FindEditable(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.ToBoardResponses(boards), nil
}

// ListAll returns every board. Staff only.
func (s *boardServiceImpl) ListAll(ctx context.Context, actor *domain.Account) ([]*dto.BoardResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureReadAll(); err != nil {
		return nil, err
	}
	boards, err := s.boardRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToBoardResponses(boards), nil
}

// Create creates a board owned by the actor
func (s *boardServiceImpl) Create(ctx context.Context, actor *domain.Account, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureCreate(); err != nil {
		return nil, err
	}

	board := &domain.Board{
		OwnerID: actor.ID,
		Name:    req.Name,
		Icon:    "default",
		Public:  req.Public,
	}
	if req.Icon != nil && *req.Icon != "" {
		board.Icon = *req.Icon
	}
	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}
	s.logger.Info("Board created",
		zap.String("board_id", board.ID.String()),
		zap.String("owner_id", actor.ID.String()),
	)
	return dto.ToBoardResponse(board), nil
}

// Get returns one board the actor is allowed to see
func (s *boardServiceImpl) Get(ctx context.Context, actor *domain.Account, boardID uuid.UUID) (*dto.BoardResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureRead(ctx, boardID); err != nil {
		return nil, err
	}
	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return dto.ToBoardResponse(board), nil
}

// Update applies field edits to a board. Owner only.
func (s *boardServiceImpl) Update(ctx context.Context, actor *domain.Account, boardID uuid.UUID, req *dto.UpdateBoardRequest) (*dto.BoardResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureUpdate(ctx, boardID); err != nil {
		return nil, err
	}
	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		board.Name = *req.Name
	}
	if req.Icon != nil {
		board.Icon = *req.Icon
	}
	if req.Public != nil {
		board.Public = *req.Public
	}
	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, err
	}
	return dto.ToBoardResponse(board), nil
}

// Delete removes a board and everything on it. Owner only.
func (s *boardServiceImpl) Delete(ctx context.Context, actor *domain.Account, boardID uuid.UUID) error {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureDelete(ctx, boardID); err != nil {
		return err
	}
	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return err
	}
	s.logger.Info("Board deleted", zap.String("board_id", boardID.String()))
	return nil
}

// ListEditors returns the board's editor list. Owner or editor.
func (s *boardServiceImpl) ListEditors(ctx context.Context, actor *domain.Account, boardID uuid.UUID) ([]*dto.ProfileResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureViewEditors(ctx, boardID); err != nil {
		return nil, err
	}
	editors, err := s.boardRepo.FindEditors(ctx, boardID)
	if err != nil {
		return nil, err
	}
	profiles := make([]*dto.ProfileResponse, len(editors))
	for i, editor := range editors {
		profiles[i] = dto.ToProfileResponse(editor)
	}
	return profiles, nil
}

// AddEditor invites an account onto the board's editor list and queues an
// invitation mail. Re-inviting an existing editor is a no-op. Owner only.
func (s *boardServiceImpl) AddEditor(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) error {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureManageEditors(ctx, boardID); err != nil {
		return err
	}
	target, err := s.findAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if err := permission.NewBoardPDP(s.permissions, target).EnsureBecomeEditor(ctx, boardID); err != nil {
		return err
	}
	if err := s.boardRepo.AddEditor(ctx, boardID, accountID); err != nil {
		return err
	}

	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return err
	}
	s.sendMail(client.MailMessage{
		Type:      client.MailEditorInvitation,
		Recipient: target.Email,
		Parameters: map[string]string{
			"board_id":   board.ID.String(),
			"board_name": board.Name,
			"invited_by": actor.Username,
		},
	})
	return nil
}

// RemoveEditor drops an account from the editor list. Owner, or the editor
// removing itself.
func (s *boardServiceImpl) RemoveEditor(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) error {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureRemoveEditor(ctx, boardID, accountID); err != nil {
		return err
	}
	return s.boardRepo.RemoveEditor(ctx, boardID, accountID)
}

// Transfer moves ownership to an existing editor. The previous owner stays
// off the editor list. Owner only.
func (s *boardServiceImpl) Transfer(ctx context.Context, actor *domain.Account, boardID, accountID uuid.UUID) (*dto.BoardResponse, error) {
	if err := permission.NewBoardPDP(s.permissions, actor).EnsureTransfer(ctx, boardID); err != nil {
		return nil, err
	}
	target, err := s.findAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if err := permission.NewBoardPDP(s.permissions, target).EnsureBecomeOwner(ctx, boardID); err != nil {
		return nil, err
	}
	if err := s.boardRepo.TransferOwner(ctx, boardID, accountID); err != nil {
		return nil, err
	}

	board, err := s.findBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Board ownership transferred",
		zap.String("board_id", boardID.String()),
		zap.String("previous_owner_id", actor.ID.String()),
		zap.String("new_owner_id", accountID.String()),
	)
	s.sendMail(client.MailMessage{
		Type:      client.MailOwnershipChanged,
		Recipient: target.Email,
		Parameters: map[string]string{
			"board_id":   board.ID.String(),
			"board_name": board.Name,
		},
	})
	return dto.ToBoardResponse(board), nil
}

func (s *boardServiceImpl) findBoard(ctx context.Context, boardID uuid.UUID) (*domain.Board, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("board", "id", boardID)
		}
		return nil, err
	}
	return board, nil
}

func (s *boardServiceImpl) findAccount(ctx context.Context, accountID uuid.UUID) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewEntityNotFound("account", "id", accountID)
		}
		return nil, err
	}
	return account, nil
}

// sendMail queues a message without blocking the request. Delivery failures
// are logged and otherwise ignored.
func (s *boardServiceImpl) sendMail(message client.MailMessage) {
	if s.mail == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.mail.Send(ctx, message); err != nil {
			s.logger.Warn("Mail delivery failed",
				zap.String("type", string(message.Type)),
				zap.Error(err),
			)
		}
	}()
}
