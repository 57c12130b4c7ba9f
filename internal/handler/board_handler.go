package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smotired/bulletinator/internal/dto"
	"github.com/smotired/bulletinator/internal/middleware"
	"github.com/smotired/bulletinator/internal/response"
	"github.com/smotired/bulletinator/internal/service"
)

// BoardHandler serves the board endpoints
type BoardHandler struct {
	boardService service.BoardService
	logger       *zap.Logger
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardService service.BoardService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// List returns the boards the caller owns or edits
func (h *BoardHandler) List(c *gin.Context) {
	boards, err := h.boardService.ListEditable(c.Request.Context(), middleware.GetAccount(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, boards)
}

// ListAll returns every board. Staff only.
func (h *BoardHandler) ListAll(c *gin.Context) {
	boards, err := h.boardService.ListAll(c.Request.Context(), middleware.GetAccount(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, boards)
}

// Create creates a board owned by the caller
func (h *BoardHandler) Create(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	board, err := h.boardService.Create(c.Request.Context(), middleware.GetAccount(c), &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, board)
}

// Get returns one board
func (h *BoardHandler) Get(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	board, err := h.boardService.Get(c.Request.Context(), middleware.GetAccount(c), boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, board)
}

// Update edits a board's fields
func (h *BoardHandler) Update(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	board, err := h.boardService.Update(c.Request.Context(), middleware.GetAccount(c), boardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, board)
}

// Delete removes a board and everything on it
func (h *BoardHandler) Delete(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	if err := h.boardService.Delete(c.Request.Context(), middleware.GetAccount(c), boardID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListEditors returns the board's editor profiles
func (h *BoardHandler) ListEditors(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	editors, err := h.boardService.ListEditors(c.Request.Context(), middleware.GetAccount(c), boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, editors)
}

// AddEditor invites an account onto the editor list
func (h *BoardHandler) AddEditor(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	var req dto.AddEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	if err := h.boardService.AddEditor(c.Request.Context(), middleware.GetAccount(c), boardID, req.AccountID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveEditor drops an account from the editor list
func (h *BoardHandler) RemoveEditor(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	accountID, ok := pathUUID(c, "account_id")
	if !ok {
		return
	}
	if err := h.boardService.RemoveEditor(c.Request.Context(), middleware.GetAccount(c), boardID, accountID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Transfer moves board ownership to an existing editor
func (h *BoardHandler) Transfer(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	var req dto.TransferBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	board, err := h.boardService.Transfer(c.Request.Context(), middleware.GetAccount(c), boardID, req.AccountID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, board)
}
