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

// AccountHandler serves the account endpoints
type AccountHandler struct {
	accountService service.AccountService
	logger         *zap.Logger
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService service.AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
	}
}

// GetCurrent returns the authenticated account
func (h *AccountHandler) GetCurrent(c *gin.Context) {
	account, err := h.accountService.GetCurrent(c.Request.Context(), middleware.GetAccount(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, account)
}

// GetByUsername returns the public profile for a username
func (h *AccountHandler) GetByUsername(c *gin.Context) {
	profile, err := h.accountService.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, profile)
}

// ListAll returns every account. Staff only.
func (h *AccountHandler) ListAll(c *gin.Context) {
	accounts, err := h.accountService.ListAll(c.Request.Context(), middleware.GetAccount(c))
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, accounts)
}

// Update edits an account's profile fields
func (h *AccountHandler) Update(c *gin.Context) {
	accountID, ok := pathUUID(c, "account_id")
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	account, err := h.accountService.Update(c.Request.Context(), middleware.GetAccount(c), accountID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, account)
}

// Delete removes an account
func (h *AccountHandler) Delete(c *gin.Context) {
	accountID, ok := pathUUID(c, "account_id")
	if !ok {
		return
	}
	if err := h.accountService.Delete(c.Request.Context(), middleware.GetAccount(c), accountID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
