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

// PinHandler serves the pin endpoints
type PinHandler struct {
	pinService service.PinService
	logger     *zap.Logger
}

// NewPinHandler creates a new PinHandler
func NewPinHandler(pinService service.PinService, logger *zap.Logger) *PinHandler {
	return &PinHandler{
		pinService: pinService,
		logger:     logger,
	}
}

// List returns every pin on a board
func (h *PinHandler) List(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	pins, err := h.pinService.ListBoardPins(c.Request.Context(), middleware.GetAccount(c), boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, pins)
}

// Get returns a single pin with its connections
func (h *PinHandler) Get(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	pinID, ok := pathUUID(c, "pin_id")
	if !ok {
		return
	}
	pin, err := h.pinService.Get(c.Request.Context(), middleware.GetAccount(c), boardID, pinID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, pin)
}

// Create attaches a pin to an item
func (h *PinHandler) Create(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	var req dto.CreatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	pin, err := h.pinService.Create(c.Request.Context(), middleware.GetAccount(c), boardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, pin)
}

// Update edits a pin's appearance fields
func (h *PinHandler) Update(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	pinID, ok := pathUUID(c, "pin_id")
	if !ok {
		return
	}
	var req dto.UpdatePinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	pin, err := h.pinService.Update(c.Request.Context(), middleware.GetAccount(c), boardID, pinID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, pin)
}

// Move reattaches a pin to a different item on the same board
func (h *PinHandler) Move(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	pinID, ok := pathUUID(c, "pin_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}
	pin, err := h.pinService.Move(c.Request.Context(), middleware.GetAccount(c), boardID, pinID, itemID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, pin)
}

// Delete removes a pin and all of its connections
func (h *PinHandler) Delete(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	pinID, ok := pathUUID(c, "pin_id")
	if !ok {
		return
	}
	if err := h.pinService.Delete(c.Request.Context(), middleware.GetAccount(c), boardID, pinID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Connect links two pins on the same board
func (h *PinHandler) Connect(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	pinID, ok := pathUUID(c, "pin_id")
	if !ok {
		return
	}
	var req dto.ConnectPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	pins, err := h.pinService.Connect(c.Request.Context(), middleware.GetAccount(c), boardID, pinID, req.PinID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, pins)
}

// Disconnect removes the link between two pins
func (h *PinHandler) Disconnect(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	pinID, ok := pathUUID(c, "pin_id")
	if !ok {
		return
	}
	otherID, ok := pathUUID(c, "other_id")
	if !ok {
		return
	}
	pins, err := h.pinService.Disconnect(c.Request.Context(), middleware.GetAccount(c), boardID, pinID, otherID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, pins)
}
