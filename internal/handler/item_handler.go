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

// ItemHandler serves the board item endpoints
type ItemHandler struct {
	itemService service.ItemService
	logger      *zap.Logger
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService service.ItemService, logger *zap.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		logger:      logger,
	}
}

// List returns every item on a board, with list children nested
func (h *ItemHandler) List(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	items, err := h.itemService.ListBoardItems(c.Request.Context(), middleware.GetAccount(c), boardID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, items)
}

// Get returns a single item
func (h *ItemHandler) Get(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}
	item, err := h.itemService.Get(c.Request.Context(), middleware.GetAccount(c), boardID, itemID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, item)
}

// Create adds an item to a board
func (h *ItemHandler) Create(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	item, err := h.itemService.Create(c.Request.Context(), middleware.GetAccount(c), boardID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, item)
}

// Update edits an item's content or moves it
func (h *ItemHandler) Update(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	item, err := h.itemService.Update(c.Request.Context(), middleware.GetAccount(c), boardID, itemID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, item)
}

// Delete removes an item
func (h *ItemHandler) Delete(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}
	if err := h.itemService.Delete(c.Request.Context(), middleware.GetAccount(c), boardID, itemID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddTodoItem appends an entry to a todo item
func (h *ItemHandler) AddTodoItem(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}
	var req dto.CreateTodoItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	entry, err := h.itemService.AddTodoItem(c.Request.Context(), middleware.GetAccount(c), boardID, itemID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusCreated, entry)
}

// UpdateTodoItem edits an entry on a todo item
func (h *ItemHandler) UpdateTodoItem(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}
	todoID, ok := pathUUID(c, "todo_id")
	if !ok {
		return
	}
	var req dto.UpdateTodoItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c)
		return
	}
	entry, err := h.itemService.UpdateTodoItem(c.Request.Context(), middleware.GetAccount(c), boardID, itemID, todoID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, entry)
}

// DeleteTodoItem removes an entry from a todo item
func (h *ItemHandler) DeleteTodoItem(c *gin.Context) {
	boardID, ok := pathUUID(c, "board_id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "item_id")
	if !ok {
		return
	}
	todoID, ok := pathUUID(c, "todo_id")
	if !ok {
		return
	}
	if err := h.itemService.DeleteTodoItem(c.Request.Context(), middleware.GetAccount(c), boardID, itemID, todoID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
