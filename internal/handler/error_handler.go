package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/response"
)

// handleServiceError maps service layer errors to HTTP responses. AppError
// codes carry fixed statuses; anything unrecognized is a 500.
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeEntityNotFound, "Resource not found")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.SendError(c, statusForCode(appErr.Code), appErr.Code, appErr.Message)
		return
	}

	logger.Error("Unhandled service error",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// statusForCode maps application error codes to HTTP status codes
func statusForCode(code string) int {
	switch code {
	case response.ErrCodeEntityNotFound:
		return http.StatusNotFound
	case response.ErrCodeNotAuthenticated, response.ErrCodeInvalidAccessToken:
		return http.StatusUnauthorized
	case response.ErrCodeNoPermissions, response.ErrCodePremiumFeature, response.ErrCodeItemLimitExceeded:
		return http.StatusForbidden
	case response.ErrCodeDuplicateEntity,
		response.ErrCodeInvalidOperation,
		response.ErrCodeAddBoardOwnerAsEditor,
		response.ErrCodeInvalidItemType,
		response.ErrCodeMissingItemFields,
		response.ErrCodeItemTypeMismatch,
		response.ErrCodeIndexOutOfRange,
		response.ErrCodeAddListToList,
		response.ErrCodeInvalidField,
		response.ErrCodeFieldTooLong,
		response.ErrCodeValidation:
		return http.StatusUnprocessableEntity
	case response.ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// bindError reports a request body failing gin binding
func bindError(c *gin.Context) {
	response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "Invalid request body")
}

// pathUUID parses a path parameter as a UUID, reporting a validation error
// on failure
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusUnprocessableEntity, response.ErrCodeValidation, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
