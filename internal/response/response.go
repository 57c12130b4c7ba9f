package response

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Machine-readable error codes. Each code maps to a fixed HTTP status in the
// handler layer.
const (
	ErrCodeEntityNotFound        = "entity_not_found"
	ErrCodeDuplicateEntity       = "duplicate_entity"
	ErrCodeNoPermissions         = "no_permissions"
	ErrCodeNotAuthenticated      = "not_authenticated"
	ErrCodeInvalidAccessToken    = "invalid_access_token"
	ErrCodePremiumFeature        = "premium_feature"
	ErrCodeItemLimitExceeded     = "item_limit_exceeded"
	ErrCodeInvalidOperation      = "invalid_operation"
	ErrCodeAddBoardOwnerAsEditor = "add_board_owner_as_editor"
	ErrCodeInvalidItemType       = "invalid_item_type"
	ErrCodeMissingItemFields     = "missing_item_fields"
	ErrCodeItemTypeMismatch      = "item_type_mismatch"
	ErrCodeIndexOutOfRange       = "out_of_range"
	ErrCodeAddListToList         = "add_list_to_list"
	ErrCodeInvalidField          = "invalid_field"
	ErrCodeFieldTooLong          = "field_too_long"
	ErrCodeValidation            = "validation_error"
	ErrCodeTooManyRequests       = "too_many_requests"
	ErrCodeInternal              = "internal_error"
)

// AppError is the error type raised at the point of detection and propagated
// unmodified to the request boundary
type AppError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Details string `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewEntityNotFound signals that an entity does not exist, or that its
// existence is being hidden from the caller
func NewEntityNotFound(entity, field string, value interface{}) *AppError {
	return NewAppError(ErrCodeEntityNotFound,
		fmt.Sprintf("Unable to find %s with %s=%v", entity, field, value), "")
}

// NewDuplicateEntity signals a uniqueness violation
func NewDuplicateEntity(entity, field string, value interface{}) *AppError {
	return NewAppError(ErrCodeDuplicateEntity,
		fmt.Sprintf("Entity %s with %s=%v already exists", entity, field, value), "")
}

// NewNoPermissions signals that the acting account may see the target but may
// not perform the action
func NewNoPermissions(action, entity string, id interface{}) *AppError {
	return NewAppError(ErrCodeNoPermissions,
		fmt.Sprintf("No permissions to %s on %s with id=%v", action, entity, id), "")
}

// NewNotAuthenticated signals a request with no acting account where one is required
func NewNotAuthenticated() *AppError {
	return NewAppError(ErrCodeNotAuthenticated, "Not authenticated", "")
}

// NewPremiumFeature signals a free-tier board owner attempting a premium feature
func NewPremiumFeature() *AppError {
	return NewAppError(ErrCodePremiumFeature,
		"This feature is exclusive to Premium users. Please upgrade your subscription.", "")
}

// NewItemLimitExceeded signals the free-tier item count ceiling
func NewItemLimitExceeded() *AppError {
	return NewAppError(ErrCodeItemLimitExceeded,
		"You have exceeded your item creation limit. Please delete items or upgrade your subscription.", "")
}

// NewInvalidOperation signals a structurally invalid request
func NewInvalidOperation(message string) *AppError {
	return NewAppError(ErrCodeInvalidOperation, message, "")
}

// NewAddBoardOwnerAsEditor signals an attempt to list the owner as an editor
func NewAddBoardOwnerAsEditor() *AppError {
	return NewAppError(ErrCodeAddBoardOwnerAsEditor, "Cannot add the board owner as an editor", "")
}

// NewInvalidItemType signals an unknown item type discriminator
func NewInvalidItemType(itemType string) *AppError {
	return NewAppError(ErrCodeInvalidItemType,
		fmt.Sprintf("Item type '%s' is not valid", itemType), "")
}

// NewMissingItemFields signals a create request lacking type-required payload fields
func NewMissingItemFields(itemType string, fields []string) *AppError {
	return NewAppError(ErrCodeMissingItemFields,
		fmt.Sprintf("Item type '%s' was missing the following fields: %v", itemType, fields), "")
}

// NewItemTypeMismatch signals an item used as a type it does not have
func NewItemTypeMismatch(id interface{}, expected, actual string) *AppError {
	return NewAppError(ErrCodeItemTypeMismatch,
		fmt.Sprintf("Item with id=%v has type '%s', but was treated as if it had type '%s'", id, actual, expected), "")
}

// NewIndexOutOfRange signals a list index outside 0..len(children)
func NewIndexOutOfRange(entity string, id interface{}, index int) *AppError {
	return NewAppError(ErrCodeIndexOutOfRange,
		fmt.Sprintf("Index %d out of range for %s with id=%v", index, entity, id), "")
}

// NewAddListToList signals nesting one list item inside another
func NewAddListToList() *AppError {
	return NewAppError(ErrCodeAddListToList, "Cannot add a list to another list", "")
}

// NewInvalidField signals a field value failing validation
func NewInvalidField(value, field string) *AppError {
	return NewAppError(ErrCodeInvalidField,
		fmt.Sprintf("Value '%s' is invalid for field '%s'", value, field), "")
}

// NewFieldTooLong signals a field value exceeding its maximum length
func NewFieldTooLong(field string) *AppError {
	return NewAppError(ErrCodeFieldTooLong,
		fmt.Sprintf("Input to field '%s' exceeded the maximum length", field), "")
}

// NewTooManyRequests signals that a rate limit was hit
func NewTooManyRequests() *AppError {
	return NewAppError(ErrCodeTooManyRequests,
		"You are accessing this resource too quickly. Please try again later.", "")
}

// ErrorResponse is the JSON envelope for errors
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SendError writes an error response
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{Error: code, Message: message})
}

// SendSuccess writes a success response
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}
