package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
	"github.com/smotired/bulletinator/internal/repository"
	"github.com/smotired/bulletinator/internal/response"
)

// AccountKey is the gin context key holding the authenticated *domain.Account
const AccountKey = "account"

// Auth returns a middleware that requires a valid bearer token and loads the
// acting account into the context. Requests without a usable token are
// rejected.
func Auth(secret string, accounts repository.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		account, err := resolveAccount(c, secret, accounts)
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeInvalidAccessToken, "Invalid or expired access token")
			c.Abort()
			return
		}
		if account == nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeNotAuthenticated, "Not authenticated")
			c.Abort()
			return
		}

		c.Set(AccountKey, account)
		c.Next()
	}
}

// OptionalAuth loads the acting account when a valid bearer token is present
// and leaves it unset otherwise. Routes behind it serve both authenticated
// and anonymous callers; a malformed token is still rejected rather than
// silently downgraded.
func OptionalAuth(secret string, accounts repository.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		account, err := resolveAccount(c, secret, accounts)
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeInvalidAccessToken, "Invalid or expired access token")
			c.Abort()
			return
		}
		if account != nil {
			c.Set(AccountKey, account)
		}
		c.Next()
	}
}

// GetAccount returns the acting account from the context, or nil for
// anonymous requests
func GetAccount(c *gin.Context) *domain.Account {
	value, exists := c.Get(AccountKey)
	if !exists {
		return nil
	}
	account, ok := value.(*domain.Account)
	if !ok {
		return nil
	}
	return account
}

// resolveAccount parses the bearer token and loads the account it names.
// Returns (nil, nil) when no Authorization header is present.
func resolveAccount(c *gin.Context, secret string, accounts repository.AccountRepository) (*domain.Account, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("malformed authorization header")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	subject, ok := claims["sub"].(string)
	if !ok {
		return nil, errors.New("token subject missing")
	}
	accountID, err := uuid.Parse(subject)
	if err != nil {
		return nil, errors.New("token subject is not an account id")
	}

	account, err := accounts.FindByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("account no longer exists")
		}
		return nil, err
	}
	return account, nil
}
