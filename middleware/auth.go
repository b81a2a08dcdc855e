package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"studyhub/config"
	"studyhub/model"
	"studyhub/services"
	"studyhub/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the authenticator for downstream handlers.
const (
	ContextIdentityKey = "identity"
	ContextUserIDKey   = "user_id"
)

// BypassUserID is the placeholder identity attached in bypass mode.
// Development only; config.Load refuses bypass mode in production.
const BypassUserID = "dev-user"

// UserResolver turns a verified token subject into a full user record.
type UserResolver interface {
	FindUser(ctx context.Context, userID string) (*model.User, error)
}

// Auth gates a route group: it extracts the bearer credential, verifies it,
// and attaches the resolved identity to the request context.
func Auth(cfg *config.Config, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AuthMode == config.AuthBypassed {
			attach(c, model.NewTokenIdentity(BypassUserID))
			c.Next()
			return
		}

		identity, status, message := authenticate(c, users)
		if status != 0 {
			c.AbortWithStatusJSON(status, &utils.Response{Success: false, Message: message})
			return
		}

		attach(c, identity)
		c.Next()
	}
}

func attach(c *gin.Context, identity model.Identity) {
	c.Set(ContextIdentityKey, identity)
	c.Set(ContextUserIDKey, identity.UserID)
}

// authenticate returns the identity, or a non-zero status with a client
// message. Any panic inside verification is a generic 401, never a crash.
func authenticate(c *gin.Context, users UserResolver) (identity model.Identity, status int, message string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("panic during authentication: %v", r)
			identity, status, message = model.Identity{}, http.StatusUnauthorized, "Authentication failed"
		}
	}()

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return model.Identity{}, http.StatusUnauthorized, "Missing or invalid token"
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	if services.IsTokenBlacklisted(tokenString) {
		return model.Identity{}, http.StatusUnauthorized, "Token has been invalidated"
	}

	userID, err := services.ValidateAccessToken(tokenString)
	if err != nil {
		if err == services.ErrSecretNotConfigured {
			return model.Identity{}, http.StatusInternalServerError, "Server authentication is not configured"
		}
		return model.Identity{}, http.StatusUnauthorized, "Invalid token"
	}

	// A verified signature is trusted even without a backing record: lookup
	// failures degrade to a token-only identity instead of rejecting.
	if users != nil {
		if user, lookupErr := users.FindUser(c.Request.Context(), userID); lookupErr == nil && user != nil {
			return model.NewIdentity(user), 0, ""
		}
	}
	return model.NewTokenIdentity(userID), 0, ""
}

// CurrentIdentity reads the identity the authenticator attached.
func CurrentIdentity(c *gin.Context) (model.Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return model.Identity{}, false
	}
	identity, ok := value.(model.Identity)
	return identity, ok
}
