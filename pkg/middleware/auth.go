package middleware

import (
	"strings"

	"vidtube/internal/entity"
	"vidtube/pkg/jwt"
	"vidtube/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"

	// Context keys set by AuthMiddleware.
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// UserResolver loads the account referenced by a verified access token.
type UserResolver func(userID string) (*entity.User, error)

// AuthMiddleware verifies the bearer access token from the accessToken
// cookie or the Authorization header and attaches the sanitized user to
// the request context. Any failure is a 401.
func AuthMiddleware(jwtService *jwt.Service, resolve UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AccessTokenCookie)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				response.Fail(c, response.Unauthorized("Unauthorized request"))
				c.Abort()
				return
			}
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		claims, err := jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized("Invalid access token"))
			c.Abort()
			return
		}

		user, err := resolve(claims.UserID)
		if err != nil {
			response.Fail(c, response.Unauthorized("Invalid access token"))
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user.Sanitized())
		c.Set(ContextUserIDKey, user.ID)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid access token is
// present and stays silent otherwise. Used by endpoints that only vary
// their output for authenticated viewers.
func OptionalAuthMiddleware(jwtService *jwt.Service, resolve UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(AccessTokenCookie)
		if err != nil || tokenString == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := jwtService.ValidateAccessToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		if user, err := resolve(claims.UserID); err == nil {
			c.Set(ContextUserKey, user.Sanitized())
			c.Set(ContextUserIDKey, user.ID)
		}
		c.Next()
	}
}

// CurrentUser pulls the user attached by AuthMiddleware out of the
// context. ok is false on routes that skipped the guard.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}
