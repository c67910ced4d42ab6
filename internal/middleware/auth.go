package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"legalassist_backend/internal/auth"
	"legalassist_backend/internal/logger"
	"legalassist_backend/pkg/apperrors"
)

// Auth validates the Bearer token and exposes userID and role to handlers.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header is missing"))
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header must be a Bearer token"))
			return
		}

		claims, err := tokens.ParseToken(parts[1])
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		if claims.Type != auth.TokenTypeAccess {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Require rejects requests whose authenticated role fails the allow
// predicate. Predicates live in the auth package next to the role constants.
func Require(allow func(role string) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if allow(c.GetString("role")) {
			c.Next()
			return
		}
		apperrors.HandleError(c, apperrors.NewForbiddenError("Insufficient permissions"))
	}
}
