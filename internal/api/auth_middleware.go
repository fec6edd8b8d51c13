package api

import (
	"context"
	"errors"
	"strings"
	"time"

	"portfolio/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	currentUserContextKey = "current-user"
)

// RequireAuthenticated 验证 Bearer Token 并加载对应用户。只保证身份，
// 激活与管理员检查由后续守卫完成。
func (h *HTTPHandler) RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			abortUnauthenticated(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthenticated(c, "invalid authorization header format")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			abortUnauthenticated(c, "missing bearer token")
			return
		}

		claims, err := h.authManager.ParseToken(tokenString)
		if err != nil {
			logrus.WithError(err).Warn("failed to parse jwt token")
			abortUnauthenticated(c, "invalid or expired token")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := h.repo.GetUserByEmail(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthenticated(c, "invalid or expired token")
				return
			}
			logrus.WithError(err).WithField("email", claims.Subject).Error("failed to load user")
			c.Abort()
			InternalError(c, "failed to verify user")
			return
		}

		c.Set(currentUserContextKey, user)
		c.Next()
	}
}

// RequireActive 要求当前用户处于激活状态。必须位于 RequireAuthenticated 之后。
func (h *HTTPHandler) RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthenticated(c, "authentication required")
			return
		}
		if !user.IsActive {
			c.Abort()
			InactiveAccount(c)
			return
		}
		c.Next()
	}
}

// RequireAdmin 要求当前用户为管理员。必须位于 RequireActive 之后。
func (h *HTTPHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			abortUnauthenticated(c, "authentication required")
			return
		}
		if !user.IsAdmin {
			c.Abort()
			Forbidden(c, "administrator privileges required")
			return
		}
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.Abort()
	Unauthenticated(c, message)
}

// CurrentUser 从上下文获取当前认证用户
func CurrentUser(c *gin.Context) *entity.DbUser {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*entity.DbUser)
	if !ok {
		return nil
	}
	return user
}
