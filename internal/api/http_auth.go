package api

import (
	"context"
	"net/http"
	"portfolio/internal/auth"
	"portfolio/internal/entity"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Login 处理 OAuth2 password 风格的表单登录。无论账号不存在还是密码
// 错误都返回同一响应，避免账号枚举。
func (h *HTTPHandler) Login(c *gin.Context) {
	if h.repo == nil {
		ServiceUnavailable(c, "user repository not available")
		return
	}

	var req entity.AuthLoginRequest
	if err := c.ShouldBind(&req); err != nil {
		ValidationError(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Username))
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		InvalidCredentials(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	user, err := h.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logrus.WithError(err).WithField("email", email).Warn("login attempt failed")
		InvalidCredentials(c)
		return
	}

	if err := auth.VerifyPassword(user.PasswordHash, password); err != nil {
		logrus.WithField("email", email).Warn("password verification failed")
		InvalidCredentials(c)
		return
	}

	if !user.IsActive {
		InactiveAccount(c)
		return
	}

	token, _, err := h.authManager.GenerateToken(user.Email)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		InternalError(c, "failed to create session")
		return
	}

	c.JSON(http.StatusOK, entity.AuthTokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// Me 返回当前认证用户的概要信息
func (h *HTTPHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthenticated(c, "authentication required")
		return
	}
	c.JSON(http.StatusOK, makeUserSummary(user))
}

func makeUserSummary(user *entity.DbUser) entity.UserSummary {
	if user == nil {
		return entity.UserSummary{}
	}
	return entity.UserSummary{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		IsActive:  user.IsActive,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}
