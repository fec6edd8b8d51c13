package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminDashboardStats 后台首页的内容统计
func (h *HTTPHandler) AdminDashboardStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.repo.GetDashboardStats(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load dashboard stats")
		InternalError(c, "failed to load dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
