package api

import (
	"context"
	"net/http"
	"portfolio/internal/entity"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RecordVisit 公开访问上报。失败不影响前端，统一返回 202。
func (h *HTTPHandler) RecordVisit(c *gin.Context) {
	var req entity.VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	visit := &entity.DbVisit{
		Path:      req.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referer:   req.Referer,
	}
	if visit.Referer == "" {
		visit.Referer = c.Request.Referer()
	}

	if err := h.repo.CreateVisit(ctx, visit); err != nil {
		logrus.WithError(err).Warn("failed to record visit")
	}

	c.Status(http.StatusAccepted)
}

// AdminVisitSummary 流量概要
func (h *HTTPHandler) AdminVisitSummary(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	summary, err := h.repo.GetVisitSummary(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load visit summary")
		InternalError(c, "failed to load visit summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// AdminVisitReport 按天统计的流量报表，默认最近 7 天
func (h *HTTPHandler) AdminVisitReport(c *gin.Context) {
	days := 7
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			BadRequest(c, ErrCodeInvalidRequest, "days must be a positive integer")
			return
		}
		days = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	report, err := h.repo.GetVisitReport(ctx, days)
	if err != nil {
		logrus.WithError(err).Error("failed to load visit report")
		InternalError(c, "failed to load visit report")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}
