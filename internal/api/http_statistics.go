package api

import (
	"context"
	"errors"
	"net/http"
	"portfolio/internal/entity"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListStatistics 公开统计项列表，按显示顺序排序
func (h *HTTPHandler) ListStatistics(c *gin.Context) {
	var query entity.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	statistics, err := h.repo.ListStatistics(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list statistics")
		InternalError(c, "failed to list statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": statistics})
}

// AdminListStatistics 管理端统计项列表
func (h *HTTPHandler) AdminListStatistics(c *gin.Context) {
	var query entity.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	statistics, err := h.repo.ListStatistics(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list statistics")
		InternalError(c, "failed to list statistics")
		return
	}

	c.JSON(http.StatusOK, statistics)
}

// AdminCreateStatistic 创建统计项
func (h *HTTPHandler) AdminCreateStatistic(c *gin.Context) {
	var req entity.StatisticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	statistic := req.Entity()
	if err := h.repo.CreateStatistic(ctx, &statistic); err != nil {
		logrus.WithError(err).Error("failed to create statistic")
		InternalError(c, "failed to create statistic")
		return
	}

	c.JSON(http.StatusCreated, statistic)
}

// AdminReplaceStatistic 全量替换统计项
func (h *HTTPHandler) AdminReplaceStatistic(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.StatisticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyStatisticUpdates(c, id, req.Updates())
}

// AdminPatchStatistic 部分更新统计项
func (h *HTTPHandler) AdminPatchStatistic(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.StatisticPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyStatisticUpdates(c, id, req.Updates())
}

func (h *HTTPHandler) applyStatisticUpdates(c *gin.Context, id uint, updates entity.StatisticUpdates) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	statistic, err := h.repo.GetStatistic(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "statistic not found")
			return
		}
		logrus.WithError(err).WithField("statistic_id", id).Error("failed to load statistic")
		InternalError(c, "failed to update statistic")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateStatistic(ctx, id, updates); err != nil {
			logrus.WithError(err).WithField("statistic_id", id).Error("failed to update statistic")
			InternalError(c, "failed to update statistic")
			return
		}
		statistic, err = h.repo.GetStatistic(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("statistic_id", id).Error("failed to reload statistic")
			InternalError(c, "failed to update statistic")
			return
		}
	}

	c.JSON(http.StatusOK, statistic)
}

// AdminDeleteStatistic 删除统计项
func (h *HTTPHandler) AdminDeleteStatistic(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteStatistic(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "statistic not found")
			return
		}
		logrus.WithError(err).WithField("statistic_id", id).Error("failed to delete statistic")
		InternalError(c, "failed to delete statistic")
		return
	}

	c.Status(http.StatusNoContent)
}
