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

// ListSliders 公开轮播图列表
func (h *HTTPHandler) ListSliders(c *gin.Context) {
	var query entity.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	sliders, err := h.repo.ListSliders(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list sliders")
		InternalError(c, "failed to list sliders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sliders})
}

// GetSlider 公开轮播图详情
func (h *HTTPHandler) GetSlider(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	slider, err := h.repo.GetSlider(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "slider not found")
			return
		}
		logrus.WithError(err).WithField("slider_id", id).Error("failed to load slider")
		InternalError(c, "failed to load slider")
		return
	}

	c.JSON(http.StatusOK, slider)
}

// AdminListSliders 管理端轮播图列表
func (h *HTTPHandler) AdminListSliders(c *gin.Context) {
	var query entity.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	sliders, err := h.repo.ListSliders(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list sliders")
		InternalError(c, "failed to list sliders")
		return
	}

	c.JSON(http.StatusOK, sliders)
}

// AdminGetSlider 管理端轮播图详情
func (h *HTTPHandler) AdminGetSlider(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	slider, err := h.repo.GetSlider(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "slider not found")
			return
		}
		logrus.WithError(err).WithField("slider_id", id).Error("failed to load slider")
		InternalError(c, "failed to load slider")
		return
	}

	c.JSON(http.StatusOK, slider)
}

// AdminCreateSlider 创建轮播图。名称唯一。
func (h *HTTPHandler) AdminCreateSlider(c *gin.Context) {
	var req entity.SliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	slider := req.Entity()
	if err := h.repo.CreateSlider(ctx, &slider); err != nil {
		if isDuplicateKey(err) {
			Conflict(c, "slider name already exists")
			return
		}
		logrus.WithError(err).Error("failed to create slider")
		InternalError(c, "failed to create slider")
		return
	}

	c.JSON(http.StatusCreated, slider)
}

// AdminReplaceSlider 全量替换轮播图
func (h *HTTPHandler) AdminReplaceSlider(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.SliderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applySliderUpdates(c, id, req.Updates())
}

// AdminPatchSlider 部分更新轮播图
func (h *HTTPHandler) AdminPatchSlider(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.SliderPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applySliderUpdates(c, id, req.Updates())
}

func (h *HTTPHandler) applySliderUpdates(c *gin.Context, id uint, updates entity.SliderUpdates) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	slider, err := h.repo.GetSlider(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "slider not found")
			return
		}
		logrus.WithError(err).WithField("slider_id", id).Error("failed to load slider")
		InternalError(c, "failed to update slider")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateSlider(ctx, id, updates); err != nil {
			if isDuplicateKey(err) {
				Conflict(c, "slider name already exists")
				return
			}
			logrus.WithError(err).WithField("slider_id", id).Error("failed to update slider")
			InternalError(c, "failed to update slider")
			return
		}
		slider, err = h.repo.GetSlider(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("slider_id", id).Error("failed to reload slider")
			InternalError(c, "failed to update slider")
			return
		}
	}

	c.JSON(http.StatusOK, slider)
}

// AdminDeleteSlider 删除轮播图
func (h *HTTPHandler) AdminDeleteSlider(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteSlider(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "slider not found")
			return
		}
		logrus.WithError(err).WithField("slider_id", id).Error("failed to delete slider")
		InternalError(c, "failed to delete slider")
		return
	}

	c.Status(http.StatusNoContent)
}
