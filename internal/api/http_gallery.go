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

// ListGalleryItems 公开作品列表
func (h *HTTPHandler) ListGalleryItems(c *gin.Context) {
	var query entity.GalleryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.ListGalleryItems(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list gallery items")
		InternalError(c, "failed to list gallery items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": items})
}

// GetGalleryItem 公开作品详情，每次访问累加浏览量
func (h *HTTPHandler) GetGalleryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.repo.GetGalleryItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "gallery item not found")
			return
		}
		logrus.WithError(err).WithField("gallery_id", id).Error("failed to load gallery item")
		InternalError(c, "failed to load gallery item")
		return
	}

	if err := h.repo.IncrementGalleryItemViews(ctx, id); err != nil {
		logrus.WithError(err).WithField("gallery_id", id).Warn("failed to bump gallery views")
	} else {
		item.Views++
	}

	c.JSON(http.StatusOK, item)
}

// AdminListGalleryItems 管理端作品列表
func (h *HTTPHandler) AdminListGalleryItems(c *gin.Context) {
	var query entity.GalleryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.repo.ListGalleryItems(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list gallery items")
		InternalError(c, "failed to list gallery items")
		return
	}

	c.JSON(http.StatusOK, items)
}

// AdminGetGalleryItem 管理端作品详情，不影响浏览量
func (h *HTTPHandler) AdminGetGalleryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.repo.GetGalleryItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "gallery item not found")
			return
		}
		logrus.WithError(err).WithField("gallery_id", id).Error("failed to load gallery item")
		InternalError(c, "failed to load gallery item")
		return
	}

	c.JSON(http.StatusOK, item)
}

// AdminCreateGalleryItem 创建作品
func (h *HTTPHandler) AdminCreateGalleryItem(c *gin.Context) {
	var req entity.GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item := req.Entity()
	if err := h.repo.CreateGalleryItem(ctx, &item); err != nil {
		logrus.WithError(err).Error("failed to create gallery item")
		InternalError(c, "failed to create gallery item")
		return
	}

	c.JSON(http.StatusCreated, item)
}

// AdminReplaceGalleryItem 全量替换作品
func (h *HTTPHandler) AdminReplaceGalleryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.GalleryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyGalleryItemUpdates(c, id, req.Updates())
}

// AdminPatchGalleryItem 部分更新作品
func (h *HTTPHandler) AdminPatchGalleryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.GalleryItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyGalleryItemUpdates(c, id, req.Updates())
}

func (h *HTTPHandler) applyGalleryItemUpdates(c *gin.Context, id uint, updates entity.GalleryItemUpdates) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	item, err := h.repo.GetGalleryItem(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "gallery item not found")
			return
		}
		logrus.WithError(err).WithField("gallery_id", id).Error("failed to load gallery item")
		InternalError(c, "failed to update gallery item")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateGalleryItem(ctx, id, updates); err != nil {
			logrus.WithError(err).WithField("gallery_id", id).Error("failed to update gallery item")
			InternalError(c, "failed to update gallery item")
			return
		}
		item, err = h.repo.GetGalleryItem(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("gallery_id", id).Error("failed to reload gallery item")
			InternalError(c, "failed to update gallery item")
			return
		}
	}

	c.JSON(http.StatusOK, item)
}

// AdminDeleteGalleryItem 删除作品
func (h *HTTPHandler) AdminDeleteGalleryItem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteGalleryItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "gallery item not found")
			return
		}
		logrus.WithError(err).WithField("gallery_id", id).Error("failed to delete gallery item")
		InternalError(c, "failed to delete gallery item")
		return
	}

	c.Status(http.StatusNoContent)
}
