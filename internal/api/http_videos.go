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

// ListActiveVideos 公开视频列表，只含启用条目
func (h *HTTPHandler) ListActiveVideos(c *gin.Context) {
	var query entity.VideoQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}
	query.ActiveOnly = true

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	videos, err := h.repo.ListVideos(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list videos")
		InternalError(c, "failed to list videos")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": videos})
}

// AdminListVideos 管理端视频列表，含停用条目
func (h *HTTPHandler) AdminListVideos(c *gin.Context) {
	var query entity.VideoQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	videos, err := h.repo.ListVideos(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list videos")
		InternalError(c, "failed to list videos")
		return
	}

	c.JSON(http.StatusOK, videos)
}

// AdminCreateVideo 创建视频
func (h *HTTPHandler) AdminCreateVideo(c *gin.Context) {
	var req entity.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	video := req.Entity()
	if err := h.repo.CreateVideo(ctx, &video); err != nil {
		logrus.WithError(err).Error("failed to create video")
		InternalError(c, "failed to create video")
		return
	}

	c.JSON(http.StatusCreated, video)
}

// AdminReplaceVideo 全量替换视频
func (h *HTTPHandler) AdminReplaceVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyVideoUpdates(c, id, req.Updates())
}

// AdminPatchVideo 部分更新视频
func (h *HTTPHandler) AdminPatchVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.VideoPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyVideoUpdates(c, id, req.Updates())
}

func (h *HTTPHandler) applyVideoUpdates(c *gin.Context, id uint, updates entity.VideoUpdates) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	video, err := h.repo.GetVideo(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "video not found")
			return
		}
		logrus.WithError(err).WithField("video_id", id).Error("failed to load video")
		InternalError(c, "failed to update video")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateVideo(ctx, id, updates); err != nil {
			logrus.WithError(err).WithField("video_id", id).Error("failed to update video")
			InternalError(c, "failed to update video")
			return
		}
		video, err = h.repo.GetVideo(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("video_id", id).Error("failed to reload video")
			InternalError(c, "failed to update video")
			return
		}
	}

	c.JSON(http.StatusOK, video)
}

// AdminDeleteVideo 删除视频
func (h *HTTPHandler) AdminDeleteVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteVideo(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "video not found")
			return
		}
		logrus.WithError(err).WithField("video_id", id).Error("failed to delete video")
		InternalError(c, "failed to delete video")
		return
	}

	c.Status(http.StatusNoContent)
}
