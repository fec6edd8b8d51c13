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

// ListApprovedComments 公开评论列表，只含已审核条目
func (h *HTTPHandler) ListApprovedComments(c *gin.Context) {
	var query entity.CommentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}
	query.ApprovedOnly = true

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comments, err := h.repo.ListComments(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list comments")
		InternalError(c, "failed to list comments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": comments})
}

// SubmitComment 公开提交评论。目标内容必须存在，评论待审核后展示。
func (h *HTTPHandler) SubmitComment(c *gin.Context) {
	var req entity.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	// 校验目标内容存在
	var err error
	switch req.ContentType {
	case entity.ContentTypeArticle:
		_, err = h.repo.GetArticle(ctx, req.ContentID)
	case entity.ContentTypeProject:
		_, err = h.repo.GetGalleryItem(ctx, req.ContentID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "target content not found")
			return
		}
		logrus.WithError(err).Error("failed to verify comment target")
		InternalError(c, "failed to submit comment")
		return
	}

	comment := req.Entity()
	comment.Approved = false // 公开提交一律待审核
	if err := h.repo.CreateComment(ctx, &comment); err != nil {
		logrus.WithError(err).Error("failed to create comment")
		InternalError(c, "failed to submit comment")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// AdminListComments 管理端评论列表，包含未审核条目
func (h *HTTPHandler) AdminListComments(c *gin.Context) {
	var query entity.CommentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comments, err := h.repo.ListComments(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list comments")
		InternalError(c, "failed to list comments")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// AdminCommentStats 评论审核统计
func (h *HTTPHandler) AdminCommentStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.repo.GetCommentStats(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load comment stats")
		InternalError(c, "failed to load comment stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// AdminPatchComment 部分更新评论（审核即 {"approved": true}）
func (h *HTTPHandler) AdminPatchComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.CommentPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}
	updates := req.Updates()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	comment, err := h.repo.GetComment(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "comment not found")
			return
		}
		logrus.WithError(err).WithField("comment_id", id).Error("failed to load comment")
		InternalError(c, "failed to update comment")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateComment(ctx, id, updates); err != nil {
			logrus.WithError(err).WithField("comment_id", id).Error("failed to update comment")
			InternalError(c, "failed to update comment")
			return
		}
		comment, err = h.repo.GetComment(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("comment_id", id).Error("failed to reload comment")
			InternalError(c, "failed to update comment")
			return
		}
	}

	c.JSON(http.StatusOK, comment)
}

// AdminDeleteComment 删除评论
func (h *HTTPHandler) AdminDeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteComment(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "comment not found")
			return
		}
		logrus.WithError(err).WithField("comment_id", id).Error("failed to delete comment")
		InternalError(c, "failed to delete comment")
		return
	}

	c.Status(http.StatusNoContent)
}
