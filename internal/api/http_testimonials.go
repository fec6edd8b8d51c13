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

// ListApprovedTestimonials 公开评价列表，只含已审核条目
func (h *HTTPHandler) ListApprovedTestimonials(c *gin.Context) {
	var query entity.TestimonialQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}
	query.ApprovedOnly = true

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	testimonials, err := h.repo.ListTestimonials(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list testimonials")
		InternalError(c, "failed to list testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": testimonials})
}

// SubmitTestimonial 公开提交评价，待审核后展示
func (h *HTTPHandler) SubmitTestimonial(c *gin.Context) {
	var req entity.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	testimonial := req.Entity()
	testimonial.Approved = false // 公开提交一律待审核
	if err := h.repo.CreateTestimonial(ctx, &testimonial); err != nil {
		logrus.WithError(err).Error("failed to create testimonial")
		InternalError(c, "failed to submit testimonial")
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

// AdminListTestimonials 管理端评价列表，包含未审核条目
func (h *HTTPHandler) AdminListTestimonials(c *gin.Context) {
	var query entity.TestimonialQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	testimonials, err := h.repo.ListTestimonials(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list testimonials")
		InternalError(c, "failed to list testimonials")
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// AdminCreateTestimonial 管理端直接创建评价
func (h *HTTPHandler) AdminCreateTestimonial(c *gin.Context) {
	var req entity.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	testimonial := req.Entity()
	if err := h.repo.CreateTestimonial(ctx, &testimonial); err != nil {
		logrus.WithError(err).Error("failed to create testimonial")
		InternalError(c, "failed to create testimonial")
		return
	}

	c.JSON(http.StatusCreated, testimonial)
}

// AdminReplaceTestimonial 全量替换评价
func (h *HTTPHandler) AdminReplaceTestimonial(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyTestimonialUpdates(c, id, req.Updates())
}

// AdminPatchTestimonial 部分更新评价（审核即 {"approved": true}）
func (h *HTTPHandler) AdminPatchTestimonial(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.TestimonialPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyTestimonialUpdates(c, id, req.Updates())
}

func (h *HTTPHandler) applyTestimonialUpdates(c *gin.Context, id uint, updates entity.TestimonialUpdates) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	testimonial, err := h.repo.GetTestimonial(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "testimonial not found")
			return
		}
		logrus.WithError(err).WithField("testimonial_id", id).Error("failed to load testimonial")
		InternalError(c, "failed to update testimonial")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateTestimonial(ctx, id, updates); err != nil {
			logrus.WithError(err).WithField("testimonial_id", id).Error("failed to update testimonial")
			InternalError(c, "failed to update testimonial")
			return
		}
		testimonial, err = h.repo.GetTestimonial(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("testimonial_id", id).Error("failed to reload testimonial")
			InternalError(c, "failed to update testimonial")
			return
		}
	}

	c.JSON(http.StatusOK, testimonial)
}

// AdminDeleteTestimonial 删除评价
func (h *HTTPHandler) AdminDeleteTestimonial(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteTestimonial(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "testimonial not found")
			return
		}
		logrus.WithError(err).WithField("testimonial_id", id).Error("failed to delete testimonial")
		InternalError(c, "failed to delete testimonial")
		return
	}

	c.Status(http.StatusNoContent)
}
