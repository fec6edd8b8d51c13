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

// SubmitContact 公开联系表单提交
func (h *HTTPHandler) SubmitContact(c *gin.Context) {
	var req entity.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	contact := req.Entity()
	if err := h.repo.CreateContact(ctx, &contact); err != nil {
		logrus.WithError(err).Error("failed to create contact")
		InternalError(c, "failed to submit message")
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// AdminListContacts 管理端留言列表
func (h *HTTPHandler) AdminListContacts(c *gin.Context) {
	var query entity.ContactQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	contacts, err := h.repo.ListContacts(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list contacts")
		InternalError(c, "failed to list contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// AdminGetContact 管理端留言详情
func (h *HTTPHandler) AdminGetContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	contact, err := h.repo.GetContact(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "contact not found")
			return
		}
		logrus.WithError(err).WithField("contact_id", id).Error("failed to load contact")
		InternalError(c, "failed to load contact")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// AdminPatchContact 更新留言状态（已读标记）
func (h *HTTPHandler) AdminPatchContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.ContactPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}
	updates := req.Updates()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	contact, err := h.repo.GetContact(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "contact not found")
			return
		}
		logrus.WithError(err).WithField("contact_id", id).Error("failed to load contact")
		InternalError(c, "failed to update contact")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateContact(ctx, id, updates); err != nil {
			logrus.WithError(err).WithField("contact_id", id).Error("failed to update contact")
			InternalError(c, "failed to update contact")
			return
		}
		contact, err = h.repo.GetContact(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("contact_id", id).Error("failed to reload contact")
			InternalError(c, "failed to update contact")
			return
		}
	}

	c.JSON(http.StatusOK, contact)
}

// AdminDeleteContact 删除留言
func (h *HTTPHandler) AdminDeleteContact(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteContact(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "contact not found")
			return
		}
		logrus.WithError(err).WithField("contact_id", id).Error("failed to delete contact")
		InternalError(c, "failed to delete contact")
		return
	}

	c.Status(http.StatusNoContent)
}
