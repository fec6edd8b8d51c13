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

// SubscribeNewsletter 公开订阅接口。邮箱唯一且订阅幂等：重复订阅已激活
// 邮箱直接返回现有记录，重新订阅已取消的邮箱则原地激活。
func (h *HTTPHandler) SubscribeNewsletter(c *gin.Context) {
	var req entity.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	existing, err := h.repo.GetSubscriberByEmail(ctx, req.Email)
	switch {
	case err == nil:
		if existing.Active {
			c.JSON(http.StatusOK, existing)
			return
		}
		active := true
		if err := h.repo.UpdateSubscriber(ctx, existing.ID, entity.SubscriberUpdates{Active: &active}); err != nil {
			logrus.WithError(err).WithField("subscriber_id", existing.ID).Error("failed to reactivate subscription")
			InternalError(c, "failed to subscribe")
			return
		}
		existing.Active = true
		c.JSON(http.StatusOK, existing)
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to create
	default:
		logrus.WithError(err).Error("failed to look up subscriber")
		InternalError(c, "failed to subscribe")
		return
	}

	subscriber := &entity.DbSubscriber{Email: req.Email, Active: true}
	if err := h.repo.CreateSubscriber(ctx, subscriber); err != nil {
		if isDuplicateKey(err) {
			// 并发插入撞唯一索引，按幂等订阅处理
			if existing, lookupErr := h.repo.GetSubscriberByEmail(ctx, req.Email); lookupErr == nil {
				c.JSON(http.StatusOK, existing)
				return
			}
			Conflict(c, "email already subscribed")
			return
		}
		logrus.WithError(err).Error("failed to create subscriber")
		InternalError(c, "failed to subscribe")
		return
	}

	c.JSON(http.StatusCreated, subscriber)
}

// AdminListSubscribers 管理端订阅列表
func (h *HTTPHandler) AdminListSubscribers(c *gin.Context) {
	var query entity.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	subscribers, err := h.repo.ListSubscribers(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list subscribers")
		InternalError(c, "failed to list subscribers")
		return
	}

	c.JSON(http.StatusOK, subscribers)
}

// AdminDeleteSubscriber 删除订阅
func (h *HTTPHandler) AdminDeleteSubscriber(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteSubscriber(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "subscriber not found")
			return
		}
		logrus.WithError(err).WithField("subscriber_id", id).Error("failed to delete subscriber")
		InternalError(c, "failed to delete subscriber")
		return
	}

	c.Status(http.StatusNoContent)
}
