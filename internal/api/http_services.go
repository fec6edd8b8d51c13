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

// ListActiveServices 公开服务列表，只含启用条目
func (h *HTTPHandler) ListActiveServices(c *gin.Context) {
	var query entity.ServiceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}
	query.ActiveOnly = true

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	services, err := h.repo.ListServices(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list services")
		InternalError(c, "failed to list services")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": services})
}

// AdminListServices 管理端服务列表，含停用条目
func (h *HTTPHandler) AdminListServices(c *gin.Context) {
	var query entity.ServiceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	services, err := h.repo.ListServices(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list services")
		InternalError(c, "failed to list services")
		return
	}

	c.JSON(http.StatusOK, services)
}

// AdminCreateService 创建服务
func (h *HTTPHandler) AdminCreateService(c *gin.Context) {
	var req entity.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	service := req.Entity()
	if err := h.repo.CreateService(ctx, &service); err != nil {
		logrus.WithError(err).Error("failed to create service")
		InternalError(c, "failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// AdminReplaceService 全量替换服务
func (h *HTTPHandler) AdminReplaceService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyServiceUpdates(c, id, req.Updates())
}

// AdminPatchService 部分更新服务
func (h *HTTPHandler) AdminPatchService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.ServicePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyServiceUpdates(c, id, req.Updates())
}

func (h *HTTPHandler) applyServiceUpdates(c *gin.Context, id uint, updates entity.ServiceUpdates) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	service, err := h.repo.GetService(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "service not found")
			return
		}
		logrus.WithError(err).WithField("service_id", id).Error("failed to load service")
		InternalError(c, "failed to update service")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateService(ctx, id, updates); err != nil {
			logrus.WithError(err).WithField("service_id", id).Error("failed to update service")
			InternalError(c, "failed to update service")
			return
		}
		service, err = h.repo.GetService(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("service_id", id).Error("failed to reload service")
			InternalError(c, "failed to update service")
			return
		}
	}

	c.JSON(http.StatusOK, service)
}

// AdminDeleteService 删除服务
func (h *HTTPHandler) AdminDeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteService(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "service not found")
			return
		}
		logrus.WithError(err).WithField("service_id", id).Error("failed to delete service")
		InternalError(c, "failed to delete service")
		return
	}

	c.Status(http.StatusNoContent)
}
