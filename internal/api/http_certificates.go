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

// ListCertificates 公开证书列表
func (h *HTTPHandler) ListCertificates(c *gin.Context) {
	var query entity.CertificateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	certificates, err := h.repo.ListCertificates(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list certificates")
		InternalError(c, "failed to list certificates")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": certificates})
}

// AdminListCertificates 管理端证书列表
func (h *HTTPHandler) AdminListCertificates(c *gin.Context) {
	var query entity.CertificateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	certificates, err := h.repo.ListCertificates(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list certificates")
		InternalError(c, "failed to list certificates")
		return
	}

	c.JSON(http.StatusOK, certificates)
}

// AdminCreateCertificate 创建证书
func (h *HTTPHandler) AdminCreateCertificate(c *gin.Context) {
	var req entity.CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	certificate := req.Entity()
	if err := h.repo.CreateCertificate(ctx, &certificate); err != nil {
		logrus.WithError(err).Error("failed to create certificate")
		InternalError(c, "failed to create certificate")
		return
	}

	c.JSON(http.StatusCreated, certificate)
}

// AdminReplaceCertificate 全量替换证书
func (h *HTTPHandler) AdminReplaceCertificate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.CertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyCertificateUpdates(c, id, req.Updates())
}

// AdminPatchCertificate 部分更新证书
func (h *HTTPHandler) AdminPatchCertificate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.CertificatePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyCertificateUpdates(c, id, req.Updates())
}

func (h *HTTPHandler) applyCertificateUpdates(c *gin.Context, id uint, updates entity.CertificateUpdates) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	certificate, err := h.repo.GetCertificate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "certificate not found")
			return
		}
		logrus.WithError(err).WithField("certificate_id", id).Error("failed to load certificate")
		InternalError(c, "failed to update certificate")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateCertificate(ctx, id, updates); err != nil {
			logrus.WithError(err).WithField("certificate_id", id).Error("failed to update certificate")
			InternalError(c, "failed to update certificate")
			return
		}
		certificate, err = h.repo.GetCertificate(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("certificate_id", id).Error("failed to reload certificate")
			InternalError(c, "failed to update certificate")
			return
		}
	}

	c.JSON(http.StatusOK, certificate)
}

// AdminDeleteCertificate 删除证书
func (h *HTTPHandler) AdminDeleteCertificate(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteCertificate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "certificate not found")
			return
		}
		logrus.WithError(err).WithField("certificate_id", id).Error("failed to delete certificate")
		InternalError(c, "failed to delete certificate")
		return
	}

	c.Status(http.StatusNoContent)
}
