package api

import (
	"context"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio/internal/storage"
)

// maxUploadBytes 单个上传文件的大小上限（5 MiB）
const maxUploadBytes = 5 << 20

// AdminUpload 管理端图片上传。表单字段 file 为文件本体，category 可选，
// 用于归档目录（默认 uploads）。
func (h *HTTPHandler) AdminUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "file field is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		BadRequest(c, ErrCodeInvalidRequest, "file exceeds 5 MiB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logrus.WithError(err).Error("failed to open uploaded file")
		InternalError(c, "failed to read upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		logrus.WithError(err).Error("failed to read uploaded file")
		InternalError(c, "failed to read upload")
		return
	}
	if len(data) == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "uploaded file is empty")
		return
	}
	if len(data) > maxUploadBytes {
		BadRequest(c, ErrCodeInvalidRequest, "file exceeds 5 MiB limit")
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		BadRequest(c, ErrCodeInvalidRequest, "only image uploads are allowed")
		return
	}

	category := storage.SanitizeToken(c.PostForm("category"))
	if category == "" {
		category = "uploads"
	}

	ext := strings.TrimPrefix(filepath.Ext(fileHeader.Filename), ".")
	if ext == "" {
		// 退化到按内容类型推断
		switch contentType {
		case "image/png":
			ext = "png"
		case "image/gif":
			ext = "gif"
		case "image/webp":
			ext = "webp"
		default:
			ext = "jpg"
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	storedPath, err := h.storage.Save(ctx, data, storage.SaveOptions{
		Category:  category,
		Extension: ext,
	})
	if err != nil {
		logrus.WithError(err).Error("failed to store uploaded file")
		InternalError(c, "failed to store upload")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"path": storedPath,
		"url":  h.publicURL(storedPath),
	})
}
