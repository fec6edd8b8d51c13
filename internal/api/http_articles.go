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

// ListArticles 公开文章列表
func (h *HTTPHandler) ListArticles(c *gin.Context) {
	var query entity.ArticleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	articles, err := h.repo.ListArticles(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list articles")
		InternalError(c, "failed to list articles")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": articles})
}

// GetArticle 公开文章详情，每次访问累加浏览量
func (h *HTTPHandler) GetArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	article, err := h.repo.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "article not found")
			return
		}
		logrus.WithError(err).WithField("article_id", id).Error("failed to load article")
		InternalError(c, "failed to load article")
		return
	}

	if err := h.repo.IncrementArticleViews(ctx, id); err != nil {
		logrus.WithError(err).WithField("article_id", id).Warn("failed to bump article views")
	} else {
		article.Views++
	}

	c.JSON(http.StatusOK, article)
}

// AdminListArticles 管理端文章列表
func (h *HTTPHandler) AdminListArticles(c *gin.Context) {
	var query entity.ArticleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	articles, err := h.repo.ListArticles(ctx, &query)
	if err != nil {
		logrus.WithError(err).Error("failed to list articles")
		InternalError(c, "failed to list articles")
		return
	}

	c.JSON(http.StatusOK, articles)
}

// AdminGetArticle 管理端文章详情，不影响浏览量
func (h *HTTPHandler) AdminGetArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	article, err := h.repo.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "article not found")
			return
		}
		logrus.WithError(err).WithField("article_id", id).Error("failed to load article")
		InternalError(c, "failed to load article")
		return
	}

	c.JSON(http.StatusOK, article)
}

// AdminCreateArticle 创建文章
func (h *HTTPHandler) AdminCreateArticle(c *gin.Context) {
	var req entity.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	article := req.Entity()
	if err := h.repo.CreateArticle(ctx, &article); err != nil {
		logrus.WithError(err).Error("failed to create article")
		InternalError(c, "failed to create article")
		return
	}

	c.JSON(http.StatusCreated, article)
}

// AdminReplaceArticle 全量替换文章。请求缺省的可选字段会被写回零值。
func (h *HTTPHandler) AdminReplaceArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyArticleUpdates(c, id, req.Updates())
}

// AdminPatchArticle 部分更新文章，只触碰请求中出现的字段
func (h *HTTPHandler) AdminPatchArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req entity.ArticlePatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ValidationError(c, err)
		return
	}

	h.applyArticleUpdates(c, id, req.Updates())
}

func (h *HTTPHandler) applyArticleUpdates(c *gin.Context, id uint, updates entity.ArticleUpdates) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	article, err := h.repo.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "article not found")
			return
		}
		logrus.WithError(err).WithField("article_id", id).Error("failed to load article")
		InternalError(c, "failed to update article")
		return
	}

	if !updates.IsEmpty() {
		if err := h.repo.UpdateArticle(ctx, id, updates); err != nil {
			logrus.WithError(err).WithField("article_id", id).Error("failed to update article")
			InternalError(c, "failed to update article")
			return
		}
		article, err = h.repo.GetArticle(ctx, id)
		if err != nil {
			logrus.WithError(err).WithField("article_id", id).Error("failed to reload article")
			InternalError(c, "failed to update article")
			return
		}
	}

	c.JSON(http.StatusOK, article)
}

// AdminDeleteArticle 删除文章
func (h *HTTPHandler) AdminDeleteArticle(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.repo.DeleteArticle(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "article not found")
			return
		}
		logrus.WithError(err).WithField("article_id", id).Error("failed to delete article")
		InternalError(c, "failed to delete article")
		return
	}

	c.Status(http.StatusNoContent)
}
