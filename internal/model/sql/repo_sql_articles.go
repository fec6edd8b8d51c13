package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"
	"strings"

	"gorm.io/gorm"
)

// CreateArticle persists a new article.
func (r *GormRepository) CreateArticle(ctx context.Context, article *entity.DbArticle) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if article == nil {
		return fmt.Errorf("article is nil")
	}
	return r.db.WithContext(ctx).Create(article).Error
}

// GetArticle loads an article by ID.
func (r *GormRepository) GetArticle(ctx context.Context, id uint) (*entity.DbArticle, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid article id")
	}
	var article entity.DbArticle
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

// ListArticles returns articles matching the filters.
func (r *GormRepository) ListArticles(ctx context.Context, params *entity.ArticleQuery) ([]entity.DbArticle, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.ArticleQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	query := r.db.WithContext(ctx).Model(&entity.DbArticle{})
	if category := strings.TrimSpace(q.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if keyword := strings.TrimSpace(q.Search); keyword != "" {
		kw := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ?", kw, kw)
	}

	switch q.Sort {
	case "popular":
		query = query.Order("views DESC")
	case "trending":
		query = query.Order("featured DESC, views DESC")
	default:
		query = query.Order("created_at DESC")
	}

	var articles []entity.DbArticle
	if err := query.Offset(q.Skip).Limit(q.Limit).Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

// UpdateArticle updates an existing article.
func (r *GormRepository) UpdateArticle(ctx context.Context, id uint, updates entity.ArticleUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid article id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbArticle{}).Where("id = ?", id).Updates(values).Error
}

// DeleteArticle removes an article by ID.
func (r *GormRepository) DeleteArticle(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid article id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbArticle{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementArticleViews bumps the view counter without touching updated_at.
func (r *GormRepository) IncrementArticleViews(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid article id")
	}
	return r.db.WithContext(ctx).Model(&entity.DbArticle{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// CountArticles returns total article count.
func (r *GormRepository) CountArticles(ctx context.Context) (int64, error) {
	if r == nil || r.db == nil {
		return 0, fmt.Errorf("repository not initialised")
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.DbArticle{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
