package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"
	"strings"

	"gorm.io/gorm"
)

// CreateComment persists a new comment.
func (r *GormRepository) CreateComment(ctx context.Context, comment *entity.DbComment) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if comment == nil {
		return fmt.Errorf("comment is nil")
	}
	return r.db.WithContext(ctx).Create(comment).Error
}

// GetComment loads a comment by ID.
func (r *GormRepository) GetComment(ctx context.Context, id uint) (*entity.DbComment, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid comment id")
	}
	var comment entity.DbComment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns comments matching the filters, newest first.
func (r *GormRepository) ListComments(ctx context.Context, params *entity.CommentQuery) ([]entity.DbComment, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.CommentQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	query := r.db.WithContext(ctx).Model(&entity.DbComment{})
	if contentType := strings.TrimSpace(q.ContentType); contentType != "" {
		query = query.Where("content_type = ?", contentType)
	}
	if q.ContentID > 0 {
		query = query.Where("content_id = ?", q.ContentID)
	}
	if q.ApprovedOnly {
		query = query.Where("approved = ?", true)
	}

	var comments []entity.DbComment
	if err := query.Order("created_at DESC").Offset(q.Skip).Limit(q.Limit).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateComment updates an existing comment.
func (r *GormRepository) UpdateComment(ctx context.Context, id uint, updates entity.CommentUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid comment id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbComment{}).Where("id = ?", id).Updates(values).Error
}

// DeleteComment removes a comment by ID.
func (r *GormRepository) DeleteComment(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid comment id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbComment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetCommentStats summarises moderation state across all comments.
func (r *GormRepository) GetCommentStats(ctx context.Context) (*entity.CommentStats, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	stats := entity.CommentStats{}
	if err := r.db.WithContext(ctx).Model(&entity.DbComment{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.DbComment{}).Where("approved = ?", true).Count(&stats.Approved).Error; err != nil {
		return nil, err
	}
	stats.Pending = stats.Total - stats.Approved
	return &stats, nil
}
