package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"

	"gorm.io/gorm"
)

// CreateVideo persists a new video.
func (r *GormRepository) CreateVideo(ctx context.Context, video *entity.DbVideo) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if video == nil {
		return fmt.Errorf("video is nil")
	}
	return r.db.WithContext(ctx).Create(video).Error
}

// GetVideo loads a video by ID.
func (r *GormRepository) GetVideo(ctx context.Context, id uint) (*entity.DbVideo, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid video id")
	}
	var video entity.DbVideo
	if err := r.db.WithContext(ctx).First(&video, id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// ListVideos returns videos ordered by their display order.
func (r *GormRepository) ListVideos(ctx context.Context, params *entity.VideoQuery) ([]entity.DbVideo, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.VideoQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	query := r.db.WithContext(ctx).Model(&entity.DbVideo{})
	if q.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	var videos []entity.DbVideo
	if err := query.Order("sort_order ASC, id ASC").Offset(q.Skip).Limit(q.Limit).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// UpdateVideo updates an existing video.
func (r *GormRepository) UpdateVideo(ctx context.Context, id uint, updates entity.VideoUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid video id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbVideo{}).Where("id = ?", id).Updates(values).Error
}

// DeleteVideo removes a video by ID.
func (r *GormRepository) DeleteVideo(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid video id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbVideo{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
