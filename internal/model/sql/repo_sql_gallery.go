package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"
	"strings"

	"gorm.io/gorm"
)

// CreateGalleryItem persists a new gallery item.
func (r *GormRepository) CreateGalleryItem(ctx context.Context, item *entity.DbGalleryItem) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if item == nil {
		return fmt.Errorf("gallery item is nil")
	}
	return r.db.WithContext(ctx).Create(item).Error
}

// GetGalleryItem loads a gallery item by ID.
func (r *GormRepository) GetGalleryItem(ctx context.Context, id uint) (*entity.DbGalleryItem, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid gallery item id")
	}
	var item entity.DbGalleryItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListGalleryItems returns gallery items matching the filters.
func (r *GormRepository) ListGalleryItems(ctx context.Context, params *entity.GalleryQuery) ([]entity.DbGalleryItem, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.GalleryQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	query := r.db.WithContext(ctx).Model(&entity.DbGalleryItem{})
	if category := strings.TrimSpace(q.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if keyword := strings.TrimSpace(q.Search); keyword != "" {
		kw := "%" + strings.ToLower(keyword) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", kw, kw)
	}

	var items []entity.DbGalleryItem
	if err := query.Order("created_at DESC").Offset(q.Skip).Limit(q.Limit).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateGalleryItem updates an existing gallery item.
func (r *GormRepository) UpdateGalleryItem(ctx context.Context, id uint, updates entity.GalleryItemUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid gallery item id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbGalleryItem{}).Where("id = ?", id).Updates(values).Error
}

// DeleteGalleryItem removes a gallery item by ID.
func (r *GormRepository) DeleteGalleryItem(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid gallery item id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbGalleryItem{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementGalleryItemViews bumps the view counter without touching updated_at.
func (r *GormRepository) IncrementGalleryItemViews(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid gallery item id")
	}
	return r.db.WithContext(ctx).Model(&entity.DbGalleryItem{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
