package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"

	"gorm.io/gorm"
)

// CreateSlider persists a new slider.
func (r *GormRepository) CreateSlider(ctx context.Context, slider *entity.DbSlider) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if slider == nil {
		return fmt.Errorf("slider is nil")
	}
	return r.db.WithContext(ctx).Create(slider).Error
}

// GetSlider loads a slider by ID.
func (r *GormRepository) GetSlider(ctx context.Context, id uint) (*entity.DbSlider, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid slider id")
	}
	var slider entity.DbSlider
	if err := r.db.WithContext(ctx).First(&slider, id).Error; err != nil {
		return nil, err
	}
	return &slider, nil
}

// ListSliders returns sliders ordered by id.
func (r *GormRepository) ListSliders(ctx context.Context, params *entity.ListQuery) ([]entity.DbSlider, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.ListQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	var sliders []entity.DbSlider
	if err := r.db.WithContext(ctx).Model(&entity.DbSlider{}).
		Order("id ASC").Offset(q.Skip).Limit(q.Limit).Find(&sliders).Error; err != nil {
		return nil, err
	}
	return sliders, nil
}

// UpdateSlider updates an existing slider.
func (r *GormRepository) UpdateSlider(ctx context.Context, id uint, updates entity.SliderUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid slider id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbSlider{}).Where("id = ?", id).Updates(values).Error
}

// DeleteSlider removes a slider by ID.
func (r *GormRepository) DeleteSlider(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid slider id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbSlider{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
