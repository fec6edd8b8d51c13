package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"

	"gorm.io/gorm"
)

// CreateStatistic persists a new statistic.
func (r *GormRepository) CreateStatistic(ctx context.Context, statistic *entity.DbStatistic) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if statistic == nil {
		return fmt.Errorf("statistic is nil")
	}
	return r.db.WithContext(ctx).Create(statistic).Error
}

// GetStatistic loads a statistic by ID.
func (r *GormRepository) GetStatistic(ctx context.Context, id uint) (*entity.DbStatistic, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid statistic id")
	}
	var statistic entity.DbStatistic
	if err := r.db.WithContext(ctx).First(&statistic, id).Error; err != nil {
		return nil, err
	}
	return &statistic, nil
}

// ListStatistics returns statistics ordered by their display order.
func (r *GormRepository) ListStatistics(ctx context.Context, params *entity.ListQuery) ([]entity.DbStatistic, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.ListQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	var statistics []entity.DbStatistic
	if err := r.db.WithContext(ctx).Model(&entity.DbStatistic{}).
		Order("sort_order ASC, id ASC").Offset(q.Skip).Limit(q.Limit).Find(&statistics).Error; err != nil {
		return nil, err
	}
	return statistics, nil
}

// UpdateStatistic updates an existing statistic.
func (r *GormRepository) UpdateStatistic(ctx context.Context, id uint, updates entity.StatisticUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid statistic id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbStatistic{}).Where("id = ?", id).Updates(values).Error
}

// DeleteStatistic removes a statistic by ID.
func (r *GormRepository) DeleteStatistic(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid statistic id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbStatistic{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
