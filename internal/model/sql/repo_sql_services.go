package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"

	"gorm.io/gorm"
)

// CreateService persists a new service offering.
func (r *GormRepository) CreateService(ctx context.Context, service *entity.DbService) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if service == nil {
		return fmt.Errorf("service is nil")
	}
	return r.db.WithContext(ctx).Create(service).Error
}

// GetService loads a service by ID.
func (r *GormRepository) GetService(ctx context.Context, id uint) (*entity.DbService, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid service id")
	}
	var service entity.DbService
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// ListServices returns services ordered by their display order.
func (r *GormRepository) ListServices(ctx context.Context, params *entity.ServiceQuery) ([]entity.DbService, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.ServiceQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	query := r.db.WithContext(ctx).Model(&entity.DbService{})
	if q.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	var services []entity.DbService
	if err := query.Order("sort_order ASC, id ASC").Offset(q.Skip).Limit(q.Limit).Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// UpdateService updates an existing service.
func (r *GormRepository) UpdateService(ctx context.Context, id uint, updates entity.ServiceUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid service id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbService{}).Where("id = ?", id).Updates(values).Error
}

// DeleteService removes a service by ID.
func (r *GormRepository) DeleteService(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid service id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbService{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
