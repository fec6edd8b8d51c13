package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"

	"gorm.io/gorm"
)

// CreateTestimonial persists a new testimonial.
func (r *GormRepository) CreateTestimonial(ctx context.Context, testimonial *entity.DbTestimonial) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if testimonial == nil {
		return fmt.Errorf("testimonial is nil")
	}
	return r.db.WithContext(ctx).Create(testimonial).Error
}

// GetTestimonial loads a testimonial by ID.
func (r *GormRepository) GetTestimonial(ctx context.Context, id uint) (*entity.DbTestimonial, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid testimonial id")
	}
	var testimonial entity.DbTestimonial
	if err := r.db.WithContext(ctx).First(&testimonial, id).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// ListTestimonials returns testimonials, optionally limited to approved ones.
func (r *GormRepository) ListTestimonials(ctx context.Context, params *entity.TestimonialQuery) ([]entity.DbTestimonial, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.TestimonialQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	query := r.db.WithContext(ctx).Model(&entity.DbTestimonial{})
	if q.ApprovedOnly {
		query = query.Where("approved = ?", true)
	}

	var testimonials []entity.DbTestimonial
	if err := query.Order("created_at DESC").Offset(q.Skip).Limit(q.Limit).Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

// UpdateTestimonial updates an existing testimonial.
func (r *GormRepository) UpdateTestimonial(ctx context.Context, id uint, updates entity.TestimonialUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid testimonial id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbTestimonial{}).Where("id = ?", id).Updates(values).Error
}

// DeleteTestimonial removes a testimonial by ID.
func (r *GormRepository) DeleteTestimonial(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid testimonial id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbTestimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
