package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"
	"strings"

	"gorm.io/gorm"
)

// CreateSubscriber persists a new newsletter subscription.
func (r *GormRepository) CreateSubscriber(ctx context.Context, subscriber *entity.DbSubscriber) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if subscriber == nil {
		return fmt.Errorf("subscriber is nil")
	}
	subscriber.Email = strings.ToLower(strings.TrimSpace(subscriber.Email))
	return r.db.WithContext(ctx).Create(subscriber).Error
}

// GetSubscriberByEmail loads a subscription by email.
func (r *GormRepository) GetSubscriberByEmail(ctx context.Context, email string) (*entity.DbSubscriber, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, fmt.Errorf("email is empty")
	}

	var subscriber entity.DbSubscriber
	if err := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(trimmed)).First(&subscriber).Error; err != nil {
		return nil, err
	}
	return &subscriber, nil
}

// ListSubscribers returns subscriptions, newest first.
func (r *GormRepository) ListSubscribers(ctx context.Context, params *entity.ListQuery) ([]entity.DbSubscriber, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.ListQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	var subscribers []entity.DbSubscriber
	if err := r.db.WithContext(ctx).Model(&entity.DbSubscriber{}).
		Order("created_at DESC").Offset(q.Skip).Limit(q.Limit).Find(&subscribers).Error; err != nil {
		return nil, err
	}
	return subscribers, nil
}

// UpdateSubscriber updates an existing subscription.
func (r *GormRepository) UpdateSubscriber(ctx context.Context, id uint, updates entity.SubscriberUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid subscriber id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbSubscriber{}).Where("id = ?", id).Updates(values).Error
}

// DeleteSubscriber removes a subscription by ID.
func (r *GormRepository) DeleteSubscriber(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid subscriber id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbSubscriber{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
