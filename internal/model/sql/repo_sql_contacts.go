package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"

	"gorm.io/gorm"
)

// CreateContact persists a new contact message.
func (r *GormRepository) CreateContact(ctx context.Context, contact *entity.DbContact) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if contact == nil {
		return fmt.Errorf("contact is nil")
	}
	return r.db.WithContext(ctx).Create(contact).Error
}

// GetContact loads a contact message by ID.
func (r *GormRepository) GetContact(ctx context.Context, id uint) (*entity.DbContact, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid contact id")
	}
	var contact entity.DbContact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListContacts returns contact messages, newest first.
func (r *GormRepository) ListContacts(ctx context.Context, params *entity.ContactQuery) ([]entity.DbContact, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.ContactQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	query := r.db.WithContext(ctx).Model(&entity.DbContact{})
	if q.UnreadOnly {
		// read 是 MySQL 保留字，用 map 条件让 GORM 按方言加引号
		query = query.Where(map[string]interface{}{"read": false})
	}

	var contacts []entity.DbContact
	if err := query.Order("created_at DESC").Offset(q.Skip).Limit(q.Limit).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// UpdateContact updates an existing contact message.
func (r *GormRepository) UpdateContact(ctx context.Context, id uint, updates entity.ContactUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid contact id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbContact{}).Where("id = ?", id).Updates(values).Error
}

// DeleteContact removes a contact message by ID.
func (r *GormRepository) DeleteContact(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid contact id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbContact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
