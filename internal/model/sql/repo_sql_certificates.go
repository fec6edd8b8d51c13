package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"
	"strings"

	"gorm.io/gorm"
)

// CreateCertificate persists a new certificate.
func (r *GormRepository) CreateCertificate(ctx context.Context, certificate *entity.DbCertificate) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if certificate == nil {
		return fmt.Errorf("certificate is nil")
	}
	return r.db.WithContext(ctx).Create(certificate).Error
}

// GetCertificate loads a certificate by ID.
func (r *GormRepository) GetCertificate(ctx context.Context, id uint) (*entity.DbCertificate, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid certificate id")
	}
	var certificate entity.DbCertificate
	if err := r.db.WithContext(ctx).First(&certificate, id).Error; err != nil {
		return nil, err
	}
	return &certificate, nil
}

// ListCertificates returns certificates matching the filters.
func (r *GormRepository) ListCertificates(ctx context.Context, params *entity.CertificateQuery) ([]entity.DbCertificate, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := entity.CertificateQuery{}
	if params != nil {
		q = *params
	}
	q.Normalize()

	query := r.db.WithContext(ctx).Model(&entity.DbCertificate{})
	if certType := strings.TrimSpace(q.Type); certType != "" {
		query = query.Where("type = ?", certType)
	}

	var certificates []entity.DbCertificate
	if err := query.Order("created_at DESC").Offset(q.Skip).Limit(q.Limit).Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}

// UpdateCertificate updates an existing certificate.
func (r *GormRepository) UpdateCertificate(ctx context.Context, id uint, updates entity.CertificateUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid certificate id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbCertificate{}).Where("id = ?", id).Updates(values).Error
}

// DeleteCertificate removes a certificate by ID.
func (r *GormRepository) DeleteCertificate(ctx context.Context, id uint) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid certificate id")
	}
	result := r.db.WithContext(ctx).Delete(&entity.DbCertificate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
