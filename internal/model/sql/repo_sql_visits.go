package sql

import (
	"context"
	"fmt"
	"portfolio/internal/entity"
	"time"
)

// CreateVisit appends a page view record.
func (r *GormRepository) CreateVisit(ctx context.Context, visit *entity.DbVisit) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if visit == nil {
		return fmt.Errorf("visit is nil")
	}
	return r.db.WithContext(ctx).Create(visit).Error
}

// GetVisitSummary aggregates traffic counts over common windows.
func (r *GormRepository) GetVisitSummary(ctx context.Context) (*entity.VisitSummary, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary := entity.VisitSummary{}
	if err := r.db.WithContext(ctx).Model(&entity.DbVisit{}).Count(&summary.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.DbVisit{}).
		Where("created_at >= ?", today).Count(&summary.Today).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.DbVisit{}).
		Where("created_at >= ?", today.AddDate(0, 0, -6)).Count(&summary.ThisWeek).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.DbVisit{}).
		Where("created_at >= ?", today.AddDate(0, 0, -29)).Count(&summary.ThisMonth).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetVisitReport returns one bucket per day for the trailing window, oldest
// first. Days without traffic appear with a zero count.
func (r *GormRepository) GetVisitReport(ctx context.Context, days int) ([]entity.VisitBucket, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if days <= 0 {
		days = 7
	}
	if days > 90 {
		days = 90
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	start := today.AddDate(0, 0, -(days - 1))

	var visits []entity.DbVisit
	if err := r.db.WithContext(ctx).Model(&entity.DbVisit{}).
		Where("created_at >= ?", start).Find(&visits).Error; err != nil {
		return nil, err
	}

	// 按天聚合（在应用层分桶，避免方言相关的日期函数）
	counts := make(map[string]int64, days)
	for _, visit := range visits {
		counts[visit.CreatedAt.Format("2006-01-02")]++
	}

	buckets := make([]entity.VisitBucket, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		buckets = append(buckets, entity.VisitBucket{Date: date, Count: counts[date]})
	}
	return buckets, nil
}

// GetDashboardStats aggregates content counts for the admin dashboard.
func (r *GormRepository) GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	stats := entity.DashboardStats{}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&entity.DbArticle{}, &stats.Articles},
		{&entity.DbGalleryItem{}, &stats.GalleryItems},
		{&entity.DbTestimonial{}, &stats.Testimonials},
		{&entity.DbCertificate{}, &stats.Certificates},
		{&entity.DbService{}, &stats.Services},
		{&entity.DbSlider{}, &stats.Sliders},
		{&entity.DbVideo{}, &stats.Videos},
		{&entity.DbContact{}, &stats.Contacts},
		{&entity.DbSubscriber{}, &stats.Subscribers},
	}
	for _, c := range counts {
		if err := r.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	users, err := r.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	stats.Users = users

	// read 是 MySQL 保留字，用 map 条件让 GORM 按方言加引号
	if err := r.db.WithContext(ctx).Model(&entity.DbContact{}).
		Where(map[string]interface{}{"read": false}).Count(&stats.UnreadContacts).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.DbTestimonial{}).
		Where("approved = ?", false).Count(&stats.PendingTestimonials).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&entity.DbComment{}).
		Where("approved = ?", false).Count(&stats.PendingComments).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
