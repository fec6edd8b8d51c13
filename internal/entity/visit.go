package entity

import "time"

// DbVisit is an append-only page view record used for traffic reporting.
type DbVisit struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	Path      string    `gorm:"column:path;type:varchar(500);not null" json:"path"`
	IP        string    `gorm:"column:ip;type:varchar(64)" json:"ip"`
	UserAgent string    `gorm:"column:user_agent;type:varchar(500)" json:"user_agent"`
	Referer   string    `gorm:"column:referer;type:varchar(500)" json:"referer"`
}

// TableName overrides default pluralised name.
func (DbVisit) TableName() string {
	return "visits"
}

// VisitRequest binds the public visit beacon payload.
type VisitRequest struct {
	Path    string `json:"path" binding:"required,max=500"`
	Referer string `json:"referer" binding:"omitempty,max=500"`
}

// VisitSummary aggregates traffic counts for the admin dashboard.
type VisitSummary struct {
	Total     int64 `json:"total"`
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"this_week"`
	ThisMonth int64 `json:"this_month"`
}

// VisitBucket is one day of the traffic report.
type VisitBucket struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// DashboardStats aggregates content counts for the admin dashboard.
type DashboardStats struct {
	Users               int64 `json:"users"`
	Articles            int64 `json:"articles"`
	GalleryItems        int64 `json:"gallery_items"`
	Testimonials        int64 `json:"testimonials"`
	PendingTestimonials int64 `json:"pending_testimonials"`
	Certificates        int64 `json:"certificates"`
	Services            int64 `json:"services"`
	Sliders             int64 `json:"sliders"`
	Videos              int64 `json:"videos"`
	Contacts            int64 `json:"contacts"`
	UnreadContacts      int64 `json:"unread_contacts"`
	Subscribers         int64 `json:"subscribers"`
	PendingComments     int64 `json:"pending_comments"`
}
