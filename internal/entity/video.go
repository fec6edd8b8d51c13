package entity

import "time"

// DbVideo represents a video entry shown on the public site.
type DbVideo struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	VideoURL    string    `gorm:"column:video_url;type:varchar(500);not null" json:"video_url"`
	Thumbnail   string    `gorm:"column:thumbnail;type:varchar(500)" json:"thumbnail"`
	Duration    string    `gorm:"column:duration;type:varchar(50)" json:"duration"`
	Views       int       `gorm:"column:views;not null;default:0" json:"views"`
	Active      bool      `gorm:"column:active;not null;default:true" json:"active"`
	SortOrder   int       `gorm:"column:sort_order;not null;default:0" json:"order"`
}

// TableName overrides default pluralised name.
func (DbVideo) TableName() string {
	return "videos"
}

// VideoRequest carries the full mutable schema, used for create and full replace.
type VideoRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url" binding:"required,max=500"`
	Thumbnail   string `json:"thumbnail" binding:"omitempty,max=500"`
	Duration    string `json:"duration" binding:"omitempty,max=50"`
	Active      *bool  `json:"active"`
	SortOrder   int    `json:"order"`
}

// Entity builds a new record from the request.
func (r VideoRequest) Entity() DbVideo {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return DbVideo{
		Title:       r.Title,
		Description: r.Description,
		VideoURL:    r.VideoURL,
		Thumbnail:   r.Thumbnail,
		Duration:    r.Duration,
		Active:      active,
		SortOrder:   r.SortOrder,
	}
}

// Updates maps the request to a full-replace update set.
func (r VideoRequest) Updates() VideoUpdates {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return VideoUpdates{
		Title:       &r.Title,
		Description: &r.Description,
		VideoURL:    &r.VideoURL,
		Thumbnail:   &r.Thumbnail,
		Duration:    &r.Duration,
		Active:      &active,
		SortOrder:   &r.SortOrder,
	}
}

// VideoPatchRequest carries a sparse field set; nil means "not sent".
type VideoPatchRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	VideoURL    *string `json:"video_url,omitempty" binding:"omitempty,max=500"`
	Thumbnail   *string `json:"thumbnail,omitempty" binding:"omitempty,max=500"`
	Duration    *string `json:"duration,omitempty" binding:"omitempty,max=50"`
	Active      *bool   `json:"active,omitempty"`
	SortOrder   *int    `json:"order,omitempty"`
}

// Updates maps only the fields present in the request.
func (r VideoPatchRequest) Updates() VideoUpdates {
	return VideoUpdates{
		Title:       r.Title,
		Description: r.Description,
		VideoURL:    r.VideoURL,
		Thumbnail:   r.Thumbnail,
		Duration:    r.Duration,
		Active:      r.Active,
		SortOrder:   r.SortOrder,
	}
}

// VideoUpdates 视频更新字段
type VideoUpdates struct {
	Title       *string
	Description *string
	VideoURL    *string
	Thumbnail   *string
	Duration    *string
	Active      *bool
	SortOrder   *int
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u VideoUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.VideoURL != nil {
		updates["video_url"] = *u.VideoURL
	}
	if u.Thumbnail != nil {
		updates["thumbnail"] = *u.Thumbnail
	}
	if u.Duration != nil {
		updates["duration"] = *u.Duration
	}
	if u.Active != nil {
		updates["active"] = *u.Active
	}
	if u.SortOrder != nil {
		updates["sort_order"] = *u.SortOrder
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u VideoUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// VideoQuery supports listing videos with pagination. ActiveOnly restricts the
// list to entries visible on the public site.
type VideoQuery struct {
	ListQuery
	ActiveOnly bool `json:"-" form:"-"`
}
