package entity

import "time"

// DbGalleryItem represents a portfolio project shown in the gallery.
type DbGalleryItem struct {
	ID              uint        `gorm:"primarykey" json:"id"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Title           string      `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description     string      `gorm:"column:description;type:text;not null" json:"description"`
	FullDescription string      `gorm:"column:full_description;type:text" json:"full_description"`
	Icon            string      `gorm:"column:icon;type:varchar(10)" json:"icon"`
	Gradient        string      `gorm:"column:gradient;type:varchar(255)" json:"gradient"`
	Image           string      `gorm:"column:image;type:varchar(500)" json:"image"`
	SliderID        uint        `gorm:"column:slider_id" json:"slider_id"`
	Category        string      `gorm:"column:category;type:varchar(100);index" json:"category"`
	CategoryColor   string      `gorm:"column:category_color;type:varchar(50)" json:"category_color"`
	Date            string      `gorm:"column:date;type:varchar(50)" json:"date"`
	Duration        string      `gorm:"column:duration;type:varchar(50)" json:"duration"`
	Views           int         `gorm:"column:views;not null;default:0" json:"views"`
	Comments        int         `gorm:"column:comments;not null;default:0" json:"comments"`
	Technologies    StringArray `gorm:"column:technologies;type:text" json:"technologies"`
	ModelURL        string      `gorm:"column:model_url;type:varchar(500)" json:"model_url"`
	ModelType       string      `gorm:"column:model_type;type:varchar(20);default:auto" json:"model_type"`
	IframeURL       string      `gorm:"column:iframe_url;type:varchar(500)" json:"iframe_url"`
}

// TableName overrides default pluralised name.
func (DbGalleryItem) TableName() string {
	return "gallery_items"
}

// GalleryItemRequest carries the full mutable schema, used for create and full replace.
type GalleryItemRequest struct {
	Title           string   `json:"title" binding:"required,max=255"`
	Description     string   `json:"description" binding:"required"`
	FullDescription string   `json:"full_description"`
	Icon            string   `json:"icon" binding:"omitempty,max=10"`
	Gradient        string   `json:"gradient" binding:"omitempty,max=255"`
	Image           string   `json:"image" binding:"omitempty,max=500"`
	SliderID        uint     `json:"slider_id"`
	Category        string   `json:"category" binding:"omitempty,max=100"`
	CategoryColor   string   `json:"category_color" binding:"omitempty,max=50"`
	Date            string   `json:"date" binding:"omitempty,max=50"`
	Duration        string   `json:"duration" binding:"omitempty,max=50"`
	Technologies    []string `json:"technologies"`
	ModelURL        string   `json:"model_url" binding:"omitempty,max=500"`
	ModelType       string   `json:"model_type" binding:"omitempty,oneof=gltf glb obj auto"`
	IframeURL       string   `json:"iframe_url" binding:"omitempty,max=500"`
}

// Entity builds a new record from the request.
func (r GalleryItemRequest) Entity() DbGalleryItem {
	icon := r.Icon
	if icon == "" {
		icon = "🎨"
	}
	modelType := r.ModelType
	if modelType == "" {
		modelType = "auto"
	}
	return DbGalleryItem{
		Title:           r.Title,
		Description:     r.Description,
		FullDescription: r.FullDescription,
		Icon:            icon,
		Gradient:        r.Gradient,
		Image:           r.Image,
		SliderID:        r.SliderID,
		Category:        r.Category,
		CategoryColor:   r.CategoryColor,
		Date:            r.Date,
		Duration:        r.Duration,
		Technologies:    StringArray(r.Technologies),
		ModelURL:        r.ModelURL,
		ModelType:       modelType,
		IframeURL:       r.IframeURL,
	}
}

// Updates maps the request to a full-replace update set.
func (r GalleryItemRequest) Updates() GalleryItemUpdates {
	technologies := StringArray(r.Technologies)
	return GalleryItemUpdates{
		Title:           &r.Title,
		Description:     &r.Description,
		FullDescription: &r.FullDescription,
		Icon:            &r.Icon,
		Gradient:        &r.Gradient,
		Image:           &r.Image,
		SliderID:        &r.SliderID,
		Category:        &r.Category,
		CategoryColor:   &r.CategoryColor,
		Date:            &r.Date,
		Duration:        &r.Duration,
		Technologies:    &technologies,
		ModelURL:        &r.ModelURL,
		ModelType:       &r.ModelType,
		IframeURL:       &r.IframeURL,
	}
}

// GalleryItemPatchRequest carries a sparse field set; nil means "not sent".
type GalleryItemPatchRequest struct {
	Title           *string  `json:"title,omitempty" binding:"omitempty,max=255"`
	Description     *string  `json:"description,omitempty"`
	FullDescription *string  `json:"full_description,omitempty"`
	Icon            *string  `json:"icon,omitempty" binding:"omitempty,max=10"`
	Gradient        *string  `json:"gradient,omitempty" binding:"omitempty,max=255"`
	Image           *string  `json:"image,omitempty" binding:"omitempty,max=500"`
	SliderID        *uint    `json:"slider_id,omitempty"`
	Category        *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	CategoryColor   *string  `json:"category_color,omitempty" binding:"omitempty,max=50"`
	Date            *string  `json:"date,omitempty" binding:"omitempty,max=50"`
	Duration        *string  `json:"duration,omitempty" binding:"omitempty,max=50"`
	Technologies    []string `json:"technologies,omitempty"`
	ModelURL        *string  `json:"model_url,omitempty" binding:"omitempty,max=500"`
	ModelType       *string  `json:"model_type,omitempty" binding:"omitempty,oneof=gltf glb obj auto"`
	IframeURL       *string  `json:"iframe_url,omitempty" binding:"omitempty,max=500"`
}

// Updates maps only the fields present in the request.
func (r GalleryItemPatchRequest) Updates() GalleryItemUpdates {
	updates := GalleryItemUpdates{
		Title:           r.Title,
		Description:     r.Description,
		FullDescription: r.FullDescription,
		Icon:            r.Icon,
		Gradient:        r.Gradient,
		Image:           r.Image,
		SliderID:        r.SliderID,
		Category:        r.Category,
		CategoryColor:   r.CategoryColor,
		Date:            r.Date,
		Duration:        r.Duration,
		ModelURL:        r.ModelURL,
		ModelType:       r.ModelType,
		IframeURL:       r.IframeURL,
	}
	if r.Technologies != nil {
		technologies := StringArray(r.Technologies)
		updates.Technologies = &technologies
	}
	return updates
}

// GalleryItemUpdates 作品更新字段
type GalleryItemUpdates struct {
	Title           *string
	Description     *string
	FullDescription *string
	Icon            *string
	Gradient        *string
	Image           *string
	SliderID        *uint
	Category        *string
	CategoryColor   *string
	Date            *string
	Duration        *string
	Technologies    *StringArray
	ModelURL        *string
	ModelType       *string
	IframeURL       *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u GalleryItemUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.FullDescription != nil {
		updates["full_description"] = *u.FullDescription
	}
	if u.Icon != nil {
		updates["icon"] = *u.Icon
	}
	if u.Gradient != nil {
		updates["gradient"] = *u.Gradient
	}
	if u.Image != nil {
		updates["image"] = *u.Image
	}
	if u.SliderID != nil {
		updates["slider_id"] = *u.SliderID
	}
	if u.Category != nil {
		updates["category"] = *u.Category
	}
	if u.CategoryColor != nil {
		updates["category_color"] = *u.CategoryColor
	}
	if u.Date != nil {
		updates["date"] = *u.Date
	}
	if u.Duration != nil {
		updates["duration"] = *u.Duration
	}
	if u.Technologies != nil {
		updates["technologies"] = *u.Technologies
	}
	if u.ModelURL != nil {
		updates["model_url"] = *u.ModelURL
	}
	if u.ModelType != nil {
		updates["model_type"] = *u.ModelType
	}
	if u.IframeURL != nil {
		updates["iframe_url"] = *u.IframeURL
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u GalleryItemUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// GalleryQuery supports listing gallery items with filters and pagination.
type GalleryQuery struct {
	ListQuery
	Category string `json:"category" form:"category"`
	Search   string `json:"search" form:"search"`
}
