package entity

import "time"

// DbService represents a service offering shown on the public site.
type DbService struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Title       string      `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string      `gorm:"column:description;type:text;not null" json:"description"`
	Icon        string      `gorm:"column:icon;type:varchar(10)" json:"icon"`
	Color       string      `gorm:"column:color;type:varchar(50)" json:"color"`
	Gradient    string      `gorm:"column:gradient;type:varchar(255)" json:"gradient"`
	Image       string      `gorm:"column:image;type:varchar(500)" json:"image"`
	SliderID    uint        `gorm:"column:slider_id" json:"slider_id"`
	Features    StringArray `gorm:"column:features;type:text" json:"features"`
	Price       string      `gorm:"column:price;type:varchar(100)" json:"price"`
	SortOrder   int         `gorm:"column:sort_order;not null;default:0" json:"order"`
	Active      bool        `gorm:"column:active;not null;default:true" json:"active"`
}

// TableName overrides default pluralised name.
func (DbService) TableName() string {
	return "services"
}

// ServiceRequest carries the full mutable schema, used for create and full replace.
type ServiceRequest struct {
	Title       string   `json:"title" binding:"required,max=255"`
	Description string   `json:"description" binding:"required"`
	Icon        string   `json:"icon" binding:"omitempty,max=10"`
	Color       string   `json:"color" binding:"omitempty,max=50"`
	Gradient    string   `json:"gradient" binding:"omitempty,max=255"`
	Image       string   `json:"image" binding:"omitempty,max=500"`
	SliderID    uint     `json:"slider_id"`
	Features    []string `json:"features"`
	Price       string   `json:"price" binding:"omitempty,max=100"`
	SortOrder   int      `json:"order"`
	Active      *bool    `json:"active"`
}

// Entity builds a new record from the request.
func (r ServiceRequest) Entity() DbService {
	icon := r.Icon
	if icon == "" {
		icon = "🎯"
	}
	color := r.Color
	if color == "" {
		color = "#667eea"
	}
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return DbService{
		Title:       r.Title,
		Description: r.Description,
		Icon:        icon,
		Color:       color,
		Gradient:    r.Gradient,
		Image:       r.Image,
		SliderID:    r.SliderID,
		Features:    StringArray(r.Features),
		Price:       r.Price,
		SortOrder:   r.SortOrder,
		Active:      active,
	}
}

// Updates maps the request to a full-replace update set.
func (r ServiceRequest) Updates() ServiceUpdates {
	features := StringArray(r.Features)
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return ServiceUpdates{
		Title:       &r.Title,
		Description: &r.Description,
		Icon:        &r.Icon,
		Color:       &r.Color,
		Gradient:    &r.Gradient,
		Image:       &r.Image,
		SliderID:    &r.SliderID,
		Features:    &features,
		Price:       &r.Price,
		SortOrder:   &r.SortOrder,
		Active:      &active,
	}
}

// ServicePatchRequest carries a sparse field set; nil means "not sent".
type ServicePatchRequest struct {
	Title       *string  `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string  `json:"description,omitempty"`
	Icon        *string  `json:"icon,omitempty" binding:"omitempty,max=10"`
	Color       *string  `json:"color,omitempty" binding:"omitempty,max=50"`
	Gradient    *string  `json:"gradient,omitempty" binding:"omitempty,max=255"`
	Image       *string  `json:"image,omitempty" binding:"omitempty,max=500"`
	SliderID    *uint    `json:"slider_id,omitempty"`
	Features    []string `json:"features,omitempty"`
	Price       *string  `json:"price,omitempty" binding:"omitempty,max=100"`
	SortOrder   *int     `json:"order,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// Updates maps only the fields present in the request.
func (r ServicePatchRequest) Updates() ServiceUpdates {
	updates := ServiceUpdates{
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		Color:       r.Color,
		Gradient:    r.Gradient,
		Image:       r.Image,
		SliderID:    r.SliderID,
		Price:       r.Price,
		SortOrder:   r.SortOrder,
		Active:      r.Active,
	}
	if r.Features != nil {
		features := StringArray(r.Features)
		updates.Features = &features
	}
	return updates
}

// ServiceUpdates 服务更新字段
type ServiceUpdates struct {
	Title       *string
	Description *string
	Icon        *string
	Color       *string
	Gradient    *string
	Image       *string
	SliderID    *uint
	Features    *StringArray
	Price       *string
	SortOrder   *int
	Active      *bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u ServiceUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.Icon != nil {
		updates["icon"] = *u.Icon
	}
	if u.Color != nil {
		updates["color"] = *u.Color
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
	if u.Features != nil {
		updates["features"] = *u.Features
	}
	if u.Price != nil {
		updates["price"] = *u.Price
	}
	if u.SortOrder != nil {
		updates["sort_order"] = *u.SortOrder
	}
	if u.Active != nil {
		updates["active"] = *u.Active
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u ServiceUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// ServiceQuery supports listing services with pagination. ActiveOnly restricts
// the list to entries visible on the public site.
type ServiceQuery struct {
	ListQuery
	ActiveOnly bool `json:"-" form:"-"`
}
