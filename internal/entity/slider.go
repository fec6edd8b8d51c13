package entity

import "time"

// DbSlider represents a named, reusable set of images that content entries
// reference by id.
type DbSlider struct {
	ID          uint        `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Name        string      `gorm:"column:name;type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string      `gorm:"column:description;type:text" json:"description"`
	Images      StringArray `gorm:"column:images;type:text" json:"images"`
}

// TableName overrides default pluralised name.
func (DbSlider) TableName() string {
	return "sliders"
}

// SliderRequest carries the full mutable schema, used for create and full replace.
type SliderRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Entity builds a new record from the request.
func (r SliderRequest) Entity() DbSlider {
	return DbSlider{
		Name:        r.Name,
		Description: r.Description,
		Images:      StringArray(r.Images),
	}
}

// Updates maps the request to a full-replace update set.
func (r SliderRequest) Updates() SliderUpdates {
	images := StringArray(r.Images)
	return SliderUpdates{
		Name:        &r.Name,
		Description: &r.Description,
		Images:      &images,
	}
}

// SliderPatchRequest carries a sparse field set; nil means "not sent".
type SliderPatchRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string  `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
}

// Updates maps only the fields present in the request.
func (r SliderPatchRequest) Updates() SliderUpdates {
	updates := SliderUpdates{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.Images != nil {
		images := StringArray(r.Images)
		updates.Images = &images
	}
	return updates
}

// SliderUpdates 轮播图更新字段
type SliderUpdates struct {
	Name        *string
	Description *string
	Images      *StringArray
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u SliderUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Description != nil {
		updates["description"] = *u.Description
	}
	if u.Images != nil {
		updates["images"] = *u.Images
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u SliderUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}
