package entity

import "time"

// DbCertificate represents a certification or award entry.
type DbCertificate struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Issuer      string    `gorm:"column:issuer;type:varchar(255);not null" json:"issuer"`
	Date        string    `gorm:"column:date;type:varchar(50)" json:"date"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Icon        string    `gorm:"column:icon;type:varchar(10)" json:"icon"`
	Color       string    `gorm:"column:color;type:varchar(50)" json:"color"`
	Gradient    string    `gorm:"column:gradient;type:varchar(255)" json:"gradient"`
	Image       string    `gorm:"column:image;type:varchar(500)" json:"image"`
	SliderID    uint      `gorm:"column:slider_id" json:"slider_id"`
	Type        string    `gorm:"column:type;type:varchar(50);index" json:"type"`
	TypeLabel   string    `gorm:"column:type_label;type:varchar(100)" json:"type_label"`
}

// TableName overrides default pluralised name.
func (DbCertificate) TableName() string {
	return "certificates"
}

// CertificateRequest carries the full mutable schema, used for create and full replace.
type CertificateRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Issuer      string `json:"issuer" binding:"required,max=255"`
	Date        string `json:"date" binding:"omitempty,max=50"`
	Description string `json:"description"`
	Icon        string `json:"icon" binding:"omitempty,max=10"`
	Color       string `json:"color" binding:"omitempty,max=50"`
	Gradient    string `json:"gradient" binding:"omitempty,max=255"`
	Image       string `json:"image" binding:"omitempty,max=500"`
	SliderID    uint   `json:"slider_id"`
	Type        string `json:"type" binding:"omitempty,max=50"`
	TypeLabel   string `json:"type_label" binding:"omitempty,max=100"`
}

// Entity builds a new record from the request.
func (r CertificateRequest) Entity() DbCertificate {
	icon := r.Icon
	if icon == "" {
		icon = "📜"
	}
	return DbCertificate{
		Title:       r.Title,
		Issuer:      r.Issuer,
		Date:        r.Date,
		Description: r.Description,
		Icon:        icon,
		Color:       r.Color,
		Gradient:    r.Gradient,
		Image:       r.Image,
		SliderID:    r.SliderID,
		Type:        r.Type,
		TypeLabel:   r.TypeLabel,
	}
}

// Updates maps the request to a full-replace update set.
func (r CertificateRequest) Updates() CertificateUpdates {
	return CertificateUpdates{
		Title:       &r.Title,
		Issuer:      &r.Issuer,
		Date:        &r.Date,
		Description: &r.Description,
		Icon:        &r.Icon,
		Color:       &r.Color,
		Gradient:    &r.Gradient,
		Image:       &r.Image,
		SliderID:    &r.SliderID,
		Type:        &r.Type,
		TypeLabel:   &r.TypeLabel,
	}
}

// CertificatePatchRequest carries a sparse field set; nil means "not sent".
type CertificatePatchRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Issuer      *string `json:"issuer,omitempty" binding:"omitempty,max=255"`
	Date        *string `json:"date,omitempty" binding:"omitempty,max=50"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty" binding:"omitempty,max=10"`
	Color       *string `json:"color,omitempty" binding:"omitempty,max=50"`
	Gradient    *string `json:"gradient,omitempty" binding:"omitempty,max=255"`
	Image       *string `json:"image,omitempty" binding:"omitempty,max=500"`
	SliderID    *uint   `json:"slider_id,omitempty"`
	Type        *string `json:"type,omitempty" binding:"omitempty,max=50"`
	TypeLabel   *string `json:"type_label,omitempty" binding:"omitempty,max=100"`
}

// Updates maps only the fields present in the request.
func (r CertificatePatchRequest) Updates() CertificateUpdates {
	return CertificateUpdates{
		Title:       r.Title,
		Issuer:      r.Issuer,
		Date:        r.Date,
		Description: r.Description,
		Icon:        r.Icon,
		Color:       r.Color,
		Gradient:    r.Gradient,
		Image:       r.Image,
		SliderID:    r.SliderID,
		Type:        r.Type,
		TypeLabel:   r.TypeLabel,
	}
}

// CertificateUpdates 证书更新字段
type CertificateUpdates struct {
	Title       *string
	Issuer      *string
	Date        *string
	Description *string
	Icon        *string
	Color       *string
	Gradient    *string
	Image       *string
	SliderID    *uint
	Type        *string
	TypeLabel   *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u CertificateUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Issuer != nil {
		updates["issuer"] = *u.Issuer
	}
	if u.Date != nil {
		updates["date"] = *u.Date
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
	if u.Type != nil {
		updates["type"] = *u.Type
	}
	if u.TypeLabel != nil {
		updates["type_label"] = *u.TypeLabel
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u CertificateUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// CertificateQuery supports listing certificates with filters and pagination.
type CertificateQuery struct {
	ListQuery
	Type string `json:"type" form:"type"`
}
