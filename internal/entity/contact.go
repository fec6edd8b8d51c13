package entity

import "time"

// DbContact represents a message submitted through the public contact form.
type DbContact struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Subject   string    `gorm:"column:subject;type:varchar(255)" json:"subject"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	Read      bool      `gorm:"column:read;not null;default:false" json:"read"`
}

// TableName overrides default pluralised name.
func (DbContact) TableName() string {
	return "contacts"
}

// ContactRequest binds the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"omitempty,max=255"`
	Message string `json:"message" binding:"required"`
}

// Entity builds a new record from the request.
func (r ContactRequest) Entity() DbContact {
	return DbContact{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// ContactPatchRequest carries the admin-mutable fields; nil means "not sent".
type ContactPatchRequest struct {
	Read *bool `json:"read,omitempty"`
}

// Updates maps only the fields present in the request.
func (r ContactPatchRequest) Updates() ContactUpdates {
	return ContactUpdates{Read: r.Read}
}

// ContactUpdates 留言更新字段
type ContactUpdates struct {
	Read *bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u ContactUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Read != nil {
		updates["read"] = *u.Read
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u ContactUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// ContactQuery supports listing contact messages with pagination.
type ContactQuery struct {
	ListQuery
	UnreadOnly bool `json:"unread_only" form:"unread_only"`
}
