package entity

import "time"

// DbTestimonial represents a client testimonial. Newly submitted entries stay
// hidden until an admin approves them.
type DbTestimonial struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Role      string    `gorm:"column:role;type:varchar(100)" json:"role"`
	Avatar    string    `gorm:"column:avatar;type:varchar(10)" json:"avatar"`
	Text      string    `gorm:"column:text;type:text;not null" json:"text"`
	Rating    int       `gorm:"column:rating;not null;default:5" json:"rating"`
	Date      string    `gorm:"column:date;type:varchar(50)" json:"date"`
	Project   string    `gorm:"column:project;type:varchar(255)" json:"project"`
	Approved  bool      `gorm:"column:approved;not null;default:false" json:"approved"`
}

// TableName overrides default pluralised name.
func (DbTestimonial) TableName() string {
	return "testimonials"
}

// TestimonialRequest carries the full mutable schema, used for create and full replace.
type TestimonialRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Role     string `json:"role" binding:"omitempty,max=100"`
	Avatar   string `json:"avatar" binding:"omitempty,max=10"`
	Text     string `json:"text" binding:"required"`
	Rating   *int   `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Date     string `json:"date" binding:"omitempty,max=50"`
	Project  string `json:"project" binding:"omitempty,max=255"`
	Approved bool   `json:"approved"`
}

// Entity builds a new record from the request.
func (r TestimonialRequest) Entity() DbTestimonial {
	rating := 5
	if r.Rating != nil {
		rating = *r.Rating
	}
	return DbTestimonial{
		Name:     r.Name,
		Role:     r.Role,
		Avatar:   r.Avatar,
		Text:     r.Text,
		Rating:   rating,
		Date:     r.Date,
		Project:  r.Project,
		Approved: r.Approved,
	}
}

// Updates maps the request to a full-replace update set.
func (r TestimonialRequest) Updates() TestimonialUpdates {
	rating := 5
	if r.Rating != nil {
		rating = *r.Rating
	}
	return TestimonialUpdates{
		Name:     &r.Name,
		Role:     &r.Role,
		Avatar:   &r.Avatar,
		Text:     &r.Text,
		Rating:   &rating,
		Date:     &r.Date,
		Project:  &r.Project,
		Approved: &r.Approved,
	}
}

// TestimonialPatchRequest carries a sparse field set; nil means "not sent".
type TestimonialPatchRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Role     *string `json:"role,omitempty" binding:"omitempty,max=100"`
	Avatar   *string `json:"avatar,omitempty" binding:"omitempty,max=10"`
	Text     *string `json:"text,omitempty"`
	Rating   *int    `json:"rating,omitempty" binding:"omitempty,gte=1,lte=5"`
	Date     *string `json:"date,omitempty" binding:"omitempty,max=50"`
	Project  *string `json:"project,omitempty" binding:"omitempty,max=255"`
	Approved *bool   `json:"approved,omitempty"`
}

// Updates maps only the fields present in the request.
func (r TestimonialPatchRequest) Updates() TestimonialUpdates {
	return TestimonialUpdates{
		Name:     r.Name,
		Role:     r.Role,
		Avatar:   r.Avatar,
		Text:     r.Text,
		Rating:   r.Rating,
		Date:     r.Date,
		Project:  r.Project,
		Approved: r.Approved,
	}
}

// TestimonialUpdates 评价更新字段
type TestimonialUpdates struct {
	Name     *string
	Role     *string
	Avatar   *string
	Text     *string
	Rating   *int
	Date     *string
	Project  *string
	Approved *bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u TestimonialUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.Role != nil {
		updates["role"] = *u.Role
	}
	if u.Avatar != nil {
		updates["avatar"] = *u.Avatar
	}
	if u.Text != nil {
		updates["text"] = *u.Text
	}
	if u.Rating != nil {
		updates["rating"] = *u.Rating
	}
	if u.Date != nil {
		updates["date"] = *u.Date
	}
	if u.Project != nil {
		updates["project"] = *u.Project
	}
	if u.Approved != nil {
		updates["approved"] = *u.Approved
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u TestimonialUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// TestimonialQuery supports listing testimonials with pagination. ApprovedOnly
// restricts the list to entries visible on the public site.
type TestimonialQuery struct {
	ListQuery
	ApprovedOnly bool `json:"-" form:"-"`
}
