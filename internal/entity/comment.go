package entity

import "time"

// Comment content types.
const (
	ContentTypeArticle = "article"
	ContentTypeProject = "project"
)

// DbComment represents a visitor comment attached to an article or a gallery
// project. Comments stay hidden until an admin approves them.
type DbComment struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	Content     string    `gorm:"column:content;type:text;not null" json:"content"`
	Rating      int       `gorm:"column:rating;not null" json:"rating"`
	Approved    bool      `gorm:"column:approved;not null;default:false" json:"approved"`
	ContentType string    `gorm:"column:content_type;type:varchar(20);index:idx_comments_target;not null" json:"content_type"`
	ContentID   uint      `gorm:"column:content_id;index:idx_comments_target;not null" json:"content_id"`
}

// TableName overrides default pluralised name.
func (DbComment) TableName() string {
	return "comments"
}

// CommentRequest binds a visitor comment submission. Rating is a pointer so a
// literal 0 fails range validation instead of looking like a missing field.
type CommentRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Content     string `json:"content" binding:"required"`
	Rating      *int   `json:"rating" binding:"required,gte=1,lte=5"`
	ContentType string `json:"content_type" binding:"required,oneof=article project"`
	ContentID   uint   `json:"content_id" binding:"required"`
}

// Entity builds a new record from the request.
func (r CommentRequest) Entity() DbComment {
	rating := 0
	if r.Rating != nil {
		rating = *r.Rating
	}
	return DbComment{
		Name:        r.Name,
		Email:       r.Email,
		Content:     r.Content,
		Rating:      rating,
		ContentType: r.ContentType,
		ContentID:   r.ContentID,
	}
}

// CommentPatchRequest carries the admin-mutable fields; nil means "not sent".
type CommentPatchRequest struct {
	Content  *string `json:"content,omitempty"`
	Rating   *int    `json:"rating,omitempty" binding:"omitempty,gte=1,lte=5"`
	Approved *bool   `json:"approved,omitempty"`
}

// Updates maps only the fields present in the request.
func (r CommentPatchRequest) Updates() CommentUpdates {
	return CommentUpdates{
		Content:  r.Content,
		Rating:   r.Rating,
		Approved: r.Approved,
	}
}

// CommentUpdates 评论更新字段
type CommentUpdates struct {
	Content  *string
	Rating   *int
	Approved *bool
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u CommentUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Content != nil {
		updates["content"] = *u.Content
	}
	if u.Rating != nil {
		updates["rating"] = *u.Rating
	}
	if u.Approved != nil {
		updates["approved"] = *u.Approved
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u CommentUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// CommentQuery supports listing comments with filters and pagination.
type CommentQuery struct {
	ListQuery
	ContentType  string `json:"content_type" form:"content_type" binding:"omitempty,oneof=article project"`
	ContentID    uint   `json:"content_id" form:"content_id"`
	ApprovedOnly bool   `json:"-" form:"-"`
}

// CommentStats summarises comment moderation state for the admin dashboard.
type CommentStats struct {
	Total    int64 `json:"total"`
	Approved int64 `json:"approved"`
	Pending  int64 `json:"pending"`
}
