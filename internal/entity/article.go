package entity

import "time"

// DbArticle represents a published article. A slider id of zero means the
// article has no attached image slider.
type DbArticle struct {
	ID           uint        `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
	Title        string      `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Excerpt      string      `gorm:"column:excerpt;type:text;not null" json:"excerpt"`
	FullContent  string      `gorm:"column:full_content;type:text" json:"full_content"`
	Category     string      `gorm:"column:category;type:varchar(100);index;not null" json:"category"`
	Icon         string      `gorm:"column:icon;type:varchar(10)" json:"icon"`
	Gradient     string      `gorm:"column:gradient;type:varchar(255)" json:"gradient"`
	Image        string      `gorm:"column:image;type:varchar(500)" json:"image"`
	SliderID     uint        `gorm:"column:slider_id" json:"slider_id"`
	Author       string      `gorm:"column:author;type:varchar(100);not null" json:"author"`
	AuthorAvatar string      `gorm:"column:author_avatar;type:varchar(10)" json:"author_avatar"`
	AuthorRole   string      `gorm:"column:author_role;type:varchar(100)" json:"author_role"`
	Views        int         `gorm:"column:views;not null;default:0" json:"views"`
	ReadTime     string      `gorm:"column:read_time;type:varchar(50)" json:"read_time"`
	Featured     bool        `gorm:"column:featured;not null;default:false" json:"featured"`
	Tags         StringArray `gorm:"column:tags;type:text" json:"tags"`
	IframeURL    string      `gorm:"column:iframe_url;type:varchar(500)" json:"iframe_url"`
	ModelURL     string      `gorm:"column:model_url;type:varchar(500)" json:"model_url"`
	ModelType    string      `gorm:"column:model_type;type:varchar(20);default:auto" json:"model_type"`
}

// TableName overrides default pluralised name.
func (DbArticle) TableName() string {
	return "articles"
}

// ArticleRequest carries the full mutable schema, used for create and full replace.
type ArticleRequest struct {
	Title        string   `json:"title" binding:"required,max=255"`
	Excerpt      string   `json:"excerpt" binding:"required"`
	FullContent  string   `json:"full_content"`
	Category     string   `json:"category" binding:"required,max=100"`
	Icon         string   `json:"icon" binding:"omitempty,max=10"`
	Gradient     string   `json:"gradient" binding:"omitempty,max=255"`
	Image        string   `json:"image" binding:"omitempty,max=500"`
	SliderID     uint     `json:"slider_id"`
	Author       string   `json:"author" binding:"required,max=100"`
	AuthorAvatar string   `json:"author_avatar" binding:"omitempty,max=10"`
	AuthorRole   string   `json:"author_role" binding:"omitempty,max=100"`
	ReadTime     string   `json:"read_time" binding:"omitempty,max=50"`
	Featured     bool     `json:"featured"`
	Tags         []string `json:"tags"`
	IframeURL    string   `json:"iframe_url" binding:"omitempty,max=500"`
	ModelURL     string   `json:"model_url" binding:"omitempty,max=500"`
	ModelType    string   `json:"model_type" binding:"omitempty,oneof=gltf glb obj auto"`
}

// Entity builds a new record from the request.
func (r ArticleRequest) Entity() DbArticle {
	icon := r.Icon
	if icon == "" {
		icon = "📝"
	}
	modelType := r.ModelType
	if modelType == "" {
		modelType = "auto"
	}
	return DbArticle{
		Title:        r.Title,
		Excerpt:      r.Excerpt,
		FullContent:  r.FullContent,
		Category:     r.Category,
		Icon:         icon,
		Gradient:     r.Gradient,
		Image:        r.Image,
		SliderID:     r.SliderID,
		Author:       r.Author,
		AuthorAvatar: r.AuthorAvatar,
		AuthorRole:   r.AuthorRole,
		ReadTime:     r.ReadTime,
		Featured:     r.Featured,
		Tags:         StringArray(r.Tags),
		IframeURL:    r.IframeURL,
		ModelURL:     r.ModelURL,
		ModelType:    modelType,
	}
}

// Updates maps the request to a full-replace update set: every mutable field is
// written, including zero values.
func (r ArticleRequest) Updates() ArticleUpdates {
	tags := StringArray(r.Tags)
	return ArticleUpdates{
		Title:        &r.Title,
		Excerpt:      &r.Excerpt,
		FullContent:  &r.FullContent,
		Category:     &r.Category,
		Icon:         &r.Icon,
		Gradient:     &r.Gradient,
		Image:        &r.Image,
		SliderID:     &r.SliderID,
		Author:       &r.Author,
		AuthorAvatar: &r.AuthorAvatar,
		AuthorRole:   &r.AuthorRole,
		ReadTime:     &r.ReadTime,
		Featured:     &r.Featured,
		Tags:         &tags,
		IframeURL:    &r.IframeURL,
		ModelURL:     &r.ModelURL,
		ModelType:    &r.ModelType,
	}
}

// ArticlePatchRequest carries a sparse field set; nil means "not sent".
type ArticlePatchRequest struct {
	Title        *string  `json:"title,omitempty" binding:"omitempty,max=255"`
	Excerpt      *string  `json:"excerpt,omitempty"`
	FullContent  *string  `json:"full_content,omitempty"`
	Category     *string  `json:"category,omitempty" binding:"omitempty,max=100"`
	Icon         *string  `json:"icon,omitempty" binding:"omitempty,max=10"`
	Gradient     *string  `json:"gradient,omitempty" binding:"omitempty,max=255"`
	Image        *string  `json:"image,omitempty" binding:"omitempty,max=500"`
	SliderID     *uint    `json:"slider_id,omitempty"`
	Author       *string  `json:"author,omitempty" binding:"omitempty,max=100"`
	AuthorAvatar *string  `json:"author_avatar,omitempty" binding:"omitempty,max=10"`
	AuthorRole   *string  `json:"author_role,omitempty" binding:"omitempty,max=100"`
	ReadTime     *string  `json:"read_time,omitempty" binding:"omitempty,max=50"`
	Featured     *bool    `json:"featured,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	IframeURL    *string  `json:"iframe_url,omitempty" binding:"omitempty,max=500"`
	ModelURL     *string  `json:"model_url,omitempty" binding:"omitempty,max=500"`
	ModelType    *string  `json:"model_type,omitempty" binding:"omitempty,oneof=gltf glb obj auto"`
}

// Updates maps only the fields present in the request.
func (r ArticlePatchRequest) Updates() ArticleUpdates {
	updates := ArticleUpdates{
		Title:        r.Title,
		Excerpt:      r.Excerpt,
		FullContent:  r.FullContent,
		Category:     r.Category,
		Icon:         r.Icon,
		Gradient:     r.Gradient,
		Image:        r.Image,
		SliderID:     r.SliderID,
		Author:       r.Author,
		AuthorAvatar: r.AuthorAvatar,
		AuthorRole:   r.AuthorRole,
		ReadTime:     r.ReadTime,
		Featured:     r.Featured,
		IframeURL:    r.IframeURL,
		ModelURL:     r.ModelURL,
		ModelType:    r.ModelType,
	}
	if r.Tags != nil {
		tags := StringArray(r.Tags)
		updates.Tags = &tags
	}
	return updates
}

// ArticleUpdates 文章更新字段
type ArticleUpdates struct {
	Title        *string
	Excerpt      *string
	FullContent  *string
	Category     *string
	Icon         *string
	Gradient     *string
	Image        *string
	SliderID     *uint
	Author       *string
	AuthorAvatar *string
	AuthorRole   *string
	ReadTime     *string
	Featured     *bool
	Tags         *StringArray
	IframeURL    *string
	ModelURL     *string
	ModelType    *string
}

// ToMap 转换为 GORM 更新 map（内部使用）
func (u ArticleUpdates) ToMap() map[string]interface{} {
	updates := make(map[string]interface{})
	if u.Title != nil {
		updates["title"] = *u.Title
	}
	if u.Excerpt != nil {
		updates["excerpt"] = *u.Excerpt
	}
	if u.FullContent != nil {
		updates["full_content"] = *u.FullContent
	}
	if u.Category != nil {
		updates["category"] = *u.Category
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
	if u.Author != nil {
		updates["author"] = *u.Author
	}
	if u.AuthorAvatar != nil {
		updates["author_avatar"] = *u.AuthorAvatar
	}
	if u.AuthorRole != nil {
		updates["author_role"] = *u.AuthorRole
	}
	if u.ReadTime != nil {
		updates["read_time"] = *u.ReadTime
	}
	if u.Featured != nil {
		updates["featured"] = *u.Featured
	}
	if u.Tags != nil {
		updates["tags"] = *u.Tags
	}
	if u.IframeURL != nil {
		updates["iframe_url"] = *u.IframeURL
	}
	if u.ModelURL != nil {
		updates["model_url"] = *u.ModelURL
	}
	if u.ModelType != nil {
		updates["model_type"] = *u.ModelType
	}
	return updates
}

// IsEmpty 检查是否没有任何更新字段
func (u ArticleUpdates) IsEmpty() bool {
	return len(u.ToMap()) == 0
}

// ArticleQuery supports listing articles with filters and pagination.
type ArticleQuery struct {
	ListQuery
	Category string `json:"category" form:"category"`
	Search   string `json:"search" form:"search"`
	Sort     string `json:"sort" form:"sort" binding:"omitempty,oneof=latest popular trending"`
}
