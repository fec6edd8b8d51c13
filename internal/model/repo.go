package model

import (
	"context"
	"portfolio/internal/entity"
)

// Repository 定义数据库操作接口
type Repository interface {
	// 用户管理
	CreateUser(ctx context.Context, user *entity.DbUser) error
	UpdateUser(ctx context.Context, id uint, updates entity.UserUpdates) error
	GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error)
	GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error)
	ListUsers(ctx context.Context, params *entity.ListQuery) ([]entity.DbUser, error)
	DeleteUser(ctx context.Context, id uint) error
	CountUsers(ctx context.Context) (int64, error)

	// 文章
	CreateArticle(ctx context.Context, article *entity.DbArticle) error
	GetArticle(ctx context.Context, id uint) (*entity.DbArticle, error)
	ListArticles(ctx context.Context, params *entity.ArticleQuery) ([]entity.DbArticle, error)
	UpdateArticle(ctx context.Context, id uint, updates entity.ArticleUpdates) error
	DeleteArticle(ctx context.Context, id uint) error
	IncrementArticleViews(ctx context.Context, id uint) error
	CountArticles(ctx context.Context) (int64, error)

	// 作品集
	CreateGalleryItem(ctx context.Context, item *entity.DbGalleryItem) error
	GetGalleryItem(ctx context.Context, id uint) (*entity.DbGalleryItem, error)
	ListGalleryItems(ctx context.Context, params *entity.GalleryQuery) ([]entity.DbGalleryItem, error)
	UpdateGalleryItem(ctx context.Context, id uint, updates entity.GalleryItemUpdates) error
	DeleteGalleryItem(ctx context.Context, id uint) error
	IncrementGalleryItemViews(ctx context.Context, id uint) error

	// 客户评价
	CreateTestimonial(ctx context.Context, testimonial *entity.DbTestimonial) error
	GetTestimonial(ctx context.Context, id uint) (*entity.DbTestimonial, error)
	ListTestimonials(ctx context.Context, params *entity.TestimonialQuery) ([]entity.DbTestimonial, error)
	UpdateTestimonial(ctx context.Context, id uint, updates entity.TestimonialUpdates) error
	DeleteTestimonial(ctx context.Context, id uint) error

	// 证书
	CreateCertificate(ctx context.Context, certificate *entity.DbCertificate) error
	GetCertificate(ctx context.Context, id uint) (*entity.DbCertificate, error)
	ListCertificates(ctx context.Context, params *entity.CertificateQuery) ([]entity.DbCertificate, error)
	UpdateCertificate(ctx context.Context, id uint, updates entity.CertificateUpdates) error
	DeleteCertificate(ctx context.Context, id uint) error

	// 统计项
	CreateStatistic(ctx context.Context, statistic *entity.DbStatistic) error
	GetStatistic(ctx context.Context, id uint) (*entity.DbStatistic, error)
	ListStatistics(ctx context.Context, params *entity.ListQuery) ([]entity.DbStatistic, error)
	UpdateStatistic(ctx context.Context, id uint, updates entity.StatisticUpdates) error
	DeleteStatistic(ctx context.Context, id uint) error

	// 联系表单
	CreateContact(ctx context.Context, contact *entity.DbContact) error
	GetContact(ctx context.Context, id uint) (*entity.DbContact, error)
	ListContacts(ctx context.Context, params *entity.ContactQuery) ([]entity.DbContact, error)
	UpdateContact(ctx context.Context, id uint, updates entity.ContactUpdates) error
	DeleteContact(ctx context.Context, id uint) error

	// 邮件订阅
	CreateSubscriber(ctx context.Context, subscriber *entity.DbSubscriber) error
	GetSubscriberByEmail(ctx context.Context, email string) (*entity.DbSubscriber, error)
	ListSubscribers(ctx context.Context, params *entity.ListQuery) ([]entity.DbSubscriber, error)
	UpdateSubscriber(ctx context.Context, id uint, updates entity.SubscriberUpdates) error
	DeleteSubscriber(ctx context.Context, id uint) error

	// 服务项目
	CreateService(ctx context.Context, service *entity.DbService) error
	GetService(ctx context.Context, id uint) (*entity.DbService, error)
	ListServices(ctx context.Context, params *entity.ServiceQuery) ([]entity.DbService, error)
	UpdateService(ctx context.Context, id uint, updates entity.ServiceUpdates) error
	DeleteService(ctx context.Context, id uint) error

	// 轮播图
	CreateSlider(ctx context.Context, slider *entity.DbSlider) error
	GetSlider(ctx context.Context, id uint) (*entity.DbSlider, error)
	ListSliders(ctx context.Context, params *entity.ListQuery) ([]entity.DbSlider, error)
	UpdateSlider(ctx context.Context, id uint, updates entity.SliderUpdates) error
	DeleteSlider(ctx context.Context, id uint) error

	// 评论
	CreateComment(ctx context.Context, comment *entity.DbComment) error
	GetComment(ctx context.Context, id uint) (*entity.DbComment, error)
	ListComments(ctx context.Context, params *entity.CommentQuery) ([]entity.DbComment, error)
	UpdateComment(ctx context.Context, id uint, updates entity.CommentUpdates) error
	DeleteComment(ctx context.Context, id uint) error
	GetCommentStats(ctx context.Context) (*entity.CommentStats, error)

	// 视频
	CreateVideo(ctx context.Context, video *entity.DbVideo) error
	GetVideo(ctx context.Context, id uint) (*entity.DbVideo, error)
	ListVideos(ctx context.Context, params *entity.VideoQuery) ([]entity.DbVideo, error)
	UpdateVideo(ctx context.Context, id uint, updates entity.VideoUpdates) error
	DeleteVideo(ctx context.Context, id uint) error

	// 访问记录
	CreateVisit(ctx context.Context, visit *entity.DbVisit) error
	GetVisitSummary(ctx context.Context) (*entity.VisitSummary, error)
	GetVisitReport(ctx context.Context, days int) ([]entity.VisitBucket, error)

	// 仪表盘
	GetDashboardStats(ctx context.Context) (*entity.DashboardStats, error)
}
