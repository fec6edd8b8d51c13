package api

import (
	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/model"
	"portfolio/internal/storage"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg               config.Config
	repo              model.Repository
	storage           storage.Storage
	storagePublicBase string
	authManager       *auth.Manager
}

// NewHTTPHandler 创建 HTTP 处理器实例
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	return &HTTPHandler{
		cfg:               cfg,
		repo:              repo,
		storage:           store,
		storagePublicBase: normalisePublicBase(cfg.StoragePublicBaseURL),
		authManager:       authManager,
	}, nil
}

// RegisterRoutes 注册全部路由。公开接口在 /api 下，管理接口在
// /api/admin 下并套三层守卫：认证、激活、管理员。
func (h *HTTPHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.POST("/auth/login", h.Login)

		api.GET("/articles", h.ListArticles)
		api.GET("/articles/:id", h.GetArticle)
		api.GET("/gallery", h.ListGalleryItems)
		api.GET("/gallery/:id", h.GetGalleryItem)
		api.GET("/testimonials", h.ListApprovedTestimonials)
		api.POST("/testimonials", h.SubmitTestimonial)
		api.GET("/certificates", h.ListCertificates)
		api.GET("/statistics", h.ListStatistics)
		api.GET("/services", h.ListActiveServices)
		api.GET("/sliders", h.ListSliders)
		api.GET("/sliders/:id", h.GetSlider)
		api.GET("/videos", h.ListActiveVideos)
		api.GET("/comments", h.ListApprovedComments)
		api.POST("/comments", h.SubmitComment)
		api.POST("/contact", h.SubmitContact)
		api.POST("/newsletter/subscribe", h.SubscribeNewsletter)
		api.POST("/visit", h.RecordVisit)
	}

	authenticated := api.Group("")
	authenticated.Use(h.RequireAuthenticated(), h.RequireActive())
	{
		authenticated.GET("/auth/me", h.Me)
	}

	admin := api.Group("/admin")
	admin.Use(h.RequireAuthenticated(), h.RequireActive(), h.RequireAdmin())
	{
		admin.GET("/users", h.AdminListUsers)
		admin.POST("/users", h.AdminCreateUser)
		admin.GET("/users/:id", h.AdminGetUser)
		admin.PATCH("/users/:id", h.AdminPatchUser)
		admin.DELETE("/users/:id", h.AdminDeleteUser)

		admin.GET("/articles", h.AdminListArticles)
		admin.POST("/articles", h.AdminCreateArticle)
		admin.GET("/articles/:id", h.AdminGetArticle)
		admin.PUT("/articles/:id", h.AdminReplaceArticle)
		admin.PATCH("/articles/:id", h.AdminPatchArticle)
		admin.DELETE("/articles/:id", h.AdminDeleteArticle)

		admin.GET("/gallery", h.AdminListGalleryItems)
		admin.POST("/gallery", h.AdminCreateGalleryItem)
		admin.GET("/gallery/:id", h.AdminGetGalleryItem)
		admin.PUT("/gallery/:id", h.AdminReplaceGalleryItem)
		admin.PATCH("/gallery/:id", h.AdminPatchGalleryItem)
		admin.DELETE("/gallery/:id", h.AdminDeleteGalleryItem)

		admin.GET("/testimonials", h.AdminListTestimonials)
		admin.POST("/testimonials", h.AdminCreateTestimonial)
		admin.PUT("/testimonials/:id", h.AdminReplaceTestimonial)
		admin.PATCH("/testimonials/:id", h.AdminPatchTestimonial)
		admin.DELETE("/testimonials/:id", h.AdminDeleteTestimonial)

		admin.GET("/certificates", h.AdminListCertificates)
		admin.POST("/certificates", h.AdminCreateCertificate)
		admin.PUT("/certificates/:id", h.AdminReplaceCertificate)
		admin.PATCH("/certificates/:id", h.AdminPatchCertificate)
		admin.DELETE("/certificates/:id", h.AdminDeleteCertificate)

		admin.GET("/statistics", h.AdminListStatistics)
		admin.POST("/statistics", h.AdminCreateStatistic)
		admin.PUT("/statistics/:id", h.AdminReplaceStatistic)
		admin.PATCH("/statistics/:id", h.AdminPatchStatistic)
		admin.DELETE("/statistics/:id", h.AdminDeleteStatistic)

		admin.GET("/contacts", h.AdminListContacts)
		admin.GET("/contacts/:id", h.AdminGetContact)
		admin.PATCH("/contacts/:id", h.AdminPatchContact)
		admin.DELETE("/contacts/:id", h.AdminDeleteContact)

		admin.GET("/newsletter", h.AdminListSubscribers)
		admin.DELETE("/newsletter/:id", h.AdminDeleteSubscriber)

		admin.GET("/services", h.AdminListServices)
		admin.POST("/services", h.AdminCreateService)
		admin.PUT("/services/:id", h.AdminReplaceService)
		admin.PATCH("/services/:id", h.AdminPatchService)
		admin.DELETE("/services/:id", h.AdminDeleteService)

		admin.GET("/sliders", h.AdminListSliders)
		admin.POST("/sliders", h.AdminCreateSlider)
		admin.GET("/sliders/:id", h.AdminGetSlider)
		admin.PUT("/sliders/:id", h.AdminReplaceSlider)
		admin.PATCH("/sliders/:id", h.AdminPatchSlider)
		admin.DELETE("/sliders/:id", h.AdminDeleteSlider)

		admin.GET("/comments", h.AdminListComments)
		admin.GET("/comments/stats", h.AdminCommentStats)
		admin.PATCH("/comments/:id", h.AdminPatchComment)
		admin.DELETE("/comments/:id", h.AdminDeleteComment)

		admin.GET("/videos", h.AdminListVideos)
		admin.POST("/videos", h.AdminCreateVideo)
		admin.PUT("/videos/:id", h.AdminReplaceVideo)
		admin.PATCH("/videos/:id", h.AdminPatchVideo)
		admin.DELETE("/videos/:id", h.AdminDeleteVideo)

		admin.GET("/dashboard/stats", h.AdminDashboardStats)
		admin.GET("/visits/summary", h.AdminVisitSummary)
		admin.GET("/visits/report", h.AdminVisitReport)

		admin.POST("/upload", h.AdminUpload)
	}
}

// normalisePublicBase 规范化公共 URL 基础路径
func normalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/uploads"
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// parseIDParam 解析路径中的数字 ID，失败时写入 404 响应
func parseIDParam(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		NotFound(c, "resource not found")
		return 0, false
	}
	return uint(id), true
}
