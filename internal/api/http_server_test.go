package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/entity"
	"portfolio/internal/model"
	modelsql "portfolio/internal/model/sql"
	"portfolio/internal/storage"
)

func newTestServer(t *testing.T) (*HTTPHandler, *gin.Engine, model.Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// 每个测试使用独立的共享内存库，连接池内的连接访问同一份数据
	dsn := fmt.Sprintf("file:api_%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&entity.DbUser{},
		&entity.DbArticle{},
		&entity.DbGalleryItem{},
		&entity.DbTestimonial{},
		&entity.DbCertificate{},
		&entity.DbStatistic{},
		&entity.DbContact{},
		&entity.DbSubscriber{},
		&entity.DbService{},
		&entity.DbSlider{},
		&entity.DbComment{},
		&entity.DbVideo{},
		&entity.DbVisit{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	repo := modelsql.NewGormRepository(db)

	store, err := storage.NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}

	cfg := config.Config{
		JWTSecret:            "test-secret",
		JWTIssuer:            "portfolio-test",
		JWTExpirationMinutes: 5,
	}
	handler, err := NewHTTPHandler(cfg, repo, store)
	if err != nil {
		t.Fatalf("failed to create http handler: %v", err)
	}

	router := gin.New()
	handler.RegisterRoutes(router)
	return handler, router, repo
}

func seedUser(t *testing.T, repo model.Repository, email, password string, active, admin bool) *entity.DbUser {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := &entity.DbUser{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Test User",
		IsActive:     active,
		IsAdmin:      admin,
	}
	if err := repo.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func tokenFor(t *testing.T, handler *HTTPHandler, email string) string {
	t.Helper()
	token, _, err := handler.authManager.GenerateToken(email)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	return token
}

func doJSON(router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doLogin(router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dest); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func sampleArticleBody() map[string]any {
	return map[string]any{
		"title":    "Hand-Painted Silk Scarves",
		"excerpt":  "A look at this season's silk collection.",
		"category": "craft",
		"author":   "Maya",
		"icon":     "🧵",
		"image":    "articles/scarf.jpg",
		"tags":     []string{"silk", "painting"},
		"featured": true,
	}
}

func TestLoginIssuesToken(t *testing.T) {
	_, router, repo := newTestServer(t)
	seedUser(t, repo, "admin@example.com", "s3cret-pass", true, true)

	rec := doLogin(router, "Admin@Example.com", "s3cret-pass")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp entity.AuthTokenResponse
	decodeBody(t, rec, &resp)
	if resp.AccessToken == "" {
		t.Fatal("expected a non-empty access token")
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected token type bearer, got %q", resp.TokenType)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	_, router, repo := newTestServer(t)
	seedUser(t, repo, "admin@example.com", "s3cret-pass", true, true)

	unknown := doLogin(router, "nobody@example.com", "whatever")
	wrongPassword := doLogin(router, "admin@example.com", "wrong-pass")

	for name, rec := range map[string]*httptest.ResponseRecorder{
		"unknown email":  unknown,
		"wrong password": wrongPassword,
	} {
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
		if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
			t.Fatalf("%s: expected WWW-Authenticate Bearer, got %q", name, got)
		}
	}

	if unknown.Body.String() != wrongPassword.Body.String() {
		t.Fatalf("failure responses differ: %q vs %q", unknown.Body.String(), wrongPassword.Body.String())
	}
	var apiErr APIError
	decodeBody(t, unknown, &apiErr)
	if apiErr.Code != ErrCodeInvalidCredentials {
		t.Fatalf("expected %s, got %s", ErrCodeInvalidCredentials, apiErr.Code)
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	_, router, repo := newTestServer(t)
	seedUser(t, repo, "pending@example.com", "s3cret-pass", false, false)

	// 正确密码但账号未激活
	rec := doLogin(router, "pending@example.com", "s3cret-pass")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var apiErr APIError
	decodeBody(t, rec, &apiErr)
	if apiErr.Code != ErrCodeInactiveAccount {
		t.Fatalf("expected %s, got %s", ErrCodeInactiveAccount, apiErr.Code)
	}

	// 密码错误时不能暴露账号处于未激活状态
	rec = doLogin(router, "pending@example.com", "wrong-pass")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}
	decodeBody(t, rec, &apiErr)
	if apiErr.Code != ErrCodeInvalidCredentials {
		t.Fatalf("expected %s, got %s", ErrCodeInvalidCredentials, apiErr.Code)
	}
}

func TestAdminGateOrdering(t *testing.T) {
	handler, router, repo := newTestServer(t)
	seedUser(t, repo, "inactive@example.com", "pass-word", false, true)
	seedUser(t, repo, "member@example.com", "pass-word", true, false)
	seedUser(t, repo, "admin@example.com", "pass-word", true, true)

	rec := doJSON(router, http.MethodGet, "/api/admin/articles", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}
	if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
		t.Fatalf("no token: expected WWW-Authenticate Bearer, got %q", got)
	}

	var apiErr APIError
	rec = doJSON(router, http.MethodGet, "/api/admin/articles", tokenFor(t, handler, "inactive@example.com"), nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("inactive: expected 400, got %d", rec.Code)
	}
	decodeBody(t, rec, &apiErr)
	if apiErr.Code != ErrCodeInactiveAccount {
		t.Fatalf("inactive: expected %s, got %s", ErrCodeInactiveAccount, apiErr.Code)
	}

	rec = doJSON(router, http.MethodGet, "/api/admin/articles", tokenFor(t, handler, "member@example.com"), nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-admin: expected 403, got %d", rec.Code)
	}
	decodeBody(t, rec, &apiErr)
	if apiErr.Code != ErrCodeForbidden {
		t.Fatalf("non-admin: expected %s, got %s", ErrCodeForbidden, apiErr.Code)
	}

	rec = doJSON(router, http.MethodGet, "/api/admin/articles", tokenFor(t, handler, "admin@example.com"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestMeReturnsCurrentUser(t *testing.T) {
	handler, router, repo := newTestServer(t)
	seedUser(t, repo, "member@example.com", "pass-word", true, false)

	rec := doJSON(router, http.MethodGet, "/api/auth/me", tokenFor(t, handler, "member@example.com"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var summary entity.UserSummary
	decodeBody(t, rec, &summary)
	if summary.Email != "member@example.com" {
		t.Fatalf("expected member email, got %q", summary.Email)
	}
}

func TestSubmitCommentRatingBounds(t *testing.T) {
	handler, router, repo := newTestServer(t)
	seedUser(t, repo, "admin@example.com", "pass-word", true, true)
	admin := tokenFor(t, handler, "admin@example.com")

	created := doJSON(router, http.MethodPost, "/api/admin/articles", admin, sampleArticleBody())
	if created.Code != http.StatusCreated {
		t.Fatalf("failed to create article: %d %s", created.Code, created.Body.String())
	}
	var article entity.DbArticle
	decodeBody(t, created, &article)

	commentBody := func(rating int) map[string]any {
		return map[string]any{
			"name":         "Visitor",
			"email":        "visitor@example.com",
			"content":      "Lovely work!",
			"rating":       rating,
			"content_type": "article",
			"content_id":   article.ID,
		}
	}

	for rating, wantRule := range map[int]string{0: "gte", 6: "lte"} {
		rec := doJSON(router, http.MethodPost, "/api/comments", "", commentBody(rating))
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("rating %d: expected 422, got %d: %s", rating, rec.Code, rec.Body.String())
		}
		var apiErr struct {
			Code    string `json:"code"`
			Details []struct {
				Field string `json:"field"`
				Rule  string `json:"rule"`
			} `json:"details"`
		}
		decodeBody(t, rec, &apiErr)
		if apiErr.Code != ErrCodeValidation {
			t.Fatalf("rating %d: expected %s, got %s", rating, ErrCodeValidation, apiErr.Code)
		}
		found := false
		for _, detail := range apiErr.Details {
			if detail.Field == "rating" && detail.Rule == wantRule {
				found = true
			}
		}
		if !found {
			t.Fatalf("rating %d: expected rating/%s in details, got %+v", rating, wantRule, apiErr.Details)
		}
	}

	for _, rating := range []int{1, 5} {
		rec := doJSON(router, http.MethodPost, "/api/comments", "", commentBody(rating))
		if rec.Code != http.StatusCreated {
			t.Fatalf("rating %d: expected 201, got %d: %s", rating, rec.Code, rec.Body.String())
		}
		var comment entity.DbComment
		decodeBody(t, rec, &comment)
		if comment.Approved {
			t.Fatal("public submissions must start unapproved")
		}
	}
}

func TestSubmitCommentMissingTarget(t *testing.T) {
	_, router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodPost, "/api/comments", "", map[string]any{
		"name":         "Visitor",
		"email":        "visitor@example.com",
		"content":      "Where did it go?",
		"rating":       4,
		"content_type": "article",
		"content_id":   999,
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing target, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestReplaceArticleBlanksOmittedFields(t *testing.T) {
	handler, router, repo := newTestServer(t)
	seedUser(t, repo, "admin@example.com", "pass-word", true, true)
	admin := tokenFor(t, handler, "admin@example.com")

	created := doJSON(router, http.MethodPost, "/api/admin/articles", admin, sampleArticleBody())
	if created.Code != http.StatusCreated {
		t.Fatalf("failed to create article: %d %s", created.Code, created.Body.String())
	}
	var article entity.DbArticle
	decodeBody(t, created, &article)
	if article.Image == "" || len(article.Tags) == 0 {
		t.Fatalf("seed article missing optional fields: %+v", article)
	}

	rec := doJSON(router, http.MethodPut, fmt.Sprintf("/api/admin/articles/%d", article.ID), admin, map[string]any{
		"title":    "Hand-Painted Silk Scarves",
		"excerpt":  "Updated excerpt.",
		"category": "craft",
		"author":   "Maya",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var replaced entity.DbArticle
	decodeBody(t, rec, &replaced)
	if replaced.Image != "" {
		t.Fatalf("expected image blanked by full replace, got %q", replaced.Image)
	}
	if len(replaced.Tags) != 0 {
		t.Fatalf("expected tags cleared by full replace, got %v", replaced.Tags)
	}
	if replaced.Featured {
		t.Fatal("expected featured reset to false by full replace")
	}
	if replaced.Excerpt != "Updated excerpt." {
		t.Fatalf("expected excerpt updated, got %q", replaced.Excerpt)
	}
}

func TestPatchArticleKeepsOmittedFields(t *testing.T) {
	handler, router, repo := newTestServer(t)
	seedUser(t, repo, "admin@example.com", "pass-word", true, true)
	admin := tokenFor(t, handler, "admin@example.com")

	created := doJSON(router, http.MethodPost, "/api/admin/articles", admin, sampleArticleBody())
	var article entity.DbArticle
	decodeBody(t, created, &article)

	rec := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/admin/articles/%d", article.ID), admin, map[string]any{
		"title": "Renamed",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var patched entity.DbArticle
	decodeBody(t, rec, &patched)
	if patched.Title != "Renamed" {
		t.Fatalf("expected title updated, got %q", patched.Title)
	}
	if patched.Image != article.Image || len(patched.Tags) != len(article.Tags) {
		t.Fatalf("patch must not touch omitted fields: %+v", patched)
	}
}

func TestEmptyPatchIsNoOp(t *testing.T) {
	handler, router, repo := newTestServer(t)
	seedUser(t, repo, "admin@example.com", "pass-word", true, true)
	admin := tokenFor(t, handler, "admin@example.com")

	created := doJSON(router, http.MethodPost, "/api/admin/articles", admin, sampleArticleBody())
	var article entity.DbArticle
	decodeBody(t, created, &article)

	rec := doJSON(router, http.MethodPatch, fmt.Sprintf("/api/admin/articles/%d", article.ID), admin, map[string]any{})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty patch, got %d: %s", rec.Code, rec.Body.String())
	}
	var unchanged entity.DbArticle
	decodeBody(t, rec, &unchanged)
	if unchanged.Title != article.Title || unchanged.Image != article.Image {
		t.Fatalf("empty patch must not change the record: %+v", unchanged)
	}
}

func TestPatchMissingArticleReturnsNotFound(t *testing.T) {
	handler, router, repo := newTestServer(t)
	seedUser(t, repo, "admin@example.com", "pass-word", true, true)
	admin := tokenFor(t, handler, "admin@example.com")

	rec := doJSON(router, http.MethodPatch, "/api/admin/articles/424242", admin, map[string]any{"title": "x"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestNewsletterResubscribeReactivates(t *testing.T) {
	_, router, repo := newTestServer(t)

	body := map[string]any{"email": "reader@example.com"}
	rec := doJSON(router, http.MethodPost, "/api/newsletter/subscribe", "", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first subscribe: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var subscriber entity.DbSubscriber
	decodeBody(t, rec, &subscriber)

	// 重复订阅幂等：返回现有记录而不是报错
	rec = doJSON(router, http.MethodPost, "/api/newsletter/subscribe", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("duplicate subscribe: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var duplicate entity.DbSubscriber
	decodeBody(t, rec, &duplicate)
	if duplicate.ID != subscriber.ID || !duplicate.Active {
		t.Fatalf("expected the existing active record back, got %+v", duplicate)
	}

	inactive := false
	if err := repo.UpdateSubscriber(context.Background(), subscriber.ID, entity.SubscriberUpdates{Active: &inactive}); err != nil {
		t.Fatalf("failed to deactivate subscriber: %v", err)
	}

	rec = doJSON(router, http.MethodPost, "/api/newsletter/subscribe", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("resubscribe: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var reactivated entity.DbSubscriber
	decodeBody(t, rec, &reactivated)
	if !reactivated.Active {
		t.Fatal("expected subscription reactivated")
	}
	if reactivated.ID != subscriber.ID {
		t.Fatalf("expected the existing record reused, got id %d (want %d)", reactivated.ID, subscriber.ID)
	}
}

func TestRecordVisitAlwaysAccepted(t *testing.T) {
	_, router, _ := newTestServer(t)

	rec := doJSON(router, http.MethodPost, "/api/visit", "", map[string]any{"path": "/gallery"})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPublicArticleDetailCountsView(t *testing.T) {
	handler, router, repo := newTestServer(t)
	seedUser(t, repo, "admin@example.com", "pass-word", true, true)
	admin := tokenFor(t, handler, "admin@example.com")

	created := doJSON(router, http.MethodPost, "/api/admin/articles", admin, sampleArticleBody())
	var article entity.DbArticle
	decodeBody(t, created, &article)

	rec := doJSON(router, http.MethodGet, fmt.Sprintf("/api/articles/%d", article.ID), "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	stored, err := repo.GetArticle(context.Background(), article.ID)
	if err != nil {
		t.Fatalf("failed to reload article: %v", err)
	}
	if stored.Views != article.Views+1 {
		t.Fatalf("expected views incremented to %d, got %d", article.Views+1, stored.Views)
	}
}
