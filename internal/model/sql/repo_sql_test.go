package sql

import (
	"context"
	"errors"
	"fmt"
	"portfolio/internal/entity"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *GormRepository {
	t.Helper()

	// 每个测试使用独立的共享内存库，连接池内的连接访问同一份数据
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
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

	return NewGormRepository(db)
}

func TestArticleLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	article := &entity.DbArticle{
		Title:    "First",
		Excerpt:  "Excerpt",
		Category: "tech",
		Author:   "Author",
	}
	if err := repo.CreateArticle(ctx, article); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if article.ID == 0 {
		t.Fatal("expected assigned id")
	}

	title := "Renamed"
	if err := repo.UpdateArticle(ctx, article.ID, entity.ArticleUpdates{Title: &title}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	loaded, err := repo.GetArticle(ctx, article.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.Title != "Renamed" {
		t.Fatalf("expected renamed title, got %q", loaded.Title)
	}
	if loaded.Excerpt != "Excerpt" {
		t.Fatalf("sparse update must not touch other columns, got %q", loaded.Excerpt)
	}

	if err := repo.IncrementArticleViews(ctx, article.ID); err != nil {
		t.Fatalf("increment failed: %v", err)
	}
	loaded, err = repo.GetArticle(ctx, article.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.Views != 1 {
		t.Fatalf("expected views 1, got %d", loaded.Views)
	}

	if err := repo.DeleteArticle(ctx, article.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.GetArticle(ctx, article.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestDeleteMissingRowReportsNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.DeleteArticle(ctx, 9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
	if err := repo.DeleteService(ctx, 9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestEmptyUpdateIsNoOp(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	article := &entity.DbArticle{Title: "Keep", Excerpt: "E", Category: "c", Author: "a"}
	if err := repo.CreateArticle(ctx, article); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := repo.UpdateArticle(ctx, article.ID, entity.ArticleUpdates{}); err != nil {
		t.Fatalf("expected empty update to succeed, got %v", err)
	}

	loaded, err := repo.GetArticle(ctx, article.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.Title != "Keep" {
		t.Fatalf("expected row untouched, got %q", loaded.Title)
	}
}

func TestFullReplaceBlanksOmittedFields(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	article := entity.ArticleRequest{
		Title:    "Original",
		Excerpt:  "Excerpt",
		Category: "tech",
		Author:   "Author",
		Image:    "/uploads/a.png",
		Featured: true,
		Tags:     []string{"go"},
	}.Entity()
	if err := repo.CreateArticle(ctx, &article); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	replacement := entity.ArticleRequest{
		Title:    "Replaced",
		Excerpt:  "New excerpt",
		Category: "life",
		Author:   "Author",
	}
	if err := repo.UpdateArticle(ctx, article.ID, replacement.Updates()); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	loaded, err := repo.GetArticle(ctx, article.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.Image != "" {
		t.Fatalf("expected image blanked by full replace, got %q", loaded.Image)
	}
	if loaded.Featured {
		t.Fatal("expected featured reset by full replace")
	}
	if len(loaded.Tags) != 0 {
		t.Fatalf("expected tags cleared by full replace, got %v", loaded.Tags)
	}
}

func TestNewsletterUniqueEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &entity.DbSubscriber{Email: "Reader@Example.com", Active: true}
	if err := repo.CreateSubscriber(ctx, first); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if first.Email != "reader@example.com" {
		t.Fatalf("expected lowercased email, got %q", first.Email)
	}

	duplicate := &entity.DbSubscriber{Email: "reader@example.com", Active: true}
	if err := repo.CreateSubscriber(ctx, duplicate); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}

	// Deactivated subscription is reactivated via update, not reinserted.
	inactive := false
	if err := repo.UpdateSubscriber(ctx, first.ID, entity.SubscriberUpdates{Active: &inactive}); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	active := true
	if err := repo.UpdateSubscriber(ctx, first.ID, entity.SubscriberUpdates{Active: &active}); err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}

	loaded, err := repo.GetSubscriberByEmail(ctx, "READER@example.com")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if !loaded.Active {
		t.Fatal("expected subscription active again")
	}
}

func TestListCommentsFilters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seed := []entity.DbComment{
		{Name: "A", Email: "a@example.com", Content: "x", Rating: 5, Approved: true, ContentType: entity.ContentTypeArticle, ContentID: 1},
		{Name: "B", Email: "b@example.com", Content: "y", Rating: 4, Approved: false, ContentType: entity.ContentTypeArticle, ContentID: 1},
		{Name: "C", Email: "c@example.com", Content: "z", Rating: 3, Approved: true, ContentType: entity.ContentTypeProject, ContentID: 2},
	}
	for i := range seed {
		if err := repo.CreateComment(ctx, &seed[i]); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	approved, err := repo.ListComments(ctx, &entity.CommentQuery{
		ContentType:  entity.ContentTypeArticle,
		ContentID:    1,
		ApprovedOnly: true,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(approved) != 1 || approved[0].Name != "A" {
		t.Fatalf("unexpected approved comments: %+v", approved)
	}

	all, err := repo.ListComments(ctx, nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(all))
	}

	stats, err := repo.GetCommentStats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Total != 3 || stats.Approved != 2 || stats.Pending != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestListPagination(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		statistic := &entity.DbStatistic{Number: "1", Label: "L", SortOrder: i}
		if err := repo.CreateStatistic(ctx, statistic); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	page, err := repo.ListStatistics(ctx, &entity.ListQuery{Skip: 2, Limit: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page))
	}
	if page[0].SortOrder != 2 || page[1].SortOrder != 3 {
		t.Fatalf("unexpected window: %+v", page)
	}
}

func TestVisitAggregates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.CreateVisit(ctx, &entity.DbVisit{Path: "/", IP: "127.0.0.1"}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	summary, err := repo.GetVisitSummary(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if summary.Total != 3 || summary.Today != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	report, err := repo.GetVisitReport(ctx, 7)
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if len(report) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(report))
	}
	if report[6].Count != 3 {
		t.Fatalf("expected today's bucket to hold 3 visits, got %d", report[6].Count)
	}
}

func TestDashboardStats(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.CreateUser(ctx, &entity.DbUser{Email: "admin@example.com", PasswordHash: "x", IsActive: true}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := repo.CreateArticle(ctx, &entity.DbArticle{Title: "T", Excerpt: "E", Category: "c", Author: "a"}); err != nil {
		t.Fatalf("create article failed: %v", err)
	}
	if err := repo.CreateContact(ctx, &entity.DbContact{Name: "N", Email: "n@example.com", Message: "hi"}); err != nil {
		t.Fatalf("create contact failed: %v", err)
	}
	if err := repo.CreateSlider(ctx, &entity.DbSlider{Name: "home", Images: entity.StringArray{"/uploads/a.png"}}); err != nil {
		t.Fatalf("create slider failed: %v", err)
	}
	testimonials := []entity.DbTestimonial{
		{Name: "A", Text: "great", Rating: 5, Approved: true},
		{Name: "B", Text: "pending", Rating: 4, Approved: false},
	}
	for i := range testimonials {
		if err := repo.CreateTestimonial(ctx, &testimonials[i]); err != nil {
			t.Fatalf("create testimonial failed: %v", err)
		}
	}

	stats, err := repo.GetDashboardStats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.Users != 1 {
		t.Fatalf("expected 1 user, got %d", stats.Users)
	}
	if stats.Articles != 1 {
		t.Fatalf("expected 1 article, got %d", stats.Articles)
	}
	if stats.Contacts != 1 || stats.UnreadContacts != 1 {
		t.Fatalf("unexpected contact counts: %+v", stats)
	}
	if stats.Sliders != 1 {
		t.Fatalf("expected 1 slider, got %d", stats.Sliders)
	}
	if stats.Testimonials != 2 || stats.PendingTestimonials != 1 {
		t.Fatalf("unexpected testimonial counts: %+v", stats)
	}
}

func TestListContactsUnreadFilter(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	seed := []entity.DbContact{
		{Name: "Seen", Email: "seen@example.com", Message: "old"},
		{Name: "New", Email: "new@example.com", Message: "fresh"},
	}
	for i := range seed {
		if err := repo.CreateContact(ctx, &seed[i]); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
	read := true
	if err := repo.UpdateContact(ctx, seed[0].ID, entity.ContactUpdates{Read: &read}); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	unread, err := repo.ListContacts(ctx, &entity.ContactQuery{UnreadOnly: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(unread) != 1 || unread[0].Name != "New" {
		t.Fatalf("unexpected unread contacts: %+v", unread)
	}

	all, err := repo.ListContacts(ctx, nil)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(all))
	}
}
