package model

import (
	"context"
	"errors"
	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/entity"
	"strings"

	"gorm.io/gorm"
)

// SeedAdminUser ensures the configured bootstrap admin account exists. An
// already-present account is left untouched so a rotated env password does not
// silently overwrite a manually changed one.
func SeedAdminUser(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	password := strings.TrimSpace(cfg.AdminPassword)
	if email == "" || password == "" {
		return nil
	}

	_, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to create
	default:
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	return repo.CreateUser(ctx, &entity.DbUser{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Administrator",
		IsActive:     true,
		IsAdmin:      true,
	})
}

// SeedSampleContent populates starter content on a fresh database so the
// public site is not empty on first boot. A non-zero article count marks the
// database as already initialised.
func SeedSampleContent(ctx context.Context, repo Repository) error {
	if repo == nil {
		return nil
	}

	count, err := repo.CountArticles(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, statistic := range sampleStatistics() {
		s := statistic
		if err := repo.CreateStatistic(ctx, &s); err != nil {
			return err
		}
	}

	for _, service := range sampleServices() {
		s := service
		if err := repo.CreateService(ctx, &s); err != nil {
			return err
		}
	}

	for _, article := range sampleArticles() {
		a := article
		if err := repo.CreateArticle(ctx, &a); err != nil {
			return err
		}
	}

	return nil
}

func sampleStatistics() []entity.DbStatistic {
	return []entity.DbStatistic{
		{Number: "50+", Label: "Projects Delivered", Icon: "🚀", SortOrder: 1},
		{Number: "30+", Label: "Happy Clients", Icon: "🤝", SortOrder: 2},
		{Number: "8", Label: "Years of Experience", Icon: "⏳", SortOrder: 3},
	}
}

func sampleServices() []entity.DbService {
	return []entity.DbService{
		{
			Title:       "Web Development",
			Description: "Responsive web applications built with modern tooling.",
			Icon:        "💻",
			Color:       "#667eea",
			Features:    entity.StringArray{"SPA frontends", "REST APIs", "Performance tuning"},
			SortOrder:   1,
			Active:      true,
		},
		{
			Title:       "UI / UX Design",
			Description: "Interface design from wireframe to polished handoff.",
			Icon:        "🎨",
			Color:       "#f093fb",
			Features:    entity.StringArray{"Wireframing", "Prototyping", "Design systems"},
			SortOrder:   2,
			Active:      true,
		},
	}
}

func sampleArticles() []entity.DbArticle {
	return []entity.DbArticle{
		{
			Title:    "Welcome to the Blog",
			Excerpt:  "A short introduction to what gets published here.",
			Category: "general",
			Icon:     "📝",
			Author:   "Administrator",
			ReadTime: "2 min",
			Featured: true,
			Tags:     entity.StringArray{"intro"},
		},
	}
}
