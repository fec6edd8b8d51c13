package entity

import "testing"

func TestArticleRequestUpdatesWritesEveryField(t *testing.T) {
	req := ArticleRequest{
		Title:    "Title",
		Excerpt:  "Excerpt",
		Category: "tech",
		Author:   "Author",
	}
	updates := req.Updates().ToMap()

	// Full replace must overwrite omitted optional fields with zero values.
	for _, column := range []string{
		"title", "excerpt", "full_content", "category", "icon", "gradient",
		"image", "slider_id", "author", "author_avatar", "author_role",
		"read_time", "featured", "tags", "iframe_url", "model_url", "model_type",
	} {
		if _, ok := updates[column]; !ok {
			t.Fatalf("expected full replace to set column %q", column)
		}
	}
	if updates["image"] != "" {
		t.Fatalf("expected omitted image to be blanked, got %v", updates["image"])
	}
	if updates["featured"] != false {
		t.Fatalf("expected omitted featured to reset to false, got %v", updates["featured"])
	}
}

func TestArticlePatchRequestUpdatesAreSparse(t *testing.T) {
	title := "New title"
	req := ArticlePatchRequest{Title: &title}
	updates := req.Updates().ToMap()

	if len(updates) != 1 {
		t.Fatalf("expected exactly one update, got %d: %v", len(updates), updates)
	}
	if updates["title"] != "New title" {
		t.Fatalf("unexpected title update: %v", updates["title"])
	}
}

func TestEmptyPatchIsEmpty(t *testing.T) {
	if !(ArticlePatchRequest{}).Updates().IsEmpty() {
		t.Fatal("expected empty article patch to produce no updates")
	}
	if !(ServicePatchRequest{}).Updates().IsEmpty() {
		t.Fatal("expected empty service patch to produce no updates")
	}
	if !(CommentPatchRequest{}).Updates().IsEmpty() {
		t.Fatal("expected empty comment patch to produce no updates")
	}
}

func TestPatchCanWriteZeroValues(t *testing.T) {
	approved := false
	updates := (TestimonialPatchRequest{Approved: &approved}).Updates().ToMap()
	if v, ok := updates["approved"]; !ok || v != false {
		t.Fatalf("expected explicit false to be written, got %v (present=%v)", v, ok)
	}
}

func TestStringArrayRoundTrip(t *testing.T) {
	raw, err := StringArray{"go", "gin"}.Value()
	if err != nil {
		t.Fatalf("unexpected error serialising: %v", err)
	}

	var decoded StringArray
	if err := decoded.Scan(raw); err != nil {
		t.Fatalf("unexpected error scanning: %v", err)
	}
	if len(decoded) != 2 || decoded[0] != "go" || decoded[1] != "gin" {
		t.Fatalf("unexpected decoded value: %v", decoded)
	}

	var empty StringArray
	if err := empty.Scan(""); err != nil {
		t.Fatalf("unexpected error scanning empty string: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty slice, got %v", empty)
	}
}

func TestListQueryNormalize(t *testing.T) {
	q := ListQuery{Skip: -3, Limit: 0}
	q.Normalize()
	if q.Skip != 0 || q.Limit != 100 {
		t.Fatalf("unexpected normalised query: %+v", q)
	}

	q = ListQuery{Skip: 10, Limit: 500}
	q.Normalize()
	if q.Limit != 100 {
		t.Fatalf("expected limit capped at 100, got %d", q.Limit)
	}

	q = ListQuery{Skip: 5, Limit: 20}
	q.Normalize()
	if q.Skip != 5 || q.Limit != 20 {
		t.Fatalf("expected in-range values untouched, got %+v", q)
	}
}
