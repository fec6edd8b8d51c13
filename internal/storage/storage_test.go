package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestObjectKeyLayout(t *testing.T) {
	datedir := time.Now().UTC().Format("2006/01/02")

	got := objectKey("", SaveOptions{Category: "Uploads", BaseName: "My Scarf Photo", Extension: ".JPG"})
	want := fmt.Sprintf("uploads/%s/my-scarf-photo.jpg", datedir)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	withPrefix := objectKey("site", SaveOptions{Category: "Uploads", BaseName: "logo", Extension: "png"})
	want = fmt.Sprintf("site/uploads/%s/logo.png", datedir)
	if withPrefix != want {
		t.Fatalf("expected %q, got %q", want, withPrefix)
	}
}

func TestObjectKeyDefaults(t *testing.T) {
	got := objectKey("", SaveOptions{})
	if !strings.HasPrefix(got, "misc/") {
		t.Fatalf("expected misc category fallback, got %q", got)
	}
	if !strings.HasSuffix(got, ".bin") {
		t.Fatalf("expected bin extension fallback, got %q", got)
	}
}

func TestSanitizeToken(t *testing.T) {
	cases := map[string]string{
		"Gallery":        "gallery",
		"up/loads":       "uploads",
		"  spaced out  ": "spacedout",
		"under_score-ok": "under_score-ok",
	}
	for input, want := range cases {
		if got := SanitizeToken(input); got != want {
			t.Fatalf("SanitizeToken(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestLocalStorageSave(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}

	payload := []byte("not really a png")
	relative, err := store.Save(context.Background(), payload, SaveOptions{
		Category:  "uploads",
		Extension: "png",
	})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(relative, "uploads/") {
		t.Fatalf("expected path under uploads/, got %q", relative)
	}

	data, err := os.ReadFile(filepath.Join(store.LocalBaseDir(), filepath.FromSlash(relative)))
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatal("stored payload does not match input")
	}
}

func TestLocalStorageRejectsEmptyPayload(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}
	if _, err := store.Save(context.Background(), nil, SaveOptions{Category: "uploads"}); err == nil {
		t.Fatal("expected an error for empty payload")
	}
}

func TestLocalStorageSkipIfExists(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create local storage: %v", err)
	}

	opts := SaveOptions{Category: "uploads", BaseName: "logo", Extension: "svg", SkipIfExists: true}
	first, err := store.Save(context.Background(), []byte("v1"), opts)
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second, err := store.Save(context.Background(), []byte("v2"), opts)
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical paths, got %q and %q", first, second)
	}

	data, err := os.ReadFile(filepath.Join(store.LocalBaseDir(), filepath.FromSlash(first)))
	if err != nil {
		t.Fatalf("failed to read back file: %v", err)
	}
	if string(data) != "v1" {
		t.Fatalf("expected original content preserved, got %q", data)
	}
}
