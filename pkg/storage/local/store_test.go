package local

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rkhatri/vastra-backend/pkg/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(config.UploadsConfig{
		Dir:         t.TempDir(),
		MaxUploadMB: 1,
		PublicBase:  "/uploads",
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestSaveImageAndRemove(t *testing.T) {
	store := newTestStore(t)

	publicPath, err := store.SaveImage("categories", "image/png", strings.NewReader("fake-png-bytes"))
	if err != nil {
		t.Fatalf("save image: %v", err)
	}
	if !strings.HasPrefix(publicPath, "/uploads/categories/") {
		t.Fatalf("unexpected public path %q", publicPath)
	}
	if !strings.HasSuffix(publicPath, ".png") {
		t.Fatalf("expected .png extension, got %q", publicPath)
	}

	rel := strings.TrimPrefix(publicPath, "/uploads/")
	if _, err := os.Stat(filepath.Join(store.Dir(), rel)); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	if err := store.Remove(publicPath); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Dir(), rel)); !os.IsNotExist(err) {
		t.Fatalf("expected file deleted, got %v", err)
	}

	// removing again is a no-op
	if err := store.Remove(publicPath); err != nil {
		t.Fatalf("second remove should be nil, got %v", err)
	}
}

func TestSaveImageRejectsUnknownType(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveImage("categories", "application/pdf", strings.NewReader("x")); err == nil {
		t.Fatal("expected error for unsupported content type")
	}
}

func TestSaveImageEnforcesSizeLimit(t *testing.T) {
	store := newTestStore(t)
	huge := strings.NewReader(strings.Repeat("a", int(store.MaxBytes())+1))
	if _, err := store.SaveImage("categories", "image/jpeg", huge); err == nil {
		t.Fatal("expected error for oversized upload")
	}
}

func TestRemoveRejectsTraversal(t *testing.T) {
	store := newTestStore(t)
	if err := store.Remove("/uploads/../etc/passwd"); err == nil {
		t.Fatal("expected error for path traversal")
	}
}
