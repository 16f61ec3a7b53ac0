package local

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/rkhatri/vastra-backend/pkg/config"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Store writes uploaded files under a local directory and maps them to
// public URL paths.
type Store struct {
	dir        string
	publicBase string
	maxBytes   int64
}

// NewStore prepares the upload directory, creating it if needed.
func NewStore(cfg config.UploadsConfig) (*Store, error) {
	if strings.TrimSpace(cfg.Dir) == "" {
		return nil, errors.New("uploads dir is required")
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating uploads dir %q: %w", cfg.Dir, err)
	}
	maxMB := cfg.MaxUploadMB
	if maxMB <= 0 {
		maxMB = 5
	}
	return &Store{
		dir:        cfg.Dir,
		publicBase: strings.TrimRight(cfg.PublicBase, "/"),
		maxBytes:   int64(maxMB) << 20,
	}, nil
}

// MaxBytes reports the configured per-file size cap.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// Dir reports the root directory files are written under.
func (s *Store) Dir() string {
	return s.dir
}

// SaveImage stores the reader's content under scope/ with a random name and
// returns the public URL path. Content type must be a known image type.
func (s *Store) SaveImage(scope, contentType string, r io.Reader) (string, error) {
	ext, ok := allowedImageTypes[normalizeContentType(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported image type %q", contentType)
	}
	scope = sanitizeScope(scope)

	if err := os.MkdirAll(filepath.Join(s.dir, scope), 0o755); err != nil {
		return "", fmt.Errorf("creating scope dir: %w", err)
	}

	name := uuid.NewString() + ext
	dest := filepath.Join(s.dir, scope, name)

	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("writing file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(dest)
		return "", fmt.Errorf("file exceeds %d byte limit", s.maxBytes)
	}

	return path.Join(s.publicBase, scope, name), nil
}

// Remove deletes a previously stored file given its public URL path. Missing
// files are not an error.
func (s *Store) Remove(publicPath string) error {
	rel := strings.TrimPrefix(publicPath, s.publicBase)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid path %q", publicPath)
	}
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func normalizeContentType(ct string) string {
	parsed, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return parsed
}

func sanitizeScope(scope string) string {
	scope = strings.ToLower(strings.TrimSpace(scope))
	if scope == "" {
		return "misc"
	}
	clean := make([]rune, 0, len(scope))
	for _, r := range scope {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			clean = append(clean, r)
		}
	}
	if len(clean) == 0 {
		return "misc"
	}
	return string(clean)
}
