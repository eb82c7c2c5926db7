package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Icer178/traffic-val/internal/config"
)

// LocalStore keeps evidence on the local filesystem under
// <base>/<ownerID>/<violationID>/<seq>_<filename> and serves it from the
// configured public base URL.
type LocalStore struct {
	basePath string
	baseURL  string
}

func NewLocalStore(cfg config.StorageConfig) *LocalStore {
	return &LocalStore{
		basePath: cfg.LocalPath,
		baseURL:  strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}
}

func (s *LocalStore) Store(ctx context.Context, ownerID, violationID uuid.UUID, seq int, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.basePath, ownerID.String(), violationID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create evidence directory: %w", err)
	}

	name := fmt.Sprintf("%d_%s", seq, sanitize(filename))
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write evidence file: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s/%s", s.baseURL, ownerID, violationID, name), nil
}

func (s *LocalStore) Delete(ctx context.Context, ownerID, violationID uuid.UUID) error {
	dir := filepath.Join(s.basePath, ownerID.String(), violationID.String())
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("delete evidence directory: %w", err)
	}
	return nil
}

// sanitize keeps only the base name so a crafted filename cannot escape the
// violation's directory.
func sanitize(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "file"
	}
	return name
}
