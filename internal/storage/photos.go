// Package storage keeps entry photo attachments on local disk, served back to
// clients under a public URL prefix.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type PhotoStore struct {
	baseDir string
	baseURL string
}

// NewPhotoStore creates the backing directory if needed. baseURL is the public
// prefix the directory is served under, e.g. "/images".
func NewPhotoStore(baseDir, baseURL string) (*PhotoStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo directory: %w", err)
	}
	return &PhotoStore{baseDir: baseDir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Upload writes the photo bytes under {user}/{entry}.jpg and returns the
// public URL.
func (p *PhotoStore) Upload(data []byte, userID, entryID string) (string, error) {
	userDir := filepath.Join(p.baseDir, userID)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return "", fmt.Errorf("create user photo directory: %w", err)
	}

	filename := entryID + ".jpg"
	if err := os.WriteFile(filepath.Join(userDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}
	return fmt.Sprintf("%s/%s/%s", p.baseURL, userID, filename), nil
}

// Delete removes the photo a public URL points at. URLs outside this store's
// prefix are ignored so remotely hosted images never cause delete failures.
func (p *PhotoStore) Delete(publicURL string) error {
	rel, ok := strings.CutPrefix(publicURL, p.baseURL+"/")
	if !ok {
		return nil
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return nil
	}

	err := os.Remove(filepath.Join(p.baseDir, rel))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove photo: %w", err)
	}
	return nil
}

// Dir returns the backing directory for static file serving.
func (p *PhotoStore) Dir() string { return p.baseDir }
