package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// ObjectStore persists uploaded files (payment receipts, expense proofs) and
// returns a URI the API can hand back to clients.
type ObjectStore interface {
	Save(ctx context.Context, fileName, contentType string, data []byte) (string, error)
}

// LocalStore writes files to a directory on disk, served by the API under a
// public prefix. Used in development and as a fallback when no S3-compatible
// endpoint is configured.
type LocalStore struct {
	baseDir      string
	publicPrefix string
}

// NewLocalStore creates a local store; baseDir is created if missing.
func NewLocalStore(baseDir, publicPrefix string) (*LocalStore, error) {
	if baseDir == "" {
		baseDir = "./storage/uploads"
	}
	if publicPrefix == "" {
		publicPrefix = "/uploads"
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure storage dir %q: %w", baseDir, err)
	}

	return &LocalStore{baseDir: baseDir, publicPrefix: publicPrefix}, nil
}

// BaseDir returns the directory files are written to.
func (s *LocalStore) BaseDir() string {
	return s.baseDir
}

// PublicPrefix returns the URL prefix the directory is served under.
func (s *LocalStore) PublicPrefix() string {
	return s.publicPrefix
}

// Save writes data under a collision-free name and returns its public URI.
func (s *LocalStore) Save(ctx context.Context, fileName, contentType string, data []byte) (string, error) {
	// sanitize the provided filename to avoid path traversal
	fileName = filepath.Base(fileName)

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}
	final := fmt.Sprintf("%s_%s", hex.EncodeToString(randBytes), fileName)

	path := filepath.Join(s.baseDir, final)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to finalize file: %w", err)
	}

	return s.publicPrefix + "/" + final, nil
}
