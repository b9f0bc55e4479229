package local

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/admin/astro-web/natal-chart/internal/ports/storage"
)

type Config struct {
	Dir string `envconfig:"DIR" default:"output"`
}

// Store файловое хранилище SVG-артефактов, дефолт для локальной разработки
type Store struct {
	dir string
	log *slog.Logger
}

// NewStore создаёт хранилище и директорию под артефакты
func NewStore(cfg *Config, log *slog.Logger) (storage.IArtifactStore, error) {
	dir := "output"
	if cfg != nil && cfg.Dir != "" {
		dir = cfg.Dir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifacts dir %s: %w", dir, err)
	}

	return &Store{
		dir: dir,
		log: log,
	}, nil
}

// safePath не даёт именам с ../ выйти за пределы директории артефактов
func (s *Store) safePath(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned != name || strings.Contains(cleaned, "..") || strings.ContainsRune(cleaned, os.PathSeparator) {
		return "", fmt.Errorf("invalid artifact name: %s", name)
	}
	return filepath.Join(s.dir, cleaned), nil
}

// Put сохраняет артефакт под указанным именем
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	path, err := s.safePath(name)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write artifact %s: %w", name, err)
	}

	s.log.Debug("artifact stored locally", "path", path, "size", len(data))
	return nil
}

// Get получает артефакт по имени
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	path, err := s.safePath(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", name, err)
	}

	return data, nil
}
