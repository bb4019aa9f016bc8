package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage keeps session keys as files under a base directory. It is
// the default backend: one small file per key, rewritten in full on
// every Set.
type FileStorage struct {
	basePath string
}

// NewFileStorage creates the base directory if missing.
func NewFileStorage(basePath string) (*FileStorage, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("session storage path is required")
	}
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &FileStorage{basePath: basePath}, nil
}

func (f *FileStorage) Get(key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read session key: %w", err)
	}
	return string(data), nil
}

func (f *FileStorage) Set(key, value string) error {
	if err := os.WriteFile(f.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("write session key: %w", err)
	}
	return nil
}

func (f *FileStorage) Delete(key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete session key: %w", err)
	}
	return nil
}

func (f *FileStorage) Clear() error {
	entries, err := os.ReadDir(f.basePath)
	if err != nil {
		return fmt.Errorf("list session dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(f.basePath, entry.Name())); err != nil {
			return fmt.Errorf("clear session key: %w", err)
		}
	}
	return nil
}

// path flattens the key into a safe filename ("@Auth:user" -> "@Auth_user").
func (f *FileStorage) path(key string) string {
	name := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	name = strings.ReplaceAll(name, ":", "_")
	return filepath.Join(f.basePath, name)
}
