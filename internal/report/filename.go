package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// UniqueFilename создает dir и возвращает путь к свободному файлу:
// base.ext, затем base(1).ext, base(2).ext и так далее.
func UniqueFilename(dir, base, ext string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, base+ext)
	for n := 1; ; n++ {
		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", path, err)
		}
		path = filepath.Join(dir, fmt.Sprintf("%s(%d)%s", base, n, ext))
	}
}
