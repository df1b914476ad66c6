package tools

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var Cwd = mustCwd()

func mustCwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}

	return dir
}

// Abs resolves name against the working directory captured at startup.
func Abs(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(Cwd, name)
}

// CopyFiles copies the named files of src into dst under prefix.
func CopyFiles(dst afero.Fs, prefix string, src fs.FS, names []string) error {
	for _, name := range names {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return fmt.Errorf("read %s failed: %w", name, err)
		}

		target := filepath.Join(prefix, filepath.FromSlash(name))

		if err := dst.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("mkdir failed: %w", err)
		}

		if err := afero.WriteFile(dst, target, b, 0o644); err != nil {
			return fmt.Errorf("write %s failed: %w", target, err)
		}
	}

	return nil
}
