package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/yalue/merged_fs"
)

const (
	ScriptSource = "js/site.js"
	ScriptPath   = "js/site.min.js"
	StylePath    = "css/site.css"
)

var ErrJSMinificationFailed = errors.New("js minification failed")

//go:embed static
var staticFS embed.FS

// New returns the file system served under /assets: the embedded static files
// overlaid with the generated ones. In dev mode the script is served unminified.
func New(devMode bool) (fs.FS, error) {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("error subbing static fs: %w", err)
	}

	src, err := fs.ReadFile(static, ScriptSource)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ScriptSource, err)
	}

	script := src

	if !devMode {
		script, err = minifyJS(src)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrJSMinificationFailed, err)
		}
	}

	generated := afero.NewIOFS(afero.NewMemMapFs())

	if err := generated.MkdirAll(path.Dir(ScriptPath), 0o700); err != nil {
		return nil, fmt.Errorf("mkdir failed: %w", err)
	}

	if err := afero.WriteFile(generated.Fs, ScriptPath, script, os.FileMode(0o600)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", ScriptPath, err)
	}

	return merged_fs.NewMergedFS(generated, static), nil
}

// Names lists every file New serves, sorted.
func Names() ([]string, error) {
	names := []string{ScriptPath}

	err := fs.WalkDir(staticFS, "static", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		names = append(names, strings.TrimPrefix(name, "static/"))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk static fs: %w", err)
	}

	slices.Sort(names)

	return names, nil
}
