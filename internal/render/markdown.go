package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// convertDir converts every .md file directly under dir, keyed by base name.
// The sources are embedded and trusted, hence template.HTML.
func convertDir(fsys fs.FS, dir string) (map[string]template.HTML, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob %s: %w", dir, err)
	}

	out := make(map[string]template.HTML, len(files))

	for _, file := range files {
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		var buf bytes.Buffer

		if err := md.Convert(src, &buf); err != nil {
			return nil, fmt.Errorf("failed to convert %s: %w", file, err)
		}

		out[strings.TrimSuffix(path.Base(file), ".md")] = template.HTML(buf.String())
	}

	return out, nil
}
