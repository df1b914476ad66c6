package render

import (
	"fmt"
	"os"
	"path"
	"strings"

	"displaytest/internal/menu"
	"displaytest/internal/site"

	"github.com/spf13/afero"
)

// PagePath is where Build stores route rendered in state.
func PagePath(routePath string, state menu.State) string {
	name := "index.html"
	if state.IsOpen() {
		name = "index.menu-open.html"
	}

	return path.Join(strings.Trim(routePath, "/"), name)
}

// Build pre-renders every route in each of the given states into an in-memory file system.
func (r *Renderer) Build(routes []site.Route, states ...menu.State) (afero.Fs, error) {
	out := afero.NewMemMapFs()

	if err := r.BuildTo(out, routes, states...); err != nil {
		return nil, err
	}

	return out, nil
}

// BuildTo writes every route, rendered in each of the given states, to out at PagePath.
// With no states only the closed menu variant is written.
func (r *Renderer) BuildTo(out afero.Fs, routes []site.Route, states ...menu.State) error {
	if len(states) == 0 {
		states = []menu.State{menu.Closed}
	}

	for _, route := range routes {
		for _, state := range states {
			name := PagePath(route.Path, state)

			if err := out.MkdirAll(path.Dir(name), 0o755); err != nil {
				return fmt.Errorf("mkdir failed: %w", err)
			}

			f, err := out.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
			if err != nil {
				return fmt.Errorf("openfile failed to open %s: %w", name, err)
			}

			err = r.Render(f, route, state)

			if cerr := f.Close(); err == nil {
				err = cerr
			}

			if err != nil {
				return err
			}
		}
	}

	return nil
}
