package site

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrDuplicatePath    = errors.New("duplicate route path")
	ErrDuplicateGuide   = errors.New("duplicate guide slug")
	ErrDanglingLink     = errors.New("link does not resolve to a route")
	ErrInvalidPriority  = errors.New("priority out of range")
	ErrInvalidFrequency = errors.New("unknown change frequency")
	ErrMissingTemplate  = errors.New("route has no template")
)

const GuidesPath = "/guides"

// Routes returns the route table in declaration order.
func Routes() []Route {
	return slices.Clone(routes)
}

func Lookup(path string) (Route, bool) {
	return lookup(routes, path)
}

func lookup(rs []Route, path string) (Route, bool) {
	path, _, _ = strings.Cut(path, "#")

	for _, r := range rs {
		if r.Path == path {
			return r, true
		}
	}

	return Route{}, false
}

// Links returns the link registry: one entry per route that carries navigation data.
func Links() []NavEntry {
	return links(routes)
}

func links(rs []Route) []NavEntry {
	var entries []NavEntry

	for _, r := range rs {
		if r.Nav == nil {
			continue
		}

		entry := *r.Nav
		entry.Path = r.Path

		entries = append(entries, entry)
	}

	return entries
}

func LinksByCategory(c Category) []NavEntry {
	var entries []NavEntry

	for _, e := range Links() {
		if e.Category == c {
			entries = append(entries, e)
		}
	}

	return entries
}

func Guides() []Guide {
	return slices.Clone(guides)
}

// Link returns the card link for a guide, anchored on the guides page.
func (g Guide) Link() NavEntry {
	return NavEntry{
		Label:       g.Title,
		Path:        GuidesPath + "#" + g.Slug,
		Icon:        g.Icon,
		Description: g.Summary,
		Category:    CategoryGuide,
	}
}

// Validate checks the built-in tables.
func Validate() error {
	return validate(routes, guides)
}

func validate(rs []Route, gs []Guide) error {
	var errs []error

	seen := make(map[string]struct{}, len(rs))

	for _, r := range rs {
		if _, ok := seen[r.Path]; ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path))
		}

		seen[r.Path] = struct{}{}

		if r.Template == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingTemplate, r.Path))
		}

		if r.Priority < 0 || r.Priority > 1 {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidPriority, r.Path, r.Priority))
		}

		if !r.ChangeFreq.Valid() {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrInvalidFrequency, r.Path, r.ChangeFreq))
		}

		if r.Nav != nil && r.Nav.Path != "" && r.Nav.Path != r.Path {
			errs = append(errs, fmt.Errorf("%w: %s declared on route %s", ErrDanglingLink, r.Nav.Path, r.Path))
		}
	}

	slugs := make(map[string]struct{}, len(gs))

	for _, g := range gs {
		if _, ok := slugs[g.Slug]; ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateGuide, g.Slug))
		}

		slugs[g.Slug] = struct{}{}

		if _, ok := lookup(rs, g.Link().Path); !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDanglingLink, g.Link().Path))
		}
	}

	return errors.Join(errs...)
}
