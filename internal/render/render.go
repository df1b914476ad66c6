package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"displaytest/internal/menu"
	"displaytest/internal/site"
	"displaytest/internal/sitemap"
)

var (
	ErrUnknownTemplate = errors.New("unknown page template")
	ErrTemplateRender  = errors.New("failed to execute template")
)

//go:embed templates content
var embedded embed.FS

// NotFoundRoute is rendered for unknown paths. It is not part of the route table.
var NotFoundRoute = site.Route{
	Path:        "/404",
	Title:       "Page Not Found - Display Test",
	Description: "The requested page does not exist.",
	Template:    "notfound",
	Unlisted:    true,
}

type Renderer struct {
	baseURL string
	year    int

	pages  map[string]*template.Template
	prose  map[string]template.HTML
	guides map[string]template.HTML
}

// PageData is the view model every page template receives.
type PageData struct {
	Route     site.Route
	Canonical string
	Year      int

	Menu     menu.State
	MenuHref string

	Primary   []site.NavEntry
	Tools     []site.NavEntry
	Resources []site.NavEntry
	Legal     []site.NavEntry
	Guides    []site.Guide

	Prose template.HTML
}

type navLink struct {
	Entry   site.NavEntry
	Current string
}

// New parses the embedded templates and converts the embedded Markdown.
// lastModified dates the footer so output depends only on the inputs.
func New(baseURL string, lastModified time.Time) (*Renderer, error) {
	r := &Renderer{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		year:    lastModified.Year(),
		pages:   make(map[string]*template.Template),
	}

	var err error

	if r.prose, err = convertDir(embedded, "content"); err != nil {
		return nil, err
	}

	if r.guides, err = convertDir(embedded, "content/guides"); err != nil {
		return nil, err
	}

	funcs := template.FuncMap{
		"join": strings.Join,
		"navlink": func(e site.NavEntry, current string) navLink {
			return navLink{Entry: e, Current: current}
		},
		"toJSON": func(v any) (string, error) {
			b, err := json.Marshal(v)
			return string(b), err
		},
		"guide": func(slug string) template.HTML {
			return r.guides[slug]
		},
	}

	base, err := template.New("").Funcs(funcs).ParseFS(embedded, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout templates: %w", err)
	}

	pageFiles, err := fs.Glob(embedded, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob page templates: %w", err)
	}

	for _, file := range pageFiles {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout: %w", err)
		}

		if t, err = t.ParseFS(embedded, file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", file, err)
		}

		r.pages[strings.TrimSuffix(path.Base(file), ".html")] = t
	}

	return r, nil
}

// Render writes the full document for route. Nothing is written on error.
func (r *Renderer) Render(w io.Writer, route site.Route, state menu.State) error {
	t, ok := r.pages[route.Template]
	if !ok {
		return fmt.Errorf("%w: %q for %s", ErrUnknownTemplate, route.Template, route.Path)
	}

	buf := &bytes.Buffer{}

	if err := t.ExecuteTemplate(buf, "layout", r.pageData(route, state)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTemplateRender, route.Path, err)
	}

	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) pageData(route site.Route, state menu.State) PageData {
	var primary []site.NavEntry

	for _, e := range site.Links() {
		if e.Category == site.CategoryTool || e.Category == site.CategoryLegal || e.Path == "/" {
			continue
		}

		primary = append(primary, e)
	}

	data := PageData{
		Route:     route,
		Year:      r.year,
		Menu:      state,
		Primary:   primary,
		Tools:     site.LinksByCategory(site.CategoryTool),
		Resources: append(site.LinksByCategory(site.CategoryGuide), site.LinksByCategory(site.CategoryCompany)...),
		Legal:     site.LinksByCategory(site.CategoryLegal),
		Guides:    site.Guides(),
		Prose:     r.prose[route.Template],
	}

	// Unlisted pages such as the 404 are served under other paths, so they get
	// neither a canonical URL nor a no-JS menu link back to themselves.
	if !route.Unlisted {
		data.Canonical = sitemap.AbsoluteURL(r.baseURL, route.Path)
		data.MenuHref = state.ToggleHref(route.Path)
	}

	return data
}
