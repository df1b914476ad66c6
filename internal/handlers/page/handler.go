package page

import (
	"bytes"
	"fmt"
	"net/http"

	"displaytest/internal/menu"
	"displaytest/internal/metrics"
	"displaytest/internal/render"
	"displaytest/internal/site"

	"github.com/brody192/ext/respond"
	"github.com/brody192/logger"
	"github.com/spf13/afero"
)

// Handler serves route from pages pre-rendered by render.Build in both menu states.
func Handler(route site.Route, pages afero.Fs, rec metrics.Recorder) (http.HandlerFunc, error) {
	var bodies [2][]byte

	for _, state := range []menu.State{menu.Closed, menu.Open} {
		b, err := afero.ReadFile(pages, render.PagePath(route.Path, state))
		if err != nil {
			return nil, fmt.Errorf("missing pre-rendered page for %s (%s): %w", route.Path, state, err)
		}

		bodies[state] = b
	}

	return func(w http.ResponseWriter, r *http.Request) {
		state := menu.FromQuery(r.URL.Query())

		rec.IncPageView(route.Path, state.String())

		respond.HTMLBlob(w, bodies[state], http.StatusOK)
	}, nil
}

// DevHandler renders route on every request.
func DevHandler(route site.Route, renderer *render.Renderer, rec metrics.Recorder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := menu.FromQuery(r.URL.Query())

		rec.IncPageView(route.Path, state.String())

		buf := &bytes.Buffer{}

		if err := renderer.Render(buf, route, state); err != nil {
			logger.Stderr.Error("failed to render page", logger.ErrAttr(err))
			http.Error(w, render.ErrTemplateRender.Error(), http.StatusInternalServerError)
			return
		}

		respond.HTMLBlob(w, buf.Bytes(), http.StatusOK)
	}
}

// NotFound renders the not found page once and serves it with a 404.
func NotFound(renderer *render.Renderer) (http.HandlerFunc, error) {
	buf := &bytes.Buffer{}

	if err := renderer.Render(buf, render.NotFoundRoute, menu.Closed); err != nil {
		return nil, err
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		respond.HTMLBlob(w, buf.Bytes(), http.StatusNotFound)
	}, nil
}
