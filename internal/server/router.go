package server

import (
	"fmt"
	"log/slog"
	"time"

	"displaytest/internal/assets"
	"displaytest/internal/config"
	"displaytest/internal/handlers/crawler"
	"displaytest/internal/handlers/page"
	"displaytest/internal/menu"
	"displaytest/internal/metrics"
	"displaytest/internal/render"
	"displaytest/internal/site"

	"github.com/brody192/ext/handler"
	"github.com/brody192/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	prom "github.com/prometheus/client_golang/prometheus"

	extmiddleware "github.com/brody192/ext/middleware"
)

// NewRouter validates the route table, pre-renders every page and returns the site router.
// A nil registry disables /metrics.
func NewRouter(cfg *config.Config, reg *prom.Registry) (*chi.Mux, error) {
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("route table is invalid: %w", err)
	}

	var rec metrics.Recorder = metrics.NoopRecorder{}

	if reg != nil {
		rec = metrics.NewPrometheusRecorder(reg)
	}

	renderer, err := render.New(cfg.SiteURL, cfg.LastModified)
	if err != nil {
		return nil, err
	}

	assetFS, err := assets.New(cfg.DevMode())
	if err != nil {
		return nil, err
	}

	var r = chi.NewRouter()

	r.Use(extmiddleware.AutoReply([]string{
		"/favicon.ico",
		"/service-worker.js",
	}, 404))
	r.Use(extmiddleware.TrustProxy(&extmiddleware.TrustProxyConfig{}))
	r.Use(extmiddleware.Logger(logger.Stdout))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))
	r.Use(middleware.GetHead)
	r.Use(redirectSlashes)

	if cfg.DevMode() {
		r.Use(middleware.NoCache)
	}

	handler.FileServer(r, "/assets", assetFS, false)

	routes := site.Routes()

	if err := registerPages(r, cfg, renderer, routes, rec); err != nil {
		return nil, err
	}

	sitemapHandler, err := crawler.SitemapHandler(cfg.SiteURL, routes, cfg.LastModified, rec)
	if err != nil {
		return nil, fmt.Errorf("failed to build sitemap: %w", err)
	}

	r.Get("/sitemap.xml", sitemapHandler)
	r.Get("/robots.txt", crawler.RobotsHandler(cfg.SiteURL, rec))

	if reg != nil {
		r.Handle("/metrics", metrics.HTTPHandler(reg))
	}

	notFound, err := page.NotFound(renderer)
	if err != nil {
		return nil, fmt.Errorf("failed to render not found page: %w", err)
	}

	r.NotFound(notFound)

	return r, nil
}

func registerPages(r chi.Router, cfg *config.Config, renderer *render.Renderer, routes []site.Route, rec metrics.Recorder) error {
	if cfg.DevMode() {
		for _, route := range routes {
			r.Get(route.Path, page.DevHandler(route, renderer, rec))
		}

		return nil
	}

	sT := time.Now()

	pages, err := renderer.Build(routes, menu.Closed, menu.Open)
	if err != nil {
		return fmt.Errorf("failed to pre-render pages: %w", err)
	}

	for _, route := range routes {
		h, err := page.Handler(route, pages, rec)
		if err != nil {
			return err
		}

		r.Get(route.Path, h)
	}

	logger.Stdout.Info("pre-rendered all pages",
		slog.Int("routes", len(routes)),
		slog.String("time_pretty", time.Since(sT).String()),
	)

	return nil
}
