// Package export writes the whole site as static files, ready for any file host.
package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"displaytest/internal/assets"
	"displaytest/internal/config"
	"displaytest/internal/menu"
	"displaytest/internal/render"
	"displaytest/internal/site"
	"displaytest/internal/sitemap"
	"displaytest/internal/tools"

	"github.com/brody192/logger"
	"github.com/spf13/afero"
)

// Export renders every route with the menu closed, plus sitemap.xml,
// robots.txt, 404.html and the assets, into out.
func Export(cfg *config.Config, out afero.Fs) error {
	if err := site.Validate(); err != nil {
		return fmt.Errorf("route table is invalid: %w", err)
	}

	sT := time.Now()

	renderer, err := render.New(cfg.SiteURL, cfg.LastModified)
	if err != nil {
		return err
	}

	routes := site.Routes()

	if err := renderer.BuildTo(out, routes, menu.Closed); err != nil {
		return err
	}

	notFound := &bytes.Buffer{}

	if err := renderer.Render(notFound, render.NotFoundRoute, menu.Closed); err != nil {
		return err
	}

	if err := afero.WriteFile(out, "404.html", notFound.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write 404.html: %w", err)
	}

	sm := &bytes.Buffer{}

	if err := sitemap.Encode(sm, sitemap.Build(cfg.SiteURL, routes, cfg.LastModified)); err != nil {
		return err
	}

	if err := afero.WriteFile(out, "sitemap.xml", sm.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write sitemap.xml: %w", err)
	}

	if err := afero.WriteFile(out, "robots.txt", sitemap.Robots(cfg.SiteURL), 0o644); err != nil {
		return fmt.Errorf("failed to write robots.txt: %w", err)
	}

	assetFS, err := assets.New(false)
	if err != nil {
		return err
	}

	names, err := assets.Names()
	if err != nil {
		return err
	}

	if err := tools.CopyFiles(out, "assets", assetFS, names); err != nil {
		return fmt.Errorf("failed to copy assets: %w", err)
	}

	logger.Stdout.Info("exported site",
		slog.Int("routes", len(routes)),
		slog.String("time_pretty", time.Since(sT).String()),
	)

	return nil
}

// ToDir exports into dir on disk, creating it if needed.
func ToDir(cfg *config.Config, dir string) error {
	osFs := afero.NewOsFs()

	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	return Export(cfg, afero.NewBasePathFs(osFs, dir))
}
