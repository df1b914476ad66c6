package crawler

import (
	"bytes"
	"net/http"
	"time"

	"displaytest/internal/metrics"
	"displaytest/internal/site"
	"displaytest/internal/sitemap"

	"github.com/brody192/ext/respond"
)

const (
	mimeXML  = "application/xml; charset=utf-8"
	mimeText = "text/plain; charset=utf-8"
)

// SitemapHandler encodes the sitemap once and serves the cached bytes.
func SitemapHandler(baseURL string, routes []site.Route, lastModified time.Time, rec metrics.Recorder) (http.HandlerFunc, error) {
	buf := &bytes.Buffer{}

	if err := sitemap.Encode(buf, sitemap.Build(baseURL, routes, lastModified)); err != nil {
		return nil, err
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		rec.IncSitemapFetch("sitemap.xml")

		respond.Blob(w, mimeXML, buf.Bytes(), http.StatusOK)
	}, nil
}

func RobotsHandler(baseURL string, rec metrics.Recorder) http.HandlerFunc {
	robots := sitemap.Robots(baseURL)

	return func(w http.ResponseWriter, _ *http.Request) {
		rec.IncSitemapFetch("robots.txt")

		respond.Blob(w, mimeText, robots, http.StatusOK)
	}
}
