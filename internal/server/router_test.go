package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"displaytest/internal/config"

	"github.com/PuerkitoBio/goquery"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(env string) *config.Config {
	return &config.Config{
		Port:         "3000",
		Env:          env,
		SiteURL:      "https://displaytest.site",
		LastModified: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	return w
}

func TestPagesServed(t *testing.T) {
	for _, env := range []string{"", "dev"} {
		t.Run("env="+env, func(t *testing.T) {
			r, err := NewRouter(testConfig(env), nil)
			require.NoError(t, err)

			for _, path := range []string{"/", "/about", "/contact", "/privacy", "/terms", "/guides", "/dead-pixel-test"} {
				w := get(t, r, path)
				assert.Equal(t, http.StatusOK, w.Code, path)
				assert.Contains(t, w.Header().Get("Content-Type"), "text/html", path)
			}
		})
	}
}

func TestPrerenderedMatchesDevRender(t *testing.T) {
	prod, err := NewRouter(testConfig(""), nil)
	require.NoError(t, err)

	dev, err := NewRouter(testConfig("dev"), nil)
	require.NoError(t, err)

	for _, target := range []string{"/guides", "/about?menu=open"} {
		assert.Equal(t, get(t, dev, target).Body.String(), get(t, prod, target).Body.String(), target)
	}
}

func TestMenuQueryOpensPanel(t *testing.T) {
	r, err := NewRouter(testConfig(""), nil)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(get(t, r, "/about?menu=open").Body)
	require.NoError(t, err)

	state, _ := doc.Find("#mobile-menu").Attr("data-state")
	assert.Equal(t, "open", state)

	href, _ := doc.Find("[data-menu-toggle]").Attr("href")

	doc, err = goquery.NewDocumentFromReader(get(t, r, href).Body)
	require.NoError(t, err)

	state, _ = doc.Find("#mobile-menu").Attr("data-state")
	assert.Equal(t, "closed", state)
}

func TestSitemapAndRobots(t *testing.T) {
	r, err := NewRouter(testConfig(""), nil)
	require.NoError(t, err)

	w := get(t, r, "/sitemap.xml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Equal(t, 17, strings.Count(w.Body.String(), "<url>"))
	assert.Contains(t, w.Body.String(), "<loc>https://displaytest.site/privacy</loc>")

	w = get(t, r, "/robots.txt")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sitemap: https://displaytest.site/sitemap.xml")
}

func TestNotFoundAndRedirects(t *testing.T) {
	r, err := NewRouter(testConfig(""), nil)
	require.NoError(t, err)

	w := get(t, r, "/no-such-test")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")

	w = get(t, r, "/about/")
	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "/about", w.Header().Get("Location"))

	w = get(t, r, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTrailingSlashRedirectStaysOnSite(t *testing.T) {
	r, err := NewRouter(testConfig(""), nil)
	require.NoError(t, err)

	tests := []struct {
		target   string
		host     string
		location string
	}{
		{target: "/about/", host: "example.com", location: "/about"},
		{target: "/about/", host: "evil.example", location: "/about"},
		{target: "/about/?menu=open", host: "example.com", location: "/about?menu=open"},
		{target: "//evil.example/", host: "example.com", location: "/evil.example"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.URL.Path, req.URL.RawQuery, _ = strings.Cut(tt.target, "?")
		req.Host = tt.host

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMovedPermanently, w.Code, tt.target)
		assert.Equal(t, tt.location, w.Header().Get("Location"), tt.target)
		assert.NotContains(t, w.Header().Get("Location"), "//", tt.target)
	}
}

func TestHeadRequests(t *testing.T) {
	r, err := NewRouter(testConfig(""), nil)
	require.NoError(t, err)

	for _, target := range []string{"/", "/about", "/sitemap.xml", "/robots.txt"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodHead, target, nil))

		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}

func TestAssetsServed(t *testing.T) {
	r, err := NewRouter(testConfig(""), nil)
	require.NoError(t, err)

	w := get(t, r, "/assets/js/site.min.js")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())

	w = get(t, r, "/assets/css/site.css")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsCountPageViews(t *testing.T) {
	reg := prom.NewRegistry()

	r, err := NewRouter(testConfig(""), reg)
	require.NoError(t, err)

	get(t, r, "/about")
	get(t, r, "/about?menu=open")
	get(t, r, "/sitemap.xml")

	w := get(t, r, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `displaytest_page_views_total{menu="closed",path="/about"} 1`)
	assert.Contains(t, body, `displaytest_page_views_total{menu="open",path="/about"} 1`)
	assert.Contains(t, body, `displaytest_crawler_files_total{file="sitemap.xml"} 1`)
}
