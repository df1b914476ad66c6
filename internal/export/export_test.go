package export

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"displaytest/internal/config"
	"displaytest/internal/site"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:         "3000",
		SiteURL:      "https://displaytest.site",
		LastModified: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestExport(t *testing.T) {
	out := afero.NewMemMapFs()
	require.NoError(t, Export(testConfig(), out))

	for _, route := range site.Routes() {
		name := filepath.Join(strings.Trim(route.Path, "/"), "index.html")

		ok, err := afero.Exists(out, name)
		require.NoError(t, err)
		assert.True(t, ok, name)

		ok, err = afero.Exists(out, filepath.Join(strings.Trim(route.Path, "/"), "index.menu-open.html"))
		require.NoError(t, err)
		assert.False(t, ok, "menu variants are not exported")
	}

	for _, name := range []string{"404.html", "sitemap.xml", "robots.txt", "assets/css/site.css", "assets/js/site.min.js"} {
		ok, err := afero.Exists(out, name)
		require.NoError(t, err)
		assert.True(t, ok, name)
	}

	sm, err := afero.ReadFile(out, "sitemap.xml")
	require.NoError(t, err)
	assert.Equal(t, 17, strings.Count(string(sm), "<url>"))
}

func TestToDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "dist")
	require.NoError(t, ToDir(testConfig(), dir))

	b, err := afero.ReadFile(afero.NewOsFs(), filepath.Join(dir, "guides", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Complete Display Buying Guide 2025")
}
