package sitemap

import (
	"bytes"
	"encoding/xml"
	"testing"
	"time"

	"displaytest/internal/site"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lastMod = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func TestBuildFromRouteTable(t *testing.T) {
	entries := Build("https://displaytest.site/", site.Routes(), lastMod)
	require.Len(t, entries, 17)

	byURL := make(map[string]Entry, len(entries))

	for _, e := range entries {
		_, dup := byURL[e.URL]
		assert.False(t, dup, "duplicate entry %s", e.URL)

		byURL[e.URL] = e

		assert.GreaterOrEqual(t, e.Priority, 0.0)
		assert.LessOrEqual(t, e.Priority, 1.0)
		assert.True(t, e.ChangeFrequency.Valid(), e.URL)
		assert.Equal(t, lastMod, e.LastModified)
	}

	assert.Equal(t, "https://displaytest.site", entries[0].URL)
	assert.Equal(t, 1.0, entries[0].Priority)
	assert.Equal(t, 0.3, byURL["https://displaytest.site/privacy"].Priority)
	assert.Equal(t, 0.3, byURL["https://displaytest.site/terms"].Priority)
	assert.Equal(t, site.Yearly, byURL["https://displaytest.site/terms"].ChangeFrequency)
}

func TestBuildSkipsUnlisted(t *testing.T) {
	routes := []site.Route{
		{Path: "/", ChangeFreq: site.Weekly, Priority: 1},
		{Path: "/draft", ChangeFreq: site.Weekly, Priority: 0.5, Unlisted: true},
	}

	entries := Build("https://example.com", routes, lastMod)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://example.com", entries[0].URL)
}

func TestEncode(t *testing.T) {
	entries := []Entry{
		{URL: "https://example.com", LastModified: lastMod, ChangeFrequency: site.Weekly, Priority: 1},
		{URL: "https://example.com/terms", LastModified: lastMod, ChangeFrequency: site.Yearly, Priority: 0.3},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, entries))

	out := buf.String()
	assert.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, out, "<loc>https://example.com/terms</loc>")
	assert.Contains(t, out, "<lastmod>2025-03-14</lastmod>")
	assert.Contains(t, out, "<changefreq>yearly</changefreq>")
	assert.Contains(t, out, "<priority>0.3</priority>")
	assert.Contains(t, out, "<priority>1</priority>")

	var decoded urlset
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded.URLs, 2)
}

func TestEncodeKeepsPriorityPrecision(t *testing.T) {
	entries := []Entry{
		{URL: "https://example.com/a", LastModified: lastMod, ChangeFrequency: site.Monthly, Priority: 0.85},
		{URL: "https://example.com/b", LastModified: lastMod, ChangeFrequency: site.Monthly, Priority: 0.05},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, entries))

	assert.Contains(t, buf.String(), "<priority>0.85</priority>")
	assert.Contains(t, buf.String(), "<priority>0.05</priority>")
}

func TestRobots(t *testing.T) {
	assert.Contains(t, string(Robots("https://example.com/")), "Sitemap: https://example.com/sitemap.xml")
}
