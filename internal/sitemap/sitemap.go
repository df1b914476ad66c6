package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"displaytest/internal/site"
)

const Namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type Entry struct {
	URL             string
	LastModified    time.Time
	ChangeFrequency site.ChangeFreq
	Priority        float64
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Build returns one entry per listed route, in route order.
func Build(baseURL string, routes []site.Route, lastModified time.Time) []Entry {
	baseURL = strings.TrimSuffix(baseURL, "/")

	entries := make([]Entry, 0, len(routes))

	for _, r := range routes {
		if r.Unlisted {
			continue
		}

		entries = append(entries, Entry{
			URL:             AbsoluteURL(baseURL, r.Path),
			LastModified:    lastModified,
			ChangeFrequency: r.ChangeFreq,
			Priority:        r.Priority,
		})
	}

	return entries
}

func AbsoluteURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")

	if path == "/" {
		return baseURL
	}

	return baseURL + path
}

func Encode(w io.Writer, entries []Entry) error {
	set := urlset{
		Xmlns: Namespace,
		URLs:  make([]url, 0, len(entries)),
	}

	for _, e := range entries {
		set.URLs = append(set.URLs, url{
			Loc:        e.URL,
			LastMod:    e.LastModified.UTC().Format(time.DateOnly),
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   strconv.FormatFloat(e.Priority, 'f', -1, 64),
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("failed to write xml header: %w", err)
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}

	return enc.Close()
}

func Robots(baseURL string) []byte {
	return []byte("User-agent: *\nAllow: /\n\nSitemap: " + strings.TrimSuffix(baseURL, "/") + "/sitemap.xml\n")
}
