// Package metrics counts page and sitemap traffic.
//
// Components take a Recorder; NoopRecorder is the default so callers never
// need nil checks. PrometheusRecorder is wired in by the server.
package metrics

type Recorder interface {
	IncPageView(path, menuState string)
	IncSitemapFetch(file string)
}

type NoopRecorder struct{}

func (NoopRecorder) IncPageView(string, string) {}

func (NoopRecorder) IncSitemapFetch(string) {}
