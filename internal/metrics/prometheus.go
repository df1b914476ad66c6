package metrics

import (
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PrometheusRecorder struct {
	pageViews      *prom.CounterVec
	sitemapFetches *prom.CounterVec
}

func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	r := &PrometheusRecorder{
		pageViews: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "displaytest",
			Name:      "page_views_total",
			Help:      "Pages served, by route and mobile menu state.",
		}, []string{"path", "menu"}),
		sitemapFetches: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "displaytest",
			Name:      "crawler_files_total",
			Help:      "sitemap.xml and robots.txt responses.",
		}, []string{"file"}),
	}

	reg.MustRegister(r.pageViews, r.sitemapFetches)

	return r
}

func (r *PrometheusRecorder) IncPageView(path, menuState string) {
	r.pageViews.WithLabelValues(path, menuState).Inc()
}

func (r *PrometheusRecorder) IncSitemapFetch(file string) {
	r.sitemapFetches.WithLabelValues(file).Inc()
}

// HTTPHandler serves the metrics gathered by reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
