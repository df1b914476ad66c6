package server

import (
	"net/http"
	"strings"
)

// redirectSlashes sends /about/ to /about with a 301. The Location is built
// from the path only, and leading slashes are collapsed so it cannot become
// a protocol-relative URL.
func redirectSlashes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if len(path) <= 1 || !strings.HasSuffix(path, "/") {
			next.ServeHTTP(w, r)
			return
		}

		target := "/" + strings.Trim(path, "/")

		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}

		http.Redirect(w, r, target, http.StatusMovedPermanently)
	})
}
