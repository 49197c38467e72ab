package network

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/ratel-online/core/log"
)

// logger writes one line per request through the server log.
func logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func() {
			log.Infof("%s %s %d %s from %s\n", r.Method, r.URL.Path, ww.Status(), time.Since(start), r.RemoteAddr)
		}()
		next.ServeHTTP(ww, r)
	})
}
