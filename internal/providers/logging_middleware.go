package providers

import (
	"net/http"
	"strings"
	"time"
)

// LoggingMiddleware writes one line per request. Admin traffic is kept in
// its own log file.
func LoggingMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		t := GetLogTypeByRequestType(r.Method)
		if strings.HasPrefix(r.URL.Path, "/admin") {
			t = TypeAdmin
		}
		logger.Infof(t, "%s %s %d %s", r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}
