package server

import (
	"net/http"

	"github.com/google/uuid"
)

// fixedHeaders are stamped on every response, success or error. Caching is
// disabled so the browser always refetches the latest asset version after a
// deploy.
var fixedHeaders = [...][2]string{
	{"Access-Control-Allow-Origin", "*"},
	{"Access-Control-Allow-Methods", "GET, POST, OPTIONS"},
	{"Access-Control-Allow-Headers", "*"},
	{"Cache-Control", "no-cache, no-store, must-revalidate"},
	{"Pragma", "no-cache"},
	{"Expires", "0"},
}

func (s *Server) withHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, kv := range fixedHeaders {
			h.Set(kv[0], kv[1])
		}
		h.Set("X-Request-Id", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code the inner handler writes so the
// access log can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.serverLog.Printf("%s %q %d", r.RemoteAddr, r.Method+" "+r.URL.RequestURI()+" "+r.Proto, rec.status)
	})
}
