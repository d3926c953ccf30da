package server

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/klauspost/compress/gzhttp"

	"github.com/NanoShadeStudios/Machine-of-Worlds/internal/console"
)

// ConsolePath is the relay endpoint the game's error-reporting shim posts
// browser console output to.
const ConsolePath = "/__console__"

// Server serves the game's static assets and the console-relay endpoint.
// It keeps no state across requests.
type Server struct {
	assetRoot  string
	serverLog  *log.Logger
	browserLog *log.Logger
	static     http.Handler
	srv        *http.Server
}

func New(addr, assetRoot string, serverLog, browserLog *log.Logger) *Server {
	s := &Server{
		assetRoot:  assetRoot,
		serverLog:  serverLog,
		browserLog: browserLog,
		static:     http.FileServer(http.Dir(assetRoot)),
	}
	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the full handler chain: fixed CORS/no-cache headers and an
// access-log line on every response, gzip for clients that accept it, then
// method dispatch with static file serving as the fallback.
func (s *Server) Handler() http.Handler {
	return s.withHeaders(s.withAccessLog(gzhttp.GzipHandler(http.HandlerFunc(s.route))))
}

// Start runs the HTTP server until Shutdown is called.
func (s *Server) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) route(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodOptions:
		// CORS preflight, any path
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPost && r.URL.Path == ConsolePath:
		s.handleConsole(w, r)
	case r.Method == http.MethodPost:
		http.Error(w, "Endpoint not found", http.StatusNotFound)
	default:
		s.static.ServeHTTP(w, r)
	}
}

// handleConsole forwards one browser console call to the server log. Any
// read or parse failure is reported to stdout and answered with a bare 500;
// the client never sees the diagnostic.
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength < 0 {
		s.serverLog.Print("Console log error: missing Content-Length")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.serverLog.Printf("Console log error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	defer r.Body.Close()

	rec, err := console.Parse(body)
	if err != nil {
		s.serverLog.Printf("Console log error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	s.browserLog.Print(rec.Line())
	w.WriteHeader(http.StatusNoContent)
}
