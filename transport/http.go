// Package transport is the Transport Facade (C9): binds HTTP and
// WebSocket endpoints to the jsonrpc Dispatcher and the Subscription
// Manager, enforces connection caps, CORS, TLS, body-size limits, and
// graceful shutdown with a drain deadline (§4.9).
package transport

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/utils"
	"github.com/rs/cors"
)

// HTTPConfig configures the HTTP facade (§6.3 http.* keys).
type HTTPConfig struct {
	BindAddress    string
	MaxBodySize    int64
	RequestTimeout time.Duration
	MaxConnections int
	CertFile       string
	KeyFile        string
	CORS           CORSConfig
}

// CORSConfig mirrors §6.3's http.cors.* keys.
type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAgeSeconds    int
}

// HTTPServer is the `/rpc` + `/health` HTTP facade.
type HTTPServer struct {
	cfg    HTTPConfig
	server *http.Server
	log    utils.SimpleLogger
	sem    chan struct{}
}

// NewHTTPServer builds an HTTPServer that dispatches POST /rpc through
// rpc and answers GET /health unconditionally with 200 OK.
func NewHTTPServer(cfg HTTPConfig, rpc *jsonrpc.HTTP, log utils.SimpleLogger) *HTTPServer {
	mux := http.NewServeMux()
	h := &HTTPServer{cfg: cfg, log: log}
	if cfg.MaxConnections > 0 {
		h.sem = make(chan struct{}, cfg.MaxConnections)
	}

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/rpc", h.withCaps(rpc))

	var handler http.Handler = mux
	if cfg.CORS.Enabled {
		handler = cors.New(cors.Options{
			AllowedOrigins:   cfg.CORS.AllowedOrigins,
			AllowedMethods:   cfg.CORS.AllowedMethods,
			AllowedHeaders:   cfg.CORS.AllowedHeaders,
			AllowCredentials: cfg.CORS.AllowCredentials,
			MaxAge:           cfg.CORS.MaxAgeSeconds,
		}).Handler(handler)
	}

	h.server = &http.Server{
		Addr:         cfg.BindAddress,
		Handler:      handler,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}
	return h
}

// withCaps wraps next with the body-size cap (§4.4 "reject requests
// whose encoded size exceeds max_body_size") and the max_connections
// cap, which here counts concurrent in-flight /rpc requests: a request
// beyond the cap is answered with 503 inside the handler.
func (h *HTTPServer) withCaps(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.sem != nil {
			select {
			case h.sem <- struct{}{}:
				defer func() { <-h.sem }()
			default:
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
		}
		if h.cfg.MaxBodySize > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodySize)
		}
		next.ServeHTTP(w, r)
	})
}

// ListenAndServe starts the HTTP facade, enabling TLS when both
// CertFile and KeyFile are set (§4.9: "all-or-nothing").
func (h *HTTPServer) ListenAndServe() error {
	if h.cfg.CertFile != "" && h.cfg.KeyFile != "" {
		h.server.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		return h.server.ListenAndServeTLS(h.cfg.CertFile, h.cfg.KeyFile)
	}
	return h.server.ListenAndServe()
}

// Shutdown stops accepting new connections and waits for in-flight
// requests to finish, up to ctx's deadline (§4.9, §6.4).
func (h *HTTPServer) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}
