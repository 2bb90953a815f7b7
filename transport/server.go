package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/subscription"
	"github.com/dusk-network/rusk/utils"
)

// Facade binds the HTTP and WebSocket endpoints together and gives the
// composition root a single start/stop surface (§4.9).
type Facade struct {
	http        *HTTPServer
	ws          *http.Server
	wsEnabled   bool
	drainWindow time.Duration
	log         utils.SimpleLogger
}

// NewFacade wires an HTTPServer (always on) and, when wsCfg.BindAddress
// is non-empty, a WebSocket listener at wsCfg.Path.
func NewFacade(httpCfg HTTPConfig, wsCfg WSConfig, rpcHTTP *jsonrpc.HTTP, rpc *jsonrpc.Server, manager *subscription.Manager, drainWindow time.Duration, log utils.SimpleLogger) *Facade {
	f := &Facade{http: NewHTTPServer(httpCfg, rpcHTTP, log), drainWindow: drainWindow, log: log}

	if wsCfg.BindAddress != "" {
		path := wsCfg.Path
		if path == "" {
			path = "/ws"
		}
		mux := http.NewServeMux()
		mux.Handle(path, NewWSServer(wsCfg, rpc, manager, log))
		f.ws = &http.Server{Addr: wsCfg.BindAddress, Handler: mux}
		f.wsEnabled = true
	}
	return f
}

// Run starts both listeners and blocks until one of them fails to
// start (ignoring the expected http.ErrServerClosed from Shutdown).
func (f *Facade) Run() error {
	errCh := make(chan error, 2)
	go func() { errCh <- ignoreClosed(f.http.ListenAndServe()) }()
	if f.wsEnabled {
		go func() { errCh <- ignoreClosed(f.ws.ListenAndServe()) }()
	}
	return <-errCh
}

// Shutdown stops accepting new connections on both listeners and waits
// up to the configured drain window for in-flight work to finish
// (§4.9, §6.4: "Signal → graceful shutdown → drain timeout → abort").
func (f *Facade) Shutdown(ctx context.Context) error {
	drainCtx, cancel := context.WithTimeout(ctx, f.drainWindow)
	defer cancel()

	httpErr := f.http.Shutdown(drainCtx)
	var wsErr error
	if f.wsEnabled {
		wsErr = f.ws.Shutdown(drainCtx)
	}
	if httpErr != nil {
		return httpErr
	}
	return wsErr
}

func ignoreClosed(err error) error {
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
