package jsonrpc

import (
	"net/http"

	"github.com/dusk-network/rusk/utils"
)

// HTTP adapts a *Server to net/http, attaching ClientInfo to the request
// context before dispatch. The body size cap is the caller's
// responsibility (the transport package wraps req.Body in
// http.MaxBytesReader per config.HTTP.MaxBodySize before calling us,
// mirroring juno's own MaxRequestBodySize wrapping here).
type HTTP struct {
	rpc *Server
	log utils.SimpleLogger
}

// NewHTTP builds an HTTP facade over rpc.
func NewHTTP(rpc *Server, log utils.SimpleLogger) *HTTP {
	return &HTTP{rpc: rpc, log: log}
}

// ServeHTTP processes a single POST /rpc request.
func (h *HTTP) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		writer.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	info := ClientInfo{
		RemoteAddr:    req.RemoteAddr,
		VersionHeader: req.Header.Get("Rusk-Version"),
	}
	ctx := ContextWithClientInfo(req.Context(), info)

	resp, err := h.rpc.HandleReader(ctx, req.Body)
	writer.Header().Set("Content-Type", "application/json")
	if err != nil {
		writer.WriteHeader(http.StatusInternalServerError)
		h.log.Warnw("failed reading request body", "err", err)
		return
	}
	if resp == nil {
		// All-notification request: no body per §3.
		writer.WriteHeader(http.StatusNoContent)
		return
	}
	if _, err := writer.Write(resp); err != nil {
		h.log.Warnw("failed writing response", "err", err)
	}
}
