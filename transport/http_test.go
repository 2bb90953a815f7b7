package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/transport"
	"github.com/dusk-network/rusk/utils"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpointReturnsOK(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	require.Equal(t, "OK", string(body))
}

func TestBodySizeCapRejectsOversizedRequest(t *testing.T) {
	server := jsonrpc.NewServer(1, utils.NewNopZapLogger())
	require.NoError(t, server.RegisterMethod(jsonrpc.Method{
		Name:    "echo",
		Params:  []jsonrpc.Parameter{{Name: "v"}},
		Handler: func(v string) (string, *jsonrpc.Error) { return v, nil },
	}))

	mux := http.NewServeMux()
	mux.HandleFunc("/rpc", func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 16)
		rpc := jsonrpc.NewHTTP(server, utils.NewNopZapLogger())
		rpc.ServeHTTP(w, r)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	big := strings.Repeat("a", 100)
	req, err := http.NewRequest(http.MethodPost, ts.URL+"/rpc", strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"echo","params":{"v":"`+big+`"}}`))
	require.NoError(t, err)

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestFacadeShutdownIsGraceful(t *testing.T) {
	server := jsonrpc.NewServer(1, utils.NewNopZapLogger())
	rpcHTTP := jsonrpc.NewHTTP(server, utils.NewNopZapLogger())
	f := transport.NewFacade(
		transport.HTTPConfig{BindAddress: "127.0.0.1:0"},
		transport.WSConfig{},
		rpcHTTP, server, nil, 2*time.Second, utils.NewNopZapLogger(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.Shutdown(ctx))
}
