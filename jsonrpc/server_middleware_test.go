package jsonrpc_test

import (
	"context"
	"testing"
	"time"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type testRequestReporter struct {
	method   string
	duration time.Duration
	count    int
	errCode  int
}

func (m *testRequestReporter) ReportRequestDuration(method string, duration time.Duration) {
	m.duration = duration
}

func (m *testRequestReporter) ReportRequest(method string) {
	m.method = method
	m.count++
}

func (m *testRequestReporter) ReportRequestError(method string, errCode int) {
	m.errCode = errCode
}

func TestServerRequestMiddleware(t *testing.T) {
	method := subtractMethod()

	t.Run("SingleMiddleware", func(t *testing.T) {
		var (
			req = []byte(`{"jsonrpc": "2.0", "method": "subtract", "params": {"minuend": 42, "subtrahend": 23}, "id": 4}`)
			res = []byte(`{"jsonrpc":"2.0","result":19,"id":4}`)
		)
		reporter := &testRequestReporter{}
		server := jsonrpc.NewServer(1, utils.NewNopZapLogger()).WithValidator(validator.New()).WithRequestMiddleware(jsonrpc.MetricsReporterMiddleware(reporter))
		require.NoError(t, server.RegisterMethod(method))
		result, err := server.Handle(context.Background(), req)
		require.NoError(t, err)
		require.JSONEq(t, string(res), string(result))
		require.Equal(t, "subtract", reporter.method)
		require.Equal(t, 1, reporter.count)
	})

	t.Run("ChainedMiddleware", func(t *testing.T) {
		var req = []byte(`{"jsonrpc": "2.0", "method": "subtract", "params": {"minuend": 42, "subtrahend": 23}, "id": 4}`)
		reporter := &testRequestReporter{}
		server := jsonrpc.NewServer(1, utils.NewNopZapLogger()).
			WithValidator(validator.New()).
			WithRequestMiddleware(jsonrpc.MetricsReporterMiddleware(reporter)).
			WithRequestMiddleware(jsonrpc.MetricsReporterMiddleware(reporter))
		require.NoError(t, server.RegisterMethod(method))
		_, err := server.Handle(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, "subtract", reporter.method)
		require.Equal(t, 2, reporter.count)
	})
}

type fakeLimiter struct{ allow bool }

func (f fakeLimiter) Allow(string, string) bool { return f.allow }

func TestRateLimiterMiddlewareRejects(t *testing.T) {
	server := jsonrpc.NewServer(1, utils.NewNopZapLogger()).
		WithRequestMiddleware(jsonrpc.RateLimiterMiddleware(fakeLimiter{allow: false}))
	require.NoError(t, server.RegisterMethod(subtractMethod()))

	req := []byte(`{"jsonrpc":"2.0","id":1,"method":"subtract","params":{"minuend":1,"subtrahend":1}}`)
	resp, err := server.Handle(context.Background(), req)
	require.NoError(t, err)
	require.Contains(t, string(resp), `"code":-32029`)
}
