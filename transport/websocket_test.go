package transport_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/subscription"
	"github.com/dusk-network/rusk/transport"
	"github.com/dusk-network/rusk/utils"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
)

type noopCleaner struct{}

func (noopCleaner) RemoveSessionSubscriptions(subscription.SessionID) {}

func TestWebSocketRoundTrip(t *testing.T) {
	server := jsonrpc.NewServer(1, utils.NewNopZapLogger())
	require.NoError(t, server.RegisterMethod(jsonrpc.Method{
		Name:    "echo",
		Params:  []jsonrpc.Parameter{{Name: "v"}},
		Handler: func(v string) (string, *jsonrpc.Error) { return v, nil },
	}))

	ws := transport.NewWSServer(transport.WSConfig{}, server, noopCleaner{}, utils.NewNopZapLogger())
	ts := httptest.NewServer(ws)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + ts.URL[len("http"):]
	c, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer c.Close(websocket.StatusNormalClosure, "")

	req := []byte(`{"jsonrpc":"2.0","id":1,"method":"echo","params":{"v":"hi"}}`)
	require.NoError(t, c.Write(ctx, websocket.MessageText, req))

	_, data, err := c.Read(ctx)
	require.NoError(t, err)
	require.Contains(t, string(data), `"result":"hi"`)
}
