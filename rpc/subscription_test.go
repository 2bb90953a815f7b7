package rpc_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/rpc"
	"github.com/dusk-network/rusk/subscription"
	"github.com/dusk-network/rusk/utils"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	sent chan []byte
}

func newFakeConn() *fakeConn { return &fakeConn{sent: make(chan []byte, 8)} }

func (c *fakeConn) Write(p []byte) (int, error) { return len(p), nil }
func (c *fakeConn) Equal(other jsonrpc.Conn) bool {
	o, ok := other.(*fakeConn)
	return ok && o == c
}
func (c *fakeConn) TrySend(payload []byte) subscription.SendResult {
	select {
	case c.sent <- payload:
		return subscription.SendOK
	default:
		return subscription.SendFull
	}
}

func newSubscribingServer(t *testing.T) (*jsonrpc.Server, *subscription.Manager) {
	t.Helper()
	manager := subscription.NewManager(nil, utils.NewNopZapLogger(), 16)
	s := jsonrpc.NewServer(1, utils.NewNopZapLogger())
	h := rpc.New(nil, nil, nil, nil, manager, utils.NewNopZapLogger(), 100, 50, false)
	require.NoError(t, rpc.Register(s, h))
	return s, manager
}

func TestSubscribeOverHTTPIsRejected(t *testing.T) {
	s, _ := newSubscribingServer(t)
	resp, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"subscribeBlockAcceptance"}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"error"`)
}

func TestSubscribeOverWebSocketThenPublishDelivers(t *testing.T) {
	s, manager := newSubscribingServer(t)
	conn := newFakeConn()
	ctx := jsonrpc.ContextWithConn(context.Background(), conn)
	ctx = jsonrpc.ContextWithClientInfo(ctx, jsonrpc.ClientInfo{RemoteAddr: "127.0.0.1", SessionID: "sess-1"})

	resp, err := s.Handle(ctx, []byte(`{"jsonrpc":"2.0","id":1,"method":"subscribeBlockAcceptance","params":[true]}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), "subscription_id")

	manager.Publish(subscription.BlockAcceptanceEvent{BlockHash: []byte{1, 2}, Height: 7})

	select {
	case payload := <-conn.sent:
		require.Contains(t, string(payload), `"height":7`)
	default:
		t.Fatal("expected a delivered notification")
	}
}

func TestUnsubscribeThenStatusReturnsNotFound(t *testing.T) {
	s, _ := newSubscribingServer(t)
	conn := newFakeConn()
	ctx := jsonrpc.ContextWithConn(context.Background(), conn)
	ctx = jsonrpc.ContextWithClientInfo(ctx, jsonrpc.ClientInfo{RemoteAddr: "127.0.0.1", SessionID: "sess-2"})

	subResp, err := s.Handle(ctx, []byte(`{"jsonrpc":"2.0","id":1,"method":"subscribeBlockFinalization"}`))
	require.NoError(t, err)

	var parsed struct {
		Result struct {
			SubscriptionID string `json:"subscription_id"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(subResp, &parsed))

	unsubResp, err := s.Handle(ctx, []byte(`{"jsonrpc":"2.0","id":2,"method":"unsubscribe","params":["`+parsed.Result.SubscriptionID+`"]}`))
	require.NoError(t, err)
	require.Contains(t, string(unsubResp), "true")

	statusResp, err := s.Handle(ctx, []byte(`{"jsonrpc":"2.0","id":3,"method":"getSubscriptionStatus","params":["`+parsed.Result.SubscriptionID+`"]}`))
	require.NoError(t, err)
	require.Contains(t, string(statusResp), `"error"`)
}
