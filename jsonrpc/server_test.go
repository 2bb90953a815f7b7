package jsonrpc_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func subtractMethod() jsonrpc.Method {
	return jsonrpc.Method{
		Name:   "subtract",
		Params: []jsonrpc.Parameter{{Name: "minuend"}, {Name: "subtrahend"}},
		Handler: func(a, b int) (int, *jsonrpc.Error) {
			return a - b, nil
		},
	}
}

func newTestServer(t *testing.T) *jsonrpc.Server {
	t.Helper()
	server := jsonrpc.NewServer(1, utils.NewNopZapLogger()).WithValidator(validator.New())
	require.NoError(t, server.RegisterMethod(subtractMethod()))
	return server
}

func TestSingleRequestEchoesID(t *testing.T) {
	server := newTestServer(t)
	req := []byte(`{"jsonrpc":"2.0","id":7,"method":"subtract","params":{"minuend":10,"subtrahend":4}}`)
	resp, err := server.Handle(context.Background(), req)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp, &decoded))
	require.InDelta(t, 7, decoded["id"], 0)
	require.InDelta(t, 6, decoded["result"], 0)
}

func TestNotificationProducesNoResponse(t *testing.T) {
	server := newTestServer(t)
	req := []byte(`{"jsonrpc":"2.0","method":"subtract","params":{"minuend":10,"subtrahend":4}}`)
	resp, err := server.Handle(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, resp)
}

func TestBatchPreservesOrderAndDropsNotifications(t *testing.T) {
	server := newTestServer(t)
	req := []byte(`[
		{"jsonrpc":"2.0","id":1,"method":"subtract","params":{"minuend":10,"subtrahend":1}},
		{"jsonrpc":"2.0","method":"subtract","params":{"minuend":5,"subtrahend":1}},
		{"jsonrpc":"2.0","id":2,"method":"subtract","params":{"minuend":20,"subtrahend":2}}
	]`)
	resp, err := server.Handle(context.Background(), req)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(resp, &decoded))
	require.Len(t, decoded, 2)
	require.InDelta(t, 1, decoded[0]["id"], 0)
	require.InDelta(t, 2, decoded[1]["id"], 0)
}

func TestEmptyBatchIsInvalidRequest(t *testing.T) {
	server := newTestServer(t)
	resp, err := server.Handle(context.Background(), []byte(`[]`))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp, &decoded))
	require.Nil(t, decoded["id"])
	errObj := decoded["error"].(map[string]any)
	require.InDelta(t, jsonrpc.InvalidRequest, errObj["code"], 0)
}

func TestParseErrorYieldsNullID(t *testing.T) {
	server := newTestServer(t)
	resp, err := server.Handle(context.Background(), []byte(`{not json`))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp, &decoded))
	require.Nil(t, decoded["id"])
	errObj := decoded["error"].(map[string]any)
	require.InDelta(t, jsonrpc.ParseError, errObj["code"], 0)
}

func TestMethodNotFound(t *testing.T) {
	server := newTestServer(t)
	resp, err := server.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"nope"}`))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp, &decoded))
	errObj := decoded["error"].(map[string]any)
	require.InDelta(t, jsonrpc.MethodNotFound, errObj["code"], 0)
}

func TestMissingRequiredParam(t *testing.T) {
	server := newTestServer(t)
	resp, err := server.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"subtract","params":{"minuend":10}}`))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp, &decoded))
	errObj := decoded["error"].(map[string]any)
	require.InDelta(t, jsonrpc.InvalidParams, errObj["code"], 0)
}

func TestPositionalParams(t *testing.T) {
	server := newTestServer(t)
	resp, err := server.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"subtract","params":[10,4]}`))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp, &decoded))
	require.InDelta(t, 6, decoded["result"], 0)
}

func TestStrictParamsRejectsExtraField(t *testing.T) {
	server := jsonrpc.NewServer(1, utils.NewNopZapLogger()).WithStrictParams(true)
	require.NoError(t, server.RegisterMethod(subtractMethod()))

	resp, err := server.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"subtract","params":{"minuend":10,"subtrahend":4,"extra":1}}`))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp, &decoded))
	errObj := decoded["error"].(map[string]any)
	require.InDelta(t, jsonrpc.InvalidParams, errObj["code"], 0)
}

func TestNonStrictParamsAcceptsExtraField(t *testing.T) {
	server := newTestServer(t)
	resp, err := server.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"subtract","params":{"minuend":10,"subtrahend":4,"extra":1}}`))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp, &decoded))
	require.InDelta(t, 6, decoded["result"], 0)
}
