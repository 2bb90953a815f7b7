package jsonrpc_test

import (
	"context"
	"testing"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/utils"
	"github.com/stretchr/testify/require"
)

func TestOptionalParamDefaultsWhenAbsent(t *testing.T) {
	server := jsonrpc.NewServer(1, utils.NewNopZapLogger())
	method := jsonrpc.Method{
		Name:   "withOptional",
		Params: []jsonrpc.Parameter{{Name: "required"}, {Name: "optional", Optional: true}},
		Handler: func(required int, optional *int) (int, *jsonrpc.Error) {
			if optional == nil {
				return required, nil
			}
			return required + *optional, nil
		},
	}
	require.NoError(t, server.RegisterMethod(method))

	resp, err := server.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"withOptional","params":{"required":5}}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"result":5`)
}

func TestContextAwareHandler(t *testing.T) {
	server := jsonrpc.NewServer(1, utils.NewNopZapLogger())
	method := jsonrpc.Method{
		Name:   "whoami",
		Params: []jsonrpc.Parameter{},
		Handler: func(ctx context.Context) (string, *jsonrpc.Error) {
			info, ok := jsonrpc.ClientInfoFromContext(ctx)
			if !ok {
				return "", jsonrpc.Err(jsonrpc.InternalError, "no client info")
			}
			return info.RemoteAddr, nil
		},
	}
	require.NoError(t, server.RegisterMethod(method))

	ctx := jsonrpc.ContextWithClientInfo(context.Background(), jsonrpc.ClientInfo{RemoteAddr: "1.2.3.4"})
	resp, err := server.Handle(ctx, []byte(`{"jsonrpc":"2.0","id":1,"method":"whoami"}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"1.2.3.4"`)
}
