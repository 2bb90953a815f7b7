package rpc_test

import (
	"context"
	"testing"

	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/mocks"
	"github.com/dusk-network/rusk/rpc"
	"github.com/dusk-network/rusk/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStatusTestServer(t *testing.T, db adapter.DatabaseAdapter, legacyStatusNotFoundAsResult bool) *jsonrpc.Server {
	t.Helper()
	s := jsonrpc.NewServer(1, utils.NewNopZapLogger())
	h := rpc.New(db, nil, nil, nil, nil, utils.NewNopZapLogger(), 100, 50, legacyStatusNotFoundAsResult)
	require.NoError(t, rpc.Register(s, h))
	return s
}

func TestGetTransactionStatusNotFoundReturnsErrorByDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabaseAdapter(ctrl)
	db.EXPECT().TransactionStatus(gomock.Any(), gomock.Any()).Return(adapter.TxStatusNotFound, nil)

	s := newStatusTestServer(t, db, false)
	resp, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"getTransactionStatus","params":["ab"]}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"error"`)
	require.Contains(t, string(resp), "Transaction not found")
}

func TestGetTransactionStatusNotFoundReturnsResultUnderLegacyFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabaseAdapter(ctrl)
	db.EXPECT().TransactionStatus(gomock.Any(), gomock.Any()).Return(adapter.TxStatusNotFound, nil)

	s := newStatusTestServer(t, db, true)
	resp, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"getTransactionStatus","params":["ab"]}`))
	require.NoError(t, err)
	require.NotContains(t, string(resp), `"error"`)
	require.Contains(t, string(resp), `"NotFound"`)
}

func TestGetTransactionStatusExecutedAlwaysReturnsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabaseAdapter(ctrl)
	db.EXPECT().TransactionStatus(gomock.Any(), gomock.Any()).Return(adapter.TxStatusExecuted, nil)

	s := newStatusTestServer(t, db, false)
	resp, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"getTransactionStatus","params":["ab"]}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"Executed"`)
}
