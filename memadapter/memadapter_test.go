package memadapter_test

import (
	"context"
	"testing"

	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/memadapter"
	"github.com/stretchr/testify/require"
)

func TestNewSeedsGenesisBlock(t *testing.T) {
	store := memadapter.New("/ip4/127.0.0.1/tcp/9000")
	ctx := context.Background()

	height, err := store.TipHeight(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), height)

	block, err := store.BlockByHeight(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, adapter.LabelFinal, block.Label)
}

func TestAppendBlockAdvancesTipAndDrainsMempool(t *testing.T) {
	store := memadapter.New("")
	ctx := context.Background()

	require.NoError(t, store.BroadcastTransaction(ctx, []byte("tx-1")))
	count, err := store.MempoolCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	pending, err := store.MempoolTop(ctx, 1)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	block := store.AppendBlock([]adapter.Transaction{pending[0].Transaction})
	require.Equal(t, uint64(1), block.Header.Height)

	count, err = store.MempoolCount(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, count)

	status, err := store.TransactionStatus(ctx, pending[0].Transaction.Hash)
	require.NoError(t, err)
	require.Equal(t, adapter.TxStatusExecuted, status)
}

func TestBlockByHashNotFoundReturnsAdapterError(t *testing.T) {
	store := memadapter.New("")
	_, err := store.BlockByHash(context.Background(), []byte("missing"))
	require.Error(t, err)

	var adapterErr *adapter.Error
	require.ErrorAs(t, err, &adapterErr)
	require.Equal(t, adapter.KindNotFound, adapterErr.Kind)
}
