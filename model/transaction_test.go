package model_test

import (
	"testing"

	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/model"
	"github.com/stretchr/testify/require"
)

func TestTransactionStatusFromAdapterMapsAllVariants(t *testing.T) {
	cases := map[adapter.TxStatus]model.TransactionStatus{
		adapter.TxStatusExecuted: model.StatusExecuted,
		adapter.TxStatusFailed:   model.StatusFailed,
		adapter.TxStatusPending:  model.StatusPending,
		adapter.TxStatusNotFound: model.StatusNotFound,
	}
	for in, want := range cases {
		require.Equal(t, want, model.TransactionStatusFromAdapter(in))
	}
}

func TestTransactionDetailFromAdapterCarriesIndex(t *testing.T) {
	idx := 3
	detail := adapter.TransactionDetail{
		SpentTransaction: adapter.SpentTransaction{
			Transaction: adapter.Transaction{Hash: []byte{0xaa}},
			BlockHeight: 10,
			GasSpent:    5,
		},
		BlockHash: []byte{0xbb},
		Timestamp: 99,
		Index:     &idx,
	}
	out := model.TransactionDetailFromAdapter(detail)
	require.Equal(t, "aa", out.Transaction.Hash)
	require.Equal(t, "bb", out.BlockHash)
	require.NotNil(t, out.Index)
	require.Equal(t, 3, *out.Index)
}

func TestMempoolTransactionsFromAdapterPreservesOrder(t *testing.T) {
	in := []adapter.MempoolTx{
		{Transaction: adapter.Transaction{Hash: []byte{0x01}}, Fee: 10},
		{Transaction: adapter.Transaction{Hash: []byte{0x02}}, Fee: 5},
	}
	out := model.MempoolTransactionsFromAdapter(in)
	require.Len(t, out, 2)
	require.Equal(t, model.Amount(10), out[0].Fee)
	require.Equal(t, model.Amount(5), out[1].Fee)
}
