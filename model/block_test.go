package model_test

import (
	"testing"

	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/model"
	"github.com/stretchr/testify/require"
)

func TestHeaderFromAdapterEncodesHashesAsHex(t *testing.T) {
	h := adapter.Header{
		Hash:      []byte{0xde, 0xad},
		Height:    100,
		PrevHash:  []byte{0xbe, 0xef},
		StateRoot: []byte{0x01},
		Timestamp: 123,
		GasLimit:  5_000_000,
	}
	out := model.HeaderFromAdapter(h)
	require.Equal(t, "dead", out.Hash)
	require.Equal(t, "beef", out.PrevHash)
	require.Equal(t, model.Amount(100), out.Height)
	require.Equal(t, model.Amount(5_000_000), out.GasLimit)
}

func TestBlockFromAdapterConvertsTransactionsAndFaults(t *testing.T) {
	b := adapter.Block{
		Header: adapter.Header{Hash: []byte{0x01}},
		Transactions: []adapter.Transaction{
			{Hash: []byte{0x02}, GasPrice: 1, GasLimit: 2, Nonce: 3},
		},
		Faults: []adapter.Fault{{Type: "double-sign", Data: []byte{0x03}}},
		Label:  adapter.LabelFinal,
	}
	out := model.BlockFromAdapter(b)
	require.Equal(t, model.LabelFinal, out.Label)
	require.Len(t, out.Transactions, 1)
	require.Equal(t, "02", out.Transactions[0].Hash)
	require.Len(t, out.Faults, 1)
	require.Equal(t, "03", out.Faults[0].Data)
}
