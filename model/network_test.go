package model_test

import (
	"testing"

	"github.com/dusk-network/rusk/model"
	"github.com/stretchr/testify/require"
)

func TestInventoryRoundTrips(t *testing.T) {
	hashes := [][]byte{{0x01, 0x02}, {0x03}}
	raw, err := model.EncodeInventory("block", hashes)
	require.NoError(t, err)

	inv, err := model.DecodeInventory(raw)
	require.NoError(t, err)
	require.Equal(t, "block", inv.Kind)
	require.Equal(t, hashes, inv.Hashes)
}
