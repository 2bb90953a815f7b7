package model_test

import (
	"testing"

	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/model"
	"github.com/dusk-network/rusk/utils"
	"github.com/stretchr/testify/require"
)

func TestNewPubKeyRejectsMalformedBytes(t *testing.T) {
	_, err := model.NewPubKey([]byte{0x01, 0x02, 0x03})
	require.Error(t, err)
}

func TestProvisionersFromAdapterSkipsInvalidKeys(t *testing.T) {
	in := []adapter.Provisioner{
		{PubKey: []byte{0x01}, Stake: adapter.Stake{Amount: 10}},
	}
	out := model.ProvisionersFromAdapter(in, utils.NewNopZapLogger())
	require.Empty(t, out)
}
