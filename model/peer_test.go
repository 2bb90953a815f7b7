package model_test

import (
	"testing"

	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/model"
	"github.com/stretchr/testify/require"
)

func TestPeerFromAdapterAcceptsValidMultiaddr(t *testing.T) {
	out, err := model.PeerFromAdapter(adapter.PeerInfo{Address: "/ip4/127.0.0.1/tcp/9000", LastSeen: 5})
	require.NoError(t, err)
	require.Equal(t, "/ip4/127.0.0.1/tcp/9000", out.Address)
	require.Equal(t, int64(5), out.LastSeen)
}

func TestPeersFromAdapterSkipsMalformedAddress(t *testing.T) {
	in := []adapter.PeerInfo{
		{Address: "/ip4/127.0.0.1/tcp/9000"},
		{Address: "not-a-multiaddr"},
	}
	out := model.PeersFromAdapter(in)
	require.Len(t, out, 1)
}
