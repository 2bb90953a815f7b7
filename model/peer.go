package model

import (
	"github.com/dusk-network/rusk/adapter"
	multiaddr "github.com/multiformats/go-multiaddr"
)

// Peer is the wire shape of a network peer (getAlivePeers).
type Peer struct {
	Address  string `json:"address"`
	LastSeen int64  `json:"last_seen"`
}

// PeerFromAdapter converts an adapter.PeerInfo to its wire shape,
// re-serializing the address through multiaddr so a malformed address
// from the adapter never reaches a client verbatim (§4.2: "all response
// records are derivable from adapter outputs by pure conversion").
func PeerFromAdapter(p adapter.PeerInfo) (Peer, error) {
	ma, err := multiaddr.NewMultiaddr(p.Address)
	if err != nil {
		return Peer{}, err
	}
	return Peer{Address: ma.String(), LastSeen: p.LastSeen}, nil
}

// PeersFromAdapter converts a slice of adapter.PeerInfo, skipping (and
// not failing the whole batch for) any single malformed address — the
// network layer is untrusted external input, unlike ledger data.
func PeersFromAdapter(ps []adapter.PeerInfo) []Peer {
	out := make([]Peer, 0, len(ps))
	for _, p := range ps {
		dto, err := PeerFromAdapter(p)
		if err != nil {
			continue
		}
		out = append(out, dto)
	}
	return out
}
