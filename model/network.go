package model

import (
	"github.com/dusk-network/rusk/adapter"
	"github.com/fxamacker/cbor/v2"
)

// NetworkInfo is the wire shape of getNetworkInfo.
type NetworkInfo struct {
	Summary string `json:"summary"`
}

// PublicAddress is the wire shape of getPublicAddress.
type PublicAddress struct {
	Address string `json:"address"`
}

// InventoryEntry is one item of a floodRequest's on-wire inventory, the
// CBOR-encoded shape the Kind/Hashes pair takes once it leaves the
// adapter boundary (§4.2, §4.1 "flood_request(inv, ttl?, hops)").
// NetworkAdapter.FloodRequest itself takes the decoded adapter.Inventory
// struct, not these bytes.
type InventoryEntry struct {
	Kind   string   `cbor:"kind"`
	Hashes [][]byte `cbor:"hashes"`
}

// EncodeInventory serializes params into the bytes passed as
// floodRequest's inv argument.
func EncodeInventory(kind string, hashes [][]byte) ([]byte, error) {
	return cbor.Marshal(InventoryEntry{Kind: kind, Hashes: hashes})
}

// DecodeInventory is the inverse of EncodeInventory, used by the
// floodRequest handler to recover the adapter.Inventory from the raw
// CBOR param.
func DecodeInventory(raw []byte) (adapter.Inventory, error) {
	var entry InventoryEntry
	if err := cbor.Unmarshal(raw, &entry); err != nil {
		return adapter.Inventory{}, err
	}
	return adapter.Inventory{Kind: entry.Kind, Hashes: entry.Hashes}, nil
}
