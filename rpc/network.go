package rpc

import (
	"context"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/model"
	"github.com/dusk-network/rusk/rpcerr"
	"github.com/dusk-network/rusk/utils"
)

// getNetworkInfo summarizes the node's network state.
func (h *Handler) getNetworkInfo(ctx context.Context) (model.NetworkInfo, *jsonrpc.Error) {
	summary, aerr := h.net.NetworkInfo(ctx)
	if aerr != nil {
		return model.NetworkInfo{}, rpcerr.Map(aerr)
	}
	return model.NetworkInfo{Summary: summary}, nil
}

// getPublicAddress returns the node's advertised dial-back address.
func (h *Handler) getPublicAddress(ctx context.Context) (model.PublicAddress, *jsonrpc.Error) {
	addr, aerr := h.net.PublicAddress(ctx)
	if aerr != nil {
		return model.PublicAddress{}, rpcerr.Map(aerr)
	}
	return model.PublicAddress{Address: addr}, nil
}

// getAlivePeers lists currently connected peers, capped at the
// configured maximum regardless of what the caller requests.
func (h *Handler) getAlivePeers(ctx context.Context, max int) ([]model.Peer, *jsonrpc.Error) {
	if h.maxAlivePeers > 0 && (max <= 0 || max > h.maxAlivePeers) {
		max = h.maxAlivePeers
	}
	ps, aerr := h.net.AlivePeers(ctx, max)
	if aerr != nil {
		return nil, rpcerr.Map(aerr)
	}
	return model.PeersFromAdapter(ps), nil
}

// getAlivePeersCount reports the live peer count.
func (h *Handler) getAlivePeersCount(ctx context.Context) (model.Amount, *jsonrpc.Error) {
	n, aerr := h.net.AlivePeersCount(ctx)
	if aerr != nil {
		return 0, rpcerr.Map(aerr)
	}
	return model.Amount(n), nil
}

// broadcastTransaction submits raw, hex-encoded transaction bytes for
// gossip. Success means the transaction was accepted for propagation,
// not that it has reached the mempool (§4.1).
func (h *Handler) broadcastTransaction(ctx context.Context, rawHex string) (bool, *jsonrpc.Error) {
	raw, err := utils.HexToBytes(rawHex, 0)
	if err != nil {
		return false, rpcerr.InvalidParams(err.Error())
	}
	if aerr := h.net.BroadcastTransaction(ctx, raw); aerr != nil {
		return false, rpcerr.Map(aerr)
	}
	return true, nil
}

// floodRequest re-broadcasts an inventory announcement to peers
// (§4.1). The inventory is round-tripped through its CBOR encoding
// (model.EncodeInventory, then model.DecodeInventory) and the decoded
// adapter.Inventory is what the adapter receives; ttl of 0 means "no
// limit" (the adapter treats a nil ttl pointer as unlimited).
func (h *Handler) floodRequest(ctx context.Context, kind string, hashesHex []string, ttl int, hops int) (bool, *jsonrpc.Error) {
	hashes := make([][]byte, 0, len(hashesHex))
	for _, hh := range hashesHex {
		raw, err := utils.HexToBytes(hh, 0)
		if err != nil {
			return false, rpcerr.InvalidParams(err.Error())
		}
		hashes = append(hashes, raw)
	}
	invBytes, err := model.EncodeInventory(kind, hashes)
	if err != nil {
		return false, rpcerr.InvalidParams(err.Error())
	}
	inv, err := model.DecodeInventory(invBytes)
	if err != nil {
		return false, rpcerr.InvalidParams(err.Error())
	}
	var ttlPtr *int
	if ttl > 0 {
		ttlPtr = &ttl
	}
	if aerr := h.net.FloodRequest(ctx, inv, ttlPtr, hops); aerr != nil {
		return false, rpcerr.Map(aerr)
	}
	return true, nil
}
