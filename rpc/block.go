package rpc

import (
	"context"

	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/model"
	"github.com/dusk-network/rusk/rpcerr"
	"github.com/dusk-network/rusk/utils"
)

// getBlockByHash resolves a full block by its hex-encoded hash.
func (h *Handler) getBlockByHash(ctx context.Context, hash string) (model.Block, *jsonrpc.Error) {
	raw, err := utils.HexToBytes(hash, 0)
	if err != nil {
		return model.Block{}, rpcerr.InvalidParams(err.Error())
	}
	b, aerr := h.db.BlockByHash(ctx, raw)
	if aerr != nil {
		return model.Block{}, rpcerr.Map(aerr)
	}
	return model.BlockFromAdapter(*b), nil
}

// getBlockByHeight resolves a full block by height.
func (h *Handler) getBlockByHeight(ctx context.Context, height uint64) (model.Block, *jsonrpc.Error) {
	b, aerr := h.db.BlockByHeight(ctx, height)
	if aerr != nil {
		return model.Block{}, rpcerr.Map(aerr)
	}
	return model.BlockFromAdapter(*b), nil
}

// getLatestBlock returns the current chain tip.
func (h *Handler) getLatestBlock(ctx context.Context) (model.Block, *jsonrpc.Error) {
	b, aerr := h.db.LatestBlock(ctx)
	if aerr != nil {
		return model.Block{}, rpcerr.Map(aerr)
	}
	return model.BlockFromAdapter(*b), nil
}

// getBlockStatus reports a block's consensus label by height.
func (h *Handler) getBlockStatus(ctx context.Context, height uint64) (model.Label, *jsonrpc.Error) {
	label, aerr := h.db.BlockLabel(ctx, height)
	if aerr != nil {
		return "", rpcerr.Map(aerr)
	}
	if label == adapter.LabelFinal {
		return model.LabelFinal, nil
	}
	return model.LabelProvisional, nil
}

// getBlockRange (a.k.a. getBlocksRange) returns blocks in
// [startHeight, endHeight], enforcing the max_block_range cap (§4.4:
// "end >= start and (end-start+1) <= max_block_range").
func (h *Handler) getBlockRange(ctx context.Context, startHeight, endHeight uint64) ([]model.Block, *jsonrpc.Error) {
	if endHeight < startHeight {
		return nil, rpcerr.ErrInvalidRange
	}
	if h.maxBlockRange > 0 && endHeight-startHeight+1 > uint64(h.maxBlockRange) {
		return nil, rpcerr.ErrTooManyBlocksInRange
	}
	bs, aerr := h.db.BlockRange(ctx, startHeight, endHeight)
	if aerr != nil {
		return nil, rpcerr.Map(aerr)
	}
	return model.BlocksFromAdapter(bs), nil
}

// getLatestBlocks returns the count most recent blocks, newest last.
func (h *Handler) getLatestBlocks(ctx context.Context, count uint64) ([]model.Block, *jsonrpc.Error) {
	if h.maxBlockRange > 0 && count > uint64(h.maxBlockRange) {
		return nil, rpcerr.ErrTooManyBlocksInRange
	}
	tip, aerr := h.db.TipHeight(ctx)
	if aerr != nil {
		return nil, rpcerr.Map(aerr)
	}
	var start uint64
	if count <= tip {
		start = tip - count + 1
	}
	bs, aerr := h.db.BlockRange(ctx, start, tip)
	if aerr != nil {
		return nil, rpcerr.Map(aerr)
	}
	return model.BlocksFromAdapter(bs), nil
}

// getBlocksCount returns the current chain height as a count of blocks.
func (h *Handler) getBlocksCount(ctx context.Context) (model.Amount, *jsonrpc.Error) {
	tip, aerr := h.db.TipHeight(ctx)
	if aerr != nil {
		return 0, rpcerr.Map(aerr)
	}
	return model.Amount(tip + 1), nil
}

// getBlockTransactionsByHash returns a block's transaction list by hash.
func (h *Handler) getBlockTransactionsByHash(ctx context.Context, hash string) ([]model.Transaction, *jsonrpc.Error) {
	raw, err := utils.HexToBytes(hash, 0)
	if err != nil {
		return nil, rpcerr.InvalidParams(err.Error())
	}
	txs, aerr := h.db.BlockTransactions(ctx, raw)
	if aerr != nil {
		return nil, rpcerr.Map(aerr)
	}
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, model.TransactionFromAdapter(tx))
	}
	return out, nil
}

// getBlockTransactionsByHeight is getBlockTransactionsByHash's
// height-keyed twin: it resolves the block first, then reuses the same
// by-hash lookup so the two entry points share one source of truth.
func (h *Handler) getBlockTransactionsByHeight(ctx context.Context, height uint64) ([]model.Transaction, *jsonrpc.Error) {
	b, aerr := h.db.BlockByHeight(ctx, height)
	if aerr != nil {
		return nil, rpcerr.Map(aerr)
	}
	txs, aerr := h.db.BlockTransactions(ctx, b.Header.Hash)
	if aerr != nil {
		return nil, rpcerr.Map(aerr)
	}
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, model.TransactionFromAdapter(tx))
	}
	return out, nil
}
