package rpc

import (
	"context"

	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/model"
	"github.com/dusk-network/rusk/rpcerr"
	"github.com/dusk-network/rusk/utils"
)

// getTransactionByHash resolves the composed by-hash transaction detail
// (block_hash, timestamp, index alongside the execution outcome, §4.1).
func (h *Handler) getTransactionByHash(ctx context.Context, hash string) (model.TransactionDetail, *jsonrpc.Error) {
	raw, err := utils.HexToBytes(hash, 0)
	if err != nil {
		return model.TransactionDetail{}, rpcerr.InvalidParams(err.Error())
	}
	t, aerr := h.db.TransactionDetailByHash(ctx, raw)
	if aerr != nil {
		return model.TransactionDetail{}, rpcerr.Map(aerr)
	}
	return model.TransactionDetailFromAdapter(*t), nil
}

// getTransactionStatus reports Executed | Failed | Pending | NotFound.
func (h *Handler) getTransactionStatus(ctx context.Context, hash string) (model.TransactionStatus, *jsonrpc.Error) {
	raw, err := utils.HexToBytes(hash, 0)
	if err != nil {
		return "", rpcerr.InvalidParams(err.Error())
	}
	status, aerr := h.db.TransactionStatus(ctx, raw)
	if aerr != nil {
		return "", rpcerr.Map(aerr)
	}
	if status == adapter.TxStatusNotFound && !h.legacyStatusNotFoundAsResult {
		return "", rpcerr.ErrTxnNotFound
	}
	return model.TransactionStatusFromAdapter(status), nil
}

// getMempoolTransactionByHash resolves a single pending transaction.
func (h *Handler) getMempoolTransactionByHash(ctx context.Context, hash string) (model.MempoolTransaction, *jsonrpc.Error) {
	raw, err := utils.HexToBytes(hash, 0)
	if err != nil {
		return model.MempoolTransaction{}, rpcerr.InvalidParams(err.Error())
	}
	tx, aerr := h.db.MempoolTransactionByHash(ctx, raw)
	if aerr != nil {
		return model.MempoolTransaction{}, rpcerr.Map(aerr)
	}
	return model.MempoolTransactionFromAdapter(*tx), nil
}

// getMempoolTransactions returns up to limit mempool transactions,
// highest-fee first (§4.1 "MempoolTop iterates by fee, descending").
func (h *Handler) getMempoolTransactions(ctx context.Context, limit int) ([]model.MempoolTransaction, *jsonrpc.Error) {
	txs, aerr := h.db.MempoolTop(ctx, limit)
	if aerr != nil {
		return nil, rpcerr.Map(aerr)
	}
	return model.MempoolTransactionsFromAdapter(txs), nil
}

// getMempoolTransactionsCount reports how many transactions are
// currently resident in the mempool.
func (h *Handler) getMempoolTransactionsCount(ctx context.Context) (model.Amount, *jsonrpc.Error) {
	n, aerr := h.db.MempoolCount(ctx)
	if aerr != nil {
		return 0, rpcerr.Map(aerr)
	}
	return model.Amount(n), nil
}

// getMempoolInfo is a summary wrapper over getMempoolTransactionsCount.
func (h *Handler) getMempoolInfo(ctx context.Context) (model.MempoolInfo, *jsonrpc.Error) {
	n, aerr := h.db.MempoolCount(ctx)
	if aerr != nil {
		return model.MempoolInfo{}, rpcerr.Map(aerr)
	}
	return model.MempoolInfo{Count: model.Amount(n)}, nil
}
