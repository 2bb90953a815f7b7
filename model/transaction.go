package model

import (
	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/utils"
)

// Transaction is the wire shape of a chain transaction.
type Transaction struct {
	Hash     string `json:"hash"`
	GasPrice Amount `json:"gas_price"`
	GasLimit Amount `json:"gas_limit"`
	Nonce    Amount `json:"nonce"`
	CallData string `json:"call_data"`
}

// TransactionFromAdapter converts an adapter.Transaction.
func TransactionFromAdapter(t adapter.Transaction) Transaction {
	return Transaction{
		Hash:     utils.BytesToHex(t.Hash),
		GasPrice: Amount(t.GasPrice),
		GasLimit: Amount(t.GasLimit),
		Nonce:    Amount(t.Nonce),
		CallData: utils.BytesToHex(t.CallData),
	}
}

// SpentTransaction is the wire shape of a transaction plus its
// execution outcome.
type SpentTransaction struct {
	Transaction Transaction `json:"transaction"`
	BlockHeight Amount      `json:"block_height"`
	GasSpent    Amount      `json:"gas_spent"`
	Err         *string     `json:"err,omitempty"`
}

// SpentTransactionFromAdapter converts an adapter.SpentTransaction.
func SpentTransactionFromAdapter(s adapter.SpentTransaction) SpentTransaction {
	return SpentTransaction{
		Transaction: TransactionFromAdapter(s.Transaction),
		BlockHeight: Amount(s.BlockHeight),
		GasSpent:    Amount(s.GasSpent),
		Err:         s.Err,
	}
}

// TransactionDetail is the wire shape of the composed by-hash query
// (§4.1: additionally resolves block_hash, timestamp, index).
type TransactionDetail struct {
	SpentTransaction
	BlockHash string `json:"block_hash"`
	Timestamp int64  `json:"timestamp"`
	Index     *int   `json:"index,omitempty"`
}

// TransactionDetailFromAdapter converts an adapter.TransactionDetail.
func TransactionDetailFromAdapter(t adapter.TransactionDetail) TransactionDetail {
	return TransactionDetail{
		SpentTransaction: SpentTransactionFromAdapter(t.SpentTransaction),
		BlockHash:        utils.BytesToHex(t.BlockHash),
		Timestamp:        t.Timestamp,
		Index:            t.Index,
	}
}

// TransactionStatus is the wire spelling of adapter.TxStatus (§4.1:
// "Executed | Failed | Pending | NotFound").
type TransactionStatus string

const (
	StatusExecuted TransactionStatus = "Executed"
	StatusFailed   TransactionStatus = "Failed"
	StatusPending  TransactionStatus = "Pending"
	StatusNotFound TransactionStatus = "NotFound"
)

// TransactionStatusFromAdapter converts an adapter.TxStatus.
func TransactionStatusFromAdapter(s adapter.TxStatus) TransactionStatus {
	switch s {
	case adapter.TxStatusExecuted:
		return StatusExecuted
	case adapter.TxStatusFailed:
		return StatusFailed
	case adapter.TxStatusPending:
		return StatusPending
	default:
		return StatusNotFound
	}
}

// MempoolTransaction is the wire shape of a mempool-resident
// transaction.
type MempoolTransaction struct {
	Transaction Transaction `json:"transaction"`
	Fee         Amount      `json:"fee"`
	ReceivedAt  int64       `json:"received_at"`
}

// MempoolTransactionFromAdapter converts an adapter.MempoolTx.
func MempoolTransactionFromAdapter(m adapter.MempoolTx) MempoolTransaction {
	return MempoolTransaction{
		Transaction: TransactionFromAdapter(m.Transaction),
		Fee:         Amount(m.Fee),
		ReceivedAt:  m.ReceivedAt,
	}
}

// MempoolTransactionsFromAdapter converts a slice of adapter.MempoolTx
// in the order the adapter returned them (the adapter is the sorting
// authority — by descending or ascending fee, per §4.1).
func MempoolTransactionsFromAdapter(ms []adapter.MempoolTx) []MempoolTransaction {
	out := make([]MempoolTransaction, 0, len(ms))
	for _, m := range ms {
		out = append(out, MempoolTransactionFromAdapter(m))
	}
	return out
}

// MempoolInfo is the wire shape of getMempoolInfo.
type MempoolInfo struct {
	Count Amount `json:"count"`
}
