package model

import (
	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/utils"
	"github.com/jinzhu/copier"
)

// Label is the wire spelling of adapter.BlockLabel.
type Label string

const (
	LabelProvisional Label = "Provisional"
	LabelFinal       Label = "Final"
)

func labelFromAdapter(l adapter.BlockLabel) Label {
	if l == adapter.LabelFinal {
		return LabelFinal
	}
	return LabelProvisional
}

// Header is the wire shape of a block header.
type Header struct {
	Hash       string `json:"hash"`
	Height     Amount `json:"height"`
	PrevHash   string `json:"prev_hash"`
	StateRoot  string `json:"state_root"`
	Timestamp  int64  `json:"timestamp"`
	GasLimit   Amount `json:"gas_limit"`
	TxCount    int    `json:"tx_count"`
	FaultCount int    `json:"fault_count"`
}

// HeaderFromAdapter converts an adapter.Header. copier.Copy handles the
// identically-named/typed fields (Timestamp, TxCount, FaultCount); hash
// fields and Amount-wrapped counters are set explicitly since their wire
// types differ from the adapter's.
func HeaderFromAdapter(h adapter.Header) Header {
	var out Header
	_ = copier.Copy(&out, &h)
	out.Hash = utils.BytesToHex(h.Hash)
	out.PrevHash = utils.BytesToHex(h.PrevHash)
	out.StateRoot = utils.BytesToHex(h.StateRoot)
	out.Height = Amount(h.Height)
	out.GasLimit = Amount(h.GasLimit)
	return out
}

// Fault is the wire shape of a recorded misbehavior.
type Fault struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// Block is the wire shape of a full block (header + transactions +
// faults + consensus label).
type Block struct {
	Header       Header        `json:"header"`
	Transactions []Transaction `json:"transactions"`
	Faults       []Fault       `json:"faults"`
	Label        Label         `json:"label"`
}

// BlockFromAdapter converts an adapter.Block.
func BlockFromAdapter(b adapter.Block) Block {
	txs := make([]Transaction, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		txs = append(txs, TransactionFromAdapter(tx))
	}
	faults := make([]Fault, 0, len(b.Faults))
	for _, f := range b.Faults {
		faults = append(faults, Fault{Type: f.Type, Data: utils.BytesToHex(f.Data)})
	}
	return Block{
		Header:       HeaderFromAdapter(b.Header),
		Transactions: txs,
		Faults:       faults,
		Label:        labelFromAdapter(b.Label),
	}
}

// BlocksFromAdapter converts a slice of adapter.Block in order, for
// getBlockRange/getLatestBlocks-style responses.
func BlocksFromAdapter(bs []adapter.Block) []Block {
	out := make([]Block, 0, len(bs))
	for _, b := range bs {
		out = append(out, BlockFromAdapter(b))
	}
	return out
}
