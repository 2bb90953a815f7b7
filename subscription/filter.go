package subscription

// Filter is the closed set of per-subscription matching predicates
// (§4.7). A nil Filter matches every event on the topic it was
// registered against.
type Filter interface {
	// Matches reports whether event should be delivered to a
	// subscriber holding this filter. Callers must only invoke Matches
	// with events from the topic the filter was created for.
	Matches(event SystemEvent) bool

	// Project reshapes event into the payload a subscriber with this
	// filter should actually receive (e.g. dropping transaction bodies
	// when include_txs was not requested).
	Project(event SystemEvent) any
}

// BlockFilter always matches (§4.7); IncludeTxs only controls payload
// composition.
type BlockFilter struct {
	IncludeTxs bool
}

func (f BlockFilter) Matches(event SystemEvent) bool {
	switch event.(type) {
	case BlockAcceptanceEvent, BlockFinalizationEvent:
		return true
	default:
		return false
	}
}

func (f BlockFilter) Project(event SystemEvent) any {
	switch e := event.(type) {
	case BlockAcceptanceEvent:
		out := blockPayload{BlockHash: e.BlockHash, Height: e.Height}
		if f.IncludeTxs {
			out.Transactions = e.Transactions
		}
		return out
	case BlockFinalizationEvent:
		return blockPayload{BlockHash: e.BlockHash, Height: e.Height}
	default:
		return event
	}
}

type blockPayload struct {
	BlockHash    []byte      `json:"block_hash"`
	Height       uint64      `json:"height"`
	Transactions []TxSummary `json:"transactions,omitempty"`
}

// ContractFilter matches ContractEvents whose target equals ContractID
// and, when EventNames is non-empty, whose topic name is in that list
// (§4.7).
type ContractFilter struct {
	ContractID      []byte
	EventNames      []string
	IncludeMetadata bool
}

func (f ContractFilter) Matches(event SystemEvent) bool {
	e, ok := event.(ContractEventPayload)
	if !ok {
		return false
	}
	return f.matchesCommon(e.ContractID, e.EventName)
}

func (f ContractFilter) matchesCommon(contractID []byte, eventName string) bool {
	if string(f.ContractID) != string(contractID) {
		return false
	}
	if len(f.EventNames) == 0 {
		return true
	}
	for _, name := range f.EventNames {
		if name == eventName {
			return true
		}
	}
	return false
}

func (f ContractFilter) Project(event SystemEvent) any {
	e := event.(ContractEventPayload)
	out := contractEventWirePayload{
		ContractID: e.ContractID,
		EventName:  e.EventName,
		Data:       e.Data,
	}
	if f.IncludeMetadata {
		out.BlockHash = e.BlockHash
		out.Height = e.Height
	}
	return out
}

type contractEventWirePayload struct {
	ContractID []byte `json:"contract_id"`
	EventName  string `json:"event_name"`
	Data       []byte `json:"data"`
	BlockHash  []byte `json:"block_hash,omitempty"`
	Height     uint64 `json:"height,omitempty"`
}

// TransferFilter matches ContractTransferEvents like ContractFilter,
// plus a minimum transferred amount (§4.7).
type TransferFilter struct {
	ContractID      []byte
	EventNames      []string
	MinAmount       uint64
	IncludeMetadata bool
}

func (f TransferFilter) Matches(event SystemEvent) bool {
	e, ok := event.(ContractTransferEvent)
	if !ok {
		return false
	}
	cf := ContractFilter{ContractID: f.ContractID, EventNames: f.EventNames}
	if !cf.matchesCommon(e.ContractID, e.EventName) {
		return false
	}
	if e.Amount == nil {
		return f.MinAmount == 0
	}
	return *e.Amount >= f.MinAmount
}

func (f TransferFilter) Project(event SystemEvent) any {
	e := event.(ContractTransferEvent)
	out := transferWirePayload{
		ContractID: e.ContractID,
		Amount:     e.Amount,
	}
	if f.IncludeMetadata {
		out.BlockHash = e.BlockHash
		out.Height = e.Height
	}
	return out
}

type transferWirePayload struct {
	ContractID []byte  `json:"contract_id"`
	Amount     *uint64 `json:"amount,omitempty"`
	BlockHash  []byte  `json:"block_hash,omitempty"`
	Height     uint64  `json:"height,omitempty"`
}

// MempoolFilter matches MempoolAcceptance/MempoolEvents, optionally
// restricted to one contract id.
type MempoolFilter struct {
	ContractID     []byte
	IncludeDetails bool
}

func (f MempoolFilter) Matches(event SystemEvent) bool {
	switch e := event.(type) {
	case MempoolAcceptanceEvent:
		return f.ContractID == nil || string(f.ContractID) == string(e.ContractID)
	case MempoolEvent:
		return f.ContractID == nil || string(f.ContractID) == string(e.ContractID)
	default:
		return false
	}
}

func (f MempoolFilter) Project(event SystemEvent) any {
	switch e := event.(type) {
	case MempoolAcceptanceEvent:
		out := mempoolWirePayload{TxHash: e.TxHash}
		if f.IncludeDetails {
			out.ContractID = e.ContractID
		}
		return out
	case MempoolEvent:
		out := mempoolWirePayload{TxHash: e.TxHash, Kind: e.Kind}
		if f.IncludeDetails {
			out.ContractID = e.ContractID
		}
		return out
	default:
		return event
	}
}

type mempoolWirePayload struct {
	TxHash     []byte `json:"tx_hash"`
	Kind       string `json:"kind,omitempty"`
	ContractID []byte `json:"contract_id,omitempty"`
}
