// Package subscription implements the Filter Engine (C7) and
// Subscription Manager (C8): the dual-index subscriber registry, the
// per-(event,subscriber) filter/rate-limit pipeline, and the background
// event pump that fans a single internal event stream out to the
// filtered subset of WebSocket sinks that should see it.
//
// Grounded on rpc/v8/subscriptions.go's subscription{cancel, conn, wg}
// struct and per-subscription goroutine/cleanup pattern, and on the
// neo-go pkg/rpc/server subscriber map (subsLock sync.RWMutex,
// subscribers map[*subscriber]bool, per-topic counters) for the
// dual-index registry shape spec.md §4.8 calls for.
package subscription

import (
	"time"

	"github.com/google/uuid"
)

// Topic is the closed enum of subscribable streams (§3).
type Topic string

const (
	TopicBlockAcceptance        Topic = "BlockAcceptance"
	TopicBlockFinalization      Topic = "BlockFinalization"
	TopicChainReorganization    Topic = "ChainReorganization"
	TopicContractEvents         Topic = "ContractEvents"
	TopicContractTransferEvents Topic = "ContractTransferEvents"
	TopicMempoolAcceptance      Topic = "MempoolAcceptance"
	TopicMempoolEvents          Topic = "MempoolEvents"
)

// ID is a process-unique opaque subscription handle (§3), backed by a
// UUID per the spec's own suggestion ("e.g. a UUID").
type ID uuid.UUID

func newID() ID { return ID(uuid.New()) }

func (id ID) String() string { return uuid.UUID(id).String() }

// SessionID identifies a WebSocket connection for its lifetime (§3).
type SessionID string

// ClientInfo is stable for a connection's lifetime (§3). Duplicated from
// jsonrpc.ClientInfo's shape rather than imported, so the subscription
// package does not need to depend on the dispatcher's wire layer; the
// transport package is responsible for keeping the two in sync per
// connection.
type ClientInfo struct {
	RemoteAddr    string
	SessionID     string
	VersionHeader string
}

// Stats are the monotonic counters tracked for the lifetime of a
// subscription (§3). Reads return a snapshot; only the manager mutates
// the live struct, always via atomic-style increments under a short
// lock (§5).
type Stats struct {
	EventsProcessed        uint64     `json:"events_processed"`
	EventsDroppedBuffer    uint64     `json:"events_dropped_buffer"`
	EventsDroppedRateLimit uint64     `json:"events_dropped_rate_limit"`
	LastEventTime          *time.Time `json:"last_event_time,omitempty"`
	CreationTime           time.Time  `json:"creation_time"`
}

func (s Stats) snapshot() Stats { return s }

// SystemEvent is the internal structured event emitted by the node
// (§3); each concrete variant below reports which Topic it belongs to
// so the pump can route it without a type switch at every call site.
type SystemEvent interface {
	Topic() Topic
}

// BlockAcceptanceEvent fires when a block is accepted onto the chain.
type BlockAcceptanceEvent struct {
	BlockHash    []byte
	Height       uint64
	Transactions []TxSummary
}

func (BlockAcceptanceEvent) Topic() Topic { return TopicBlockAcceptance }

// BlockFinalizationEvent fires when a block's label becomes Final.
type BlockFinalizationEvent struct {
	BlockHash []byte
	Height    uint64
}

func (BlockFinalizationEvent) Topic() Topic { return TopicBlockFinalization }

// ChainReorganizationEvent fires on a chain reorg.
type ChainReorganizationEvent struct {
	StartHeight uint64
	EndHeight   uint64
	OldTip      []byte
	NewTip      []byte
}

func (ChainReorganizationEvent) Topic() Topic { return TopicChainReorganization }

// TxSummary is the minimal transaction shape carried by a
// BlockAcceptanceEvent when include_txs is requested.
type TxSummary struct {
	Hash []byte
}

// ContractEventPayload fires for a contract-emitted event.
type ContractEventPayload struct {
	ContractID []byte
	EventName  string
	Data       []byte
	BlockHash  []byte
	Height     uint64
	Transfer   bool
	Amount     *uint64 // set only when Transfer is true
}

func (ContractEventPayload) Topic() Topic { return TopicContractEvents }

// ContractTransferEvent reuses ContractEventPayload's fields but routes
// to the transfer topic; kept distinct so Topic() can discriminate
// without inspecting the Transfer flag everywhere.
type ContractTransferEvent ContractEventPayload

func (ContractTransferEvent) Topic() Topic { return TopicContractTransferEvents }

// MempoolAcceptanceEvent fires when a transaction enters the mempool.
type MempoolAcceptanceEvent struct {
	TxHash     []byte
	ContractID []byte
}

func (MempoolAcceptanceEvent) Topic() Topic { return TopicMempoolAcceptance }

// MempoolEvent fires for other mempool lifecycle changes (eviction,
// requeue, etc.).
type MempoolEvent struct {
	TxHash     []byte
	ContractID []byte
	Kind       string
}

func (MempoolEvent) Topic() Topic { return TopicMempoolEvents }

// SendResult is the outcome of a non-blocking sink delivery attempt
// (§4.8 step 6).
type SendResult int

const (
	SendOK SendResult = iota
	SendFull
	SendClosed
)

// Sink is the per-subscription write end of a client's WebSocket
// connection (§GLOSSARY). TrySend must never block.
type Sink interface {
	TrySend(payload []byte) SendResult
}

// RateLimiter is the minimal surface the manager needs from the rate
// limiter (§4.3 "subscription:create" / "subscription:<Topic>" buckets).
type RateLimiter interface {
	Allow(remoteAddr, pattern string) bool
}
