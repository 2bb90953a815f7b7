// Package adapter defines the pure interfaces (§4.1) through which the
// gateway core consumes chain data, mempool data, VM execution, and
// network broadcast primitives. Implementations are external
// collaborators; this package never implements them.
package adapter

import (
	"context"

	"github.com/pkg/errors"
)

// Kind is the closed adapter-level error taxonomy. The dispatcher maps
// Kind onto the JSON-RPC error taxonomy in rpcerr.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidArgument
	KindResourceBusy
	KindCancelled
)

// Error is the error type every adapter method returns on failure. Cause
// is preserved (via github.com/pkg/errors) so the dispatcher can log the
// original failure while still mapping Kind to a stable JSON-RPC code.
type Error struct {
	Kind  Kind
	Cause error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error { return e.Cause }

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindResourceBusy:
		return "resource_busy"
	case KindCancelled:
		return "cancelled"
	default:
		return "internal"
	}
}

// Wrap builds an adapter.Error, attaching a stack-carrying cause.
func Wrap(kind Kind, cause error) *Error {
	if cause == nil {
		return &Error{Kind: kind}
	}
	return &Error{Kind: kind, Cause: errors.WithStack(cause)}
}

// BlockLabel is the consensus-derived status of a block (§GLOSSARY).
type BlockLabel int

const (
	LabelProvisional BlockLabel = iota
	LabelFinal
)

// TxStatus is the result of DatabaseAdapter.TransactionStatus (§4.1).
type TxStatus int

const (
	TxStatusNotFound TxStatus = iota
	TxStatusPending
	TxStatusExecuted
	TxStatusFailed
)

// Header is a block header as returned by the efficient header-only
// query path (§4.1: "efficient path guaranteed: single lookup").
type Header struct {
	Hash       []byte
	Height     uint64
	PrevHash   []byte
	StateRoot  []byte
	Timestamp  int64
	GasLimit   uint64
	TxCount    int
	FaultCount int
}

// Fault is a recorded misbehavior tied to a block (§GLOSSARY).
type Fault struct {
	Type string
	Data []byte
}

// Block is the full block: header, transactions, faults.
type Block struct {
	Header       Header
	Transactions []Transaction
	Faults       []Fault
	Label        BlockLabel
}

// Transaction is a chain transaction as stored in a block.
type Transaction struct {
	Hash     []byte
	GasPrice uint64
	GasLimit uint64
	Nonce    uint64
	CallData []byte
}

// SpentTransaction is a transaction together with its execution outcome
// (§GLOSSARY).
type SpentTransaction struct {
	Transaction Transaction
	BlockHeight uint64
	GasSpent    uint64
	Err         *string
}

// TransactionDetail augments SpentTransaction with the fields resolved
// by the composed by-hash query (§4.1): block_hash, timestamp, and the
// transaction's index in its block, if found.
type TransactionDetail struct {
	SpentTransaction
	BlockHash []byte
	Timestamp int64
	Index     *int
}

// ConsensusHeader identifies a candidate block / validation result
// (§GLOSSARY).
type ConsensusHeader struct {
	PrevBlockHash []byte
	Round         uint64
	Iteration     uint32
}

// Candidate is a block proposed during consensus but not yet finalized.
type Candidate struct {
	Header ConsensusHeader
	Block  Block
}

// ValidationResult is per-iteration consensus output keyed by a
// ConsensusHeader (§GLOSSARY).
type ValidationResult struct {
	Header  ConsensusHeader
	Outcome string
	Data    []byte
}

// MempoolTx is a transaction resident in the mempool.
type MempoolTx struct {
	Transaction Transaction
	Fee         uint64
	ReceivedAt  int64
}

// DatabaseAdapter is read access to chain state (§4.1).
type DatabaseAdapter interface {
	BlockByHash(ctx context.Context, hash []byte) (*Block, error)
	BlockByHeight(ctx context.Context, height uint64) (*Block, error)
	HeaderByHash(ctx context.Context, hash []byte) (*Header, error)
	HeaderByHeight(ctx context.Context, height uint64) (*Header, error)
	// BlockRange returns blocks in [start, end] inclusive, ascending by
	// height, skipping missing blocks. start > end is InvalidArgument.
	BlockRange(ctx context.Context, start, end uint64) ([]Block, error)
	LatestBlock(ctx context.Context) (*Block, error)
	TipHeight(ctx context.Context) (uint64, error)
	BlockLabel(ctx context.Context, height uint64) (BlockLabel, error)
	BlockTransactions(ctx context.Context, hash []byte) ([]Transaction, error)

	SpentTransactionByHash(ctx context.Context, hash []byte) (*SpentTransaction, error)
	TransactionDetailByHash(ctx context.Context, hash []byte) (*TransactionDetail, error)
	TransactionStatus(ctx context.Context, hash []byte) (TxStatus, error)

	CandidateByHeader(ctx context.Context, h ConsensusHeader) (*Candidate, error)
	LatestValidationResult(ctx context.Context, prevBlockHash []byte, round uint64) (*ValidationResult, error)

	MempoolTransactionByHash(ctx context.Context, hash []byte) (*MempoolTx, error)
	MempoolHasTransaction(ctx context.Context, hash []byte) (bool, error)
	// MempoolTop/MempoolLow iterate by fee, descending/ascending.
	MempoolTop(ctx context.Context, limit int) ([]MempoolTx, error)
	MempoolLow(ctx context.Context, limit int) ([]MempoolTx, error)
	MempoolCount(ctx context.Context) (int, error)

	Metadata(ctx context.Context, key string) ([]byte, error)
	// MetadataWriter is an exclusive handle for privileged writers only.
	MetadataWriter(ctx context.Context) (MetadataWriter, error)
}

// MetadataWriter is the exclusive handle required to write metadata
// keys (§4.1: "writes are privileged and take an exclusive handle").
type MetadataWriter interface {
	SetMetadata(ctx context.Context, key string, value []byte) error
	Close() error
}

// PeerInfo is a network peer as reported by NetworkAdapter.
type PeerInfo struct {
	Address  string // multiaddr-formatted
	LastSeen int64
}

// Inventory is the protocol-level payload of a flood_request (§4.1).
type Inventory struct {
	Kind   string
	Hashes [][]byte
}

// NetworkAdapter is the network broadcast/discovery contract (§4.1).
type NetworkAdapter interface {
	// BroadcastTransaction gossips raw tx bytes. Success means accepted
	// for propagation, not mempool inclusion.
	BroadcastTransaction(ctx context.Context, raw []byte) error
	NetworkInfo(ctx context.Context) (string, error)
	PublicAddress(ctx context.Context) (string, error)
	AlivePeers(ctx context.Context, max int) ([]PeerInfo, error)
	AlivePeersCount(ctx context.Context) (int, error)
	FloodRequest(ctx context.Context, inv Inventory, ttl *int, hops int) error
}

// SimulationResult is the outcome of VmAdapter.SimulateTransaction.
type SimulationResult struct {
	Success     bool
	GasEstimate *uint64
	Err         *string
}

// PreverificationResult is the outcome of VM-layer signature/nullifier
// checks only (§4.1: "no mempool nonce/fee checks").
type PreverificationResult struct {
	Valid  bool
	Reason *string
}

// Stake is a provisioner's staked amount.
type Stake struct {
	Amount  uint64
	Expiry  *int64
	Blocked bool
}

// Provisioner is a staker eligible for consensus (§GLOSSARY).
type Provisioner struct {
	PubKey []byte // raw BLS12-381 public key bytes
	Stake  Stake
}

// VmConfig is the VM's execution configuration.
type VmConfig struct {
	BlockGasLimit    uint64
	GasPerDeployByte uint64
	MinGasLimit      uint64
}

// VmAdapter is the VM execution contract (§4.1).
type VmAdapter interface {
	SimulateTransaction(ctx context.Context, raw []byte) (*SimulationResult, error)
	PreverifyTransaction(ctx context.Context, raw []byte) (*PreverificationResult, error)
	StateRoot(ctx context.Context) ([32]byte, error)
	BlockGasLimit(ctx context.Context) (uint64, error)
	VmConfig(ctx context.Context) (*VmConfig, error)
	Provisioners(ctx context.Context) ([]Provisioner, error)
	StakeInfoByPK(ctx context.Context, pubKey []byte) (*Stake, error)
	AllStakeData(ctx context.Context) ([]Provisioner, error)
	// QueryContractRaw executes a read-only call pinned to baseCommit.
	QueryContractRaw(ctx context.Context, contractID []byte, method string, baseCommit []byte, args [][]byte) ([]byte, error)
}

// ArchiveAdapter is the optional, feature-gated extended historical
// query contract (§4.1).
type ArchiveAdapter interface {
	AccountHistory(ctx context.Context, address []byte, start, end uint64) ([]Transaction, error)
}
