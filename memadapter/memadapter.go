// Package memadapter is a self-contained, in-memory implementation of
// every interface in adapter (§4.1): a single genesis block, an empty
// mempool, and no peers or provisioners. It exists so cmd/gateway can
// boot and serve traffic without a real node wired in, the same role
// go-ethereum's accounts/abi/bind/backends.SimulatedBackend plays for
// that repo's own RPC surface: a reference backend, not a production
// one.
package memadapter

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/dusk-network/rusk/adapter"
)

// Store is the in-memory chain state. It implements
// adapter.DatabaseAdapter, adapter.NetworkAdapter, adapter.VmAdapter,
// and adapter.ArchiveAdapter.
type Store struct {
	mu sync.RWMutex

	blocksByHeight map[uint64]*adapter.Block
	blocksByHash   map[string]*adapter.Block
	tip            uint64

	mempool map[string]adapter.MempoolTx

	publicAddr string
	vmConfig   adapter.VmConfig
}

// New builds a Store seeded with a single genesis block at height 0.
func New(publicAddr string) *Store {
	genesisHash := blockHash(0, nil)
	genesis := &adapter.Block{
		Header: adapter.Header{
			Hash:      genesisHash,
			Height:    0,
			PrevHash:  nil,
			StateRoot: make([]byte, 32),
			Timestamp: 0,
			GasLimit:  5_000_000,
		},
		Label: adapter.LabelFinal,
	}

	return &Store{
		blocksByHeight: map[uint64]*adapter.Block{0: genesis},
		blocksByHash:   map[string]*adapter.Block{string(genesisHash): genesis},
		mempool:        make(map[string]adapter.MempoolTx),
		publicAddr:     publicAddr,
		vmConfig: adapter.VmConfig{
			BlockGasLimit:    5_000_000,
			GasPerDeployByte: 10,
			MinGasLimit:      50,
		},
	}
}

func blockHash(height uint64, prevHash []byte) []byte {
	sum := sha256.Sum256(append([]byte(fmt.Sprintf("height:%d:", height)), prevHash...))
	return sum[:]
}

// AppendBlock extends the chain by one block holding txs, returning
// the new block. It is not part of any adapter interface; it is
// the Store's own seam for feeding the reference backend out-of-band
// (e.g. from a test or a demo CLI command).
func (s *Store) AppendBlock(txs []adapter.Transaction) *adapter.Block {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.blocksByHeight[s.tip]
	height := s.tip + 1
	hash := blockHash(height, prev.Header.Hash)
	block := &adapter.Block{
		Header: adapter.Header{
			Hash:      hash,
			Height:    height,
			PrevHash:  prev.Header.Hash,
			StateRoot: make([]byte, 32),
			TxCount:   len(txs),
		},
		Transactions: txs,
		Label:        adapter.LabelProvisional,
	}
	s.blocksByHeight[height] = block
	s.blocksByHash[string(hash)] = block
	s.tip = height
	for _, tx := range txs {
		delete(s.mempool, string(tx.Hash))
	}
	return block
}

func notFound(what string) *adapter.Error {
	return adapter.Wrap(adapter.KindNotFound, fmt.Errorf("%s not found", what))
}

// --- adapter.DatabaseAdapter ---

func (s *Store) BlockByHash(_ context.Context, hash []byte) (*adapter.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocksByHash[string(hash)]
	if !ok {
		return nil, notFound("block")
	}
	return b, nil
}

func (s *Store) BlockByHeight(_ context.Context, height uint64) (*adapter.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocksByHeight[height]
	if !ok {
		return nil, notFound("block")
	}
	return b, nil
}

func (s *Store) HeaderByHash(ctx context.Context, hash []byte) (*adapter.Header, error) {
	b, err := s.BlockByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	return &b.Header, nil
}

func (s *Store) HeaderByHeight(ctx context.Context, height uint64) (*adapter.Header, error) {
	b, err := s.BlockByHeight(ctx, height)
	if err != nil {
		return nil, err
	}
	return &b.Header, nil
}

func (s *Store) BlockRange(_ context.Context, start, end uint64) ([]adapter.Block, error) {
	if start > end {
		return nil, adapter.Wrap(adapter.KindInvalidArgument, fmt.Errorf("start %d > end %d", start, end))
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]adapter.Block, 0, end-start+1)
	for h := start; h <= end; h++ {
		if b, ok := s.blocksByHeight[h]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (s *Store) LatestBlock(_ context.Context) (*adapter.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.blocksByHeight[s.tip], nil
}

func (s *Store) TipHeight(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tip, nil
}

func (s *Store) BlockLabel(ctx context.Context, height uint64) (adapter.BlockLabel, error) {
	b, err := s.BlockByHeight(ctx, height)
	if err != nil {
		return adapter.LabelProvisional, err
	}
	return b.Label, nil
}

func (s *Store) BlockTransactions(ctx context.Context, hash []byte) ([]adapter.Transaction, error) {
	b, err := s.BlockByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	return b.Transactions, nil
}

func (s *Store) SpentTransactionByHash(_ context.Context, hash []byte) (*adapter.SpentTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.blocksByHeight {
		for _, tx := range b.Transactions {
			if string(tx.Hash) == string(hash) {
				return &adapter.SpentTransaction{Transaction: tx, BlockHeight: b.Header.Height}, nil
			}
		}
	}
	return nil, notFound("transaction")
}

func (s *Store) TransactionDetailByHash(_ context.Context, hash []byte) (*adapter.TransactionDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.blocksByHeight {
		for i, tx := range b.Transactions {
			if string(tx.Hash) == string(hash) {
				idx := i
				return &adapter.TransactionDetail{
					SpentTransaction: adapter.SpentTransaction{Transaction: tx, BlockHeight: b.Header.Height},
					BlockHash:        b.Header.Hash,
					Timestamp:        b.Header.Timestamp,
					Index:            &idx,
				}, nil
			}
		}
	}
	return nil, notFound("transaction")
}

func (s *Store) TransactionStatus(_ context.Context, hash []byte) (adapter.TxStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.mempool[string(hash)]; ok {
		return adapter.TxStatusPending, nil
	}
	for _, b := range s.blocksByHeight {
		for _, tx := range b.Transactions {
			if string(tx.Hash) == string(hash) {
				return adapter.TxStatusExecuted, nil
			}
		}
	}
	return adapter.TxStatusNotFound, nil
}

func (s *Store) CandidateByHeader(_ context.Context, _ adapter.ConsensusHeader) (*adapter.Candidate, error) {
	return nil, notFound("candidate")
}

func (s *Store) LatestValidationResult(_ context.Context, _ []byte, _ uint64) (*adapter.ValidationResult, error) {
	return nil, notFound("validation result")
}

func (s *Store) MempoolTransactionByHash(_ context.Context, hash []byte) (*adapter.MempoolTx, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tx, ok := s.mempool[string(hash)]
	if !ok {
		return nil, notFound("mempool transaction")
	}
	return &tx, nil
}

func (s *Store) MempoolHasTransaction(_ context.Context, hash []byte) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.mempool[string(hash)]
	return ok, nil
}

func (s *Store) MempoolTop(_ context.Context, limit int) ([]adapter.MempoolTx, error) {
	return s.mempoolSlice(limit), nil
}

func (s *Store) MempoolLow(_ context.Context, limit int) ([]adapter.MempoolTx, error) {
	return s.mempoolSlice(limit), nil
}

func (s *Store) mempoolSlice(limit int) []adapter.MempoolTx {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]adapter.MempoolTx, 0, len(s.mempool))
	for _, tx := range s.mempool {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, tx)
	}
	return out
}

func (s *Store) MempoolCount(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.mempool), nil
}

func (s *Store) Metadata(_ context.Context, _ string) ([]byte, error) {
	return nil, notFound("metadata key")
}

func (s *Store) MetadataWriter(_ context.Context) (adapter.MetadataWriter, error) {
	return &memadapterMetadataWriter{store: s}, nil
}

type memadapterMetadataWriter struct {
	store *Store
}

func (w *memadapterMetadataWriter) SetMetadata(_ context.Context, _ string, _ []byte) error { return nil }
func (w *memadapterMetadataWriter) Close() error                                            { return nil }

// --- adapter.NetworkAdapter ---

func (s *Store) BroadcastTransaction(_ context.Context, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	hash := sha256.Sum256(raw)
	s.mempool[string(hash[:])] = adapter.MempoolTx{Transaction: adapter.Transaction{Hash: hash[:], CallData: raw}}
	return nil
}

func (s *Store) NetworkInfo(_ context.Context) (string, error) {
	return "memadapter/reference", nil
}

func (s *Store) PublicAddress(_ context.Context) (string, error) {
	return s.publicAddr, nil
}

func (s *Store) AlivePeers(_ context.Context, _ int) ([]adapter.PeerInfo, error) {
	return nil, nil
}

func (s *Store) AlivePeersCount(_ context.Context) (int, error) {
	return 0, nil
}

func (s *Store) FloodRequest(_ context.Context, _ adapter.Inventory, _ *int, _ int) error {
	return nil
}

// --- adapter.VmAdapter ---

func (s *Store) SimulateTransaction(_ context.Context, _ []byte) (*adapter.SimulationResult, error) {
	estimate := s.vmConfig.MinGasLimit
	return &adapter.SimulationResult{Success: true, GasEstimate: &estimate}, nil
}

func (s *Store) PreverifyTransaction(_ context.Context, _ []byte) (*adapter.PreverificationResult, error) {
	return &adapter.PreverificationResult{Valid: true}, nil
}

func (s *Store) StateRoot(_ context.Context) ([32]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var root [32]byte
	copy(root[:], s.blocksByHeight[s.tip].Header.StateRoot)
	return root, nil
}

func (s *Store) BlockGasLimit(_ context.Context) (uint64, error) {
	return s.vmConfig.BlockGasLimit, nil
}

func (s *Store) VmConfig(_ context.Context) (*adapter.VmConfig, error) {
	cfg := s.vmConfig
	return &cfg, nil
}

func (s *Store) Provisioners(_ context.Context) ([]adapter.Provisioner, error) {
	return nil, nil
}

func (s *Store) StakeInfoByPK(_ context.Context, _ []byte) (*adapter.Stake, error) {
	return nil, notFound("stake")
}

func (s *Store) AllStakeData(_ context.Context) ([]adapter.Provisioner, error) {
	return nil, nil
}

func (s *Store) QueryContractRaw(_ context.Context, _ []byte, _ string, _ []byte, _ [][]byte) ([]byte, error) {
	return nil, adapter.Wrap(adapter.KindNotFound, fmt.Errorf("no contracts deployed"))
}

// --- adapter.ArchiveAdapter ---

func (s *Store) AccountHistory(_ context.Context, _ []byte, _, _ uint64) ([]adapter.Transaction, error) {
	return nil, nil
}
