// Package mocks holds go.uber.org/mock doubles for the adapter
// interfaces (§4.1), hand-written in the shape mockgen itself emits
// (NewMockX / EXPECT() / per-method recorder), matching the
// mocks.NewMockReader(mockCtrl) / .EXPECT()... call shape juno's
// rpc/v7/class_test.go uses against its own generated mocks.
package mocks

import (
	"context"
	"reflect"

	"github.com/dusk-network/rusk/adapter"
	"go.uber.org/mock/gomock"
)

// MockDatabaseAdapter is a mock of the DatabaseAdapter interface.
type MockDatabaseAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockDatabaseAdapterMockRecorder
}

type MockDatabaseAdapterMockRecorder struct {
	mock *MockDatabaseAdapter
}

func NewMockDatabaseAdapter(ctrl *gomock.Controller) *MockDatabaseAdapter {
	m := &MockDatabaseAdapter{ctrl: ctrl}
	m.recorder = &MockDatabaseAdapterMockRecorder{m}
	return m
}

func (m *MockDatabaseAdapter) EXPECT() *MockDatabaseAdapterMockRecorder { return m.recorder }

func (m *MockDatabaseAdapter) BlockByHash(ctx context.Context, hash []byte) (*adapter.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockByHash", ctx, hash)
	ret0, _ := ret[0].(*adapter.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) BlockByHash(ctx, hash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockByHash", reflect.TypeOf((*MockDatabaseAdapter)(nil).BlockByHash), ctx, hash)
}

func (m *MockDatabaseAdapter) BlockByHeight(ctx context.Context, height uint64) (*adapter.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockByHeight", ctx, height)
	ret0, _ := ret[0].(*adapter.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) BlockByHeight(ctx, height any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockByHeight", reflect.TypeOf((*MockDatabaseAdapter)(nil).BlockByHeight), ctx, height)
}

func (m *MockDatabaseAdapter) HeaderByHash(ctx context.Context, hash []byte) (*adapter.Header, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HeaderByHash", ctx, hash)
	ret0, _ := ret[0].(*adapter.Header)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) HeaderByHash(ctx, hash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HeaderByHash", reflect.TypeOf((*MockDatabaseAdapter)(nil).HeaderByHash), ctx, hash)
}

func (m *MockDatabaseAdapter) HeaderByHeight(ctx context.Context, height uint64) (*adapter.Header, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HeaderByHeight", ctx, height)
	ret0, _ := ret[0].(*adapter.Header)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) HeaderByHeight(ctx, height any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HeaderByHeight", reflect.TypeOf((*MockDatabaseAdapter)(nil).HeaderByHeight), ctx, height)
}

func (m *MockDatabaseAdapter) BlockRange(ctx context.Context, start, end uint64) ([]adapter.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockRange", ctx, start, end)
	ret0, _ := ret[0].([]adapter.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) BlockRange(ctx, start, end any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockRange", reflect.TypeOf((*MockDatabaseAdapter)(nil).BlockRange), ctx, start, end)
}

func (m *MockDatabaseAdapter) LatestBlock(ctx context.Context) (*adapter.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestBlock", ctx)
	ret0, _ := ret[0].(*adapter.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) LatestBlock(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestBlock", reflect.TypeOf((*MockDatabaseAdapter)(nil).LatestBlock), ctx)
}

func (m *MockDatabaseAdapter) TipHeight(ctx context.Context) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TipHeight", ctx)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) TipHeight(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TipHeight", reflect.TypeOf((*MockDatabaseAdapter)(nil).TipHeight), ctx)
}

func (m *MockDatabaseAdapter) BlockLabel(ctx context.Context, height uint64) (adapter.BlockLabel, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockLabel", ctx, height)
	ret0, _ := ret[0].(adapter.BlockLabel)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) BlockLabel(ctx, height any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockLabel", reflect.TypeOf((*MockDatabaseAdapter)(nil).BlockLabel), ctx, height)
}

func (m *MockDatabaseAdapter) BlockTransactions(ctx context.Context, hash []byte) ([]adapter.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockTransactions", ctx, hash)
	ret0, _ := ret[0].([]adapter.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) BlockTransactions(ctx, hash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockTransactions", reflect.TypeOf((*MockDatabaseAdapter)(nil).BlockTransactions), ctx, hash)
}

func (m *MockDatabaseAdapter) SpentTransactionByHash(ctx context.Context, hash []byte) (*adapter.SpentTransaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SpentTransactionByHash", ctx, hash)
	ret0, _ := ret[0].(*adapter.SpentTransaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) SpentTransactionByHash(ctx, hash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SpentTransactionByHash", reflect.TypeOf((*MockDatabaseAdapter)(nil).SpentTransactionByHash), ctx, hash)
}

func (m *MockDatabaseAdapter) TransactionDetailByHash(ctx context.Context, hash []byte) (*adapter.TransactionDetail, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransactionDetailByHash", ctx, hash)
	ret0, _ := ret[0].(*adapter.TransactionDetail)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) TransactionDetailByHash(ctx, hash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransactionDetailByHash", reflect.TypeOf((*MockDatabaseAdapter)(nil).TransactionDetailByHash), ctx, hash)
}

func (m *MockDatabaseAdapter) TransactionStatus(ctx context.Context, hash []byte) (adapter.TxStatus, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransactionStatus", ctx, hash)
	ret0, _ := ret[0].(adapter.TxStatus)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) TransactionStatus(ctx, hash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransactionStatus", reflect.TypeOf((*MockDatabaseAdapter)(nil).TransactionStatus), ctx, hash)
}

func (m *MockDatabaseAdapter) CandidateByHeader(ctx context.Context, h adapter.ConsensusHeader) (*adapter.Candidate, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CandidateByHeader", ctx, h)
	ret0, _ := ret[0].(*adapter.Candidate)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) CandidateByHeader(ctx, h any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CandidateByHeader", reflect.TypeOf((*MockDatabaseAdapter)(nil).CandidateByHeader), ctx, h)
}

func (m *MockDatabaseAdapter) LatestValidationResult(ctx context.Context, prevBlockHash []byte, round uint64) (*adapter.ValidationResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestValidationResult", ctx, prevBlockHash, round)
	ret0, _ := ret[0].(*adapter.ValidationResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) LatestValidationResult(ctx, prevBlockHash, round any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestValidationResult", reflect.TypeOf((*MockDatabaseAdapter)(nil).LatestValidationResult), ctx, prevBlockHash, round)
}

func (m *MockDatabaseAdapter) MempoolTransactionByHash(ctx context.Context, hash []byte) (*adapter.MempoolTx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MempoolTransactionByHash", ctx, hash)
	ret0, _ := ret[0].(*adapter.MempoolTx)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) MempoolTransactionByHash(ctx, hash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MempoolTransactionByHash", reflect.TypeOf((*MockDatabaseAdapter)(nil).MempoolTransactionByHash), ctx, hash)
}

func (m *MockDatabaseAdapter) MempoolHasTransaction(ctx context.Context, hash []byte) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MempoolHasTransaction", ctx, hash)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) MempoolHasTransaction(ctx, hash any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MempoolHasTransaction", reflect.TypeOf((*MockDatabaseAdapter)(nil).MempoolHasTransaction), ctx, hash)
}

func (m *MockDatabaseAdapter) MempoolTop(ctx context.Context, limit int) ([]adapter.MempoolTx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MempoolTop", ctx, limit)
	ret0, _ := ret[0].([]adapter.MempoolTx)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) MempoolTop(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MempoolTop", reflect.TypeOf((*MockDatabaseAdapter)(nil).MempoolTop), ctx, limit)
}

func (m *MockDatabaseAdapter) MempoolLow(ctx context.Context, limit int) ([]adapter.MempoolTx, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MempoolLow", ctx, limit)
	ret0, _ := ret[0].([]adapter.MempoolTx)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) MempoolLow(ctx, limit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MempoolLow", reflect.TypeOf((*MockDatabaseAdapter)(nil).MempoolLow), ctx, limit)
}

func (m *MockDatabaseAdapter) MempoolCount(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MempoolCount", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) MempoolCount(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MempoolCount", reflect.TypeOf((*MockDatabaseAdapter)(nil).MempoolCount), ctx)
}

func (m *MockDatabaseAdapter) Metadata(ctx context.Context, key string) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Metadata", ctx, key)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) Metadata(ctx, key any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Metadata", reflect.TypeOf((*MockDatabaseAdapter)(nil).Metadata), ctx, key)
}

func (m *MockDatabaseAdapter) MetadataWriter(ctx context.Context) (adapter.MetadataWriter, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MetadataWriter", ctx)
	ret0, _ := ret[0].(adapter.MetadataWriter)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockDatabaseAdapterMockRecorder) MetadataWriter(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MetadataWriter", reflect.TypeOf((*MockDatabaseAdapter)(nil).MetadataWriter), ctx)
}

// MockNetworkAdapter is a mock of the NetworkAdapter interface.
type MockNetworkAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockNetworkAdapterMockRecorder
}

type MockNetworkAdapterMockRecorder struct {
	mock *MockNetworkAdapter
}

func NewMockNetworkAdapter(ctrl *gomock.Controller) *MockNetworkAdapter {
	m := &MockNetworkAdapter{ctrl: ctrl}
	m.recorder = &MockNetworkAdapterMockRecorder{m}
	return m
}

func (m *MockNetworkAdapter) EXPECT() *MockNetworkAdapterMockRecorder { return m.recorder }

func (m *MockNetworkAdapter) BroadcastTransaction(ctx context.Context, raw []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BroadcastTransaction", ctx, raw)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockNetworkAdapterMockRecorder) BroadcastTransaction(ctx, raw any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BroadcastTransaction", reflect.TypeOf((*MockNetworkAdapter)(nil).BroadcastTransaction), ctx, raw)
}

func (m *MockNetworkAdapter) NetworkInfo(ctx context.Context) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NetworkInfo", ctx)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockNetworkAdapterMockRecorder) NetworkInfo(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NetworkInfo", reflect.TypeOf((*MockNetworkAdapter)(nil).NetworkInfo), ctx)
}

func (m *MockNetworkAdapter) PublicAddress(ctx context.Context) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PublicAddress", ctx)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockNetworkAdapterMockRecorder) PublicAddress(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PublicAddress", reflect.TypeOf((*MockNetworkAdapter)(nil).PublicAddress), ctx)
}

func (m *MockNetworkAdapter) AlivePeers(ctx context.Context, max int) ([]adapter.PeerInfo, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AlivePeers", ctx, max)
	ret0, _ := ret[0].([]adapter.PeerInfo)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockNetworkAdapterMockRecorder) AlivePeers(ctx, max any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AlivePeers", reflect.TypeOf((*MockNetworkAdapter)(nil).AlivePeers), ctx, max)
}

func (m *MockNetworkAdapter) AlivePeersCount(ctx context.Context) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AlivePeersCount", ctx)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockNetworkAdapterMockRecorder) AlivePeersCount(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AlivePeersCount", reflect.TypeOf((*MockNetworkAdapter)(nil).AlivePeersCount), ctx)
}

func (m *MockNetworkAdapter) FloodRequest(ctx context.Context, inv adapter.Inventory, ttl *int, hops int) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FloodRequest", ctx, inv, ttl, hops)
	ret0, _ := ret[0].(error)
	return ret0
}

func (mr *MockNetworkAdapterMockRecorder) FloodRequest(ctx, inv, ttl, hops any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FloodRequest", reflect.TypeOf((*MockNetworkAdapter)(nil).FloodRequest), ctx, inv, ttl, hops)
}

// MockVmAdapter is a mock of the VmAdapter interface.
type MockVmAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockVmAdapterMockRecorder
}

type MockVmAdapterMockRecorder struct {
	mock *MockVmAdapter
}

func NewMockVmAdapter(ctrl *gomock.Controller) *MockVmAdapter {
	m := &MockVmAdapter{ctrl: ctrl}
	m.recorder = &MockVmAdapterMockRecorder{m}
	return m
}

func (m *MockVmAdapter) EXPECT() *MockVmAdapterMockRecorder { return m.recorder }

func (m *MockVmAdapter) SimulateTransaction(ctx context.Context, raw []byte) (*adapter.SimulationResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SimulateTransaction", ctx, raw)
	ret0, _ := ret[0].(*adapter.SimulationResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVmAdapterMockRecorder) SimulateTransaction(ctx, raw any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SimulateTransaction", reflect.TypeOf((*MockVmAdapter)(nil).SimulateTransaction), ctx, raw)
}

func (m *MockVmAdapter) PreverifyTransaction(ctx context.Context, raw []byte) (*adapter.PreverificationResult, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "PreverifyTransaction", ctx, raw)
	ret0, _ := ret[0].(*adapter.PreverificationResult)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVmAdapterMockRecorder) PreverifyTransaction(ctx, raw any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PreverifyTransaction", reflect.TypeOf((*MockVmAdapter)(nil).PreverifyTransaction), ctx, raw)
}

func (m *MockVmAdapter) StateRoot(ctx context.Context) ([32]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StateRoot", ctx)
	ret0, _ := ret[0].([32]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVmAdapterMockRecorder) StateRoot(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StateRoot", reflect.TypeOf((*MockVmAdapter)(nil).StateRoot), ctx)
}

func (m *MockVmAdapter) BlockGasLimit(ctx context.Context) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockGasLimit", ctx)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVmAdapterMockRecorder) BlockGasLimit(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockGasLimit", reflect.TypeOf((*MockVmAdapter)(nil).BlockGasLimit), ctx)
}

func (m *MockVmAdapter) VmConfig(ctx context.Context) (*adapter.VmConfig, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "VmConfig", ctx)
	ret0, _ := ret[0].(*adapter.VmConfig)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVmAdapterMockRecorder) VmConfig(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "VmConfig", reflect.TypeOf((*MockVmAdapter)(nil).VmConfig), ctx)
}

func (m *MockVmAdapter) Provisioners(ctx context.Context) ([]adapter.Provisioner, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Provisioners", ctx)
	ret0, _ := ret[0].([]adapter.Provisioner)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVmAdapterMockRecorder) Provisioners(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Provisioners", reflect.TypeOf((*MockVmAdapter)(nil).Provisioners), ctx)
}

func (m *MockVmAdapter) StakeInfoByPK(ctx context.Context, pubKey []byte) (*adapter.Stake, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "StakeInfoByPK", ctx, pubKey)
	ret0, _ := ret[0].(*adapter.Stake)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVmAdapterMockRecorder) StakeInfoByPK(ctx, pubKey any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StakeInfoByPK", reflect.TypeOf((*MockVmAdapter)(nil).StakeInfoByPK), ctx, pubKey)
}

func (m *MockVmAdapter) AllStakeData(ctx context.Context) ([]adapter.Provisioner, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AllStakeData", ctx)
	ret0, _ := ret[0].([]adapter.Provisioner)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVmAdapterMockRecorder) AllStakeData(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AllStakeData", reflect.TypeOf((*MockVmAdapter)(nil).AllStakeData), ctx)
}

func (m *MockVmAdapter) QueryContractRaw(ctx context.Context, contractID []byte, method string, baseCommit []byte, args [][]byte) ([]byte, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "QueryContractRaw", ctx, contractID, method, baseCommit, args)
	ret0, _ := ret[0].([]byte)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockVmAdapterMockRecorder) QueryContractRaw(ctx, contractID, method, baseCommit, args any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "QueryContractRaw", reflect.TypeOf((*MockVmAdapter)(nil).QueryContractRaw), ctx, contractID, method, baseCommit, args)
}

// MockArchiveAdapter is a mock of the ArchiveAdapter interface.
type MockArchiveAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockArchiveAdapterMockRecorder
}

type MockArchiveAdapterMockRecorder struct {
	mock *MockArchiveAdapter
}

func NewMockArchiveAdapter(ctrl *gomock.Controller) *MockArchiveAdapter {
	m := &MockArchiveAdapter{ctrl: ctrl}
	m.recorder = &MockArchiveAdapterMockRecorder{m}
	return m
}

func (m *MockArchiveAdapter) EXPECT() *MockArchiveAdapterMockRecorder { return m.recorder }

func (m *MockArchiveAdapter) AccountHistory(ctx context.Context, address []byte, start, end uint64) ([]adapter.Transaction, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccountHistory", ctx, address, start, end)
	ret0, _ := ret[0].([]adapter.Transaction)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

func (mr *MockArchiveAdapterMockRecorder) AccountHistory(ctx, address, start, end any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccountHistory", reflect.TypeOf((*MockArchiveAdapter)(nil).AccountHistory), ctx, address, start, end)
}
