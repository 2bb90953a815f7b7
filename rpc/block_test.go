package rpc_test

import (
	"context"
	"testing"

	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/mocks"
	"github.com/dusk-network/rusk/rpc"
	"github.com/dusk-network/rusk/utils"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestServer(t *testing.T, db adapter.DatabaseAdapter, net adapter.NetworkAdapter, vm adapter.VmAdapter) *jsonrpc.Server {
	t.Helper()
	s := jsonrpc.NewServer(1, utils.NewNopZapLogger())
	h := rpc.New(db, net, vm, nil, nil, utils.NewNopZapLogger(), 100, 50, false)
	require.NoError(t, rpc.Register(s, h))
	return s
}

func TestGetBlockByHeightReturnsConvertedBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabaseAdapter(ctrl)
	db.EXPECT().BlockByHeight(gomock.Any(), uint64(42)).Return(&adapter.Block{
		Header: adapter.Header{Hash: []byte{0xAB}, Height: 42},
		Label:  adapter.LabelFinal,
	}, nil)

	s := newTestServer(t, db, nil, nil)
	resp, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"getBlockByHeight","params":[42]}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"hash":"ab"`)
	require.Contains(t, string(resp), `"label":"Final"`)
}

func TestGetBlockRangeRejectsExceedingMaxBlockRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabaseAdapter(ctrl)
	// maxBlockRange is 100 in newTestServer; request a range of 200.
	s := newTestServer(t, db, nil, nil)
	resp, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"getBlockRange","params":{"start_height":0,"end_height":199}}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"error"`)
	require.Contains(t, string(resp), `max_block_range`)
}

func TestGetBlockByHashRejectsInvalidHex(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabaseAdapter(ctrl)
	s := newTestServer(t, db, nil, nil)
	resp, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"getBlockByHash","params":["not-hex"]}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"error"`)
}

func TestGetMempoolInfoReportsCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mocks.NewMockDatabaseAdapter(ctrl)
	db.EXPECT().MempoolCount(gomock.Any()).Return(7, nil)

	s := newTestServer(t, db, nil, nil)
	resp, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"getMempoolInfo"}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"count":7`)
}

func TestGetAlivePeersCapsAtConfiguredMax(t *testing.T) {
	ctrl := gomock.NewController(t)
	net := mocks.NewMockNetworkAdapter(ctrl)
	net.EXPECT().AlivePeers(gomock.Any(), 50).Return([]adapter.PeerInfo{}, nil)

	s := newTestServer(t, nil, net, nil)
	_, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"getAlivePeers","params":[500]}`))
	require.NoError(t, err)
}

func TestGetVmConfigReturnsConvertedConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	vm := mocks.NewMockVmAdapter(ctrl)
	vm.EXPECT().VmConfig(gomock.Any()).Return(&adapter.VmConfig{BlockGasLimit: 1000}, nil)

	s := newTestServer(t, nil, nil, vm)
	resp, err := s.Handle(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"getVmConfig"}`))
	require.NoError(t, err)
	require.Contains(t, string(resp), `"block_gas_limit":1000`)
}
