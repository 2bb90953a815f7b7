package rpc

import "github.com/dusk-network/rusk/jsonrpc"

// param is a terse constructor for jsonrpc.Parameter, used only to keep
// the registration table in register below readable.
func param(name string, optional bool) jsonrpc.Parameter {
	return jsonrpc.Parameter{Name: name, Optional: optional}
}

// Register binds every method h implements onto s (§4.5: the registry
// is built once at startup and is immutable thereafter).
func Register(s *jsonrpc.Server, h *Handler) error {
	methods := []jsonrpc.Method{
		{
			Name:         "getBlockByHash",
			Params:       []jsonrpc.Parameter{param("hash", false)},
			Handler:      h.getBlockByHash,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getBlockByHeight",
			Params:       []jsonrpc.Parameter{param("height", false)},
			Handler:      h.getBlockByHeight,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getLatestBlock",
			Params:       nil,
			Handler:      h.getLatestBlock,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getBlockStatus",
			Params:       []jsonrpc.Parameter{param("height", false)},
			Handler:      h.getBlockStatus,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getBlockRange",
			Params:       []jsonrpc.Parameter{param("start_height", false), param("end_height", false)},
			Handler:      h.getBlockRange,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getBlocksRange",
			Params:       []jsonrpc.Parameter{param("start_height", false), param("end_height", false)},
			Handler:      h.getBlockRange,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getLatestBlocks",
			Params:       []jsonrpc.Parameter{param("count", false)},
			Handler:      h.getLatestBlocks,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getBlocksCount",
			Params:       nil,
			Handler:      h.getBlocksCount,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getBlockTransactionsByHash",
			Params:       []jsonrpc.Parameter{param("hash", false)},
			Handler:      h.getBlockTransactionsByHash,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getBlockTransactionsByHeight",
			Params:       []jsonrpc.Parameter{param("height", false)},
			Handler:      h.getBlockTransactionsByHeight,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getTransactionByHash",
			Params:       []jsonrpc.Parameter{param("hash", false)},
			Handler:      h.getTransactionByHash,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getTransactionStatus",
			Params:       []jsonrpc.Parameter{param("hash", false)},
			Handler:      h.getTransactionStatus,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getMempoolTransactionByHash",
			Params:       []jsonrpc.Parameter{param("hash", false)},
			Handler:      h.getMempoolTransactionByHash,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getMempoolTransactions",
			Params:       []jsonrpc.Parameter{param("limit", true)},
			Handler:      h.getMempoolTransactions,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getMempoolTransactionsCount",
			Params:       nil,
			Handler:      h.getMempoolTransactionsCount,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getMempoolInfo",
			Params:       nil,
			Handler:      h.getMempoolInfo,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "getNetworkInfo",
			Params:       nil,
			Handler:      h.getNetworkInfo,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityNetwork},
		},
		{
			Name:         "getPublicAddress",
			Params:       nil,
			Handler:      h.getPublicAddress,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityNetwork},
		},
		{
			Name:         "getAlivePeers",
			Params:       []jsonrpc.Parameter{param("max", true)},
			Handler:      h.getAlivePeers,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityNetwork},
		},
		{
			Name:         "getAlivePeersCount",
			Params:       nil,
			Handler:      h.getAlivePeersCount,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityNetwork},
		},
		{
			Name:         "broadcastTransaction",
			Params:       []jsonrpc.Parameter{param("raw", false)},
			Handler:      h.broadcastTransaction,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityNetwork},
		},
		{
			Name:         "floodRequest",
			Params:       []jsonrpc.Parameter{param("kind", false), param("hashes", true), param("ttl", true), param("hops", true)},
			Handler:      h.floodRequest,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityNetwork},
		},
		{
			Name:         "simulateTransaction",
			Params:       []jsonrpc.Parameter{param("raw", false)},
			Handler:      h.simulateTransaction,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityVM},
			Execution:    jsonrpc.ExecutionSimulate,
		},
		{
			Name:         "preverifyTransaction",
			Params:       []jsonrpc.Parameter{param("raw", false)},
			Handler:      h.preverifyTransaction,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityVM},
			Execution:    jsonrpc.ExecutionSimulate,
		},
		{
			Name:         "getStateRoot",
			Params:       nil,
			Handler:      h.getStateRoot,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityVM},
		},
		{
			Name:         "getBlockGasLimit",
			Params:       nil,
			Handler:      h.getBlockGasLimit,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityVM},
		},
		{
			Name:         "getVmConfig",
			Params:       nil,
			Handler:      h.getVmConfig,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityVM},
		},
		{
			Name:         "getProvisioners",
			Params:       nil,
			Handler:      h.getProvisioners,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityVM},
		},
		{
			Name:         "getStakeInfo",
			Params:       []jsonrpc.Parameter{param("pub_key", false)},
			Handler:      h.getStakeInfo,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityVM},
		},
		{
			Name:         "queryContractRaw",
			Params:       []jsonrpc.Parameter{param("contract_id", false), param("method", false), param("base_commit", false), param("args", true)},
			Handler:      h.queryContractRaw,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityVM},
			Execution:    jsonrpc.ExecutionSimulate,
		},
		{
			Name:         "subscribeBlockAcceptance",
			Params:       []jsonrpc.Parameter{param("include_txs", true)},
			Handler:      h.subscribeBlockAcceptance,
		},
		{
			Name:    "subscribeBlockFinalization",
			Params:  nil,
			Handler: h.subscribeBlockFinalization,
		},
		{
			Name:    "subscribeChainReorganization",
			Params:  nil,
			Handler: h.subscribeChainReorganization,
		},
		{
			Name:         "subscribeContractEvents",
			Params:       []jsonrpc.Parameter{param("contract_id", false), param("event_names", true), param("include_metadata", true)},
			Handler:      h.subscribeContractEvents,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "subscribeContractTransferEvents",
			Params:       []jsonrpc.Parameter{param("contract_id", false), param("event_names", true), param("min_amount", true), param("include_metadata", true)},
			Handler:      h.subscribeContractTransferEvents,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "subscribeMempoolAcceptance",
			Params:       []jsonrpc.Parameter{param("contract_id", true), param("include_details", true)},
			Handler:      h.subscribeMempoolAcceptance,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:         "subscribeMempoolEvents",
			Params:       []jsonrpc.Parameter{param("contract_id", true), param("include_details", true)},
			Handler:      h.subscribeMempoolEvents,
			Capabilities: []jsonrpc.Capability{jsonrpc.CapabilityDatabase},
		},
		{
			Name:    "unsubscribe",
			Params:  []jsonrpc.Parameter{param("id", false)},
			Handler: h.unsubscribe,
		},
		{
			Name:    "getSubscriptionStatus",
			Params:  []jsonrpc.Parameter{param("id", false)},
			Handler: h.getSubscriptionStatus,
		},
	}

	for _, m := range methods {
		if err := s.RegisterMethod(m); err != nil {
			return err
		}
	}
	return nil
}
