package rpc

import (
	"context"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/model"
	"github.com/dusk-network/rusk/rpcerr"
	"github.com/dusk-network/rusk/utils"
)

// simulateTransaction dry-runs raw transaction bytes without mempool
// admission (§4.1 "simulation, not a state-mutating submission").
func (h *Handler) simulateTransaction(ctx context.Context, rawHex string) (model.SimulationResult, *jsonrpc.Error) {
	raw, err := utils.HexToBytes(rawHex, 0)
	if err != nil {
		return model.SimulationResult{}, rpcerr.InvalidParams(err.Error())
	}
	res, aerr := h.vm.SimulateTransaction(ctx, raw)
	if aerr != nil {
		return model.SimulationResult{}, rpcerr.Map(aerr)
	}
	return model.SimulationResultFromAdapter(*res), nil
}

// preverifyTransaction checks signatures/nullifiers only, no mempool
// nonce/fee checks (§4.1).
func (h *Handler) preverifyTransaction(ctx context.Context, rawHex string) (model.PreverificationResult, *jsonrpc.Error) {
	raw, err := utils.HexToBytes(rawHex, 0)
	if err != nil {
		return model.PreverificationResult{}, rpcerr.InvalidParams(err.Error())
	}
	res, aerr := h.vm.PreverifyTransaction(ctx, raw)
	if aerr != nil {
		return model.PreverificationResult{}, rpcerr.Map(aerr)
	}
	return model.PreverificationResultFromAdapter(*res), nil
}

// getStateRoot returns the current VM state root as hex.
func (h *Handler) getStateRoot(ctx context.Context) (string, *jsonrpc.Error) {
	root, aerr := h.vm.StateRoot(ctx)
	if aerr != nil {
		return "", rpcerr.Map(aerr)
	}
	return utils.BytesToHex(root[:]), nil
}

// getBlockGasLimit returns the current per-block gas ceiling.
func (h *Handler) getBlockGasLimit(ctx context.Context) (model.Amount, *jsonrpc.Error) {
	limit, aerr := h.vm.BlockGasLimit(ctx)
	if aerr != nil {
		return 0, rpcerr.Map(aerr)
	}
	return model.Amount(limit), nil
}

// getVmConfig returns the VM's static execution configuration.
func (h *Handler) getVmConfig(ctx context.Context) (model.VmConfig, *jsonrpc.Error) {
	cfg, aerr := h.vm.VmConfig(ctx)
	if aerr != nil {
		return model.VmConfig{}, rpcerr.Map(aerr)
	}
	return model.VmConfigFromAdapter(*cfg), nil
}

// getProvisioners lists every consensus-eligible staker; entries with a
// malformed public key are dropped rather than failing the response
// (§4.2, model.ProvisionersFromAdapter).
func (h *Handler) getProvisioners(ctx context.Context) ([]model.Provisioner, *jsonrpc.Error) {
	ps, aerr := h.vm.Provisioners(ctx)
	if aerr != nil {
		return nil, rpcerr.Map(aerr)
	}
	return model.ProvisionersFromAdapter(ps, h.log), nil
}

// getStakeInfo resolves a single provisioner's stake by its hex-encoded
// BLS12-381 public key.
func (h *Handler) getStakeInfo(ctx context.Context, pubKeyHex string) (model.Stake, *jsonrpc.Error) {
	raw, err := utils.HexToBytes(pubKeyHex, 0)
	if err != nil {
		return model.Stake{}, rpcerr.InvalidParams(err.Error())
	}
	s, aerr := h.vm.StakeInfoByPK(ctx, raw)
	if aerr != nil {
		return model.Stake{}, rpcerr.Map(aerr)
	}
	return model.StakeFromAdapter(*s), nil
}

// queryContractRaw executes a read-only contract call pinned to
// baseCommit, returning the raw response bytes as hex.
func (h *Handler) queryContractRaw(ctx context.Context, contractIDHex, method, baseCommitHex string, argsHex []string) (string, *jsonrpc.Error) {
	contractID, err := utils.HexToBytes(contractIDHex, 0)
	if err != nil {
		return "", rpcerr.InvalidParams(err.Error())
	}
	baseCommit, err := utils.HexToBytes(baseCommitHex, 0)
	if err != nil {
		return "", rpcerr.InvalidParams(err.Error())
	}
	args := make([][]byte, 0, len(argsHex))
	for _, a := range argsHex {
		raw, err := utils.HexToBytes(a, 0)
		if err != nil {
			return "", rpcerr.InvalidParams(err.Error())
		}
		args = append(args, raw)
	}
	res, aerr := h.vm.QueryContractRaw(ctx, contractID, method, baseCommit, args)
	if aerr != nil {
		return "", rpcerr.Map(aerr)
	}
	return utils.BytesToHex(res), nil
}
