package model

import (
	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/utils"
	"github.com/jinzhu/copier"
)

// SimulationResult is the wire shape of simulateTransaction.
type SimulationResult struct {
	Success     bool    `json:"success"`
	GasEstimate *Amount `json:"gas_estimate,omitempty"`
	Err         *string `json:"err,omitempty"`
}

// SimulationResultFromAdapter converts an adapter.SimulationResult.
func SimulationResultFromAdapter(s adapter.SimulationResult) SimulationResult {
	out := SimulationResult{Success: s.Success, Err: s.Err}
	if s.GasEstimate != nil {
		out.GasEstimate = utils.Ptr(Amount(*s.GasEstimate))
	}
	return out
}

// PreverificationResult is the wire shape of preverifyTransaction.
type PreverificationResult struct {
	Valid  bool    `json:"valid"`
	Reason *string `json:"reason,omitempty"`
}

// PreverificationResultFromAdapter converts an
// adapter.PreverificationResult; copier.Copy handles the two
// identically-shaped fields (Valid, Reason) exactly.
func PreverificationResultFromAdapter(p adapter.PreverificationResult) PreverificationResult {
	var out PreverificationResult
	_ = copier.Copy(&out, &p)
	return out
}

// VmConfig is the wire shape of getVmConfig.
type VmConfig struct {
	BlockGasLimit    Amount `json:"block_gas_limit"`
	GasPerDeployByte Amount `json:"gas_per_deploy_byte"`
	MinGasLimit      Amount `json:"min_gas_limit"`
}

// VmConfigFromAdapter converts an adapter.VmConfig.
func VmConfigFromAdapter(c adapter.VmConfig) VmConfig {
	return VmConfig{
		BlockGasLimit:    Amount(c.BlockGasLimit),
		GasPerDeployByte: Amount(c.GasPerDeployByte),
		MinGasLimit:      Amount(c.MinGasLimit),
	}
}

// Stake is the wire shape of a provisioner's staked amount.
type Stake struct {
	Amount  Amount `json:"amount"`
	Expiry  *int64 `json:"expiry,omitempty"`
	Blocked bool   `json:"blocked"`
}

// StakeFromAdapter converts an adapter.Stake.
func StakeFromAdapter(s adapter.Stake) Stake {
	return Stake{Amount: Amount(s.Amount), Expiry: s.Expiry, Blocked: s.Blocked}
}

// Provisioner is the wire shape of a consensus-eligible staker. PubKey
// validation (§4.2) means a Provisioner whose raw key is not a valid
// BLS12-381 point is dropped by ProvisionersFromAdapter rather than
// surfaced with a zero-value key.
type Provisioner struct {
	PubKey PubKey `json:"pub_key"`
	Stake  Stake  `json:"stake"`
}

// ProvisionerFromAdapter converts a single adapter.Provisioner.
func ProvisionerFromAdapter(p adapter.Provisioner) (Provisioner, error) {
	pk, err := NewPubKey(p.PubKey)
	if err != nil {
		return Provisioner{}, err
	}
	return Provisioner{PubKey: pk, Stake: StakeFromAdapter(p.Stake)}, nil
}

// ProvisionersFromAdapter converts a slice of adapter.Provisioner,
// logging and skipping any entry with a malformed public key rather
// than failing the whole getProvisioners response.
func ProvisionersFromAdapter(ps []adapter.Provisioner, log utils.SimpleLogger) []Provisioner {
	out := make([]Provisioner, 0, len(ps))
	for _, p := range ps {
		dto, err := ProvisionerFromAdapter(p)
		if err != nil {
			log.Warnw("dropping provisioner with invalid public key", "err", err)
			continue
		}
		out = append(out, dto)
	}
	return out
}
