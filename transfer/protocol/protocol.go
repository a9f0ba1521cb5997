// Package protocol defines the input bundle shared by the pallet-specific
// call builders. Builders are pure: they turn an input into a SerializedCall
// without touching the network.
package protocol

import (
	pararoute "github.com/pararoute/pararoute"
)

// TransferInput is everything a call builder needs, resolved and validated by
// the dispatcher beforehand.
type TransferInput struct {
	Origin      *pararoute.ChainConfig
	Destination pararoute.Destination
	// DestConfig is nil when the destination is a raw multi-location.
	DestConfig *pararoute.ChainConfig
	// ParaIDTo is the destination parachain id, resolved from the registry or
	// overridden by the caller.
	ParaIDTo uint32
	// Asset is the resolved registry asset. Nil when the currency is an
	// override form, or when the lookup missed on a route with the asset
	// check disabled.
	Asset      *pararoute.Asset
	Currency   pararoute.CurrencyInput
	Amount     pararoute.AmountBlockchain
	Recipient  pararoute.Recipient
	Scenario   pararoute.Scenario
	Version    pararoute.Version
	Overridden *pararoute.OverriddenAsset
	// FeeAssetIndex selects the fee member of a multi-asset list, negative
	// when unset.
	FeeAssetIndex int
}

// DestChain returns the destination chain, or empty for raw-location
// destinations.
func (in *TransferInput) DestChain() pararoute.Chain {
	if in.DestConfig != nil {
		return in.DestConfig.Chain
	}
	return in.Destination.Chain
}

// Unlimited is the weight limit used when the destination prices execution
// itself.
const Unlimited = "Unlimited"

// WeightLimit renders an explicit dest weight the way the pallets expect it.
func WeightLimit(weight pararoute.DestWeight) map[string]interface{} {
	return map[string]interface{}{
		"ref_time":   weight.RefTime,
		"proof_size": weight.ProofSize,
	}
}
