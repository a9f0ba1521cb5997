// Package polkadotxcm builds calls for the general XCM-message pallet,
// including the bridged routes out of the Polkadot asset hub.
package polkadotxcm

import (
	"strings"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/transfer/protocol"
	"github.com/sirupsen/logrus"
)

const module = "PolkadotXcm"

const (
	sectionLimitedTeleport        = "limited_teleport_assets"
	sectionLimitedReserveTransfer = "limited_reserve_transfer_assets"
	sectionReserveTransfer        = "reserve_transfer_assets"
	sectionTransferAssets         = "transfer_assets"
)

// snowbridgeChainID is the Ethereum mainnet chain id used in the
// GlobalConsensus junction of bridged transfers.
const snowbridgeChainID = uint64(1)

// Build constructs the PolkadotXcm call for the input. The section comes from
// the origin chain's per-scenario configuration; transfers leaving the
// Polkadot asset hub over a bridge take dedicated shapes.
func Build(in *protocol.TransferInput) (pararoute.SerializedCall, error) {
	if in.Scenario == pararoute.RelayToPara {
		return pararoute.SerializedCall{}, pararoute.Errorf(pararoute.ErrUnsupportedScenario,
			"%s does not serve relay-to-para transfers", in.Origin.Chain)
	}
	if in.Origin.Chain == pararoute.AssetHubPolkadot {
		switch in.DestChain() {
		case pararoute.Ethereum:
			return buildSnowbridge(in)
		case pararoute.AssetHubKusama:
			return buildKusamaBridge(in)
		}
	}

	section := sectionFor(in)
	header := pararoute.CreateDestinationHeader(in.Scenario, in.Version, in.Destination, in.ParaIDTo, nil, nil)
	beneficiary, err := pararoute.CreateBeneficiary(in.Recipient, in.Scenario, pararoute.PalletPolkadotXcm, in.Version, in.ParaIDTo)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	assets := currencySpec(in)

	params := map[string]interface{}{
		"dest":           header,
		"beneficiary":    beneficiary,
		"assets":         assets,
		"fee_asset_item": feeAssetItem(in),
	}
	if hasWeightLimit(section) {
		params["weight_limit"] = protocol.Unlimited
	}
	logrus.WithFields(logrus.Fields{
		"origin":  in.Origin.Chain,
		"section": section,
	}).Debug("built polkadotxcm transfer")
	return pararoute.SerializedCall{
		Module:     module,
		Section:    section,
		Parameters: params,
	}, nil
}

func sectionFor(in *protocol.TransferInput) string {
	if in.Scenario == pararoute.ParaToRelay {
		if in.Origin.MethodParaToRelay != "" {
			return in.Origin.MethodParaToRelay
		}
		return sectionLimitedTeleport
	}
	if in.Origin.MethodParaToPara != "" {
		return in.Origin.MethodParaToPara
	}
	return sectionLimitedReserveTransfer
}

// limited_* and transfer_assets sections carry an explicit weight limit
// argument; the unlimited reserve sections do not.
func hasWeightLimit(section string) bool {
	return strings.HasPrefix(section, "limited_") || section == sectionTransferAssets
}

func currencySpec(in *protocol.TransferInput) pararoute.Versioned {
	// toward the relay the transferred asset is always the relay native asset
	if in.Scenario == pararoute.ParaToRelay {
		return pararoute.CreateCurrencySpec(in.Amount, in.Version, pararoute.ParentsOne, in.Overridden, pararoute.Here())
	}
	interior := pararoute.Here()
	parents := pararoute.ParentsZero
	if in.Overridden == nil && in.Asset != nil && in.Asset.Location != nil {
		parents = in.Asset.Location.Parents
		interior = in.Asset.Location.Interior
	}
	return pararoute.CreateCurrencySpec(in.Amount, in.Version, parents, in.Overridden, interior)
}

func feeAssetItem(in *protocol.TransferInput) uint32 {
	if in.FeeAssetIndex >= 0 {
		return uint32(in.FeeAssetIndex)
	}
	if in.Overridden != nil {
		for i, a := range in.Overridden.MultiAssets {
			if a.IsFeeAsset {
				return uint32(i)
			}
		}
	}
	return 0
}

// buildSnowbridge constructs the transfer out of the Polkadot asset hub into
// Ethereum. The destination is the Ethereum consensus system two parents up,
// the beneficiary a 20-byte account key, and the asset the bridged token
// contract under the same consensus.
func buildSnowbridge(in *protocol.TransferInput) (pararoute.SerializedCall, error) {
	if !in.Recipient.IsLocation() && !pararoute.IsEVMAddress(in.Recipient.Address) {
		return pararoute.SerializedCall{}, pararoute.Errorf(pararoute.ErrInvalidAddress,
			"bridged transfers to Ethereum require an EVM address, got %s", in.Recipient.Address)
	}
	if in.Asset == nil || in.Asset.AssetID == "" {
		return pararoute.SerializedCall{}, pararoute.Errorf(pararoute.ErrAssetNotSupported,
			"bridged transfers to Ethereum require a token with a contract id")
	}
	ethereum := pararoute.GlobalConsensusEthereumJunction(snowbridgeChainID)
	parents := pararoute.ParentsTwo
	header := pararoute.CreateDestinationHeader(in.Scenario, in.Version, in.Destination, in.ParaIDTo, &ethereum, &parents)
	beneficiary, err := pararoute.CreateBeneficiary(in.Recipient, in.Scenario, pararoute.PalletPolkadotXcm, in.Version, in.ParaIDTo)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	assetLocation := pararoute.MultiLocation{
		Parents: pararoute.ParentsTwo,
		Interior: pararoute.X(
			ethereum,
			pararoute.AccountKey20Junction(in.Asset.AssetID),
		),
	}
	assets := pararoute.NewVersioned(in.Version, []pararoute.MultiAsset{
		pararoute.NewMultiAsset(in.Version, in.Amount, assetLocation),
	})
	return pararoute.SerializedCall{
		Module:  module,
		Section: sectionTransferAssets,
		Parameters: map[string]interface{}{
			"dest":           header,
			"beneficiary":    beneficiary,
			"assets":         assets,
			"fee_asset_item": uint32(0),
			"weight_limit":   protocol.Unlimited,
		},
	}, nil
}

// buildKusamaBridge constructs the cross-ecosystem transfer between the two
// asset hubs. Sending KSM home teleports it with the V4 transfer_assets form;
// sending DOT across reserve-transfers it with the V3 form.
func buildKusamaBridge(in *protocol.TransferInput) (pararoute.SerializedCall, error) {
	kusama := pararoute.GlobalConsensusJunction("Kusama")
	if in.Asset != nil && strings.EqualFold(in.Asset.Symbol, "KSM") {
		version := pararoute.V4
		dest := pararoute.NewVersioned(version, pararoute.MultiLocation{
			Parents:  pararoute.ParentsTwo,
			Interior: pararoute.X(kusama, pararoute.ParachainJunction(in.ParaIDTo)),
		})
		beneficiary, err := pararoute.CreateBeneficiary(in.Recipient, in.Scenario, pararoute.PalletPolkadotXcm, version, in.ParaIDTo)
		if err != nil {
			return pararoute.SerializedCall{}, err
		}
		assets := pararoute.NewVersioned(version, []pararoute.MultiAsset{
			pararoute.NewMultiAsset(version, in.Amount, pararoute.MultiLocation{
				Parents:  pararoute.ParentsTwo,
				Interior: pararoute.X(kusama),
			}),
		})
		return pararoute.SerializedCall{
			Module:  module,
			Section: sectionTransferAssets,
			Parameters: map[string]interface{}{
				"dest":           dest,
				"beneficiary":    beneficiary,
				"assets":         assets,
				"fee_asset_item": uint32(0),
				"weight_limit":   protocol.Unlimited,
			},
		}, nil
	}

	version := pararoute.V3
	dest := pararoute.NewVersioned(version, pararoute.MultiLocation{
		Parents:  pararoute.ParentsTwo,
		Interior: pararoute.X(kusama, pararoute.ParachainJunction(in.ParaIDTo)),
	})
	beneficiary, err := pararoute.CreateBeneficiary(in.Recipient, in.Scenario, pararoute.PalletPolkadotXcm, version, in.ParaIDTo)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	assets := pararoute.NewVersioned(version, []pararoute.MultiAsset{
		pararoute.NewMultiAsset(version, in.Amount, pararoute.RelayLocation()),
	})
	return pararoute.SerializedCall{
		Module:  module,
		Section: sectionLimitedReserveTransfer,
		Parameters: map[string]interface{}{
			"dest":           dest,
			"beneficiary":    beneficiary,
			"assets":         assets,
			"fee_asset_item": uint32(0),
			"weight_limit":   protocol.Unlimited,
		},
	}, nil
}
