// Package xcmpallet builds calls dispatched by relay chains into their
// parachains. The section and fee handling come from the destination chain's
// configuration: most destinations take the plain reserve transfer, asset
// hubs take a limited teleport with an explicit fee weight.
package xcmpallet

import (
	"strings"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/transfer/protocol"
	"github.com/sirupsen/logrus"
)

const module = "XcmPallet"

// Build constructs the XcmPallet call for a relay-to-para transfer.
func Build(in *protocol.TransferInput) (pararoute.SerializedCall, error) {
	if in.Scenario != pararoute.RelayToPara {
		return pararoute.SerializedCall{}, pararoute.Errorf(pararoute.ErrUnsupportedScenario,
			"relay chain %s serves only relay-to-para transfers", in.Origin.Chain)
	}
	if in.DestChain() == pararoute.Ethereum {
		return pararoute.SerializedCall{}, pararoute.Errorf(pararoute.ErrIncompatibleChains,
			"Ethereum is not reachable from a relay chain, route through AssetHubPolkadot")
	}

	section, includeFee := relaySection(in)
	header := pararoute.CreateDestinationHeader(in.Scenario, in.Version, in.Destination, in.ParaIDTo, nil, nil)
	beneficiary, err := pararoute.CreateBeneficiary(in.Recipient, in.Scenario, pararoute.PalletXcmPallet, in.Version, in.ParaIDTo)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	// the transferred asset is the relay native asset at the local root
	assets := pararoute.CreateCurrencySpec(in.Amount, in.Version, pararoute.ParentsZero, in.Overridden, pararoute.Here())

	params := map[string]interface{}{
		"dest":           header,
		"beneficiary":    beneficiary,
		"assets":         assets,
		"fee_asset_item": uint32(0),
	}
	if includeFee || strings.HasPrefix(section, "limited_") {
		params["weight_limit"] = protocol.Unlimited
	}
	logrus.WithFields(logrus.Fields{
		"origin":  in.Origin.Chain,
		"dest":    in.DestChain(),
		"section": section,
	}).Debug("built xcmpallet transfer")
	return pararoute.SerializedCall{
		Module:     module,
		Section:    section,
		Parameters: params,
	}, nil
}

func relaySection(in *protocol.TransferInput) (string, bool) {
	if in.DestConfig != nil {
		return in.DestConfig.RelayToParaSection()
	}
	cfg := pararoute.ChainConfig{}
	return cfg.RelayToParaSection()
}
