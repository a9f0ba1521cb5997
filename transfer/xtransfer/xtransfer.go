// Package xtransfer builds calls for the chain-to-chain asset-transfer
// pallet. Unlike the other pallets it requires an explicit destination
// execution weight, known only for specific destination chains.
package xtransfer

import (
	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/transfer/protocol"
	"github.com/sirupsen/logrus"
)

const module = "XTransfer"
const sectionTransfer = "transfer"

// Build constructs the XTransfer call for the input. Only para-to-para
// transfers are served, and only toward destinations with a configured weight
// entry.
func Build(in *protocol.TransferInput) (pararoute.SerializedCall, error) {
	if in.Scenario != pararoute.ParaToPara {
		return pararoute.SerializedCall{}, pararoute.Errorf(pararoute.ErrUnsupportedScenario,
			"%s serves only para-to-para transfers", in.Origin.Chain)
	}
	weight, ok := in.Origin.DestWeights[in.DestChain()]
	if !ok {
		return pararoute.SerializedCall{}, pararoute.Errorf(pararoute.ErrNodeNotSupported,
			"%s has no weight entry for destination %s", in.Origin.Chain, in.DestChain())
	}

	location := pararoute.MultiLocation{Parents: pararoute.ParentsZero, Interior: pararoute.Here()}
	if in.Overridden != nil && in.Overridden.Location != nil {
		location = *in.Overridden.Location
	} else if in.Asset != nil && in.Asset.Location != nil {
		location = *in.Asset.Location
	}
	asset := pararoute.NewMultiAsset(in.Version, in.Amount, location)

	account, err := accountJunction(in.Recipient)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	dest := pararoute.MultiLocation{
		Parents:  pararoute.ParentsOne,
		Interior: pararoute.X(pararoute.ParachainJunction(in.ParaIDTo), account),
	}

	logrus.WithFields(logrus.Fields{
		"origin":   in.Origin.Chain,
		"dest":     in.DestChain(),
		"ref_time": weight.RefTime,
	}).Debug("built xtransfer transfer")
	return pararoute.SerializedCall{
		Module:  module,
		Section: sectionTransfer,
		Parameters: map[string]interface{}{
			"asset":       asset,
			"dest":        dest,
			"dest_weight": protocol.WeightLimit(weight),
		},
	}, nil
}

func accountJunction(recipient pararoute.Recipient) (pararoute.Junction, error) {
	if recipient.IsLocation() {
		return pararoute.Junction{}, pararoute.Errorf(pararoute.ErrInvalidAddress,
			"raw multi-location recipients are not supported by this pallet")
	}
	if pararoute.IsEVMAddress(recipient.Address) {
		return pararoute.AccountKey20Junction(string(recipient.Address)), nil
	}
	idHex, err := pararoute.AccountIDHex(recipient.Address)
	if err != nil {
		return pararoute.Junction{}, pararoute.Errorf(pararoute.ErrInvalidAddress, "address %s: %v", recipient.Address, err)
	}
	return pararoute.AccountID32Junction(idHex), nil
}
