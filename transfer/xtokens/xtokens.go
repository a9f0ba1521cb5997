// Package xtokens builds calls for the symmetric token-transfer pallet.
package xtokens

import (
	"strconv"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/transfer/protocol"
	"github.com/sirupsen/logrus"
)

const module = "XTokens"

const (
	sectionTransfer    = "transfer"
	sectionMultiasset  = "transfer_multiasset"
	sectionMultiassets = "transfer_multiassets"
)

// Build constructs the XTokens call for the input. Single-currency transfers
// use the plain transfer section with the chain's currency rule; transfers
// toward an asset hub and multi-asset overrides use the multiasset sections,
// which identify assets by location instead of local id.
func Build(in *protocol.TransferInput) (pararoute.SerializedCall, error) {
	if in.Scenario == pararoute.RelayToPara {
		return pararoute.SerializedCall{}, pararoute.Errorf(pararoute.ErrUnsupportedScenario,
			"%s does not serve relay-to-para transfers", in.Origin.Chain)
	}

	if in.Overridden != nil {
		return buildOverridden(in)
	}
	if useMultiassets(in) {
		if call, ok := buildAssetHubMultiassets(in); ok {
			return call, nil
		}
		// asset has no registered location, fall through to plain transfer
	}
	return buildTransfer(in)
}

// useMultiassets reports whether the transfer must use the location-addressed
// form. Asset hubs reject the local-id form from sibling parachains; Bifrost
// runtimes keep the single-currency form even toward asset hubs.
func useMultiassets(in *protocol.TransferInput) bool {
	return in.Scenario == pararoute.ParaToPara &&
		pararoute.IsAssetHub(in.DestChain()) &&
		!pararoute.IsBifrost(in.Origin.Chain)
}

func buildTransfer(in *protocol.TransferInput) (pararoute.SerializedCall, error) {
	currency, err := currencySelection(in.Origin, assetOrFallback(in))
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	dest, err := pararoute.CreateBeneficiary(in.Recipient, in.Scenario, pararoute.PalletXTokens, in.Version, in.ParaIDTo)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	logrus.WithFields(logrus.Fields{
		"origin":   in.Origin.Chain,
		"section":  sectionTransfer,
		"currency": in.Currency.String(),
	}).Debug("built xtokens transfer")
	return pararoute.SerializedCall{
		Module:  module,
		Section: sectionTransfer,
		Parameters: map[string]interface{}{
			"currency_id":       currency,
			"amount":            in.Amount,
			"dest":              dest,
			"dest_weight_limit": protocol.Unlimited,
		},
	}, nil
}

func buildAssetHubMultiassets(in *protocol.TransferInput) (pararoute.SerializedCall, bool) {
	if in.Asset == nil || in.Asset.Location == nil {
		return pararoute.SerializedCall{}, false
	}
	dest, err := pararoute.CreateBeneficiary(in.Recipient, in.Scenario, pararoute.PalletXTokens, in.Version, in.ParaIDTo)
	if err != nil {
		return pararoute.SerializedCall{}, false
	}
	assets := pararoute.NewVersioned(in.Version, []pararoute.MultiAsset{
		pararoute.NewMultiAsset(in.Version, in.Amount, *in.Asset.Location),
	})
	return pararoute.SerializedCall{
		Module:  module,
		Section: sectionMultiassets,
		Parameters: map[string]interface{}{
			"assets":            assets,
			"fee_item":          uint32(0),
			"dest":              dest,
			"dest_weight_limit": protocol.Unlimited,
		},
	}, true
}

func buildOverridden(in *protocol.TransferInput) (pararoute.SerializedCall, error) {
	dest, err := pararoute.CreateBeneficiary(in.Recipient, in.Scenario, pararoute.PalletXTokens, in.Version, in.ParaIDTo)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	if in.Overridden.Location != nil {
		asset := pararoute.NewVersioned(in.Version,
			pararoute.NewMultiAsset(in.Version, in.Amount, *in.Overridden.Location))
		return pararoute.SerializedCall{
			Module:  module,
			Section: sectionMultiasset,
			Parameters: map[string]interface{}{
				"asset":             asset,
				"dest":              dest,
				"dest_weight_limit": protocol.Unlimited,
			},
		}, nil
	}
	assets := make([]pararoute.MultiAsset, 0, len(in.Overridden.MultiAssets))
	feeItem := uint32(0)
	for i, a := range in.Overridden.MultiAssets {
		if a.IsFeeAsset {
			feeItem = uint32(i)
		}
		assets = append(assets, a.MultiAsset)
	}
	if in.FeeAssetIndex >= 0 {
		feeItem = uint32(in.FeeAssetIndex)
	}
	return pararoute.SerializedCall{
		Module:  module,
		Section: sectionMultiassets,
		Parameters: map[string]interface{}{
			"assets":            pararoute.NewVersioned(in.Version, assets),
			"fee_item":          feeItem,
			"dest":              dest,
			"dest_weight_limit": protocol.Unlimited,
		},
	}, nil
}

// assetOrFallback returns the resolved asset, or a stand-in built from the
// raw currency input when resolution was bypassed for the route.
func assetOrFallback(in *protocol.TransferInput) *pararoute.Asset {
	if in.Asset != nil {
		return in.Asset
	}
	if in.Currency.IsID() {
		return &pararoute.Asset{AssetID: in.Currency.ID}
	}
	asset := &pararoute.Asset{Symbol: in.Currency.Symbol}
	if in.Currency.Symbol != in.Origin.NativeAssetSymbol() {
		asset.AssetID = in.Currency.Symbol
	}
	return asset
}

// currencySelection renders the currency argument per the chain's configured
// rule.
func currencySelection(cfg *pararoute.ChainConfig, asset *pararoute.Asset) (interface{}, error) {
	if asset == nil {
		return nil, pararoute.Errorf(pararoute.ErrInvalidCurrency, "no asset resolved for %s", cfg.Chain)
	}
	switch cfg.CurrencyRule {
	case pararoute.RuleToken:
		if asset.IsNative() {
			return map[string]interface{}{"Token": asset.Symbol}, nil
		}
		return map[string]interface{}{"ForeignAsset": asset.AssetID}, nil
	case pararoute.RuleSelfReserve:
		if asset.IsNative() {
			return cfg.CurrencyKeyword, nil
		}
		return map[string]interface{}{"ForeignAsset": asset.AssetID}, nil
	case pararoute.RuleOtherReserve:
		if asset.IsNative() {
			return cfg.CurrencyKeyword, nil
		}
		return map[string]interface{}{"OtherReserve": asset.AssetID}, nil
	case pararoute.RuleCurrencyWrapper:
		id := asset.AssetID
		if id == "" {
			// wrapper chains address their native asset by id too
			id = "0"
		}
		return map[string]interface{}{cfg.CurrencyKeyword: id}, nil
	case pararoute.RuleRawID:
		if asset.IsNative() {
			return rawID("0"), nil
		}
		return rawID(asset.AssetID), nil
	}
	return nil, pararoute.Errorf(pararoute.ErrUnsupportedScenario,
		"chain %s has no currency rule configured", cfg.Chain)
}

func rawID(id string) interface{} {
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		return n
	}
	return id
}
