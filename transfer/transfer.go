// Package transfer dispatches a transfer request to the pallet builder the
// origin chain supports, after validating the request end to end.
package transfer

import (
	"context"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/builder"
	"github.com/pararoute/pararoute/client"
	"github.com/pararoute/pararoute/registry"
	"github.com/pararoute/pararoute/transfer/polkadotxcm"
	"github.com/pararoute/pararoute/transfer/protocol"
	"github.com/pararoute/pararoute/transfer/xcmpallet"
	"github.com/pararoute/pararoute/transfer/xtokens"
	"github.com/pararoute/pararoute/transfer/xtransfer"
	"github.com/sirupsen/logrus"
)

// Send validates the transfer request and constructs the origin chain's
// transfer call. Construction itself is pure; the optional apis enable the
// pre-flight keep-alive projection (first the origin api, second the
// destination api).
func Send(ctx context.Context, args builder.TransferArgs, apiMaybe ...client.ChainApi) (pararoute.SerializedCall, error) {
	in, err := resolve(args)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}

	destAPI, owned := destApiFor(args, in, apiMaybe)
	if owned {
		defer destAPI.Disconnect()
	}
	if !args.KeepAliveDisabled() {
		skipProjection := in.Overridden != nil || in.Asset == nil
		result, err := CheckKeepAlive(ctx, destAPI, in.DestConfig, in.Recipient, in.Amount, skipProjection)
		if err != nil {
			return pararoute.SerializedCall{}, err
		}
		if result.Skipped {
			logrus.WithField("reason", result.Reason).Debug("keep-alive check skipped")
		}
	}

	return dispatch(in, args)
}

// destApiFor selects the destination api for the keep-alive projection. A
// caller-supplied handle stays the caller's to close; a client dialed from the
// configured url is owned here and must be disconnected after use.
func destApiFor(args builder.TransferArgs, in *protocol.TransferInput, apiMaybe []client.ChainApi) (client.ChainApi, bool) {
	if len(apiMaybe) > 1 {
		return apiMaybe[1], false
	}
	if url, ok := args.GetDestAPIURL(); ok && in.DestConfig != nil {
		return client.NewClient(in.DestConfig, url), true
	}
	return nil, false
}

// Build is Send without any network access: validation, resolution and call
// construction only.
func Build(args builder.TransferArgs) (pararoute.SerializedCall, error) {
	in, err := resolve(args)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	return dispatch(in, args)
}

// resolve performs the full validation sequence and produces the builder
// input: currency shape, chain compatibility, address format, scenario
// classification, asset resolution and support, then version and parachain-id
// selection.
func resolve(args builder.TransferArgs) (*protocol.TransferInput, error) {
	currency := args.GetCurrency()
	if err := currency.Validate(args.FeeAssetIndexOrNegative()); err != nil {
		return nil, err
	}

	origin, err := registry.GetChain(args.GetOrigin())
	if err != nil {
		return nil, err
	}
	destination := args.GetDestination()
	var destCfg *pararoute.ChainConfig
	if !destination.IsLocation() {
		destCfg, err = registry.GetChain(destination.Chain)
		if err != nil {
			return nil, err
		}
	} else if origin.Chain.IsRelay() {
		// XcmPallet construction differs per parachain, so a raw location
		// destination is mapped back to its owning chain when possible
		if paraID, ok := paraIDFromLocation(*destination.Location); ok {
			if chain, ok := registry.GetChainByParaID(origin.Relay, paraID); ok {
				destCfg, _ = registry.GetChain(chain)
			}
		}
	}

	if err := validateRoute(origin, destCfg); err != nil {
		return nil, err
	}

	recipient := args.GetRecipient()
	if !recipient.IsLocation() {
		evm := destCfg != nil && destCfg.EVM
		if err := pararoute.ValidateAddress(recipient.Address, evm); err != nil {
			return nil, err
		}
	}

	scenario := classify(origin, destination, destCfg)

	asset, overridden, err := resolveAsset(origin, destCfg, currency, scenario)
	if err != nil {
		return nil, err
	}

	paraIDTo := uint32(0)
	if scenario != pararoute.ParaToRelay {
		if id, ok := args.GetParaIDTo(); ok {
			paraIDTo = id
		} else if destCfg != nil {
			paraIDTo = destCfg.ParaID
		} else if destination.IsLocation() {
			paraIDTo, _ = paraIDFromLocation(*destination.Location)
		}
	}

	version := origin.DefaultVersion()
	if v, ok := args.GetVersion(); ok {
		version = v
	}

	return &protocol.TransferInput{
		Origin:        origin,
		Destination:   destination,
		DestConfig:    destCfg,
		ParaIDTo:      paraIDTo,
		Asset:         asset,
		Currency:      currency,
		Amount:        args.GetAmount(),
		Recipient:     recipient,
		Scenario:      scenario,
		Version:       version,
		Overridden:    overridden,
		FeeAssetIndex: args.FeeAssetIndexOrNegative(),
	}, nil
}

// paraIDFromLocation extracts the destination parachain id from a raw
// location's Parachain junction, if it has one.
func paraIDFromLocation(location pararoute.MultiLocation) (uint32, bool) {
	for _, junction := range location.Interior.Junctions {
		if junction.Parachain != nil {
			return *junction.Parachain, true
		}
	}
	return 0, false
}

func validateRoute(origin *pararoute.ChainConfig, destCfg *pararoute.ChainConfig) error {
	if origin.Chain == pararoute.Ethereum {
		return pararoute.Errorf(pararoute.ErrUnsupportedScenario,
			"transfers originating on Ethereum are not constructed here")
	}
	if destCfg == nil {
		return nil
	}
	if origin.Chain.IsRelay() && destCfg.Chain.IsRelay() {
		return pararoute.Errorf(pararoute.ErrIncompatibleChains,
			"relay-to-relay transfers between %s and %s are not a cross-chain route", origin.Chain, destCfg.Chain)
	}
	if origin.Chain == destCfg.Chain {
		return pararoute.Errorf(pararoute.ErrIncompatibleChains,
			"origin and destination are both %s", origin.Chain)
	}
	if destCfg.Chain == pararoute.Ethereum && origin.Chain != pararoute.AssetHubPolkadot {
		return pararoute.Errorf(pararoute.ErrIncompatibleChains,
			"Ethereum is only reachable from AssetHubPolkadot, not %s", origin.Chain)
	}
	if destCfg.Chain == pararoute.Polimec && origin.Chain != pararoute.AssetHubPolkadot && !origin.Chain.IsRelay() {
		return pararoute.Errorf(pararoute.ErrIncompatibleChains,
			"Polimec is only reachable from AssetHubPolkadot, not %s", origin.Chain)
	}
	// bridged destinations keep their own relay family; everything else must
	// share one
	sameFamily := origin.Relay == destCfg.Relay
	bridged := destCfg.Chain == pararoute.Ethereum ||
		(origin.Chain == pararoute.AssetHubPolkadot && destCfg.Chain == pararoute.AssetHubKusama)
	if !sameFamily && !bridged {
		return pararoute.Errorf(pararoute.ErrIncompatibleChains,
			"%s (%s) and %s (%s) are on different relay chains", origin.Chain, origin.Relay, destCfg.Chain, destCfg.Relay)
	}
	return nil
}

func classify(origin *pararoute.ChainConfig, destination pararoute.Destination, destCfg *pararoute.ChainConfig) pararoute.Scenario {
	if origin.Chain.IsRelay() {
		return pararoute.RelayToPara
	}
	if destination.IsLocation() {
		// a bare one-parent location points at the relay chain
		if destination.Location.Parents == pararoute.ParentsOne && destination.Location.Interior.IsHere() {
			return pararoute.ParaToRelay
		}
		return pararoute.ParaToPara
	}
	if destCfg != nil && destCfg.Chain.IsRelay() {
		return pararoute.ParaToRelay
	}
	return pararoute.ParaToPara
}

// resolveAsset turns the currency input into a registry asset. Override forms
// bypass resolution entirely; the caller sends exactly what it specified.
// With the asset check off, a failed lookup is not fatal: the asset stays nil
// and the builders fall back to the raw symbol or id.
func resolveAsset(
	origin *pararoute.ChainConfig,
	destCfg *pararoute.ChainConfig,
	currency pararoute.CurrencyInput,
	scenario pararoute.Scenario,
) (*pararoute.Asset, *pararoute.OverriddenAsset, error) {
	if overridden := currency.Overridden(); overridden != nil {
		return nil, overridden, nil
	}

	// asset hubs register only a fraction of what they hold, so the check is
	// forced off when either end is one
	checkDisabled := origin.AssetCheckDisabled ||
		(destCfg != nil && pararoute.IsAssetHub(destCfg.Chain))

	if scenario == pararoute.ParaToRelay || scenario == pararoute.RelayToPara {
		relaySymbol, err := registry.GetRelayChainSymbol(origin.Chain)
		if err != nil {
			return nil, nil, err
		}
		if currency.Symbol != "" && !registry.HasSupportForAsset(origin.Relay.Relay(), currency.Symbol) {
			return nil, nil, pararoute.Errorf(pararoute.ErrInvalidCurrency,
				"transfers to or from the relay chain carry %s, not %s", relaySymbol, currency.Symbol)
		}
		asset, ok := registry.GetAssetBySymbol(origin.Chain, relaySymbol)
		if !ok {
			// relay chains always know their own native asset
			asset, _ = registry.GetAssetBySymbol(origin.Relay.Relay(), relaySymbol)
		}
		return asset, nil, nil
	}

	var asset *pararoute.Asset
	var ok bool
	if currency.IsID() {
		asset, ok = registry.GetAssetByID(origin.Chain, currency.ID)
		if !ok {
			if checkDisabled {
				return nil, nil, nil
			}
			return nil, nil, pararoute.Errorf(pararoute.ErrAssetNotSupported,
				"no asset with id %s on %s", currency.ID, origin.Chain)
		}
	} else {
		asset, ok = registry.GetAssetBySymbol(origin.Chain, currency.Symbol)
		if !ok {
			if checkDisabled {
				return nil, nil, nil
			}
			return nil, nil, pararoute.Errorf(pararoute.ErrAssetNotSupported,
				"asset %s is not registered on %s", currency.Symbol, origin.Chain)
		}
	}

	if destCfg != nil && !checkDisabled && !destCfg.AssetCheckDisabled {
		if !registry.HasSupportForAsset(destCfg.Chain, asset.Symbol) {
			return nil, nil, pararoute.Errorf(pararoute.ErrAssetNotSupported,
				"asset %s is not registered on destination %s", asset.Symbol, destCfg.Chain)
		}
	}
	return asset, nil, nil
}

// dispatch walks the origin chain's capabilities in priority order until one
// serves the scenario. Relay chains always dispatch through XcmPallet.
func dispatch(in *protocol.TransferInput, args builder.TransferArgs) (pararoute.SerializedCall, error) {
	if in.Origin.Chain.IsRelay() {
		return xcmpallet.Build(in)
	}

	capabilities := in.Origin.Capabilities
	if forced, ok := args.GetPallet(); ok {
		capabilities = []pararoute.Capability{forced}
	}
	if len(capabilities) == 0 {
		return pararoute.SerializedCall{}, pararoute.Errorf(pararoute.ErrNoXCMSupport,
			"chain %s has no cross-chain transfer capability", in.Origin.Chain)
	}

	var lastErr error
	for _, capability := range capabilities {
		var call pararoute.SerializedCall
		var err error
		switch capability {
		case pararoute.CapTokenPallet:
			call, err = xtokens.Build(in)
		case pararoute.CapGenericXCM:
			call, err = polkadotxcm.Build(in)
		case pararoute.CapRelayTransfer:
			call, err = xtransfer.Build(in)
		default:
			err = pararoute.Errorf(pararoute.ErrNoXCMSupport,
				"chain %s declares unknown capability %s", in.Origin.Chain, capability)
		}
		if err == nil {
			return call, nil
		}
		// a builder declining the scenario is not final while other
		// capabilities remain
		if pararoute.KindOf(err) != pararoute.ErrUnsupportedScenario {
			return pararoute.SerializedCall{}, err
		}
		lastErr = err
	}
	return pararoute.SerializedCall{}, lastErr
}
