package transfer_test

import (
	"testing"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/builder"
	"github.com/pararoute/pararoute/transfer"
	"github.com/stretchr/testify/require"
)

const aliceSS58 = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
const evmAddress = "0x98891e5FD24Ef33A488A47101F65D212Ff6E650E"

func mustArgs(t *testing.T, origin pararoute.Chain, dest pararoute.Destination, currency pararoute.CurrencyInput, options ...builder.TransferOption) builder.TransferArgs {
	t.Helper()
	args, err := builder.NewTransferArgs(
		origin,
		dest,
		currency,
		pararoute.NewAmountBlockchainFromUint64(10_000_000_000),
		pararoute.NewRecipient(aliceSS58),
		options...,
	)
	require.NoError(t, err)
	return args
}

func TestParaToParaTokenPallet(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Hydration), pararoute.NewCurrencySymbol("DOT"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "XTokens", call.Module)
	require.Equal(t, "transfer", call.Section)
	require.Equal(t, map[string]interface{}{"Token": "DOT"}, call.Parameters["currency_id"])
	require.Equal(t, "Unlimited", call.Parameters["dest_weight_limit"])

	dest := call.Parameters["dest"].(pararoute.Versioned)
	require.Equal(t, pararoute.V3, dest.Version)
	location := dest.Value.(pararoute.MultiLocation)
	require.Equal(t, pararoute.ParentsOne, location.Parents)
	require.Len(t, location.Interior.Junctions, 2)
	require.Equal(t, uint32(2034), *location.Interior.Junctions[0].Parachain)
	require.NotNil(t, location.Interior.Junctions[1].AccountID32)
}

func TestParaToRelayTokenPallet(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Polkadot), pararoute.NewCurrencySymbol("DOT"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "XTokens", call.Module)
	require.Equal(t, "transfer", call.Section)

	dest := call.Parameters["dest"].(pararoute.Versioned)
	location := dest.Value.(pararoute.MultiLocation)
	require.Equal(t, pararoute.ParentsOne, location.Parents)
	require.Len(t, location.Interior.Junctions, 1)
	require.NotNil(t, location.Interior.Junctions[0].AccountID32)
}

func TestParaToRelayWrongCurrency(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Polkadot), pararoute.NewCurrencySymbol("ACA"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsInvalidCurrency(err))
}

func TestAssetHubDestinationUsesMultiassets(t *testing.T) {
	args, err := builder.NewTransferArgs(
		pararoute.Moonbeam,
		pararoute.NewDestinationChain(pararoute.AssetHubPolkadot),
		pararoute.NewCurrencySymbol("xcDOT"),
		pararoute.NewAmountBlockchainFromUint64(5_000_000_000),
		pararoute.NewRecipient(aliceSS58),
	)
	require.NoError(t, err)
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "XTokens", call.Module)
	require.Equal(t, "transfer_multiassets", call.Section)
	require.Equal(t, uint32(0), call.Parameters["fee_item"])
}

func TestBifrostKeepsSingleCurrencyForm(t *testing.T) {
	args := mustArgs(t, pararoute.BifrostPolkadot, pararoute.NewDestinationChain(pararoute.AssetHubPolkadot), pararoute.NewCurrencySymbol("DOT"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "transfer", call.Section)
	require.Equal(t, map[string]interface{}{"Token": "DOT"}, call.Parameters["currency_id"])
}

func TestRelayToPara(t *testing.T) {
	args := mustArgs(t, pararoute.Polkadot, pararoute.NewDestinationChain(pararoute.Acala), pararoute.NewCurrencySymbol("DOT"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "XcmPallet", call.Module)
	require.Equal(t, "reserve_transfer_assets", call.Section)
	_, hasWeight := call.Parameters["weight_limit"]
	require.False(t, hasWeight)

	dest := call.Parameters["dest"].(pararoute.Versioned)
	location := dest.Value.(pararoute.MultiLocation)
	require.Equal(t, pararoute.ParentsZero, location.Parents)
	require.Equal(t, uint32(2000), *location.Interior.Junctions[0].Parachain)
}

func TestRelayToAssetHubTeleports(t *testing.T) {
	args := mustArgs(t, pararoute.Polkadot, pararoute.NewDestinationChain(pararoute.AssetHubPolkadot), pararoute.NewCurrencySymbol("DOT"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "XcmPallet", call.Module)
	require.Equal(t, "limited_teleport_assets", call.Section)
	require.Equal(t, "Unlimited", call.Parameters["weight_limit"])
}

func TestRelayToRelayRejected(t *testing.T) {
	args := mustArgs(t, pararoute.Polkadot, pararoute.NewDestinationChain(pararoute.Kusama), pararoute.NewCurrencySymbol("DOT"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsIncompatibleChains(err))
}

func TestDifferentRelayFamiliesRejected(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Karura), pararoute.NewCurrencySymbol("KAR"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsIncompatibleChains(err))
}

func TestSameChainRejected(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Acala), pararoute.NewCurrencySymbol("ACA"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsIncompatibleChains(err))
}

func TestUnknownChainRejected(t *testing.T) {
	args := mustArgs(t, pararoute.Chain("Atlantis"), pararoute.NewDestinationChain(pararoute.Acala), pararoute.NewCurrencySymbol("DOT"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsNodeNotSupported(err))
}

func TestAssetNotOnDestinationRejected(t *testing.T) {
	// ACA is registered on Acala but not on Hydration
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Hydration), pararoute.NewCurrencySymbol("ACA"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsAssetNotSupported(err))
}

func TestAssetHubDestinationSkipsSupportCheck(t *testing.T) {
	// AUSD is not in the asset hub's registry entry, but asset hubs hold far
	// more assets than the registry lists, so the destination check is off
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.AssetHubPolkadot), pararoute.NewCurrencySymbol("AUSD"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "XTokens", call.Module)
	require.Equal(t, "transfer", call.Section)
	require.Equal(t, map[string]interface{}{"Token": "AUSD"}, call.Parameters["currency_id"])
}

func TestAssetHubOriginBuildsUnregisteredAsset(t *testing.T) {
	args := mustArgs(t, pararoute.AssetHubPolkadot, pararoute.NewDestinationChain(pararoute.Hydration), pararoute.NewCurrencySymbol("PINK"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "PolkadotXcm", call.Module)
	require.Equal(t, "limited_reserve_transfer_assets", call.Section)
	assets := call.Parameters["assets"].(pararoute.Versioned)
	require.Equal(t, pararoute.V3, assets.Version)
}

func TestLocationOverrideBypassesAssetResolution(t *testing.T) {
	location := pararoute.MultiLocation{
		Parents:  pararoute.ParentsOne,
		Interior: pararoute.X(pararoute.ParachainJunction(9999), pararoute.GeneralIndexJunction("7")),
	}
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Hydration), pararoute.NewCurrencyLocation(location))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "transfer_multiasset", call.Section)
}

func TestMultiAssetOverride(t *testing.T) {
	assets := []pararoute.MultiAssetWithFee{
		{MultiAsset: pararoute.NewMultiAsset(pararoute.V3, pararoute.NewAmountBlockchainFromUint64(100), pararoute.RelayLocation())},
		{MultiAsset: pararoute.NewMultiAsset(pararoute.V3, pararoute.NewAmountBlockchainFromUint64(5), pararoute.MultiLocation{})},
	}
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Hydration),
		pararoute.NewCurrencyMultiAssets(assets), builder.OptionFeeAsset(1))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "transfer_multiassets", call.Section)
	require.Equal(t, uint32(1), call.Parameters["fee_item"])
}

func TestMultiAssetWithoutFeeIndexRejected(t *testing.T) {
	assets := []pararoute.MultiAssetWithFee{
		{MultiAsset: pararoute.NewMultiAsset(pararoute.V3, pararoute.NewAmountBlockchainFromUint64(100), pararoute.RelayLocation())},
		{MultiAsset: pararoute.NewMultiAsset(pararoute.V3, pararoute.NewAmountBlockchainFromUint64(5), pararoute.MultiLocation{})},
	}
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Hydration), pararoute.NewCurrencyMultiAssets(assets))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsInvalidCurrency(err))
}

func TestAstarUsesConfiguredSections(t *testing.T) {
	args := mustArgs(t, pararoute.Astar, pararoute.NewDestinationChain(pararoute.Polkadot), pararoute.NewCurrencySymbol("DOT"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "PolkadotXcm", call.Module)
	require.Equal(t, "reserve_withdraw_assets", call.Section)
	_, hasWeight := call.Parameters["weight_limit"]
	require.False(t, hasWeight)

	args = mustArgs(t, pararoute.Astar, pararoute.NewDestinationChain(pararoute.Hydration), pararoute.NewCurrencySymbol("USDT"))
	call, err = transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "reserve_transfer_assets", call.Section)
}

func TestXTransferWeightTable(t *testing.T) {
	args := mustArgs(t, pararoute.Phala, pararoute.NewDestinationChain(pararoute.Hydration), pararoute.NewCurrencySymbol("PHA"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "XTransfer", call.Module)
	require.Equal(t, "transfer", call.Section)
	weight := call.Parameters["dest_weight"].(map[string]interface{})
	require.Equal(t, uint64(5000000000), weight["ref_time"])
	require.Equal(t, uint64(0), weight["proof_size"])
}

func TestXTransferUnknownDestination(t *testing.T) {
	// currency override bypasses asset support, leaving the weight lookup to
	// reject the destination
	location := pararoute.RelayLocation()
	args := mustArgs(t, pararoute.Phala, pararoute.NewDestinationChain(pararoute.Acala), pararoute.NewCurrencyLocation(location))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsNodeNotSupported(err))
}

func TestXTransferToRelayNotServed(t *testing.T) {
	args := mustArgs(t, pararoute.Phala, pararoute.NewDestinationChain(pararoute.Polkadot), pararoute.NewCurrencySymbol("DOT"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.Equal(t, pararoute.ErrUnsupportedScenario, pararoute.KindOf(err))
}

func TestEthereumOnlyFromAssetHub(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Ethereum), pararoute.NewCurrencySymbol("DOT"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsIncompatibleChains(err))
}

func TestSnowbridgeTransfer(t *testing.T) {
	args, err := builder.NewTransferArgs(
		pararoute.AssetHubPolkadot,
		pararoute.NewDestinationChain(pararoute.Ethereum),
		pararoute.NewCurrencySymbol("WETH.e"),
		pararoute.NewAmountBlockchainFromUint64(1_000_000_000_000_000),
		pararoute.NewRecipient(evmAddress),
	)
	require.NoError(t, err)
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "PolkadotXcm", call.Module)
	require.Equal(t, "transfer_assets", call.Section)

	dest := call.Parameters["dest"].(pararoute.Versioned)
	location := dest.Value.(pararoute.MultiLocation)
	require.Equal(t, pararoute.ParentsTwo, location.Parents)
	require.NotNil(t, location.Interior.Junctions[0].GlobalConsensus)
	require.Equal(t, uint64(1), *location.Interior.Junctions[0].GlobalConsensus.EthereumChainID)
}

func TestSnowbridgeRequiresEVMRecipient(t *testing.T) {
	args := mustArgs(t, pararoute.AssetHubPolkadot, pararoute.NewDestinationChain(pararoute.Ethereum), pararoute.NewCurrencySymbol("WETH.e"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsInvalidAddress(err))
}

func TestKusamaBridgeFromAssetHub(t *testing.T) {
	// KSM going home teleports with the V4 form
	args := mustArgs(t, pararoute.AssetHubPolkadot, pararoute.NewDestinationChain(pararoute.AssetHubKusama), pararoute.NewCurrencySymbol("KSM"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "transfer_assets", call.Section)
	dest := call.Parameters["dest"].(pararoute.Versioned)
	require.Equal(t, pararoute.V4, dest.Version)

	// DOT crossing over reserve-transfers with the V3 form
	args = mustArgs(t, pararoute.AssetHubPolkadot, pararoute.NewDestinationChain(pararoute.AssetHubKusama), pararoute.NewCurrencySymbol("DOT"))
	call, err = transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "limited_reserve_transfer_assets", call.Section)
	dest = call.Parameters["dest"].(pararoute.Versioned)
	require.Equal(t, pararoute.V3, dest.Version)
}

func TestPolimecOnlyFromAssetHub(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Polimec), pararoute.NewCurrencySymbol("DOT"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsIncompatibleChains(err))

	args = mustArgs(t, pararoute.AssetHubPolkadot, pararoute.NewDestinationChain(pararoute.Polimec), pararoute.NewCurrencySymbol("USDT"))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, "PolkadotXcm", call.Module)
}

func TestEVMDestinationRequiresEVMAddress(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Moonbeam), pararoute.NewCurrencySymbol("AUSD"))
	_, err := transfer.Build(args)
	require.Error(t, err)
	require.True(t, pararoute.IsInvalidAddress(err))
}

func TestVersionOverride(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Hydration), pararoute.NewCurrencySymbol("DOT"),
		builder.OptionVersion(pararoute.V4))
	call, err := transfer.Build(args)
	require.NoError(t, err)
	dest := call.Parameters["dest"].(pararoute.Versioned)
	require.Equal(t, pararoute.V4, dest.Version)
}

func TestBuildIsDeterministic(t *testing.T) {
	args := mustArgs(t, pararoute.Acala, pararoute.NewDestinationChain(pararoute.Hydration), pararoute.NewCurrencySymbol("DOT"))
	first, err := transfer.Build(args)
	require.NoError(t, err)
	second, err := transfer.Build(args)
	require.NoError(t, err)
	require.Equal(t, first.String(), second.String())
}
