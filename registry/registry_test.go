package registry_test

import (
	"fmt"
	"testing"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/registry"
	"github.com/stretchr/testify/require"
)

func TestRegistryLint(t *testing.T) {
	require.NotEmpty(t, registry.Chains())
	for _, chain := range registry.Chains() {
		cfg, err := registry.GetChain(chain)
		require.NoError(t, err)
		require.Equal(t, chain, cfg.Chain)
		require.NotEmpty(t, cfg.Relay, fmt.Sprintf("chain %s must have relay set", chain))
		require.NotEmpty(t, cfg.URL, fmt.Sprintf("chain %s must have url set", chain))
		require.NotEmpty(t, cfg.NativeAssets, fmt.Sprintf("chain %s must have a native asset", chain))
		for _, a := range cfg.NativeAssets {
			require.NotEmpty(t, a.Symbol)
		}
		for _, a := range cfg.OtherAssets {
			require.NotEmpty(t, a.Symbol)
		}
		if !chain.IsRelay() && chain != pararoute.Ethereum {
			require.NotZero(t, cfg.ParaID, fmt.Sprintf("parachain %s must have para_id set", chain))
		}
		if cfg.HasCapability(pararoute.CapTokenPallet) {
			require.NotEmpty(t, cfg.CurrencyRule, fmt.Sprintf("token-pallet chain %s must have currency_rule set", chain))
		}
		if cfg.HasCapability(pararoute.CapRelayTransfer) {
			require.NotEmpty(t, cfg.DestWeights, fmt.Sprintf("xtransfer chain %s must have dest_weights set", chain))
		}
	}
}

func TestGetChainNotRegistered(t *testing.T) {
	_, err := registry.GetChain(pararoute.Chain("Atlantis"))
	require.Error(t, err)
	require.True(t, pararoute.IsNodeNotSupported(err))
}

func TestFuzzySymbolMatching(t *testing.T) {
	// the xc prefix is tolerated in both directions
	require.True(t, registry.HasSupportForAsset(pararoute.Moonbeam, "DOT"))
	require.True(t, registry.HasSupportForAsset(pararoute.Moonbeam, "xcDOT"))
	require.True(t, registry.HasSupportForAsset(pararoute.Hydration, "xcDOT"))
	require.True(t, registry.HasSupportForAsset(pararoute.Hydration, "DOT"))

	// the .e bridged suffix is tolerated in both directions
	require.True(t, registry.HasSupportForAsset(pararoute.AssetHubPolkadot, "WETH"))
	require.True(t, registry.HasSupportForAsset(pararoute.AssetHubPolkadot, "WETH.e"))
	require.True(t, registry.HasSupportForAsset(pararoute.Hydration, "WETH"))

	// case-insensitive
	require.True(t, registry.HasSupportForAsset(pararoute.Acala, "dot"))

	require.False(t, registry.HasSupportForAsset(pararoute.Acala, "KSM"))
	require.False(t, registry.HasSupportForAsset(pararoute.Moonbeam, "XRP"))
}

func TestNativePreferredOverForeign(t *testing.T) {
	// AssetHubPolkadot registers DOT natively and also a foreign USDT
	asset, ok := registry.GetAssetBySymbol(pararoute.AssetHubPolkadot, "DOT")
	require.True(t, ok)
	require.True(t, asset.IsNative())

	usdt, ok := registry.GetAssetBySymbol(pararoute.AssetHubPolkadot, "USDT")
	require.True(t, ok)
	require.False(t, usdt.IsNative())
	require.Equal(t, "1984", usdt.AssetID)
}

func TestGetAssetByID(t *testing.T) {
	asset, ok := registry.GetAssetByID(pararoute.Hydration, "5")
	require.True(t, ok)
	require.Equal(t, "DOT", asset.Symbol)

	// ids wider than 64 bits are kept as strings
	asset, ok = registry.GetAssetByID(pararoute.Astar, "340282366920938463463374607431768211455")
	require.True(t, ok)
	require.Equal(t, "DOT", asset.Symbol)

	_, ok = registry.GetAssetByID(pararoute.Hydration, "99999")
	require.False(t, ok)
}

func TestGetRelayChainSymbol(t *testing.T) {
	sym, err := registry.GetRelayChainSymbol(pararoute.Acala)
	require.NoError(t, err)
	require.Equal(t, "DOT", sym)

	sym, err = registry.GetRelayChainSymbol(pararoute.Karura)
	require.NoError(t, err)
	require.Equal(t, "KSM", sym)
}

func TestMinNativeTransferableAmount(t *testing.T) {
	// ED plus 10%
	min, err := registry.MinNativeTransferableAmount(pararoute.Polkadot)
	require.NoError(t, err)
	require.Equal(t, "11000000000", min.String())
}

func TestGetChainByParaID(t *testing.T) {
	chain, ok := registry.GetChainByParaID(pararoute.RelayPolkadot, 2000)
	require.True(t, ok)
	require.Equal(t, pararoute.Acala, chain)

	// the same id resolves differently per relay family
	chain, ok = registry.GetChainByParaID(pararoute.RelayKusama, 2000)
	require.True(t, ok)
	require.Equal(t, pararoute.Karura, chain)

	_, ok = registry.GetChainByParaID(pararoute.RelayPolkadot, 9876)
	require.False(t, ok)
}

func TestGetAssetDecimals(t *testing.T) {
	dec, err := registry.GetAssetDecimals(pararoute.AssetHubPolkadot, "USDT")
	require.NoError(t, err)
	require.Equal(t, int32(6), dec)

	_, err = registry.GetAssetDecimals(pararoute.AssetHubPolkadot, "XRP")
	require.Error(t, err)
	require.True(t, pararoute.IsAssetNotSupported(err))
}

func TestLoadUserOverridesWithoutConfigFile(t *testing.T) {
	// no config file anywhere near the test working directory: the embedded
	// tables stay as they are
	require.NoError(t, registry.LoadUserOverrides())

	cfg, err := registry.GetChain(pararoute.Acala)
	require.NoError(t, err)
	require.NotEmpty(t, cfg.URL)
}
