package pararoute_test

import (
	. "github.com/pararoute/pararoute"
)

func (s *PararouteTestSuite) TestIsRelay() {
	require := s.Require()
	require.True(Polkadot.IsRelay())
	require.True(Kusama.IsRelay())
	require.False(Acala.IsRelay())
	require.False(AssetHubPolkadot.IsRelay())
}

func (s *PararouteTestSuite) TestRelayChainRelay() {
	require := s.Require()
	require.Equal(Polkadot, RelayPolkadot.Relay())
	require.Equal(Kusama, RelayKusama.Relay())
}

func (s *PararouteTestSuite) TestHasCapability() {
	require := s.Require()
	cfg := &ChainConfig{Capabilities: []Capability{CapTokenPallet, CapGenericXCM}}
	require.True(cfg.HasCapability(CapTokenPallet))
	require.True(cfg.HasCapability(CapGenericXCM))
	require.False(cfg.HasCapability(CapRelayTransfer))
}

func (s *PararouteTestSuite) TestDefaultVersionFallback() {
	require := s.Require()
	require.Equal(V3, (&ChainConfig{}).DefaultVersion())
	require.Equal(V4, (&ChainConfig{Version: V4}).DefaultVersion())
}

func (s *PararouteTestSuite) TestRelayToParaSection() {
	require := s.Require()
	section, includeFee := (&ChainConfig{}).RelayToParaSection()
	require.Equal("reserve_transfer_assets", section)
	require.False(includeFee)

	cfg := &ChainConfig{RelayToPara: RelayToParaOverrides{Section: "limited_teleport_assets", IncludeFee: true}}
	section, includeFee = cfg.RelayToParaSection()
	require.Equal("limited_teleport_assets", section)
	require.True(includeFee)
}

func (s *PararouteTestSuite) TestAssetHubAndBifrost() {
	require := s.Require()
	require.True(IsAssetHub(AssetHubPolkadot))
	require.True(IsAssetHub(AssetHubKusama))
	require.False(IsAssetHub(Hydration))
	require.True(IsBifrost(BifrostPolkadot))
	require.False(IsBifrost(Moonbeam))
}
