package pararoute

import (
	"fmt"
	"slices"
)

// Chain is the symbolic name of a chain in the Polkadot/Kusama ecosystem.
// In pararoute, a Chain identifies exactly one ChainConfig record.
type Chain string

// List of supported chains
const (
	Polkadot         = Chain("Polkadot")
	Kusama           = Chain("Kusama")
	AssetHubPolkadot = Chain("AssetHubPolkadot")
	AssetHubKusama   = Chain("AssetHubKusama")
	Acala            = Chain("Acala")
	Karura           = Chain("Karura")
	Astar            = Chain("Astar")
	Shiden           = Chain("Shiden")
	Moonbeam         = Chain("Moonbeam")
	Moonriver        = Chain("Moonriver")
	Hydration        = Chain("Hydration")
	Basilisk         = Chain("Basilisk")
	Interlay         = Chain("Interlay")
	Kintsugi         = Chain("Kintsugi")
	BifrostPolkadot  = Chain("BifrostPolkadot")
	BifrostKusama    = Chain("BifrostKusama")
	Manta            = Chain("Manta")
	Calamari         = Chain("Calamari")
	Centrifuge       = Chain("Centrifuge")
	Altair           = Chain("Altair")
	Crust            = Chain("Crust")
	CrustShadow      = Chain("CrustShadow")
	Parallel         = Chain("Parallel")
	ParallelHeiko    = Chain("ParallelHeiko")
	Phala            = Chain("Phala")
	Khala            = Chain("Khala")
	Polimec          = Chain("Polimec")
	Turing           = Chain("Turing")
	// Ethereum is reachable from AssetHubPolkadot over the Snowbridge route.
	// It is not a parachain and carries no transfer capability of its own.
	Ethereum = Chain("Ethereum")
)

// RelayChain is the relay-chain family a chain belongs to.
type RelayChain string

const (
	RelayPolkadot = RelayChain("polkadot")
	RelayKusama   = RelayChain("kusama")
	// RelayEthereum marks the external bridged ecosystem.
	RelayEthereum = RelayChain("ethereum")
)

// Relay returns the relay chain of the family.
func (r RelayChain) Relay() Chain {
	switch r {
	case RelayKusama:
		return Kusama
	default:
		return Polkadot
	}
}

// Capability is one of the cross-chain messaging conventions a chain may implement.
type Capability string

const (
	// CapTokenPallet is the symmetric token-transfer pallet (XTokens).
	CapTokenPallet = Capability("xtokens")
	// CapGenericXCM is the general XCM-message pallet (PolkadotXcm),
	// supporting teleport, reserve-transfer and bridge variants.
	CapGenericXCM = Capability("polkadotxcm")
	// CapRelayTransfer is the chain-to-chain asset-transfer pallet (XTransfer)
	// implemented by specific node pairs.
	CapRelayTransfer = Capability("xtransfer")
)

// Scenario is the structural direction of a transfer.
type Scenario string

const (
	ParaToPara  = Scenario("ParaToPara")
	ParaToRelay = Scenario("ParaToRelay")
	RelayToPara = Scenario("RelayToPara")
)

// Version is the XCM wire-format version used for version-tagged payloads.
type Version string

const (
	V1 = Version("V1")
	V2 = Version("V2")
	V3 = Version("V3")
	V4 = Version("V4")
)

// CurrencyRule selects how a token-pallet chain discriminates the currency
// argument of its transfer call.
type CurrencyRule string

const (
	// Native asset as {Token: SYMBOL}, foreign as {ForeignAsset: id}.
	RuleToken = CurrencyRule("token")
	// Native asset as the SelfReserve keyword, foreign as {ForeignAsset: id}.
	RuleSelfReserve = CurrencyRule("self-reserve")
	// Native asset as the SelfReserve keyword, foreign as {OtherReserve: id}.
	RuleOtherReserve = CurrencyRule("other-reserve")
	// All assets addressed by a chain-specific numeric wrapper, e.g. {MantaCurrency: id}.
	RuleCurrencyWrapper = CurrencyRule("currency-wrapper")
	// All assets addressed by their raw numeric/string identifier.
	RuleRawID = CurrencyRule("raw-id")
)

// DestWeight is an explicit destination execution weight, required by the
// XTransfer pallet for destinations with a known weight entry.
type DestWeight struct {
	RefTime   uint64 `yaml:"ref_time" json:"ref_time"`
	ProofSize uint64 `yaml:"proof_size" json:"proof_size"`
}

// RelayToParaOverrides selects the XcmPallet section used when the relay chain
// sends into this parachain, and whether an explicit fee weight is included.
type RelayToParaOverrides struct {
	Section    string `yaml:"section,omitempty"`
	IncludeFee bool   `yaml:"include_fee,omitempty"`
}

// ChainConfig describes one chain. One immutable instance per known chain,
// loaded from the embedded registry tables at process start.
type ChainConfig struct {
	Chain Chain `yaml:"chain"`
	// Info maps our chain names to the names polkadot libraries use.
	Info  string     `yaml:"info,omitempty"`
	Relay RelayChain `yaml:"relay"`
	// Default XCM version for this chain's calls.
	Version Version `yaml:"version"`
	ParaID  uint32  `yaml:"para_id,omitempty"`
	// EVM chains use 20-byte hex account addresses rather than SS58.
	EVM bool `yaml:"evm,omitempty"`
	// SS58 address prefix, for chains that use one.
	ChainPrefix uint16 `yaml:"chain_prefix,omitempty"`
	// Disables origin/destination asset-support validation for this chain.
	AssetCheckDisabled bool `yaml:"asset_check_disabled,omitempty"`
	// Capabilities in this chain's dispatch priority order.
	Capabilities []Capability `yaml:"capabilities,omitempty"`
	// Currency discriminator rule for the token pallet, if implemented.
	CurrencyRule CurrencyRule `yaml:"currency_rule,omitempty"`
	// Keyword used by the currency rule: the self-reserve keyword for the
	// self-reserve and other-reserve rules (e.g. "SelfReserve", "Native"), or
	// the wrapper name for the currency-wrapper rule (e.g. "MantaCurrency").
	CurrencyKeyword string `yaml:"currency_keyword,omitempty"`
	// Generic-XCM section overrides per scenario, e.g. Astar uses
	// reserve_withdraw_assets toward the relay chain.
	MethodParaToPara  string `yaml:"method_para_to_para,omitempty"`
	MethodParaToRelay string `yaml:"method_para_to_relay,omitempty"`
	// Relay-to-para call construction overrides.
	RelayToPara RelayToParaOverrides `yaml:"relay_to_para,omitempty"`
	// XTransfer destination weight table.
	DestWeights map[Chain]DestWeight `yaml:"dest_weights,omitempty"`
	// Destination balances below the existential deposit are reaped; chains on
	// the deposit-check allowlist get a keep-alive projection before sending.
	KeepAliveCheck bool `yaml:"keep_alive_check,omitempty"`
	// Default websocket RPC endpoint used by the chain client.
	URL string `yaml:"url,omitempty"`
	// Native symbol of the chain's relay-chain family (DOT or KSM).
	RelayChainSymbol string `yaml:"relay_chain_symbol,omitempty"`
	// Assets issued by this chain. The first entry is the chain's primary
	// native asset.
	NativeAssets []Asset `yaml:"native_assets,omitempty"`
	// Foreign assets registered on this chain.
	OtherAssets []Asset `yaml:"other_assets,omitempty"`
}

// NativeAssetSymbol returns the chain's primary native asset symbol.
func (cfg *ChainConfig) NativeAssetSymbol() string {
	if len(cfg.NativeAssets) == 0 {
		return ""
	}
	return cfg.NativeAssets[0].Symbol
}

// IsRelay reports whether the chain is a relay chain.
func (c Chain) IsRelay() bool {
	return c == Polkadot || c == Kusama
}

// HasCapability reports whether the chain implements the given protocol.
func (cfg *ChainConfig) HasCapability(cap Capability) bool {
	return slices.Contains(cfg.Capabilities, cap)
}

// DefaultVersion returns the chain's default XCM version, falling back to V3.
func (cfg *ChainConfig) DefaultVersion() Version {
	if cfg.Version == "" {
		return V3
	}
	return cfg.Version
}

// RelayToParaSection returns the XcmPallet section used for transfers from the
// relay chain into this parachain.
func (cfg *ChainConfig) RelayToParaSection() (section string, includeFee bool) {
	if cfg.RelayToPara.Section != "" {
		return cfg.RelayToPara.Section, cfg.RelayToPara.IncludeFee
	}
	return "reserve_transfer_assets", false
}

func (cfg *ChainConfig) String() string {
	return fmt.Sprintf("ChainConfig(chain=%s relay=%s version=%s paraId=%d caps=%v)",
		cfg.Chain, cfg.Relay, cfg.Version, cfg.ParaID, cfg.Capabilities)
}

// IsAssetHub reports whether the chain is an asset-hub-style system parachain.
func IsAssetHub(c Chain) bool {
	return c == AssetHubPolkadot || c == AssetHubKusama
}

// IsBifrost reports whether the chain is a Bifrost deployment. Bifrost chains
// keep the single-currency token-pallet form even toward asset hubs.
func IsBifrost(c Chain) bool {
	return c == BifrostPolkadot || c == BifrostKusama
}
