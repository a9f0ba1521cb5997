// Package registry holds the embedded chain and asset tables. All lookups are
// static: the tables are parsed once at process start and never mutated.
package registry

import (
	_ "embed"
	"sort"
	"strings"

	pararoute "github.com/pararoute/pararoute"
	"gopkg.in/yaml.v3"
)

//go:embed mainnet.yaml
var mainnetData string

type registryFile struct {
	Chains map[pararoute.Chain]*pararoute.ChainConfig `yaml:"chains"`
}

var chains map[pararoute.Chain]*pararoute.ChainConfig

func init() {
	var file registryFile
	if err := yaml.Unmarshal([]byte(mainnetData), &file); err != nil {
		panic("invalid embedded chain registry: " + err.Error())
	}
	chains = file.Chains
	for name, cfg := range chains {
		if cfg.Chain == "" {
			cfg.Chain = name
		}
	}
}

// Chains lists every registered chain in stable order.
func Chains() []pararoute.Chain {
	out := make([]pararoute.Chain, 0, len(chains))
	for name := range chains {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GetChain returns the config record for a chain.
func GetChain(chain pararoute.Chain) (*pararoute.ChainConfig, error) {
	cfg, ok := chains[chain]
	if !ok {
		return nil, pararoute.Errorf(pararoute.ErrNodeNotSupported, "chain %s is not registered", chain)
	}
	return cfg, nil
}

// GetAssets returns all assets registered on a chain, native first.
func GetAssets(chain pararoute.Chain) ([]pararoute.Asset, error) {
	cfg, err := GetChain(chain)
	if err != nil {
		return nil, err
	}
	assets := make([]pararoute.Asset, 0, len(cfg.NativeAssets)+len(cfg.OtherAssets))
	assets = append(assets, cfg.NativeAssets...)
	assets = append(assets, cfg.OtherAssets...)
	return assets, nil
}

// GetAllAssetSymbols returns the symbols of every asset registered on a chain.
func GetAllAssetSymbols(chain pararoute.Chain) ([]string, error) {
	assets, err := GetAssets(chain)
	if err != nil {
		return nil, err
	}
	symbols := make([]string, 0, len(assets))
	for _, a := range assets {
		symbols = append(symbols, a.Symbol)
	}
	return symbols, nil
}

// GetNativeAssetSymbol returns the chain's primary native asset symbol.
func GetNativeAssetSymbol(chain pararoute.Chain) (string, error) {
	cfg, err := GetChain(chain)
	if err != nil {
		return "", err
	}
	return cfg.NativeAssetSymbol(), nil
}

// GetRelayChainSymbol returns the native symbol of the chain's relay family.
func GetRelayChainSymbol(chain pararoute.Chain) (string, error) {
	cfg, err := GetChain(chain)
	if err != nil {
		return "", err
	}
	if cfg.RelayChainSymbol != "" {
		return cfg.RelayChainSymbol, nil
	}
	if cfg.Relay == pararoute.RelayKusama {
		return "KSM", nil
	}
	return "DOT", nil
}

// GetAssetBySymbol finds an asset by symbol using fuzzy matching: symbols are
// compared case-insensitively, tolerating the "xc" wrapped-asset prefix and
// the ".e" bridged-asset suffix on either side. Native assets are preferred
// over foreign ones when both match.
func GetAssetBySymbol(chain pararoute.Chain, symbol string) (*pararoute.Asset, bool) {
	cfg, ok := chains[chain]
	if !ok {
		return nil, false
	}
	for i := range cfg.NativeAssets {
		if symbolsMatch(cfg.NativeAssets[i].Symbol, symbol) {
			return &cfg.NativeAssets[i], true
		}
	}
	for i := range cfg.OtherAssets {
		if symbolsMatch(cfg.OtherAssets[i].Symbol, symbol) {
			return &cfg.OtherAssets[i], true
		}
	}
	return nil, false
}

// GetAssetByID finds an asset by its on-chain id.
func GetAssetByID(chain pararoute.Chain, id string) (*pararoute.Asset, bool) {
	cfg, ok := chains[chain]
	if !ok {
		return nil, false
	}
	for i := range cfg.OtherAssets {
		if cfg.OtherAssets[i].AssetID == id {
			return &cfg.OtherAssets[i], true
		}
	}
	return nil, false
}

// HasSupportForAsset reports whether the chain has an asset registered under
// the given symbol, using the same fuzzy matching as GetAssetBySymbol.
func HasSupportForAsset(chain pararoute.Chain, symbol string) bool {
	_, ok := GetAssetBySymbol(chain, symbol)
	return ok
}

// GetAssetDecimals returns the decimals of an asset by symbol.
func GetAssetDecimals(chain pararoute.Chain, symbol string) (int32, error) {
	asset, ok := GetAssetBySymbol(chain, symbol)
	if !ok {
		return 0, pararoute.Errorf(pararoute.ErrAssetNotSupported, "asset %s is not registered on %s", symbol, chain)
	}
	return asset.Decimals, nil
}

// GetExistentialDeposit returns the existential deposit of the chain's native
// asset.
func GetExistentialDeposit(chain pararoute.Chain) (pararoute.AmountBlockchain, error) {
	cfg, err := GetChain(chain)
	if err != nil {
		return pararoute.AmountBlockchain{}, err
	}
	if len(cfg.NativeAssets) == 0 {
		return pararoute.AmountBlockchain{}, pararoute.Errorf(pararoute.ErrAssetNotSupported, "chain %s has no native asset", chain)
	}
	return cfg.NativeAssets[0].ExistentialDeposit, nil
}

// MinNativeTransferableAmount is the smallest native amount worth sending to
// a fresh account: the existential deposit plus a 10% margin.
func MinNativeTransferableAmount(chain pararoute.Chain) (pararoute.AmountBlockchain, error) {
	ed, err := GetExistentialDeposit(chain)
	if err != nil {
		return pararoute.AmountBlockchain{}, err
	}
	ten := pararoute.NewAmountBlockchainFromUint64(10)
	margin := ed.Div(&ten)
	return ed.Add(&margin), nil
}

// GetParaID returns the chain's parachain id. Relay chains have id 0.
func GetParaID(chain pararoute.Chain) (uint32, error) {
	cfg, err := GetChain(chain)
	if err != nil {
		return 0, err
	}
	return cfg.ParaID, nil
}

// GetChainByParaID looks up the chain registered under a parachain id within
// a relay family.
func GetChainByParaID(relay pararoute.RelayChain, paraID uint32) (pararoute.Chain, bool) {
	for _, name := range Chains() {
		cfg := chains[name]
		if cfg.Relay == relay && cfg.ParaID == paraID && !name.IsRelay() {
			return name, true
		}
	}
	return "", false
}

// symbolsMatch compares two asset symbols case-insensitively, additionally
// accepting a difference of the "xc" prefix or the ".e" suffix on either
// side. The relation is symmetric.
func symbolsMatch(a, b string) bool {
	for _, va := range symbolVariants(a) {
		for _, vb := range symbolVariants(b) {
			if va == vb {
				return true
			}
		}
	}
	return false
}

func symbolVariants(symbol string) []string {
	s := strings.ToLower(symbol)
	variants := []string{s}
	if trimmed := strings.TrimPrefix(s, "xc"); trimmed != s {
		variants = append(variants, trimmed)
	}
	if trimmed := strings.TrimSuffix(s, ".e"); trimmed != s {
		variants = append(variants, trimmed)
	}
	return variants
}
