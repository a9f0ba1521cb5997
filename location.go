package pararoute

import (
	"encoding/json"
	"fmt"
)

// Parents is the number of parent hops in a multi-location path.
type Parents uint8

const (
	ParentsZero = Parents(0)
	ParentsOne  = Parents(1)
	// ParentsTwo crosses into another consensus system, e.g. a bridged relay
	// ecosystem or Ethereum.
	ParentsTwo = Parents(2)
)

// MultiLocation is a hierarchical path descriptor identifying an asset or
// account location relative to the sender. It is used verbatim in wire-level
// messages, so its JSON form matches the polkadot-js convention.
type MultiLocation struct {
	Parents  Parents  `json:"parents" yaml:"parents"`
	Interior Interior `json:"interior" yaml:"interior"`
}

// Interior is the junction path of a multi-location. An empty path encodes as
// {"Here": null}; otherwise as {"X<n>": ...} with X1 carrying the junction
// directly.
type Interior struct {
	Junctions []Junction
}

func Here() Interior {
	return Interior{}
}

func X(junctions ...Junction) Interior {
	return Interior{Junctions: junctions}
}

func (i Interior) IsHere() bool {
	return len(i.Junctions) == 0
}

func (i Interior) MarshalJSON() ([]byte, error) {
	if i.IsHere() {
		return []byte(`{"Here":null}`), nil
	}
	key := fmt.Sprintf("X%d", len(i.Junctions))
	var value interface{} = i.Junctions
	if len(i.Junctions) == 1 {
		value = i.Junctions[0]
	}
	return json.Marshal(map[string]interface{}{key: value})
}

func (i *Interior) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		if key == "Here" {
			i.Junctions = nil
			return nil
		}
		var count int
		if _, err := fmt.Sscanf(key, "X%d", &count); err != nil {
			return fmt.Errorf("invalid interior key %q", key)
		}
		if count == 1 {
			var j Junction
			// X1 may be a single junction or a one-element array
			if err := json.Unmarshal(value, &j); err == nil {
				i.Junctions = []Junction{j}
				return nil
			}
		}
		var js []Junction
		if err := json.Unmarshal(value, &js); err != nil {
			return err
		}
		i.Junctions = js
		return nil
	}
	return fmt.Errorf("empty interior")
}

// Interior unmarshals from YAML as a plain junction list (empty means Here).
func (i *Interior) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var js []Junction
	if err := unmarshal(&js); err != nil {
		return err
	}
	i.Junctions = js
	return nil
}

// Junction is one hop of a multi-location path. Exactly one field is set; the
// JSON form is the single-key object polkadot-js expects.
type Junction struct {
	Parachain       *uint32          `yaml:"parachain,omitempty"`
	PalletInstance  *uint32          `yaml:"pallet_instance,omitempty"`
	GeneralIndex    *string          `yaml:"general_index,omitempty"`
	GeneralKey      *string          `yaml:"general_key,omitempty"`
	AccountID32     *AccountID32     `yaml:"account_id32,omitempty"`
	AccountKey20    *AccountKey20    `yaml:"account_key20,omitempty"`
	GlobalConsensus *GlobalConsensus `yaml:"global_consensus,omitempty"`
}

type AccountID32 struct {
	Network string `json:"network,omitempty" yaml:"network,omitempty"`
	ID      string `json:"id" yaml:"id"`
}

type AccountKey20 struct {
	Network string `json:"network,omitempty" yaml:"network,omitempty"`
	Key     string `json:"key" yaml:"key"`
}

// GlobalConsensus tags a junction with an external consensus system. Either
// Network names a relay family, or EthereumChainID selects an Ethereum chain.
type GlobalConsensus struct {
	Network         string  `yaml:"network,omitempty"`
	EthereumChainID *uint64 `yaml:"ethereum_chain_id,omitempty"`
}

func (g GlobalConsensus) MarshalJSON() ([]byte, error) {
	if g.EthereumChainID != nil {
		return json.Marshal(map[string]interface{}{
			"Ethereum": map[string]interface{}{"chain_id": *g.EthereumChainID},
		})
	}
	return json.Marshal(g.Network)
}

func (g *GlobalConsensus) UnmarshalJSON(data []byte) error {
	var network string
	if err := json.Unmarshal(data, &network); err == nil {
		g.Network = network
		return nil
	}
	var eth struct {
		Ethereum struct {
			ChainID uint64 `json:"chain_id"`
		} `json:"Ethereum"`
	}
	if err := json.Unmarshal(data, &eth); err != nil {
		return err
	}
	g.EthereumChainID = &eth.Ethereum.ChainID
	return nil
}

func (j Junction) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	switch {
	case j.Parachain != nil:
		out["Parachain"] = *j.Parachain
	case j.PalletInstance != nil:
		out["PalletInstance"] = *j.PalletInstance
	case j.GeneralIndex != nil:
		out["GeneralIndex"] = *j.GeneralIndex
	case j.GeneralKey != nil:
		out["GeneralKey"] = *j.GeneralKey
	case j.AccountID32 != nil:
		out["AccountId32"] = *j.AccountID32
	case j.AccountKey20 != nil:
		out["AccountKey20"] = *j.AccountKey20
	case j.GlobalConsensus != nil:
		out["GlobalConsensus"] = *j.GlobalConsensus
	default:
		return nil, fmt.Errorf("empty junction")
	}
	return json.Marshal(out)
}

func (j *Junction) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key, value := range raw {
		switch key {
		case "Parachain":
			j.Parachain = new(uint32)
			return json.Unmarshal(value, j.Parachain)
		case "PalletInstance":
			j.PalletInstance = new(uint32)
			return json.Unmarshal(value, j.PalletInstance)
		case "GeneralIndex":
			j.GeneralIndex = new(string)
			return json.Unmarshal(value, j.GeneralIndex)
		case "GeneralKey":
			j.GeneralKey = new(string)
			return json.Unmarshal(value, j.GeneralKey)
		case "AccountId32":
			j.AccountID32 = &AccountID32{}
			return json.Unmarshal(value, j.AccountID32)
		case "AccountKey20":
			j.AccountKey20 = &AccountKey20{}
			return json.Unmarshal(value, j.AccountKey20)
		case "GlobalConsensus":
			j.GlobalConsensus = &GlobalConsensus{}
			return json.Unmarshal(value, j.GlobalConsensus)
		}
	}
	return fmt.Errorf("unknown junction type")
}

// Junction constructors

func ParachainJunction(paraID uint32) Junction {
	return Junction{Parachain: &paraID}
}

func PalletInstanceJunction(index uint32) Junction {
	return Junction{PalletInstance: &index}
}

func GeneralIndexJunction(index string) Junction {
	return Junction{GeneralIndex: &index}
}

func AccountID32Junction(idHex string) Junction {
	return Junction{AccountID32: &AccountID32{ID: idHex}}
}

func AccountKey20Junction(keyHex string) Junction {
	return Junction{AccountKey20: &AccountKey20{Key: keyHex}}
}

func GlobalConsensusJunction(network string) Junction {
	return Junction{GlobalConsensus: &GlobalConsensus{Network: network}}
}

func GlobalConsensusEthereumJunction(chainID uint64) Junction {
	return Junction{GlobalConsensus: &GlobalConsensus{EthereumChainID: &chainID}}
}

// RelayLocation is the location of the relay-chain native asset as seen from a
// parachain.
func RelayLocation() MultiLocation {
	return MultiLocation{Parents: ParentsOne, Interior: Here()}
}

// Versioned wraps a wire payload in its XCM version tag, e.g. {"V3": ...},
// because the wire encoding differs by version.
type Versioned struct {
	Version Version
	Value   interface{}
}

func NewVersioned(version Version, value interface{}) Versioned {
	return Versioned{Version: version, Value: value}
}

func (v Versioned) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{string(v.Version): v.Value})
}

// Fungibility is the amount component of a multi-asset.
type Fungibility struct {
	Fungible AmountBlockchain `json:"Fungible" yaml:"fungible"`
}

// MultiAsset is one asset+amount pair of a transfer. Versions up to V3 wrap
// the location in a Concrete id; V4 uses the location directly.
type MultiAsset struct {
	ID  MultiLocation `json:"id" yaml:"id"`
	Fun Fungibility   `json:"fun" yaml:"fun"`

	concrete bool
}

// NewMultiAsset builds a multi-asset in the encoding of the given version.
func NewMultiAsset(version Version, amount AmountBlockchain, location MultiLocation) MultiAsset {
	return MultiAsset{
		ID:       location,
		Fun:      Fungibility{Fungible: amount},
		concrete: version != V4,
	}
}

func (m MultiAsset) MarshalJSON() ([]byte, error) {
	var id interface{} = m.ID
	if m.concrete {
		id = map[string]interface{}{"Concrete": m.ID}
	}
	return json.Marshal(map[string]interface{}{
		"id":  id,
		"fun": m.Fun,
	})
}

// MultiAssetWithFee marks at most one member of a user-supplied multi-asset
// list as the fee asset.
type MultiAssetWithFee struct {
	MultiAsset `yaml:",inline"`
	IsFeeAsset bool `json:"-" yaml:"is_fee_asset,omitempty"`
}

// OverriddenAsset carries a raw user-supplied currency payload that bypasses
// asset resolution. Exactly one of Location or MultiAssets is set.
type OverriddenAsset struct {
	Location    *MultiLocation
	MultiAssets []MultiAssetWithFee
}
