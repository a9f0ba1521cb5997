package pararoute

// Asset is one registered asset on a chain.
type Asset struct {
	Symbol string `yaml:"symbol" json:"symbol"`
	// AssetID is the on-chain identifier of a non-native asset. It is kept as
	// a string because some chains use ids wider than 64 bits.
	AssetID  string `yaml:"asset_id,omitempty" json:"asset_id,omitempty"`
	Decimals int32  `yaml:"decimals" json:"decimals"`
	// ExistentialDeposit in base units. Accounts whose balance of the native
	// asset drops below it are reaped.
	ExistentialDeposit AmountBlockchain `yaml:"existential_deposit,omitempty" json:"existential_deposit,omitempty"`
	// Location of the asset in multi-location form, when known.
	Location *MultiLocation `yaml:"multi_location,omitempty" json:"multi_location,omitempty"`
}

// IsNative reports whether the asset record came from the chain's native
// asset table. Native assets have no on-chain id.
func (a Asset) IsNative() bool {
	return a.AssetID == ""
}
