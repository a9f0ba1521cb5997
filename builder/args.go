package builder

import (
	pararoute "github.com/pararoute/pararoute"
)

// All possible transfer arguments go in here, privately available. The public
// TransferArgs selects which arguments are exposed. Once constructed the
// record is immutable.
type transferOptions struct {
	feeAssetIndex *int
	paraIDTo      *uint32
	version       *pararoute.Version
	// separate api handle for the keep-alive projection on the destination
	destAPIURL *string
	// skip the keep-alive projection even for allowlisted chains
	keepAliveDisabled bool
	// pallet override for chains carrying several capabilities
	pallet *pararoute.Capability
}

func newTransferOptions() transferOptions {
	return transferOptions{}
}

func get[T any](arg *T) (T, bool) {
	if arg == nil {
		var zero T
		return zero, false
	}
	return *arg, true
}

func (opts *transferOptions) GetFeeAssetIndex() (int, bool) { return get(opts.feeAssetIndex) }
func (opts *transferOptions) GetParaIDTo() (uint32, bool)   { return get(opts.paraIDTo) }
func (opts *transferOptions) GetVersion() (pararoute.Version, bool) {
	return get(opts.version)
}
func (opts *transferOptions) GetDestAPIURL() (string, bool) { return get(opts.destAPIURL) }
func (opts *transferOptions) KeepAliveDisabled() bool       { return opts.keepAliveDisabled }
func (opts *transferOptions) GetPallet() (pararoute.Capability, bool) {
	return get(opts.pallet)
}

type TransferOption func(opts *transferOptions) error

// OptionFeeAsset selects which member of a multi-asset currency pays the
// execution fee.
func OptionFeeAsset(index int) TransferOption {
	return func(opts *transferOptions) error {
		opts.feeAssetIndex = &index
		return nil
	}
}

// OptionParaIDTo overrides the destination parachain id, for destinations
// given as raw multi-locations.
func OptionParaIDTo(paraID uint32) TransferOption {
	return func(opts *transferOptions) error {
		opts.paraIDTo = &paraID
		return nil
	}
}

// OptionVersion overrides the origin chain's default XCM version.
func OptionVersion(version pararoute.Version) TransferOption {
	return func(opts *transferOptions) error {
		opts.version = &version
		return nil
	}
}

// OptionDestAPI supplies the RPC endpoint used for the keep-alive projection
// on the destination chain.
func OptionDestAPI(url string) TransferOption {
	return func(opts *transferOptions) error {
		opts.destAPIURL = &url
		return nil
	}
}

// OptionNoKeepAlive disables the keep-alive projection.
func OptionNoKeepAlive() TransferOption {
	return func(opts *transferOptions) error {
		opts.keepAliveDisabled = true
		return nil
	}
}

// OptionPallet forces a specific capability on chains that carry several.
func OptionPallet(capability pararoute.Capability) TransferOption {
	return func(opts *transferOptions) error {
		opts.pallet = &capability
		return nil
	}
}
