package pararoute

import (
	"strconv"

	"github.com/pkg/errors"
)

// MaxSafeCurrencyID is the largest numeric currency id accepted without loss
// of precision in downstream tooling.
const MaxSafeCurrencyID = uint64(1)<<53 - 1

// CurrencyInput identifies the asset to transfer. It is a union: exactly one
// of Symbol, ID, Location or MultiAssets is set. Location and MultiAssets are
// override forms that bypass registry resolution entirely.
type CurrencyInput struct {
	Symbol      string
	ID          string
	Location    *MultiLocation
	MultiAssets []MultiAssetWithFee

	numericID bool
}

func NewCurrencySymbol(symbol string) CurrencyInput {
	return CurrencyInput{Symbol: symbol}
}

func NewCurrencyID(id uint64) CurrencyInput {
	return CurrencyInput{ID: strconv.FormatUint(id, 10), numericID: true}
}

// NewCurrencyIDString accepts ids too large for uint64 range checks, e.g.
// 128-bit asset ids on some chains.
func NewCurrencyIDString(id string) CurrencyInput {
	return CurrencyInput{ID: id}
}

func NewCurrencyLocation(location MultiLocation) CurrencyInput {
	return CurrencyInput{Location: &location}
}

func NewCurrencyMultiAssets(assets []MultiAssetWithFee) CurrencyInput {
	return CurrencyInput{MultiAssets: assets}
}

// IsOverride reports whether the currency bypasses registry resolution.
func (c CurrencyInput) IsOverride() bool {
	return c.Location != nil || len(c.MultiAssets) > 0
}

// IsID reports whether the currency is an asset id rather than a symbol.
func (c CurrencyInput) IsID() bool {
	return c.ID != ""
}

// Validate checks structural invariants of the union before any chain-specific
// processing. feeAssetIndex is the caller-selected fee member for the
// multi-asset form, or negative when unset.
func (c CurrencyInput) Validate(feeAssetIndex int) error {
	set := 0
	if c.Symbol != "" {
		set++
	}
	if c.ID != "" {
		set++
	}
	if c.Location != nil {
		set++
	}
	if len(c.MultiAssets) > 0 {
		set++
	}
	if set == 0 {
		return &Error{Kind: ErrInvalidCurrency, Message: "no currency specified"}
	}
	if set > 1 {
		return &Error{Kind: ErrInvalidCurrency, Message: "currency forms are mutually exclusive"}
	}
	if c.numericID {
		id, err := strconv.ParseUint(c.ID, 10, 64)
		if err != nil {
			return &Error{Kind: ErrInvalidCurrency, Message: errors.Wrap(err, "invalid numeric currency id").Error()}
		}
		if id > MaxSafeCurrencyID {
			return &Error{Kind: ErrInvalidCurrency, Message: "numeric currency id exceeds safe integer range, use a string id"}
		}
	}
	if len(c.MultiAssets) > 0 {
		if len(c.MultiAssets) == 1 && feeAssetIndex >= 0 {
			return &Error{Kind: ErrInvalidCurrency, Message: "fee asset selection requires more than one multi-asset"}
		}
		if len(c.MultiAssets) > 1 {
			if feeAssetIndex < 0 || feeAssetIndex >= len(c.MultiAssets) {
				return &Error{Kind: ErrInvalidCurrency, Message: "multi-asset transfers require a fee asset index within bounds"}
			}
		}
	}
	return nil
}

// Overridden returns the override payload when the currency is an override
// form, or nil.
func (c CurrencyInput) Overridden() *OverriddenAsset {
	if c.Location != nil {
		return &OverriddenAsset{Location: c.Location}
	}
	if len(c.MultiAssets) > 0 {
		return &OverriddenAsset{MultiAssets: c.MultiAssets}
	}
	return nil
}

func (c CurrencyInput) String() string {
	switch {
	case c.Symbol != "":
		return c.Symbol
	case c.ID != "":
		return "id:" + c.ID
	case c.Location != nil:
		return "multilocation"
	case len(c.MultiAssets) > 0:
		return "multiasset"
	}
	return "<empty>"
}
