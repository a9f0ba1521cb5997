package pararoute

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// PalletKind selects the beneficiary layout, which differs between the token
// pallet and the generic XCM pallets.
type PalletKind string

const (
	PalletXTokens     PalletKind = "XTokens"
	PalletPolkadotXcm PalletKind = "PolkadotXcm"
	PalletXcmPallet   PalletKind = "XcmPallet"
)

// CreateDestinationHeader builds the versioned dest argument of an XCM call.
// A raw multi-location destination is used verbatim. Otherwise the path is
// derived from the scenario: up to the relay for para->relay, down into the
// sibling parachain for para->para and relay->para. junction and parents
// override the defaults for bridged destinations.
func CreateDestinationHeader(scenario Scenario, version Version, destination Destination, paraID uint32, junction *Junction, parents *Parents) Versioned {
	if destination.IsLocation() {
		return NewVersioned(version, *destination.Location)
	}
	p := ParentsZero
	if scenario == ParaToRelay || scenario == ParaToPara {
		p = ParentsOne
	}
	if parents != nil {
		p = *parents
	}
	interior := Here()
	switch {
	case junction != nil:
		interior = X(*junction)
	case scenario == ParaToPara || scenario == RelayToPara:
		interior = X(ParachainJunction(paraID))
	}
	return NewVersioned(version, MultiLocation{Parents: p, Interior: interior})
}

// CreateCurrencySpec builds the versioned assets argument. An overridden
// location or multi-asset list takes precedence over the default asset
// location.
func CreateCurrencySpec(amount AmountBlockchain, version Version, parents Parents, overridden *OverriddenAsset, interior Interior) Versioned {
	if overridden != nil {
		if overridden.Location != nil {
			return NewVersioned(version, []MultiAsset{
				NewMultiAsset(version, amount, *overridden.Location),
			})
		}
		if len(overridden.MultiAssets) > 0 {
			assets := make([]MultiAsset, 0, len(overridden.MultiAssets))
			for _, a := range overridden.MultiAssets {
				assets = append(assets, a.MultiAsset)
			}
			return NewVersioned(version, assets)
		}
	}
	return NewVersioned(version, []MultiAsset{
		NewMultiAsset(version, amount, MultiLocation{Parents: parents, Interior: interior}),
	})
}

// CreateBeneficiary builds the versioned beneficiary argument for a
// recipient. EVM addresses become AccountKey20 junctions, SS58 addresses
// AccountId32. The token pallet embeds the full destination path in the
// beneficiary, so for it the parachain hop is included.
func CreateBeneficiary(recipient Recipient, scenario Scenario, pallet PalletKind, version Version, paraID uint32) (Versioned, error) {
	if recipient.IsLocation() {
		return NewVersioned(version, *recipient.Location), nil
	}
	account, err := accountJunction(recipient.Address)
	if err != nil {
		return Versioned{}, err
	}
	if pallet == PalletXTokens {
		switch scenario {
		case ParaToRelay:
			return NewVersioned(version, MultiLocation{
				Parents:  ParentsOne,
				Interior: X(account),
			}), nil
		case ParaToPara:
			return NewVersioned(version, MultiLocation{
				Parents:  ParentsOne,
				Interior: X(ParachainJunction(paraID), account),
			}), nil
		}
	}
	// generic XCM pallets carry the destination in the header, the
	// beneficiary is local to it
	return NewVersioned(version, MultiLocation{
		Parents:  ParentsZero,
		Interior: X(account),
	}), nil
}

func accountJunction(addr Address) (Junction, error) {
	if common.IsHexAddress(string(addr)) {
		key := string(addr)
		if !strings.HasPrefix(key, "0x") {
			key = "0x" + key
		}
		return AccountKey20Junction(key), nil
	}
	idHex, err := AccountIDHex(addr)
	if err != nil {
		return Junction{}, Errorf(ErrInvalidAddress, "address %s: %v", addr, err)
	}
	return AccountID32Junction(idHex), nil
}
