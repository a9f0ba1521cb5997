package pararoute

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcutil/base58"
	"github.com/ethereum/go-ethereum/common"
	"github.com/vedhavyas/go-subkey/v2"
)

// Address is a recipient account in the format native to its chain: SS58 for
// substrate chains, 0x-hex for EVM chains.
type Address string

// Destination names where a transfer goes: a registered chain, or a raw
// multi-location for destinations outside the registry.
type Destination struct {
	Chain    Chain
	Location *MultiLocation
}

func NewDestinationChain(chain Chain) Destination {
	return Destination{Chain: chain}
}

func NewDestinationLocation(location MultiLocation) Destination {
	return Destination{Location: &location}
}

func (d Destination) IsLocation() bool {
	return d.Location != nil
}

func (d Destination) String() string {
	if d.Location != nil {
		return "multilocation"
	}
	return string(d.Chain)
}

// Recipient is the beneficiary of a transfer: an address, or a raw
// multi-location overriding beneficiary construction.
type Recipient struct {
	Address  Address
	Location *MultiLocation
}

func NewRecipient(address Address) Recipient {
	return Recipient{Address: address}
}

func NewRecipientLocation(location MultiLocation) Recipient {
	return Recipient{Location: &location}
}

func (r Recipient) IsLocation() bool {
	return r.Location != nil
}

// IsEVMAddress reports whether addr is a 20-byte 0x-hex address.
func IsEVMAddress(addr Address) bool {
	return common.IsHexAddress(string(addr))
}

// ValidateAddress checks that addr is well-formed for the destination chain.
func ValidateAddress(addr Address, evmChain bool) error {
	if evmChain {
		if !IsEVMAddress(addr) {
			return Errorf(ErrInvalidAddress, "address %s is not a valid EVM address", addr)
		}
		return nil
	}
	if IsEVMAddress(addr) {
		// EVM addresses are accepted on substrate chains only as AccountKey20
		// beneficiaries, handled by the payload builder.
		return nil
	}
	if _, err := DecodeAccountID(addr); err != nil {
		return Errorf(ErrInvalidAddress, "address %s is not a valid SS58 address: %v", addr, err)
	}
	return nil
}

// DecodeAccountID extracts the 32-byte account id from an SS58 address.
func DecodeAccountID(addr Address) ([]byte, error) {
	decoded := base58.Decode(string(addr))
	if len(decoded) < 34 {
		return nil, fmt.Errorf("address %s is too short", addr)
	}
	return last32DropChecksum(decoded), nil
}

// AccountIDHex is the 0x-hex form of the SS58 account id, as used inside
// AccountId32 junctions.
func AccountIDHex(addr Address) (string, error) {
	accountID, err := DecodeAccountID(addr)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(accountID), nil
}

// EncodeSS58 renders a 32-byte public key in SS58 with the given network
// prefix.
func EncodeSS58(publicKey []byte, prefix uint16) (Address, error) {
	if len(publicKey) != 32 {
		return Address(""), fmt.Errorf("expecting 32 byte public key but got %d", len(publicKey))
	}
	return Address(subkey.SS58Encode(publicKey, prefix)), nil
}

func last32DropChecksum(decoded []byte) []byte {
	// SS58 layout: prefix (1-2 bytes) || account id (32 bytes) || checksum (2 bytes)
	withoutChecksum := decoded[:len(decoded)-2]
	return withoutChecksum[len(withoutChecksum)-32:]
}
