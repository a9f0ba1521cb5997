package pararoute

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies a transfer-construction failure.
type Kind string

// The currency input is malformed or ambiguous
const ErrInvalidCurrency Kind = "InvalidCurrency"

// An address failed format validation for its target chain
const ErrInvalidAddress Kind = "InvalidAddress"

// The origin/destination pair is not a supported route
const ErrIncompatibleChains Kind = "IncompatibleChains"

// The transfer scenario is recognized but not supported by the origin chain
const ErrUnsupportedScenario Kind = "UnsupportedScenario"

// The origin chain has no cross-chain transfer capability at all
const ErrNoXCMSupport Kind = "NoXCMSupport"

// A chain referenced by the request is not in the registry
const ErrNodeNotSupported Kind = "NodeNotSupported"

// The asset is not registered on origin or destination
const ErrAssetNotSupported Kind = "AssetNotSupported"

// The request is structurally malformed
const ErrMalformedRequest Kind = "MalformedRequest"

// An RPC or downstream dependency failed
const ErrDownstream Kind = "Downstream"

// The keep-alive check determined the transfer would reap an account
const ErrKeepAlive Kind = "KeepAlive"

type Error struct {
	Kind    Kind
	Message string
}

var _ error = &Error{}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func Errorf(kind Kind, format string, args ...interface{}) error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// KindOf extracts the classified kind of an error, or empty for plain errors.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsInvalidCurrency(err error) bool    { return KindOf(err) == ErrInvalidCurrency }
func IsInvalidAddress(err error) bool     { return KindOf(err) == ErrInvalidAddress }
func IsIncompatibleChains(err error) bool { return KindOf(err) == ErrIncompatibleChains }
func IsNodeNotSupported(err error) bool   { return KindOf(err) == ErrNodeNotSupported }
func IsAssetNotSupported(err error) bool  { return KindOf(err) == ErrAssetNotSupported }
