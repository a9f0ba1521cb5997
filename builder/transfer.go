// Package builder holds the immutable argument record of a transfer request.
package builder

import (
	pararoute "github.com/pararoute/pararoute"
)

// TransferArgs carries everything needed to construct one cross-chain
// transfer. Build one with NewTransferArgs; the record does not change after
// construction.
type TransferArgs struct {
	options     transferOptions
	origin      pararoute.Chain
	destination pararoute.Destination
	currency    pararoute.CurrencyInput
	amount      pararoute.AmountBlockchain
	recipient   pararoute.Recipient
}

func (args *TransferArgs) GetOrigin() pararoute.Chain            { return args.origin }
func (args *TransferArgs) GetDestination() pararoute.Destination { return args.destination }
func (args *TransferArgs) GetCurrency() pararoute.CurrencyInput  { return args.currency }
func (args *TransferArgs) GetAmount() pararoute.AmountBlockchain { return args.amount }
func (args *TransferArgs) GetRecipient() pararoute.Recipient     { return args.recipient }

// Exposed options
func (args *TransferArgs) GetFeeAssetIndex() (int, bool) { return args.options.GetFeeAssetIndex() }
func (args *TransferArgs) GetParaIDTo() (uint32, bool)   { return args.options.GetParaIDTo() }
func (args *TransferArgs) GetVersion() (pararoute.Version, bool) {
	return args.options.GetVersion()
}
func (args *TransferArgs) GetDestAPIURL() (string, bool) { return args.options.GetDestAPIURL() }
func (args *TransferArgs) KeepAliveDisabled() bool       { return args.options.KeepAliveDisabled() }
func (args *TransferArgs) GetPallet() (pararoute.Capability, bool) {
	return args.options.GetPallet()
}

// FeeAssetIndexOrNegative returns the selected fee asset index, or -1 when
// none was chosen.
func (args *TransferArgs) FeeAssetIndexOrNegative() int {
	if index, ok := args.options.GetFeeAssetIndex(); ok {
		return index
	}
	return -1
}

func NewTransferArgs(
	origin pararoute.Chain,
	destination pararoute.Destination,
	currency pararoute.CurrencyInput,
	amount pararoute.AmountBlockchain,
	recipient pararoute.Recipient,
	options ...TransferOption,
) (TransferArgs, error) {
	transferOptions := newTransferOptions()
	args := TransferArgs{
		transferOptions,
		origin,
		destination,
		currency,
		amount,
		recipient,
	}
	for _, opt := range options {
		err := opt(&args.options)
		if err != nil {
			return args, err
		}
	}
	return args, nil
}
