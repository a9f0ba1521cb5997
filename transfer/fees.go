package transfer

import (
	"context"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/client"
)

// OriginFeeDetails is the projected cost of dispatching a constructed call
// from an account.
type OriginFeeDetails struct {
	// OriginFee includes a 10% margin over the node's estimate, as XCM fees
	// drift between the estimate and inclusion.
	OriginFee pararoute.AmountBlockchain
	// SufficientForXCM reports whether the sender can pay the fee on top of
	// the transferred amount.
	SufficientForXCM bool
}

// GetOriginFeeDetails prices a constructed call on the origin chain and
// checks the sender's balance against amount plus fee.
func GetOriginFeeDetails(
	ctx context.Context,
	api client.ChainApi,
	call pararoute.SerializedCall,
	sender pararoute.Address,
	amount pararoute.AmountBlockchain,
) (OriginFeeDetails, error) {
	if err := api.Init(ctx); err != nil {
		return OriginFeeDetails{}, err
	}
	fee, err := api.CalculateTransactionFee(ctx, call, sender)
	if err != nil {
		return OriginFeeDetails{}, err
	}
	fee = withFeeMargin(fee)
	balance, err := api.QueryBalance(ctx, sender)
	if err != nil {
		return OriginFeeDetails{}, err
	}
	needed := amount.Add(&fee)
	return OriginFeeDetails{
		OriginFee:        fee,
		SufficientForXCM: balance.Cmp(&needed) >= 0,
	}, nil
}

func withFeeMargin(fee pararoute.AmountBlockchain) pararoute.AmountBlockchain {
	ten := pararoute.NewAmountBlockchainFromUint64(10)
	margin := fee.Div(&ten)
	return fee.Add(&margin)
}
