package router

import (
	"context"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/client"
)

// SwapResult is what an exchange produced for a swap step: the call to
// dispatch on the exchange chain and the amount the swap is expected to
// yield.
type SwapResult struct {
	Call      pararoute.SerializedCall
	AmountOut pararoute.AmountBlockchain
}

// ExchangeAdapter builds swap calls for one exchange chain. The two transfer
// fees adjoining the swap are passed in so the exchange can deduct them from
// the traded amount; without that the last leg could strand dust on the
// exchange.
type ExchangeAdapter interface {
	Chain() pararoute.Chain
	// Supports reports whether the exchange trades the given pair.
	Supports(from, to pararoute.CurrencyInput) bool
	Swap(
		ctx context.Context,
		api client.ChainApi,
		args SwapArgs,
		toDestFee pararoute.AmountBlockchain,
		toExchangeFee pararoute.AmountBlockchain,
	) (SwapResult, error)
}

// SwapArgs is the exchange-facing slice of the router options.
type SwapArgs struct {
	CurrencyFrom pararoute.CurrencyInput
	CurrencyTo   pararoute.CurrencyInput
	Amount       pararoute.AmountBlockchain
	// SlippagePct is the tolerated price slippage, e.g. "1" for 1%.
	SlippagePct string
}

// selectExchange picks the first adapter that trades the pair, preferring an
// explicitly requested chain.
func selectExchange(adapters []ExchangeAdapter, requested pararoute.Chain, from, to pararoute.CurrencyInput) (ExchangeAdapter, error) {
	if requested != "" {
		for _, adapter := range adapters {
			if adapter.Chain() == requested {
				return adapter, nil
			}
		}
		return nil, pararoute.Errorf(pararoute.ErrNodeNotSupported,
			"no exchange adapter registered for %s", requested)
	}
	for _, adapter := range adapters {
		if adapter.Supports(from, to) {
			return adapter, nil
		}
	}
	return nil, pararoute.Errorf(pararoute.ErrAssetNotSupported,
		"no registered exchange trades %s to %s", from.String(), to.String())
}
