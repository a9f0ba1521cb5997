// Package router chains transfer construction and swaps into a three-leg
// pipeline: move funds to an exchange chain, trade there, and move the
// proceeds to the destination. The plan is plain data; Execute walks it.
package router

import (
	"context"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/builder"
	"github.com/pararoute/pararoute/client"
	"github.com/pararoute/pararoute/registry"
	"github.com/pararoute/pararoute/transfer"
	"github.com/pkg/errors"
)

// StepType names the pipeline leg a status update refers to.
type StepType string

const (
	StepToExchange    StepType = "TO_EXCHANGE"
	StepSwap          StepType = "SWAP"
	StepToDestination StepType = "TO_DESTINATION"
)

// StepStatus is the progress state of one leg.
type StepStatus string

const (
	StatusInProgress StepStatus = "IN_PROGRESS"
	StatusSuccess    StepStatus = "SUCCESS"
)

// StatusUpdate is delivered to the caller's callback as the pipeline
// advances.
type StatusUpdate struct {
	Type   StepType
	Status StepStatus
}

type StatusCallback func(StatusUpdate)

// ExecutionType selects which sub-range of the pipeline to run.
type ExecutionType string

const (
	// ExecuteFull runs all legs.
	ExecuteFull ExecutionType = "FULL_TRANSFER"
	// ExecuteToExchange stops after funds reach the exchange chain.
	ExecuteToExchange ExecutionType = "TO_EXCHANGE"
	// ExecuteSwap runs the trade only; funds already sit on the exchange and
	// the proceeds stay there.
	ExecuteSwap ExecutionType = "SWAP"
	// ExecuteToDestination moves already-swapped funds off the exchange.
	ExecuteToDestination ExecutionType = "TO_DESTINATION"
	// ExecuteFromExchange assumes funds already sit on the exchange and runs
	// the swap and final leg only.
	ExecuteFromExchange ExecutionType = "FROM_EXCHANGE"
)

// Options describes one routed trade.
type Options struct {
	Origin pararoute.Chain
	// Exchange may be empty, in which case the first registered adapter
	// trading the pair is selected.
	Exchange     pararoute.Chain
	Destination  pararoute.Chain
	CurrencyFrom pararoute.CurrencyInput
	CurrencyTo   pararoute.CurrencyInput
	Amount       pararoute.AmountBlockchain
	// Recipient receives the proceeds on the destination chain.
	Recipient pararoute.Recipient
	// ExchangeAddress is the caller's account on the exchange chain, the
	// beneficiary of the first leg and sender of the rest.
	ExchangeAddress pararoute.Address
	SlippagePct     string
	Type            ExecutionType
	OnStatus        StatusCallback
}

// Step is one leg of a built plan.
type Step struct {
	Type StepType
	// Origin and Target chains of the leg. For swap steps both are the
	// exchange chain.
	Origin pararoute.Chain
	Target pararoute.Chain
}

// Plan is the ordered list of legs a routed trade will take.
type Plan struct {
	Exchange pararoute.Chain
	Steps    []Step
}

// StepResult is the constructed call of one executed leg.
type StepResult struct {
	Step  Step
	Chain pararoute.Chain
	Call  pararoute.SerializedCall
	// AmountOut is set on swap steps.
	AmountOut pararoute.AmountBlockchain
}

// BuildPlan resolves the exchange and lays out the legs. Legs collapse when
// they would be a no-op: an origin that is the exchange needs no first leg,
// an exchange that is the destination needs no last leg.
func BuildPlan(opts Options, adapters []ExchangeAdapter) (Plan, ExchangeAdapter, error) {
	adapter, err := selectExchange(adapters, opts.Exchange, opts.CurrencyFrom, opts.CurrencyTo)
	if err != nil {
		return Plan{}, nil, err
	}
	exchange := adapter.Chain()
	if _, err := registry.GetChain(exchange); err != nil {
		return Plan{}, nil, err
	}

	plan := Plan{Exchange: exchange}
	switch opts.Type {
	case ExecuteSwap:
		plan.Steps = append(plan.Steps, Step{Type: StepSwap, Origin: exchange, Target: exchange})
		return plan, adapter, nil
	case ExecuteToDestination:
		if opts.Destination != exchange {
			plan.Steps = append(plan.Steps, Step{Type: StepToDestination, Origin: exchange, Target: opts.Destination})
		}
		return plan, adapter, nil
	}
	if opts.Origin != exchange && opts.Type != ExecuteFromExchange {
		plan.Steps = append(plan.Steps, Step{Type: StepToExchange, Origin: opts.Origin, Target: exchange})
	}
	if opts.Type == ExecuteToExchange {
		return plan, adapter, nil
	}
	plan.Steps = append(plan.Steps, Step{Type: StepSwap, Origin: exchange, Target: exchange})
	if opts.Destination != exchange {
		plan.Steps = append(plan.Steps, Step{Type: StepToDestination, Origin: exchange, Target: opts.Destination})
	}
	return plan, adapter, nil
}

// Execute walks the plan, constructing each leg's call. Chain connections are
// acquired per leg and released when the leg is done. The caller's status
// callback sees every leg start and finish.
func Execute(ctx context.Context, opts Options, adapters []ExchangeAdapter, apis ...client.ChainApi) ([]StepResult, error) {
	plan, adapter, err := BuildPlan(opts, adapters)
	if err != nil {
		return nil, err
	}
	exec := &executor{opts: opts, adapter: adapter, apis: apis}
	return exec.run(ctx, plan)
}

type executor struct {
	opts    Options
	adapter ExchangeAdapter
	// pre-opened connections keyed positionally; when exhausted the executor
	// opens its own
	apis    []client.ChainApi
	swapOut pararoute.AmountBlockchain
}

func (e *executor) run(ctx context.Context, plan Plan) ([]StepResult, error) {
	var results []StepResult
	for _, step := range plan.Steps {
		e.notify(step.Type, StatusInProgress)
		result, err := e.runStep(ctx, plan, step)
		if err != nil {
			return results, err
		}
		e.notify(step.Type, StatusSuccess)
		results = append(results, result)
	}
	return results, nil
}

func (e *executor) runStep(ctx context.Context, plan Plan, step Step) (StepResult, error) {
	switch step.Type {
	case StepToExchange:
		call, err := e.buildTransfer(step.Origin, step.Target, e.opts.CurrencyFrom, e.opts.Amount,
			pararoute.NewRecipient(e.opts.ExchangeAddress))
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{Step: step, Chain: step.Origin, Call: call}, nil

	case StepSwap:
		result, err := e.buildSwap(ctx, plan)
		if err != nil {
			return StepResult{}, err
		}
		e.swapOut = result.AmountOut
		return StepResult{Step: step, Chain: plan.Exchange, Call: result.Call, AmountOut: result.AmountOut}, nil

	case StepToDestination:
		amount := e.swapOut
		if amount.IsZero() {
			amount = e.opts.Amount
		}
		call, err := e.buildTransfer(step.Origin, step.Target, e.opts.CurrencyTo, amount, e.opts.Recipient)
		if err != nil {
			return StepResult{}, err
		}
		return StepResult{Step: step, Chain: step.Origin, Call: call}, nil
	}
	return StepResult{}, pararoute.Errorf(pararoute.ErrMalformedRequest, "unknown step type %s", step.Type)
}

// buildSwap prices both adjoining transfer legs before asking the exchange to
// trade, so the swap output already accounts for what the exits will cost.
func (e *executor) buildSwap(ctx context.Context, plan Plan) (SwapResult, error) {
	api, release, err := e.acquire(ctx, plan.Exchange)
	if err != nil {
		return SwapResult{}, err
	}
	defer release()

	// only the legs the plan actually runs cost anything
	toExchangeFee := pararoute.NewAmountBlockchainFromUint64(0)
	if e.opts.Type != ExecuteFromExchange && e.opts.Type != ExecuteSwap {
		toExchangeFee, err = e.legFee(ctx, e.opts.Origin, plan.Exchange, e.opts.CurrencyFrom, e.opts.Amount,
			pararoute.NewRecipient(e.opts.ExchangeAddress))
		if err != nil {
			return SwapResult{}, err
		}
	}
	toDestFee := pararoute.NewAmountBlockchainFromUint64(0)
	if e.opts.Type != ExecuteSwap {
		toDestFee, err = e.legFee(ctx, plan.Exchange, e.opts.Destination, e.opts.CurrencyTo, e.opts.Amount, e.opts.Recipient)
		if err != nil {
			return SwapResult{}, err
		}
	}

	args := SwapArgs{
		CurrencyFrom: e.opts.CurrencyFrom,
		CurrencyTo:   e.opts.CurrencyTo,
		Amount:       e.opts.Amount,
		SlippagePct:  e.opts.SlippagePct,
	}
	return e.adapter.Swap(ctx, api, args, toDestFee, toExchangeFee)
}

// legFee estimates the fee of a transfer leg. Legs that collapse out of the
// plan cost nothing.
func (e *executor) legFee(ctx context.Context, origin, target pararoute.Chain, currency pararoute.CurrencyInput, amount pararoute.AmountBlockchain, recipient pararoute.Recipient) (pararoute.AmountBlockchain, error) {
	zero := pararoute.NewAmountBlockchainFromUint64(0)
	if origin == target {
		return zero, nil
	}
	call, err := e.buildTransfer(origin, target, currency, amount, recipient)
	if err != nil {
		return zero, err
	}
	api, release, err := e.acquire(ctx, origin)
	if err != nil {
		return zero, err
	}
	defer release()
	if err := api.Init(ctx); err != nil {
		return zero, err
	}
	fee, err := api.CalculateTransactionFee(ctx, call, e.opts.ExchangeAddress)
	if err != nil {
		return zero, errors.Wrapf(err, "could not price the %s to %s leg", origin, target)
	}
	return fee, nil
}

func (e *executor) buildTransfer(origin, target pararoute.Chain, currency pararoute.CurrencyInput, amount pararoute.AmountBlockchain, recipient pararoute.Recipient) (pararoute.SerializedCall, error) {
	args, err := builder.NewTransferArgs(origin, pararoute.NewDestinationChain(target), currency, amount, recipient)
	if err != nil {
		return pararoute.SerializedCall{}, err
	}
	return transfer.Build(args)
}

// acquire returns a connection for the chain and a release func. Pre-supplied
// apis are matched by chain and stay open; owned connections are closed on
// release.
func (e *executor) acquire(ctx context.Context, chain pararoute.Chain) (client.ChainApi, func(), error) {
	for _, api := range e.apis {
		if api.Config() != nil && api.Config().Chain == chain {
			return api, func() {}, nil
		}
	}
	cfg, err := registry.GetChain(chain)
	if err != nil {
		return nil, nil, err
	}
	owned := client.NewClient(cfg)
	return owned, owned.Disconnect, nil
}

func (e *executor) notify(stepType StepType, status StepStatus) {
	if e.opts.OnStatus == nil {
		return
	}
	e.opts.OnStatus(StatusUpdate{Type: stepType, Status: status})
}
