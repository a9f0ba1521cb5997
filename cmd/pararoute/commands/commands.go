package commands

import (
	"fmt"
	"strings"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/builder"
	"github.com/pararoute/pararoute/registry"
	"github.com/spf13/cobra"
)

// buildArgsFromFlags assembles transfer arguments shared by the build and fee
// commands.
func buildArgsFromFlags(cmd *cobra.Command, recipientRaw string) (builder.TransferArgs, error) {
	origin, _ := cmd.Flags().GetString("from")
	destination, _ := cmd.Flags().GetString("to")
	symbol, _ := cmd.Flags().GetString("currency")
	id, _ := cmd.Flags().GetString("currency-id")
	amountRaw, _ := cmd.Flags().GetString("amount")
	versionRaw, _ := cmd.Flags().GetString("xcm-version")
	pallet, _ := cmd.Flags().GetString("pallet")
	noKeepAlive, _ := cmd.Flags().GetBool("no-keep-alive")

	if origin == "" || destination == "" {
		return builder.TransferArgs{}, fmt.Errorf("--from and --to are required")
	}
	if amountRaw == "" {
		return builder.TransferArgs{}, fmt.Errorf("--amount is required")
	}
	amount := pararoute.NewAmountBlockchainFromStr(amountRaw)
	if amount.IsZero() {
		return builder.TransferArgs{}, fmt.Errorf("invalid amount %q", amountRaw)
	}

	var currency pararoute.CurrencyInput
	switch {
	case symbol != "" && id != "":
		return builder.TransferArgs{}, fmt.Errorf("--currency and --currency-id are mutually exclusive")
	case id != "":
		currency = pararoute.NewCurrencyIDString(id)
	case symbol != "":
		currency = pararoute.NewCurrencySymbol(symbol)
	default:
		return builder.TransferArgs{}, fmt.Errorf("one of --currency or --currency-id is required")
	}

	var options []builder.TransferOption
	if versionRaw != "" {
		options = append(options, builder.OptionVersion(pararoute.Version(strings.ToUpper(versionRaw))))
	}
	if pallet != "" {
		options = append(options, builder.OptionPallet(pararoute.Capability(strings.ToLower(pallet))))
	}
	if noKeepAlive {
		options = append(options, builder.OptionNoKeepAlive())
	}

	return builder.NewTransferArgs(
		pararoute.Chain(origin),
		pararoute.NewDestinationChain(pararoute.Chain(destination)),
		currency,
		amount,
		pararoute.NewRecipient(pararoute.Address(recipientRaw)),
		options...,
	)
}

func transferFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Origin chain, e.g. Acala.")
	cmd.Flags().String("to", "", "Destination chain, e.g. Polkadot.")
	cmd.Flags().String("currency", "", "Asset symbol, e.g. DOT.")
	cmd.Flags().String("currency-id", "", "Asset id on the origin chain, instead of a symbol.")
	cmd.Flags().String("amount", "", "Amount in blockchain units, not accounting for decimals.")
	cmd.Flags().String("xcm-version", "", "Override the XCM version, e.g. V4.")
	cmd.Flags().String("pallet", "", "Force a specific pallet (xtokens, polkadotxcm, xtransfer).")
	cmd.Flags().Bool("no-keep-alive", false, "Skip the destination existential-deposit check.")
}

func resolveChain(raw string) (*pararoute.ChainConfig, error) {
	cfg, err := registry.GetChain(pararoute.Chain(raw))
	if err != nil {
		return nil, fmt.Errorf("unknown chain %q, try the chains command", raw)
	}
	return cfg, nil
}
