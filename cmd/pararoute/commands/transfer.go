package commands

import (
	"context"
	"encoding/json"
	"fmt"

	pararoute "github.com/pararoute/pararoute"
	"github.com/pararoute/pararoute/client"
	"github.com/pararoute/pararoute/transfer"
	"github.com/spf13/cobra"
)

func CmdBuild() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <recipient>",
		Short: "Construct a transfer call without connecting to a node.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			transferArgs, err := buildArgsFromFlags(cmd, args[0])
			if err != nil {
				return err
			}
			call, err := transfer.Build(transferArgs)
			if err != nil {
				return err
			}
			bz, _ := json.MarshalIndent(call, "", "  ")
			fmt.Println(string(bz))
			return nil
		},
	}
	transferFlags(cmd)
	return cmd
}

func CmdBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <chain> <address>",
		Short: "Check the native balance of an account.  Reported as big integer, not accounting for any decimals.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveChain(args[0])
			if err != nil {
				return err
			}
			url, _ := cmd.Flags().GetString("rpc")
			cli := newClient(cfg, url)
			defer cli.Disconnect()

			balance, err := cli.QueryBalance(context.Background(), pararoute.Address(args[1]))
			if err != nil {
				return fmt.Errorf("could not fetch balance for address %s: %v", args[1], err)
			}
			fmt.Println(balance.String())
			return nil
		},
	}
	cmd.Flags().String("rpc", "", "Override the chain's RPC endpoint.")
	return cmd
}

func CmdFee() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fee <sender> <recipient>",
		Short: "Construct a transfer call and estimate the origin-chain fee for the sender.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			transferArgs, err := buildArgsFromFlags(cmd, args[1])
			if err != nil {
				return err
			}
			cfg, err := resolveChain(string(transferArgs.GetOrigin()))
			if err != nil {
				return err
			}
			call, err := transfer.Build(transferArgs)
			if err != nil {
				return err
			}

			url, _ := cmd.Flags().GetString("rpc")
			cli := newClient(cfg, url)
			defer cli.Disconnect()

			details, err := transfer.GetOriginFeeDetails(
				context.Background(), cli, call, pararoute.Address(args[0]), transferArgs.GetAmount())
			if err != nil {
				return err
			}
			fmt.Printf("fee: %s\nsufficient: %v\n", details.OriginFee.String(), details.SufficientForXCM)
			return nil
		},
	}
	transferFlags(cmd)
	cmd.Flags().String("rpc", "", "Override the chain's RPC endpoint.")
	return cmd
}

func newClient(cfg *pararoute.ChainConfig, urlOverride string) *client.Client {
	if urlOverride != "" {
		return client.NewClient(cfg, urlOverride)
	}
	return client.NewClient(cfg)
}
