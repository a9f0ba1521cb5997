package main

import (
	"fmt"
	"os"

	"github.com/pararoute/pararoute/cmd/pararoute/commands"
	"github.com/pararoute/pararoute/config"
	"github.com/pararoute/pararoute/registry"
	"github.com/spf13/cobra"
)

func CmdPararoute() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pararoute",
		Short:        "Construct cross-chain transfer calls for the Polkadot and Kusama ecosystems",
		Args:         cobra.ExactArgs(0),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("verbosity")
			if level != "" {
				config.ConfigureLogger(level)
			} else {
				config.ConfigureLogger()
			}
			return registry.LoadUserOverrides()
		},
	}
	cmd.PersistentFlags().StringP("verbosity", "v", "", "Set log verbosity (trace, debug, info, warn, error).")

	cmd.AddCommand(commands.CmdChains())
	cmd.AddCommand(commands.CmdAssets())
	cmd.AddCommand(commands.CmdBuild())
	cmd.AddCommand(commands.CmdBalance())
	cmd.AddCommand(commands.CmdFee())
	return cmd
}

func main() {
	if err := CmdPararoute().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
