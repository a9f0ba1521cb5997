package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pararoute/pararoute/registry"
	"github.com/spf13/cobra"
)

func CmdChains() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chains",
		Short: "List the chains in the registry.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CHAIN\tRELAY\tPARA ID\tVERSION\tCAPABILITIES")
			for _, chain := range registry.Chains() {
				cfg, err := registry.GetChain(chain)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%v\n",
					cfg.Chain, cfg.Relay, cfg.ParaID, cfg.DefaultVersion(), cfg.Capabilities)
			}
			return w.Flush()
		},
	}
	return cmd
}

func CmdAssets() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets <chain>",
		Short: "List the assets registered on a chain.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveChain(args[0])
			if err != nil {
				return err
			}
			assets, err := registry.GetAssets(cfg.Chain)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tASSET ID\tDECIMALS\tNATIVE")
			for _, asset := range assets {
				fmt.Fprintf(w, "%s\t%s\t%d\t%v\n",
					asset.Symbol, asset.AssetID, asset.Decimals, asset.IsNative())
			}
			return w.Flush()
		},
	}
	return cmd
}
