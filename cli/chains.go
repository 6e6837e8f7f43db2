// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ChainSafe/chainbridge-transfer/app"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
	"github.com/ChainSafe/chainbridge-transfer/logger"
)

var chainsCMD = &cobra.Command{
	Use:    "chains",
	Short:  "List configured chains and their assets",
	PreRun: logger.CommandLogger,
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration, err := app.LoadConfig()
		if err != nil {
			return err
		}
		registry, err := configuration.Registry()
		if err != nil {
			return err
		}
		printChains(cmd.OutOrStdout(), registry.Chains())
		return nil
	},
}

func printChains(out io.Writer, chains []*chain.ChainDescriptor) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Name", "Type", "Threshold", "Asset", "Address", "Decimals"})
	for _, c := range chains {
		row := []string{strconv.Itoa(int(c.ChainID)), c.Name, string(c.Type), strconv.Itoa(c.RelayerThreshold)}
		if len(c.Assets) == 0 {
			table.Append(append(row, "-", "-", "-"))
			continue
		}
		for _, a := range c.Assets {
			symbol := a.Symbol
			switch {
			case a.DisableTransfer:
				symbol += " (disabled)"
			case a.IsNativeWrappedToken:
				symbol += fmt.Sprintf(" (wrapped %s)", c.NativeTokenSymbol)
			}
			table.Append(append(row, symbol, a.Address, strconv.Itoa(int(a.Decimals))))
		}
	}
	table.Render()
}
