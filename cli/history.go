// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ChainSafe/chainbridge-transfer/app"
	"github.com/ChainSafe/chainbridge-transfer/config"
	"github.com/ChainSafe/chainbridge-transfer/logger"
	"github.com/ChainSafe/chainbridge-transfer/lvldb"
	"github.com/ChainSafe/chainbridge-transfer/store"
)

var historyCMD = &cobra.Command{
	Use:    "history",
	Short:  "Show recorded transfers between two chains",
	PreRun: logger.CommandLogger,
	RunE:   runHistory,
}

func init() {
	historyCMD.Flags().Uint8("from", 0, "home chain id")
	historyCMD.Flags().Uint8("to", 0, "destination chain id")
	historyCMD.Flags().Uint64("nonce", 0, "deposit nonce of a single transfer")
	_ = historyCMD.MarkFlagRequired("from")
	_ = historyCMD.MarkFlagRequired("to")
}

func runHistory(cmd *cobra.Command, args []string) error {
	from, _ := cmd.Flags().GetUint8("from")
	to, _ := cmd.Flags().GetUint8("to")

	configuration, err := app.LoadConfig()
	if err != nil {
		return err
	}
	path := configuration.BridgeConfig.HistoryPath
	if override := viper.GetString(config.HistoryFlagName); override != "" {
		path = override
	}
	db, err := lvldb.NewLvlDB(path)
	if err != nil {
		return err
	}
	transferStore := store.NewTransferStore(db)

	var records []*store.TransferRecord
	if cmd.Flags().Changed("nonce") {
		nonce, _ := cmd.Flags().GetUint64("nonce")
		record, err := transferStore.Transfer(from, to, nonce)
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("no transfer %d from chain %d to chain %d", nonce, from, to)
		}
		records = append(records, record)
	} else {
		records, err = transferStore.Transfers(from, to)
		if err != nil {
			return err
		}
	}

	printRecords(cmd.OutOrStdout(), records)
	return nil
}

func printRecords(out io.Writer, records []*store.TransferRecord) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Nonce", "Status", "Amount", "Asset", "Votes", "Deposit tx", "Execution tx", "Error"})
	for _, r := range records {
		table.Append([]string{
			strconv.FormatUint(r.DepositNonce, 10),
			string(r.Status),
			r.Amount,
			r.Asset,
			fmt.Sprintf("%d/%d", r.VoteCount, r.Threshold),
			r.DepositTxHash,
			r.TransferTxHash,
			r.Error,
		})
	}
	table.Render()
}
