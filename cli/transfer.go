// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ChainSafe/chainbridge-transfer/app"
	"github.com/ChainSafe/chainbridge-transfer/logger"
	"github.com/ChainSafe/chainbridge-transfer/orchestrator"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

var transferCMD = &cobra.Command{
	Use:    "transfer",
	Short:  "Deposit an asset on the home chain and follow it to the destination chain",
	PreRun: logger.CommandLogger,
	RunE:   runTransfer,
}

var (
	fromChain    uint8
	toChain      uint8
	amountFlag   string
	recipient    string
	assetAddress string
)

func init() {
	transferCMD.Flags().Uint8Var(&fromChain, "from", 0, "home chain id")
	transferCMD.Flags().Uint8Var(&toChain, "to", 0, "destination chain id")
	transferCMD.Flags().StringVar(&amountFlag, "amount", "", "amount in whole units, e.g. 1.5")
	transferCMD.Flags().StringVar(&recipient, "recipient", "", "recipient address in the destination chain format")
	transferCMD.Flags().StringVar(&assetAddress, "asset", "", "asset address on the home chain")
	for _, f := range []string{"from", "to", "amount", "recipient", "asset"} {
		_ = transferCMD.MarkFlagRequired(f)
	}
}

func runTransfer(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(amountFlag)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", amountFlag, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	o := a.Orchestrator
	if err := o.SelectHomeChain(fromChain); err != nil {
		return err
	}
	if err := o.Connect(ctx); err != nil {
		return err
	}
	if err := o.SelectDestinationChain(toChain); err != nil {
		return err
	}
	log.Info().Str("from", o.HomeAdaptor().Address()).Msg("Connected to home chain")

	if err := o.Deposit(ctx, amount, recipient, assetAddress); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	snapshot, err := follow(ctx, o, out)
	if err != nil {
		return err
	}
	printLedger(out, snapshot.Ledger)
	fmt.Fprintf(out, "Transfer %s: status %s, votes %d/%d\n", snapshot.ID, snapshot.Status, snapshot.VoteCount, snapshot.Threshold)
	if snapshot.TransferTxHash != "" {
		fmt.Fprintf(out, "Destination execution tx: %s\n", snapshot.TransferTxHash)
	}
	if snapshot.Status == transfer.StatusAborted {
		return fmt.Errorf("transfer aborted: %v", snapshot.LastError)
	}
	return nil
}

// follow prints ledger entries as the destination chain reports them until
// the transfer reaches a terminal status
func follow(ctx context.Context, o *orchestrator.Orchestrator, out io.Writer) (transfer.Snapshot, error) {
	printed := 0
	for {
		changed := o.Changed()
		snapshot := o.Snapshot()
		if printed > len(snapshot.Ledger) {
			printed = 0
		}
		for _, m := range snapshot.Ledger[printed:] {
			fmt.Fprintf(out, "[%d/%d] %s\n", snapshot.VoteCount, snapshot.Threshold, m)
		}
		printed = len(snapshot.Ledger)

		switch {
		case snapshot.Status.Terminal():
			return snapshot, nil
		case snapshot.Status == transfer.StatusIdle:
			return o.Wait(ctx)
		}

		select {
		case <-ctx.Done():
			return snapshot, ctx.Err()
		case <-changed:
		}
	}
}

func printLedger(out io.Writer, ledger []transfer.TransitMessage) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Message"})
	for i, m := range ledger {
		table.Append([]string{strconv.Itoa(i + 1), m.String()})
	}
	table.Render()
}
