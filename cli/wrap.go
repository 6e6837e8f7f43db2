// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/app"
	"github.com/ChainSafe/chainbridge-transfer/logger"
)

var (
	wrapCMD = &cobra.Command{
		Use:    "wrap",
		Short:  "Wrap native currency into the chain's bridgeable wrapped token",
		PreRun: logger.CommandLogger,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrapper(cmd, func(ctx context.Context, w adaptor.Wrapper, amount *big.Int) (string, error) {
				return w.Wrap(ctx, adaptor.TransactOptions{Value: amount})
			})
		},
	}
	unwrapCMD = &cobra.Command{
		Use:    "unwrap",
		Short:  "Unwrap the chain's wrapped token back into native currency",
		PreRun: logger.CommandLogger,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrapper(cmd, func(ctx context.Context, w adaptor.Wrapper, amount *big.Int) (string, error) {
				return w.Unwrap(ctx, amount, adaptor.TransactOptions{})
			})
		},
	}
)

func init() {
	for _, c := range []*cobra.Command{wrapCMD, unwrapCMD} {
		c.Flags().Uint8("chain", 0, "chain id")
		c.Flags().String("amount", "", "amount in whole units")
		_ = c.MarkFlagRequired("chain")
		_ = c.MarkFlagRequired("amount")
	}
}

type wrapperCall func(ctx context.Context, w adaptor.Wrapper, amount *big.Int) (string, error)

func runWrapper(cmd *cobra.Command, call wrapperCall) error {
	chainID, err := cmd.Flags().GetUint8("chain")
	if err != nil {
		return err
	}
	rawAmount, err := cmd.Flags().GetString("amount")
	if err != nil {
		return err
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", rawAmount, err)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.NewApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close(context.Background())

	o := a.Orchestrator
	if err := o.SelectHomeChain(chainID); err != nil {
		return err
	}
	if err := o.Connect(ctx); err != nil {
		return err
	}
	wrapper, err := o.Wrapper()
	if err != nil {
		return err
	}
	asset, err := o.WrapAsset()
	if err != nil {
		return err
	}

	txHash, err := call(ctx, wrapper, amount.Shift(int32(asset.Decimals)).BigInt())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", cmd.Name(), asset.Symbol, txHash)
	return nil
}
