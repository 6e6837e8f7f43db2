// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
)

// Wrapper converts native currency to the configured WETH style token and back
type Wrapper struct {
	chainID  uint8
	client   Client
	contract WrapperContract
}

func NewWrapper(chainID uint8, client Client, contract WrapperContract) *Wrapper {
	return &Wrapper{
		chainID:  chainID,
		client:   client,
		contract: contract,
	}
}

// Wrap deposits opts.Value of native currency into the wrapper contract
func (w *Wrapper) Wrap(ctx context.Context, opts adaptor.TransactOptions) (string, error) {
	txOpts, err := w.client.TransactOpts(ctx, opts.Value)
	if err != nil {
		return "", err
	}
	overrideGas(txOpts, opts)

	tx, err := w.contract.Deposit(txOpts)
	if err != nil {
		return "", err
	}
	return w.wait(ctx, tx, "Wrapped native currency")
}

func (w *Wrapper) Unwrap(ctx context.Context, amount *big.Int, opts adaptor.TransactOptions) (string, error) {
	txOpts, err := w.client.TransactOpts(ctx, nil)
	if err != nil {
		return "", err
	}
	overrideGas(txOpts, opts)

	tx, err := w.contract.Withdraw(txOpts, amount)
	if err != nil {
		return "", err
	}
	return w.wait(ctx, tx, "Unwrapped native currency")
}

func overrideGas(txOpts *bind.TransactOpts, opts adaptor.TransactOptions) {
	if opts.GasLimit != 0 {
		txOpts.GasLimit = opts.GasLimit
	}
	if opts.GasPrice != nil {
		txOpts.GasPrice = opts.GasPrice
	}
}

func (w *Wrapper) wait(ctx context.Context, tx *ethTypes.Transaction, msg string) (string, error) {
	receipt, err := w.client.WaitMined(ctx, tx)
	if err != nil {
		return "", err
	}
	if receipt.Status != ethTypes.ReceiptStatusSuccessful {
		return "", &adaptor.ChainSubmissionError{ChainID: w.chainID, TxHash: tx.Hash().Hex(), Err: ErrTransactionReverted}
	}
	log.Info().Uint8("chain", w.chainID).Str("txHash", tx.Hash().Hex()).Msg(msg)
	return tx.Hash().Hex(), nil
}
