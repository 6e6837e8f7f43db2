// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package weth

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/consts"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/contracts"
)

// WETHContract wraps native currency into an ERC20 token
type WETHContract struct {
	contracts.Contract
}

func NewWETHContract(wethContractAddress common.Address, backend bind.ContractBackend) *WETHContract {
	return &WETHContract{
		Contract: contracts.NewContract(wethContractAddress, consts.WETHABI, backend),
	}
}

// Deposit wraps opts.Value of native currency
func (c *WETHContract) Deposit(opts *bind.TransactOpts) (*ethTypes.Transaction, error) {
	return c.ExecuteTransaction(opts, "deposit")
}

func (c *WETHContract) Withdraw(opts *bind.TransactOpts, amount *big.Int) (*ethTypes.Transaction, error) {
	return c.ExecuteTransaction(opts, "withdraw", amount)
}

func (c *WETHContract) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	return c.CallBigInt(ctx, "balanceOf", account)
}
