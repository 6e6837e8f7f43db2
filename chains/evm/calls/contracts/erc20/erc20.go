// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package erc20

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/consts"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/contracts"
)

type ERC20Contract struct {
	contracts.Contract
}

func NewERC20Contract(erc20ContractAddress common.Address, backend bind.ContractBackend) *ERC20Contract {
	return &ERC20Contract{
		Contract: contracts.NewContract(erc20ContractAddress, consts.ERC20ABI, backend),
	}
}

func (c *ERC20Contract) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	return c.CallBigInt(ctx, "balanceOf", account)
}

func (c *ERC20Contract) Allowance(ctx context.Context, owner common.Address, spender common.Address) (*big.Int, error) {
	return c.CallBigInt(ctx, "allowance", owner, spender)
}

func (c *ERC20Contract) Approve(opts *bind.TransactOpts, spender common.Address, amount *big.Int) (*ethTypes.Transaction, error) {
	return c.ExecuteTransaction(opts, "approve", spender, amount)
}
