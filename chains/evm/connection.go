// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/contracts/bridge"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/contracts/erc20"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/contracts/weth"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/evmclient"
)

type Client interface {
	From() common.Address
	NativeBalance(ctx context.Context) (*big.Int, error)
	TransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error)
	WaitMined(ctx context.Context, tx *ethTypes.Transaction) (*ethTypes.Receipt, error)
	Close()
}

type BridgeContract interface {
	Fee(ctx context.Context) (*big.Int, error)
	Deposit(opts *bind.TransactOpts, destinationChainID uint8, resourceID [32]byte, data []byte) (*ethTypes.Transaction, error)
}

type TokenContract interface {
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner common.Address, spender common.Address) (*big.Int, error)
	Approve(opts *bind.TransactOpts, spender common.Address, amount *big.Int) (*ethTypes.Transaction, error)
}

type WrapperContract interface {
	Deposit(opts *bind.TransactOpts) (*ethTypes.Transaction, error)
	Withdraw(opts *bind.TransactOpts, amount *big.Int) (*ethTypes.Transaction, error)
}

// Connection is a dialed home chain with its contract bindings
type Connection struct {
	Client  Client
	Bridge  BridgeContract
	Token   func(address common.Address) TokenContract
	Wrapper func(address common.Address) WrapperContract
}

type Dialer func(ctx context.Context, config *EVMConfig) (*Connection, error)

// Dial connects to config.Endpoint with the configured signing key
func Dial(ctx context.Context, config *EVMConfig) (*Connection, error) {
	client, err := evmclient.NewEVMClient(ctx, config.Endpoint, config.Key, config.GasLimit, config.GasPrice)
	if err != nil {
		return nil, err
	}
	return &Connection{
		Client: client,
		Bridge: bridge.NewBridgeContract(config.Bridge, client),
		Token: func(address common.Address) TokenContract {
			return erc20.NewERC20Contract(address, client)
		},
		Wrapper: func(address common.Address) WrapperContract {
			return weth.NewWETHContract(address, client)
		},
	}, nil
}

// LogClient is the read only connection a destination adaptor observes through
type LogClient interface {
	SubscribeFilterLogs(ctx context.Context, q ethereum.FilterQuery, ch chan<- ethTypes.Log) (ethereum.Subscription, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (*ethTypes.Transaction, bool, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethTypes.Receipt, error)
	Close()
}

type LogDialer func(ctx context.Context, endpoint string) (LogClient, error)

func DialLogs(ctx context.Context, endpoint string) (LogClient, error) {
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return client, nil
}
