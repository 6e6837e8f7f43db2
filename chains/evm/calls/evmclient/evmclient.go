// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evmclient

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
)

// EVMClient is an ethclient connection bound to one signing key
type EVMClient struct {
	*ethclient.Client
	key      *ecdsa.PrivateKey
	from     common.Address
	chainID  *big.Int
	gasLimit uint64
	gasPrice *big.Int
}

// NewEVMClient dials endpoint and binds privateKey (hex, optional 0x prefix).
// A nil gasPrice lets the node suggest one per transaction.
func NewEVMClient(ctx context.Context, endpoint string, privateKey string, gasLimit uint64, gasPrice *big.Int) (*EVMClient, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid signing key: %w", err)
	}

	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, err
	}

	c := &EVMClient{
		Client:   client,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		chainID:  chainID,
		gasLimit: gasLimit,
		gasPrice: gasPrice,
	}
	log.Debug().Str("endpoint", endpoint).Str("from", c.from.Hex()).Msgf("Connected to network %s", chainID)
	return c, nil
}

func (c *EVMClient) From() common.Address {
	return c.from
}

func (c *EVMClient) NetworkID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

func (c *EVMClient) NativeBalance(ctx context.Context) (*big.Int, error) {
	return c.Client.BalanceAt(ctx, c.from, nil)
}

// TransactOpts builds signing options carrying value and the configured gas settings
func (c *EVMClient) TransactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	opts.Value = value
	opts.GasLimit = c.gasLimit
	if c.gasPrice != nil {
		opts.GasPrice = new(big.Int).Set(c.gasPrice)
	}
	return opts, nil
}

func (c *EVMClient) WaitMined(ctx context.Context, tx *ethTypes.Transaction) (*ethTypes.Receipt, error) {
	return bind.WaitMined(ctx, c.Client, tx)
}
