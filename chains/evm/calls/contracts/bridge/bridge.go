// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/consts"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/contracts"
)

type BridgeContract struct {
	contracts.Contract
}

func NewBridgeContract(bridgeContractAddress common.Address, backend bind.ContractBackend) *BridgeContract {
	return &BridgeContract{
		Contract: contracts.NewContract(bridgeContractAddress, consts.BridgeABI, backend),
	}
}

// Fee is the flat bridge fee paid as transaction value on deposit
func (c *BridgeContract) Fee(ctx context.Context) (*big.Int, error) {
	return c.CallBigInt(ctx, "_fee")
}

func (c *BridgeContract) RelayerThreshold(ctx context.Context) (*big.Int, error) {
	return c.CallBigInt(ctx, "_relayerThreshold")
}

func (c *BridgeContract) Deposit(
	opts *bind.TransactOpts,
	destinationChainID uint8,
	resourceID [32]byte,
	data []byte,
) (*ethTypes.Transaction, error) {
	return c.ExecuteTransaction(opts, "deposit", destinationChainID, resourceID, data)
}
