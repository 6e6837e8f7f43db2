// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"

	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

// EVMConfig is the EVM view of a chain descriptor
type EVMConfig struct {
	ChainID      uint8
	Name         string
	Endpoint     string
	Key          string
	Bridge       common.Address
	Erc20Handler common.Address
	GasLimit     uint64
	// GasPrice is nil when the node should suggest one
	GasPrice *big.Int
}

// NewEVMConfig validates the EVM specific fields of descriptor
func NewEVMConfig(descriptor *chain.ChainDescriptor) (*EVMConfig, error) {
	if descriptor.Type != chain.EVMType {
		return nil, fmt.Errorf("chain %d is of type %s, not %s", descriptor.ChainID, descriptor.Type, chain.EVMType)
	}
	if !common.IsHexAddress(descriptor.BridgeAddress) {
		return nil, fmt.Errorf("invalid bridge address %q for chain %d", descriptor.BridgeAddress, descriptor.ChainID)
	}
	if !common.IsHexAddress(descriptor.HandlerAddress) {
		return nil, fmt.Errorf("invalid erc20Handler address %q for chain %d", descriptor.HandlerAddress, descriptor.ChainID)
	}
	for _, asset := range descriptor.Assets {
		if !common.IsHexAddress(asset.Address) {
			return nil, fmt.Errorf("invalid token address %q for chain %d", asset.Address, descriptor.ChainID)
		}
	}

	config := &EVMConfig{
		ChainID:      descriptor.ChainID,
		Name:         descriptor.Name,
		Endpoint:     descriptor.Endpoint,
		Key:          descriptor.Key,
		Bridge:       common.HexToAddress(descriptor.BridgeAddress),
		Erc20Handler: common.HexToAddress(descriptor.HandlerAddress),
		GasLimit:     descriptor.GasLimit,
	}
	if descriptor.DefaultGasPrice != 0 {
		config.GasPrice = new(big.Int).Mul(new(big.Int).SetUint64(descriptor.DefaultGasPrice), big.NewInt(params.GWei))
	}
	return config, nil
}
