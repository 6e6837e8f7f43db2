// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

// DecodeAddress accepts 0x prefixed or bare 20 byte hex addresses
func DecodeAddress(address string) ([]byte, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("%q is not a valid EVM address", address)
	}
	return common.HexToAddress(address).Bytes(), nil
}

// Module wires the EVM adaptors to live RPC connections
func Module() adaptor.ChainModule {
	return adaptor.ChainModule{
		NewHome: func(descriptor *chain.ChainDescriptor) (adaptor.HomeAdaptor, error) {
			home, err := NewHomeAdaptor(descriptor, Dial)
			if err != nil {
				return nil, err
			}
			return home, nil
		},
		NewDestination: func(ctx context.Context, params adaptor.DestinationParams) (adaptor.DestinationAdaptor, error) {
			destination, err := NewDestination(ctx, params, DialLogs)
			if err != nil {
				return nil, err
			}
			return destination, nil
		},
		DecodeAddress: DecodeAddress,
	}
}
