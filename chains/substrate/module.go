// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"context"
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/client"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/connection"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/pallet"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

// Dial connects to config.Endpoint and signs with config.Key, a secret seed or mnemonic
func Dial(ctx context.Context, config *SubstrateConfig) (BridgePallet, error) {
	key, err := signature.KeyringPairFromSecret(config.Key, config.SS58Format)
	if err != nil {
		return nil, fmt.Errorf("invalid signing key: %w", err)
	}
	conn, err := connection.NewSubstrateConnection(config.Endpoint)
	if err != nil {
		return nil, err
	}
	return pallet.NewPallet(client.NewSubstrateClient(conn, key), config.DepositMethod), nil
}

func DialEvents(ctx context.Context, endpoint string) (EventSource, error) {
	conn, err := connection.NewSubstrateConnection(endpoint)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Module wires the substrate adaptors to live RPC connections
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
			destination, err := NewDestination(ctx, params, DialEvents)
			if err != nil {
				return nil, err
			}
			return destination, nil
		},
		DecodeAddress: DecodeAddress,
	}
}
