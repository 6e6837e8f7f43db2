// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package pallet

import (
	"context"
	"math/big"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/client"
)

const DefaultDepositMethod = "Example.transfer_native"

type Client interface {
	Address() string
	FreeBalance() (*big.Int, error)
	SubmitAndWatch(ctx context.Context, method string, args ...interface{}) (*client.Inclusion, error)
	Close()
}

// Pallet exposes the bridge transfer call of a ChainBridge enabled runtime
type Pallet struct {
	client        Client
	depositMethod string
}

func NewPallet(client Client, depositMethod string) *Pallet {
	if depositMethod == "" {
		depositMethod = DefaultDepositMethod
	}
	return &Pallet{
		client:        client,
		depositMethod: depositMethod,
	}
}

func (p *Pallet) Address() string {
	return p.client.Address()
}

func (p *Pallet) FreeBalance() (*big.Int, error) {
	return p.client.FreeBalance()
}

// TransferNative locks amount of native currency for transfer to recipient on destinationChainID
func (p *Pallet) TransferNative(
	ctx context.Context,
	amount *big.Int,
	recipient []byte,
	destinationChainID uint8,
) (*client.Inclusion, error) {
	log.Debug().
		Str("amount", amount.String()).
		Uint8("destination", destinationChainID).
		Msgf("Calling %s", p.depositMethod)
	return p.client.SubmitAndWatch(
		ctx,
		p.depositMethod,
		types.NewU128(*amount),
		types.NewBytes(recipient),
		types.NewU8(destinationChainID),
	)
}

func (p *Pallet) Close() {
	p.client.Close()
}
