// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package adaptor

import (
	"context"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/ChainSafe/chainbridge-transfer/config/chain"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

// DepositRequest carries validated deposit parameters to a home adaptor
type DepositRequest struct {
	Amount    decimal.Decimal
	Recipient string
	// RecipientData is the recipient decoded for the destination chain format
	RecipientData      []byte
	Asset              *chain.AssetDescriptor
	DestinationChainID uint8
}

// BaseUnits scales the amount by the asset decimals
func (r DepositRequest) BaseUnits() *big.Int {
	return r.Amount.Shift(int32(r.Asset.Decimals)).BigInt()
}

// DepositResult describes a mined deposit
type DepositResult struct {
	TxHash string
	Nonce  uint64
}

type TransactOptions struct {
	Value    *big.Int
	GasLimit uint64
	GasPrice *big.Int
}

// Wrapper converts the native asset of a chain into its bridgeable wrapped form and back
type Wrapper interface {
	Wrap(ctx context.Context, opts TransactOptions) (string, error)
	Unwrap(ctx context.Context, amount *big.Int, opts TransactOptions) (string, error)
}

// HomeAdaptor is the chain a user deposits from
type HomeAdaptor interface {
	// Connect establishes provider connectivity. It is idempotent.
	Connect(ctx context.Context) error
	Connected() bool
	Address() string
	NativeBalance(ctx context.Context) (*big.Int, error)
	TokenBalance(ctx context.Context, asset *chain.AssetDescriptor) (*big.Int, error)
	BridgeFee(ctx context.Context) (*big.Int, error)
	// Deposit submits the deposit and waits until it is mined. Reverted
	// or unsigned transactions fail with *ChainSubmissionError.
	Deposit(ctx context.Context, req DepositRequest) (*DepositResult, error)
	// Wrapper returns nil when the chain does not support native wrapping
	Wrapper() Wrapper
	Close()
}

// Sink receives destination chain observations. Implementations must be safe
// for use from the adaptor goroutine.
type Sink interface {
	OnVoteCountChanged(count int)
	OnMessage(message transfer.TransitMessage)
	OnStatusChanged(status transfer.TransactionStatus)
	OnTransferHashChanged(hash string)
	// OnError reports that the destination chain can no longer be observed
	OnError(err error)
}

// DestinationParams binds a destination adaptor to one deposit
type DestinationParams struct {
	Destination *chain.ChainDescriptor
	HomeChainID uint8
	Nonce       *uint64
	VoteCount   int
	Sink        Sink
}

// DestinationAdaptor observes one deposit on the destination chain. The
// subscription is established by its constructor and released by Close.
type DestinationAdaptor interface {
	Close()
	Live() bool
}

type HomeFactory func(descriptor *chain.ChainDescriptor) (HomeAdaptor, error)

type DestinationFactory func(ctx context.Context, params DestinationParams) (DestinationAdaptor, error)

// AddressDecoder validates a recipient in the chain's native format and
// returns its raw bytes
type AddressDecoder func(address string) ([]byte, error)

// ChainModule groups the adaptor constructors of one chain technology
type ChainModule struct {
	NewHome        HomeFactory
	NewDestination DestinationFactory
	DecodeAddress  AddressDecoder
}
