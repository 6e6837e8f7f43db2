// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/client"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/events"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

var (
	ErrExtrinsicFailed      = errors.New("extrinsic failed")
	ErrTransferEventMissing = errors.New("block has no FungibleTransfer event for the extrinsic")
)

type BridgePallet interface {
	Address() string
	FreeBalance() (*big.Int, error)
	TransferNative(ctx context.Context, amount *big.Int, recipient []byte, destinationChainID uint8) (*client.Inclusion, error)
	Close()
}

type Dialer func(ctx context.Context, config *SubstrateConfig) (BridgePallet, error)

// HomeAdaptor deposits native currency from a substrate chain running the ChainBridge pallet
type HomeAdaptor struct {
	descriptor *chain.ChainDescriptor
	config     *SubstrateConfig
	dial       Dialer
	log        zerolog.Logger

	mu     sync.RWMutex
	pallet BridgePallet
}

func NewHomeAdaptor(descriptor *chain.ChainDescriptor, dial Dialer) (*HomeAdaptor, error) {
	config, err := NewSubstrateConfig(descriptor)
	if err != nil {
		return nil, err
	}
	return &HomeAdaptor{
		descriptor: descriptor,
		config:     config,
		dial:       dial,
		log:        log.With().Str("component", "substrate-home").Uint8("chain", descriptor.ChainID).Logger(),
	}, nil
}

func (h *HomeAdaptor) Connect(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pallet != nil {
		return nil
	}
	p, err := h.dial(ctx, h.config)
	if err != nil {
		return fmt.Errorf("failed connecting to %s: %w", h.config.Name, err)
	}
	h.pallet = p
	h.log.Info().Str("address", p.Address()).Msg("Connected")
	return nil
}

func (h *HomeAdaptor) Connected() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.pallet != nil
}

func (h *HomeAdaptor) Address() string {
	p, err := h.connection()
	if err != nil {
		return ""
	}
	return p.Address()
}

func (h *HomeAdaptor) NativeBalance(ctx context.Context) (*big.Int, error) {
	p, err := h.connection()
	if err != nil {
		return nil, err
	}
	return p.FreeBalance()
}

// TokenBalance is the free native balance; substrate assets are bridged from native currency
func (h *HomeAdaptor) TokenBalance(ctx context.Context, asset *chain.AssetDescriptor) (*big.Int, error) {
	return h.NativeBalance(ctx)
}

// BridgeFee is zero; the pallet charges only transaction fees
func (h *HomeAdaptor) BridgeFee(ctx context.Context) (*big.Int, error) {
	if _, err := h.connection(); err != nil {
		return nil, err
	}
	return big.NewInt(0), nil
}

func (h *HomeAdaptor) Deposit(ctx context.Context, req adaptor.DepositRequest) (*adaptor.DepositResult, error) {
	p, err := h.connection()
	if err != nil {
		return nil, err
	}

	incl, err := p.TransferNative(ctx, req.BaseUnits(), req.RecipientData, req.DestinationChainID)
	if err != nil {
		return nil, h.submissionError("", err)
	}
	txHash := incl.ExtrinsicHash.Hex()

	for _, failed := range incl.Events.System_ExtrinsicFailed {
		if events.AppliedIn(failed.Phase, incl.ExtrinsicIndex) {
			return nil, h.submissionError(txHash, ErrExtrinsicFailed)
		}
	}
	for _, transfer := range incl.Events.ChainBridge_FungibleTransfer {
		if !events.AppliedIn(transfer.Phase, incl.ExtrinsicIndex) {
			continue
		}
		h.log.Info().
			Str("extrinsic", txHash).
			Str("block", incl.BlockHash.Hex()).
			Uint64("nonce", uint64(transfer.DepositNonce)).
			Msg("Deposit included")
		return &adaptor.DepositResult{
			TxHash: txHash,
			Nonce:  uint64(transfer.DepositNonce),
		}, nil
	}
	return nil, h.submissionError(txHash, ErrTransferEventMissing)
}

// Wrapper is always nil; substrate chains bridge native currency directly
func (h *HomeAdaptor) Wrapper() adaptor.Wrapper {
	return nil
}

func (h *HomeAdaptor) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pallet == nil {
		return
	}
	h.pallet.Close()
	h.pallet = nil
}

func (h *HomeAdaptor) submissionError(txHash string, err error) error {
	return &adaptor.ChainSubmissionError{
		ChainID: h.descriptor.ChainID,
		TxHash:  txHash,
		Err:     err,
	}
}

func (h *HomeAdaptor) connection() (BridgePallet, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.pallet == nil {
		return nil, adaptor.ErrNotConnected
	}
	return h.pallet, nil
}
