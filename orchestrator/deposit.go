// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

// Deposit submits amount of the home chain asset at assetAddress to recipient
// on the destination chain. It returns once the deposit is mined and the
// destination adaptor observes it, leaving the transfer In Transit.
//
// Any failure returns the transfer to idle with the reason kept in the
// snapshot. A deposit overtaken by Reset returns nil and leaves no trace.
func (o *Orchestrator) Deposit(ctx context.Context, amount decimal.Decimal, recipient string, assetAddress string) error {
	o.mu.Lock()
	if !o.running {
		o.mu.Unlock()
		return ErrNotStarted
	}
	if o.homeAdaptor == nil {
		o.mu.Unlock()
		return ErrHomeChainNotSelected
	}
	if o.destination == nil {
		o.mu.Unlock()
		return ErrDestinationNotSelected
	}
	home, destination := o.home, o.destination
	homeAdaptor := o.homeAdaptor
	module := o.modules[destination.Type]

	req, err := newDepositRequest(home, destination, module, amount, recipient, assetAddress)
	if err != nil {
		o.mu.Unlock()
		return err
	}
	generation, err := o.machine.Begin(amount, req.Asset)
	if err != nil {
		o.mu.Unlock()
		return err
	}
	o.depositStarted = time.Now()
	o.notify()
	o.mu.Unlock()

	log := o.log.With().
		Uint8("homeChain", home.ChainID).
		Uint8("destinationChain", destination.ChainID).
		Str("asset", req.Asset.Symbol).
		Str("amount", amount.String()).
		Logger()
	log.Info().Msg("Depositing")

	result, err := homeAdaptor.Deposit(ctx, req)
	if err != nil {
		o.metrics.TrackDepositError(home.ChainID, destination.ChainID)
		return o.fail(generation, err)
	}
	log.Info().Str("tx", result.TxHash).Uint64("nonce", result.Nonce).Msg("Deposit mined")
	o.metrics.TrackDeposit(home.ChainID, destination.ChainID)

	if !o.current(generation) {
		log.Debug().Uint64("nonce", result.Nonce).Msg("Dropped deposit result after reset")
		return nil
	}

	nonce := result.Nonce
	s := newSink(generation, o.events, o.done)
	dest, err := module.NewDestination(ctx, adaptor.DestinationParams{
		Destination: destination,
		HomeChainID: home.ChainID,
		Nonce:       &nonce,
		Sink:        s,
	})
	if err != nil {
		s.cancel()
		return o.fail(generation, &adaptor.AdaptorConstructionError{ChainID: destination.ChainID, Err: err})
	}

	o.mu.Lock()
	if err := o.machine.Submitted(generation, nonce, result.TxHash); err != nil {
		o.mu.Unlock()
		s.cancel()
		dest.Close()
		if errors.Is(err, ErrStaleCallback) {
			log.Debug().Uint64("nonce", nonce).Msg("Dropped destination adaptor after reset")
			return nil
		}
		return err
	}
	o.destAdaptor = dest
	o.record()
	o.notify()
	o.mu.Unlock()

	s.activate()
	log.Info().Uint64("nonce", nonce).Msg("Transfer in transit")
	return nil
}

func (o *Orchestrator) current(generation uint64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.machine.Generation() == generation
}

// fail returns the transfer to idle unless it was reset meanwhile
func (o *Orchestrator) fail(generation uint64, err error) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if e := o.machine.Fail(generation, err); e != nil {
		if errors.Is(e, ErrStaleCallback) {
			o.log.Debug().Err(err).Msg("Dropped deposit failure after reset")
			return nil
		}
		return e
	}
	o.log.Error().Err(err).Msg("Deposit failed")
	o.notify()
	return err
}

func newDepositRequest(
	home, destination *chain.ChainDescriptor,
	module adaptor.ChainModule,
	amount decimal.Decimal,
	recipient string,
	assetAddress string,
) (adaptor.DepositRequest, error) {
	asset, ok := home.Asset(assetAddress)
	if !ok {
		return adaptor.DepositRequest{}, fmt.Errorf("%w: asset %s not configured on chain %d", ErrInvalidDepositParameters, assetAddress, home.ChainID)
	}
	if asset.DisableTransfer {
		return adaptor.DepositRequest{}, fmt.Errorf("%w: transfers of %s are disabled", ErrInvalidDepositParameters, asset.Symbol)
	}
	if !amount.IsPositive() {
		return adaptor.DepositRequest{}, fmt.Errorf("%w: amount must be positive", ErrInvalidDepositParameters)
	}
	if scaled := amount.Shift(int32(asset.Decimals)); !scaled.Equal(scaled.Truncate(0)) {
		return adaptor.DepositRequest{}, fmt.Errorf("%w: %s has more than %d decimals", ErrInvalidDepositParameters, amount, asset.Decimals)
	}
	if module.DecodeAddress == nil {
		return adaptor.DepositRequest{}, fmt.Errorf("%w: no address format for chain %d", ErrInvalidDepositParameters, destination.ChainID)
	}
	recipientData, err := module.DecodeAddress(recipient)
	if err != nil {
		return adaptor.DepositRequest{}, fmt.Errorf("%w: recipient %s: %v", ErrInvalidDepositParameters, recipient, err)
	}

	return adaptor.DepositRequest{
		Amount:             amount,
		Recipient:          recipient,
		RecipientData:      recipientData,
		Asset:              asset,
		DestinationChainID: destination.ChainID,
	}, nil
}
