// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package orchestrator

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

const defaultEventBuffer = 64

// WalletType narrows the home chain candidates to one chain technology
type WalletType string

const (
	WalletUnset  WalletType = "unset"
	WalletSelect WalletType = "select"
)

// ChainWallet returns the wallet type that only offers chains of chainType
func ChainWallet(chainType chain.ChainType) WalletType {
	return WalletType(chainType)
}

// Orchestrator binds a home and a destination chain adaptor and drives one
// transfer at a time through its lifecycle.
//
// Every state mutation happens under mu. Destination chain observations are
// queued by adaptors and applied in order by the event loop started with Start.
type Orchestrator struct {
	registry *chain.Registry
	modules  map[chain.ChainType]adaptor.ChainModule
	recorder Recorder
	metrics  Metrics
	log      zerolog.Logger

	events  chan sinkEvent
	done    chan struct{}
	cancel  context.CancelFunc
	closing sync.WaitGroup

	mu             sync.Mutex
	running        bool
	machine        *transfer.Machine
	walletType     WalletType
	homeChains     []*chain.ChainDescriptor
	home           *chain.ChainDescriptor
	homeAdaptor    adaptor.HomeAdaptor
	destinations   []*chain.ChainDescriptor
	destination    *chain.ChainDescriptor
	destAdaptor    adaptor.DestinationAdaptor
	depositStarted time.Time
	changed        chan struct{}
}

func NewOrchestrator(registry *chain.Registry, modules map[chain.ChainType]adaptor.ChainModule, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		registry:   registry,
		modules:    modules,
		metrics:    noopMetrics{},
		log:        log.With().Str("component", "orchestrator").Logger(),
		events:     make(chan sinkEvent, defaultEventBuffer),
		done:       make(chan struct{}),
		machine:    transfer.NewMachine(),
		walletType: WalletUnset,
		changed:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Start runs the event loop until ctx is cancelled or Close is called
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.running || o.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.running = true
	go o.run(ctx)
}

func (o *Orchestrator) run(ctx context.Context) {
	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
		close(o.done)
	}()

	o.log.Debug().Msg("Event loop started")
	for {
		select {
		case <-ctx.Done():
			o.log.Debug().Msg("Event loop stopped")
			return
		case ev := <-o.events:
			o.apply(ev)
		}
	}
}

// Close stops the event loop and releases every adaptor
func (o *Orchestrator) Close() {
	o.mu.Lock()
	cancel := o.cancel
	o.machine.Reset()
	dest := o.detachDestination()
	home := o.homeAdaptor
	o.homeAdaptor = nil
	o.home = nil
	o.destinations = nil
	o.destination = nil
	o.notify()
	o.mu.Unlock()

	if cancel != nil {
		cancel()
		<-o.done
	}
	if dest != nil {
		dest.Close()
	}
	if home != nil {
		home.Close()
	}
	o.closing.Wait()
}

// Reset returns the transfer to idle from any state. The destination
// adaptor is released and callbacks it still delivers are ignored. The
// destination selection is cleared only when more than two chains are
// configured.
func (o *Orchestrator) Reset() {
	o.mu.Lock()
	o.machine.Reset()
	dest := o.detachDestination()
	if o.registry.Len() > 2 {
		o.destination = nil
	}
	o.depositStarted = time.Time{}
	generation := o.machine.Generation()
	o.notify()
	o.mu.Unlock()

	o.log.Debug().Uint64("generation", generation).Msg("Transfer reset")
	// closing under mu would deadlock with an adaptor blocked on the event queue
	if dest != nil {
		dest.Close()
	}
}

// Snapshot returns a read-only view of the transfer and the selection
func (o *Orchestrator) Snapshot() transfer.Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshot()
}

// Changed returns a channel that is closed on the next state change
func (o *Orchestrator) Changed() <-chan struct{} {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.changed
}

// Wait blocks until the transfer completes or aborts. A transfer that fell
// back to idle returns its failure reason, or ErrNoTransfer.
func (o *Orchestrator) Wait(ctx context.Context) (transfer.Snapshot, error) {
	for {
		o.mu.Lock()
		s := o.snapshot()
		changed := o.changed
		o.mu.Unlock()

		switch {
		case s.Status.Terminal():
			return s, nil
		case s.Status == transfer.StatusIdle:
			if s.LastError != nil {
				return s, s.LastError
			}
			return s, ErrNoTransfer
		}

		select {
		case <-ctx.Done():
			return s, ctx.Err()
		case <-changed:
		}
	}
}

// IsReady reports whether a deposit can be submitted right now
func (o *Orchestrator) IsReady() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.homeAdaptor != nil &&
		o.homeAdaptor.Connected() &&
		o.destination != nil &&
		o.machine.Status() == transfer.StatusIdle
}

func (o *Orchestrator) snapshot() transfer.Snapshot {
	state := o.machine.State()
	s := transfer.Snapshot{
		ID:             state.ID,
		Status:         state.Status,
		Nonce:          state.Nonce,
		VoteCount:      state.VoteCount,
		DepositAmount:  state.DepositAmount,
		Asset:          state.SelectedAsset,
		DepositTxHash:  state.DepositTxHash,
		TransferTxHash: state.TransferTxHash,
		Ledger:         o.machine.Messages(),
		LastError:      state.LastError,
	}
	if o.home != nil {
		id := o.home.ChainID
		s.HomeChainID = &id
	}
	if o.destination != nil {
		id := o.destination.ChainID
		s.DestinationChainID = &id
		s.Threshold = o.destination.RelayerThreshold
	}
	return s
}

func (o *Orchestrator) notify() {
	close(o.changed)
	o.changed = make(chan struct{})
}

// detachDestination must be called with mu held. The caller closes the
// returned adaptor after releasing mu.
func (o *Orchestrator) detachDestination() adaptor.DestinationAdaptor {
	dest := o.destAdaptor
	o.destAdaptor = nil
	return dest
}

func (o *Orchestrator) record() {
	if o.recorder == nil {
		return
	}
	s := o.snapshot()
	if s.Nonce == nil {
		return
	}
	if err := o.recorder.Record(s); err != nil {
		o.log.Warn().Err(err).Uint64("nonce", *s.Nonce).Msg("Failed recording transfer")
	}
}

// apply runs on the event loop
func (o *Orchestrator) apply(ev sinkEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()

	var err error
	switch ev.kind {
	case voteCountChanged:
		err = o.machine.SetVoteCount(ev.generation, ev.count)
	case messageReceived:
		err = o.machine.RecordMessage(ev.generation, ev.message)
		if err == nil && ev.message.IsVote() && o.destination != nil {
			o.metrics.TrackVote(o.destination.ChainID, ev.message.Vote.Signed)
		}
	case statusChanged:
		err = o.machine.SetStatus(ev.generation, ev.status)
	case transferHashChanged:
		err = o.machine.SetTransferTxHash(ev.generation, ev.hash)
	case subscriptionFailed:
		o.log.Error().Err(ev.err).Msg("Destination chain subscription failed")
		err = o.machine.Abort(ev.generation, ev.err)
	}
	if errors.Is(err, ErrStaleCallback) {
		o.log.Debug().Str("event", ev.kind.String()).Err(err).Msg("Dropped stale callback")
		return
	}
	if err != nil {
		o.log.Warn().Str("event", ev.kind.String()).Err(err).Msg("Ignored destination chain event")
		return
	}

	status := o.machine.Status()
	if status.Terminal() && o.destAdaptor != nil {
		o.finish(status)
	}
	o.record()
	o.notify()
}

// finish must be called with mu held
func (o *Orchestrator) finish(status transfer.TransactionStatus) {
	o.log.Info().Str("status", status.String()).Msg("Transfer finished")
	if o.home != nil && o.destination != nil {
		o.metrics.TrackOutcome(o.home.ChainID, o.destination.ChainID, status, time.Since(o.depositStarted))
	}

	// Close waits for the adaptor goroutine which may be blocked on this loop
	dest := o.detachDestination()
	o.closing.Add(1)
	go func() {
		defer o.closing.Done()
		dest.Close()
	}()
}
