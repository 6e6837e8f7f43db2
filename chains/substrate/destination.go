// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/connection"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/events"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

var ErrNonceRequired = errors.New("destination subscription requires a deposit nonce")

type EventSource interface {
	SubscribeEvents() (connection.EventSubscription, error)
	Close()
}

type EventSourceDialer func(ctx context.Context, endpoint string) (EventSource, error)

// Destination follows ChainBridge pallet votes and proposal outcomes for one deposit
type Destination struct {
	source      EventSource
	sub         connection.EventSubscription
	sink        adaptor.Sink
	homeChainID uint8
	nonce       uint64
	ss58Format  uint8
	voteCount   int
	log         zerolog.Logger

	live      atomic.Bool
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewDestination subscribes to System.Events of the destination chain. The
// subscription lives until Close.
func NewDestination(ctx context.Context, params adaptor.DestinationParams, dial EventSourceDialer) (*Destination, error) {
	if params.Nonce == nil {
		return nil, ErrNonceRequired
	}
	config, err := NewSubstrateConfig(params.Destination)
	if err != nil {
		return nil, err
	}

	source, err := dial(ctx, config.Endpoint)
	if err != nil {
		return nil, err
	}
	sub, err := source.SubscribeEvents()
	if err != nil {
		source.Close()
		return nil, fmt.Errorf("failed subscribing to %s events: %w", config.Name, err)
	}

	d := &Destination{
		source:      source,
		sub:         sub,
		sink:        params.Sink,
		homeChainID: params.HomeChainID,
		nonce:       *params.Nonce,
		ss58Format:  config.SS58Format,
		voteCount:   params.VoteCount,
		quit:        make(chan struct{}),
		done:        make(chan struct{}),
		log: log.With().
			Str("component", "substrate-destination").
			Uint8("chain", config.ChainID).
			Uint64("nonce", *params.Nonce).
			Logger(),
	}
	d.live.Store(true)
	go d.watch()
	return d, nil
}

func (d *Destination) Live() bool {
	return d.live.Load()
}

func (d *Destination) Close() {
	d.closeOnce.Do(func() {
		close(d.quit)
		d.sub.Unsubscribe()
		<-d.done
		d.source.Close()
		d.live.Store(false)
	})
}

func (d *Destination) watch() {
	defer close(d.done)

	for {
		select {
		case <-d.quit:
			return
		case err := <-d.sub.Err():
			d.live.Store(false)
			if err != nil {
				d.log.Error().Err(err).Msg("Event subscription failed")
				d.sink.OnError(err)
			}
			return
		case block := <-d.sub.Events():
			d.handleEvents(block)
		}
	}
}

func (d *Destination) matches(sourceID types.U8, depositNonce types.U64) bool {
	return uint8(sourceID) == d.homeChainID && uint64(depositNonce) == d.nonce
}

type palletEventKind int

const (
	voteFor palletEventKind = iota
	voteAgainst
	proposalApproved
	proposalSucceeded
	proposalRejected
)

// palletEvent is a ChainBridge event of the followed deposit
type palletEvent struct {
	kind  palletEventKind
	phase types.Phase
	voter types.AccountID
}

// phaseOrder ranks initialization before extrinsics and extrinsics before finalization
func phaseOrder(phase types.Phase) int64 {
	switch {
	case phase.IsApplyExtrinsic:
		return int64(phase.AsApplyExtrinsic)
	case phase.IsFinalization:
		return math.MaxInt64
	default:
		return -1
	}
}

// depositEvents collects the events of the followed deposit in the order the
// chain emitted them. Events of the same phase keep their decoding order.
func (d *Destination) depositEvents(evts *events.Events) []palletEvent {
	var matched []palletEvent
	for _, v := range evts.ChainBridge_VoteFor {
		if d.matches(v.SourceId, v.DepositNonce) {
			matched = append(matched, palletEvent{kind: voteFor, phase: v.Phase, voter: v.Voter})
		}
	}
	for _, v := range evts.ChainBridge_VoteAgainst {
		if d.matches(v.SourceId, v.DepositNonce) {
			matched = append(matched, palletEvent{kind: voteAgainst, phase: v.Phase, voter: v.Voter})
		}
	}
	proposals := []struct {
		kind    palletEventKind
		records []events.EventProposal
	}{
		{proposalApproved, evts.ChainBridge_ProposalApproved},
		{proposalSucceeded, evts.ChainBridge_ProposalSucceeded},
		{proposalRejected, evts.ChainBridge_ProposalRejected},
		{proposalRejected, evts.ChainBridge_ProposalFailed},
	}
	for _, p := range proposals {
		for _, e := range p.records {
			if d.matches(e.SourceId, e.DepositNonce) {
				matched = append(matched, palletEvent{kind: p.kind, phase: e.Phase})
			}
		}
	}

	slices.SortStableFunc(matched, func(a, b palletEvent) int {
		return cmp.Compare(phaseOrder(a.phase), phaseOrder(b.phase))
	})
	return matched
}

func (d *Destination) handleEvents(block connection.BlockEvents) {
	if block.Events == nil {
		return
	}

	for _, e := range d.depositEvents(block.Events) {
		switch e.kind {
		case voteFor:
			d.voteCount++
			d.sink.OnVoteCountChanged(d.voteCount)
			d.sink.OnMessage(transfer.NewVoteMessage(d.voter(e.voter), transfer.Confirmed))
		case voteAgainst:
			d.sink.OnMessage(transfer.NewVoteMessage(d.voter(e.voter), transfer.Rejected))
		case proposalApproved:
			d.sink.OnMessage(transfer.NewTextMessage("Proposal has passed. Executing..."))
		case proposalSucceeded:
			d.finish(block.BlockHash, transfer.StatusCompleted)
		case proposalRejected:
			d.finish(block.BlockHash, transfer.StatusAborted)
		}
	}
}

func (d *Destination) finish(blockHash types.Hash, status transfer.TransactionStatus) {
	d.log.Info().Str("block", blockHash.Hex()).Str("status", status.String()).Msg("Proposal finalized")
	d.sink.OnTransferHashChanged(blockHash.Hex())
	d.sink.OnStatusChanged(status)
}

func (d *Destination) voter(account types.AccountID) string {
	address, err := EncodeAddress(account[:], d.ss58Format)
	if err != nil {
		return hexutil.Encode(account[:])
	}
	return address
}
