// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/events"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

var ErrNonceRequired = errors.New("destination subscription requires a deposit nonce")

// Destination follows relayer votes and the proposal lifecycle of one deposit
// on an EVM destination bridge
type Destination struct {
	client     LogClient
	sub        ethereum.Subscription
	sink       adaptor.Sink
	parser     *events.Parser
	chainName  string
	voteCount  int
	newBackOff func() backoff.BackOff
	log        zerolog.Logger

	live      atomic.Bool
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once
}

type DestinationOption func(*Destination)

// WithLookupBackOff sets the retry policy of vote transaction lookups
func WithLookupBackOff(newBackOff func() backoff.BackOff) DestinationOption {
	return func(d *Destination) {
		d.newBackOff = newBackOff
	}
}

func defaultLookupBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = 30 * time.Second
	return b
}

// NewDestination subscribes to proposal logs for params.Nonce. The
// subscription lives until Close.
func NewDestination(ctx context.Context, params adaptor.DestinationParams, dial LogDialer, opts ...DestinationOption) (*Destination, error) {
	if params.Nonce == nil {
		return nil, ErrNonceRequired
	}
	if !common.IsHexAddress(params.Destination.BridgeAddress) {
		return nil, fmt.Errorf("invalid bridge address %q", params.Destination.BridgeAddress)
	}

	client, err := dial(ctx, params.Destination.Endpoint)
	if err != nil {
		return nil, err
	}

	query := events.ProposalFilter(common.HexToAddress(params.Destination.BridgeAddress), params.HomeChainID, *params.Nonce)
	logs := make(chan ethTypes.Log)
	sub, err := client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		client.Close()
		return nil, err
	}

	subCtx, cancel := context.WithCancel(context.Background())
	d := &Destination{
		client:     client,
		sub:        sub,
		sink:       params.Sink,
		parser:     events.NewParser(),
		chainName:  params.Destination.Name,
		voteCount:  params.VoteCount,
		newBackOff: defaultLookupBackOff,
		cancel:     cancel,
		done:       make(chan struct{}),
		log: log.With().
			Str("component", "evm-destination").
			Uint8("chain", params.Destination.ChainID).
			Uint64("nonce", *params.Nonce).
			Logger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.live.Store(true)
	go d.watch(subCtx, logs)
	return d, nil
}

func (d *Destination) Live() bool {
	return d.live.Load()
}

// Close stops the subscription and waits for in-flight handling to finish
func (d *Destination) Close() {
	d.closeOnce.Do(func() {
		d.cancel()
		d.sub.Unsubscribe()
		<-d.done
		d.client.Close()
		d.live.Store(false)
	})
}

func (d *Destination) watch(ctx context.Context, logs chan ethTypes.Log) {
	defer close(d.done)

	for {
		select {
		case <-ctx.Done():
			return
		case err := <-d.sub.Err():
			d.live.Store(false)
			if err != nil && ctx.Err() == nil {
				d.log.Error().Err(err).Msg("Proposal subscription failed")
				d.sink.OnError(err)
			}
			return
		case l := <-logs:
			err := d.handleLog(ctx, l)
			if err == nil || ctx.Err() != nil {
				continue
			}
			// every proposal log reaches the sink or ends the subscription
			d.live.Store(false)
			d.log.Error().Err(err).Str("txHash", l.TxHash.Hex()).Msg("Failed handling proposal log")
			d.sink.OnError(err)
			return
		}
	}
}

func (d *Destination) handleLog(ctx context.Context, l ethTypes.Log) error {
	if l.Removed || len(l.Topics) == 0 {
		return nil
	}

	switch l.Topics[0] {
	case events.ProposalVoteSig.GetTopic():
		return d.handleVote(ctx, l)
	case events.ProposalEventSig.GetTopic():
		return d.handleProposal(l)
	}
	return nil
}

// handleVote reports the voting relayer. A vote counts only when its
// transaction succeeded.
func (d *Destination) handleVote(ctx context.Context, l ethTypes.Log) error {
	if _, err := d.parser.ParseProposalVote(l); err != nil {
		return err
	}

	tx, receipt, err := d.lookupVote(ctx, l.TxHash)
	if err != nil {
		return fmt.Errorf("failed fetching vote transaction %s: %w", l.TxHash.Hex(), err)
	}
	voter, err := ethTypes.Sender(ethTypes.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return err
	}

	verdict := transfer.Rejected
	if receipt.Status == ethTypes.ReceiptStatusSuccessful {
		verdict = transfer.Confirmed
		d.voteCount++
		d.sink.OnVoteCountChanged(d.voteCount)
	}
	d.log.Debug().Str("relayer", voter.Hex()).Str("verdict", string(verdict)).Msg("Relayer voted")
	d.sink.OnMessage(transfer.NewVoteMessage(voter.Hex(), verdict))
	return nil
}

// lookupVote fetches the vote transaction and its receipt, retrying until
// the back off gives up or ctx is done
func (d *Destination) lookupVote(ctx context.Context, hash common.Hash) (*ethTypes.Transaction, *ethTypes.Receipt, error) {
	var tx *ethTypes.Transaction
	var receipt *ethTypes.Receipt
	err := backoff.RetryNotify(
		func() error {
			var err error
			if tx == nil {
				if tx, _, err = d.client.TransactionByHash(ctx, hash); err != nil {
					return err
				}
			}
			receipt, err = d.client.TransactionReceipt(ctx, hash)
			return err
		},
		backoff.WithContext(d.newBackOff(), ctx),
		func(err error, wait time.Duration) {
			d.log.Warn().Err(err).Str("txHash", hash.Hex()).Dur("retryIn", wait).Msg("Vote lookup failed")
		},
	)
	return tx, receipt, err
}

func (d *Destination) handleProposal(l ethTypes.Log) error {
	e, err := d.parser.ParseProposalEvent(l)
	if err != nil {
		return err
	}
	d.log.Debug().Str("status", e.ProposalStatus().String()).Msg("Proposal status changed")

	switch e.ProposalStatus() {
	case events.ProposalStatusActive:
		d.sink.OnMessage(transfer.NewTextMessage(fmt.Sprintf("Proposal created on %s", d.chainName)))
	case events.ProposalStatusPassed:
		d.sink.OnMessage(transfer.NewTextMessage("Proposal has passed. Executing..."))
	case events.ProposalStatusExecuted:
		d.sink.OnTransferHashChanged(l.TxHash.Hex())
		d.sink.OnStatusChanged(transfer.StatusCompleted)
	case events.ProposalStatusCancelled:
		d.sink.OnTransferHashChanged(l.TxHash.Hex())
		d.sink.OnStatusChanged(transfer.StatusAborted)
	}
	return nil
}
