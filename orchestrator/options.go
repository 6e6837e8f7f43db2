// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package orchestrator

import (
	"time"

	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

// Recorder persists transfers once a nonce has been assigned
type Recorder interface {
	Record(snapshot transfer.Snapshot) error
}

type Metrics interface {
	TrackDeposit(homeChainID, destinationChainID uint8)
	TrackDepositError(homeChainID, destinationChainID uint8)
	TrackVote(destinationChainID uint8, verdict transfer.Verdict)
	TrackOutcome(homeChainID, destinationChainID uint8, status transfer.TransactionStatus, latency time.Duration)
}

type Option func(*Orchestrator)

func WithRecorder(recorder Recorder) Option {
	return func(o *Orchestrator) {
		o.recorder = recorder
	}
}

func WithMetrics(metrics Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = metrics
	}
}

// WithEventBuffer sets how many destination chain events may be queued
// before adaptors block
func WithEventBuffer(size int) Option {
	return func(o *Orchestrator) {
		o.events = make(chan sinkEvent, size)
	}
}

type noopMetrics struct{}

func (noopMetrics) TrackDeposit(uint8, uint8)                                            {}
func (noopMetrics) TrackDepositError(uint8, uint8)                                       {}
func (noopMetrics) TrackVote(uint8, transfer.Verdict)                                    {}
func (noopMetrics) TrackOutcome(uint8, uint8, transfer.TransactionStatus, time.Duration) {}
