// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package orchestrator

import (
	"sync"

	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

type eventKind int

const (
	voteCountChanged eventKind = iota
	messageReceived
	statusChanged
	transferHashChanged
	subscriptionFailed
)

func (k eventKind) String() string {
	switch k {
	case voteCountChanged:
		return "voteCount"
	case messageReceived:
		return "message"
	case statusChanged:
		return "status"
	case transferHashChanged:
		return "transferHash"
	case subscriptionFailed:
		return "subscriptionError"
	default:
		return "unknown"
	}
}

// sinkEvent is one destination chain observation tagged with the
// generation of the transfer it was issued for
type sinkEvent struct {
	generation uint64
	kind       eventKind
	count      int
	message    transfer.TransitMessage
	status     transfer.TransactionStatus
	hash       string
	err        error
}

// sink forwards adaptor callbacks onto the orchestrator event loop. Events
// are held back until the deposit is recorded as In Transit, and dropped
// once the sink is cancelled or the loop stops.
type sink struct {
	generation uint64
	events     chan<- sinkEvent
	stopped    <-chan struct{}

	open       chan struct{}
	cancelled  chan struct{}
	openOnce   sync.Once
	cancelOnce sync.Once
}

func newSink(generation uint64, events chan<- sinkEvent, stopped <-chan struct{}) *sink {
	return &sink{
		generation: generation,
		events:     events,
		stopped:    stopped,
		open:       make(chan struct{}),
		cancelled:  make(chan struct{}),
	}
}

func (s *sink) activate() {
	s.openOnce.Do(func() { close(s.open) })
}

func (s *sink) cancel() {
	s.cancelOnce.Do(func() { close(s.cancelled) })
}

func (s *sink) OnVoteCountChanged(count int) {
	s.emit(sinkEvent{kind: voteCountChanged, count: count})
}

func (s *sink) OnMessage(message transfer.TransitMessage) {
	s.emit(sinkEvent{kind: messageReceived, message: message})
}

func (s *sink) OnStatusChanged(status transfer.TransactionStatus) {
	s.emit(sinkEvent{kind: statusChanged, status: status})
}

func (s *sink) OnTransferHashChanged(hash string) {
	s.emit(sinkEvent{kind: transferHashChanged, hash: hash})
}

func (s *sink) OnError(err error) {
	s.emit(sinkEvent{kind: subscriptionFailed, err: err})
}

func (s *sink) emit(ev sinkEvent) {
	select {
	case <-s.open:
	case <-s.cancelled:
		return
	case <-s.stopped:
		return
	}

	ev.generation = s.generation
	select {
	case s.events <- ev:
	case <-s.stopped:
	}
}
