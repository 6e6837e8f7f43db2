// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connection

import (
	"fmt"
	"sync"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"

	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/events"
)

// BlockEvents are the decoded System.Events of one block
type BlockEvents struct {
	BlockHash types.Hash
	Events    *events.Events
}

type EventSubscription interface {
	Events() <-chan BlockEvents
	Err() <-chan error
	Unsubscribe()
}

type storageSubscription interface {
	Chan() <-chan types.StorageChangeSet
	Err() <-chan error
	Unsubscribe()
}

type eventDecoder func(raw types.StorageDataRaw) (*events.Events, error)

type eventSubscription struct {
	sub    storageSubscription
	decode eventDecoder
	events chan BlockEvents
	errs   chan error
	quit   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

// SubscribeEvents streams System.Events of every new block
func (c *Connection) SubscribeEvents() (EventSubscription, error) {
	meta := c.GetMetadata()
	key, err := types.CreateStorageKey(&meta, "System", "Events", nil)
	if err != nil {
		return nil, err
	}
	sub, err := c.RPC.State.SubscribeStorageRaw([]types.StorageKey{key})
	if err != nil {
		return nil, err
	}

	return newEventSubscription(sub, c.decodeEvents), nil
}

func (c *Connection) decodeEvents(raw types.StorageDataRaw) (*events.Events, error) {
	meta := c.GetMetadata()
	evts := &events.Events{}
	if err := types.EventRecordsRaw(raw).DecodeEventRecords(&meta, evts); err != nil {
		return nil, err
	}
	return evts, nil
}

func newEventSubscription(sub storageSubscription, decode eventDecoder) *eventSubscription {
	s := &eventSubscription{
		sub:    sub,
		decode: decode,
		events: make(chan BlockEvents),
		errs:   make(chan error, 1),
		quit:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// run ends the subscription on the first block it cannot decode
func (s *eventSubscription) run() {
	defer s.wg.Done()

	for {
		select {
		case <-s.quit:
			return
		case err := <-s.sub.Err():
			if err != nil {
				s.errs <- err
			}
			return
		case set := <-s.sub.Chan():
			for _, change := range set.Changes {
				if !change.HasStorageData {
					continue
				}
				evts, err := s.decode(change.StorageData)
				if err != nil {
					s.errs <- fmt.Errorf("failed decoding events of block %s: %w", set.Block.Hex(), err)
					return
				}
				select {
				case s.events <- BlockEvents{BlockHash: set.Block, Events: evts}:
				case <-s.quit:
					return
				}
			}
		}
	}
}

func (s *eventSubscription) Events() <-chan BlockEvents {
	return s.events
}

func (s *eventSubscription) Err() <-chan error {
	return s.errs
}

func (s *eventSubscription) Unsubscribe() {
	s.once.Do(func() {
		close(s.quit)
		s.sub.Unsubscribe()
		s.wg.Wait()
	})
}
