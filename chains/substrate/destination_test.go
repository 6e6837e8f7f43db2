// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	mock_adaptor "github.com/ChainSafe/chainbridge-transfer/adaptor/mock"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/connection"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/events"
	mock_substrate "github.com/ChainSafe/chainbridge-transfer/chains/substrate/mock"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

type eventSubscription struct {
	events chan connection.BlockEvents
	errs   chan error
	once   sync.Once
	closed chan struct{}
}

func newEventSubscription() *eventSubscription {
	return &eventSubscription{
		events: make(chan connection.BlockEvents),
		errs:   make(chan error, 1),
		closed: make(chan struct{}),
	}
}

func (e *eventSubscription) Events() <-chan connection.BlockEvents { return e.events }
func (e *eventSubscription) Err() <-chan error                     { return e.errs }
func (e *eventSubscription) Unsubscribe()                          { e.once.Do(func() { close(e.closed) }) }

type DestinationTestSuite struct {
	suite.Suite
	source *mock_substrate.MockEventSource
	sink   *mock_adaptor.MockSink
	sub    *eventSubscription
	params adaptor.DestinationParams
	calls  chan struct{}
	voter  types.AccountID
}

func TestRunDestinationTestSuite(t *testing.T) {
	suite.Run(t, new(DestinationTestSuite))
}

func (s *DestinationTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.source = mock_substrate.NewMockEventSource(ctrl)
	s.sink = mock_adaptor.NewMockSink(ctrl)
	s.sub = newEventSubscription()
	s.calls = make(chan struct{}, 10)
	copy(s.voter[:], alicePublicKey)
	nonce := uint64(5)
	s.params = adaptor.DestinationParams{
		Destination: &chain.ChainDescriptor{
			ChainID:  3,
			Name:     "substrate",
			Type:     chain.SubstrateType,
			Endpoint: "ws://localhost:9944",
		},
		HomeChainID: 1,
		Nonce:       &nonce,
		Sink:        s.sink,
	}
}

func (s *DestinationTestSuite) dial(ctx context.Context, endpoint string) (substrate.EventSource, error) {
	return s.source, nil
}

func (s *DestinationTestSuite) subscribe() *substrate.Destination {
	s.source.EXPECT().SubscribeEvents().Return(s.sub, nil)
	d, err := substrate.NewDestination(context.Background(), s.params, s.dial)
	s.Nil(err)
	return d
}

func (s *DestinationTestSuite) close(d *substrate.Destination) {
	s.source.EXPECT().Close()
	d.Close()
}

func (s *DestinationTestSuite) signal(args ...interface{}) {
	s.calls <- struct{}{}
}

func (s *DestinationTestSuite) waitCalls(n int) {
	for i := 0; i < n; i++ {
		select {
		case <-s.calls:
		case <-time.After(time.Second):
			s.FailNow("sink was not called")
		}
	}
}

func (s *DestinationTestSuite) Test_NewDestination_NonceRequired() {
	s.params.Nonce = nil

	_, err := substrate.NewDestination(context.Background(), s.params, s.dial)

	s.ErrorIs(err, substrate.ErrNonceRequired)
}

func (s *DestinationTestSuite) Test_NewDestination_SubscribeFails() {
	s.source.EXPECT().SubscribeEvents().Return(nil, errors.New("method not found"))
	s.source.EXPECT().Close()

	_, err := substrate.NewDestination(context.Background(), s.params, s.dial)

	s.NotNil(err)
}

func (s *DestinationTestSuite) Test_Votes_FilteredByDeposit() {
	d := s.subscribe()
	gomock.InOrder(
		s.sink.EXPECT().OnVoteCountChanged(1).Do(s.signal),
		s.sink.EXPECT().OnMessage(transfer.NewVoteMessage(aliceAddress, transfer.Confirmed)).Do(s.signal),
		s.sink.EXPECT().OnMessage(transfer.NewVoteMessage(aliceAddress, transfer.Rejected)).Do(s.signal),
	)

	s.sub.events <- connection.BlockEvents{Events: &events.Events{
		ChainBridge_VoteFor: []events.EventVote{
			{SourceId: 1, DepositNonce: 5, Voter: s.voter},
			{SourceId: 1, DepositNonce: 6, Voter: s.voter},
			{SourceId: 2, DepositNonce: 5, Voter: s.voter},
		},
		ChainBridge_VoteAgainst: []events.EventVote{
			{SourceId: 1, DepositNonce: 5, Voter: s.voter},
		},
	}}
	s.waitCalls(3)

	s.close(d)
}

func extrinsic(index uint32) types.Phase {
	return types.Phase{IsApplyExtrinsic: true, AsApplyExtrinsic: index}
}

func (s *DestinationTestSuite) Test_Votes_DeliveredInExtrinsicOrder() {
	d := s.subscribe()
	var bob types.AccountID
	bob[0] = 0x8e
	gomock.InOrder(
		s.sink.EXPECT().OnMessage(transfer.NewVoteMessage(aliceAddress, transfer.Rejected)).Do(s.signal),
		s.sink.EXPECT().OnVoteCountChanged(1).Do(s.signal),
		s.sink.EXPECT().OnMessage(gomock.Any()).Do(func(m transfer.TransitMessage) {
			s.Equal(transfer.Confirmed, m.Vote.Signed)
			s.NotEqual(aliceAddress, m.Vote.Address)
			s.signal()
		}),
	)

	s.sub.events <- connection.BlockEvents{Events: &events.Events{
		ChainBridge_VoteFor:     []events.EventVote{{Phase: extrinsic(2), SourceId: 1, DepositNonce: 5, Voter: bob}},
		ChainBridge_VoteAgainst: []events.EventVote{{Phase: extrinsic(1), SourceId: 1, DepositNonce: 5, Voter: s.voter}},
	}}
	s.waitCalls(3)

	s.close(d)
}

func (s *DestinationTestSuite) Test_ProposalEvents_FollowVotesOfTheSameBlock() {
	d := s.subscribe()
	blockHash := types.NewHash([]byte{9})
	gomock.InOrder(
		s.sink.EXPECT().OnVoteCountChanged(1).Do(s.signal),
		s.sink.EXPECT().OnMessage(transfer.NewVoteMessage(aliceAddress, transfer.Confirmed)).Do(s.signal),
		s.sink.EXPECT().OnMessage(transfer.NewTextMessage("Proposal has passed. Executing...")).Do(s.signal),
		s.sink.EXPECT().OnTransferHashChanged(blockHash.Hex()).Do(s.signal),
		s.sink.EXPECT().OnStatusChanged(transfer.StatusCompleted).Do(s.signal),
	)

	s.sub.events <- connection.BlockEvents{BlockHash: blockHash, Events: &events.Events{
		ChainBridge_ProposalSucceeded: []events.EventProposal{{Phase: types.Phase{IsFinalization: true}, SourceId: 1, DepositNonce: 5}},
		ChainBridge_ProposalApproved:  []events.EventProposal{{Phase: extrinsic(4), SourceId: 1, DepositNonce: 5}},
		ChainBridge_VoteFor:           []events.EventVote{{Phase: extrinsic(4), SourceId: 1, DepositNonce: 5, Voter: s.voter}},
	}}
	s.waitCalls(5)

	s.close(d)
}

func (s *DestinationTestSuite) Test_ProposalSucceeded_Completes() {
	d := s.subscribe()
	blockHash := types.NewHash([]byte{7})
	gomock.InOrder(
		s.sink.EXPECT().OnMessage(transfer.NewTextMessage("Proposal has passed. Executing...")).Do(s.signal),
		s.sink.EXPECT().OnTransferHashChanged(blockHash.Hex()).Do(s.signal),
		s.sink.EXPECT().OnStatusChanged(transfer.StatusCompleted).Do(s.signal),
	)

	s.sub.events <- connection.BlockEvents{BlockHash: blockHash, Events: &events.Events{
		ChainBridge_ProposalApproved:  []events.EventProposal{{SourceId: 1, DepositNonce: 5}},
		ChainBridge_ProposalSucceeded: []events.EventProposal{{SourceId: 1, DepositNonce: 5}},
	}}
	s.waitCalls(3)

	s.close(d)
}

func (s *DestinationTestSuite) Test_ProposalRejected_Aborts() {
	d := s.subscribe()
	gomock.InOrder(
		s.sink.EXPECT().OnTransferHashChanged(gomock.Any()).Do(s.signal),
		s.sink.EXPECT().OnStatusChanged(transfer.StatusAborted).Do(s.signal),
	)

	s.sub.events <- connection.BlockEvents{Events: &events.Events{
		ChainBridge_ProposalRejected: []events.EventProposal{{SourceId: 1, DepositNonce: 5}},
		ChainBridge_ProposalFailed:   []events.EventProposal{{SourceId: 1, DepositNonce: 9}},
	}}
	s.waitCalls(2)

	s.close(d)
}

func (s *DestinationTestSuite) Test_SubscriptionError_ReportedToSink() {
	d := s.subscribe()
	s.sink.EXPECT().OnError(gomock.Any()).Do(s.signal)

	s.sub.errs <- errors.New("connection reset")
	s.waitCalls(1)

	s.Eventually(func() bool { return !d.Live() }, time.Second, 10*time.Millisecond)
	s.close(d)
}

func (s *DestinationTestSuite) Test_Close_Idempotent() {
	d := s.subscribe()
	s.True(d.Live())

	s.close(d)
	d.Close()

	s.False(d.Live())
}
