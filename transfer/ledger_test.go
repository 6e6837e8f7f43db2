// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

type LedgerTestSuite struct {
	suite.Suite
	ledger *transfer.Ledger
}

func TestRunLedgerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerTestSuite))
}

func (s *LedgerTestSuite) SetupTest() {
	s.ledger = transfer.NewLedger()
}

func (s *LedgerTestSuite) Test_Record_KeepsDeliveryOrder() {
	s.ledger.Record(transfer.NewVoteMessage("relayerA", transfer.Confirmed))
	s.ledger.Record(transfer.NewTextMessage("Proposal has passed. Executing..."))
	messages := s.ledger.Record(transfer.NewVoteMessage("relayerB", transfer.Rejected))

	s.Equal([]transfer.TransitMessage{
		transfer.NewVoteMessage("relayerA", transfer.Confirmed),
		transfer.NewTextMessage("Proposal has passed. Executing..."),
		transfer.NewVoteMessage("relayerB", transfer.Rejected),
	}, messages)
}

func (s *LedgerTestSuite) Test_Record_ReturnsCopy() {
	messages := s.ledger.Record(transfer.NewTextMessage("first"))
	messages[0] = transfer.NewTextMessage("changed")

	s.Equal("first", s.ledger.Messages()[0].Text)
}

func (s *LedgerTestSuite) Test_Tally_CountsOccurrences() {
	s.ledger.Record(transfer.NewVoteMessage("relayerA", transfer.Confirmed))
	s.ledger.Record(transfer.NewVoteMessage("relayerA", transfer.Confirmed))
	s.ledger.Record(transfer.NewVoteMessage("relayerB", transfer.Rejected))
	s.ledger.Record(transfer.NewTextMessage("Proposal created on Avalanche"))

	s.Equal(2, s.ledger.ConfirmedVotes())
	s.Equal(1, s.ledger.RejectedVotes())
	s.Equal(4, s.ledger.Len())
}

func (s *LedgerTestSuite) Test_Reset_ClearsEntries() {
	s.ledger.Record(transfer.NewVoteMessage("relayerA", transfer.Confirmed))

	s.ledger.Reset()

	s.Equal(0, s.ledger.Len())
	s.Empty(s.ledger.Messages())
	s.Equal(0, s.ledger.ConfirmedVotes())
}

func (s *LedgerTestSuite) Test_TransitMessage_String() {
	s.Equal("relayerA: Confirmed", transfer.NewVoteMessage("relayerA", transfer.Confirmed).String())
	s.Equal("text", transfer.NewTextMessage("text").String())
}
