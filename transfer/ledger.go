// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

type Verdict string

const (
	Confirmed Verdict = "Confirmed"
	Rejected  Verdict = "Rejected"
)

// Vote is one relayer's observed position on the in-flight deposit
type Vote struct {
	Address string
	Signed  Verdict
}

// TransitMessage holds either a plain status text or a relayer vote
type TransitMessage struct {
	Text string
	Vote *Vote
}

func NewTextMessage(text string) TransitMessage {
	return TransitMessage{Text: text}
}

func NewVoteMessage(address string, signed Verdict) TransitMessage {
	return TransitMessage{Vote: &Vote{Address: address, Signed: signed}}
}

func (m TransitMessage) IsVote() bool {
	return m.Vote != nil
}

func (m TransitMessage) String() string {
	if m.Vote != nil {
		return m.Vote.Address + ": " + string(m.Vote.Signed)
	}
	return m.Text
}

// Ledger is the append-only log of transit messages for the active deposit.
// Entries keep delivery order and are only removed by Reset.
// Ledger is not safe for concurrent use; it is owned by a single Machine.
type Ledger struct {
	messages []TransitMessage
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends message and returns the resulting ordered sequence
func (l *Ledger) Record(message TransitMessage) []TransitMessage {
	l.messages = append(l.messages, message)
	return l.Messages()
}

// Messages returns a copy of recorded messages in delivery order
func (l *Ledger) Messages() []TransitMessage {
	messages := make([]TransitMessage, len(l.messages))
	copy(messages, l.messages)
	return messages
}

func (l *Ledger) Reset() {
	l.messages = nil
}

func (l *Ledger) Len() int {
	return len(l.messages)
}

// ConfirmedVotes counts Confirmed vote entries. A relayer that appears
// twice is counted twice.
func (l *Ledger) ConfirmedVotes() int {
	return l.count(Confirmed)
}

// RejectedVotes counts Rejected vote entries. They are informational
// and never abort a transfer.
func (l *Ledger) RejectedVotes() int {
	return l.count(Rejected)
}

func (l *Ledger) count(verdict Verdict) int {
	n := 0
	for _, m := range l.messages {
		if m.Vote != nil && m.Vote.Signed == verdict {
			n++
		}
	}
	return n
}
