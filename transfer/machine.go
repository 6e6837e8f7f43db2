// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

// State is the mutable session of one in-flight (or idle) transfer
type State struct {
	ID             string
	Status         TransactionStatus
	Nonce          *uint64
	VoteCount      int
	DepositAmount  *decimal.Decimal
	SelectedAsset  *chain.AssetDescriptor
	DepositTxHash  string
	TransferTxHash string
	StartedAt      time.Time
	LastError      error
}

// Machine owns the transfer State and its Ledger. Every mutation coming from
// a chain adaptor carries the generation it was issued for, and Reset
// advances the generation so late events are rejected with ErrStaleCallback.
// Machine is not safe for concurrent use.
type Machine struct {
	generation uint64
	state      State
	ledger     *Ledger
}

func NewMachine() *Machine {
	return &Machine{
		ledger: NewLedger(),
	}
}

func (m *Machine) Generation() uint64 {
	return m.generation
}

func (m *Machine) State() State {
	s := m.state
	if m.state.Nonce != nil {
		nonce := *m.state.Nonce
		s.Nonce = &nonce
	}
	return s
}

func (m *Machine) Messages() []TransitMessage {
	return m.ledger.Messages()
}

func (m *Machine) Status() TransactionStatus {
	return m.state.Status
}

// Begin moves an idle machine to Initializing Transfer and returns the
// generation the deposit is bound to
func (m *Machine) Begin(amount decimal.Decimal, asset *chain.AssetDescriptor) (uint64, error) {
	if m.state.Status != StatusIdle {
		return 0, fmt.Errorf("%w: status %s", ErrTransferInProgress, m.state.Status)
	}

	m.state = State{
		ID:            uuid.New().String(),
		Status:        StatusInitializing,
		DepositAmount: &amount,
		SelectedAsset: asset,
		StartedAt:     time.Now(),
	}
	return m.generation, nil
}

// Fail returns an initializing transfer to idle keeping the failure reason
func (m *Machine) Fail(generation uint64, err error) error {
	if err := m.checkGeneration(generation); err != nil {
		return err
	}
	if m.state.Status != StatusInitializing {
		return fmt.Errorf("%w: fail from %s", ErrInvalidTransition, m.state.Status)
	}

	m.state = State{LastError: err}
	return nil
}

// Submitted records the mined deposit and moves the transfer In Transit
func (m *Machine) Submitted(generation uint64, nonce uint64, depositTxHash string) error {
	if err := m.checkGeneration(generation); err != nil {
		return err
	}
	if m.state.Status != StatusInitializing {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.state.Status, StatusInTransit)
	}

	m.state.Nonce = &nonce
	m.state.DepositTxHash = depositTxHash
	m.state.Status = StatusInTransit
	return nil
}

// RecordMessage appends message to the ledger of an in transit transfer.
// A Confirmed vote raises the vote count to the number of Confirmed entries.
func (m *Machine) RecordMessage(generation uint64, message TransitMessage) error {
	if err := m.checkInTransit(generation); err != nil {
		return err
	}

	m.ledger.Record(message)
	if message.Vote != nil && message.Vote.Signed == Confirmed {
		if confirmed := m.ledger.ConfirmedVotes(); confirmed > m.state.VoteCount {
			m.state.VoteCount = confirmed
		}
	}
	return nil
}

// SetVoteCount applies a count reported by the destination adaptor. Counts
// below the number of recorded Confirmed votes are ignored.
func (m *Machine) SetVoteCount(generation uint64, count int) error {
	if err := m.checkInTransit(generation); err != nil {
		return err
	}

	if count < m.ledger.ConfirmedVotes() {
		return nil
	}
	m.state.VoteCount = count
	return nil
}

func (m *Machine) SetTransferTxHash(generation uint64, hash string) error {
	if err := m.checkGeneration(generation); err != nil {
		return err
	}
	if m.state.Status != StatusInTransit && !m.state.Status.Terminal() {
		return fmt.Errorf("%w: transfer hash in status %s", ErrInvalidTransition, m.state.Status)
	}

	m.state.TransferTxHash = hash
	return nil
}

// SetStatus applies a status observed on the destination chain. Only
// In Transit may move to Transfer Completed or Transfer Aborted.
func (m *Machine) SetStatus(generation uint64, status TransactionStatus) error {
	if err := m.checkGeneration(generation); err != nil {
		return err
	}
	if m.state.Status == status {
		return nil
	}
	if m.state.Status != StatusInTransit || !status.Terminal() {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, m.state.Status, status)
	}

	m.state.Status = status
	return nil
}

// Abort moves an in transit transfer to Transfer Aborted because the
// destination chain can no longer be observed
func (m *Machine) Abort(generation uint64, err error) error {
	if e := m.checkInTransit(generation); e != nil {
		return e
	}

	m.state.Status = StatusAborted
	m.state.LastError = err
	return nil
}

// Reset clears the state and the ledger from any status and invalidates
// every outstanding generation. Calling it repeatedly is harmless.
func (m *Machine) Reset() {
	m.generation++
	m.state = State{}
	m.ledger.Reset()
}

func (m *Machine) checkGeneration(generation uint64) error {
	if generation != m.generation {
		return fmt.Errorf("%w: generation %d, current %d", ErrStaleCallback, generation, m.generation)
	}
	return nil
}

func (m *Machine) checkInTransit(generation uint64) error {
	if err := m.checkGeneration(generation); err != nil {
		return err
	}
	if m.state.Status != StatusInTransit {
		return fmt.Errorf("%w: transfer is %s", ErrInvalidTransition, m.state.Status)
	}
	return nil
}
