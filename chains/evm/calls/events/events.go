// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

type EventSig string

func (es EventSig) GetTopic() common.Hash {
	return crypto.Keccak256Hash([]byte(es))
}

const (
	DepositSig       EventSig = "Deposit(uint8,bytes32,uint64)"
	ProposalEventSig EventSig = "ProposalEvent(uint8,uint64,uint8,bytes32,bytes32)"
	ProposalVoteSig  EventSig = "ProposalVote(uint8,uint64,uint8,bytes32)"
)

// ProposalStatus mirrors the bridge contract proposal enum
type ProposalStatus uint8

const (
	ProposalStatusInactive ProposalStatus = iota
	ProposalStatusActive
	ProposalStatusPassed
	ProposalStatusExecuted
	ProposalStatusCancelled
)

func (s ProposalStatus) String() string {
	switch s {
	case ProposalStatusInactive:
		return "Inactive"
	case ProposalStatusActive:
		return "Active"
	case ProposalStatusPassed:
		return "Passed"
	case ProposalStatusExecuted:
		return "Executed"
	case ProposalStatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

type Deposit struct {
	// ID of chain deposit will be bridged to
	DestinationChainID uint8
	// ResourceID used to find address of handler to be used for deposit
	ResourceID [32]byte
	// Nonce of deposit
	DepositNonce uint64
}

type ProposalEvent struct {
	OriginChainID uint8
	DepositNonce  uint64
	Status        uint8
	ResourceID    [32]byte
	DataHash      [32]byte
}

func (e *ProposalEvent) ProposalStatus() ProposalStatus {
	return ProposalStatus(e.Status)
}

type ProposalVote struct {
	OriginChainID uint8
	DepositNonce  uint64
	Status        uint8
	ResourceID    [32]byte
}
