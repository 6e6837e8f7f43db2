// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

import (
	"github.com/shopspring/decimal"

	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

// Snapshot is a read-only view of the transfer for presentation
type Snapshot struct {
	ID                 string
	Status             TransactionStatus
	Nonce              *uint64
	VoteCount          int
	Threshold          int
	DepositAmount      *decimal.Decimal
	Asset              *chain.AssetDescriptor
	DepositTxHash      string
	TransferTxHash     string
	HomeChainID        *uint8
	DestinationChainID *uint8
	Ledger             []TransitMessage
	LastError          error
}

// ThresholdReached reports whether the local tally reached the relayer
// threshold. Completion is still decided by the destination chain.
func (s Snapshot) ThresholdReached() bool {
	return s.Threshold > 0 && s.VoteCount >= s.Threshold
}
