// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

type TransactionStatus string

const (
	// StatusIdle means no transfer is in progress
	StatusIdle         TransactionStatus = ""
	StatusInitializing TransactionStatus = "Initializing Transfer"
	StatusInTransit    TransactionStatus = "In Transit"
	StatusCompleted    TransactionStatus = "Transfer Completed"
	StatusAborted      TransactionStatus = "Transfer Aborted"
)

// Terminal reports whether no further chain event can change the status
func (s TransactionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusAborted
}

func (s TransactionStatus) String() string {
	if s == StatusIdle {
		return "Idle"
	}
	return string(s)
}
