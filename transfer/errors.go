// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package transfer

import "errors"

var (
	ErrTransferInProgress = errors.New("transfer in progress")
	// ErrStaleCallback marks an event produced for a generation that was reset
	ErrStaleCallback     = errors.New("stale callback")
	ErrInvalidTransition = errors.New("invalid status transition")
)
