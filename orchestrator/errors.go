// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package orchestrator

import (
	"errors"

	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

var (
	ErrInvalidDepositParameters = errors.New("invalid deposit parameters")
	ErrUnknownChain             = errors.New("unknown home chain")
	ErrInvalidDestinationChain  = errors.New("invalid destination chain")
	ErrHomeChainNotSelected     = errors.New("home chain not selected")
	ErrDestinationNotSelected   = errors.New("destination chain not selected")
	ErrWrapperUnsupported       = errors.New("native token wrapping not supported on home chain")
	ErrNotStarted               = errors.New("orchestrator event loop is not running")
	ErrNoTransfer               = errors.New("no transfer in progress")

	ErrTransferInProgress = transfer.ErrTransferInProgress
	ErrStaleCallback      = transfer.ErrStaleCallback
)
