// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package adaptor

import (
	"errors"
	"fmt"
)

var ErrNotConnected = errors.New("adaptor not connected")

// ChainSubmissionError means the home chain deposit transaction reverted or was never signed
type ChainSubmissionError struct {
	ChainID uint8
	TxHash  string
	Err     error
}

func (e *ChainSubmissionError) Error() string {
	if e.TxHash != "" {
		return fmt.Sprintf("deposit on chain %d failed in tx %s: %v", e.ChainID, e.TxHash, e.Err)
	}
	return fmt.Sprintf("deposit on chain %d failed: %v", e.ChainID, e.Err)
}

func (e *ChainSubmissionError) Unwrap() error {
	return e.Err
}

// AdaptorConstructionError means the destination adaptor could not subscribe to chain events
type AdaptorConstructionError struct {
	ChainID uint8
	Err     error
}

func (e *AdaptorConstructionError) Error() string {
	return fmt.Sprintf("unable to observe destination chain %d: %v", e.ChainID, e.Err)
}

func (e *AdaptorConstructionError) Unwrap() error {
	return e.Err
}
