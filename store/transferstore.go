// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

var (
	KEY    = "source:%d:destination:%d:depositNonce:%d"
	PREFIX = "source:%d:destination:%d:"

	ErrIncompleteTransfer = errors.New("transfer has no home chain, destination chain or nonce")
)

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
	GetByPrefix(prefix []byte) ([][]byte, error)
}

// TransferRecord is the persisted outcome of one deposit
type TransferRecord struct {
	ID                 string                     `json:"id"`
	HomeChainID        uint8                      `json:"homeChainId"`
	DestinationChainID uint8                      `json:"destinationChainId"`
	DepositNonce       uint64                     `json:"depositNonce"`
	Status             transfer.TransactionStatus `json:"status"`
	Amount             string                     `json:"amount,omitempty"`
	Asset              string                     `json:"asset,omitempty"`
	VoteCount          int                        `json:"voteCount"`
	Threshold          int                        `json:"threshold"`
	DepositTxHash      string                     `json:"depositTxHash,omitempty"`
	TransferTxHash     string                     `json:"transferTxHash,omitempty"`
	Messages           []string                   `json:"messages,omitempty"`
	Error              string                     `json:"error,omitempty"`
	UpdatedAt          time.Time                  `json:"updatedAt"`
}

type TransferStore struct {
	db KeyValueReaderWriter
}

func NewTransferStore(db KeyValueReaderWriter) *TransferStore {
	return &TransferStore{
		db: db,
	}
}

// Record stores the snapshot of a transfer that has been assigned a nonce
func (ts *TransferStore) Record(snapshot transfer.Snapshot) error {
	if snapshot.HomeChainID == nil || snapshot.DestinationChainID == nil || snapshot.Nonce == nil {
		return ErrIncompleteTransfer
	}

	record := &TransferRecord{
		ID:                 snapshot.ID,
		HomeChainID:        *snapshot.HomeChainID,
		DestinationChainID: *snapshot.DestinationChainID,
		DepositNonce:       *snapshot.Nonce,
		Status:             snapshot.Status,
		VoteCount:          snapshot.VoteCount,
		Threshold:          snapshot.Threshold,
		DepositTxHash:      snapshot.DepositTxHash,
		TransferTxHash:     snapshot.TransferTxHash,
		UpdatedAt:          time.Now().UTC(),
	}
	if snapshot.DepositAmount != nil {
		record.Amount = snapshot.DepositAmount.String()
	}
	if snapshot.Asset != nil {
		record.Asset = snapshot.Asset.Symbol
	}
	for _, m := range snapshot.Ledger {
		record.Messages = append(record.Messages, m.String())
	}
	if snapshot.LastError != nil {
		record.Error = snapshot.LastError.Error()
	}
	return ts.StoreTransfer(record)
}

func (ts *TransferStore) StoreTransfer(record *TransferRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := fmt.Sprintf(KEY, record.HomeChainID, record.DestinationChainID, record.DepositNonce)
	return ts.db.SetByKey([]byte(key), value)
}

// Transfer returns the stored record or nil if the deposit was never recorded
func (ts *TransferStore) Transfer(source, destination uint8, depositNonce uint64) (*TransferRecord, error) {
	key := fmt.Sprintf(KEY, source, destination, depositNonce)
	v, err := ts.db.GetByKey([]byte(key))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record := &TransferRecord{}
	if err := json.Unmarshal(v, record); err != nil {
		return nil, fmt.Errorf("corrupted transfer record %s: %w", key, err)
	}
	return record, nil
}

// Transfers returns every recorded transfer between source and destination
func (ts *TransferStore) Transfers(source, destination uint8) ([]*TransferRecord, error) {
	values, err := ts.db.GetByPrefix([]byte(fmt.Sprintf(PREFIX, source, destination)))
	if err != nil {
		return nil, err
	}

	records := make([]*TransferRecord, 0, len(values))
	for _, v := range values {
		record := &TransferRecord{}
		if err := json.Unmarshal(v, record); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
