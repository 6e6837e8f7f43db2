// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/ChainSafe/chainbridge-transfer/config/chain"
	"github.com/ChainSafe/chainbridge-transfer/store"
	mock_store "github.com/ChainSafe/chainbridge-transfer/store/mock"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

type TransferStoreTestSuite struct {
	suite.Suite
	transferStore        *store.TransferStore
	keyValueReaderWriter *mock_store.MockKeyValueReaderWriter
}

func TestRunTransferStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TransferStoreTestSuite))
}

func (s *TransferStoreTestSuite) SetupTest() {
	gomockController := gomock.NewController(s.T())
	s.keyValueReaderWriter = mock_store.NewMockKeyValueReaderWriter(gomockController)
	s.transferStore = store.NewTransferStore(s.keyValueReaderWriter)
}

func snapshot() transfer.Snapshot {
	home, destination := uint8(1), uint8(2)
	nonce := uint64(3)
	amount := decimal.RequireFromString("1.5")
	return transfer.Snapshot{
		ID:                 "c4a1e0f2",
		Status:             transfer.StatusInTransit,
		Nonce:              &nonce,
		VoteCount:          1,
		Threshold:          2,
		DepositAmount:      &amount,
		Asset:              &chain.AssetDescriptor{Symbol: "WETH"},
		DepositTxHash:      "0xdeposit",
		HomeChainID:        &home,
		DestinationChainID: &destination,
		Ledger: []transfer.TransitMessage{
			transfer.NewTextMessage("Proposal created on rinkeby"),
			transfer.NewVoteMessage("0xrelayer", transfer.Confirmed),
		},
	}
}

func (s *TransferStoreTestSuite) Test_Record_StoresUnderDepositKey() {
	key := "source:1:destination:2:depositNonce:3"
	s.keyValueReaderWriter.EXPECT().SetByKey([]byte(key), gomock.Any()).DoAndReturn(func(key, value []byte) error {
		record := &store.TransferRecord{}
		s.Nil(json.Unmarshal(value, record))
		s.Equal(transfer.StatusInTransit, record.Status)
		s.Equal("1.5", record.Amount)
		s.Equal("WETH", record.Asset)
		s.Equal([]string{"Proposal created on rinkeby", "0xrelayer: Confirmed"}, record.Messages)
		return nil
	})

	err := s.transferStore.Record(snapshot())

	s.Nil(err)
}

func (s *TransferStoreTestSuite) Test_Record_WithoutNonce() {
	snap := snapshot()
	snap.Nonce = nil

	err := s.transferStore.Record(snap)

	s.ErrorIs(err, store.ErrIncompleteTransfer)
}

func (s *TransferStoreTestSuite) Test_Record_FailedStore() {
	s.keyValueReaderWriter.EXPECT().SetByKey(gomock.Any(), gomock.Any()).Return(errors.New("error"))

	err := s.transferStore.Record(snapshot())

	s.NotNil(err)
}

func (s *TransferStoreTestSuite) Test_Transfer_FailedFetch() {
	key := "source:1:destination:2:depositNonce:3"
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, errors.New("error"))

	_, err := s.transferStore.Transfer(1, 2, 3)

	s.NotNil(err)
}

func (s *TransferStoreTestSuite) Test_Transfer_NotFound() {
	key := "source:1:destination:2:depositNonce:3"
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(nil, leveldb.ErrNotFound)

	record, err := s.transferStore.Transfer(1, 2, 3)

	s.Nil(err)
	s.Nil(record)
}

func (s *TransferStoreTestSuite) Test_Transfer_SuccessfulFetch() {
	key := "source:1:destination:2:depositNonce:3"
	value, _ := json.Marshal(&store.TransferRecord{HomeChainID: 1, DestinationChainID: 2, DepositNonce: 3, Status: transfer.StatusCompleted})
	s.keyValueReaderWriter.EXPECT().GetByKey([]byte(key)).Return(value, nil)

	record, err := s.transferStore.Transfer(1, 2, 3)

	s.Nil(err)
	s.Equal(transfer.StatusCompleted, record.Status)
}

func (s *TransferStoreTestSuite) Test_Transfer_Corrupted() {
	s.keyValueReaderWriter.EXPECT().GetByKey(gomock.Any()).Return([]byte("executed"), nil)

	_, err := s.transferStore.Transfer(1, 2, 3)

	s.NotNil(err)
}

func (s *TransferStoreTestSuite) Test_Transfers_ByRoute() {
	first, _ := json.Marshal(&store.TransferRecord{DepositNonce: 1})
	second, _ := json.Marshal(&store.TransferRecord{DepositNonce: 2})
	s.keyValueReaderWriter.EXPECT().GetByPrefix([]byte("source:1:destination:2:")).Return([][]byte{first, second}, nil)

	records, err := s.transferStore.Transfers(1, 2)

	s.Nil(err)
	s.Len(records, 2)
	s.Equal(uint64(2), records[1].DepositNonce)
}
