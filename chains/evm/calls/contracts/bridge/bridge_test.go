// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge_test

import (
	"context"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/consts"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/contracts/bridge"
)

// backend answers every call with a fixed output and captures sent transactions
type backend struct {
	output []byte
	sent   []*ethTypes.Transaction
}

func (b *backend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{1}, nil
}
func (b *backend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return b.output, nil
}
func (b *backend) HeaderByNumber(ctx context.Context, number *big.Int) (*ethTypes.Header, error) {
	return &ethTypes.Header{Number: big.NewInt(1)}, nil
}
func (b *backend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{1}, nil
}
func (b *backend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return 3, nil
}
func (b *backend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}
func (b *backend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1), nil
}
func (b *backend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 21000, nil
}
func (b *backend) SendTransaction(ctx context.Context, tx *ethTypes.Transaction) error {
	b.sent = append(b.sent, tx)
	return nil
}
func (b *backend) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]ethTypes.Log, error) {
	return nil, nil
}
func (b *backend) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- ethTypes.Log) (ethereum.Subscription, error) {
	return nil, nil
}

type BridgeContractTestSuite struct {
	suite.Suite
	backend  *backend
	contract *bridge.BridgeContract
	abi      abi.ABI
}

func TestRunBridgeContractTestSuite(t *testing.T) {
	suite.Run(t, new(BridgeContractTestSuite))
}

func (s *BridgeContractTestSuite) SetupTest() {
	s.backend = &backend{}
	s.contract = bridge.NewBridgeContract(common.HexToAddress("0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B"), s.backend)
	s.abi, _ = abi.JSON(strings.NewReader(consts.BridgeABI))
}

func (s *BridgeContractTestSuite) Test_Fee_UnpacksUint256() {
	s.backend.output = common.LeftPadBytes(big.NewInt(1e16).Bytes(), 32)

	fee, err := s.contract.Fee(context.Background())

	s.Nil(err)
	s.Equal(big.NewInt(1e16), fee)
}

func (s *BridgeContractTestSuite) Test_Deposit_PacksArguments() {
	key, _ := crypto.GenerateKey()
	opts, _ := bind.NewKeyedTransactorWithChainID(key, big.NewInt(5))
	opts.GasLimit = 300000
	opts.GasPrice = big.NewInt(20)
	opts.Value = big.NewInt(7)
	rID := common.HexToHash("0x000000000000000000000021605f71845f372a9ed84253d2d024b7b10999f400")

	tx, err := s.contract.Deposit(opts, 2, rID, []byte{1, 2, 3})

	s.Nil(err)
	s.Len(s.backend.sent, 1)
	s.Equal(big.NewInt(7), tx.Value())
	s.Equal(s.abi.Methods["deposit"].ID, tx.Data()[:4])

	args, err := s.abi.Methods["deposit"].Inputs.Unpack(tx.Data()[4:])
	s.Nil(err)
	s.Equal(uint8(2), args[0].(uint8))
	s.Equal([32]byte(rID), args[1].([32]byte))
	s.Equal([]byte{1, 2, 3}, args[2].([]byte))
}
