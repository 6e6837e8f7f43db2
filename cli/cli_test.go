// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/config/chain"
	"github.com/ChainSafe/chainbridge-transfer/store"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

type PrintTestSuite struct {
	suite.Suite
}

func TestRunPrintTestSuite(t *testing.T) {
	suite.Run(t, new(PrintTestSuite))
}

func (s *PrintTestSuite) Test_PrintChains() {
	out := &bytes.Buffer{}

	printChains(out, []*chain.ChainDescriptor{
		{
			ChainID: 4, Name: "goerli", Type: chain.EVMType, RelayerThreshold: 2, NativeTokenSymbol: "ETH",
			Assets: []*chain.AssetDescriptor{
				{Address: "0x14dD060dB55c0E7cc072BD3ab4709d55583119c0", Symbol: "ERC20", Decimals: 18},
				{Address: "0xB4FBF271143F4FBf7B91A5ded31805e42b2208d6", Symbol: "WETH", Decimals: 18, IsNativeWrappedToken: true},
				{Address: "0x0000000000000000000000000000000000000001", Symbol: "OLD", DisableTransfer: true},
			},
		},
		{ChainID: 6, Name: "kusama", Type: chain.SubstrateType, RelayerThreshold: 3},
	})

	s.Contains(out.String(), "goerli")
	s.Contains(out.String(), "WETH (wrapped ETH)")
	s.Contains(out.String(), "OLD (disabled)")
	s.Contains(out.String(), "kusama")
}

func (s *PrintTestSuite) Test_PrintRecords() {
	out := &bytes.Buffer{}

	printRecords(out, []*store.TransferRecord{
		{DepositNonce: 7, Status: transfer.StatusCompleted, Amount: "1.5", Asset: "ERC20", VoteCount: 2, Threshold: 2, DepositTxHash: "0xabc"},
	})

	s.Contains(out.String(), "1.5")
	s.Contains(out.String(), "2/2")
	s.Contains(out.String(), "0xabc")
}

func (s *PrintTestSuite) Test_PrintLedger() {
	out := &bytes.Buffer{}

	printLedger(out, []transfer.TransitMessage{
		transfer.NewTextMessage("Deposit event found"),
		transfer.NewVoteMessage("0xrelayer", transfer.Confirmed),
	})

	s.Contains(out.String(), "Deposit event found")
	s.Contains(out.String(), "0xrelayer")
}
