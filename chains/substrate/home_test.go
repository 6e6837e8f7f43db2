// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/client"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/events"
	mock_substrate "github.com/ChainSafe/chainbridge-transfer/chains/substrate/mock"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

func applied(index uint32) types.Phase {
	return types.Phase{IsApplyExtrinsic: true, AsApplyExtrinsic: index}
}

type HomeAdaptorTestSuite struct {
	suite.Suite
	pallet  *mock_substrate.MockBridgePallet
	home    *substrate.HomeAdaptor
	request adaptor.DepositRequest
}

func TestRunHomeAdaptorTestSuite(t *testing.T) {
	suite.Run(t, new(HomeAdaptorTestSuite))
}

func (s *HomeAdaptorTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.pallet = mock_substrate.NewMockBridgePallet(ctrl)
	descriptor := &chain.ChainDescriptor{
		ChainID:  3,
		Name:     "substrate",
		Type:     chain.SubstrateType,
		Endpoint: "ws://localhost:9944",
		Assets: []*chain.AssetDescriptor{
			{Address: "native", Symbol: "DOT", Decimals: 12},
		},
	}
	s.request = adaptor.DepositRequest{
		Amount:             decimal.RequireFromString("2"),
		Recipient:          "0x8e0a907331554AF72563Bd8D43051C2E64Be5d35",
		RecipientData:      []byte{0x8e, 0x0a},
		Asset:              descriptor.Assets[0],
		DestinationChainID: 1,
	}
	home, err := substrate.NewHomeAdaptor(descriptor, func(ctx context.Context, config *substrate.SubstrateConfig) (substrate.BridgePallet, error) {
		return s.pallet, nil
	})
	s.Nil(err)
	s.home = home
}

func (s *HomeAdaptorTestSuite) connect() {
	s.pallet.EXPECT().Address().Return("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY").AnyTimes()
	s.Nil(s.home.Connect(context.Background()))
}

func (s *HomeAdaptorTestSuite) Test_Deposit_NotConnected() {
	_, err := s.home.Deposit(context.Background(), s.request)

	s.ErrorIs(err, adaptor.ErrNotConnected)
}

func (s *HomeAdaptorTestSuite) Test_Deposit_NonceFromOwnTransferEvent() {
	s.connect()
	incl := &client.Inclusion{
		ExtrinsicHash:  types.NewHash([]byte{1}),
		ExtrinsicIndex: 2,
		Events: &events.Events{
			ChainBridge_FungibleTransfer: []events.EventFungibleTransfer{
				{Phase: applied(1), DepositNonce: 4},
				{Phase: applied(2), DepositNonce: 5},
			},
		},
	}
	s.pallet.EXPECT().TransferNative(gomock.Any(), gomock.Any(), []byte{0x8e, 0x0a}, uint8(1)).DoAndReturn(
		func(ctx context.Context, amount *big.Int, recipient []byte, destinationChainID uint8) (*client.Inclusion, error) {
			s.Equal(0, amount.Cmp(big.NewInt(2_000_000_000_000)))
			return incl, nil
		})

	result, err := s.home.Deposit(context.Background(), s.request)

	s.Nil(err)
	s.Equal(&adaptor.DepositResult{TxHash: incl.ExtrinsicHash.Hex(), Nonce: 5}, result)
}

func (s *HomeAdaptorTestSuite) Test_Deposit_ExtrinsicFailed() {
	s.connect()
	incl := &client.Inclusion{
		ExtrinsicIndex: 1,
		Events:         &events.Events{},
	}
	incl.Events.System_ExtrinsicFailed = []types.EventSystemExtrinsicFailed{{Phase: applied(1)}}
	s.pallet.EXPECT().TransferNative(gomock.Any(), gomock.Any(), gomock.Any(), uint8(1)).Return(incl, nil)

	_, err := s.home.Deposit(context.Background(), s.request)

	var submissionErr *adaptor.ChainSubmissionError
	s.True(errors.As(err, &submissionErr))
	s.Equal(uint8(3), submissionErr.ChainID)
	s.ErrorIs(err, substrate.ErrExtrinsicFailed)
}

func (s *HomeAdaptorTestSuite) Test_Deposit_MissingTransferEvent() {
	s.connect()
	incl := &client.Inclusion{
		ExtrinsicIndex: 1,
		Events: &events.Events{
			ChainBridge_FungibleTransfer: []events.EventFungibleTransfer{{Phase: applied(0), DepositNonce: 4}},
		},
	}
	s.pallet.EXPECT().TransferNative(gomock.Any(), gomock.Any(), gomock.Any(), uint8(1)).Return(incl, nil)

	_, err := s.home.Deposit(context.Background(), s.request)

	s.ErrorIs(err, substrate.ErrTransferEventMissing)
}

func (s *HomeAdaptorTestSuite) Test_Deposit_SubmitFails() {
	s.connect()
	s.pallet.EXPECT().TransferNative(gomock.Any(), gomock.Any(), gomock.Any(), uint8(1)).Return(nil, errors.New("extrinsic dropped"))

	_, err := s.home.Deposit(context.Background(), s.request)

	var submissionErr *adaptor.ChainSubmissionError
	s.True(errors.As(err, &submissionErr))
	s.Equal("", submissionErr.TxHash)
}

func (s *HomeAdaptorTestSuite) Test_Views() {
	s.connect()
	s.pallet.EXPECT().FreeBalance().Return(big.NewInt(10), nil).Times(2)

	native, err := s.home.NativeBalance(context.Background())
	s.Nil(err)
	token, err := s.home.TokenBalance(context.Background(), s.request.Asset)
	s.Nil(err)
	fee, err := s.home.BridgeFee(context.Background())
	s.Nil(err)

	s.Equal(big.NewInt(10), native)
	s.Equal(big.NewInt(10), token)
	s.Equal(0, fee.Sign())
	s.Nil(s.home.Wrapper())
	s.Equal("5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", s.home.Address())
}

func (s *HomeAdaptorTestSuite) Test_Close() {
	s.connect()
	s.pallet.EXPECT().Close()

	s.home.Close()
	s.home.Close()

	s.False(s.home.Connected())
}
