// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package pallet_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/client"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/pallet"
)

type recordingClient struct {
	method string
	args   []interface{}
}

func (c *recordingClient) Address() string                { return "" }
func (c *recordingClient) FreeBalance() (*big.Int, error) { return big.NewInt(0), nil }
func (c *recordingClient) Close()                         {}
func (c *recordingClient) SubmitAndWatch(ctx context.Context, method string, args ...interface{}) (*client.Inclusion, error) {
	c.method = method
	c.args = args
	return &client.Inclusion{}, nil
}

type PalletTestSuite struct {
	suite.Suite
	client *recordingClient
}

func TestRunPalletTestSuite(t *testing.T) {
	suite.Run(t, new(PalletTestSuite))
}

func (s *PalletTestSuite) SetupTest() {
	s.client = &recordingClient{}
}

func (s *PalletTestSuite) Test_TransferNative_DefaultMethod() {
	p := pallet.NewPallet(s.client, "")

	_, err := p.TransferNative(context.Background(), big.NewInt(100), []byte{1, 2}, 1)

	s.Nil(err)
	s.Equal(pallet.DefaultDepositMethod, s.client.method)
	s.Equal([]interface{}{
		types.NewU128(*big.NewInt(100)),
		types.NewBytes([]byte{1, 2}),
		types.NewU8(1),
	}, s.client.args)
}

func (s *PalletTestSuite) Test_TransferNative_ConfiguredMethod() {
	p := pallet.NewPallet(s.client, "Bridge.transfer")

	_, err := p.TransferNative(context.Background(), big.NewInt(1), nil, 2)

	s.Nil(err)
	s.Equal("Bridge.transfer", s.client.method)
}
