// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/chains/evm"
)

type DecodeAddressTestSuite struct {
	suite.Suite
}

func TestRunDecodeAddressTestSuite(t *testing.T) {
	suite.Run(t, new(DecodeAddressTestSuite))
}

func (s *DecodeAddressTestSuite) Test_ValidAddress() {
	raw, err := evm.DecodeAddress("0x8e0a907331554AF72563Bd8D43051C2E64Be5d35")

	s.Nil(err)
	s.Equal(recipient.Bytes(), raw)
}

func (s *DecodeAddressTestSuite) Test_InvalidAddresses() {
	for _, address := range []string{"", "0x123", "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"} {
		_, err := evm.DecodeAddress(address)
		s.NotNil(err, address)
	}
}

func (s *DecodeAddressTestSuite) Test_Module() {
	module := evm.Module()

	s.NotNil(module.NewHome)
	s.NotNil(module.NewDestination)
	s.NotNil(module.DecodeAddress)
}
