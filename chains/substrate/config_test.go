// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/chains/substrate"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

type NewSubstrateConfigTestSuite struct {
	suite.Suite
	descriptor *chain.ChainDescriptor
}

func TestRunNewSubstrateConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewSubstrateConfigTestSuite))
}

func (s *NewSubstrateConfigTestSuite) SetupTest() {
	s.descriptor = &chain.ChainDescriptor{
		ChainID:  3,
		Name:     "substrate",
		Type:     chain.SubstrateType,
		Endpoint: "ws://localhost:9944",
		Key:      "//Alice",
	}
}

func (s *NewSubstrateConfigTestSuite) Test_WrongChainType() {
	s.descriptor.Type = chain.EVMType

	_, err := substrate.NewSubstrateConfig(s.descriptor)

	s.NotNil(err)
}

func (s *NewSubstrateConfigTestSuite) Test_InvalidDepositMethod() {
	s.descriptor.DepositMethod = "transfer_native"

	_, err := substrate.NewSubstrateConfig(s.descriptor)

	s.NotNil(err)
}

func (s *NewSubstrateConfigTestSuite) Test_InvalidNetwork() {
	s.descriptor.NetworkID = 64

	_, err := substrate.NewSubstrateConfig(s.descriptor)

	s.NotNil(err)
}

func (s *NewSubstrateConfigTestSuite) Test_Defaults() {
	config, err := substrate.NewSubstrateConfig(s.descriptor)

	s.Nil(err)
	s.Equal(&substrate.SubstrateConfig{
		ChainID:       3,
		Name:          "substrate",
		Endpoint:      "ws://localhost:9944",
		Key:           "//Alice",
		DepositMethod: "Example.transfer_native",
		SS58Format:    substrate.DefaultSS58Format,
	}, config)
}

func (s *NewSubstrateConfigTestSuite) Test_CustomMethodAndNetwork() {
	s.descriptor.DepositMethod = "Bridge.transfer"
	s.descriptor.NetworkID = 2

	config, err := substrate.NewSubstrateConfig(s.descriptor)

	s.Nil(err)
	s.Equal("Bridge.transfer", config.DepositMethod)
	s.Equal(uint8(2), config.SS58Format)
}
