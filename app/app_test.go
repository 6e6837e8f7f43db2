// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/config"
	"github.com/ChainSafe/chainbridge-transfer/config/bridge"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
	"github.com/ChainSafe/chainbridge-transfer/orchestrator"
)

type AppTestSuite struct {
	suite.Suite
}

func TestRunAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) TearDownTest() {
	viper.Reset()
}

func (s *AppTestSuite) Test_WalletType() {
	s.Equal(orchestrator.WalletSelect, walletType(bridge.WalletSelect))
	s.Equal(orchestrator.WalletUnset, walletType(bridge.WalletUnset))
	s.Equal(orchestrator.ChainWallet(chain.SubstrateType), walletType("Substrate"))
}

func (s *AppTestSuite) Test_Modules() {
	modules := Modules()

	s.NotNil(modules[chain.EVMType].NewHome)
	s.NotNil(modules[chain.EVMType].NewDestination)
	s.NotNil(modules[chain.SubstrateType].NewDestination)
	s.NotNil(modules[chain.SubstrateType].DecodeAddress)
}

func (s *AppTestSuite) Test_LoadConfig_FromFile() {
	path := filepath.Join(s.T().TempDir(), "config.json")
	s.Nil(os.WriteFile(path, []byte(`{
  "bridge": {"walletType": "Ethereum"},
  "chains": [{"id": 1, "name": "goerli", "type": "Ethereum", "endpoint": "wss://goerli.example.org", "bridge": "0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B"}]
}`), 0o600))
	viper.Set(config.ConfigFlagName, path)

	cnf, err := LoadConfig()

	s.Nil(err)
	s.Equal("Ethereum", cnf.BridgeConfig.WalletType)
	s.Len(cnf.ChainConfigs, 1)
}

func (s *AppTestSuite) Test_LoadConfig_MissingFile() {
	viper.Set(config.ConfigFlagName, filepath.Join(s.T().TempDir(), "missing.json"))

	_, err := LoadConfig()

	s.NotNil(err)
}
