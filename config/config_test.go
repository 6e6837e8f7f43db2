// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/chainbridge-transfer/config"
	"github.com/ChainSafe/chainbridge-transfer/config/bridge"
)

const chainsJSON = `[
  {
    "id": 1,
    "name": "goerli",
    "type": "Ethereum",
    "endpoint": "wss://goerli.example.org",
    "bridge": "0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B",
    "erc20Handler": "0x3167776db165D8eA0f51790CA2bbf44Db5105ADF",
    "relayerThreshold": 2,
    "tokens": [
      {
        "address": "0x14dD060dB55c0E7cc072BD3ab4709d55583119c0",
        "symbol": "ERC20",
        "resourceId": "0x000000000000000000000000000000c76ebe4a02bbc34786d860b355f5a5ce00"
      }
    ]
  },
  {
    "id": 2,
    "name": "kusama",
    "type": "Substrate",
    "endpoint": "wss://kusama.example.org",
    "bridge": "ChainBridge",
    "networkId": 2
  }
]`

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) TearDownTest() {
	os.Clearenv()
}

func (s *GetConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(s.T().TempDir(), "config.json")
	s.Nil(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidPath() {
	_, err := config.GetConfigFromFile("invalid", &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_Defaults() {
	path := s.writeConfig(`{"chains": ` + chainsJSON + `}`)

	cnf, err := config.GetConfigFromFile(path, &config.Config{})

	s.Nil(err)
	s.Equal(bridge.BridgeConfig{
		LogLevel:    zerolog.InfoLevel,
		WalletType:  bridge.WalletSelect,
		HistoryPath: "./history",
	}, cnf.BridgeConfig)
	s.Len(cnf.ChainConfigs, 2)

	registry, err := cnf.Registry()
	s.Nil(err)
	goerli, ok := registry.Chain(1)
	s.True(ok)
	s.Equal(2, goerli.RelayerThreshold)
	s.Equal(uint8(18), goerli.Assets[0].Decimals)
	kusama, ok := registry.Chain(2)
	s.True(ok)
	s.Equal(uint64(2), kusama.NetworkID)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_BridgeConfig() {
	path := s.writeConfig(`{
  "bridge": {
    "logLevel": "debug",
    "logFile": "transfer.log",
    "walletType": "Ethereum",
    "historyPath": "/tmp/history",
    "opentelemetryCollectorURL": "http://otel:4318"
  },
  "chains": ` + chainsJSON + `}`)

	cnf, err := config.GetConfigFromFile(path, &config.Config{})

	s.Nil(err)
	s.Equal(bridge.BridgeConfig{
		LogLevel:                  zerolog.DebugLevel,
		LogFile:                   "transfer.log",
		WalletType:                "Ethereum",
		HistoryPath:               "/tmp/history",
		OpenTelemetryCollectorURL: "http://otel:4318",
	}, cnf.BridgeConfig)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidLogLevel() {
	path := s.writeConfig(`{"bridge": {"logLevel": "loud"}, "chains": ` + chainsJSON + `}`)

	_, err := config.GetConfigFromFile(path, &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_MissingChainType() {
	path := s.writeConfig(`{"chains": [{"id": 1, "endpoint": "ws://localhost:8545"}]}`)

	_, err := config.GetConfigFromFile(path, &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_OverridesSharedChainsByID() {
	shared := []map[string]interface{}{
		{"id": 1, "name": "goerli", "type": "Ethereum", "endpoint": "wss://goerli.example.org", "bridge": "0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B"},
		{"id": 2, "name": "kusama", "type": "Substrate", "endpoint": "wss://kusama.example.org", "bridge": "ChainBridge", "relayerThreshold": 2},
	}
	path := s.writeConfig(`{"chains": [
  {"id": 3, "name": "local", "type": "Ethereum", "endpoint": "ws://localhost:8545", "bridge": "0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B"},
  {"id": 2, "endpoint": "ws://localhost:9944", "key": "//Alice", "relayerThreshold": 3}
]}`)

	cnf, err := config.GetConfigFromFile(path, &config.Config{ChainConfigs: shared})

	s.Nil(err)
	registry, err := cnf.Registry()
	s.Nil(err)
	chains := registry.Chains()
	s.Len(chains, 3)
	s.Equal([]uint8{1, 2, 3}, []uint8{chains[0].ChainID, chains[1].ChainID, chains[2].ChainID})
	s.Equal("kusama", chains[1].Name)
	s.Equal("ws://localhost:9944", chains[1].Endpoint)
	s.Equal("//Alice", chains[1].Key)
	s.Equal(3, chains[1].RelayerThreshold)
	s.Equal("wss://goerli.example.org", chains[0].Endpoint)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_DuplicateChainID() {
	path := s.writeConfig(`{"chains": [
  {"id": 1, "type": "Ethereum", "endpoint": "ws://a:8545", "bridge": "0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B"},
  {"id": 1, "type": "Ethereum", "endpoint": "ws://b:8545", "bridge": "0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B"}
]}`)

	_, err := config.GetConfigFromFile(path, &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidChain() {
	path := s.writeConfig(`{"chains": [{"id": 1, "type": "Ethereum", "endpoint": "ws://a:8545"}]}`)

	_, err := config.GetConfigFromFile(path, &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_WalletTypeWithoutChains() {
	path := s.writeConfig(`{"bridge": {"walletType": "Substrate"}, "chains": [
  {"id": 1, "type": "Ethereum", "endpoint": "ws://a:8545", "bridge": "0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B"}
]}`)

	_, err := config.GetConfigFromFile(path, &config.Config{})

	s.EqualError(err, "wallet type Substrate matches no configured chain")
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_UnknownWalletType() {
	path := s.writeConfig(`{"bridge": {"walletType": "metamask"}, "chains": ` + chainsJSON + `}`)

	_, err := config.GetConfigFromFile(path, &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV() {
	_ = os.Setenv("CHB_BRIDGE_LOGLEVEL", "warn")
	_ = os.Setenv("CHB_BRIDGE_WALLETTYPE", "Substrate")
	_ = os.Setenv("CHB_CHAIN_1", `{"id": 1, "type": "Ethereum", "endpoint": "ws://evm1:8546", "bridge": "0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B"}`)
	_ = os.Setenv("CHB_CHAIN_2", `{"id": 2, "type": "Substrate", "endpoint": "ws://sub:9944", "bridge": "ChainBridge"}`)

	cnf, err := config.GetConfigFromENV(&config.Config{ChainConfigs: []map[string]interface{}{{
		"id":  1,
		"key": "0x000000000000000000000000000000000000000000000000000000616c696365",
	}}})

	s.Nil(err)
	s.Equal(zerolog.WarnLevel, cnf.BridgeConfig.LogLevel)
	s.Equal("Substrate", cnf.BridgeConfig.WalletType)
	s.Equal([]map[string]interface{}{
		{
			"id":       float64(1),
			"type":     "Ethereum",
			"endpoint": "ws://evm1:8546",
			"bridge":   "0x62877dDCd49aD22f5eDfc6ac108e9a4b5D2bD88B",
			"key":      "0x000000000000000000000000000000000000000000000000000000616c696365",
		},
		{
			"id":       float64(2),
			"type":     "Substrate",
			"endpoint": "ws://sub:9944",
			"bridge":   "ChainBridge",
		},
	}, cnf.ChainConfigs)
}

func (s *GetConfigTestSuite) Test_GetSharedConfigFromNetwork() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chains": ` + chainsJSON + `}`))
	}))
	defer server.Close()

	cnf, err := config.GetSharedConfigFromNetwork(server.URL, &config.Config{})

	s.Nil(err)
	s.Len(cnf.ChainConfigs, 2)
	s.Equal("goerli", cnf.ChainConfigs[0]["name"])
}

func (s *GetConfigTestSuite) Test_GetSharedConfigFromNetwork_NotFound() {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := config.GetSharedConfigFromNetwork(server.URL, &config.Config{})

	s.NotNil(err)
}
