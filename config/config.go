// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/ChainSafe/chainbridge-transfer/config/bridge"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

type Config struct {
	BridgeConfig bridge.BridgeConfig
	ChainConfigs []map[string]interface{}
}

type RawConfig struct {
	BridgeConfig bridge.RawBridgeConfig   `mapstructure:"bridge" json:"bridge"`
	ChainConfigs []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

// Registry decodes the chain configs into a chain registry
func (c *Config) Registry() (*chain.Registry, error) {
	return chain.NewRegistryFromConfig(c.ChainConfigs)
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of BridgeConfig are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with CHB.
//
// For example, if you want to set Config.BridgeConfig.LogLevel this would
// translate to Env variable named CHB_BRIDGE_LOGLEVEL. Chains are JSON
// documents in CHB_CHAIN_1, CHB_CHAIN_2 and so on.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetSharedConfigFromNetwork fetches shared chain configuration from URL
func GetSharedConfigFromNetwork(url string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	resp, err := http.Get(url)
	if err != nil {
		return &Config{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &Config{}, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Config{}, err
	}

	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return &Config{}, err
	}

	config.ChainConfigs = rawConfig.ChainConfigs
	return config, err
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	bridgeConfig, err := bridge.NewBridgeConfig(rawConfig.BridgeConfig)
	if err != nil {
		return config, err
	}

	chainConfigs, err := mergeChainConfigs(config.ChainConfigs, rawConfig.ChainConfigs)
	if err != nil {
		return config, err
	}
	registry, err := chain.NewRegistryFromConfig(chainConfigs)
	if err != nil {
		return config, err
	}
	if err := validateWalletType(bridgeConfig.WalletType, registry); err != nil {
		return config, err
	}

	config.ChainConfigs = chainConfigs
	config.BridgeConfig = bridgeConfig
	return config, nil
}

// mergeChainConfigs overlays local chain configs on the shared ones with the
// same id. Local values win; shared chains keep their order and local chains
// unknown to the shared config are appended.
func mergeChainConfigs(shared, local []map[string]interface{}) ([]map[string]interface{}, error) {
	merged := make([]map[string]interface{}, 0, len(shared)+len(local))
	positions := make(map[string]int, len(shared))
	for _, cc := range shared {
		cc = lowerKeys(cc)
		if id, ok := chainConfigID(cc); ok {
			positions[id] = len(merged)
		}
		merged = append(merged, cc)
	}

	for _, cc := range local {
		cc = lowerKeys(cc)
		id, ok := chainConfigID(cc)
		pos, found := positions[id]
		if !ok || !found {
			merged = append(merged, cc)
			continue
		}
		if err := mergo.Merge(&cc, merged[pos]); err != nil {
			return nil, err
		}
		merged[pos] = cc
	}

	for _, cc := range merged {
		if cc["type"] == "" || cc["type"] == nil {
			return nil, fmt.Errorf("chain 'type' must be provided for every configured chain")
		}
	}
	return merged, nil
}

// lowerKeys matches the key casing viper produces for file configs so the
// same setting from different sources lands on one key
func lowerKeys(cc map[string]interface{}) map[string]interface{} {
	lowered := make(map[string]interface{}, len(cc))
	for k, v := range cc {
		lowered[strings.ToLower(k)] = v
	}
	return lowered
}

// chainConfigID normalizes the id of a raw chain config; JSON decodes it as
// float64 while programmatic configs carry ints
func chainConfigID(cc map[string]interface{}) (string, bool) {
	id, ok := cc["id"]
	if !ok || id == nil {
		return "", false
	}
	return fmt.Sprint(id), true
}

// validateWalletType rejects wallet types no configured chain can serve
func validateWalletType(walletType string, registry *chain.Registry) error {
	switch walletType {
	case bridge.WalletSelect, bridge.WalletUnset:
		return nil
	}

	chainType := chain.ChainType(walletType)
	if !chainType.Valid() {
		return fmt.Errorf("unknown wallet type %q", walletType)
	}
	for _, c := range registry.Chains() {
		if c.Type == chainType {
			return nil
		}
	}
	return fmt.Errorf("wallet type %s matches no configured chain", walletType)
}
