// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package bridge

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	WalletSelect = "select"
	WalletUnset  = "unset"
)

type BridgeConfig struct {
	OpenTelemetryCollectorURL string
	LogLevel                  zerolog.Level
	LogFile                   string
	WalletType                string
	HistoryPath               string
}

type RawBridgeConfig struct {
	OpenTelemetryCollectorURL string `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	LogLevel                  string `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string `mapstructure:"LogFile" json:"logFile"`
	WalletType                string `mapstructure:"WalletType" json:"walletType" default:"select"`
	HistoryPath               string `mapstructure:"HistoryPath" json:"historyPath" default:"./history"`
}

// Validate checks the wallet type; chain technology names are validated
// against the chain configs by the caller
func (c *RawBridgeConfig) Validate() error {
	if c.WalletType == "" {
		return fmt.Errorf("wallet type must be %s, %s or a chain type", WalletSelect, WalletUnset)
	}
	return nil
}

// NewBridgeConfig parses RawBridgeConfig into BridgeConfig
func NewBridgeConfig(rawConfig RawBridgeConfig) (BridgeConfig, error) {
	config := BridgeConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel
	config.LogFile = rawConfig.LogFile
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	config.WalletType = rawConfig.WalletType
	config.HistoryPath = rawConfig.HistoryPath
	return config, nil
}
