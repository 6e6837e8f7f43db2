// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate"
	"github.com/ChainSafe/chainbridge-transfer/config"
	"github.com/ChainSafe/chainbridge-transfer/config/bridge"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
	"github.com/ChainSafe/chainbridge-transfer/logger"
	"github.com/ChainSafe/chainbridge-transfer/lvldb"
	"github.com/ChainSafe/chainbridge-transfer/metrics"
	"github.com/ChainSafe/chainbridge-transfer/orchestrator"
	"github.com/ChainSafe/chainbridge-transfer/store"
)

// Modules returns the adaptor constructors of every supported chain type
func Modules() map[chain.ChainType]adaptor.ChainModule {
	return map[chain.ChainType]adaptor.ChainModule{
		chain.EVMType:       evm.Module(),
		chain.SubstrateType: substrate.Module(),
	}
}

// App is the wired transfer client
type App struct {
	Config       *config.Config
	Registry     *chain.Registry
	Store        *store.TransferStore
	Orchestrator *orchestrator.Orchestrator

	closers []func(ctx context.Context) error
}

// LoadConfig reads configuration the way the flags ask for: shared chains
// from --config-url, then either CHB_ variables or the JSON file in --config
func LoadConfig() (*config.Config, error) {
	var err error
	configuration := &config.Config{}

	if configURL := viper.GetString(config.ConfigURLFlagName); configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL, configuration)
		if err != nil {
			return nil, err
		}
	}

	configFlag := viper.GetString(config.ConfigFlagName)
	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV(configuration)
	}
	return config.GetConfigFromFile(configFlag, configuration)
}

// NewApp loads configuration, configures logging and builds the history
// store, metrics and an orchestrator over every configured chain
func NewApp(ctx context.Context) (*App, error) {
	configuration, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	a := &App{Config: configuration}
	streams := []io.Writer{os.Stdout}
	if configuration.BridgeConfig.LogFile != "" {
		f, err := logger.OpenLogFile(configuration.BridgeConfig.LogFile)
		if err != nil {
			return nil, err
		}
		streams = append(streams, f)
		a.closers = append(a.closers, func(context.Context) error { return f.Close() })
	}
	logger.ConfigureLogger(configuration.BridgeConfig.LogLevel, streams...)
	log.Debug().Int("chains", len(configuration.ChainConfigs)).Msg("Successfully loaded configuration")

	a.Registry, err = configuration.Registry()
	if err != nil {
		return nil, err
	}

	historyPath := configuration.BridgeConfig.HistoryPath
	if path := viper.GetString(config.HistoryFlagName); path != "" {
		historyPath = path
	}
	db, err := lvldb.NewLvlDB(historyPath)
	if err != nil {
		return nil, err
	}
	a.Store = store.NewTransferStore(db)

	opts := []orchestrator.Option{orchestrator.WithRecorder(a.Store)}
	if url := configuration.BridgeConfig.OpenTelemetryCollectorURL; url != "" {
		meter, shutdown, err := metrics.DefaultMeter(ctx, url)
		if err != nil {
			return nil, err
		}
		transferMetrics, err := metrics.NewTransferMetrics(meter)
		if err != nil {
			return nil, err
		}
		opts = append(opts, orchestrator.WithMetrics(transferMetrics))
		a.closers = append(a.closers, shutdown)
	}

	a.Orchestrator = orchestrator.NewOrchestrator(a.Registry, Modules(), opts...)
	if err := a.Orchestrator.SetWalletType(walletType(configuration.BridgeConfig.WalletType)); err != nil {
		return nil, err
	}
	a.Orchestrator.Start(ctx)
	return a, nil
}

// Close releases the orchestrator adaptors, flushes metrics and closes the log file
func (a *App) Close(ctx context.Context) {
	if a.Orchestrator != nil {
		a.Orchestrator.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			fmt.Fprintf(os.Stderr, "failed closing app: %s\n", err)
		}
	}
}

func walletType(raw string) orchestrator.WalletType {
	switch raw {
	case bridge.WalletSelect:
		return orchestrator.WalletSelect
	case bridge.WalletUnset:
		return orchestrator.WalletUnset
	default:
		return orchestrator.ChainWallet(chain.ChainType(raw))
	}
}
