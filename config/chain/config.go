// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mitchellh/mapstructure"
)

type ChainType string

const (
	EVMType       ChainType = "Ethereum"
	SubstrateType ChainType = "Substrate"
)

func (t ChainType) Valid() bool {
	switch t {
	case EVMType, SubstrateType:
		return true
	default:
		return false
	}
}

// ResourceID correlates a logical asset across chains
type ResourceID [32]byte

func (r ResourceID) Hex() string {
	return hexutil.Encode(r[:])
}

// ParseResourceID decodes a 0x prefixed hex string into a ResourceID.
// Shorter inputs are left padded.
func ParseResourceID(raw string) (ResourceID, error) {
	var rID ResourceID
	b, err := hexutil.Decode(raw)
	if err != nil {
		return rID, fmt.Errorf("invalid resource id %s: %w", raw, err)
	}
	if len(b) > len(rID) {
		return rID, fmt.Errorf("resource id %s longer than 32 bytes", raw)
	}
	copy(rID[len(rID)-len(b):], b)
	return rID, nil
}

type AssetDescriptor struct {
	Address              string
	Name                 string
	Symbol               string
	AssetBase            string
	Decimals             uint8
	ResourceID           ResourceID
	IsNativeWrappedToken bool
	DisableTransfer      bool
}

type ChainDescriptor struct {
	ChainID           uint8
	NetworkID         uint64
	Name              string
	Type              ChainType
	BridgeAddress     string
	HandlerAddress    string
	Endpoint          string
	NativeTokenSymbol string
	RelayerThreshold  int
	BlockExplorer     string
	GasLimit          uint64
	DefaultGasPrice   uint64
	Key               string
	DepositMethod     string
	Assets            []*AssetDescriptor
}

type RawAssetConfig struct {
	Address              string `mapstructure:"address"`
	Name                 string `mapstructure:"name"`
	Symbol               string `mapstructure:"symbol"`
	AssetBase            string `mapstructure:"assetBase"`
	Decimals             uint8  `mapstructure:"decimals" default:"18"`
	ResourceID           string `mapstructure:"resourceId"`
	IsNativeWrappedToken bool   `mapstructure:"isNativeWrappedToken"`
	DisableTransfer      bool   `mapstructure:"disableTransfer"`
}

type RawChainConfig struct {
	ChainID           *uint8           `mapstructure:"id"`
	NetworkID         uint64           `mapstructure:"networkId"`
	Name              string           `mapstructure:"name"`
	Type              string           `mapstructure:"type"`
	Bridge            string           `mapstructure:"bridge"`
	Erc20Handler      string           `mapstructure:"erc20Handler"`
	Endpoint          string           `mapstructure:"endpoint"`
	NativeTokenSymbol string           `mapstructure:"nativeTokenSymbol"`
	RelayerThreshold  int              `mapstructure:"relayerThreshold" default:"1"`
	BlockExplorer     string           `mapstructure:"blockExplorer"`
	GasLimit          uint64           `mapstructure:"gasLimit" default:"300000"`
	DefaultGasPrice   uint64           `mapstructure:"defaultGasPrice"`
	Key               string           `mapstructure:"key"`
	DepositMethod     string           `mapstructure:"depositMethod" default:"Example.transfer_native"`
	Tokens            []RawAssetConfig `mapstructure:"tokens"`
}

func (c *RawChainConfig) Validate() error {
	if c.ChainID == nil {
		return fmt.Errorf("required field chain.Id empty for chain %s", c.Name)
	}
	if !ChainType(c.Type).Valid() {
		return fmt.Errorf("unsupported chain type %q for chain %v", c.Type, *c.ChainID)
	}
	if c.Bridge == "" {
		return fmt.Errorf("required field chain.Bridge empty for chain %v", *c.ChainID)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %v", *c.ChainID)
	}
	if c.RelayerThreshold < 1 {
		return fmt.Errorf("relayerThreshold has to be >=1 for chain %v", *c.ChainID)
	}
	return nil
}

// NewChainDescriptor decodes and validates a ChainDescriptor from
// raw chain config
func NewChainDescriptor(chainConfig map[string]interface{}) (*ChainDescriptor, error) {
	var c RawChainConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	assets, err := newAssets(*c.ChainID, c.Tokens)
	if err != nil {
		return nil, err
	}

	return &ChainDescriptor{
		ChainID:           *c.ChainID,
		NetworkID:         c.NetworkID,
		Name:              c.Name,
		Type:              ChainType(c.Type),
		BridgeAddress:     c.Bridge,
		HandlerAddress:    c.Erc20Handler,
		Endpoint:          c.Endpoint,
		NativeTokenSymbol: c.NativeTokenSymbol,
		RelayerThreshold:  c.RelayerThreshold,
		BlockExplorer:     strings.TrimSuffix(c.BlockExplorer, "/"),
		GasLimit:          c.GasLimit,
		DefaultGasPrice:   c.DefaultGasPrice,
		Key:               c.Key,
		DepositMethod:     c.DepositMethod,
		Assets:            assets,
	}, nil
}

func newAssets(chainID uint8, rawAssets []RawAssetConfig) ([]*AssetDescriptor, error) {
	assets := make([]*AssetDescriptor, 0, len(rawAssets))
	resourceIDs := make(map[ResourceID]struct{})
	wrapped := 0
	for _, raw := range rawAssets {
		// slices decoded by mapstructure do not get defaults applied
		if err := defaults.Set(&raw); err != nil {
			return nil, err
		}
		if raw.Address == "" {
			return nil, fmt.Errorf("asset address empty for chain %v", chainID)
		}
		rID, err := ParseResourceID(raw.ResourceID)
		if err != nil {
			return nil, fmt.Errorf("asset %s on chain %v: %w", raw.Address, chainID, err)
		}
		if _, ok := resourceIDs[rID]; ok {
			return nil, fmt.Errorf("duplicate resource id %s on chain %v", rID.Hex(), chainID)
		}
		resourceIDs[rID] = struct{}{}
		if raw.IsNativeWrappedToken {
			wrapped++
		}

		assets = append(assets, &AssetDescriptor{
			Address:              raw.Address,
			Name:                 raw.Name,
			Symbol:               raw.Symbol,
			AssetBase:            raw.AssetBase,
			Decimals:             raw.Decimals,
			ResourceID:           rID,
			IsNativeWrappedToken: raw.IsNativeWrappedToken,
			DisableTransfer:      raw.DisableTransfer,
		})
	}
	if wrapped > 1 {
		return nil, fmt.Errorf("chain %v has more than one native wrapped token", chainID)
	}
	return assets, nil
}

// Asset finds an asset by contract address, compared case-insensitively
func (c *ChainDescriptor) Asset(address string) (*AssetDescriptor, bool) {
	for _, a := range c.Assets {
		if strings.EqualFold(a.Address, address) {
			return a, true
		}
	}
	return nil, false
}

// WrappedAsset returns the asset flagged as the wrapped form of the native token
func (c *ChainDescriptor) WrappedAsset() (*AssetDescriptor, bool) {
	for _, a := range c.Assets {
		if a.IsNativeWrappedToken {
			return a, true
		}
	}
	return nil, false
}

// TxURL returns block explorer link for the hash or empty string if no explorer is configured
func (c *ChainDescriptor) TxURL(hash string) string {
	if c.BlockExplorer == "" || hash == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s", c.BlockExplorer, hash)
}
