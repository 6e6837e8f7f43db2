// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/pallet"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

// DefaultSS58Format is the generic substrate address prefix
const DefaultSS58Format uint8 = 42

type SubstrateConfig struct {
	ChainID       uint8
	Name          string
	Endpoint      string
	Key           string
	DepositMethod string
	SS58Format    uint8
}

// NewSubstrateConfig validates the substrate specific fields of descriptor
func NewSubstrateConfig(descriptor *chain.ChainDescriptor) (*SubstrateConfig, error) {
	if descriptor.Type != chain.SubstrateType {
		return nil, fmt.Errorf("chain %d is of type %s, not %s", descriptor.ChainID, descriptor.Type, chain.SubstrateType)
	}
	method := descriptor.DepositMethod
	if method == "" {
		method = pallet.DefaultDepositMethod
	}
	if parts := strings.Split(method, "."); len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("depositMethod %q for chain %d is not in Pallet.call form", method, descriptor.ChainID)
	}

	format := DefaultSS58Format
	if descriptor.NetworkID != 0 {
		if descriptor.NetworkID > 63 {
			return nil, fmt.Errorf("unsupported ss58 network %d for chain %d", descriptor.NetworkID, descriptor.ChainID)
		}
		format = uint8(descriptor.NetworkID)
	}

	return &SubstrateConfig{
		ChainID:       descriptor.ChainID,
		Name:          descriptor.Name,
		Endpoint:      descriptor.Endpoint,
		Key:           descriptor.Key,
		DepositMethod: method,
		SS58Format:    format,
	}, nil
}
