// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"
)

// Registry is the read-only set of configured chains, kept in configuration order
type Registry struct {
	chains []*ChainDescriptor
	byID   map[uint8]*ChainDescriptor
}

func NewRegistry(descriptors []*ChainDescriptor) (*Registry, error) {
	r := &Registry{
		chains: make([]*ChainDescriptor, 0, len(descriptors)),
		byID:   make(map[uint8]*ChainDescriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		if _, ok := r.byID[d.ChainID]; ok {
			return nil, fmt.Errorf("duplicate chain id %d", d.ChainID)
		}
		r.byID[d.ChainID] = d
		r.chains = append(r.chains, d)
	}
	return r, nil
}

// NewRegistryFromConfig decodes every raw chain config into a descriptor
func NewRegistryFromConfig(chainConfigs []map[string]interface{}) (*Registry, error) {
	descriptors := make([]*ChainDescriptor, 0, len(chainConfigs))
	for _, cc := range chainConfigs {
		d, err := NewChainDescriptor(cc)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return NewRegistry(descriptors)
}

func (r *Registry) Chain(id uint8) (*ChainDescriptor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// Chains returns configured chains in configuration order
func (r *Registry) Chains() []*ChainDescriptor {
	chains := make([]*ChainDescriptor, len(r.chains))
	copy(chains, r.chains)
	return chains
}

func (r *Registry) Len() int {
	return len(r.chains)
}
