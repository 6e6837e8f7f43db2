// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package orchestrator

import (
	"context"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
	"github.com/ChainSafe/chainbridge-transfer/transfer"
)

// SetWalletType recomputes the home chain candidates. A selected home chain
// that is no longer a candidate is released together with the destination.
func (o *Orchestrator) SetWalletType(walletType WalletType) error {
	o.mu.Lock()
	if o.machine.Status() != transfer.StatusIdle && !o.machine.Status().Terminal() {
		o.mu.Unlock()
		return ErrTransferInProgress
	}

	o.walletType = walletType
	o.homeChains = o.homeCandidates(walletType)

	var released adaptor.HomeAdaptor
	if o.home != nil && !containsChain(o.homeChains, o.home.ChainID) {
		released = o.homeAdaptor
		o.homeAdaptor = nil
		o.home = nil
		o.destinations = nil
		o.destination = nil
	}
	o.notify()
	o.mu.Unlock()

	o.log.Debug().Str("wallet", string(walletType)).Int("homeChains", len(o.HomeChains())).Msg("Wallet type set")
	if released != nil {
		released.Close()
	}
	return nil
}

func (o *Orchestrator) WalletType() WalletType {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.walletType
}

// HomeChains returns the chains a deposit can currently start from
func (o *Orchestrator) HomeChains() []*chain.ChainDescriptor {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.homeChains)
}

// DestinationChains returns the chains reachable from the selected home chain
func (o *Orchestrator) DestinationChains() []*chain.ChainDescriptor {
	o.mu.Lock()
	defer o.mu.Unlock()
	return slices.Clone(o.destinations)
}

func (o *Orchestrator) HomeChain() *chain.ChainDescriptor {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.home
}

func (o *Orchestrator) DestinationChain() *chain.ChainDescriptor {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.destination
}

// HomeAdaptor returns the adaptor of the selected home chain or nil
func (o *Orchestrator) HomeAdaptor() adaptor.HomeAdaptor {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.homeAdaptor
}

// SelectHomeChain binds the home adaptor of chainID and recomputes the
// destination chains. A destination that is no longer reachable is cleared.
func (o *Orchestrator) SelectHomeChain(chainID uint8) error {
	o.mu.Lock()
	if o.machine.Status() != transfer.StatusIdle && !o.machine.Status().Terminal() {
		o.mu.Unlock()
		return ErrTransferInProgress
	}
	idx := slices.IndexFunc(o.homeChains, func(c *chain.ChainDescriptor) bool { return c.ChainID == chainID })
	if idx == -1 {
		o.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownChain, chainID)
	}
	if o.home != nil && o.home.ChainID == chainID {
		o.mu.Unlock()
		return nil
	}

	descriptor := o.homeChains[idx]
	home, err := o.modules[descriptor.Type].NewHome(descriptor)
	if err != nil {
		o.mu.Unlock()
		return fmt.Errorf("failed creating home adaptor for chain %d: %w", chainID, err)
	}

	released := o.homeAdaptor
	o.home = descriptor
	o.homeAdaptor = home
	o.destinations = o.destinationCandidates(descriptor)
	if o.destination != nil && !containsChain(o.destinations, o.destination.ChainID) {
		o.destination = nil
	}
	o.notify()
	o.mu.Unlock()

	o.log.Info().Uint8("homeChain", chainID).Str("name", descriptor.Name).Msg("Home chain selected")
	if released != nil {
		released.Close()
	}
	return nil
}

// SelectDestinationChain records the destination of the next deposit. The
// destination adaptor subscribes only once the deposit has a nonce.
func (o *Orchestrator) SelectDestinationChain(chainID uint8) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.home == nil {
		return ErrHomeChainNotSelected
	}
	if o.machine.State().Nonce != nil || o.machine.Status() == transfer.StatusInitializing {
		return ErrTransferInProgress
	}
	idx := slices.IndexFunc(o.destinations, func(c *chain.ChainDescriptor) bool { return c.ChainID == chainID })
	if idx == -1 {
		return fmt.Errorf("%w: %d", ErrInvalidDestinationChain, chainID)
	}

	o.destination = o.destinations[idx]
	o.notify()
	o.log.Info().Uint8("destinationChain", chainID).Str("name", o.destination.Name).Msg("Destination chain selected")
	return nil
}

// Connect establishes connectivity of the selected home adaptor
func (o *Orchestrator) Connect(ctx context.Context) error {
	o.mu.Lock()
	home := o.homeAdaptor
	o.mu.Unlock()

	if home == nil {
		return ErrHomeChainNotSelected
	}
	if err := home.Connect(ctx); err != nil {
		return err
	}

	o.mu.Lock()
	o.notify()
	o.mu.Unlock()
	return nil
}

// Wrapper returns the native wrapping capability of the home chain. Chains
// without a wrapper or without a configured wrapped asset are unsupported.
func (o *Orchestrator) Wrapper() (adaptor.Wrapper, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.homeAdaptor == nil {
		return nil, ErrHomeChainNotSelected
	}
	if _, ok := o.home.WrappedAsset(); !ok {
		return nil, ErrWrapperUnsupported
	}
	w := o.homeAdaptor.Wrapper()
	if w == nil {
		return nil, ErrWrapperUnsupported
	}
	return w, nil
}

// WrapAsset returns the wrapped native asset of the home chain
func (o *Orchestrator) WrapAsset() (*chain.AssetDescriptor, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.home == nil {
		return nil, ErrHomeChainNotSelected
	}
	asset, ok := o.home.WrappedAsset()
	if !ok {
		return nil, ErrWrapperUnsupported
	}
	return asset, nil
}

func (o *Orchestrator) homeCandidates(walletType WalletType) []*chain.ChainDescriptor {
	var candidates []*chain.ChainDescriptor
	for _, c := range o.registry.Chains() {
		if module, ok := o.modules[c.Type]; !ok || module.NewHome == nil {
			continue
		}
		switch walletType {
		case WalletUnset:
			continue
		case WalletSelect:
			candidates = append(candidates, c)
		default:
			if WalletType(c.Type) == walletType {
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}

// destinationCandidates is every other chain with a destination adaptor
func (o *Orchestrator) destinationCandidates(home *chain.ChainDescriptor) []*chain.ChainDescriptor {
	var candidates []*chain.ChainDescriptor
	for _, c := range o.registry.Chains() {
		if c.ChainID == home.ChainID {
			continue
		}
		if module, ok := o.modules[c.Type]; ok && module.NewDestination != nil {
			candidates = append(candidates, c)
		}
	}
	return candidates
}

func containsChain(chains []*chain.ChainDescriptor, chainID uint8) bool {
	return slices.ContainsFunc(chains, func(c *chain.ChainDescriptor) bool { return c.ChainID == chainID })
}
