// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package connection

import (
	"sync"

	"github.com/centrifuge/go-substrate-rpc-client/v4/client"
	"github.com/centrifuge/go-substrate-rpc-client/v4/rpc"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/events"
)

type Connection struct {
	client.Client
	*rpc.RPC
	meta        types.Metadata // Latest chain metadata
	metaLock    sync.RWMutex   // Lock metadata for updates, allows concurrent reads
	GenesisHash types.Hash     // Chain genesis hash
}

func NewSubstrateConnection(url string) (*Connection, error) {
	c := &Connection{}
	client, err := client.Connect(url)
	if err != nil {
		return nil, err
	}
	rpc, err := rpc.NewRPC(client)
	if err != nil {
		client.Close()
		return nil, err
	}
	c.Client = client
	c.RPC = rpc

	// Fetch metadata
	meta, err := c.RPC.State.GetMetadataLatest()
	if err != nil {
		client.Close()
		return nil, err
	}
	c.meta = *meta
	// Fetch genesis hash
	genesisHash, err := c.RPC.Chain.GetBlockHash(0)
	if err != nil {
		client.Close()
		return nil, err
	}
	c.GenesisHash = genesisHash
	log.Debug().Str("endpoint", url).Str("genesis", genesisHash.Hex()).Msg("Connected to substrate node")
	return c, nil
}

func (c *Connection) GetMetadata() (meta types.Metadata) {
	c.metaLock.RLock()
	meta = c.meta
	c.metaLock.RUnlock()
	return meta
}

func (c *Connection) UpdateMetadata() error {
	c.metaLock.Lock()
	defer c.metaLock.Unlock()
	meta, err := c.RPC.State.GetMetadataLatest()
	if err != nil {
		return err
	}
	c.meta = *meta
	return nil
}

func (c *Connection) GetBlockEvents(hash types.Hash) (*events.Events, error) {
	meta := c.GetMetadata()
	key, err := types.CreateStorageKey(&meta, "System", "Events", nil)
	if err != nil {
		return nil, err
	}

	var raw types.EventRecordsRaw
	_, err = c.RPC.State.GetStorage(key, &raw, hash)
	if err != nil {
		return nil, err
	}
	evts := &events.Events{}
	err = raw.DecodeEventRecords(&meta, evts)
	if err != nil {
		return nil, err
	}
	return evts, nil
}
