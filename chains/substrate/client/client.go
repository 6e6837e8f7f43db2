// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/blake2b"

	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/connection"
	"github.com/ChainSafe/chainbridge-transfer/chains/substrate/events"
)

var (
	ErrExtrinsicDropped = errors.New("extrinsic dropped")
	ErrExtrinsicInvalid = errors.New("extrinsic invalid")
)

// Inclusion describes the block an extrinsic landed in
type Inclusion struct {
	BlockHash      types.Hash
	ExtrinsicHash  types.Hash
	ExtrinsicIndex uint32
	Events         *events.Events
}

type SubstrateClient struct {
	conn      *connection.Connection
	key       signature.KeyringPair // Keyring used for signing
	nonceLock sync.Mutex            // Locks nonce for updates
	nonce     types.U32             // Latest account nonce
}

func NewSubstrateClient(conn *connection.Connection, key signature.KeyringPair) *SubstrateClient {
	return &SubstrateClient{
		conn: conn,
		key:  key,
	}
}

// Address is the SS58 address of the signing key
func (c *SubstrateClient) Address() string {
	return c.key.Address
}

func (c *SubstrateClient) PublicKey() []byte {
	return c.key.PublicKey
}

func (c *SubstrateClient) FreeBalance() (*big.Int, error) {
	acct, exists, err := c.account()
	if err != nil {
		return nil, err
	}
	if !exists || acct.Data.Free.Int == nil {
		return big.NewInt(0), nil
	}
	return new(big.Int).Set(acct.Data.Free.Int), nil
}

func (c *SubstrateClient) Close() {
	c.conn.Close()
}

// SubmitAndWatch constructs, signs and submits an extrinsic calling method
// with args and blocks until it is included in a block.
// All args are passed directly into GSRPC. GSRPC types are recommended to avoid serialization inconsistencies.
func (c *SubstrateClient) SubmitAndWatch(ctx context.Context, method string, args ...interface{}) (*Inclusion, error) {
	log.Debug().Msgf("Submitting substrate call... method %s, sender %s", method, c.key.Address)

	meta := c.conn.GetMetadata()
	call, err := types.NewCall(&meta, method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to construct call: %w", err)
	}
	ext := types.NewExtrinsic(call)

	rv, err := c.conn.RPC.State.GetRuntimeVersionLatest()
	if err != nil {
		return nil, err
	}

	c.nonceLock.Lock()
	nonce, err := c.nextNonce()
	if err != nil {
		c.nonceLock.Unlock()
		return nil, err
	}
	o := types.SignatureOptions{
		BlockHash:          c.conn.GenesisHash,
		Era:                types.ExtrinsicEra{IsMortalEra: false},
		GenesisHash:        c.conn.GenesisHash,
		Nonce:              types.NewUCompactFromUInt(uint64(nonce)),
		SpecVersion:        rv.SpecVersion,
		Tip:                types.NewUCompactFromUInt(0),
		TransactionVersion: rv.TransactionVersion,
	}
	err = ext.Sign(c.key, o)
	if err != nil {
		c.nonceLock.Unlock()
		return nil, err
	}
	sub, err := c.conn.RPC.Author.SubmitAndWatchExtrinsic(ext)
	if err != nil {
		c.nonceLock.Unlock()
		return nil, fmt.Errorf("submission of extrinsic failed: %w", err)
	}
	c.nonce = nonce + 1
	c.nonceLock.Unlock()
	defer sub.Unsubscribe()

	encoded, err := codec.Encode(ext)
	if err != nil {
		return nil, err
	}
	extHash := types.NewHash(blake2b256(encoded))
	log.Debug().Str("extrinsic", extHash.Hex()).Msgf("Extrinsic %s submitted", method)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case err := <-sub.Err():
			return nil, err
		case status := <-sub.Chan():
			switch {
			case status.IsInBlock:
				return c.inclusion(status.AsInBlock, extHash, encoded)
			case status.IsFinalized:
				return c.inclusion(status.AsFinalized, extHash, encoded)
			case status.IsDropped:
				return nil, ErrExtrinsicDropped
			case status.IsInvalid:
				return nil, ErrExtrinsicInvalid
			}
		}
	}
}

func (c *SubstrateClient) inclusion(blockHash types.Hash, extHash types.Hash, encoded []byte) (*Inclusion, error) {
	block, err := c.conn.RPC.Chain.GetBlock(blockHash)
	if err != nil {
		return nil, err
	}
	index := -1
	for i, x := range block.Block.Extrinsics {
		enc, err := codec.Encode(x)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(enc, encoded) {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("extrinsic %s not found in block %s", extHash.Hex(), blockHash.Hex())
	}

	evts, err := c.conn.GetBlockEvents(blockHash)
	if err != nil {
		return nil, err
	}
	return &Inclusion{
		BlockHash:      blockHash,
		ExtrinsicHash:  extHash,
		ExtrinsicIndex: uint32(index),
		Events:         evts,
	}, nil
}

func (c *SubstrateClient) account() (*types.AccountInfo, bool, error) {
	meta := c.conn.GetMetadata()
	key, err := types.CreateStorageKey(&meta, "System", "Account", c.key.PublicKey, nil)
	if err != nil {
		return nil, false, err
	}

	var acct types.AccountInfo
	exists, err := c.conn.RPC.State.GetStorageLatest(key, &acct)
	if err != nil {
		return nil, false, err
	}
	return &acct, exists, nil
}

func (c *SubstrateClient) nextNonce() (types.U32, error) {
	acct, exists, err := c.account()
	if err != nil {
		return 0, err
	}

	var latestNonce types.U32
	if exists {
		latestNonce = acct.Nonce
	}
	if latestNonce < c.nonce {
		return c.nonce, nil
	}
	return latestNonce, nil
}

func blake2b256(data []byte) []byte {
	h := blake2b.Sum256(data)
	return h[:]
}
