// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/chainbridge-transfer/adaptor"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/contracts/deposit"
	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/events"
	"github.com/ChainSafe/chainbridge-transfer/config/chain"
)

var (
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrDepositLogMissing   = errors.New("deposit receipt has no Deposit log")
)

// HomeAdaptor deposits from an EVM chain running the ChainBridge contracts
type HomeAdaptor struct {
	descriptor *chain.ChainDescriptor
	config     *EVMConfig
	dial       Dialer
	parser     *events.Parser
	log        zerolog.Logger

	mu   sync.RWMutex
	conn *Connection
}

func NewHomeAdaptor(descriptor *chain.ChainDescriptor, dial Dialer) (*HomeAdaptor, error) {
	config, err := NewEVMConfig(descriptor)
	if err != nil {
		return nil, err
	}
	return &HomeAdaptor{
		descriptor: descriptor,
		config:     config,
		dial:       dial,
		parser:     events.NewParser(),
		log:        log.With().Str("component", "evm-home").Uint8("chain", descriptor.ChainID).Logger(),
	}, nil
}

func (h *HomeAdaptor) Connect(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conn != nil {
		return nil
	}
	conn, err := h.dial(ctx, h.config)
	if err != nil {
		return fmt.Errorf("failed connecting to %s: %w", h.config.Name, err)
	}
	h.conn = conn
	h.log.Info().Str("address", conn.Client.From().Hex()).Msg("Connected")
	return nil
}

func (h *HomeAdaptor) Connected() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.conn != nil
}

func (h *HomeAdaptor) Address() string {
	conn, err := h.connection()
	if err != nil {
		return ""
	}
	return conn.Client.From().Hex()
}

func (h *HomeAdaptor) NativeBalance(ctx context.Context) (*big.Int, error) {
	conn, err := h.connection()
	if err != nil {
		return nil, err
	}
	return conn.Client.NativeBalance(ctx)
}

func (h *HomeAdaptor) TokenBalance(ctx context.Context, asset *chain.AssetDescriptor) (*big.Int, error) {
	conn, err := h.connection()
	if err != nil {
		return nil, err
	}
	return conn.Token(common.HexToAddress(asset.Address)).BalanceOf(ctx, conn.Client.From())
}

func (h *HomeAdaptor) BridgeFee(ctx context.Context) (*big.Int, error) {
	conn, err := h.connection()
	if err != nil {
		return nil, err
	}
	return conn.Bridge.Fee(ctx)
}

// Deposit approves the ERC20 handler when needed, submits the bridge deposit
// and reads the assigned nonce from the mined receipt
func (h *HomeAdaptor) Deposit(ctx context.Context, req adaptor.DepositRequest) (*adaptor.DepositResult, error) {
	conn, err := h.connection()
	if err != nil {
		return nil, err
	}

	amount := req.BaseUnits()
	if err := h.approve(ctx, conn, req.Asset, amount); err != nil {
		return nil, err
	}

	fee, err := conn.Bridge.Fee(ctx)
	if err != nil {
		return nil, h.submissionError("", fmt.Errorf("failed fetching bridge fee: %w", err))
	}
	opts, err := conn.Client.TransactOpts(ctx, fee)
	if err != nil {
		return nil, h.submissionError("", err)
	}

	data := deposit.ConstructErc20DepositData(req.RecipientData, amount)
	tx, err := conn.Bridge.Deposit(opts, req.DestinationChainID, req.Asset.ResourceID, data)
	if err != nil {
		return nil, h.submissionError("", err)
	}
	h.log.Info().
		Str("txHash", tx.Hash().Hex()).
		Uint8("destination", req.DestinationChainID).
		Str("amount", req.Amount.String()).
		Msg("Deposit submitted")

	receipt, err := h.waitSuccessful(ctx, conn, tx)
	if err != nil {
		return nil, err
	}
	for _, l := range receipt.Logs {
		if l == nil || l.Address != h.config.Bridge || len(l.Topics) == 0 || l.Topics[0] != events.DepositSig.GetTopic() {
			continue
		}
		d, err := h.parser.ParseDeposit(*l)
		if err != nil {
			return nil, h.submissionError(tx.Hash().Hex(), err)
		}
		h.log.Info().Str("txHash", tx.Hash().Hex()).Uint64("nonce", d.DepositNonce).Msg("Deposit mined")
		return &adaptor.DepositResult{
			TxHash: tx.Hash().Hex(),
			Nonce:  d.DepositNonce,
		}, nil
	}
	return nil, h.submissionError(tx.Hash().Hex(), ErrDepositLogMissing)
}

// Wrapper returns nil when no native wrapped token is configured
func (h *HomeAdaptor) Wrapper() adaptor.Wrapper {
	conn, err := h.connection()
	if err != nil {
		return nil
	}
	asset, ok := h.descriptor.WrappedAsset()
	if !ok {
		return nil
	}
	return NewWrapper(h.descriptor.ChainID, conn.Client, conn.Wrapper(common.HexToAddress(asset.Address)))
}

func (h *HomeAdaptor) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.conn == nil {
		return
	}
	h.conn.Client.Close()
	h.conn = nil
}

func (h *HomeAdaptor) approve(ctx context.Context, conn *Connection, asset *chain.AssetDescriptor, amount *big.Int) error {
	token := conn.Token(common.HexToAddress(asset.Address))
	allowance, err := token.Allowance(ctx, conn.Client.From(), h.config.Erc20Handler)
	if err != nil {
		return h.submissionError("", fmt.Errorf("failed fetching allowance: %w", err))
	}
	if allowance.Cmp(amount) >= 0 {
		return nil
	}

	opts, err := conn.Client.TransactOpts(ctx, nil)
	if err != nil {
		return h.submissionError("", err)
	}
	tx, err := token.Approve(opts, h.config.Erc20Handler, amount)
	if err != nil {
		return h.submissionError("", err)
	}
	h.log.Debug().Str("txHash", tx.Hash().Hex()).Str("token", asset.Symbol).Msg("Approving erc20 handler")
	_, err = h.waitSuccessful(ctx, conn, tx)
	return err
}

func (h *HomeAdaptor) waitSuccessful(ctx context.Context, conn *Connection, tx *ethTypes.Transaction) (*ethTypes.Receipt, error) {
	receipt, err := conn.Client.WaitMined(ctx, tx)
	if err != nil {
		return nil, h.submissionError(tx.Hash().Hex(), err)
	}
	if receipt.Status != ethTypes.ReceiptStatusSuccessful {
		return nil, h.submissionError(tx.Hash().Hex(), ErrTransactionReverted)
	}
	return receipt, nil
}

func (h *HomeAdaptor) submissionError(txHash string, err error) error {
	return &adaptor.ChainSubmissionError{
		ChainID: h.descriptor.ChainID,
		TxHash:  txHash,
		Err:     err,
	}
}

func (h *HomeAdaptor) connection() (*Connection, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.conn == nil {
		return nil, adaptor.ErrNotConnected
	}
	return h.conn, nil
}
