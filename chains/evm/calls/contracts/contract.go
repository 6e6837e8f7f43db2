// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/rs/zerolog/log"
)

// Contract is a thin typed layer over a bound go-ethereum contract
type Contract struct {
	address common.Address
	abi     abi.ABI
	bound   *bind.BoundContract
}

func NewContract(address common.Address, contractABI string, backend bind.ContractBackend) Contract {
	a, _ := abi.JSON(strings.NewReader(contractABI))
	return Contract{
		address: address,
		abi:     a,
		bound:   bind.NewBoundContract(address, a, backend, backend, backend),
	}
}

func (c *Contract) Address() common.Address {
	return c.address
}

// CallBigInt calls a view method returning a single uint256
func (c *Contract) CallBigInt(ctx context.Context, method string, params ...interface{}) (*big.Int, error) {
	var out []interface{}
	err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, params...)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s returned no values", method)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *Contract) ExecuteTransaction(opts *bind.TransactOpts, method string, params ...interface{}) (*ethTypes.Transaction, error) {
	tx, err := c.bound.Transact(opts, method, params...)
	if err != nil {
		log.Error().
			Str("contract", c.address.Hex()).
			Err(err).
			Msgf("%s transaction failed", method)
		return nil, err
	}
	log.Debug().
		Str("txHash", tx.Hash().Hex()).
		Str("contract", c.address.Hex()).
		Msgf("%s sent", method)
	return tx, nil
}
