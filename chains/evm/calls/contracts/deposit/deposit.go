// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package deposit

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// ConstructErc20DepositData encodes amount (32 bytes) ‖ len(recipient) (32 bytes) ‖ recipient
func ConstructErc20DepositData(destRecipient []byte, amount *big.Int) []byte {
	var data []byte
	data = append(data, math.PaddedBigBytes(amount, 32)...)
	data = append(data, math.PaddedBigBytes(big.NewInt(int64(len(destRecipient))), 32)...)
	data = append(data, destRecipient...)
	return data
}

// ParseErc20DepositData is the inverse of ConstructErc20DepositData
func ParseErc20DepositData(data []byte) (*big.Int, []byte, bool) {
	if len(data) < 64 {
		return nil, nil, false
	}
	amount := new(big.Int).SetBytes(data[:32])
	length := new(big.Int).SetBytes(data[32:64])
	if !length.IsInt64() || int64(len(data)-64) != length.Int64() {
		return nil, nil, false
	}
	return amount, common.CopyBytes(data[64:]), true
}
