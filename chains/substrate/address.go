// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package substrate

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

var ErrInvalidSS58 = errors.New("invalid ss58 address")

var ss58Prefix = []byte("SS58PRE")

const (
	accountLength  = 32
	checksumLength = 2
)

// DecodeAddress validates an SS58 encoded account and returns its 32 byte public key
func DecodeAddress(address string) ([]byte, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSS58, err)
	}

	var prefixLength int
	switch len(raw) {
	case 1 + accountLength + checksumLength:
		prefixLength = 1
	case 2 + accountLength + checksumLength:
		prefixLength = 2
	default:
		return nil, fmt.Errorf("%w: unexpected length %d", ErrInvalidSS58, len(raw))
	}
	if prefixLength == 1 && raw[0] > 63 {
		return nil, fmt.Errorf("%w: reserved prefix %d", ErrInvalidSS58, raw[0])
	}

	body := raw[:len(raw)-checksumLength]
	if !bytes.Equal(checksum(body), raw[len(raw)-checksumLength:]) {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidSS58)
	}
	return append([]byte{}, body[prefixLength:]...), nil
}

// EncodeAddress renders a 32 byte public key for a simple (< 64) network prefix
func EncodeAddress(publicKey []byte, format uint8) (string, error) {
	if len(publicKey) != accountLength {
		return "", fmt.Errorf("public key must be %d bytes, got %d", accountLength, len(publicKey))
	}
	if format > 63 {
		return "", fmt.Errorf("unsupported ss58 format %d", format)
	}
	body := append([]byte{format}, publicKey...)
	return base58.Encode(append(body, checksum(body)...)), nil
}

func checksum(body []byte) []byte {
	h, _ := blake2b.New512(nil)
	h.Write(ss58Prefix)
	h.Write(body)
	return h.Sum(nil)[:checksumLength]
}
