// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/ChainSafe/chainbridge-transfer/chains/evm/calls/consts"
)

// Parser decodes bridge contract logs
type Parser struct {
	abi abi.ABI
}

func NewParser() *Parser {
	a, _ := abi.JSON(strings.NewReader(consts.BridgeABI))
	return &Parser{abi: a}
}

func (p *Parser) ParseDeposit(l ethTypes.Log) (*Deposit, error) {
	var d Deposit
	if err := p.parse(&d, "Deposit", DepositSig, l); err != nil {
		return nil, err
	}
	return &d, nil
}

func (p *Parser) ParseProposalEvent(l ethTypes.Log) (*ProposalEvent, error) {
	var e ProposalEvent
	if err := p.parse(&e, "ProposalEvent", ProposalEventSig, l); err != nil {
		return nil, err
	}
	return &e, nil
}

func (p *Parser) ParseProposalVote(l ethTypes.Log) (*ProposalVote, error) {
	var v ProposalVote
	if err := p.parse(&v, "ProposalVote", ProposalVoteSig, l); err != nil {
		return nil, err
	}
	return &v, nil
}

func (p *Parser) parse(out interface{}, name string, sig EventSig, l ethTypes.Log) error {
	event, ok := p.abi.Events[name]
	if !ok {
		return fmt.Errorf("event %s missing from bridge ABI", name)
	}
	if len(l.Topics) == 0 || l.Topics[0] != sig.GetTopic() {
		return fmt.Errorf("log %s is not a %s event", l.TxHash.Hex(), name)
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if len(l.Topics)-1 != len(indexed) {
		return fmt.Errorf("%s log has %d indexed topics, expected %d", name, len(l.Topics)-1, len(indexed))
	}
	if err := abi.ParseTopics(out, indexed, l.Topics[1:]); err != nil {
		return err
	}
	if len(l.Data) > 0 {
		return p.abi.UnpackIntoInterface(out, name, l.Data)
	}
	return nil
}

// ProposalFilter selects proposal events and votes for one deposit on the
// destination bridge
func ProposalFilter(bridge common.Address, originChainID uint8, depositNonce uint64) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		Addresses: []common.Address{bridge},
		Topics: [][]common.Hash{
			{ProposalEventSig.GetTopic(), ProposalVoteSig.GetTopic()},
			{common.BigToHash(big.NewInt(int64(originChainID)))},
			{common.BigToHash(new(big.Int).SetUint64(depositNonce))},
		},
	}
}
