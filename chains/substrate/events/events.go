// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package events

import (
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
)

const (
	ExtrinsicFailedEvent   = "System.ExtrinsicFailed"
	FungibleTransferEvent  = "ChainBridge.FungibleTransfer"
	VoteForEvent           = "ChainBridge.VoteFor"
	VoteAgainstEvent       = "ChainBridge.VoteAgainst"
	ProposalApprovedEvent  = "ChainBridge.ProposalApproved"
	ProposalRejectedEvent  = "ChainBridge.ProposalRejected"
	ProposalSucceededEvent = "ChainBridge.ProposalSucceeded"
	ProposalFailedEvent    = "ChainBridge.ProposalFailed"
)

type EventFungibleTransfer struct {
	Phase        types.Phase
	Destination  types.U8
	DepositNonce types.U64
	ResourceId   types.Bytes32
	Amount       types.U256
	Recipient    types.Bytes
	Topics       []types.Hash
}

type EventNonFungibleTransfer struct {
	Phase        types.Phase
	Destination  types.U8
	DepositNonce types.U64
	ResourceId   types.Bytes32
	TokenId      types.Bytes
	Recipient    types.Bytes
	Metadata     types.Bytes
	Topics       []types.Hash
}

type EventGenericTransfer struct {
	Phase        types.Phase
	Destination  types.U8
	DepositNonce types.U64
	ResourceId   types.Bytes32
	Metadata     types.Bytes
	Topics       []types.Hash
}

type EventRelayerThresholdChanged struct {
	Phase     types.Phase
	Threshold types.U32
	Topics    []types.Hash
}

type EventChainWhitelisted struct {
	Phase   types.Phase
	ChainId types.U8
	Topics  []types.Hash
}

type EventRelayerAdded struct {
	Phase   types.Phase
	Relayer types.AccountID
	Topics  []types.Hash
}

type EventRelayerRemoved struct {
	Phase   types.Phase
	Relayer types.AccountID
	Topics  []types.Hash
}

// EventVote is shared by VoteFor and VoteAgainst
type EventVote struct {
	Phase        types.Phase
	SourceId     types.U8
	DepositNonce types.U64
	Voter        types.AccountID
	Topics       []types.Hash
}

// EventProposal is shared by the proposal lifecycle events
type EventProposal struct {
	Phase        types.Phase
	SourceId     types.U8
	DepositNonce types.U64
	Topics       []types.Hash
}

type EventExampleRemark struct {
	Phase  types.Phase
	Hash   types.Hash
	Topics []types.Hash
}

// Events decodes System.Events of chains running the ChainBridge and Example pallets
type Events struct {
	types.EventRecords
	ChainBridge_FungibleTransfer        []EventFungibleTransfer        //nolint:stylecheck,golint
	ChainBridge_NonFungibleTransfer     []EventNonFungibleTransfer     //nolint:stylecheck,golint
	ChainBridge_GenericTransfer         []EventGenericTransfer         //nolint:stylecheck,golint
	ChainBridge_RelayerThresholdChanged []EventRelayerThresholdChanged //nolint:stylecheck,golint
	ChainBridge_ChainWhitelisted        []EventChainWhitelisted        //nolint:stylecheck,golint
	ChainBridge_RelayerAdded            []EventRelayerAdded            //nolint:stylecheck,golint
	ChainBridge_RelayerRemoved          []EventRelayerRemoved          //nolint:stylecheck,golint
	ChainBridge_VoteFor                 []EventVote                    //nolint:stylecheck,golint
	ChainBridge_VoteAgainst             []EventVote                    //nolint:stylecheck,golint
	ChainBridge_ProposalApproved        []EventProposal                //nolint:stylecheck,golint
	ChainBridge_ProposalRejected        []EventProposal                //nolint:stylecheck,golint
	ChainBridge_ProposalSucceeded       []EventProposal                //nolint:stylecheck,golint
	ChainBridge_ProposalFailed          []EventProposal                //nolint:stylecheck,golint
	Example_Remark                      []EventExampleRemark           //nolint:stylecheck,golint
}

// AppliedIn reports whether phase belongs to the extrinsic at index
func AppliedIn(phase types.Phase, index uint32) bool {
	return phase.IsApplyExtrinsic && phase.AsApplyExtrinsic == index
}
