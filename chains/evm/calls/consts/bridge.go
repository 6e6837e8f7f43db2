// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package consts

// BridgeABI covers the client-facing surface of the ChainBridge v1 bridge contract
const BridgeABI = `[
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "internalType": "uint8", "name": "destinationChainID", "type": "uint8"},
			{"indexed": true, "internalType": "bytes32", "name": "resourceID", "type": "bytes32"},
			{"indexed": true, "internalType": "uint64", "name": "depositNonce", "type": "uint64"}
		],
		"name": "Deposit",
		"type": "event"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "internalType": "uint8", "name": "originChainID", "type": "uint8"},
			{"indexed": true, "internalType": "uint64", "name": "depositNonce", "type": "uint64"},
			{"indexed": true, "internalType": "enum Bridge.ProposalStatus", "name": "status", "type": "uint8"},
			{"indexed": false, "internalType": "bytes32", "name": "resourceID", "type": "bytes32"},
			{"indexed": false, "internalType": "bytes32", "name": "dataHash", "type": "bytes32"}
		],
		"name": "ProposalEvent",
		"type": "event"
	},
	{
		"anonymous": false,
		"inputs": [
			{"indexed": true, "internalType": "uint8", "name": "originChainID", "type": "uint8"},
			{"indexed": true, "internalType": "uint64", "name": "depositNonce", "type": "uint64"},
			{"indexed": true, "internalType": "enum Bridge.ProposalStatus", "name": "status", "type": "uint8"},
			{"indexed": false, "internalType": "bytes32", "name": "resourceID", "type": "bytes32"}
		],
		"name": "ProposalVote",
		"type": "event"
	},
	{
		"inputs": [],
		"name": "_fee",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [],
		"name": "_relayerThreshold",
		"outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
		"stateMutability": "view",
		"type": "function"
	},
	{
		"inputs": [
			{"internalType": "uint8", "name": "destinationChainID", "type": "uint8"},
			{"internalType": "bytes32", "name": "resourceID", "type": "bytes32"},
			{"internalType": "bytes", "name": "data", "type": "bytes"}
		],
		"name": "deposit",
		"outputs": [],
		"stateMutability": "payable",
		"type": "function"
	}
]`
