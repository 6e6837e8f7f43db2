// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package utils

import (
	"fmt"

	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/spf13/cobra"

	"github.com/ChainSafe/chainbridge-transfer/chains/substrate"
)

var (
	ss58AddressCMD = &cobra.Command{
		Use:   "ss58-address",
		Short: "Print the SS58 address of a substrate secret",
		Long:  "Print the SS58 address of a substrate secret (hex seed, mnemonic or dev URI such as //Alice)",
		RunE:  ss58Address,
	}
	ss58ConvertCMD = &cobra.Command{
		Use:   "ss58-convert",
		Short: "Re-encode an SS58 address for another network",
		RunE:  ss58Convert,
	}
)

var (
	secret    string
	address   string
	networkID uint8
)

func init() {
	ss58AddressCMD.Flags().StringVar(&secret, "secret", "", "hex seed, mnemonic or derivation URI")
	_ = ss58AddressCMD.MarkFlagRequired("secret")

	ss58ConvertCMD.Flags().StringVar(&address, "address", "", "SS58 encoded address")
	_ = ss58ConvertCMD.MarkFlagRequired("address")

	for _, c := range []*cobra.Command{ss58AddressCMD, ss58ConvertCMD} {
		c.Flags().Uint8Var(&networkID, "network", substrate.DefaultSS58Format, "SS58 network prefix. Registry https://github.com/paritytech/ss58-registry/blob/main/ss58-registry.json")
	}
}

func ss58Address(cmd *cobra.Command, args []string) error {
	account, err := signature.KeyringPairFromSecret(secret, networkID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), account.Address)
	return nil
}

func ss58Convert(cmd *cobra.Command, args []string) error {
	publicKey, err := substrate.DecodeAddress(address)
	if err != nil {
		return err
	}
	converted, err := substrate.EncodeAddress(publicKey, networkID)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), converted)
	return nil
}
