// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ChainSafe/chainbridge-transfer/cli/utils"
	"github.com/ChainSafe/chainbridge-transfer/config"
)

var (
	rootCMD = &cobra.Command{
		Use:   "chainbridge-transfer",
		Short: "Transfer assets between chains connected by a ChainBridge deployment",
	}
)

func init() {
	config.BindFlags(rootCMD)
	rootCMD.AddCommand(chainsCMD, transferCMD, wrapCMD, unwrapCMD, historyCMD, utils.UtilsCLI)
}

func Execute() {
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
