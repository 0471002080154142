// Copyright (c) 2024 IoTeX Foundation
// This source code is provided 'as is' and no warranties are given as to title or non-infringement, merchantability
// or fitness for purpose and, to the extent permitted by law, all liability for your use of the code is disclaimed.
// This source code is governed by Apache License 2.0 that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/spf13/cobra"

	cmd "github.com/iotexproject/plug-custody/tools/plugctl/cmds"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "plugctl",
	Short: "Command-line interface of the plug custody ledger",
	Long:  "plugctl inspects and administers a plug custody ledger store.",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringSliceVarP(&cmd.ConfigPaths, "config", "c", nil, "config files, later ones override earlier ones")
	cmd.AddCommands(RootCmd)

	RootCmd.HelpFunc()
}

func main() {
	Execute()
}
