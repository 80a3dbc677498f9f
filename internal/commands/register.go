// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	// Import translators to auto-register them.
	_ "github.com/letyournerdbeheard/obsgen/internal/translate/markdown"
	_ "github.com/letyournerdbeheard/obsgen/internal/translate/typescript"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "obsgen",
		Short: "Generate typed declarations from the obs-websocket protocol schema",
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
