// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/letyournerdbeheard/obsgen/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the obsgen version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(version.Info())
			return nil
		},
	}
}
