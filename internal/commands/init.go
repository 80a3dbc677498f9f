// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/letyournerdbeheard/obsgen/internal/config"
	"github.com/letyournerdbeheard/obsgen/internal/prompts"
	"github.com/letyournerdbeheard/obsgen/internal/session"
)

type initOptions struct {
	schema         string
	output         string
	nonInteractive bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new obsgen project",
		Long: `Initialize a new obsgen project with an obsgen.yaml configuration file
pointing at a protocol schema document.`,
		Example: `  # Interactive mode
  obsgen init

  # Non-interactive
  obsgen init --schema protocol.json --non-interactive
  obsgen init --schema https://example.com/protocol.json --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Protocol document path or URL")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "generated", "Output directory for generated files")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --schema)")

	return cmd
}

func runInit(opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("obsgen.yaml already exists; project already initialized")
	}

	if opts.nonInteractive {
		if opts.schema == "" {
			return errors.New("non-interactive mode requires --schema")
		}
	} else {
		if err := prompts.RunInitForm(&opts.schema, &opts.output); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Schema:  opts.schema,
		Output:  opts.output,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("failed to write obsgen.yaml: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Document", Value: opts.schema},
		{Label: "Output", Value: opts.output},
	}, "Initialization completed")
	return nil
}
