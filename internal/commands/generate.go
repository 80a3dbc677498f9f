// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/letyournerdbeheard/obsgen/internal/prompts"
	"github.com/letyournerdbeheard/obsgen/internal/protocol"
	"github.com/letyournerdbeheard/obsgen/internal/session"
	"github.com/letyournerdbeheard/obsgen/internal/translate"
)

type generateOptions struct {
	schema  string
	output  string
	targets []string
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate declaration files from the protocol document",
		Long: fmt.Sprintf(`Generate declaration files from the protocol schema document.

Available targets: %s`, strings.Join(translate.Available(), ", ")),
		Example: `  # Interactive mode (uses obsgen.yaml)
  obsgen generate

  # Generate specific targets
  obsgen generate --target typescript --target markdown

  # Generate from an explicit document, without a project config
  obsgen generate --schema protocol.json --target typescript

  # Generate straight from the upstream document
  obsgen generate --schema https://example.com/protocol.json --target typescript`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.schema != "" {
				return nil
			}
			return session.PreRunLoad(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Protocol document path or URL (overrides obsgen.yaml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory")
	cmd.Flags().StringArrayVarP(&opts.targets, "target", "t", nil,
		fmt.Sprintf("Output target (%s); repeatable", strings.Join(translate.Available(), ", ")))

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	var proto *protocol.Protocol

	targets := opts.targets
	output := opts.output

	if opts.schema != "" {
		p, err := session.LoadDocument(cmd.Context(), opts.schema)
		if err != nil {
			return err
		}
		proto = p
	} else {
		ctx, err := session.RequireFromCommand(cmd)
		if err != nil {
			return err
		}
		proto = ctx.Protocol
		if len(targets) == 0 {
			targets = ctx.Config.Targets
		}
		if output == "" {
			output = ctx.Config.Output
		}
	}

	// Prompt for anything still missing; an empty target list means the
	// user is running interactively.
	promptOutput := output == "" && len(targets) == 0
	if output == "" {
		output = "generated"
	}
	if err := prompts.RunGenerateForm(&targets, &output, promptOutput, translate.Available()); err != nil {
		return err
	}
	if len(targets) == 0 {
		return fmt.Errorf("no targets selected")
	}

	if err := os.MkdirAll(output, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var results []prompts.ResultField
	for _, name := range targets {
		translator, err := translate.Get(name)
		if err != nil {
			return fmt.Errorf("unsupported target %q. Available targets: %s",
				name, strings.Join(translate.Available(), ", "))
		}

		data, err := translator.Translate(proto)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		outFile := filepath.Join(output, "protocol"+translator.FileExtension())
		if err := os.WriteFile(outFile, data, 0o600); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		results = append(results, prompts.ResultField{Label: name, Value: outFile})
	}

	prompts.PrintResult(results, fmt.Sprintf("Generated %d file(s)", len(results)))
	return nil
}
