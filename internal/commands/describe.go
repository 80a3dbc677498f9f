// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/letyournerdbeheard/obsgen/internal/prompts"
	"github.com/letyournerdbeheard/obsgen/internal/protocol"
	"github.com/letyournerdbeheard/obsgen/internal/session"
)

type describeOptions struct {
	schema string
	list   bool
}

func newDescribeCmd() *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Show a summary of the protocol document",
		Example: `  # Summary counts
  obsgen describe

  # Include entity listings
  obsgen describe --list

  # Describe an explicit document
  obsgen describe --schema protocol.json`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.schema != "" {
				return nil
			}
			return session.PreRunLoad(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "", "Protocol document path or URL (overrides obsgen.yaml)")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "List entity names")

	return cmd
}

func runDescribe(cmd *cobra.Command, opts *describeOptions) error {
	var proto *protocol.Protocol

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
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Enums", Value: strconv.Itoa(len(proto.Enums))},
		{Label: "Requests", Value: strconv.Itoa(len(proto.Requests))},
		{Label: "Events", Value: strconv.Itoa(len(proto.Events))},
	}, "")

	if !opts.list {
		return nil
	}

	heading := lipgloss.NewStyle().Bold(true)

	fmt.Println(heading.Render("\nRequests"))
	for _, r := range proto.Requests {
		fmt.Printf("  %s\n", r.RequestType)
	}
	fmt.Println(heading.Render("\nEvents"))
	for _, e := range proto.Events {
		fmt.Printf("  %s\n", e.EventType)
	}

	return nil
}
