// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunInitForm prompts for the settings of a new obsgen project.
func RunInitForm(schema, output *string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Protocol document location").
				Description("Local file path or http(s) URL of the protocol schema").
				Placeholder("e.g., protocol.json").
				Value(schema).
				Validate(requiredValidator("document location")),
			huh.NewInput().
				Title("Output directory").
				Placeholder("e.g., generated").
				Value(output).
				Validate(requiredValidator("output directory")),
		),
	).WithTheme(Theme()).Run()
}
