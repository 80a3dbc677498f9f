// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 obsgen authors

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunGenerateForm prompts for any generation settings still missing: the
// translation targets and the output directory. Already-set values are left
// untouched.
func RunGenerateForm(targets *[]string, output *string, promptOutput bool, available []string) error {
	var fields []huh.Field

	if len(*targets) == 0 {
		options := make([]huh.Option[string], len(available))
		for i, name := range available {
			options[i] = huh.NewOption(name, name)
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Output targets").
			Options(options...).
			Value(targets))
	}

	if promptOutput {
		fields = append(fields, huh.NewInput().
			Title("Output directory").
			Placeholder("e.g., generated").
			Value(output).
			Validate(requiredValidator("output directory")))
	}

	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
