// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import "github.com/AlecAivazis/survey/v2"

// confirmOverwrite asks whether to overwrite an existing --output file.
// Indirected through a package var so tests can substitute a canned
// answer instead of driving a real terminal prompt.
var confirmOverwrite = func(path string) (bool, error) {
	var ok bool
	prompt := &survey.Confirm{
		Message: "Overwrite existing file " + path + "?",
		Default: false,
	}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
