// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

const (
	modeFlag            = "mode"
	modeFlagDescription = "Diff mode: auto, general, or legal_document."

	identityRuleFlag            = "identity-rule"
	identityRuleFlagDescription = "Identity rule ARRAY:FIELD[:WHEN_FIELD=WHEN_VALUE], repeatable."

	formatFlag            = "format"
	formatFlagDescription = "Output format: json, text, or yaml."

	outputFlag            = "output"
	outputFlagDescription = "Write output to FILE instead of stdout."

	yesFlag            = "yes"
	yesFlagDescription = "Overwrite --output without prompting."
)
