// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"

	"github.com/noamoss/yamly/internal/identity"
)

// userConfig holds the per-user defaults read from
// ~/.config/yamly/config.ini: flags always win, but a user who always
// diffs legal documents as text shouldn't have to say so on every
// invocation.
type userConfig struct {
	Format string
	Mode   string
	Rules  []identity.Rule
}

// loadUserConfig reads the user config file. A missing file is not an
// error: it just means every default is the zero value.
func loadUserConfig() (userConfig, error) {
	path, err := userConfigPath()
	if err != nil {
		return userConfig{}, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return userConfig{}, nil
	}

	cfg, err := ini.Load(path)
	if err != nil {
		return userConfig{}, err
	}

	defaults := cfg.Section("defaults")
	out := userConfig{
		Format: defaults.Key("format").String(),
		Mode:   defaults.Key("mode").String(),
	}

	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection || section.Name() == "defaults" {
			continue
		}
		// Section names of the form "identity_rule:ARRAY" describe one
		// default identity rule for the named array.
		arrayName := section.Name()
		if len(arrayName) > len("identity_rule:") && arrayName[:len("identity_rule:")] == "identity_rule:" {
			arrayName = arrayName[len("identity_rule:"):]
		} else {
			continue
		}
		out.Rules = append(out.Rules, identity.Rule{
			ArrayName:     arrayName,
			IdentityField: section.Key("identity_field").String(),
			WhenField:     section.Key("when_field").String(),
			WhenValue:     section.Key("when_value").String(),
		})
	}

	return out, nil
}

func userConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "yamly", "config.ini"), nil
}
