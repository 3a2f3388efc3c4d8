// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := userConfigPath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".config", "yamly", "config.ini"), path)
}

func TestLoadUserConfig_MissingFileReturnsZeroValue(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadUserConfig()
	require.NoError(t, err)
	require.Equal(t, userConfig{}, cfg)
}

func TestLoadUserConfig_ReadsDefaultsAndIdentityRules(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "yamly")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	contents := `
[defaults]
format = text
mode = legal_document

[identity_rule:containers]
identity_field = name

[identity_rule:resources]
identity_field = name
when_field = kind
when_value = Deployment
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte(contents), 0o644))

	cfg, err := loadUserConfig()
	require.NoError(t, err)
	require.Equal(t, "text", cfg.Format)
	require.Equal(t, "legal_document", cfg.Mode)
	require.Len(t, cfg.Rules, 2)

	byArray := make(map[string]bool)
	for _, r := range cfg.Rules {
		byArray[r.ArrayName] = true
		if r.ArrayName == "resources" {
			require.Equal(t, "kind", r.WhenField)
			require.Equal(t, "Deployment", r.WhenValue)
		}
	}
	require.True(t, byArray["containers"])
	require.True(t, byArray["resources"])
}

func TestLoadUserConfig_MalformedFileReturnsError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "yamly")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.ini"), []byte("[unterminated"), 0o644))

	_, err := loadUserConfig()
	require.Error(t, err)
}
