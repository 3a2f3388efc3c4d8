// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"golang.org/x/sync/errgroup"

	"github.com/spf13/afero"
)

// loadPair reads oldPath and newPath concurrently through fs: independent
// file reads need no coordination, since the diff itself treats the two
// documents as independent.
func loadPair(fs afero.Fs, oldPath, newPath string) (oldText, newText []byte, err error) {
	var g errgroup.Group
	g.Go(func() error {
		b, readErr := afero.ReadFile(fs, oldPath)
		oldText = b
		return readErr
	})
	g.Go(func() error {
		b, readErr := afero.ReadFile(fs, newPath)
		newText = b
		return readErr
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return oldText, newText, nil
}

func fileExists(fs afero.Fs, path string) bool {
	ok, err := afero.Exists(fs, path)
	return err == nil && ok
}
