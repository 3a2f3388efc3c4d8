// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package similarity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noamoss/yamly/internal/value"
)

func TestScore(t *testing.T) {
	testCases := map[string]struct {
		a, b value.Value
		want float64
	}{
		"identical scalars": {
			a:    value.Str("hello world", 0),
			b:    value.Str("hello world", 0),
			want: 1.0,
		},
		"disjoint scalars": {
			a:    value.Str("alpha", 0),
			b:    value.Str("beta", 0),
			want: 0.0,
		},
		"mapping with one changed field scores partial overlap": {
			a: value.Map([]value.Entry{
				{Key: "name", Value: value.Str("web", 0)},
				{Key: "image", Value: value.Str("nginx:1.0", 0)},
				{Key: "port", Value: value.Int(80, 0)},
			}, 0),
			b: value.Map([]value.Entry{
				{Key: "name", Value: value.Str("web", 0)},
				{Key: "image", Value: value.Str("nginx:2.0", 0)},
				{Key: "port", Value: value.Int(80, 0)},
			}, 0),
			want: 5.0 / 7.0,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			require.InDelta(t, tc.want, Score(tc.a, tc.b), 0.0001)
		})
	}
}

func TestScoreSymmetric(t *testing.T) {
	a := value.Str("the quick brown fox", 0)
	b := value.Str("the quick red fox", 0)
	require.Equal(t, Score(a, b), Score(b, a))
}

func TestIsEligibleForMatch(t *testing.T) {
	require.False(t, IsEligibleForMatch(value.Str("   ", 0)))
	require.False(t, IsEligibleForMatch(value.Null(0)))
	require.False(t, IsEligibleForMatch(value.Seq(nil, 0)))
	require.True(t, IsEligibleForMatch(value.Str("content", 0)))
	require.True(t, IsEligibleForMatch(value.Int(0, 0)))
}
