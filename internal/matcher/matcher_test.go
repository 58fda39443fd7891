// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesAnyPattern(t *testing.T) {
	m, err := New([]string{`svc\.internal.*`, `svc\.utils.*`})
	require.NoError(t, err)

	assert.True(t, m.Matches("svc.internal.auth"))
	assert.True(t, m.Matches("svc.utils.retry"))
	assert.False(t, m.Matches("app.request"))
}

func TestStartAnchoring(t *testing.T) {
	m, err := New([]string{`svc\.internal.*`})
	require.NoError(t, err)

	assert.True(t, m.Matches("svc.internal"))
	assert.True(t, m.Matches("svc.internal.auth.token"))

	// A match elsewhere in the name is not a match.
	assert.False(t, m.Matches("app.svc.internal.auth"))

	// The dot is escaped, not a wildcard.
	assert.False(t, m.Matches("svc_internal.auth"))
}

func TestEmptySetNeverMatches(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	assert.True(t, m.Empty())
	assert.False(t, m.Matches("svc.internal.auth"))
	assert.False(t, m.Matches(""))
}

func TestInvalidPattern(t *testing.T) {
	for _, expr := range []string{`svc\.(internal.*`, `[`, `)(`} {
		_, err := New([]string{expr})
		require.Error(t, err, "expression %q should not compile", expr)
		assert.ErrorContains(t, err, "invalid filter pattern")
	}
}

func TestClassificationIdempotent(t *testing.T) {
	m, err := New([]string{`svc\.internal.*`})
	require.NoError(t, err)

	names := []string{"svc.internal.auth", "app.request", "", "svc.internal"}
	for _, name := range names {
		first := m.Matches(name)
		assert.Equal(t, first, m.Matches(name), "second classification of %q differs", name)
	}
}
