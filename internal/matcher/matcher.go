// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package matcher classifies span names against a fixed, ordered set of
// regular-expression filter patterns.
package matcher // import "github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor/internal/matcher"

import (
	"fmt"
	"regexp"
)

// Matcher holds the compiled filter patterns. It is immutable after
// construction and safe for concurrent use.
type Matcher struct {
	patterns []*regexp.Regexp
}

// New compiles the given expressions. Every expression is anchored at the
// start of the span name, so "svc\.internal.*" matches "svc.internal.auth"
// but not "app.svc.internal". A substring occurrence elsewhere in the name
// does not match.
//
// Any expression that fails to compile makes construction fail; patterns are
// never re-parsed per span.
func New(exprs []string) (*Matcher, error) {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		// Validate the bare expression first: wrapping can turn some
		// malformed expressions, e.g. ")(", into ones that compile.
		if _, err := regexp.Compile(expr); err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", expr, err)
		}
		re, err := regexp.Compile(`\A(?:` + expr + `)`)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", expr, err)
		}
		patterns = append(patterns, re)
	}
	return &Matcher{patterns: patterns}, nil
}

// Matches reports whether the name matches any of the patterns. An empty
// pattern set never matches.
func (m *Matcher) Matches(name string) bool {
	for _, re := range m.patterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// Empty reports whether no patterns are configured.
func (m *Matcher) Empty() bool {
	return len(m.patterns) == 0
}
