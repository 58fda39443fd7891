// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package spanfilterprocessor // import "github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor"

import (
	"fmt"

	"go.opentelemetry.io/collector/component"

	"github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor/internal/matcher"
)

// Config defines configuration for the spanfilter processor.
type Config struct {
	// FilterPatterns is an ordered list of regular expressions matched against
	// span names. A span whose name matches any pattern is dropped. Patterns
	// are anchored at the start of the name: "svc\.internal.*" drops
	// "svc.internal.auth" but not "app.svc.internal". An empty list disables
	// filtering entirely.
	FilterPatterns []string `mapstructure:"filter_patterns"`

	// ReparentOrphans controls what happens to descendants of dropped spans.
	// When true (the default), children of a dropped span are attached to its
	// nearest surviving ancestor, keeping the trace connected. When false,
	// the whole subtree below a dropped span is dropped with it.
	ReparentOrphans bool `mapstructure:"reparent_orphans"`

	// Attributes are added to every span the processor emits, e.g. a
	// deployment environment or service version. Existing attributes with
	// the same keys are overwritten.
	Attributes map[string]string `mapstructure:"attributes"`
}

var _ component.Config = (*Config)(nil)

// Validate checks that every filter pattern compiles. An invalid pattern must
// fail collector startup instead of silently passing all spans through.
func (cfg *Config) Validate() error {
	if _, err := matcher.New(cfg.FilterPatterns); err != nil {
		return fmt.Errorf("filter_patterns: %w", err)
	}
	return nil
}
