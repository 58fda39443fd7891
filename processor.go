// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package spanfilterprocessor // import "github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor"

import (
	"context"

	"go.opentelemetry.io/collector/pdata/ptrace"
	"go.opentelemetry.io/collector/processor"
	"go.opentelemetry.io/collector/processor/processorhelper"
	"go.uber.org/zap"

	"github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor/internal/matcher"
	"github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor/internal/tracetree"
)

type spanFilterProcessor struct {
	logger     *zap.Logger
	reconciler *tracetree.Reconciler
	attributes map[string]string
	telemetry  *spanFilterTelemetry
}

func newSpanFilterProcessor(set processor.Settings, cfg *Config) (*spanFilterProcessor, error) {
	m, err := matcher.New(cfg.FilterPatterns)
	if err != nil {
		return nil, err
	}

	telemetry, err := newSpanFilterTelemetry(set)
	if err != nil {
		return nil, err
	}

	if m.Empty() {
		set.Logger.Info("No filter patterns configured, spans pass through unchanged")
	} else {
		set.Logger.Info("Filtering spans by name",
			zap.Strings("filter_patterns", cfg.FilterPatterns),
			zap.Bool("reparent_orphans", cfg.ReparentOrphans))
	}

	return &spanFilterProcessor{
		logger:     set.Logger,
		reconciler: tracetree.New(m.Matches, cfg.ReparentOrphans),
		attributes: cfg.Attributes,
		telemetry:  telemetry,
	}, nil
}

// processTraces removes spans matching the filter patterns, restructures the
// remaining trees, and enriches the survivors. The payload is mutated in
// place; processing one payload needs no state beyond it, so payloads may be
// processed concurrently.
func (p *spanFilterProcessor) processTraces(_ context.Context, td ptrace.Traces) (ptrace.Traces, error) {
	stats := p.reconciler.Reconcile(td)
	if stats != (tracetree.Stats{}) {
		p.logger.Debug("Reconciled traces payload",
			zap.Int64("spans_filtered", stats.Filtered),
			zap.Int64("spans_pruned", stats.Pruned),
			zap.Int64("spans_reparented", stats.Reparented))
	}
	p.telemetry.record(stats)

	p.enrich(td)

	if td.ResourceSpans().Len() == 0 {
		return td, processorhelper.ErrSkipProcessingData
	}
	return td, nil
}

func (p *spanFilterProcessor) enrich(td ptrace.Traces) {
	if len(p.attributes) == 0 {
		return
	}
	rss := td.ResourceSpans()
	for i := 0; i < rss.Len(); i++ {
		sss := rss.At(i).ScopeSpans()
		for j := 0; j < sss.Len(); j++ {
			spans := sss.At(j).Spans()
			for k := 0; k < spans.Len(); k++ {
				attrs := spans.At(k).Attributes()
				for key, value := range p.attributes {
					attrs.PutStr(key, value)
				}
			}
		}
	}
}
