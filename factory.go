// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package spanfilterprocessor // import "github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor"

import (
	"context"
	"fmt"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/consumer"
	"go.opentelemetry.io/collector/processor"
	"go.opentelemetry.io/collector/processor/processorhelper"

	"github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor/internal/metadata"
)

// NewFactory creates a factory for the spanfilter processor.
func NewFactory() processor.Factory {
	return processor.NewFactory(
		metadata.Type,
		createDefaultConfig,
		processor.WithTraces(createTracesProcessor, metadata.TracesStability),
	)
}

func createDefaultConfig() component.Config {
	return &Config{
		FilterPatterns:  []string{},
		ReparentOrphans: true,
	}
}

func createTracesProcessor(
	ctx context.Context,
	set processor.Settings,
	cfg component.Config,
	next consumer.Traces,
) (processor.Traces, error) {
	oCfg, ok := cfg.(*Config)
	if !ok {
		return nil, fmt.Errorf("invalid config type: %+v", cfg)
	}

	sfp, err := newSpanFilterProcessor(set, oCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating spanfilter processor: %w", err)
	}

	return processorhelper.NewTraces(
		ctx,
		set,
		cfg,
		next,
		sfp.processTraces,
		processorhelper.WithCapabilities(consumer.Capabilities{MutatesData: true}))
}
