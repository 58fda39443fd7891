// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package spanfilterprocessor // import "github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor"

import (
	"context"

	"go.opentelemetry.io/collector/processor"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor/internal/metadata"
	"github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor/internal/tracetree"
)

type spanFilterTelemetry struct {
	exportCtx context.Context

	processorAttr []attribute.KeyValue

	telemetryBuilder *metadata.TelemetryBuilder
}

func newSpanFilterTelemetry(set processor.Settings) (*spanFilterTelemetry, error) {
	telemetryBuilder, err := metadata.NewTelemetryBuilder(set.TelemetrySettings)
	if err != nil {
		return nil, err
	}

	return &spanFilterTelemetry{
		processorAttr:    []attribute.KeyValue{attribute.String(metadata.Type.String(), set.ID.String())},
		exportCtx:        context.Background(),
		telemetryBuilder: telemetryBuilder,
	}, nil
}

func (sft *spanFilterTelemetry) record(stats tracetree.Stats) {
	opt := metric.WithAttributes(sft.processorAttr...)
	if stats.Filtered > 0 {
		sft.telemetryBuilder.ProcessorSpanfilterSpansFiltered.Add(sft.exportCtx, stats.Filtered, opt)
	}
	if stats.Pruned > 0 {
		sft.telemetryBuilder.ProcessorSpanfilterSpansPruned.Add(sft.exportCtx, stats.Pruned, opt)
	}
	if stats.Reparented > 0 {
		sft.telemetryBuilder.ProcessorSpanfilterSpansReparented.Add(sft.exportCtx, stats.Reparented, opt)
	}
}
