// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

//go:generate mdatagen metadata.yaml

// Package spanfilterprocessor drops spans whose names match configured
// regular expressions and restructures the affected traces, either by
// reparenting the children of dropped spans to their nearest surviving
// ancestor or by pruning whole subtrees.
package spanfilterprocessor // import "github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor"
