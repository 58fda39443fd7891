// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package spanfilterprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/component/componenttest"
	"go.opentelemetry.io/collector/consumer/consumertest"
	"go.opentelemetry.io/collector/processor/processortest"

	"github.com/open-telemetry/opentelemetry-collector-contrib/processor/spanfilterprocessor/internal/metadata"
)

func TestCreateDefaultConfig(t *testing.T) {
	factory := NewFactory()
	cfg := factory.CreateDefaultConfig()
	require.IsType(t, &Config{}, cfg)

	oCfg := cfg.(*Config)
	assert.Empty(t, oCfg.FilterPatterns)
	assert.True(t, oCfg.ReparentOrphans)
	assert.Empty(t, oCfg.Attributes)
	assert.NoError(t, oCfg.Validate())
}

func TestCreateTraces(t *testing.T) {
	factory := NewFactory()
	cfg := factory.CreateDefaultConfig().(*Config)
	cfg.FilterPatterns = []string{`svc\.internal.*`}

	tp, err := factory.CreateTraces(t.Context(), processortest.NewNopSettings(metadata.Type), cfg, consumertest.NewNop())
	require.NoError(t, err)
	require.NotNil(t, tp)

	require.NoError(t, tp.Start(t.Context(), componenttest.NewNopHost()))
	require.NoError(t, tp.Shutdown(t.Context()))
}

func TestCreateTracesInvalidPattern(t *testing.T) {
	factory := NewFactory()
	cfg := factory.CreateDefaultConfig().(*Config)
	cfg.FilterPatterns = []string{`svc\.(internal.*`}

	_, err := factory.CreateTraces(t.Context(), processortest.NewNopSettings(metadata.Type), cfg, consumertest.NewNop())
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid filter pattern")
}
