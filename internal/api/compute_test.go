package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coilworks/coilgen/internal/geometry"
)

func TestGenerateOuterOnly(t *testing.T) {
	spec := geometry.CoilSpec{OuterWidth: 10, OuterHeight: 6, TraceWidth: 0.15, Gap: 0.15, Turns: 2}
	res, err := Generate(spec, false)
	require.NoError(t, err)

	assert.Len(t, res.Turns, 2)
	assert.Len(t, res.Outer, 8)
	assert.Nil(t, res.Inner)
	assert.Nil(t, res.InnerTurns)

	// Export closes back at the first outer point.
	require.Len(t, res.Export, 9)
	assert.Equal(t, res.Outer[0], res.Export[8])
}

func TestGenerateWithInner(t *testing.T) {
	spec := geometry.CoilSpec{OuterWidth: 10, OuterHeight: 6, TraceWidth: 0.15, Gap: 0.15, Turns: 2}
	res, err := Generate(spec, true)
	require.NoError(t, err)

	assert.Len(t, res.Inner, len(res.Outer))
	assert.Len(t, res.InnerTurns, spec.Turns)
	assert.Len(t, res.Export, 8*spec.Turns+1)

	// The regrouped inner turns flatten back to the inner path.
	assert.Equal(t, res.Inner, geometry.Flatten(res.InnerTurns))
}

func TestGenerateInvalidSpec(t *testing.T) {
	spec := geometry.CoilSpec{OuterWidth: 1, OuterHeight: 1, TraceWidth: 1, Gap: 1, Turns: 5}
	_, err := Generate(spec, true)
	var cfgErr *geometry.InvalidConfigError
	require.True(t, errors.As(err, &cfgErr))
}
