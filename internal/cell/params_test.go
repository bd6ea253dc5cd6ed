package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	assert.Equal(t, 25.0, p.Tolerance)
	assert.Equal(t, 26, p.Pitch)
	assert.Equal(t, 100, p.MinArea)
	require.NoError(t, p.Validate())
}

func TestParamsWith(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	q := p.WithPitch(13).WithMinArea(4).WithTolerance(10)

	assert.Equal(t, 13, q.Pitch)
	assert.Equal(t, 4, q.MinArea)
	assert.Equal(t, 10.0, q.Tolerance)

	// The original is untouched.
	assert.Equal(t, 26, p.Pitch)
	assert.Equal(t, 100, p.MinArea)
	assert.Equal(t, 25.0, p.Tolerance)
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	assert.Error(t, DefaultParams().WithPitch(0).Validate())
	assert.Error(t, DefaultParams().WithPitch(-26).Validate())
	assert.Error(t, DefaultParams().WithTolerance(0).Validate())
	assert.Error(t, DefaultParams().WithMinArea(-1).Validate())
	assert.NoError(t, DefaultParams().WithMinArea(0).Validate())
}
