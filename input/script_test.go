package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptSource(t *testing.T) {
	src := []byte(`
jump = frame < 3
right = frame >= 2
`)
	s, err := NewScriptSource(src, 0.25)
	require.NoError(t, err)

	var jumps, releases []bool
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Advance())
		assert.Equal(t, 0.25, s.Delta())
		jumps = append(jumps, s.IsDown(Jump))
		releases = append(releases, s.WasReleased(Jump))
	}

	assert.Equal(t, []bool{true, true, true, false, false}, jumps)
	assert.Equal(t, []bool{false, false, false, true, false}, releases)
	assert.True(t, s.IsDown(Right))
	assert.False(t, s.IsDown(Left))
	assert.Equal(t, 5, s.Frame())
}

func TestScriptSourceResetsKeysEachFrame(t *testing.T) {
	// left is only set on frame 0 and must not stick
	s, err := NewScriptSource([]byte(`if frame == 0 { left = true }`), 1)
	require.NoError(t, err)

	require.NoError(t, s.Advance())
	assert.True(t, s.IsDown(Left))
	require.NoError(t, s.Advance())
	assert.False(t, s.IsDown(Left))
	assert.True(t, s.WasReleased(Left))
}

func TestScriptSourceStdlib(t *testing.T) {
	s, err := NewScriptSource([]byte(`
math := import("math")
jump = math.abs(dt - 0.5) < 0.001
`), 0.5)
	require.NoError(t, err)
	require.NoError(t, s.Advance())
	assert.True(t, s.IsDown(Jump))
}

func TestScriptSourceErrors(t *testing.T) {
	_, err := NewScriptSource([]byte(`jump = `), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile script")

	_, err = NewScriptSource([]byte(`jump = true`), 0)
	require.Error(t, err)

	s, err := NewScriptSource([]byte(`x := 1 / (1 - frame)`), 1)
	require.NoError(t, err)
	require.NoError(t, s.Advance())
	err = s.Advance()
	require.Error(t, err, "division by zero on frame 1")
	assert.Contains(t, err.Error(), "frame 1")
}
