package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/milk9111/jumpking/input"
	"github.com/milk9111/jumpking/prefabs"
	"github.com/milk9111/jumpking/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunClimb(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session, err := sim.Load("arena", sim.WithLogger(logger))
	require.NoError(t, err)

	script, err := prefabs.LoadScript("climb")
	require.NoError(t, err)
	src, err := input.NewScriptSource(script, 1.0/60)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(session, src, 240, 60, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5, "header plus frames 0, 60, 120, 180")
	assert.Contains(t, lines[0], "grounded")
	assert.Equal(t, uint64(240), session.Frames())
	assert.Equal(t, 240, src.Frame())
}

func TestRunStopsOnScriptError(t *testing.T) {
	session, err := sim.Load("arena", sim.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	src, err := input.NewScriptSource([]byte(`x := 1 / (3 - frame)`), 1.0/60)
	require.NoError(t, err)

	err = run(session, src, 10, 0, io.Discard)
	require.Error(t, err)
	assert.Equal(t, uint64(3), session.Frames())
}
