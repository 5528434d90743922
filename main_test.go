package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("rejects an unknown colour to analyze", func(t *testing.T) {
		err := run(config{mode: "analyze", depth: 1, goroutines: 1, colour: "x"})
		require.ErrorContains(t, err, `unknown colour "x"`)
	})

	t.Run("rejects an unknown mode", func(t *testing.T) {
		err := run(config{mode: "tournament", colour: "w"})
		require.ErrorContains(t, err, `unknown mode "tournament"`)
	})

	t.Run("rejects a malformed position", func(t *testing.T) {
		err := run(config{mode: "analyze", colour: "w", position: "wxq"})
		require.Error(t, err)
	})

	t.Run("analyzes either colour", func(t *testing.T) {
		require.NoError(t, run(config{mode: "analyze", depth: 1, goroutines: 1, seed: 1, colour: "w"}))
		require.NoError(t, run(config{mode: "analyze", depth: 1, goroutines: 2, seed: 1, colour: "b", position: "w"}))
	})
}
