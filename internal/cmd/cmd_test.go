package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"serve"},
		{"seed"},
		{"migrate", "up"},
		{"migrate", "down"},
		{"migrate", "version"},
	} {
		c, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		require.Equal(t, path[len(path)-1], c.Name())
	}
}

func TestMigrateDown_InvalidSteps(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"migrate", "down", "--steps", "0"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		migrateSteps = 1
	})

	err := rootCmd.Execute()
	require.EqualError(t, err, "steps must be >= 1")
}

func TestSeed_MissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{"seed", "-f", t.TempDir() + "/missing.yaml"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		seedFile = "seed/seed.yaml"
	})

	err := rootCmd.Execute()
	require.ErrorContains(t, err, "open seed file")
}
