package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunCLIUnknownCommand(t *testing.T) {
	err := runCLI([]string{"frobnicate"})
	require.ErrorContains(t, err, "unknown command: frobnicate")
}

func TestRunCLIHelpAndVersion(t *testing.T) {
	require.NoError(t, runCLI([]string{"help"}))
	require.NoError(t, runCLI([]string{"--help"}))
	require.NoError(t, runCLI([]string{"version"}))
	require.NoError(t, runCLI([]string{"-v"}))
}

func TestRunCLIClearCacheWithoutMount(t *testing.T) {
	t.Setenv("CACHE_DIR", filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, runCLI([]string{"clear-cache"}))
}

func TestRunCLIRejectsBadConfig(t *testing.T) {
	t.Setenv("CACHE_TTL", "-3")
	err := runCLI([]string{"clear-cache"})
	require.ErrorContains(t, err, "CACHE_TTL")
}
