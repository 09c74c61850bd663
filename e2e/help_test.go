//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	// Run directly, not through the PTY, since it exits immediately
	cmd := exec.Command(binPath, "--help")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Greater(t, len(output), 50, "Help should produce substantial output")
	require.Contains(t, output, "Usage")

	for _, sub := range []string{"tui", "search", "health", "config"} {
		require.True(t, strings.Contains(output, sub), "Help should list the %s command", sub)
	}
	require.Contains(t, output, "--base-url", "Help should mention the base URL flag")
}

func TestSearchCommandAgainstCatalog(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	srv := tf.ServeCatalog()

	cmd := exec.Command(binPath, "search", "opal", "--base-url", srv.URL)
	cmd.Env = append(os.Environ(), "HOME="+workspace, "XDG_CONFIG_HOME="+workspace)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	output := string(out)
	require.Contains(t, output, "Black Opal")
	require.Contains(t, output, "/gems/gem/black_opal")
	require.Contains(t, output, "/gems/gem/fire_opal")
	require.NotContains(t, output, "Ruby")
}
