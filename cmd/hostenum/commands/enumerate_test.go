package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEnumerationFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()

	for flag, shorthand := range map[string]string{
		"config":   "c",
		"pattern":  "p",
		"tag":      "t",
		"filter":   "f",
		"output":   "o",
		"provider": "",
	} {
		f := cmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %s should exist", flag)
		assert.Equal(t, shorthand, f.Shorthand, "flag %s shorthand", flag)
	}
}

func TestPlan(t *testing.T) {
	cmd := Plan()

	require.NotNil(t, cmd)
	assert.Equal(t, "plan", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assertEnumerationFlags(t, cmd)

	assert.Nil(t, cmd.Flags().Lookup("yes"), "plan must not have a --yes flag")
}

func TestApply(t *testing.T) {
	cmd := Apply()

	require.NotNil(t, cmd)
	assert.Equal(t, "apply", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	assertEnumerationFlags(t, cmd)

	yes := cmd.Flags().Lookup("yes")
	require.NotNil(t, yes)
	assert.Equal(t, "y", yes.Shorthand)
	assert.Equal(t, "false", yes.DefValue)
}

func TestInit(t *testing.T) {
	cmd := Init()

	require.NotNil(t, cmd)
	assert.Equal(t, "init", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	force := cmd.Flags().Lookup("force")
	require.NotNil(t, force)
	assert.Equal(t, "false", force.DefValue)
}

func TestVersion(t *testing.T) {
	cmd := Version()

	require.NotNil(t, cmd)
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.Run)
}

func TestCompletion_RejectsUnknownShell(t *testing.T) {
	cmd := Completion()
	err := cmd.Args(cmd, []string{"tcsh"})
	require.Error(t, err)
}
