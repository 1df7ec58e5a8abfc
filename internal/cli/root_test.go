package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHasExpectedSubcommands(t *testing.T) {
	want := map[string]bool{
		"dash":    false,
		"init":    false,
		"check":   false,
		"version": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "missing subcommand %s", name)
	}
}

func TestRootPersistentConfigFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestDashFlagsRegistered(t *testing.T) {
	assert.NotNil(t, dashCmd.Flags().Lookup("theme"))
	assert.NotNil(t, dashCmd.Flags().Lookup("refresh"))
	assert.NotNil(t, rootCmd.Flags().Lookup("theme"))
}
