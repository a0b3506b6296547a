package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/hackhub/pkg/client"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	for _, name := range []string{
		"login", "logout", "whoami", "dashboard",
		"themes", "problems", "results", "team",
		"accommodations", "subadmins", "mock-server",
	} {
		cmd, ok := root.Subcommands[name]
		require.True(t, ok, "missing subcommand %s", name)
		assert.NotNil(t, cmd.Run, "subcommand %s has no run function", name)
		assert.NotEmpty(t, cmd.Description)
	}
}

func TestAdminVariantFlag(t *testing.T) {
	cmd := newThemesCommand()
	require.NoError(t, cmd.Flags.Parse([]string{"-subadmin"}))
	assert.Equal(t, client.VariantSubAdmin, adminVariant(cmd))

	cmd = newThemesCommand()
	require.NoError(t, cmd.Flags.Parse(nil))
	assert.Equal(t, client.VariantAdmin, adminVariant(cmd))
}

func TestSplitCapabilities(t *testing.T) {
	assert.Nil(t, splitCapabilities(""))
	assert.Equal(t, []string{"viewThemes"}, splitCapabilities("viewThemes"))
	assert.Equal(t,
		[]string{"viewThemes", "createTheme"},
		splitCapabilities("viewThemes, createTheme,"),
	)
}
