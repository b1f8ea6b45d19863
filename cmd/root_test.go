package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandTree(t *testing.T) {
	root := rootCmd()

	for _, path := range [][]string{{"manager"}, {"migrate", "up"}, {"migrate", "version"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, "%v", path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	flag := root.PersistentFlags().Lookup("config-name")
	require.NotNil(t, flag)
	assert.Equal(t, "manager_config", flag.DefValue)
}

func TestMigrateUnknownConfig(t *testing.T) {
	root := rootCmd()
	root.SetArgs([]string{"migrate", "up", "--config-name", "does_not_exist", "--config-dir", t.TempDir()})
	root.SilenceErrors = true
	assert.Error(t, root.Execute())
}
