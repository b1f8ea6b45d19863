package migration

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsAreSequential(t *testing.T) {
	src, err := iofs.New(migrationFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	version, err := src.First()
	require.NoError(t, err)
	versions := []uint{version}
	for {
		next, err := src.Next(version)
		if err != nil {
			break
		}
		versions = append(versions, next)
		version = next
	}
	assert.Equal(t, []uint{1, 2, 3}, versions)

	for _, v := range versions {
		up, _, err := src.ReadUp(v)
		require.NoError(t, err, "up migration %d", v)
		assertCommands(t, up)

		down, _, err := src.ReadDown(v)
		require.NoError(t, err, "down migration %d", v)
		assertCommands(t, down)
	}
}

func assertCommands(t *testing.T, r io.ReadCloser) {
	t.Helper()
	defer r.Close()
	data, err := io.ReadAll(r)
	require.NoError(t, err)

	var cmds []map[string]any
	require.NoError(t, json.Unmarshal(data, &cmds))
	assert.NotEmpty(t, cmds)
}
