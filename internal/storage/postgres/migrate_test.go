package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	subtree, err := MigrationsFS()
	require.NoError(t, err)

	names, err := fs.Glob(subtree, "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_schema.sql", "002_lesson_audio_file_path.sql"}, names)

	body, err := fs.ReadFile(subtree, "002_lesson_audio_file_path.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "audio_file_path")
	assert.Contains(t, string(body), "---- create above / drop below ----")
}
