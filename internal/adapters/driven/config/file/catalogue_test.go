package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogue(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalogue.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCatalogue(t *testing.T) {
	path := writeCatalogue(t, `[[codes]]
id = "code-travail"
description = "Labor law."

[[codes]]
id = "code-penal"
description = "Criminal law."
`)

	catalogue, err := LoadCatalogue(path)

	require.NoError(t, err)
	require.Len(t, catalogue, 2)
	assert.Equal(t, "code-travail", catalogue[0].ID)
	assert.Equal(t, "Criminal law.", catalogue[1].Description)
	assert.True(t, catalogue.Contains("code-penal"))
}

func TestLoadCatalogue_MissingID(t *testing.T) {
	path := writeCatalogue(t, `[[codes]]
description = "No id here."
`)

	_, err := LoadCatalogue(path)

	assert.Error(t, err)
}

func TestLoadCatalogue_Empty(t *testing.T) {
	path := writeCatalogue(t, "")

	_, err := LoadCatalogue(path)

	assert.Error(t, err)
}

func TestLoadCatalogue_MissingFile(t *testing.T) {
	_, err := LoadCatalogue(filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}
