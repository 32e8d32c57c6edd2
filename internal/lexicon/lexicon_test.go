package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_AppendsSynonyms(t *testing.T) {
	lex := New(map[string][]string{"divorce": {"dissolution", "separation"}})

	expanded := lex.Expand("divorce procedure")

	assert.Equal(t, "divorce procedure dissolution separation", expanded)
}

func TestExpand_NoSynonymsReturnsQueryUnchanged(t *testing.T) {
	lex := New(map[string][]string{"divorce": {"dissolution"}})

	assert.Equal(t, "tax rates", lex.Expand("tax rates"))
}

func TestExpand_SkipsSelfAndDuplicates(t *testing.T) {
	lex := New(map[string][]string{
		"worker":   {"worker", "employee"},
		"employee": {"employee", "worker"},
	})

	expanded := lex.Expand("worker employee")

	// "worker" and "employee" already appear in the query; each synonym
	// is added once.
	assert.Equal(t, "worker employee employee worker", expanded)
}

func TestExpand_CaseInsensitiveLookup(t *testing.T) {
	lex := New(map[string][]string{"Marriage": {"matrimony"}})

	assert.Equal(t, "MARRIAGE matrimony", lex.Expand("MARRIAGE"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.toml")
	content := `[synonyms]
theft = ["larceny", "stealing"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lex, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "theft report larceny stealing", lex.Expand("theft report"))
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}

func TestDefault_CoversCommonLegalTerms(t *testing.T) {
	lex := Default()

	assert.Contains(t, lex.Expand("divorce"), "dissolution")
	assert.Contains(t, lex.Expand("salary"), "wage")
}
