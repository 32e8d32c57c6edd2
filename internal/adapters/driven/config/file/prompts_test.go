package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizan-labs/mizan-cli/internal/adapters/driven/oracle"
)

func TestPromptStore_SeedsDefaultsOnFirstLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load("intent_gate")
	require.NoError(t, err)
	assert.Equal(t, oracle.DefaultPrompts()["intent_gate"], prompt)

	// First access materialises every default file plus the README.
	for name := range oracle.DefaultPrompts() {
		assert.FileExists(t, filepath.Join(dir, name+".txt"))
	}
	assert.FileExists(t, filepath.Join(dir, "README.md"))
}

func TestPromptStore_LoadsEditedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load("answer")
	require.NoError(t, err)

	custom := "Answer strictly from the documents: %s %s %s"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "answer.txt"), []byte(custom), 0600))
	store.Reload()

	prompt, err := store.Load("answer")
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStore_CachesUntilReload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	first, err := store.Load("query_rewrite")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "query_rewrite.txt"), []byte("changed %s %s %s"), 0600))

	cached, err := store.Load("query_rewrite")
	require.NoError(t, err)
	assert.Equal(t, first, cached)

	store.Reload()
	fresh, err := store.Load("query_rewrite")
	require.NoError(t, err)
	assert.Equal(t, "changed %s %s %s", fresh)
}

func TestPromptStore_UnknownPromptFallsBackToDefaultOrErrors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "prompts")
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	_, err = store.Load("no_such_prompt")
	assert.Error(t, err)
}
