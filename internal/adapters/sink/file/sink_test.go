package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/instagram-query-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() domain.Result {
	return domain.Result{
		Account: "alice",
		Command: "info",
		Doc: map[string]any{
			"username":        "alice",
			"followers_count": float64(42),
		},
	}
}

func TestWriteTextUsesAccountCommandNaming(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir)

	path, err := sink.WriteText(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "alice_info.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "followers_count: 42\nusername: alice\n", string(data))
}

func TestWriteJSONWritesValidIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir)

	path, err := sink.WriteJSON(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "alice_info.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "alice", decoded["username"])
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	sink := NewSink(dir)

	path, err := sink.WriteText(sampleResult())
	require.NoError(t, err)

	updated := sampleResult()
	updated.Doc = map[string]any{"username": "renamed"}
	_, err = sink.WriteText(updated)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "username: renamed\n", string(data))
}

func TestWriteCreatesMissingOutputDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	sink := NewSink(dir)

	path, err := sink.WriteJSON(sampleResult())
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestNewSinkDefaultsToCurrentDirectory(t *testing.T) {
	sink := NewSink("")
	assert.Equal(t, ".", sink.dir)
}
