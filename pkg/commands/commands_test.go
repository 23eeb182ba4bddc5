package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/blocks/pkg/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewWithConfig(config.New())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSubcommandsRegistered(t *testing.T) {
	cmd := New()
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"edit", "catalog", "version"} {
		assert.True(t, names[want], "missing %s", want)
	}
}

func TestCatalogJSON(t *testing.T) {
	out, err := run(t, "catalog", "/todo", "--json")
	require.NoError(t, err)

	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "todo", got[0]["type"])
	assert.Equal(t, "/todo", got[0]["command"])
}

func TestCatalogJSONReportsErrors(t *testing.T) {
	out, err := run(t, "catalog", "todo", "--json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got["error"], "must start with")
}

func TestCatalogPlainError(t *testing.T) {
	_, err := run(t, "catalog", "todo")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}

func TestEditFlagsBindToConfig(t *testing.T) {
	v := config.New()
	cmd := NewWithConfig(v)
	edit, _, err := cmd.Find([]string{"edit"})
	require.NoError(t, err)
	require.NoError(t, edit.Flags().Parse([]string{"--debug", "--log-level", "debug", "--mouse=false"}))

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "debug", cfg.LogLevel)
}
