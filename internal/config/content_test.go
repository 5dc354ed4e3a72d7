package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c, err := DefaultContent()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Title)
	assert.Equal(t, "/index.html", c.Path)
	assert.Len(t, c.Hero.Typed, 4)
	require.NotEmpty(t, c.Nav)
	assert.Equal(t, "index.html", c.Nav[0].Href)
	assert.NotEmpty(t, c.Sections)
}

func TestParseContentDefaultsPath(t *testing.T) {
	c, err := ParseContent([]byte("title: x\n"))
	require.NoError(t, err)
	assert.Equal(t, "/", c.Path)
}

func TestParseContentInvalid(t *testing.T) {
	_, err := ParseContent([]byte("nav: [unclosed"))
	assert.Error(t, err)
}

func TestLoadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: Mine\nhero:\n  typed: [a, b]\n"), 0o644))

	c, err := LoadContent(path)
	require.NoError(t, err)
	assert.Equal(t, "Mine", c.Title)
	assert.Equal(t, []string{"a", "b"}, c.Hero.Typed)

	_, err = LoadContent(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
