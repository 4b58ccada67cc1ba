package sourcefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileSource_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
database:
  host: localhost
  port: 5432
  credentials:
    user: admin
    password: secret
server:
  address: 0.0.0.0
features:
  - one
  - two
`)

	src, err := New(path, Options{})
	require.NoError(t, err)

	host, ok := src.Get("database", "host")
	require.True(t, ok)
	assert.Equal(t, "localhost", host)

	port, ok := src.Get("database", "port")
	require.True(t, ok)
	assert.Equal(t, 5432, port)

	// Keys may descend through nested tables.
	user, ok := src.Get("database", "credentials.user")
	require.True(t, ok)
	assert.Equal(t, "admin", user)

	// So may namespaces.
	password, ok := src.Get("database.credentials", "password")
	require.True(t, ok)
	assert.Equal(t, "secret", password)

	_, ok = src.Get("features", "")
	assert.False(t, ok, "empty key is absent")

	_, ok = src.Get("database", "missing")
	assert.False(t, ok)

	_, ok = src.Get("missing", "host")
	assert.False(t, ok)

	// A scalar cannot be descended into.
	_, ok = src.Get("server.address", "nested")
	assert.False(t, ok)
}

func TestFileSource_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
  "api": {
    "endpoint": "https://api.example.com",
    "retries": 3
  }
}`)

	src, err := New(path, Options{})
	require.NoError(t, err)

	endpoint, ok := src.Get("api", "endpoint")
	require.True(t, ok)
	assert.Equal(t, "https://api.example.com", endpoint)

	retries, ok := src.Get("api", "retries")
	require.True(t, ok)
	assert.Equal(t, float64(3), retries)
}

func TestFileSource_TOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[server]
host = "0.0.0.0"
port = 9090
`)

	src, err := New(path, Options{})
	require.NoError(t, err)

	host, ok := src.Get("server", "host")
	require.True(t, ok)
	assert.Equal(t, "0.0.0.0", host)

	port, ok := src.Get("server", "port")
	require.True(t, ok)
	assert.Equal(t, int64(9090), port)
}

func TestFileSource_ExplicitFormat(t *testing.T) {
	path := writeFile(t, "config.conf", `{"a": {"b": 1}}`)

	src, err := New(path, Options{Format: "json"})
	require.NoError(t, err)

	value, ok := src.Get("a", "b")
	require.True(t, ok)
	assert.Equal(t, float64(1), value)
}

func TestFileSource_UnsupportedFormat(t *testing.T) {
	path := writeFile(t, "config.ini", `a = 1`)

	_, err := New(path, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestFileSource_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	// Optional by default: every lookup is simply absent.
	src, err := New(missing, Options{})
	require.NoError(t, err)
	_, ok := src.Get("any", "key")
	assert.False(t, ok)

	_, err = New(missing, Options{Required: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required config file not found")
}

func TestFileSource_Layered(t *testing.T) {
	base := writeFile(t, "base.yaml", `
database:
  host: localhost
  port: 5432
log:
  level: info
`)
	override := writeFile(t, "override.yaml", `
database:
  port: 5433
log:
  format: json
`)

	src, err := Layered(Options{}, base, override)
	require.NoError(t, err)

	// Later files win key-by-key.
	port, ok := src.Get("database", "port")
	require.True(t, ok)
	assert.Equal(t, 5433, port)

	// Nested tables merge rather than replace.
	host, ok := src.Get("database", "host")
	require.True(t, ok)
	assert.Equal(t, "localhost", host)

	level, ok := src.Get("log", "level")
	require.True(t, ok)
	assert.Equal(t, "info", level)

	format, ok := src.Get("log", "format")
	require.True(t, ok)
	assert.Equal(t, "json", format)
}

func TestFileSource_ParseError(t *testing.T) {
	path := writeFile(t, "broken.yaml", "::\n\t- not yaml")

	_, err := New(path, Options{})
	require.Error(t, err)
}
