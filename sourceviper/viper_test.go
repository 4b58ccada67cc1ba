package sourceviper

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViperSource_Get(t *testing.T) {
	v := viper.New()
	v.Set("database.host", "db.example.com")
	v.Set("database.pool.size", 10)
	v.SetDefault("log.level", "info")

	src := New(v)

	host, ok := src.Get("database", "host")
	require.True(t, ok)
	assert.Equal(t, "db.example.com", host)

	// Dotted keys descend the same way viper paths do.
	size, ok := src.Get("database", "pool.size")
	require.True(t, ok)
	assert.Equal(t, 10, size)

	// Defaults count as set.
	level, ok := src.Get("log", "level")
	require.True(t, ok)
	assert.Equal(t, "info", level)

	_, ok = src.Get("database", "missing")
	assert.False(t, ok)

	_, ok = src.Get("missing", "host")
	assert.False(t, ok)
}

func TestViperSource_NilUsesSharedInstance(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("shared.flag", true)

	src := New(nil)

	value, ok := src.Get("shared", "flag")
	require.True(t, ok)
	assert.Equal(t, true, value)
}
