package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPoolConfig(t *testing.T) {
	cfg := DefaultPoolConfig()

	assert.Equal(t, int32(DefaultMaxConnections), cfg.MaxConns)
	assert.Equal(t, int32(DefaultMinConnections), cfg.MinConns)
	assert.Equal(t, DefaultMaxConnIdle, cfg.MaxConnIdle)
	assert.Equal(t, DefaultMaxConnLife, cfg.MaxConnLife)
}

func TestNewPool_InvalidConnString(t *testing.T) {
	pool, err := NewPool("not a connection string", DefaultPoolConfig())

	require.Error(t, err)
	assert.Nil(t, pool)
	assert.Contains(t, err.Error(), ErrMsgFailedToParseConnString)
}
