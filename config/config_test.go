package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
database:
  host: db
  port: 5433
  user: board
  password: secret
  name: flights
  ssl_mode: require
redis:
  addr: redis:6379
kafka:
  brokers: [kafka:9092]
  board_topic: board.rendered
board:
  source: postgres
  cache_ttl_seconds: 30
  message: hello
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "host=db port=5433 user=board password=secret dbname=flights sslmode=require", cfg.Database.DSN())
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "board.rendered", cfg.Kafka.BoardTopic)
	assert.Equal(t, SourcePostgres, cfg.Board.Source)
	assert.Equal(t, 30, cfg.Board.CacheTTLSeconds)
	assert.Equal(t, "hello", cfg.Board.Message)
	// untouched sections keep defaults
	assert.Equal(t, ":8080", cfg.HTTP.Address)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "board:\n  source: ftp\n"))
	assert.ErrorContains(t, err, "unknown board.source")

	_, err = LoadConfig(writeFile(t, "board: [\n"))
	assert.ErrorContains(t, err, "failed to parse config")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
