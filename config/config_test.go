package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.App.Addr())
	assert.Equal(t, "lexical", cfg.QA.Provider)
	assert.Zero(t, cfg.QA.Timeout)
	assert.True(t, cfg.QA.RejectWhenUnavailable)
	assert.Equal(t, 24*time.Hour, cfg.Redis.AnswerTTL)
	assert.Equal(t, "qa.asked", cfg.RabbitMQ.Queue)
	assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	assert.Empty(t, cfg.Database.Dsn)
	assert.Empty(t, cfg.Catalog.Path)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  port: "8081"
qa:
  provider: " Ollama "
  model: llama3.2
  timeout: 30s
redis:
  addr: localhost:6379
  answer_ttl: 1h
`), 0o644))

	t.Setenv("ACADEMYQA_QA_MODEL", "qwen2.5")
	t.Setenv("ACADEMYQA_QA_REJECT_WHEN_UNAVAILABLE", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8081", cfg.App.Addr())
	assert.Equal(t, "ollama", cfg.QA.Provider)
	assert.Equal(t, "qwen2.5", cfg.QA.Model)
	assert.Equal(t, 30*time.Second, cfg.QA.Timeout)
	assert.False(t, cfg.QA.RejectWhenUnavailable)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Redis.AnswerTTL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestRepositoryConfigFileLoads(t *testing.T) {
	cfg, err := Load("config.yml")
	require.NoError(t, err)
	assert.Equal(t, "academy-qa", cfg.App.Name)
	assert.Equal(t, "5000", cfg.App.Port)
}
