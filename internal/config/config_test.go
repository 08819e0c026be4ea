package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setDBEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "planner")
	t.Setenv("DB_PASS", "planner")
	t.Setenv("DB_NAME", "planner")
	t.Setenv("DB_PORT", "5432")
}

func TestLoad(t *testing.T) {
	setDBEnv(t)
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LISTEN_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "localhost", cfg.DBHost)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, ":8080", cfg.ListenAddr, "default listen address")
}

func TestLoadMissingJWTSecret(t *testing.T) {
	setDBEnv(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadMissingDatabaseEnv(t *testing.T) {
	setDBEnv(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("JWT_SECRET", "s3cret")

	_, err := Load()
	require.Error(t, err)
}
