package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFiles(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600))
	return dir
}

func TestMustLoad(t *testing.T) {
	public := "http_port: 8080\nlog_level: debug\njwt_ttl: 24h\nbcrypt_cost: 10\n"
	private := "jwt_key: 'secret'\npg:\n  host: localhost\n  port: 5432\n  user: diskusi\n  password: pw\n  dbname: diskusi\n"
	dir := writeConfigFiles(t, public, private)

	cfg := MustLoad(dir)

	assert.Equal(t, 8080, cfg.Public.HttpPort)
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.JwtTTL())
	assert.Equal(t, "secret", cfg.JwtKey())
	assert.Equal(t, "diskusi", cfg.PgConn().Dbname)
}

func TestMustLoad_RequiredFields(t *testing.T) {
	// jwt_key intentionally missing
	public := "http_port: 8080\njwt_ttl: 24h\n"
	private := "pg:\n  host: localhost\n  port: 5432\n  user: diskusi\n  dbname: diskusi\n"
	dir := writeConfigFiles(t, public, private)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing required field, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic due to missing config file, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}
