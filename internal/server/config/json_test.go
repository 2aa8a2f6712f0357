package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr_http":        "www.example:4000",
		"endpoint_addr_grpc":        "www.example:9000",
		"database_dsn":              "blog.db",
		"session_validity_duration": "90m",
		"store_operation_timeout":   2000000000,
		"cookie_secure":             true,
		"s3_root_user":              "user",
		"s3_root_password":          "password",
		"s3_bucket":                 "bucket",
		"s3_region":                 "region",
		"s3_base_endpoint":          "base_endpoint",
		"audit_mongo_uri":           "mongodb://mongo:27017",
		"audit_mongo_database":      "audit",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "www.example:4000", cfg.EndpointAddrHTTP)
		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "blog.db", cfg.DatabaseDSN)
		assert.Equal(t, 90*time.Minute, cfg.SessionValidityDuration)
		assert.Equal(t, 2*time.Second, cfg.StoreOperationTimeout)
		assert.True(t, cfg.CookieSecure)
		assert.Equal(t, "user", cfg.S3RootUser)
		assert.Equal(t, "password", cfg.S3RootPassword)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "base_endpoint", cfg.S3BaseEndpoint)
		assert.Equal(t, "mongodb://mongo:27017", cfg.AuditMongoURI)
		assert.Equal(t, "audit", cfg.AuditMongoDatabase)
	})

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", pathFlag}

		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, "blog.db", cfg.DatabaseDSN)
	})

	t.Run("missing keys keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"s3_bucket": "only-bucket"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "only-bucket", cfg.S3Bucket)
		assert.Equal(t, ":4000", cfg.EndpointAddrHTTP)
		assert.Equal(t, 7*24*time.Hour, cfg.SessionValidityDuration)
		assert.False(t, cfg.CookieSecure)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddrHTTP:        ":1",
			EndpointAddrGRPC:        "defaults:1234",
			DatabaseDSN:             "blog.db",
			SessionValidityDuration: 2 * time.Minute,
			StoreOperationTimeout:   3 * time.Second,
			S3Bucket:                "s3bucket",
		}
		before := *cfg
		parseJson(cfg)

		assert.Equal(t, before, *cfg)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}

		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
