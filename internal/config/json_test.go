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

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"app": {
			"token_key": "jwt_secret",
			"token_issuer": "users-api",
			"log_level": "info"
		},
		"storage": {
			"driver": "sqlite",
			"operation_timeout": "4s",
			"mongo": { "uri": "mongodb://localhost", "database": "social", "collection": "accounts" },
			"db": { "dsn": "file:users.db" }
		},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": "30s",
			"shutdown_timeout": 1000000000
		},
		"mail": {
			"api_url": "http://mail/send",
			"api_key": "k",
			"from": "noreply@example.com",
			"timeout": "3s"
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenKey)
	assert.Equal(t, "users-api", cfg.App.TokenIssuer)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, 4*time.Second, cfg.Storage.OperationTimeout)
	assert.Equal(t, "mongodb://localhost", cfg.Storage.Mongo.URI)
	assert.Equal(t, "social", cfg.Storage.Mongo.Database)
	assert.Equal(t, "accounts", cfg.Storage.Mongo.Collection)
	assert.Equal(t, "file:users.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, "http://mail/send", cfg.Mail.APIURL)
	assert.Equal(t, "k", cfg.Mail.APIKey)
	assert.Equal(t, "noreply@example.com", cfg.Mail.From)
	assert.Equal(t, 3*time.Second, cfg.Mail.Timeout)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": {"request_timeout": "soon"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}

func TestDuration_UnmarshalJSON_RejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
