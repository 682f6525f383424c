package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8000", c.EndpointAddr)
	assert.Equal(t, ":memory:", c.DatabaseDSN)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 60*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.LogFormat)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	c := Config{SecretKey: "", AccessTokenValidityDuration: time.Minute}
	assert.Error(t, c.Validate())

	c = Config{SecretKey: "k"}
	assert.Error(t, c.Validate())
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"server"}
	t.Cleanup(func() { os.Args = origArgs })

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, ":8000", c.EndpointAddr)
	assert.Equal(t, 60*time.Minute, c.AccessTokenValidityDuration)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr": ":7000",
		"secret_key":    "from-json",
		"database_dsn":  "file.db",
	})
	t.Setenv("GOPHSPEND_API_SECRET_KEY", "from-env")

	origArgs := os.Args
	os.Args = []string{"server", "-c", path, "-a", ":9000"}
	t.Cleanup(func() { os.Args = origArgs })

	c := LoadConfig()

	assert.Equal(t, ":9000", c.EndpointAddr, "flag wins")
	assert.Equal(t, "from-env", c.SecretKey, "env beats json")
	assert.Equal(t, "file.db", c.DatabaseDSN, "json beats defaults")
}
