package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) {
	t.Helper()

	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte(content), 0o600))
}

func TestNew_DefaultsMissingSections(t *testing.T) {
	writeConfigFile(t, `
env:
  serviceName: shipway
http:
  port: 8080
postgres:
  host: localhost
  port: "5432"
`)

	cfg, err := New()
	require.NoError(t, err)

	require.NotNil(t, cfg.Geo)
	assert.Equal(t, defaultFallbackCountry, cfg.Geo.FallbackCountry)
	assert.Equal(t, defaultLookupTimeout, cfg.Geo.LookupTimeout)
	assert.Equal(t, defaultCacheTTL, cfg.Geo.Cache.TTL)

	require.NotNil(t, cfg.SMTP)

	require.NotNil(t, cfg.Shopify)
	assert.Equal(t, defaultAPIVersion, cfg.Shopify.APIVersion)
}

func TestNew_RequiresPostgresSection(t *testing.T) {
	writeConfigFile(t, `
http:
  port: 8080
`)

	_, err := New()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is required")
}
