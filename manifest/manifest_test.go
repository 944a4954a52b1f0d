package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envgate/envgate"
	"github.com/envgate/envgate/manifest"
)

const sampleManifest = `
prefix: NEXT_PUBLIC_
server:
  NODE_ENV:
    rule: "oneof=development test production"
  DATABASE_URL:
    kind: url
  WORKER_COUNT:
    kind: int
    default: "4"
  SENTRY_DSN:
    kind: url
    optional: true
client:
  NEXT_PUBLIC_APP_URL:
    kind: url
`

func TestParse(t *testing.T) {
	m, err := manifest.Parse(strings.NewReader(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "NEXT_PUBLIC_", m.Prefix)
	assert.Len(t, m.Server, 4)
	assert.Len(t, m.Client, 1)
	assert.Equal(t, "url", m.Server["DATABASE_URL"].Kind)
	assert.Equal(t, "4", m.Server["WORKER_COUNT"].Default)
	assert.True(t, m.Server["SENTRY_DSN"].Optional)
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader(`
server:
  PORT:
    kind: decimal
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid kind")
	assert.Contains(t, err.Error(), "PORT")
}

func TestParse_UnknownTopLevelField(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader(`
servre:
  PORT: {}
`))
	require.Error(t, err)
}

func TestSchemas(t *testing.T) {
	m, err := manifest.Parse(strings.NewReader(sampleManifest))
	require.NoError(t, err)

	client, server, err := m.Schemas()
	require.NoError(t, err)

	assert.Equal(t, []string{"DATABASE_URL", "NODE_ENV", "SENTRY_DSN", "WORKER_COUNT"}, server.Keys())
	assert.Equal(t, []string{"NEXT_PUBLIC_APP_URL"}, client.Keys())
	assert.Equal(t, envgate.KindInt, server["WORKER_COUNT"].Kind)
	assert.Equal(t, envgate.KindString, server["NODE_ENV"].Kind)
	assert.Equal(t, "oneof=development test production", server["NODE_ENV"].Rule)
}

func TestSchemas_ValidateAgainstEnvironment(t *testing.T) {
	m, err := manifest.Parse(strings.NewReader(sampleManifest))
	require.NoError(t, err)

	client, server, err := m.Schemas()
	require.NoError(t, err)

	lookup := func(key string) (string, bool) {
		vars := map[string]string{
			"NODE_ENV":            "test",
			"DATABASE_URL":        "postgres://localhost:5432/app",
			"NEXT_PUBLIC_APP_URL": "https://app.example.com",
		}
		v, ok := vars[key]
		return v, ok
	}

	env, err := envgate.Validate(client, server, envgate.WithLookup(lookup))
	require.NoError(t, err)

	assert.Equal(t, "test", env.String("NODE_ENV"))
	assert.Equal(t, 4, env.Int("WORKER_COUNT"))
	assert.False(t, env.Has("SENTRY_DSN"))
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	m, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Len(t, m.Server, 4)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := manifest.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
