package main_test

import (
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/linkx/cmd/linkx"
	lxhttp "github.com/fwojciec/linkx/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing file yields empty config", func(t *testing.T) {
		t.Parallel()

		cfg, err := main.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

		require.NoError(t, err)
		assert.Equal(t, main.FileConfig{}, cfg)
	})

	t.Run("reads YAML fields", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		data := "apiUrl: http://extract.test\ndb: /tmp/x.db\naddr: 127.0.0.1:9000\nconcurrency: 8\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		cfg, err := main.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, main.FileConfig{
			APIURL:      "http://extract.test",
			DB:          "/tmp/x.db",
			Addr:        "127.0.0.1:9000",
			Concurrency: 8,
		}, cfg)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("apiUrl: [unclosed"), 0o600))

		_, err := main.LoadConfig(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestFileConfig_Vars(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults for empty config", func(t *testing.T) {
		t.Parallel()

		vars := main.FileConfig{}.Vars()

		assert.Equal(t, lxhttp.DefaultBaseURL, vars["api_url"])
		assert.Equal(t, "localhost:8080", vars["addr"])
		assert.Equal(t, "4", vars["concurrency"])
		assert.NotEmpty(t, vars["db"])
	})

	t.Run("uses configured values", func(t *testing.T) {
		t.Parallel()

		vars := main.FileConfig{APIURL: "http://x.test", DB: "x.db", Addr: ":1", Concurrency: 2}.Vars()

		assert.Equal(t, "http://x.test", vars["api_url"])
		assert.Equal(t, "x.db", vars["db"])
		assert.Equal(t, ":1", vars["addr"])
		assert.Equal(t, "2", vars["concurrency"])
	})
}
