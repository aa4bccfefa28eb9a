package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.Nil(t, err)
	require.Nil(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(envStore, "")
	t.Setenv(envSecret, "")
	t.Setenv(envItemsCSV, "")
	t.Setenv(envLogLevel, "")

	cfg := Load()

	assert.Equal(t, DefaultStore, cfg.Store)
	assert.Equal(t, "", cfg.Secret)
	assert.Equal(t, DefaultItemsCSV, cfg.ItemsCSV)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.EnvFile)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// godotenv never overrides variables that are already set, so make sure
	// the ones read from the file are not
	for _, k := range []string{envStore, envLogLevel} {
		old, had := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			} else {
				os.Unsetenv(k)
			}
		})
	}
	t.Setenv(envItemsCSV, "custom/items.csv")

	err := ioutil.WriteFile(filepath.Join(dir, ".env"), []byte("LEDJER_STORE=sqlite:ledjer.db\nLEDJER_LOG_LEVEL=DEBUG\nLEDJER_ITEMS_CSV=ignored.csv\n"), 0644)
	require.Nil(t, err)

	cfg := Load()

	assert.Equal(t, ".env", cfg.EnvFile)
	assert.Equal(t, "sqlite:ledjer.db", cfg.Store)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "custom/items.csv", cfg.ItemsCSV)
}
