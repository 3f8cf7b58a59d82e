package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when environment is empty", func(t *testing.T) {
		for _, key := range []string{"API_BASE_URL", "HTTP_TIMEOUT", "STATE_DIR", "APP_ENV"} {
			// t.Setenv registers the restore, Unsetenv clears it for the test body.
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
		assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, ".maison", cfg.StateDir)
		assert.Equal(t, "development", cfg.AppEnv)
	})

	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://api.maison.co/api")
		t.Setenv("HTTP_TIMEOUT", "5s")
		t.Setenv("STATE_DIR", "/tmp/maison-state")
		t.Setenv("APP_ENV", "test")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "https://api.maison.co/api", cfg.APIBaseURL)
		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, "/tmp/maison-state", cfg.StateDir)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Invalid timeout is rejected", func(t *testing.T) {
		t.Setenv("HTTP_TIMEOUT", "not-a-duration")

		cfg, err := LoadConfig()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}
