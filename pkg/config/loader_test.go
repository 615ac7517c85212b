package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paramguard/pkg/config"
)

type defaultsConfig struct {
	Name    string `env:"CONFIG_TEST_DEFAULT_NAME" envDefault:"default_value"`
	Count   int    `env:"CONFIG_TEST_DEFAULT_COUNT" envDefault:"42"`
	Enabled bool   `env:"CONFIG_TEST_DEFAULT_ENABLED" envDefault:"true"`
}

type successConfig struct {
	Name    string `env:"CONFIG_TEST_SUCCESS_NAME"`
	Count   int    `env:"CONFIG_TEST_SUCCESS_COUNT"`
	Enabled bool   `env:"CONFIG_TEST_SUCCESS_ENABLED" envDefault:"true"`
}

type cachedConfig struct {
	Value string `env:"CONFIG_TEST_CACHED"`
}

type retryConfig struct {
	Value string `env:"CONFIG_TEST_RETRY,required"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Value string   `env:"CONFIG_TEST_FILE_VALUE"`
	List  []string `env:"CONFIG_TEST_FILE_LIST" envSeparator:","`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("CONFIG_TEST_SUCCESS_NAME", "test_value")
	t.Setenv("CONFIG_TEST_SUCCESS_COUNT", "100")
	t.Setenv("CONFIG_TEST_SUCCESS_ENABLED", "false")

	var cfg successConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "test_value", cfg.Name)
	assert.Equal(t, 100, cfg.Count)
	assert.False(t, cfg.Enabled)
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.True(t, cfg.Enabled)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CONFIG_TEST_CACHED", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.ResetCache()

	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_RetriesAfterFailure(t *testing.T) {
	require.NoError(t, os.Unsetenv("CONFIG_TEST_RETRY"))

	var cfg retryConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)

	t.Setenv("CONFIG_TEST_RETRY", "now set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "now set", cfg.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	require.NoError(t, os.Unsetenv("CONFIG_TEST_REQUIRED"))

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *successConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	assert.ErrorIs(t, config.Parse(cfg), config.ErrNilPointer)
}

func TestParse_NotCached(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED", "one")
	var cfg cachedConfig
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "one", cfg.Value)

	t.Setenv("CONFIG_TEST_CACHED", "two")
	require.NoError(t, config.Parse(&cfg))
	assert.Equal(t, "two", cfg.Value)
}

func TestLoadEnv(t *testing.T) {
	t.Run("custom file", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_FILE_VALUE", "")
		require.NoError(t, os.Unsetenv("CONFIG_TEST_FILE_VALUE"))
		t.Setenv("CONFIG_TEST_FILE_LIST", "")
		require.NoError(t, os.Unsetenv("CONFIG_TEST_FILE_LIST"))

		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg fileConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, "from_file", cfg.Value)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	})

	t.Run("existing variables win", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_FILE_VALUE", "from_env")
		require.NoError(t, config.LoadEnv("testdata/.env.test"))

		var cfg fileConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, "from_env", cfg.Value)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv("testdata/does-not-exist.env")
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("default file is optional", func(t *testing.T) {
		assert.NoError(t, config.LoadEnv())
	})
}
