package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPENAI_API_KEY", "A2T_ENGINE", "WHISPER_CPP_BINARY",
		"WHISPER_CPP_MODEL_DIR", "A2T_FFMPEG", "A2T_DB_PATH",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnv(t *testing.T) {
	testCases := []struct {
		name          string
		env           map[string]string
		expectError   bool
		errorContains string
		check         func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, EngineWhisperCpp, cfg.Engine)
				assert.Empty(t, cfg.OpenAIKey)
			},
		},
		{
			name: "valid OpenAI key",
			env:  map[string]string{"OPENAI_API_KEY": "sk-1234567890abcdef1234567890abcdef"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "sk-1234567890abcdef1234567890abcdef", cfg.OpenAIKey)
			},
		},
		{
			name:          "invalid OpenAI key format",
			env:           map[string]string{"OPENAI_API_KEY": "invalid-key"},
			expectError:   true,
			errorContains: "must start with 'sk-'",
		},
		{
			name:          "OpenAI key too short",
			env:           map[string]string{"OPENAI_API_KEY": "sk-short"},
			expectError:   true,
			errorContains: "too short",
		},
		{
			name: "openai engine",
			env:  map[string]string{"A2T_ENGINE": "openai"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, EngineOpenAI, cfg.Engine)
			},
		},
		{
			name:          "unknown engine",
			env:           map[string]string{"A2T_ENGINE": "parakeet"},
			expectError:   true,
			errorContains: "unknown engine",
		},
		{
			name: "overrides",
			env: map[string]string{
				"WHISPER_CPP_BINARY":    "/opt/whisper/main",
				"WHISPER_CPP_MODEL_DIR": "/opt/whisper/models",
				"A2T_FFMPEG":            "/usr/local/bin/ffmpeg",
				"A2T_DB_PATH":           "/tmp/history.db",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/opt/whisper/main", cfg.WhisperBinary)
				assert.Equal(t, "/opt/whisper/models", cfg.WhisperModelDir)
				assert.Equal(t, "/usr/local/bin/ffmpeg", cfg.FFmpegPath)
				assert.Equal(t, "/tmp/history.db", cfg.DBPath)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cfg, err := FromEnv()
			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			if tc.check != nil {
				tc.check(t, cfg)
			}
		})
	}
}

func TestValidateEngine(t *testing.T) {
	assert.NoError(t, ValidateEngine(EngineWhisperCpp))
	assert.NoError(t, ValidateEngine(EngineOpenAI))
	assert.Error(t, ValidateEngine(""))
	assert.Error(t, ValidateEngine("deepgram"))
}

func TestResolveDBPathOverride(t *testing.T) {
	cfg := &Config{DBPath: "/tmp/override.db"}
	path, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.db", path)
}

func TestLoadEnvWithoutFiles(t *testing.T) {
	// No .env anywhere near an empty directory: loading is a no-op.
	wd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(wd)

	require.NoError(t, os.Chdir(t.TempDir()))
	assert.NoError(t, LoadEnv())
}
