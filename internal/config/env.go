package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Engine names selectable via A2T_ENGINE.
const (
	EngineWhisperCpp = "whisper_cpp"
	EngineOpenAI     = "openai"
)

// Config holds everything read from the environment. All fields are optional;
// missing values only matter once the component that needs them runs.
type Config struct {
	OpenAIKey       string
	Engine          string
	WhisperBinary   string
	WhisperModelDir string
	FFmpegPath      string
	DBPath          string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing .env files are fine; environment variables might be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// FromEnv reads and validates the configuration from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		OpenAIKey:       strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		Engine:          strings.TrimSpace(os.Getenv("A2T_ENGINE")),
		WhisperBinary:   strings.TrimSpace(os.Getenv("WHISPER_CPP_BINARY")),
		WhisperModelDir: strings.TrimSpace(os.Getenv("WHISPER_CPP_MODEL_DIR")),
		FFmpegPath:      strings.TrimSpace(os.Getenv("A2T_FFMPEG")),
		DBPath:          strings.TrimSpace(os.Getenv("A2T_DB_PATH")),
	}

	if cfg.Engine == "" {
		cfg.Engine = EngineWhisperCpp
	}

	if err := ValidateEngine(cfg.Engine); err != nil {
		return nil, err
	}

	if cfg.OpenAIKey != "" {
		if err := ValidateAPIKey(cfg.OpenAIKey, "OpenAI"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// ResolveDBPath returns the history database path, defaulting to
// data/transcription.db under the project root.
func (c *Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}

	projectRoot, err := GetProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(projectRoot, "data", "transcription.db"), nil
}

// GetProjectRoot finds the project root directory by looking for go.mod.
func GetProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not find project root (go.mod not found)")
}

// InitializeConfig loads the environment and returns the parsed configuration.
// This is the main entry point for configuration loading.
func InitializeConfig() (*Config, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	return cfg, nil
}
