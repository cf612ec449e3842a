package config

import (
	"fmt"
	"strings"
)

// ValidateAPIKey validates API key format.
func ValidateAPIKey(apiKey string, keyType string) error {
	if apiKey == "" {
		return fmt.Errorf("%s API key is required", keyType)
	}

	switch keyType {
	case "OpenAI":
		if !strings.HasPrefix(apiKey, "sk-") {
			return fmt.Errorf("invalid OpenAI API key format: must start with 'sk-'")
		}
		if len(apiKey) < 20 {
			return fmt.Errorf("invalid OpenAI API key format: too short")
		}
	}

	return nil
}

// ValidateEngine checks that the engine name is one of the supported engines.
func ValidateEngine(engine string) error {
	switch engine {
	case EngineWhisperCpp, EngineOpenAI:
		return nil
	default:
		return fmt.Errorf("unknown engine %q, must be one of [%s, %s]", engine, EngineWhisperCpp, EngineOpenAI)
	}
}
