package app

import (
	"audio2text/internal/app/api"
	"audio2text/internal/app/api/openai"
	"audio2text/internal/app/api/openai/whisper"
	"audio2text/internal/app/api/whisper_cpp"
	"audio2text/internal/app/converter"
	"audio2text/internal/app/model"
	"audio2text/internal/app/repository"
	"audio2text/internal/app/repository/sqlite"
	"audio2text/internal/app/util/logger"
	"audio2text/internal/config"
)

// provideTranscriber selects the transcription engine configured via A2T_ENGINE.
func provideTranscriber(cfg *config.Config, size model.ModelSize) api.Transcriber {
	switch cfg.Engine {
	case config.EngineOpenAI:
		// Remote conversion through the OpenAI API, requires OPENAI_API_KEY.
		return whisper.NewRemoteTranscriber(openai.GetClient())
	default:
		// Native whisper.cpp conversion, you need a compiled binary and a
		// downloaded ggml model for the selected size preset.
		if cfg.WhisperBinary == "" {
			logger.S().Fatal("WHISPER_CPP_BINARY environment variable must be set for the whisper_cpp engine")
		}
		if cfg.WhisperModelDir == "" {
			logger.S().Fatal("WHISPER_CPP_MODEL_DIR environment variable must be set for the whisper_cpp engine")
		}
		return whisper_cpp.NewLocalTranscriberForSize(cfg.WhisperBinary, cfg.WhisperModelDir, size)
	}
}

func provideTranscriptionDAO(cfg *config.Config) repository.TranscriptionDAO {
	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		logger.S().Fatalf("failed to resolve history database path: %v", err)
	}
	return sqlite.NewSQLiteDB(dbPath)
}

func provideOptions(cfg *config.Config, size model.ModelSize) converter.Options {
	return converter.Options{
		Engine:     cfg.Engine,
		Model:      size.String(),
		FFmpegPath: cfg.FFmpegPath,
	}
}
