package converter

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"audio2text/internal/app/api"
	"audio2text/internal/app/audio"
	"audio2text/internal/app/model"
	"audio2text/internal/app/repository"
	"audio2text/internal/app/util/files"
	"audio2text/internal/app/util/logger"
)

// Options carries per-run settings the converter records alongside results.
type Options struct {
	Engine     string
	Model      string
	FFmpegPath string
}

// Converter runs the transcription pipeline for single files and batches.
type Converter struct {
	transcriber api.Transcriber
	db          repository.TranscriptionDAO
	opts        Options
}

func NewConverter(transcriber api.Transcriber, transcriptionDAO repository.TranscriptionDAO, opts Options) *Converter {
	if opts.Engine == "" {
		if named, ok := transcriber.(api.Named); ok {
			opts.Engine = named.Name()
		}
	}
	return &Converter{
		transcriber: transcriber,
		db:          transcriptionDAO,
		opts:        opts,
	}
}

func (c *Converter) Close() error {
	return c.db.Close()
}

// TranscribeFile transcribes a single audio file and returns the trimmed
// text. Every failure mode surfaces the same way: a diagnostic on stderr and
// an empty transcript. An empty result for a readable file means no speech
// was detected, which is a valid outcome.
func (c *Converter) TranscribeFile(inputPath string) string {
	if _, err := os.Stat(inputPath); err != nil {
		logger.S().Errorf("audio file '%s' does not exist", inputPath)
		c.record(inputPath, "", 0, "", 1, "audio file does not exist")
		return ""
	}

	wavPath := inputPath
	tempWav := ""

	if needsConversion(inputPath) {
		ffmpegCmd, err := audio.LocateFFmpeg(c.opts.FFmpegPath)
		if err != nil {
			c.record(inputPath, "", 0, "", 1, err.Error())
			return ""
		}

		tempWav = filepath.Join(os.TempDir(), "a2t-"+uuid.NewString()+".wav")
		if err := audio.ConvertTo16kHzWav(ffmpegCmd, inputPath, tempWav); err != nil {
			logger.S().Errorf("error during conversion to WAV: %v", err)
			os.Remove(tempWav)
			c.record(inputPath, filepath.Base(tempWav), 0, "", 1, err.Error())
			return ""
		}
		wavPath = tempWav
	}

	// The temporary file must not outlive this call; cleanup failures are
	// deliberately suppressed.
	defer func() {
		if tempWav != "" {
			os.Remove(tempWav)
		}
	}()

	duration, err := audio.GetAudioDuration(wavPath)
	if err != nil {
		logger.S().Debugf("could not determine audio duration for %s: %v", inputPath, err)
	}

	logger.S().Infof("transcribing audio file: %s", inputPath)

	transcript, err := c.transcriber.Transcript(wavPath)
	if err != nil {
		logger.S().Errorf("error during transcription: %v", err)
		c.record(inputPath, filepath.Base(wavPath), duration, "", 1, err.Error())
		return ""
	}

	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		logger.S().Warnf("no speech detected in audio file")
	} else {
		logger.S().Infof("transcription completed successfully")
	}

	c.record(inputPath, filepath.Base(wavPath), duration, transcript, 0, "")
	return transcript
}

// TranscribeBatch enumerates files matching pattern (all MP3 files in the
// working directory when empty) and transcribes them strictly one at a time,
// writing each non-empty transcript to a sibling <base>_transcript.txt file.
// Existing transcript files are overwritten.
func (c *Converter) TranscribeBatch(pattern string) error {
	targets, err := resolveTargets(pattern)
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		logger.S().Warn("no audio files found to transcribe")
		return nil
	}

	logger.S().Infof("found %d audio files to transcribe", len(targets))

	pm := NewProgressManager(ProgressConfig{Enabled: ShouldShowProgress(false)})
	bar := pm.CreateBar(len(targets), "Transcribing")

	for _, audioFile := range targets {
		logger.S().Infof("processing: %s", audioFile)

		transcript := c.TranscribeFile(audioFile)
		if transcript != "" {
			outputFile := files.TranscriptPath(audioFile)
			if err := os.WriteFile(outputFile, []byte(transcript), 0o644); err != nil {
				logger.S().Errorf("failed to save transcript for %s: %v", audioFile, err)
			} else {
				logger.S().Infof("transcript saved to: %s", outputFile)
			}
		} else {
			logger.S().Warnf("no transcript generated for %s", audioFile)
		}

		bar.Increment()
	}

	bar.Complete()
	pm.Wait()
	return nil
}

func resolveTargets(pattern string) ([]string, error) {
	if pattern == "" {
		fileInfos, err := files.GetAllMP3Files(".")
		if err != nil {
			return nil, err
		}
		return lo.Map(fileInfos, func(fi model.FileInfo, _ int) string {
			return fi.FullPath
		}), nil
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// needsConversion decides whether ffmpeg normalization must run first.
// WAV inputs already in 16 kHz mono s16 shape pass straight through; when
// probing is impossible the file is handed to the engine as-is.
func needsConversion(inputPath string) bool {
	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".mp3", ".m4a":
		return true
	case ".wav":
		conforms, err := audio.Is16kHzMonoWav(inputPath)
		if err != nil {
			return false
		}
		return !conforms
	default:
		return true
	}
}

func (c *Converter) record(inputPath, wavFileName string, duration int,
	transcript string, hasError int, errorMessage string) {
	c.db.RecordToDB(filepath.Base(inputPath), inputPath, wavFileName, duration,
		c.opts.Engine, c.opts.Model, transcript, time.Now(), hasError, errorMessage)
}
