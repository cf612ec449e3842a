package audio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"audio2text/internal/app/model"
	"audio2text/internal/app/util/logger"
)

// GetAudioDuration returns the duration of an audio file in whole seconds.
func GetAudioDuration(filePath string) (int, error) {
	cmd := exec.Command("ffprobe", "-v", "error", "-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1", filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, err
	}
	return parseDuration(string(output))
}

func parseDuration(raw string) (int, error) {
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	return int(math.Round(durationFloat)), nil
}

// Is16kHzMonoWav reports whether the file already carries a single
// 16 kHz pcm_s16le audio stream, in which case re-encoding is pointless.
func Is16kHzMonoWav(filePath string) (bool, error) {
	cmd := exec.Command("ffprobe", "-v", "quiet", "-print_format", "json", "-show_streams", filePath)
	output, err := cmd.Output()
	if err != nil {
		return false, err
	}
	return probeMatches16kHzMono(output)
}

func probeMatches16kHzMono(probeJSON []byte) (bool, error) {
	var probeOutput model.FFProbeOutput
	if err := json.Unmarshal(probeJSON, &probeOutput); err != nil {
		return false, err
	}

	for _, stream := range probeOutput.Streams {
		if stream.CodecType == "audio" && stream.CodecName == "pcm_s16le" &&
			stream.SampleRate == 16000 && stream.Channels == 1 {
			return true, nil
		}
	}

	return false, nil
}

// convertArgs builds the fixed ffmpeg argument list enforcing mono channel,
// 16 kHz sample rate and 16-bit samples, overwriting any existing destination.
func convertArgs(src, dst string) []string {
	return []string{
		"-y",
		"-i", src,
		"-ac", "1",
		"-ar", "16000",
		"-sample_fmt", "s16",
		dst,
	}
}

// ConvertTo16kHzWav resamples src into a mono/16kHz/16-bit PCM WAV at dst
// using the given ffmpeg command. Any non-zero exit is a hard failure for
// the caller; there is no retry.
func ConvertTo16kHzWav(ffmpegCmd, src, dst string) error {
	logger.S().Debugf("converting %s to 16kHz mono wav", src)

	cmd := exec.Command(ffmpegCmd, convertArgs(src, dst)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}

	logger.S().Debugf("successfully converted %s to %s", src, dst)
	return nil
}
