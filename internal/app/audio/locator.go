package audio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"audio2text/internal/app/util/logger"
)

// ffmpegCandidates returns the probe order for locating an ffmpeg executable:
// an explicit override first, then the system PATH, then the ffmpeg-static
// install locations used by node projects that bundle their own binary.
func ffmpegCandidates(override string) []string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}

	candidates := []string{
		"ffmpeg",
		filepath.Join(cwd, "node_modules", "ffmpeg-static", "ffmpeg.exe"),
		filepath.Join(cwd, "node_modules", "ffmpeg-static", "ffmpeg"),
	}
	if override != "" {
		candidates = append([]string{override}, candidates...)
	}
	return candidates
}

// LocateFFmpeg finds a usable ffmpeg command, trying candidates in fixed
// priority order. The bare command name is verified by invoking it; fallback
// paths only need to exist. The first success wins.
func LocateFFmpeg(override string) (string, error) {
	for _, candidate := range ffmpegCandidates(override) {
		if candidate == "ffmpeg" {
			if err := exec.Command(candidate, "-version").Run(); err == nil {
				return candidate, nil
			}
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	logger.S().Error("ffmpeg not found in system PATH or node_modules")
	return "", fmt.Errorf("ffmpeg not found in system PATH or node_modules")
}
