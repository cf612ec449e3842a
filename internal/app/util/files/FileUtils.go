package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"audio2text/internal/app/model"
)

// SupportedExtensions are the audio formats the pipeline accepts.
var SupportedExtensions = []string{".mp3", ".wav", ".m4a"}

// IsSupportedAudio reports whether the path has a recognized audio extension.
func IsSupportedAudio(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return lo.Contains(SupportedExtensions, ext)
}

// GetAllMP3Files returns the MP3 files in inputDir sorted oldest first.
func GetAllMP3Files(inputDir string) ([]model.FileInfo, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, err
	}

	mp3s := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && strings.ToLower(filepath.Ext(e.Name())) == ".mp3"
	})

	fileInfos := make([]model.FileInfo, 0, len(mp3s))
	for _, e := range mp3s {
		info, err := e.Info()
		if err != nil {
			continue
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: filepath.Join(inputDir, e.Name()),
			ModTime:  info.ModTime(),
			Name:     e.Name(),
		})
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.Before(fileInfos[j].ModTime)
	})

	return fileInfos, nil
}

// TranscriptPath derives the batch output file name for an input audio file:
// the extension is replaced by "_transcript.txt" in the same directory.
func TranscriptPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_transcript.txt"
}

// ReadOutputFile reads the specified output file and returns its text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}

// CheckAndCreateDirectory creates dir and any missing parents.
func CheckAndCreateDirectory(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, os.ModePerm)
	}
	return nil
}
