package whisper_cpp

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"

	"audio2text/internal/app/model"
	"audio2text/internal/app/util/files"
	"audio2text/internal/app/util/logger"
)

// LocalTranscriber implements local transcription using the whisper.cpp binary.
type LocalTranscriber struct {
	binaryPath string
	modelPath  string
}

// NewLocalTranscriber creates a transcriber around a whisper.cpp binary and a
// concrete ggml model file.
func NewLocalTranscriber(binaryPath, modelPath string) *LocalTranscriber {
	return &LocalTranscriber{
		binaryPath: binaryPath,
		modelPath:  modelPath,
	}
}

// NewLocalTranscriberForSize resolves the model file for a size preset under
// modelDir, following the ggml-<size>.bin naming convention.
func NewLocalTranscriberForSize(binaryPath, modelDir string, size model.ModelSize) *LocalTranscriber {
	return NewLocalTranscriber(binaryPath, filepath.Join(modelDir, size.GGMLFileName()))
}

func (lt *LocalTranscriber) Name() string { return "whisper_cpp" }

// Transcript runs whisper.cpp on a 16kHz mono WAV file and returns the
// transcribed text. whisper.cpp writes its text output to <stem>.txt, so a
// unique stem under the temp directory is used and removed afterwards.
func (lt *LocalTranscriber) Transcript(inputFilePath string) (string, error) {
	outputStem := filepath.Join(os.TempDir(), "a2t-"+uuid.NewString())

	args := buildArgs(lt.modelPath, inputFilePath, outputStem)
	command := exec.Command(lt.binaryPath, args...)

	var stderr bytes.Buffer
	command.Stderr = &stderr

	logger.S().Debugf("running transcription command: %s %v", lt.binaryPath, args)

	if err := command.Run(); err != nil {
		return "", fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String())
	}

	outputFile := outputStem + ".txt"
	defer os.Remove(outputFile)

	output, err := files.ReadOutputFile(outputFile)
	if err != nil {
		return "", fmt.Errorf("failed to read output file: %v", err)
	}

	return output, nil
}

func buildArgs(modelPath, inputFilePath, outputStem string) []string {
	return []string{
		"-m", modelPath,
		"-otxt",
		"-f", inputFilePath,
		"-of", outputStem,
	}
}
