package whisper_cpp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audio2text/internal/app/model"
)

func TestBuildArgs(t *testing.T) {
	args := buildArgs("/models/ggml-base.bin", "/tmp/in.wav", "/tmp/a2t-123")

	assert.Equal(t, []string{
		"-m", "/models/ggml-base.bin",
		"-otxt",
		"-f", "/tmp/in.wav",
		"-of", "/tmp/a2t-123",
	}, args)
}

func TestNewLocalTranscriberForSize(t *testing.T) {
	lt := NewLocalTranscriberForSize("/opt/whisper/main", "/opt/whisper/models", model.ModelSmall)

	assert.Equal(t, "/opt/whisper/main", lt.binaryPath)
	assert.Equal(t, filepath.Join("/opt/whisper/models", "ggml-small.bin"), lt.modelPath)
}

func TestTranscriptMissingBinary(t *testing.T) {
	lt := NewLocalTranscriber(filepath.Join(t.TempDir(), "missing-binary"), "/models/ggml-base.bin")

	text, err := lt.Transcript("/tmp/in.wav")
	require.Error(t, err)
	assert.Empty(t, text)
	assert.Contains(t, err.Error(), "command execution error")
}

func TestName(t *testing.T) {
	assert.Equal(t, "whisper_cpp", NewLocalTranscriber("a", "b").Name())
}
