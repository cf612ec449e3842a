package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModelSize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		want        ModelSize
		expectError bool
	}{
		{name: "tiny", input: "tiny", want: ModelTiny},
		{name: "base", input: "base", want: ModelBase},
		{name: "small", input: "small", want: ModelSmall},
		{name: "medium", input: "medium", want: ModelMedium},
		{name: "large", input: "large", want: ModelLarge},
		{name: "unknown", input: "huge", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "case_sensitive", input: "Base", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseModelSize(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGGMLFileName(t *testing.T) {
	assert.Equal(t, "ggml-base.bin", ModelBase.GGMLFileName())
	assert.Equal(t, "ggml-large.bin", ModelLarge.GGMLFileName())
}
