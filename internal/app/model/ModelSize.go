package model

import "fmt"

// ModelSize is a Whisper model size preset, trading inference speed for accuracy.
type ModelSize string

const (
	ModelTiny   ModelSize = "tiny"
	ModelBase   ModelSize = "base"
	ModelSmall  ModelSize = "small"
	ModelMedium ModelSize = "medium"
	ModelLarge  ModelSize = "large"
)

// AllModelSizes lists the supported presets in ascending size order.
var AllModelSizes = []ModelSize{ModelTiny, ModelBase, ModelSmall, ModelMedium, ModelLarge}

// ParseModelSize validates a user-supplied preset name.
func ParseModelSize(s string) (ModelSize, error) {
	for _, m := range AllModelSizes {
		if s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown model size %q, must be one of [tiny, base, small, medium, large]", s)
}

// GGMLFileName returns the conventional ggml model file name for this preset.
func (m ModelSize) GGMLFileName() string {
	return "ggml-" + string(m) + ".bin"
}

func (m ModelSize) String() string {
	return string(m)
}
