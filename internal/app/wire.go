//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"audio2text/internal/app/converter"
	"audio2text/internal/app/model"
	"audio2text/internal/config"
)

func InitializeConverter(cfg *config.Config, size model.ModelSize) *converter.Converter {
	wire.Build(converter.NewConverter, provideTranscriber, provideTranscriptionDAO, provideOptions)
	return &converter.Converter{}
}
