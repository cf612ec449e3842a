package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"audio2text/internal/app/model"
)

// ToExcel writes transcription history rows to an xlsx file.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "File Name"
	headerRow.AddCell().Value = "Last Conversion Time"
	headerRow.AddCell().Value = "Audio Duration"
	headerRow.AddCell().Value = "Engine"
	headerRow.AddCell().Value = "Model"
	headerRow.AddCell().Value = "Transcription"
	headerRow.AddCell().Value = "Error Message"

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.FileName
		row.AddCell().Value = t.LastConversionTime.Format(time.RFC3339)
		row.AddCell().Value = fmt.Sprintf("%ds", t.AudioDuration)
		row.AddCell().Value = t.Engine
		row.AddCell().Value = t.ModelName
		row.AddCell().Value = t.Transcription
		row.AddCell().Value = t.ErrorMessage
	}

	return file.Save(outputFilePath)
}
