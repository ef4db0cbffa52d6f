package services

import (
	"os"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
)

var _ ports.ReportWriter = (*FileReportWriter)(nil)

// FileReportWriter escribe los artefactos de salida en el directorio actual.
type FileReportWriter struct{}

func NewFileReportWriter() *FileReportWriter {
	return &FileReportWriter{}
}

func (w *FileReportWriter) Write(filename string, content string) error {
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return domainErrors.NewWriteError(filename, err)
	}
	return nil
}
