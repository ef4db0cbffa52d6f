package ports

import (
	"context"
)

// ReportGenerator define la interfaz hacia el backend generativo de texto.
// Una sola operación: prompt de entrada, texto generado de salida.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, prompt string) (string, error)
}
