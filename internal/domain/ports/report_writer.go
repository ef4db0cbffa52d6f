package ports

// ReportWriter persiste un artefacto de salida. Un fallo de escritura se
// reporta por archivo y no bloquea las escrituras restantes.
type ReportWriter interface {
	Write(filename string, content string) error
}
