package errors

import "fmt"

// ConfigError representa un error de configuración
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config error [%s]: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("config error [%s]: %s", e.Field, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError crea un nuevo error de configuración
func NewConfigError(field, message string, err error) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// HostError representa un fallo de la API de GitLab a nivel del merge request
// (no encontrado, autenticación, rate limit). Es fatal para toda la corrida.
type HostError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *HostError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gitlab api error [%d]: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gitlab api error: %s", e.Message)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// NewHostError crea un nuevo error de la API de GitLab
func NewHostError(statusCode int, message string, err error) *HostError {
	return &HostError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// TemplateNotFoundError indica que se pidió un estilo que no existe en el catálogo
type TemplateNotFoundError struct {
	Style string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("Estilo '%s' no encontrado en el catálogo de templates", e.Style)
}

// NewTemplateNotFoundError crea un nuevo error de estilo no encontrado
func NewTemplateNotFoundError(style string) *TemplateNotFoundError {
	return &TemplateNotFoundError{Style: style}
}

// SlotError indica que un slot requerido no tiene valor o que se pasó un slot desconocido
type SlotError struct {
	Template string
	Slot     string
	Reason   string
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("template '%s', slot '%s': %s", e.Template, e.Slot, e.Reason)
}

// NewSlotError crea un nuevo error de slot
func NewSlotError(template, slot, reason string) *SlotError {
	return &SlotError{
		Template: template,
		Slot:     slot,
		Reason:   reason,
	}
}

// GenerationError indica que la llamada al backend de IA falló para un estilo.
// Es fatal para ese estilo, los demás estilos de la corrida siguen.
type GenerationError struct {
	Style string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("error generando el reporte (estilo: %s): %v", e.Style, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError crea un nuevo error de generación
func NewGenerationError(style string, err error) *GenerationError {
	return &GenerationError{Style: style, Err: err}
}

// WriteError indica que no se pudo persistir un archivo de salida
type WriteError struct {
	Filename string
	Err      error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error escribiendo el archivo %s: %v", e.Filename, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError crea un nuevo error de escritura
func NewWriteError(filename string, err error) *WriteError {
	return &WriteError{Filename: filename, Err: err}
}
