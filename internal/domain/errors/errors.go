package errors

import "fmt"

// ClassificationError indica un payload malformado: se encontró una variante
// pero faltan los campos que la identifican. Nunca se expone a la plataforma,
// solo se loguea; el request se reconoce igual.
type ClassificationError struct {
	Field string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("payload malformado: falta el campo '%s'", e.Field)
}

// NewClassificationError crea un nuevo error de clasificación
func NewClassificationError(field string) *ClassificationError {
	return &ClassificationError{Field: field}
}

// GenerationError indica que la llamada al modelo falló o expiró. Los efectos
// del comando afectado se omiten por completo: no hay texto parcial que publicar.
type GenerationError struct {
	Task string
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("la generación para '%s' falló: %v", e.Task, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError crea un nuevo error de generación
func NewGenerationError(task string, err error) *GenerationError {
	return &GenerationError{Task: task, Err: err}
}

// PlatformActionError indica que un paso individual de escritura (comentario,
// etiquetas o título) falló. Los pasos están aislados: este error se loguea
// y no aborta a sus hermanos ni a la respuesta HTTP.
type PlatformActionError struct {
	Step string
	Err  error
}

func (e *PlatformActionError) Error() string {
	return fmt.Sprintf("la acción '%s' contra la plataforma falló: %v", e.Step, e.Err)
}

func (e *PlatformActionError) Unwrap() error {
	return e.Err
}

// NewPlatformActionError crea un nuevo error de acción de plataforma
func NewPlatformActionError(step string, err error) *PlatformActionError {
	return &PlatformActionError{Step: step, Err: err}
}
