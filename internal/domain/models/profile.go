package models

// ModelProfile es la configuración de generación asociada a una tarea:
// qué modelo se usa y cuántos tokens de salida se le permiten.
type ModelProfile struct {
	Model           string
	MaxOutputTokens int32
}
