package models

type (
	// ExtractedFields son los campos semiestructurados recuperados del texto
	// generado por el modelo. La ausencia de un campo es un resultado normal,
	// nunca un error.
	ExtractedFields struct {
		Title    string
		HasTitle bool
		// Labels conserva el orden del modelo y no se deduplica: aplicar
		// etiquetas en la plataforma ya es idempotente.
		Labels []string
	}

	// ActionPlan es la secuencia ordenada de escrituras contra la plataforma
	// para un PR concreto. Se construye una vez y se ejecuta a lo sumo una vez.
	ActionPlan struct {
		Comment  string
		Labels   []string
		Title    string
		HasTitle bool
	}
)
