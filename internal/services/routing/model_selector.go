package routing

import (
	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
)

// Modelos disponibles. "Pesado" para las tareas que razonan sobre el diff
// completo, "liviano" para las tareas cortas y baratas.
const (
	heavyModel = "gemini-3-pro-preview"
	lightModel = "gemini-2.5-flash"
)

// Presupuestos de tokens de salida por tamaño de tarea.
const (
	budgetLarge  int32 = 1024
	budgetMedium int32 = 512
	budgetSmall  int32 = 64
)

// taskProfiles es LA tabla de ruteo: cada comando mapea a exactamente un
// perfil. Agregar una tarea o cambiar un modelo tiene que seguir siendo un
// cambio de una línea acá, no una búsqueda por los call sites.
var taskProfiles = map[models.Command]models.ModelProfile{
	models.CommandSummary: {Model: heavyModel, MaxOutputTokens: budgetLarge},
	models.CommandRisks:   {Model: heavyModel, MaxOutputTokens: budgetMedium},
	models.CommandExplain: {Model: lightModel, MaxOutputTokens: budgetMedium},
	models.CommandTitle:   {Model: lightModel, MaxOutputTokens: budgetSmall},
	models.CommandLabels:  {Model: lightModel, MaxOutputTokens: budgetMedium},
}

// defaultProfile es el fallback para tareas sin entrada en la tabla.
var defaultProfile = models.ModelProfile{Model: heavyModel, MaxOutputTokens: budgetLarge}

type ModelSelector struct{}

func NewModelSelector() *ModelSelector {
	return &ModelSelector{}
}

// ProfileFor devuelve el perfil de modelo para un comando. Un comando no
// mapeado cae al default pesado.
func (m *ModelSelector) ProfileFor(cmd models.Command) models.ModelProfile {
	if profile, ok := taskProfiles[cmd]; ok {
		return profile
	}
	return defaultProfile
}

// GetRationale devuelve la clave de traducción que explica la elección del modelo.
func (m *ModelSelector) GetRationale(profile models.ModelProfile) string {
	switch profile.Model {
	case heavyModel:
		return "routing.reason_high_quality"
	case lightModel:
		return "routing.reason_economical"
	default:
		return "routing.reason_default"
	}
}
