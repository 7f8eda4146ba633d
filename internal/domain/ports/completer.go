package ports

import (
	"context"

	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
)

// Completer define la llamada saliente al proveedor de modelos: un prompt,
// un perfil de modelo, y texto crudo como resultado. No devuelve texto
// parcial: ante cualquier fallo el resultado es solo el error.
type Completer interface {
	Complete(ctx context.Context, profile models.ModelProfile, prompt string) (string, error)
}
