package ports

import (
	"context"
)

// PlatformClient expone las operaciones de escritura/lectura contra la
// plataforma de hosting para un repositorio concreto. Es el objeto capacidad
// que produce una sesión autenticada: los callers lo reciben ya ligado a
// owner/repo y no vuelven a derivar credenciales.
type PlatformClient interface {
	// PostComment publica un comentario en el issue o PR indicado.
	PostComment(ctx context.Context, number int, body string) error
	// AddLabels agrega etiquetas al PR. Es aditivo e idempotente.
	AddLabels(ctx context.Context, number int, labels []string) error
	// SetTitle sobreescribe el título del PR.
	SetTitle(ctx context.Context, number int, title string) error
	// FetchDiff obtiene el diff unificado del PR como texto.
	FetchDiff(ctx context.Context, number int) (string, error)
}

// SessionFactory abre una sesión autenticada contra la plataforma para una
// instalación concreta y devuelve la capacidad ligada a owner/repo.
type SessionFactory interface {
	Session(ctx context.Context, installationID int64, owner, repo string) (PlatformClient, error)
}
