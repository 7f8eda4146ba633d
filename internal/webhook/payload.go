package webhook

// Payload es el subconjunto del payload de webhook de GitHub que el router
// necesita para clasificar una entrega. Todos los campos son opcionales a
// nivel JSON; la validación se hace recién al elegir una variante.
type Payload struct {
	Action       string        `json:"action"`
	Comment      *Comment      `json:"comment"`
	Issue        *Issue        `json:"issue"`
	PullRequest  *PullRequest  `json:"pull_request"`
	Repository   *Repository   `json:"repository"`
	Installation *Installation `json:"installation"`
}

// Comment es el comentario humano que dispara el pipeline de comandos.
type Comment struct {
	Body string `json:"body"`
}

// Issue identifica el issue (o PR, visto como issue) comentado.
type Issue struct {
	Number int `json:"number"`
}

// PullRequest identifica el PR de un evento de ciclo de vida.
type PullRequest struct {
	Number  int    `json:"number"`
	DiffURL string `json:"diff_url"`
}

// Repository identifica el repositorio origen de la entrega.
type Repository struct {
	Name  string `json:"name"`
	Owner Owner  `json:"owner"`
}

// Owner es el dueño del repositorio.
type Owner struct {
	Login string `json:"login"`
}

// Installation identifica la instalación de la GitHub App.
type Installation struct {
	ID int64 `json:"id"`
}
