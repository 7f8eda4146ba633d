package models

// EventKind identifica la variante de un evento entrante del webhook.
type EventKind int

const (
	// EventUnhandled es un evento que no dispara ninguna acción.
	EventUnhandled EventKind = iota
	// EventPullRequest es un PR abierto o sincronizado.
	EventPullRequest
	// EventComment es un comentario escrito por un humano sobre un issue o PR.
	EventComment
)

// InboundEvent es el resultado de clasificar un payload de webhook.
// Se construye una vez por entrega y se descarta al terminar el request.
type InboundEvent struct {
	Kind           EventKind
	Owner          string
	Repo           string
	Number         int
	InstallationID int64
	// CommentBody es el texto del comentario, solo para EventComment.
	CommentBody string
}
