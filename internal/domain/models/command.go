package models

// Command es el conjunto cerrado de tareas de análisis que el bot sabe ejecutar.
type Command int

const (
	CommandUnknown Command = iota
	CommandSummary
	CommandExplain
	CommandRisks
	CommandTitle
	CommandLabels
)

func (c Command) String() string {
	switch c {
	case CommandSummary:
		return "summary"
	case CommandExplain:
		return "explain"
	case CommandRisks:
		return "risks"
	case CommandTitle:
		return "title"
	case CommandLabels:
		return "labels"
	default:
		return "unknown"
	}
}

// InvocationKind distingue entre "no es un comando", "comando sin argumento"
// y un comando propiamente dicho.
type InvocationKind int

const (
	// InvocationNone indica que el comentario no empieza con el trigger.
	// No es un error: simplemente no hay nada que hacer.
	InvocationNone InvocationKind = iota
	// InvocationUsage indica el trigger sin argumento: se responde con ayuda.
	InvocationUsage
	// InvocationCommand indica un token reconocido o CommandUnknown.
	InvocationCommand
)

// Invocation es el resultado de parsear el cuerpo de un comentario.
// Inmutable una vez construida.
type Invocation struct {
	Kind    InvocationKind
	Command Command
	// RawToken conserva el token original cuando Command es CommandUnknown,
	// para poder citarlo textualmente en la respuesta.
	RawToken string
}
