package command

import (
	"strings"

	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
)

// Trigger es el token fijo que convierte un comentario en un comando.
const Trigger = "/summon"

// vocabulary es el conjunto cerrado de comandos reconocidos. Sin matching
// parcial ni fuzzy: el token matchea exacto (case-folded) o es desconocido.
var vocabulary = map[string]models.Command{
	"summary": models.CommandSummary,
	"explain": models.CommandExplain,
	"risks":   models.CommandRisks,
	"title":   models.CommandTitle,
	"labels":  models.CommandLabels,
}

// Parse interpreta el cuerpo de un comentario como una invocación del bot.
// Un comentario que no empieza con el trigger no es un comando (no-op, no un
// error). El trigger solo, sin argumento, pide el mensaje de ayuda. Cualquier
// token no reconocido produce CommandUnknown con el token textual.
func Parse(body string) models.Invocation {
	fields := strings.Fields(strings.TrimSpace(body))
	if len(fields) == 0 || fields[0] != Trigger {
		return models.Invocation{Kind: models.InvocationNone}
	}

	if len(fields) == 1 {
		return models.Invocation{Kind: models.InvocationUsage}
	}

	token := fields[1]
	if cmd, ok := vocabulary[strings.ToLower(token)]; ok {
		return models.Invocation{Kind: models.InvocationCommand, Command: cmd}
	}

	return models.Invocation{
		Kind:     models.InvocationCommand,
		Command:  models.CommandUnknown,
		RawToken: token,
	}
}
