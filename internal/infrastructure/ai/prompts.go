package ai

import (
	"fmt"

	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
)

// Templates para el análisis de Pull Requests. Cada comando tiene su template
// fijo, parametrizado únicamente por el texto del diff.
//
// El template de summary exige un contrato textual en la SALIDA del modelo:
// los marcadores TITLE: "..." y LABELS: [...] con esa sintaxis literal, que
// es lo único que la capa de extracción sabe parsear. Cambiar esa sintaxis
// rompe la compatibilidad con el parser.
const (
	summaryPromptTemplateEN = `You are an expert software reviewer.
Summarize the following Pull Request diff clearly and concisely.
Explain what changed, why it matters, and its potential impact.

At the end of your answer, on their own lines, include exactly:
TITLE: "<a short suggested PR title>"
LABELS: ["<label>", "<label>"] (choose from: feature, fix, refactor, docs, infra, test)

Diff:
%s`

	summaryPromptTemplateES = `Sos un revisor de software experto.
Resumí el siguiente diff de Pull Request de forma clara y concisa.
Explicá qué cambió, por qué importa y su impacto potencial.

Al final de tu respuesta, en líneas propias, incluí exactamente:
TITLE: "<un título corto sugerido para el PR>"
LABELS: ["<etiqueta>", "<etiqueta>"] (opciones: feature, fix, refactor, docs, infra, test)

Diff:
%s`

	explainPromptTemplateEN = `You are an expert software reviewer.
Walk through the following Pull Request diff and explain, change by change,
what the code does and how the pieces fit together. Favor clarity over brevity.

Diff:
%s`

	explainPromptTemplateES = `Sos un revisor de software experto.
Recorré el siguiente diff de Pull Request y explicá, cambio por cambio, qué
hace el código y cómo encajan las piezas. Priorizá claridad sobre brevedad.

Diff:
%s`

	risksPromptTemplateEN = `You are an expert software reviewer.
Assess the risks of the following Pull Request diff: breaking changes,
security concerns, performance regressions and missing test coverage.
Order the findings from most to least severe.

Diff:
%s`

	risksPromptTemplateES = `Sos un revisor de software experto.
Evaluá los riesgos del siguiente diff de Pull Request: cambios que rompen
compatibilidad, problemas de seguridad, regresiones de performance y falta de
cobertura de tests. Ordená los hallazgos de más a menos severo.

Diff:
%s`

	titlePromptTemplateEN = `Suggest a single short title (max 80 chars) for the Pull Request below.
Reply with exactly one line in this form and nothing else:
TITLE: "<your suggested title>"

Diff:
%s`

	titlePromptTemplateES = `Sugerí un único título corto (máx 80 caracteres) para el Pull Request de abajo.
Respondé con exactamente una línea con esta forma y nada más:
TITLE: "<tu título sugerido>"

Diff:
%s`

	labelsPromptTemplateEN = `Pick the labels that describe the Pull Request below.
Options: feature, fix, refactor, docs, infra, test.
Reply with exactly one line in this form and nothing else:
LABELS: ["<label>", "<label>"]

Diff:
%s`

	labelsPromptTemplateES = `Elegí las etiquetas que describen el Pull Request de abajo.
Opciones: feature, fix, refactor, docs, infra, test.
Respondé con exactamente una línea con esta forma y nada más:
LABELS: ["<etiqueta>", "<etiqueta>"]

Diff:
%s`
)

// BuildPrompt construye el prompt de un comando con el diff embebido.
func BuildPrompt(lang string, cmd models.Command, diff string) string {
	return fmt.Sprintf(getPromptTemplate(lang, cmd), diff)
}

func getPromptTemplate(lang string, cmd models.Command) string {
	es := lang == "es"
	switch cmd {
	case models.CommandExplain:
		if es {
			return explainPromptTemplateES
		}
		return explainPromptTemplateEN
	case models.CommandRisks:
		if es {
			return risksPromptTemplateES
		}
		return risksPromptTemplateEN
	case models.CommandTitle:
		if es {
			return titlePromptTemplateES
		}
		return titlePromptTemplateEN
	case models.CommandLabels:
		if es {
			return labelsPromptTemplateES
		}
		return labelsPromptTemplateEN
	default:
		// Summary es también la tarea implícita del ciclo de vida.
		if es {
			return summaryPromptTemplateES
		}
		return summaryPromptTemplateEN
	}
}
