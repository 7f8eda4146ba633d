package ai

import (
	"strings"
	"testing"

	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_EmbedsDiff(t *testing.T) {
	diff := "+print('x')"

	commands := []models.Command{
		models.CommandSummary,
		models.CommandExplain,
		models.CommandRisks,
		models.CommandTitle,
		models.CommandLabels,
	}

	for _, cmd := range commands {
		for _, lang := range []string{"en", "es"} {
			t.Run(cmd.String()+"_"+lang, func(t *testing.T) {
				prompt := BuildPrompt(lang, cmd, diff)

				assert.Contains(t, prompt, diff)
			})
		}
	}
}

func TestBuildPrompt_SummaryMandatesOutputContract(t *testing.T) {
	// El template de summary tiene que pedir los marcadores con la sintaxis
	// literal que la capa de extracción parsea.
	for _, lang := range []string{"en", "es"} {
		prompt := BuildPrompt(lang, models.CommandSummary, "+x")

		assert.Contains(t, prompt, `TITLE: "`)
		assert.Contains(t, prompt, `LABELS: [`)
	}
}

func TestBuildPrompt_TitleAndLabelsMandateTheirMarker(t *testing.T) {
	titlePrompt := BuildPrompt("en", models.CommandTitle, "+x")
	labelsPrompt := BuildPrompt("en", models.CommandLabels, "+x")

	assert.Contains(t, titlePrompt, `TITLE: "`)
	assert.NotContains(t, titlePrompt, `LABELS: [`)
	assert.Contains(t, labelsPrompt, `LABELS: [`)
	assert.NotContains(t, labelsPrompt, `TITLE: "`)
}

func TestBuildPrompt_ExplainAndRisksAskNoMarkers(t *testing.T) {
	for _, cmd := range []models.Command{models.CommandExplain, models.CommandRisks} {
		prompt := BuildPrompt("en", cmd, "+x")

		assert.False(t, strings.Contains(prompt, "TITLE:"), "el template de %s no pide título", cmd)
		assert.False(t, strings.Contains(prompt, "LABELS:"), "el template de %s no pide etiquetas", cmd)
	}
}

func TestBuildPrompt_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	prompt := BuildPrompt("fr", models.CommandSummary, "+x")

	assert.Contains(t, prompt, "expert software reviewer")
}
