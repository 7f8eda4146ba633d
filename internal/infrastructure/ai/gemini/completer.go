package gemini

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/PRSummoner/internal/domain/models"
	"github.com/Tomas-vilte/PRSummoner/internal/domain/ports"
	"github.com/Tomas-vilte/PRSummoner/internal/i18n"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.Completer = (*GeminiCompleter)(nil)

// GeminiCompleter implementa la llamada saliente al proveedor de modelos.
// El cliente se crea una vez al arranque; el modelo y el presupuesto de
// tokens vienen en el perfil de cada tarea.
type GeminiCompleter struct {
	client *genai.Client
	trans  *i18n.Translations
}

func NewGeminiCompleter(ctx context.Context, apiKey string, trans *i18n.Translations) (*GeminiCompleter, error) {
	if apiKey == "" {
		msg := trans.GetMessage("error_missing_api_key", 0, map[string]interface{}{"Provider": "gemini"})
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		msg := trans.GetMessage("ai_service.error_ai_client", 0, map[string]interface{}{
			"Error": err,
		})
		return nil, fmt.Errorf("%s", msg)
	}

	return &GeminiCompleter{
		client: client,
		trans:  trans,
	}, nil
}

func (g *GeminiCompleter) Complete(ctx context.Context, profile models.ModelProfile, prompt string) (string, error) {
	model := g.client.GenerativeModel(profile.Model)
	model.SetMaxOutputTokens(profile.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	text := formatResponse(resp)
	if text == "" {
		return "", fmt.Errorf("%s", g.trans.GetMessage("ai_service.error_empty_response", 0, nil))
	}
	return text, nil
}

func (g *GeminiCompleter) Close() error {
	return g.client.Close()
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent string
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent += fmt.Sprintf("%v", part)
			}
		}
	}
	return formattedContent
}
