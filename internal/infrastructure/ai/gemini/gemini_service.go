package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var _ ports.ReportGenerator = (*GeminiService)(nil)

// DefaultModel es el modelo que se usa cuando la configuración no define otro.
const DefaultModel = "gemini-2.5-flash"

// GeminiService implementa ports.ReportGenerator sobre la API de Gemini.
// Un solo intento por llamada, sin reintentos.
type GeminiService struct {
	client *genai.Client
	model  *genai.GenerativeModel
	trans  *i18n.Translations
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, trans *i18n.Translations) (*GeminiService, error) {
	if apiKey == "" {
		msg := trans.GetMessage("ai_service.missing_api_key", 0, nil)
		return nil, fmt.Errorf("%s", msg)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		msg := trans.GetMessage("ai_service.error_ai_client", 0, map[string]interface{}{
			"Error": err.Error(),
		})
		return nil, fmt.Errorf("%s", msg)
	}

	if modelName == "" {
		modelName = DefaultModel
	}

	model := client.GenerativeModel(modelName)
	return &GeminiService{
		client: client,
		model:  model,
		trans:  trans,
	}, nil
}

func (s *GeminiService) GenerateReport(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("error al generar contenido: %w", err)
	}

	text := formatResponse(resp)
	if text == "" {
		msg := s.trans.GetMessage("ai_service.empty_response", 0, nil)
		return "", fmt.Errorf("%s", msg)
	}

	return text, nil
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var formattedContent strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				formattedContent.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return formattedContent.String()
}
