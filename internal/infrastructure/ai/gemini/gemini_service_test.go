package gemini

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/google/generative-ai-go/genai"
)

func TestNewGeminiService(t *testing.T) {
	t.Run("should fail when the API key is empty", func(t *testing.T) {
		trans, err := i18n.NewTranslations("en", "")
		require.NoError(t, err)

		service, err := NewGeminiService(context.Background(), "", "", trans)

		assert.Error(t, err)
		assert.Nil(t, service)
	})
}

func TestFormatResponse(t *testing.T) {
	t.Run("should return empty string for a nil response", func(t *testing.T) {
		assert.Equal(t, "", formatResponse(nil))
	})

	t.Run("should return empty string when there are no candidates", func(t *testing.T) {
		assert.Equal(t, "", formatResponse(&genai.GenerateContentResponse{}))
	})

	t.Run("should concatenate all text parts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Parts: []genai.Part{
							genai.Text("## Release\n"),
							genai.Text("- Added login"),
						},
					},
				},
			},
		}

		assert.Equal(t, "## Release\n- Added login", formatResponse(resp))
	})

	t.Run("should skip candidates without content", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: nil},
			},
		}

		assert.Equal(t, "", formatResponse(resp))
	})
}
