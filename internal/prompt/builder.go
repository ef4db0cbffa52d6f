package prompt

import (
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
)

// BuildSummaryPrompt liga la evidencia de resumen al template del estilo pedido.
// Es una función pura: misma evidencia, mismo prompt.
func BuildSummaryPrompt(style string, evidence *models.SummaryEvidence) (string, error) {
	tpl, err := SummaryTemplate(style)
	if err != nil {
		return "", err
	}

	return tpl.Render(map[string]string{
		"mr_title":        evidence.Meta.Title,
		"mr_description":  evidence.Meta.Description,
		"commit_messages": evidence.CommitMessages,
		"code_diffs":      evidence.CodeDiffs,
	})
}

// BuildReviewPrompt liga la evidencia de review al template de code review.
func BuildReviewPrompt(evidence *models.ReviewEvidence) (string, error) {
	return ReviewTemplate().Render(map[string]string{
		"mr_title":           evidence.Meta.Title,
		"mr_description":     evidence.Meta.Description,
		"commit_messages":    evidence.CommitMessages,
		"labeled_code_diffs": evidence.LabeledCodeDiffs,
		"full_files_content": evidence.FullFilesContent,
	})
}
