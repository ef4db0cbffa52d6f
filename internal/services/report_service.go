package services

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/domain/models"
	"github.com/Tomas-vilte/MateReview/internal/domain/ports"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/prompt"
)

// ReportService orquesta una corrida completa: recolecta la evidencia una
// sola vez, y por cada estilo pedido arma el prompt, llama al backend de IA
// y persiste el resultado. Un fallo en un estilo no frena a los demás; un
// fallo en la recolección de evidencia aborta la corrida.
type ReportService struct {
	collector ports.EvidenceCollector
	generator ports.ReportGenerator
	writer    ports.ReportWriter
	trans     *i18n.Translations
}

func NewReportService(collector ports.EvidenceCollector, generator ports.ReportGenerator, writer ports.ReportWriter, trans *i18n.Translations) *ReportService {
	return &ReportService{
		collector: collector,
		generator: generator,
		writer:    writer,
		trans:     trans,
	}
}

// RunSummaries genera los resúmenes de release para los estilos pedidos.
// Devuelve los reportes que salieron bien; el error es no-nil si falló al
// menos un estilo (la corrida entera se considera fallida).
func (s *ReportService) RunSummaries(ctx context.Context, iid int, styles []string, debug bool, progress func(string)) ([]models.GeneratedReport, error) {
	notify := notifier(progress)
	resolved := prompt.ResolveStyles(styles)

	evidence, err := s.collector.CollectSummaryEvidence(ctx, iid, progress)
	if err != nil {
		return nil, err
	}

	reports := make([]models.GeneratedReport, 0, len(resolved))
	var failed []string

	for _, style := range resolved {
		notify(s.trans.GetMessage("report.generating", 0, map[string]interface{}{
			"Style": style,
		}))

		report, err := s.runSummaryStyle(ctx, iid, style, evidence, debug, notify)
		if err != nil {
			notify(s.trans.GetMessage("report.style_failed", 0, map[string]interface{}{
				"Style": style,
				"Error": err.Error(),
			}))
			failed = append(failed, style)
			continue
		}

		reports = append(reports, report)
		notify(s.trans.GetMessage("report.saved", 0, map[string]interface{}{
			"Filename": report.Filename,
		}))
	}

	if len(failed) > 0 {
		msg := s.trans.GetMessage("report.styles_failed", len(failed), map[string]interface{}{
			"Count":  len(failed),
			"Styles": strings.Join(failed, ", "),
		})
		return reports, fmt.Errorf("%s", msg)
	}
	return reports, nil
}

func (s *ReportService) runSummaryStyle(ctx context.Context, iid int, style string, evidence *models.SummaryEvidence, debug bool, notify func(string)) (models.GeneratedReport, error) {
	promptText, err := prompt.BuildSummaryPrompt(style, evidence)
	if err != nil {
		return models.GeneratedReport{}, err
	}

	if debug {
		s.writeDebugPrompt(iid, style, promptText, notify)
	}

	text, err := s.generator.GenerateReport(ctx, promptText)
	if err != nil {
		return models.GeneratedReport{}, domainErrors.NewGenerationError(style, err)
	}

	filename := fmt.Sprintf("release_summary_mr_%d.%s.md", iid, style)
	if err := s.writer.Write(filename, text); err != nil {
		return models.GeneratedReport{}, err
	}

	return models.GeneratedReport{
		Style:    style,
		Text:     text,
		Filename: filename,
	}, nil
}

// RunReview genera el code review del MR. Acá no hay estilos: cualquier
// fallo después de la recolección es fatal para la corrida.
func (s *ReportService) RunReview(ctx context.Context, iid int, debug bool, progress func(string)) (models.GeneratedReport, error) {
	notify := notifier(progress)

	evidence, err := s.collector.CollectReviewEvidence(ctx, iid, progress)
	if err != nil {
		return models.GeneratedReport{}, err
	}

	promptText, err := prompt.BuildReviewPrompt(evidence)
	if err != nil {
		return models.GeneratedReport{}, err
	}

	notify(s.trans.GetMessage("report.generating", 0, map[string]interface{}{
		"Style": "review",
	}))

	if debug {
		s.writeDebugPrompt(iid, "review", promptText, notify)
	}

	text, err := s.generator.GenerateReport(ctx, promptText)
	if err != nil {
		return models.GeneratedReport{}, domainErrors.NewGenerationError("review", err)
	}

	filename := fmt.Sprintf("code_review_mr_%d.md", iid)
	if err := s.writer.Write(filename, text); err != nil {
		return models.GeneratedReport{}, err
	}

	report := models.GeneratedReport{
		Style:    "review",
		Text:     text,
		Filename: filename,
	}
	notify(s.trans.GetMessage("report.saved", 0, map[string]interface{}{
		"Filename": report.Filename,
	}))
	return report, nil
}

// writeDebugPrompt persiste el prompt crudo. Que falle no corta el estilo:
// el prompt de debug es un extra, no parte del resultado.
func (s *ReportService) writeDebugPrompt(iid int, style, promptText string, notify func(string)) {
	filename := fmt.Sprintf("debug_prompt_mr_%d.%s.md", iid, style)
	if err := s.writer.Write(filename, promptText); err != nil {
		notify(err.Error())
		return
	}
	notify(s.trans.GetMessage("report.debug_saved", 0, map[string]interface{}{
		"Filename": filename,
	}))
}
