package factory

import (
	"context"
	"strings"

	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/ai/gemini"
	vcsgitlab "github.com/Tomas-vilte/MateReview/internal/infrastructure/vcs/gitlab"
	"github.com/Tomas-vilte/MateReview/internal/services"
)

// ReportServiceFactoryInterface permite inyectar una factory falsa en los
// tests de los comandos.
type ReportServiceFactoryInterface interface {
	CreateReportService(ctx context.Context, annotateBranches bool) (*services.ReportService, error)
}

// ReportServiceFactory arma el pipeline completo a partir de la configuración
// ya resuelta (archivo + entorno + flags).
type ReportServiceFactory struct {
	config *cfg.Config
	trans  *i18n.Translations
}

func NewReportServiceFactory(config *cfg.Config, trans *i18n.Translations) *ReportServiceFactory {
	return &ReportServiceFactory{
		config: config,
		trans:  trans,
	}
}

func (f *ReportServiceFactory) CreateReportService(ctx context.Context, annotateBranches bool) (*services.ReportService, error) {
	if missing := f.config.MissingKeys(); len(missing) > 0 {
		msg := f.trans.GetMessage("error.missing_config", 0, map[string]interface{}{
			"Keys": strings.Join(missing, ", "),
		})
		return nil, domainErrors.NewConfigError(strings.Join(missing, ", "), msg, nil)
	}

	host, err := vcsgitlab.NewGitLabService(f.config.GitLabURL, f.config.GitLabPrivateToken, f.config.GitLabProjectID, f.trans)
	if err != nil {
		return nil, err
	}

	generator, err := gemini.NewGeminiService(ctx, f.config.GeminiAPIKey, f.config.GeminiModel, f.trans)
	if err != nil {
		return nil, err
	}

	collector := services.NewEvidenceService(host, f.config.GitLabProjectID, annotateBranches, f.trans)
	writer := services.NewFileReportWriter()

	return services.NewReportService(collector, generator, writer, f.trans), nil
}
