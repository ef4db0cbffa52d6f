package summarize

import (
	"context"
	"errors"
	"fmt"

	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	domainErrors "github.com/Tomas-vilte/MateReview/internal/domain/errors"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/factory"
	"github.com/Tomas-vilte/MateReview/internal/ui"
	"github.com/urfave/cli/v3"
)

type SummarizeCommand struct {
	factory factory.ReportServiceFactoryInterface
}

func NewSummarizeCommandFactory(f factory.ReportServiceFactoryInterface) *SummarizeCommand {
	return &SummarizeCommand{factory: f}
}

// OverrideFlags son los flags compartidos que pisan la configuración cargada
// (archivo + entorno) para una sola corrida.
func OverrideFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "gitlab-url",
			Usage: t.GetMessage("flag.gitlab_url", 0, nil),
		},
		&cli.StringFlag{
			Name:  "gitlab-token",
			Usage: t.GetMessage("flag.gitlab_token", 0, nil),
		},
		&cli.StringFlag{
			Name:  "project-id",
			Usage: t.GetMessage("flag.project_id", 0, nil),
		},
		&cli.StringFlag{
			Name:  "gemini-api-key",
			Usage: t.GetMessage("flag.gemini_api_key", 0, nil),
		},
	}
}

// ApplyOverrides copia los valores de los flags presentes sobre la
// configuración efectiva.
func ApplyOverrides(cmd *cli.Command, config *cfg.Config) {
	if v := cmd.String("gitlab-url"); v != "" {
		config.GitLabURL = v
	}
	if v := cmd.String("gitlab-token"); v != "" {
		config.GitLabPrivateToken = v
	}
	if v := cmd.String("project-id"); v != "" {
		config.GitLabProjectID = v
	}
	if v := cmd.String("gemini-api-key"); v != "" {
		config.GeminiAPIKey = v
	}
}

// HandleServiceError imprime un error de configuración con su sugerencia y
// deja pasar el resto tal cual.
func HandleServiceError(err error, t *i18n.Translations) error {
	var configErr *domainErrors.ConfigError
	if errors.As(err, &configErr) {
		ui.PrintErrorWithSuggestion(configErr.Message, t.GetMessage("error.missing_config_hint", 0, nil))
	}
	return err
}

func (c *SummarizeCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:     "mr",
			Aliases:  []string{"n"},
			Usage:    t.GetMessage("summarize.flag_mr", 0, nil),
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:    "style",
			Aliases: []string{"s"},
			Usage:   t.GetMessage("summarize.flag_style", 0, nil),
			Value:   []string{"all"},
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("summarize.flag_debug", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "annotate-branches",
			Usage: t.GetMessage("summarize.flag_annotate", 0, nil),
		},
	}
	flags = append(flags, OverrideFlags(t)...)

	return &cli.Command{
		Name:    "summarize",
		Aliases: []string{"sum"},
		Usage:   t.GetMessage("summarize.usage", 0, nil),
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ApplyOverrides(cmd, config)

			service, err := c.factory.CreateReportService(ctx, cmd.Bool("annotate-branches"))
			if err != nil {
				return HandleServiceError(err, t)
			}

			iid := cmd.Int("mr")
			spinner := ui.NewSmartSpinner(t.GetMessage("evidence.fetching", 0, map[string]interface{}{
				"IID":     iid,
				"Project": config.GitLabProjectID,
			}))
			spinner.Start()

			reports, err := service.RunSummaries(ctx, iid, cmd.StringSlice("style"), cmd.Bool("debug"), func(msg string) {
				spinner.Log(msg)
			})
			if err != nil {
				spinner.Error(err.Error())
				return err
			}

			spinner.Success(fmt.Sprintf("MR !%d", iid))
			for _, report := range reports {
				ui.PrintReport(report.Filename, report.Text)
			}
			return nil
		},
	}
}
