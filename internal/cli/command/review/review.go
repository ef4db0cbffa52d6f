package review

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateReview/internal/cli/command/summarize"
	cfg "github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/infrastructure/factory"
	"github.com/Tomas-vilte/MateReview/internal/ui"
	"github.com/urfave/cli/v3"
)

type ReviewCommand struct {
	factory factory.ReportServiceFactoryInterface
}

func NewReviewCommandFactory(f factory.ReportServiceFactoryInterface) *ReviewCommand {
	return &ReviewCommand{factory: f}
}

func (c *ReviewCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:     "mr",
			Aliases:  []string{"n"},
			Usage:    t.GetMessage("summarize.flag_mr", 0, nil),
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("summarize.flag_debug", 0, nil),
		},
	}
	flags = append(flags, summarize.OverrideFlags(t)...)

	return &cli.Command{
		Name:    "review",
		Aliases: []string{"rev"},
		Usage:   t.GetMessage("review.usage", 0, nil),
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			summarize.ApplyOverrides(cmd, config)

			// el review no anota ramas: el heurístico solo aplica a los resúmenes
			service, err := c.factory.CreateReportService(ctx, false)
			if err != nil {
				return summarize.HandleServiceError(err, t)
			}

			iid := cmd.Int("mr")
			spinner := ui.NewSmartSpinner(t.GetMessage("evidence.fetching", 0, map[string]interface{}{
				"IID":     iid,
				"Project": config.GitLabProjectID,
			}))
			spinner.Start()

			report, err := service.RunReview(ctx, iid, cmd.Bool("debug"), func(msg string) {
				spinner.Log(msg)
			})
			if err != nil {
				spinner.Error(err.Error())
				return err
			}

			spinner.Success(fmt.Sprintf("MR !%d", iid))
			ui.PrintReport(report.Filename, report.Text)
			return nil
		},
	}
}
