package config

import (
	"context"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			notSet := t.GetMessage("config.not_set", 0, nil)
			display := func(value string) string {
				if value == "" {
					return notSet
				}
				return value
			}

			ui.PrintSectionBanner(t.GetMessage("config.current", 0, nil))
			ui.PrintKeyValue("gitlab_url", display(cfg.GitLabURL))
			ui.PrintKeyValue("gitlab_private_token", display(maskSecret(cfg.GitLabPrivateToken)))
			ui.PrintKeyValue("gitlab_project_id", display(cfg.GitLabProjectID))
			ui.PrintKeyValue("gemini_api_key", display(maskSecret(cfg.GeminiAPIKey)))
			ui.PrintKeyValue("gemini_model", display(cfg.GeminiModel))
			ui.PrintKeyValue("language", display(cfg.Language))
			return nil
		},
	}
}
