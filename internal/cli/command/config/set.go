package config

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetModelCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-model",
		Usage:     t.GetMessage("config.set_model_usage", 0, nil),
		ArgsUsage: "<model>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			model := cmd.Args().First()
			if model == "" {
				return fmt.Errorf("%s", t.GetMessage("config.value_required", 0, map[string]interface{}{
					"Key": "gemini_model",
				}))
			}

			cfg.GeminiModel = model
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config.saved", 0, map[string]interface{}{
				"Path": cfg.PathFile,
			}))
			return nil
		},
	}
}

func (c *ConfigCommandFactory) newSetLangCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-lang",
		Usage:     t.GetMessage("config.set_lang_usage", 0, nil),
		ArgsUsage: "<lang>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			lang := cmd.Args().First()
			if lang != "en" && lang != "es" {
				return fmt.Errorf("%s", t.GetMessage("config.value_required", 0, map[string]interface{}{
					"Key": "language (en, es)",
				}))
			}

			if err := t.SetLanguage(lang); err != nil {
				return err
			}

			cfg.Language = lang
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config.saved", 0, map[string]interface{}{
				"Path": cfg.PathFile,
			}))
			return nil
		},
	}
}
