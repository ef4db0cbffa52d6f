package config

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/Tomas-vilte/MateReview/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config.init_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			reader := bufio.NewReader(os.Stdin)
			return runInitProcess(reader, cfg, t)
		},
	}
}

func runInitProcess(reader *bufio.Reader, cfg *config.Config, t *i18n.Translations) error {
	fmt.Print(t.GetMessage("config.prompt_gitlab_url", 0, map[string]interface{}{
		"Default": cfg.GitLabURL,
	}))
	gitlabURL, err := readLine(reader)
	if err != nil {
		return err
	}
	if gitlabURL != "" {
		cfg.GitLabURL = gitlabURL
	}

	fmt.Print(t.GetMessage("config.prompt_gitlab_token", 0, nil))
	token, err := readLine(reader)
	if err != nil {
		return err
	}
	if token != "" {
		cfg.GitLabPrivateToken = token
	}

	fmt.Print(t.GetMessage("config.prompt_project_id", 0, nil))
	projectID, err := readLine(reader)
	if err != nil {
		return err
	}
	if projectID != "" {
		cfg.GitLabProjectID = projectID
	}

	fmt.Print(t.GetMessage("config.prompt_gemini_key", 0, nil))
	apiKey, err := readLine(reader)
	if err != nil {
		return err
	}
	if apiKey != "" {
		cfg.GeminiAPIKey = apiKey
	}

	if err := config.SaveConfig(cfg); err != nil {
		return err
	}

	ui.PrintSuccess(os.Stdout, t.GetMessage("config.saved", 0, map[string]interface{}{
		"Path": cfg.PathFile,
	}))
	return nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error al leer la entrada: %w", err)
	}
	return strings.TrimSpace(line), nil
}
