package i18n

import (
	"embed"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/active.*.toml
var localeFS embed.FS

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations carga los mensajes embebidos (inglés por defecto más los
// locales empaquetados) y opcionalmente un directorio externo de locales.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded locales: %w", err)
	}
	for _, entry := range entries {
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("error reading embedded locale %s: %w", entry.Name(), err)
		}
		bundle.MustParseMessageFileBytes(data, entry.Name())
	}

	if localesPath != "" {
		files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}
		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	["app_usage"]
	other = "AI release summaries and code reviews for GitLab merge requests"

	["factory_already_registered"]
	other = "Factory '{{.FactoryName}}' is already registered"

	["app_description"]
	other = "mate-review collects commits, diffs and file contents from a GitLab merge request and asks Gemini to write audience-targeted release summaries or a full code review."

	["help_command_usage"]
	other = "Show help"

	["summarize.usage"]
	other = "Generate release summaries for a merge request"

	["summarize.flag_mr"]
	other = "IID (internal ID) of the merge request to analyze (e.g. 123)"

	["summarize.flag_style"]
	other = "Summary style(s): clients, devops, developers, or 'all'"

	["summarize.flag_debug"]
	other = "Save the full prompt to a debug file"

	["summarize.flag_annotate"]
	other = "Annotate commit lines with the inferred branch category (best effort)"

	["review.usage"]
	other = "Generate an AI code review for a merge request"

	["flag.gitlab_url"]
	other = "Override GitLab URL (env: GITLAB_URL)"

	["flag.gitlab_token"]
	other = "Override GitLab personal access token (env: GITLAB_PRIVATE_TOKEN)"

	["flag.project_id"]
	other = "Override GitLab project ID (env: GITLAB_PROJECT_ID)"

	["flag.gemini_api_key"]
	other = "Override Gemini API key (env: GEMINI_API_KEY)"

	["config.usage"]
	other = "Manage mate-review configuration"

	["config.init_usage"]
	other = "Configure the GitLab connection and the Gemini API key interactively"

	["config.show_usage"]
	other = "Show the current configuration"

	["config.set_model_usage"]
	other = "Set the Gemini model"

	["config.set_lang_usage"]
	other = "Set the interface language (en, es)"

	["config.saved"]
	other = "Configuration saved to {{.Path}}"

	["config.current"]
	other = "Current configuration"

	["config.prompt_gitlab_url"]
	other = "Enter GitLab URL [{{.Default}}]: "

	["config.prompt_gitlab_token"]
	other = "Enter GitLab personal access token: "

	["config.prompt_project_id"]
	other = "Enter GitLab project ID: "

	["config.prompt_gemini_key"]
	other = "Enter Gemini API key: "

	["config.value_required"]
	other = "{{.Key}} is required"

	["config.not_set"]
	other = "(not set)"

	["error.missing_config"]
	other = "Missing required configuration values: {{.Keys}}"

	["error.missing_config_hint"]
	other = "Provide them via CLI flags, set them as environment variables, or run 'mate-review config init'"

	["error.client_init"]
	other = "Error initializing clients: {{.Error}}"

	["evidence.fetching"]
	other = "Fetching data for MR !{{.IID}} in project {{.Project}}..."

	["evidence.found_commits"]
	one = "Found {{.Count}} commit"
	other = "Found {{.Count}} commits"

	["evidence.found_changes"]
	one = "Found {{.Count}} changed file"
	other = "Found {{.Count}} changed files"

	["evidence.fetching_contents"]
	other = "Fetching full file contents from the source branch..."

	["evidence.file_content_warning"]
	other = "Could not fetch full file content for {{.Path}}: {{.Error}}"

	["report.generating"]
	other = "Generating report (style: {{.Style}})... This may take a moment"

	["report.debug_saved"]
	other = "Debug prompt saved to: {{.Filename}}"

	["report.saved"]
	other = "Success! Report saved to: {{.Filename}}"

	["report.style_failed"]
	other = "Style '{{.Style}}' failed: {{.Error}}"

	["report.styles_failed"]
	other = "{{.Count}} of the requested styles failed: {{.Styles}}"

	["ai_service.missing_api_key"]
	other = "Gemini API key is not configured"

	["ai_service.error_ai_client"]
	other = "Could not create the Gemini client: {{.Error}}"

	["ai_service.empty_response"]
	other = "The AI returned an empty response"
	`
