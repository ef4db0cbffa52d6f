package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/MateReview/internal/config"
	"github.com/Tomas-vilte/MateReview/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations) {
	tempDir := t.TempDir()

	cfg := &config.Config{
		GitLabURL: "https://gitlab.com",
		Language:  "en",
		PathFile:  filepath.Join(tempDir, "config.toml"),
	}

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	return cfg, translations
}

func TestMaskSecret(t *testing.T) {
	t.Run("should keep a short prefix and hide the rest", func(t *testing.T) {
		assert.Equal(t, "glpa********", maskSecret("glpat-supersecret"))
	})

	t.Run("should fully mask very short secrets", func(t *testing.T) {
		assert.Equal(t, "***", maskSecret("abc"))
	})

	t.Run("should leave empty values empty", func(t *testing.T) {
		assert.Equal(t, "", maskSecret(""))
	})
}

func TestConfigCommand(t *testing.T) {
	factory := NewConfigCommandFactory()

	t.Run("should expose the four subcommands", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		cmd := factory.CreateCommand(translations, cfg)

		assert.Equal(t, "config", cmd.Name)
		require.Len(t, cmd.Commands, 4)
		names := []string{cmd.Commands[0].Name, cmd.Commands[1].Name, cmd.Commands[2].Name, cmd.Commands[3].Name}
		assert.Equal(t, []string{"init", "show", "set-model", "set-lang"}, names)
	})
}

func TestSetModelCommand(t *testing.T) {
	factory := NewConfigCommandFactory()

	t.Run("should persist the new model", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)
		cmd := factory.newSetModelCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"set-model", "gemini-2.5-pro"})

		require.NoError(t, err)
		assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
		assert.FileExists(t, cfg.PathFile)
	})

	t.Run("should fail without a model argument", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)
		cmd := factory.newSetModelCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"set-model"})

		assert.Error(t, err)
		assert.Empty(t, cfg.GeminiModel)
	})
}

func TestSetLangCommand(t *testing.T) {
	factory := NewConfigCommandFactory()

	t.Run("should persist a supported language", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)
		cmd := factory.newSetLangCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"set-lang", "es"})

		require.NoError(t, err)
		assert.Equal(t, "es", cfg.Language)
	})

	t.Run("should reject an unsupported language", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)
		cmd := factory.newSetLangCommand(translations, cfg)

		err := cmd.Run(context.Background(), []string{"set-lang", "fr"})

		assert.Error(t, err)
		assert.Equal(t, "en", cfg.Language)
	})
}
