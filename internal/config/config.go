package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	GitLabURL          string `toml:"gitlab_url"`
	GitLabPrivateToken string `toml:"gitlab_private_token"`
	GitLabProjectID    string `toml:"gitlab_project_id"`
	GeminiAPIKey       string `toml:"gemini_api_key"`
	GeminiModel        string `toml:"gemini_model"`
	Language           string `toml:"language"`

	PathFile string `toml:"-"`
}

const (
	defaultGitLabURL   = "https://gitlab.com"
	defaultGeminiModel = "gemini-2.5-flash"
	defaultLang        = "en"
)

// LoadConfig lee la configuración desde <path>/.mate-review/config.toml,
// creando un archivo con valores por defecto si todavía no existe. Las
// variables de entorno pisan lo que diga el archivo.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".toml" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".mate-review")
		configPath = filepath.Join(configDir, "config.toml")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig(configPath)
		if err != nil {
			return nil, err
		}
	} else {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
		}

		config = &Config{}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("error al decodificar el archivo TOML: %w", err)
		}
		config.PathFile = configPath
	}

	applyDefaults(config)
	applyEnvOverrides(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		GitLabURL:   defaultGitLabURL,
		GeminiModel: defaultGeminiModel,
		Language:    defaultLang,
		PathFile:    path,
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
	}

	if err := writeConfigFile(config, path); err != nil {
		return nil, fmt.Errorf("error al guardar la configuración por defecto: %w", err)
	}

	return config, nil
}

// SaveConfig persiste la configuración en la ruta desde donde se cargó.
func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return fmt.Errorf("la configuración a guardar no es válida: %w", err)
	}

	if config.PathFile == "" {
		return errors.New("la ruta del archivo de configuración no está definida")
	}

	return writeConfigFile(config, config.PathFile)
}

func writeConfigFile(config *Config, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return fmt.Errorf("error al codificar la configuración: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error al guardar la configuración: %w", err)
	}

	return nil
}

func applyDefaults(config *Config) {
	if config.GitLabURL == "" {
		config.GitLabURL = defaultGitLabURL
	}
	if config.GeminiModel == "" {
		config.GeminiModel = defaultGeminiModel
	}
	if config.Language == "" {
		config.Language = defaultLang
	}
}

func applyEnvOverrides(config *Config) {
	if v := os.Getenv("GITLAB_URL"); v != "" {
		config.GitLabURL = v
	}
	if v := os.Getenv("GITLAB_PRIVATE_TOKEN"); v != "" {
		config.GitLabPrivateToken = v
	}
	if v := os.Getenv("GITLAB_PROJECT_ID"); v != "" {
		config.GitLabProjectID = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		config.GeminiAPIKey = v
	}
}

// MissingKeys devuelve los nombres de los campos obligatorios que siguen vacíos.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.GitLabPrivateToken == "" {
		missing = append(missing, "gitlab_private_token")
	}
	if c.GitLabProjectID == "" {
		missing = append(missing, "gitlab_project_id")
	}
	if c.GeminiAPIKey == "" {
		missing = append(missing, "gemini_api_key")
	}
	return missing
}

func validateConfig(config *Config) error {
	if config.GitLabURL == "" {
		return errors.New("gitlab_url no puede estar vacío")
	}
	if config.Language == "" {
		return errors.New("language no puede estar vacío")
	}
	return nil
}
