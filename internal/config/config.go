package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

type Config struct {
	// Credenciales de la GitHub App. Con GithubToken seteado se usa un token
	// estático en su lugar (modo desarrollo).
	GithubAppID    int64  `json:"github_app_id"`
	PrivateKeyPath string `json:"private_key_path"`
	GithubToken    string `json:"github_token,omitempty"`

	GeminiAPIKey string `json:"gemini_api_key"`
	Language     string `json:"language"`
	Port         int    `json:"port"`
	PathFile     string `json:"path_file"`
}

const (
	defaultLang           = "en"
	defaultPort           = 3000
	defaultPrivateKeyPath = "private-key.pem"
)

// LoadConfig lee la configuración desde un archivo JSON. Si path no apunta a
// un .json se lo trata como directorio base y se usa
// <path>/.pr-summoner/config.json, creándolo con defaults si no existe. Las
// variables de entorno pisan los secretos del archivo.
func LoadConfig(path string) (*Config, error) {
	var configPath string

	if filepath.Ext(path) == ".json" {
		configPath = path
	} else {
		configDir := filepath.Join(path, ".pr-summoner")
		configPath = filepath.Join(configDir, "config.json")

		if _, err := os.Stat(configDir); os.IsNotExist(err) {
			if err := os.MkdirAll(configDir, 0755); err != nil {
				return nil, fmt.Errorf("error al crear el directorio de configuración: %w", err)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error al decodificar el archivo JSON: %w", err)
	}
	config.PathFile = configPath

	applyEnvOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("la configuración cargada no es válida: %w", err)
	}

	return &config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := &Config{
		Language:       defaultLang,
		Port:           defaultPort,
		PrivateKeyPath: defaultPrivateKeyPath,
		PathFile:       path,
	}

	// Se persisten solo los defaults; los secretos del entorno se aplican
	// sobre la copia en memoria y no quedan en disco.
	if err := SaveConfig(config); err != nil {
		return nil, err
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides replica el comportamiento dotenv: los secretos pueden
// venir del entorno sin tocar el archivo.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("GITHUB_APP_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			config.GithubAppID = id
		}
	}
	if v := os.Getenv("GITHUB_PRIVATE_KEY_PATH"); v != "" {
		config.PrivateKeyPath = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		config.GithubToken = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		config.GeminiAPIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Port = port
		}
	}
}

func validateConfig(config *Config) error {
	if config.Language == "" {
		config.Language = defaultLang
	}
	if config.Language != "en" && config.Language != "es" {
		return fmt.Errorf("idioma '%s' no soportado", config.Language)
	}
	if config.Port <= 0 {
		config.Port = defaultPort
	}
	if config.PrivateKeyPath == "" {
		config.PrivateKeyPath = defaultPrivateKeyPath
	}
	return nil
}

// SaveConfig persiste la configuración en su archivo de origen.
func SaveConfig(config *Config) error {
	if config.PathFile == "" {
		return fmt.Errorf("la configuración no tiene un archivo asociado")
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error al serializar la configuración: %w", err)
	}

	if err := os.WriteFile(config.PathFile, data, 0600); err != nil {
		return fmt.Errorf("error al escribir el archivo de configuración: %w", err)
	}
	return nil
}
