// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config aggregates every section of the service configuration.
type Config struct {
	Server ServerConfig
	Mongo  MongoConfig
	AI     AIConfig
	KB     KBConfig
	CORS   CORSConfig
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		Mongo:  loadMongoConfig(),
		AI:     loadAIConfig(),
		KB:     loadKBConfig(),
		CORS:   loadCORSConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "5501"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// MongoConfig describes the durable document store.
type MongoConfig struct {
	URI      string
	Database string
}

// Enabled reports whether a connection string was supplied. Without one the
// server falls back to in-memory stores.
func (c MongoConfig) Enabled() bool {
	return c.URI != ""
}

func loadMongoConfig() MongoConfig {
	return MongoConfig{
		URI:      strings.TrimSpace(os.Getenv("MONGO_URI")),
		Database: getEnvOrDefault("MONGO_DB", "portfolio"),
	}
}

// AIConfig describes the Gemini completion provider.
type AIConfig struct {
	APIKey string
	Model  string
}

// Enabled reports whether a provider credential is configured. Without one
// the chat pipeline returns deterministic mock replies instead of calling
// the network.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadAIConfig() AIConfig {
	return AIConfig{
		APIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-1.0-pro"),
	}
}

// KBConfig describes the editable FAQ source and its admin surface.
type KBConfig struct {
	FAQPath    string
	AdminToken string
}

func loadKBConfig() KBConfig {
	return KBConfig{
		FAQPath:    getEnvOrDefault("KB_FAQ_PATH", "data/kb_faq.json"),
		AdminToken: strings.TrimSpace(os.Getenv("KB_ADMIN_TOKEN")),
	}
}

// CORSConfig describes the browser origins allowed to call the API.
type CORSConfig struct {
	ClientOrigin string
}

// AllowedOrigins returns the full allow-list: the configured client origin,
// local dev ports, and the production domains.
func (c CORSConfig) AllowedOrigins() []string {
	origin := c.ClientOrigin
	if origin == "" {
		origin = "http://localhost:3501"
	}
	return []string{
		origin,
		"http://localhost:3502",
		"http://localhost:3503",
		"http://localhost:3504",
		"http://localhost:3505",
		"http://localhost:4173",
		"https://gabriel-ludwig-rivera.vercel.app",
		"https://gabrielludwig.dev",
	}
}

func loadCORSConfig() CORSConfig {
	return CORSConfig{ClientOrigin: strings.TrimSpace(os.Getenv("CLIENT_ORIGIN"))}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
