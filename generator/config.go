package generator

import (
	"encoding/json"
	"os"
)

// Config is the top-level config.json. Every field is optional: with no llm
// block the app runs in offline test mode instead of refusing to start.
type Config struct {
	LLM             *LLMConfig `json:"llm,omitempty"`
	ServerAddr      string     `json:"server_addr,omitempty"`
	FetchTimeoutSec int        `json:"fetch_timeout_sec,omitempty"`
}

// LLMConfig selects and credentials the model backend.
type LLMConfig struct {
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
}

// LoadConfig reads JSON config from disk.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Settings converts the config block into the form the client constructors take.
func (c *LLMConfig) Settings() *LLMSettings {
	if c == nil {
		return nil
	}
	return &LLMSettings{
		Provider: c.Provider,
		Model:    c.Model,
		APIKey:   c.APIKey,
		BaseURL:  c.BaseURL,
	}
}
