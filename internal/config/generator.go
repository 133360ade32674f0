package config

import (
	"log"
	"os"
	"sync"
	"time"
)

// GeneratorConfig holds the wiring for the external text-generation service.
// Provider "ollama" targets any endpoint speaking the Ollama generate API;
// "gemini" switches to the Google Gemini SDK.
type GeneratorConfig struct {
	Provider string
	URL      string
	Model    string
	Timeout  time.Duration
}

var (
	generatorConfig *GeneratorConfig
	generatorOnce   sync.Once
)

func LoadGeneratorConfig() *GeneratorConfig {
	generatorOnce.Do(func() {
		generatorConfig = &GeneratorConfig{
			Provider: getenvDefault("LLM_PROVIDER", "ollama"),
			URL:      getenvDefault("LLM_URL", "http://localhost:11434"),
			Model:    getenvDefault("LLM_MODEL", "llama3"),
			Timeout:  getenvDuration("LLM_TIMEOUT", 30*time.Second),
		}
	})
	return generatorConfig
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Warning: %s=%q is not a valid duration, using %s", key, v, fallback)
		return fallback
	}
	return d
}
