package internal

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Config holds application settings.
type Config struct {
	// User configurable settings
	ListenAddr        string
	GroqAPIKey        string
	GroqBaseURL       string
	Model             string
	TranscriptAPIKey  string
	TranscriptAPIURL  string
	OEmbedURL         string
	LLMTimeout        time.Duration
	TranscriptTimeout time.Duration
	MetadataTimeout   time.Duration
	SubprocessTimeout time.Duration
	Verbose           bool

	// Fixed XDG paths (not configurable)
	ConfigDir string
	CacheDir  string
}

//go:embed config.toml
var defaultFS embed.FS

// EnsureDefaultConfig creates a default config file in the XDG config
// directory if none exists yet.
func EnsureDefaultConfig(configDir string) error {
	filePath := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(filePath); err == nil {
		return nil
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultContent, err := defaultFS.ReadFile("config.toml")
	if err != nil {
		return fmt.Errorf("reading embedded default configuration: %w", err)
	}

	if err := os.WriteFile(filePath, defaultContent, 0o644); err != nil {
		return fmt.Errorf("writing default configuration: %w", err)
	}

	fmt.Printf("Created default configuration at %s\n", filePath)
	return nil
}

// InitConfig initializes Viper and loads configuration.
func InitConfig() *Config {
	configDir := filepath.Join(xdg.ConfigHome, "youtube-summarizer")
	cacheDir := filepath.Join(xdg.CacheHome, "youtube-summarizer")

	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("groq_base_url", DefaultGroqBaseURL)
	v.SetDefault("model", "llama-3.1-8b-instant")
	v.SetDefault("transcript_api_url", DefaultTranscriptAPIURL)
	v.SetDefault("oembed_url", DefaultOEmbedURL)
	v.SetDefault("llm_timeout", 2*time.Minute)
	v.SetDefault("transcript_timeout", time.Minute)
	v.SetDefault("metadata_timeout", 15*time.Second)
	v.SetDefault("subprocess_timeout", 30*time.Second)
	v.SetDefault("verbose", false)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	v.SetEnvPrefix("SUMMARIZER")
	v.AutomaticEnv()

	// API keys follow the conventional environment variable names.
	_ = v.BindEnv("groq_api_key", "GROQ_API_KEY")
	_ = v.BindEnv("transcript_api_key", "TRANSCRIPT_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Error reading config file: %v\n", err)
		}
	}

	return &Config{
		ListenAddr:        v.GetString("listen_addr"),
		GroqAPIKey:        v.GetString("groq_api_key"),
		GroqBaseURL:       v.GetString("groq_base_url"),
		Model:             v.GetString("model"),
		TranscriptAPIKey:  v.GetString("transcript_api_key"),
		TranscriptAPIURL:  v.GetString("transcript_api_url"),
		OEmbedURL:         v.GetString("oembed_url"),
		LLMTimeout:        v.GetDuration("llm_timeout"),
		TranscriptTimeout: v.GetDuration("transcript_timeout"),
		MetadataTimeout:   v.GetDuration("metadata_timeout"),
		SubprocessTimeout: v.GetDuration("subprocess_timeout"),
		Verbose:           v.GetBool("verbose"),

		ConfigDir: configDir,
		CacheDir:  cacheDir,
	}
}

// ValidateGroqAPIKey checks if the Groq API key is set.
func ValidateGroqAPIKey(apiKey string) error {
	if apiKey == "" {
		return fmt.Errorf("Groq API key is required - set it in config.toml or the GROQ_API_KEY environment variable")
	}
	return nil
}

// EnsureDirs creates directories if needed.
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
