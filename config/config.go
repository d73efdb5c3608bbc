package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// LLMProvider holds the connection settings for the external
// text-completion service. APIKey names the environment variable that
// carries the actual key; LoadConfig resolves it.
type LLMProvider struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Retrieval holds the tunables of the knowledge retrieval subsystem.
type Retrieval struct {
	SearchLimit   int `mapstructure:"search_limit"`   // max results for knowledge base search
	ContextLimit  int `mapstructure:"context_limit"`  // max documents injected as chat context
	ExcerptBudget int `mapstructure:"excerpt_budget"` // per-document content excerpt, in characters
	TitleWeight   int `mapstructure:"title_weight"`
	SummaryWeight int `mapstructure:"summary_weight"`
}

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // "memory" or a SQLite file path
	}
	JWTSecret       string      `mapstructure:"jwt_secret"`
	LLMSystemPrompt string      `mapstructure:"llm_system_prompt"`
	LLMProvider     LLMProvider `mapstructure:"llm_provider"`
	Retrieval       Retrieval   `mapstructure:"retrieval"`
	JournalDataPath string      `mapstructure:"journal_data_path"`
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from config/config.yaml and environment
// variables. Missing file is not fatal; defaults cover every setting the
// retrieval core depends on.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../config")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "memory")
	viper.SetDefault("jwt_secret", "mindhaven-dev-secret")
	viper.SetDefault("journal_data_path", "data/journals.json")
	viper.SetDefault("retrieval.search_limit", 5)
	viper.SetDefault("retrieval.context_limit", 3)
	viper.SetDefault("retrieval.excerpt_budget", 1500)
	viper.SetDefault("retrieval.title_weight", 3)
	viper.SetDefault("retrieval.summary_weight", 2)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] Configuration file (config.yaml) not found. Using environment variables and defaults.")
		} else {
			log.Fatalf("FATAL: [Config] Error reading configuration file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal configuration into AppConfig struct: %v", err)
	}

	// Environment variable overrides
	if port := os.Getenv("SERVER_PORT"); port != "" {
		AppConfig.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by environment variable SERVER_PORT: %s", port)
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		AppConfig.Database.DSN = dsn
		log.Printf("INFO: [Config] Database DSN overridden by environment variable DATABASE_DSN.")
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		AppConfig.JWTSecret = secret
	}

	// The api_key field names an environment variable so the key itself
	// never lives in config.yaml.
	if envVar := AppConfig.LLMProvider.APIKey; envVar != "" {
		if value := os.Getenv(envVar); value != "" {
			AppConfig.LLMProvider.APIKey = value
			log.Printf("INFO: [Config] Loaded LLM API key from environment variable '%s'.", envVar)
		} else {
			AppConfig.LLMProvider.APIKey = ""
			log.Printf("WARN: [Config] LLM API key environment variable '%s' is not set. Chat will use fallback replies.", envVar)
		}
	}

	log.Println("INFO: [Config] Configuration loading complete.")
}
