package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Agent    AgentConfig
	OAuth    OAuthConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	DataDir            string
	SessionStore       string // "memory" or "redis"
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	JwtSecret   string
	EmailDomain string
}

type AgentConfig struct {
	Region          string
	AgentID         string
	AliasID         string
	KnowledgeBaseID string
}

type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			DataDir:            getEnv("DATA_DIR", "data"),
			SessionStore:       getEnv("SESSION_STORE", "memory"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JwtSecret:   getEnv("JWT_SECRET", ""),
			EmailDomain: getEnv("INSTITUTION_EMAIL_DOMAIN", "pkonnect.edu.np"),
		},
		Agent: AgentConfig{
			Region:          getEnv("AWS_REGION", "us-east-2"),
			AgentID:         getEnv("AGENT_ID", "KGNSQQYWQD"),
			AliasID:         getEnv("AGENT_ALIAS_ID", "Y5HBOIBFJR"),
			KnowledgeBaseID: getEnv("KNOWLEDGE_BASE_ID", "4DD13OSHSU"),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
