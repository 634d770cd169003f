package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultTokenTTL   = 24 * time.Hour
)

// Config is built once at startup and passed by reference into every
// component; nothing mutates it afterwards.
type Config struct {
	Env    string
	DB     DB
	Server Server
	Auth   Auth
	Crypto Crypto
	Logger Logger
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress    string
	PublicBaseURL string
}

type Auth struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type Crypto struct {
	// EncryptionKey is the master key for medical field encryption:
	// 64 hex characters or 32 raw characters. Validated by crypto.NewCipher
	// at startup; never logged or echoed back.
	EncryptionKey string
}

type Logger struct {
	LogLevel string
}

// MustLoad reads configuration from the environment (with optional .env file)
// and aborts the process on missing required values.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	cfg := &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{
			RunAddress:    viper.GetString("run_address"),
			PublicBaseURL: viper.GetString("public_base_url"),
		},
		Auth: Auth{
			JWTSecret: viper.GetString("jwt_secret"),
			TokenTTL:  defaultTokenTTL,
		},
		Crypto: Crypto{
			EncryptionKey: viper.GetString("encryption_key"),
		},
		Logger: Logger{
			LogLevel: viper.GetString("log_level"),
		},
	}

	if cfg.Server.RunAddress == "" {
		cfg.Server.RunAddress = defaultRunAddress
	}
	if cfg.DB.Migrations == "" {
		cfg.DB.Migrations = "migrations"
	}
	if cfg.Server.PublicBaseURL == "" {
		cfg.Server.PublicBaseURL = "http://localhost:8080"
	}

	if cfg.DB.DatabaseURI == "" {
		log.Fatalln("DATABASE_URI is required")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatalln("JWT_SECRET is required")
	}
	if cfg.Crypto.EncryptionKey == "" {
		log.Fatalln("ENCRYPTION_KEY is required")
	}

	return cfg
}
