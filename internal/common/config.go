package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	LLM      LLMConfig
	Escrow   EscrowConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr string
	APIKey   string // requests must carry this in x-api-key metadata; empty disables the check
}

// OCRConfig holds recognition and staging configuration.
type OCRConfig struct {
	Bucket          string        // GCS bucket for staged inputs and batch output shards
	CredentialsFile string        // optional service-account JSON path
	BatchTimeout    time.Duration // upper bound for the async PDF recognition job
	BatchSize       int32         // logical pages per output shard
}

// LLMConfig holds entity-extraction backend configuration.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// EscrowConfig holds the fund-release collaborator configuration.
// All fields empty means fund release is disabled.
type EscrowConfig struct {
	RPCURL          string
	ContractAddress string
	ABIPath         string
	PrivateKey      string
	ChainID         int64
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
			APIKey:   getEnv("API_KEY", ""),
		},
		OCR: OCRConfig{
			Bucket:          getEnv("GCS_BUCKET_NAME", ""),
			CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
			BatchTimeout:    getEnvAsDuration("OCR_BATCH_TIMEOUT", 420*time.Second),
			BatchSize:       getEnvAsInt32("OCR_BATCH_SIZE", 100),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Escrow: EscrowConfig{
			RPCURL:          getEnv("ESCROW_RPC_URL", ""),
			ContractAddress: getEnv("ESCROW_CONTRACT_ADDRESS", ""),
			ABIPath:         getEnv("ESCROW_ABI_PATH", ""),
			PrivateKey:      getEnv("ESCROW_PRIVATE_KEY", ""),
			ChainID:         getEnvAsInt64("ESCROW_CHAIN_ID", 1),
		},
	}
}

// Validate checks the loaded configuration for the server binary.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrConfiguration)
	}
	if c.OCR.Bucket == "" {
		return NewAppError("CONFIG_ERROR", "GCS_BUCKET_NAME is required", ErrConfiguration)
	}
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrConfiguration)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrConfiguration)
	}
	return nil
}

// EscrowEnabled reports whether fund release is configured.
func (c *Config) EscrowEnabled() bool {
	e := c.Escrow
	return e.RPCURL != "" && e.ContractAddress != "" && e.ABIPath != "" && e.PrivateKey != ""
}

// Helper functions for environment variable parsing.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
