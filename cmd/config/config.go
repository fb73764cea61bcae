package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	OTP         OTPConfig
	Upload      UploadConfig
	Agent       AgentConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type AuthConfig struct {
	JWTSecret      string
	JWTExpiration  time.Duration
	SessionExpTime time.Duration
}

type OTPConfig struct {
	Expiration time.Duration
}

type UploadConfig struct {
	Dir           string
	BaseURL       string
	MaxFileSizeKB int64
}

type AgentConfig struct {
	DefaultPassword string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getString("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getString("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getString("DB_HOST", "127.0.0.1"),
			Port:            getInt("DB_PORT", 3306),
			User:            getString("DB_USER", "root"),
			Password:        getString("DB_PASSWORD", ""),
			Name:            getString("DB_NAME", "lead_crm"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:     getString("REDIS_HOST", "127.0.0.1"),
			Port:     getInt("REDIS_PORT", 6379),
			Password: getString("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getString("RABBITMQ_HOST", "127.0.0.1"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getString("RABBITMQ_USER", "guest"),
			Password: getString("RABBITMQ_PASSWORD", "guest"),
		},
		Auth: AuthConfig{
			JWTSecret:      getString("JWT_SECRET", "change-me"),
			JWTExpiration:  getDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime: getDuration("SESSION_EXP_TIME", 24*time.Hour),
		},
		OTP: OTPConfig{
			Expiration: getDuration("OTP_EXPIRATION", 10*time.Minute),
		},
		Upload: UploadConfig{
			Dir:           getString("UPLOAD_DIR", "storage"),
			BaseURL:       getString("UPLOAD_BASE_URL", "http://localhost:8080/storage"),
			MaxFileSizeKB: int64(getInt("UPLOAD_MAX_FILE_SIZE_KB", 2048)),
		},
		Agent: AgentConfig{
			DefaultPassword: getString("AGENT_DEFAULT_PASSWORD", "agent@123"),
		},
	}
}

// GetDSN builds the go-sql-driver/mysql data source name.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

func getString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
