package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Logger       LoggerConfig       `yaml:"logger"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	JWT          JWTConfig          `yaml:"jwt"`
	S3           S3Config           `yaml:"s3"`
	Editor       EditorConfig       `yaml:"editor"`
	Notification NotificationConfig `yaml:"notification"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string        `yaml:"port"`
	Mode            string        `yaml:"mode"`
	BasePath        string        `yaml:"base_path"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"ssl_mode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// GetDSN builds the postgres DSN from the database configuration
func (d DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// RedisConfig holds redis connection configuration
type RedisConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// JWTConfig holds JWT validation configuration
type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// S3Config holds S3 document storage configuration
type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// EditorConfig holds field-placement editor configuration.
// WorkerScriptURL is handed to clients at session open so the renderer worker
// version is pinned by server configuration instead of a client-side constant.
type EditorConfig struct {
	StrictSendGate  bool          `yaml:"strict_send_gate"`
	SessionTTL      time.Duration `yaml:"session_ttl"`
	SettleDelay     time.Duration `yaml:"settle_delay"`
	DraftRetention  time.Duration `yaml:"draft_retention"`
	WorkerScriptURL string        `yaml:"worker_script_url"`
}

// NotificationConfig holds the signing-notification service configuration
type NotificationConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// Load reads configuration from a yaml file, applies defaults for anything
// missing, then applies environment-variable overrides
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            "8004",
			Mode:            "debug",
			BasePath:        "/api/esign",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Name:            "esign",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: 6379,
			DB:   0,
		},
		Editor: EditorConfig{
			StrictSendGate:  false,
			SessionTTL:      30 * time.Minute,
			SettleDelay:     150 * time.Millisecond,
			DraftRetention:  30 * 24 * time.Hour,
			WorkerScriptURL: "https://unpkg.com/pdfjs-dist@3.11.174/build/pdf.worker.min.js",
		},
		Notification: NotificationConfig{
			Timeout: 5 * time.Second,
		},
	}

	// Load from yaml file if exists
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		cfg.Server.Mode = mode
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Logger.Level = logLevel
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Database.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.Database.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.Database.Name = name
	}
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		cfg.Redis.Host = redisHost
	}
	if redisPort := os.Getenv("REDIS_PORT"); redisPort != "" {
		if p, err := strconv.Atoi(redisPort); err == nil {
			cfg.Redis.Port = p
		}
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if bucket := os.Getenv("S3_BUCKET"); bucket != "" {
		cfg.S3.Bucket = bucket
	}
	if region := os.Getenv("S3_REGION"); region != "" {
		cfg.S3.Region = region
	}
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		cfg.S3.Endpoint = endpoint
	}
	if accessKey := os.Getenv("S3_ACCESS_KEY"); accessKey != "" {
		cfg.S3.AccessKey = accessKey
	}
	if secretKey := os.Getenv("S3_SECRET_KEY"); secretKey != "" {
		cfg.S3.SecretKey = secretKey
	}
	if strictGate := os.Getenv("EDITOR_STRICT_SEND_GATE"); strictGate != "" {
		if b, err := strconv.ParseBool(strictGate); err == nil {
			cfg.Editor.StrictSendGate = b
		}
	}
	if workerURL := os.Getenv("EDITOR_WORKER_SCRIPT_URL"); workerURL != "" {
		cfg.Editor.WorkerScriptURL = workerURL
	}
	if notiURL := os.Getenv("NOTIFICATION_SERVICE_URL"); notiURL != "" {
		cfg.Notification.BaseURL = notiURL
	}
	if notiKey := os.Getenv("NOTIFICATION_API_KEY"); notiKey != "" {
		cfg.Notification.APIKey = notiKey
	}

	return cfg, nil
}
