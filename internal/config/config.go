package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort  string   `yaml:"server_port"`
	GinMode     string   `yaml:"gin_mode"`
	CORSOrigins []string `yaml:"cors_origins"`

	// -------- Store --------
	DBDriver        string `yaml:"db_driver"`
	DBPath          string `yaml:"db_path"`
	DBUrl           string `yaml:"db_url"`
	CreateIfMissing bool   `yaml:"create_if_missing"`
	SeedAdmin       bool   `yaml:"seed_admin"`

	// -------- Session --------
	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	SessionStore  string        `yaml:"session_store"`
	CookieSecure  bool          `yaml:"cookie_secure"`
	CheckDomain   bool          `yaml:"check_email_domain"`
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`

	// -------- Notifier --------
	NotifyTransport  string        `yaml:"notify_transport"`
	NotifyTimeout    time.Duration `yaml:"notify_timeout"`
	SMTPHost         string        `yaml:"smtp_host"`
	SMTPStartTLSPort int           `yaml:"smtp_starttls_port"`
	SMTPSSLPort      int           `yaml:"smtp_ssl_port"`
	SMTPUser         string        `yaml:"smtp_user"`
	SMTPPassword     string        `yaml:"smtp_password"`
	SMTPFrom         string        `yaml:"smtp_from"`
	SMTPFromName     string        `yaml:"smtp_from_name"`

	// -------- Dashboard --------
	UnitPrice float64 `yaml:"unit_price"`
	Timezone  string  `yaml:"timezone"`

	// -------- Images --------
	ImageMaxWidth int    `yaml:"image_max_width"`
	ImageDir      string `yaml:"image_dir"`
	ImageBaseURL  string `yaml:"image_base_url"`
	S3Bucket      string `yaml:"s3_bucket"`
	S3Region      string `yaml:"s3_region"`
	S3Endpoint    string `yaml:"s3_endpoint"`
	S3AccessKey   string `yaml:"s3_access_key"`
	S3SecretKey   string `yaml:"s3_secret_key"`
	S3PublicURL   string `yaml:"s3_public_url"`

	// -------- Logging / limits --------
	LogLevel      string  `yaml:"log_level"`
	LogFormat     string  `yaml:"log_format"`
	AuthRateLimit float64 `yaml:"auth_rate_limit"`
	AuthRateBurst int     `yaml:"auth_rate_burst"`
}

func Default() *Config {
	return &Config{
		ServerPort: "5000",
		GinMode:    "release",

		DBDriver:        "sqlite",
		DBPath:          "agendamento.db",
		CreateIfMissing: false,
		SeedAdmin:       true,

		SessionSecret: "changeme",
		SessionTTL:    24 * time.Hour,
		SessionStore:  "memory",
		RedisAddr:     "localhost:6379",

		NotifyTransport:  "auto",
		NotifyTimeout:    20 * time.Second,
		SMTPHost:         "smtp.gmail.com",
		SMTPStartTLSPort: 587,
		SMTPSSLPort:      465,
		SMTPFromName:     "Agendamento+",

		UnitPrice: 50.00,
		Timezone:  "America/Sao_Paulo",

		ImageMaxWidth: 1024,
		ImageDir:      "uploads",
		ImageBaseURL:  "/uploads",
		S3Region:      "us-east-1",

		LogLevel:      "info",
		LogFormat:     "json",
		AuthRateLimit: 1,
		AuthRateBurst: 5,
	}
}

// Load resolves defaults, then the optional YAML file named by AGMAIS_CONFIG,
// then .env and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv("AGMAIS_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.GinMode = getEnv("GIN_MODE", c.GinMode)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORSOrigins = strings.Split(v, ",")
	}

	c.DBDriver = strings.ToLower(getEnv("DB_DRIVER", c.DBDriver))
	c.DBPath = getEnv("DB_PATH", c.DBPath)
	c.DBUrl = getEnv("DATABASE_URL", c.DBUrl)
	c.CreateIfMissing = getEnvBool("DB_CREATE_IF_MISSING", c.CreateIfMissing)
	c.SeedAdmin = getEnvBool("DB_SEED_ADMIN", c.SeedAdmin)

	c.SessionSecret = getEnv("SESSION_SECRET", c.SessionSecret)
	c.SessionTTL = getEnvDuration("SESSION_TTL", c.SessionTTL)
	c.SessionStore = strings.ToLower(getEnv("SESSION_STORE", c.SessionStore))
	c.CookieSecure = getEnvBool("COOKIE_SECURE", c.CookieSecure)
	c.CheckDomain = getEnvBool("CHECK_EMAIL_DOMAIN", c.CheckDomain)
	c.RedisAddr = getEnv("REDIS_ADDR", c.RedisAddr)
	c.RedisPassword = getEnv("REDIS_PASSWORD", c.RedisPassword)
	c.RedisDB = getEnvInt("REDIS_DB", c.RedisDB)

	c.NotifyTransport = strings.ToLower(getEnv("NOTIFY_TRANSPORT", c.NotifyTransport))
	c.NotifyTimeout = getEnvDuration("NOTIFY_TIMEOUT", c.NotifyTimeout)
	c.SMTPHost = getEnv("SMTP_HOST", c.SMTPHost)
	c.SMTPStartTLSPort = getEnvInt("SMTP_STARTTLS_PORT", c.SMTPStartTLSPort)
	c.SMTPSSLPort = getEnvInt("SMTP_SSL_PORT", c.SMTPSSLPort)
	c.SMTPUser = getEnv("SMTP_USER", c.SMTPUser)
	c.SMTPPassword = getEnv("SMTP_PASSWORD", c.SMTPPassword)
	c.SMTPFrom = getEnv("SMTP_FROM", c.SMTPFrom)
	c.SMTPFromName = getEnv("SMTP_FROM_NAME", c.SMTPFromName)

	c.UnitPrice = getEnvFloat("DASHBOARD_UNIT_PRICE", c.UnitPrice)
	c.Timezone = getEnv("TIMEZONE", c.Timezone)

	c.ImageMaxWidth = getEnvInt("IMAGE_MAX_WIDTH", c.ImageMaxWidth)
	c.ImageDir = getEnv("IMAGE_DIR", c.ImageDir)
	c.ImageBaseURL = getEnv("IMAGE_BASE_URL", c.ImageBaseURL)
	c.S3Bucket = getEnv("S3_BUCKET", c.S3Bucket)
	c.S3Region = getEnv("S3_REGION", c.S3Region)
	c.S3Endpoint = getEnv("S3_ENDPOINT", c.S3Endpoint)
	c.S3AccessKey = getEnv("S3_ACCESS_KEY", c.S3AccessKey)
	c.S3SecretKey = getEnv("S3_SECRET_KEY", c.S3SecretKey)
	c.S3PublicURL = getEnv("S3_PUBLIC_URL", c.S3PublicURL)

	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.AuthRateLimit = getEnvFloat("AUTH_RATE_LIMIT", c.AuthRateLimit)
	c.AuthRateBurst = getEnvInt("AUTH_RATE_BURST", c.AuthRateBurst)
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("db_path is required for the sqlite driver")
		}
	case "postgres":
		if c.DBUrl == "" {
			return fmt.Errorf("db_url is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported db_driver %q", c.DBDriver)
	}

	switch c.SessionStore {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported session_store %q", c.SessionStore)
	}

	switch c.NotifyTransport {
	case "auto", "smtp", "log":
	default:
		return fmt.Errorf("unsupported notify_transport %q", c.NotifyTransport)
	}

	if c.SessionSecret == "" {
		return fmt.Errorf("session_secret must not be empty")
	}
	return nil
}

// SMTPEnabled reports whether credentials exist for real delivery.
func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != ""
}

func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
