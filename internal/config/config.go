package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	AI        AIConfig
	Syllabus  SyllabusConfig  `mapstructure:"syllabus"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Admin     AdminConfig     `mapstructure:"admin"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	ConfigFile string `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Driver    string `mapstructure:"driver"` // mysql | sqlite
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
	Path      string `mapstructure:"path"` // sqlite 文件路径
	LogSQL    bool   `mapstructure:"log_sql"`
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type AIConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Temperature float64       `mapstructure:"temperature"`
}

type SyllabusConfig struct {
	Source    string        `mapstructure:"source"` // local | minio | oss
	PDFPath   string        `mapstructure:"pdf_path"`
	ObjectKey string        `mapstructure:"object_key"`
	CachePath string        `mapstructure:"cache_path"`
	TTL       time.Duration `mapstructure:"ttl"`
	Version   string        `mapstructure:"version"`
}

type StorageConfig struct {
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioSecure   bool   `mapstructure:"minio_secure"`
	OSSEndpoint   string `mapstructure:"oss_endpoint"`
	OSSAccessKey  string `mapstructure:"oss_access_key"`
	OSSSecretKey  string `mapstructure:"oss_secret_key"`
	OSSBucket     string `mapstructure:"oss_bucket"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

type AdminConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type DashboardConfig struct {
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	RecentLimit int           `mapstructure:"recent_limit"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data/math_practice.db")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)

	v.SetDefault("redis.port", 6379)

	v.SetDefault("ai.base_url", "https://generativelanguage.googleapis.com/v1beta/openai")
	v.SetDefault("ai.model", "gemini-2.5-flash")
	v.SetDefault("ai.timeout", "60s")
	v.SetDefault("ai.temperature", 0.7)

	v.SetDefault("syllabus.source", "local")
	v.SetDefault("syllabus.pdf_path", "resources/2021 Primary Mathematics Syllabus P1 to P6_Updated Dec 2023.pdf")
	v.SetDefault("syllabus.cache_path", "data/syllabus-content.json")
	v.SetDefault("syllabus.ttl", "168h")
	v.SetDefault("syllabus.version", "2021_P1_to_P6_Updated_Dec_2023")

	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)

	v.SetDefault("dashboard.cache_ttl", "30s")
	v.SetDefault("dashboard.recent_limit", 10)
}

// LoadConfig 读取 path 目录下的 config.yaml，环境变量优先
func LoadConfig(path string) (*Config, error) {
	// .env 不存在时忽略
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("MATH_PRACTICE")
	v.AutomaticEnv()
	setDefaults(v)

	// Database
	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.dbname", "DATABASE_NAME")
	v.BindEnv("database.path", "DATABASE_PATH")

	// Redis
	v.BindEnv("redis.enabled", "REDIS_ENABLED")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.port", "REDIS_PORT")
	v.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")

	// AI
	v.BindEnv("ai.base_url", "AI_BASE_URL")
	v.BindEnv("ai.api_key", "AI_API_KEY", "GOOGLE_API_KEY")
	v.BindEnv("ai.model", "AI_MODEL")

	// Syllabus
	v.BindEnv("syllabus.source", "SYLLABUS_SOURCE")
	v.BindEnv("syllabus.pdf_path", "SYLLABUS_PDF_PATH")
	v.BindEnv("syllabus.cache_path", "SYLLABUS_CACHE_PATH")
	v.BindEnv("syllabus.object_key", "SYLLABUS_OBJECT_KEY")

	// Storage
	v.BindEnv("storage.minio_endpoint", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "MINIO_BUCKET")
	v.BindEnv("storage.oss_endpoint", "OSS_ENDPOINT")
	v.BindEnv("storage.oss_access_key", "OSS_ACCESS_KEY")
	v.BindEnv("storage.oss_secret_key", "OSS_SECRET_KEY")
	v.BindEnv("storage.oss_bucket", "OSS_BUCKET")

	// Tracing
	v.BindEnv("tracing.enabled", "TRACING_ENABLED")
	v.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	// Admin
	v.BindEnv("admin.jwt_secret", "ADMIN_JWT_SECRET")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.ConfigFile = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "sqlite" && cfg.Database.Path != "" {
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			os.MkdirAll(dir, 0755)
		}
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	switch c.Syllabus.Source {
	case "local", "minio", "oss":
	default:
		return fmt.Errorf("unsupported syllabus source %q", c.Syllabus.Source)
	}

	// 生产环境校验 JWT Secret 强度
	if c.Server.Mode == "release" && c.Admin.JWTSecret != "" && len(c.Admin.JWTSecret) < 32 {
		return fmt.Errorf("admin JWT secret is too short (%d chars), must be at least 32 characters in release mode", len(c.Admin.JWTSecret))
	}

	if c.Syllabus.TTL <= 0 {
		return fmt.Errorf("syllabus ttl must be positive, got %s", c.Syllabus.TTL)
	}

	return nil
}
