package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	ObjectStore ObjectStoreConfig
	Repository  RepositoryConfig
	App         AppConfig
	Descriptor  DescriptorConfig
	Logger      LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	Schema          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&search_path=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode, c.Schema)
}

type ObjectStoreConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type RepositoryConfig struct {
	RemoteURL       string
	Branch          string
	OriginAllowlist []string
	CacheDir        string
}

// AppConfig describes the front-end application binding. The compute
// warehouse is an explicit input rather than ambient session state, so the
// same provisioning run is reproducible under different compute allocations.
type AppConfig struct {
	Name           string
	Title          string
	EntryFile      string
	QueryWarehouse string
}

type DescriptorConfig struct {
	Origin       string
	Name         string
	MajorVersion int
	MinorVersion int
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "genai_utilities")
	v.SetDefault("DB_SCHEMA", "evaluation")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("STAGE_ENDPOINT", "localhost:9000")
	v.SetDefault("STAGE_ACCESS_KEY", "")
	v.SetDefault("STAGE_SECRET_KEY", "")
	v.SetDefault("STAGE_BUCKET", "eval-workbench-stage")
	v.SetDefault("STAGE_USE_SSL", false)

	v.SetDefault("REPO_REMOTE_URL", "https://github.com/example-labs/eval-workbench-app.git")
	v.SetDefault("REPO_BRANCH", "main")
	v.SetDefault("REPO_ORIGIN_ALLOWLIST", "https://github.com/example-labs/")
	v.SetDefault("REPO_CACHE_DIR", "/var/cache/eval-workbench/mirror")

	v.SetDefault("APP_NAME", "eval_workbench")
	v.SetDefault("APP_TITLE", "Evaluation Workbench")
	v.SetDefault("APP_ENTRY_FILE", "home.py")
	v.SetDefault("APP_QUERY_WAREHOUSE", "")

	v.SetDefault("DESCRIPTOR_ORIGIN", "eval_workbench")
	v.SetDefault("DESCRIPTOR_NAME", "provisioner")
	v.SetDefault("DESCRIPTOR_MAJOR_VERSION", 1)
	v.SetDefault("DESCRIPTOR_MINOR_VERSION", 0)

	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	lifetime, err := time.ParseDuration(v.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		lifetime = 30 * time.Minute
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			Schema:          v.GetString("DB_SCHEMA"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: lifetime,
		},
		ObjectStore: ObjectStoreConfig{
			Endpoint:  v.GetString("STAGE_ENDPOINT"),
			AccessKey: v.GetString("STAGE_ACCESS_KEY"),
			SecretKey: v.GetString("STAGE_SECRET_KEY"),
			Bucket:    v.GetString("STAGE_BUCKET"),
			UseSSL:    v.GetBool("STAGE_USE_SSL"),
		},
		Repository: RepositoryConfig{
			RemoteURL:       v.GetString("REPO_REMOTE_URL"),
			Branch:          v.GetString("REPO_BRANCH"),
			OriginAllowlist: splitList(v.GetString("REPO_ORIGIN_ALLOWLIST")),
			CacheDir:        v.GetString("REPO_CACHE_DIR"),
		},
		App: AppConfig{
			Name:           v.GetString("APP_NAME"),
			Title:          v.GetString("APP_TITLE"),
			EntryFile:      v.GetString("APP_ENTRY_FILE"),
			QueryWarehouse: v.GetString("APP_QUERY_WAREHOUSE"),
		},
		Descriptor: DescriptorConfig{
			Origin:       v.GetString("DESCRIPTOR_ORIGIN"),
			Name:         v.GetString("DESCRIPTOR_NAME"),
			MajorVersion: v.GetInt("DESCRIPTOR_MAJOR_VERSION"),
			MinorVersion: v.GetInt("DESCRIPTOR_MINOR_VERSION"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
