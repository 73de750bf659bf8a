package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported database types
const (
	DatabaseMySQL    = "mysql"
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

// Defaults
const (
	DefaultPort          = 5000
	DefaultDBHost        = "localhost"
	DefaultDBUser        = "root"
	DefaultDBName        = "raah_setu"
	DefaultSQLitePath    = "raah_setu.db"
	DefaultAuthRateLimit = 20
	DefaultMaxBodyBytes  = 1 << 20
)

type Config struct {
	Port         int
	DatabaseType string
	DBHost       string
	DBPort       int
	DBUser       string
	DBPassword   string
	// DBName is the database name, or the file path for sqlite.
	DBName string

	// Signup/login requests allowed per IP per minute. 0 disables the limit.
	AuthRateLimit int
	MaxBodyBytes  int64

	LogFormat string
	LogLevel  string

	// InitSchemaOnly creates the database and tables, then exits.
	InitSchemaOnly bool
	EnvFile        string
}

// ParseFlags reads flags, then the env file, then environment variables.
// CLI flags take precedence over everything else.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("raah-setu", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (mysql, postgres or sqlite)")
	fs.StringVar(&cfg.DBHost, "db-host", "", "Database host")
	fs.IntVar(&cfg.DBPort, "db-port", 0, "Database port")
	fs.StringVar(&cfg.DBUser, "db-user", "", "Database user")
	fs.StringVar(&cfg.DBName, "db-name", "", "Database name (file path for sqlite)")

	fs.IntVar(&cfg.AuthRateLimit, "auth-rate", -1, "Auth requests per minute per IP (0 disables)")
	fs.Int64Var(&cfg.MaxBodyBytes, "max-body", 0, "Maximum request body size in bytes")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (auto, text or json)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	fs.BoolVar(&cfg.InitSchemaOnly, "init-schema", false, "Create database schema and exit")
	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Optional dotenv file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	var err error

	if cfg.Port == 0 {
		if cfg.Port, err = envInt("PORT", DefaultPort); err != nil {
			return Config{}, err
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = envString("DB_TYPE", DatabaseMySQL)
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType == "postgresql" {
		cfg.DatabaseType = DatabasePostgres
	}
	switch cfg.DatabaseType {
	case DatabaseMySQL, DatabasePostgres, DatabaseSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q (use mysql, postgres or sqlite)", cfg.DatabaseType)
	}

	if cfg.DBHost == "" {
		cfg.DBHost = envString("DB_HOST", DefaultDBHost)
	}
	if cfg.DBPort == 0 {
		if cfg.DBPort, err = envInt("DB_PORT", defaultDBPort(cfg.DatabaseType)); err != nil {
			return Config{}, err
		}
	}
	if cfg.DBUser == "" {
		cfg.DBUser = envString("DB_USER", DefaultDBUser)
	}
	// Password is env-only so it stays out of process listings
	cfg.DBPassword = os.Getenv("DB_PASSWORD")
	if cfg.DBName == "" {
		def := DefaultDBName
		if cfg.DatabaseType == DatabaseSQLite {
			def = DefaultSQLitePath
		}
		cfg.DBName = envString("DB_NAME", def)
	}

	if cfg.AuthRateLimit < 0 {
		if cfg.AuthRateLimit, err = envInt("AUTH_RATE_LIMIT", DefaultAuthRateLimit); err != nil {
			return Config{}, err
		}
		if cfg.AuthRateLimit < 0 {
			return Config{}, errors.New("AUTH_RATE_LIMIT must not be negative")
		}
	}

	if cfg.MaxBodyBytes == 0 {
		n, err := envInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)
		if err != nil {
			return Config{}, err
		}
		cfg.MaxBodyBytes = int64(n)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, errors.New("max body size must be positive")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = envString("LOG_FORMAT", "auto")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = envString("LOG_LEVEL", "info")
	}

	return cfg, nil
}

// loadEnvFile loads a dotenv file without overriding variables that are
// already set. A missing file is fine.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}

func defaultDBPort(dbType string) int {
	switch dbType {
	case DatabasePostgres:
		return 5432
	case DatabaseMySQL:
		return 3306
	}
	return 0
}
