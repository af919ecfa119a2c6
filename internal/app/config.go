package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/trackwise-backend/internal/data/db"
	"github.com/yungbote/trackwise-backend/internal/platform/envutil"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type Config struct {
	DB          DBConfig `yaml:"db"`
	AutoMigrate bool     `yaml:"auto_migrate"`
}

type DBConfig struct {
	Driver      string         `yaml:"driver"`
	Postgres    PostgresConfig `yaml:"postgres"`
	SQLitePath  string         `yaml:"sqlite_path"`
	SlowQueryMS int            `yaml:"slow_query_ms"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

func defaultConfig() Config {
	return Config{
		DB: DBConfig{
			Driver: string(db.DriverPostgres),
			Postgres: PostgresConfig{
				Host:    "localhost",
				Port:    "5432",
				User:    "postgres",
				Name:    "trackwise",
				SSLMode: "disable",
			},
			SQLitePath:  "trackwise.db",
			SlowQueryMS: 200,
		},
		AutoMigrate: true,
	}
}

// LoadConfigFile reads a YAML file on top of the defaults. Keys missing from
// the file keep their default.
func LoadConfigFile(path string) (Config, error) {
	cfg := defaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadConfig layers environment variables over CONFIG_FILE (when set) over
// the defaults.
func LoadConfig(log *logger.Logger) (Config, error) {
	cfg := defaultConfig()
	if path := strings.TrimSpace(envutil.String("CONFIG_FILE", "", log)); path != "" {
		fileCfg, err := LoadConfigFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg
		log.Info("Loaded config file", "path", path)
	}

	cfg.DB.Driver = envutil.String("DB_DRIVER", cfg.DB.Driver, log)
	cfg.DB.Postgres.Host = envutil.String("POSTGRES_HOST", cfg.DB.Postgres.Host, log)
	cfg.DB.Postgres.Port = envutil.String("POSTGRES_PORT", cfg.DB.Postgres.Port, log)
	cfg.DB.Postgres.User = envutil.String("POSTGRES_USER", cfg.DB.Postgres.User, log)
	cfg.DB.Postgres.Password = envutil.Secret("POSTGRES_PASSWORD", cfg.DB.Postgres.Password, log)
	cfg.DB.Postgres.Name = envutil.String("POSTGRES_NAME", cfg.DB.Postgres.Name, log)
	cfg.DB.Postgres.SSLMode = envutil.String("POSTGRES_SSLMODE", cfg.DB.Postgres.SSLMode, log)
	cfg.DB.SQLitePath = envutil.String("SQLITE_PATH", cfg.DB.SQLitePath, log)
	cfg.DB.SlowQueryMS = envutil.Int("DB_SLOW_QUERY_MS", cfg.DB.SlowQueryMS, log)
	cfg.AutoMigrate = envutil.Bool("DB_AUTO_MIGRATE", cfg.AutoMigrate, log)

	switch db.Driver(cfg.DB.Driver) {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return cfg, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	return cfg, nil
}

func (c Config) StoreConfig() db.Config {
	return db.Config{
		Driver:           db.Driver(c.DB.Driver),
		PostgresHost:     c.DB.Postgres.Host,
		PostgresPort:     c.DB.Postgres.Port,
		PostgresUser:     c.DB.Postgres.User,
		PostgresPassword: c.DB.Postgres.Password,
		PostgresName:     c.DB.Postgres.Name,
		PostgresSSLMode:  c.DB.Postgres.SSLMode,
		SQLitePath:       c.DB.SQLitePath,
		SlowQuery:        time.Duration(c.DB.SlowQueryMS) * time.Millisecond,
	}
}
