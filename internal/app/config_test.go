package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yungbote/trackwise-backend/internal/data/db"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", ":memory:")

	cfg, err := LoadConfig(logger.NewNop())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	store := cfg.StoreConfig()
	if store.Driver != db.DriverSQLite || store.SQLitePath != ":memory:" {
		t.Fatalf("unexpected store config: %+v", store)
	}
	if store.SlowQuery != 200*time.Millisecond || !cfg.AutoMigrate {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trackwise.yaml")
	body := []byte(`
auto_migrate: false
db:
  driver: postgres
  postgres:
    host: db.internal
    user: lms
    password: from-file
  slow_query_ms: 50
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("POSTGRES_USER", "lms_env")

	cfg, err := LoadConfig(logger.NewNop())
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AutoMigrate {
		t.Fatalf("auto_migrate from file not applied")
	}
	pg := cfg.DB.Postgres
	if pg.Host != "db.internal" || pg.Password != "from-file" || pg.User != "lms_env" {
		t.Fatalf("unexpected postgres config: %+v", pg)
	}
	if pg.Port != "5432" || pg.SSLMode != "disable" {
		t.Fatalf("keys missing from the file must keep defaults: %+v", pg)
	}
	if cfg.StoreConfig().SlowQuery != 50*time.Millisecond {
		t.Fatalf("slow query: got %v", cfg.StoreConfig().SlowQuery)
	}
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	if _, err := LoadConfig(logger.NewNop()); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
