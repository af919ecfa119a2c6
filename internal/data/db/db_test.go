package db

import (
	"context"
	"testing"

	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

func TestConfigDSNs(t *testing.T) {
	cfg := Config{
		PostgresHost:     "db",
		PostgresPort:     "5432",
		PostgresUser:     "lms",
		PostgresPassword: "pw",
		PostgresName:     "trackwise",
	}
	if got := cfg.PostgresDSN(); got != "postgres://lms:pw@db:5432/trackwise?sslmode=disable" {
		t.Fatalf("PostgresDSN: got %q", got)
	}
	cfg.PostgresSSLMode = "require"
	if got := cfg.PostgresDSN(); got != "postgres://lms:pw@db:5432/trackwise?sslmode=require" {
		t.Fatalf("PostgresDSN sslmode: got %q", got)
	}

	if got := (Config{}).SQLiteDSN(); got != "file::memory:?_foreign_keys=on" {
		t.Fatalf("SQLiteDSN memory: got %q", got)
	}
	if got := (Config{SQLitePath: "lms.db"}).SQLiteDSN(); got != "lms.db?_foreign_keys=on" {
		t.Fatalf("SQLiteDSN file: got %q", got)
	}
	if got := (Config{SQLitePath: "file:lms.db?cache=shared"}).SQLiteDSN(); got != "file:lms.db?cache=shared&_foreign_keys=on" {
		t.Fatalf("SQLiteDSN with params: got %q", got)
	}
}

func TestOpenSQLiteAndMigrate(t *testing.T) {
	svc, err := Open(Config{Driver: DriverSQLite, SQLitePath: ":memory:"}, logger.NewNop())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	if svc.Driver() != DriverSQLite {
		t.Fatalf("Driver: got %q", svc.Driver())
	}
	if err := svc.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("AutoMigrateAll: %v", err)
	}
	// Second run must be a no-op.
	if err := svc.AutoMigrateAll(); err != nil {
		t.Fatalf("AutoMigrateAll (again): %v", err)
	}

	for _, table := range []string{
		"users", "tracks", "modules", "courses", "quizzes", "quiz_questions", "quiz_options",
		"enrollments", "course_progress", "module_progress", "quiz_attempts",
		"certificate_templates", "certificates", "email_templates",
	} {
		if !svc.DB().Migrator().HasTable(table) {
			t.Fatalf("missing table %s", table)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(Config{Driver: "oracle"}, logger.NewNop()); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
