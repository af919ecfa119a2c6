package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/trackwise-backend/internal/data/db"
	"github.com/yungbote/trackwise-backend/internal/platform/envutil"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Store    *db.Service
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	logMode := envutil.String("LOG_MODE", "development", nil)
	redact := envutil.Bool("LOG_REDACT", true, nil)
	log, err := logger.NewWithOptions(logMode, logger.Options{Redact: redact})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading configuration...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("load config: %w", err)
	}

	a, err := NewWithConfig(cfg, log)
	if err != nil {
		log.Sync()
		return nil, err
	}
	return a, nil
}

// NewWithConfig wires the app from an already loaded config.
func NewWithConfig(cfg Config, log *logger.Logger) (*App, error) {
	store, err := db.Open(cfg.StoreConfig(), log)
	if err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}
	if cfg.AutoMigrate {
		if err := store.AutoMigrateAll(); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("db automigrate: %w", err)
		}
	}
	theDB := store.DB()

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet)

	return &App{
		Log:      log,
		DB:       theDB,
		Store:    store,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil && a.Log != nil {
			a.Log.Warn("Closing database failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
