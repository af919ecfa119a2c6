package app

import (
	"context"
	"testing"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/domain/learning"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

func TestNewWithConfigSQLite(t *testing.T) {
	cfg := defaultConfig()
	cfg.DB.Driver = "sqlite"
	cfg.DB.SQLitePath = ":memory:"

	a, err := NewWithConfig(cfg, logger.NewNop())
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	defer a.Close()

	dbc := dbctx.Context{Ctx: context.Background()}
	tracks, err := a.Repos.Track.Create(dbc, []*types.Track{{Name: "Onboarding"}})
	if err != nil {
		t.Fatalf("Create track: %v", err)
	}

	v, err := a.Services.Catalog.Track(dbc, tracks[0].ID, learning.Full)
	if err != nil {
		t.Fatalf("Catalog.Track: %v", err)
	}
	tree, ok := v.(*learning.TrackTreeView)
	if !ok || tree.Name != "Onboarding" || len(tree.Modules) != 0 {
		t.Fatalf("unexpected tree: %#v", v)
	}
}
