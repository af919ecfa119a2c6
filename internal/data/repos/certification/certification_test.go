package certification

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/trackwise-backend/internal/data/dberr"
	"github.com/yungbote/trackwise-backend/internal/data/repos/testutil"
	types "github.com/yungbote/trackwise-backend/internal/domain"
	certdomain "github.com/yungbote/trackwise-backend/internal/domain/certification"
	"github.com/yungbote/trackwise-backend/internal/pkg/pointers"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
)

func TestCertificateTemplateRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewCertificateTemplateRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	track := testutil.SeedTrack(t, ctx, tx, "Onboarding", 0)
	other := testutil.SeedTrack(t, ctx, tx, "Safety", 1)

	created, err := repo.Create(dbc, []*types.CertificateTemplate{
		{Name: "Generic"},
		{Name: "Onboarding", TrackID: pointers.Uint(track.ID)},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	generic := created[0]
	if generic.TemplateType != certdomain.TemplateTypeStandard ||
		generic.FirstSignatureName != certdomain.DefaultFirstSignatureName ||
		generic.SecondSignatureName != certdomain.DefaultSecondSignatureName {
		t.Fatalf("defaults not applied: %+v", generic)
	}

	got, err := repo.GetForTrack(dbc, track.ID)
	if err != nil || got == nil || got.Name != "Onboarding" {
		t.Fatalf("GetForTrack(bound): err=%v got=%+v", err, got)
	}
	got, err = repo.GetForTrack(dbc, other.ID)
	if err != nil || got == nil || got.ID != generic.ID {
		t.Fatalf("GetForTrack(fallback): err=%v got=%+v", err, got)
	}

	if rows, err := repo.List(dbc); err != nil || len(rows) != 2 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}
}

func TestCertificateRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewCertificateRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	u := testutil.SeedUser(t, ctx, tx, "graduate")
	track := testutil.SeedTrack(t, ctx, tx, "Onboarding", 0)

	created, err := repo.Create(dbc, []*types.Certificate{
		{UserID: u.ID, TrackID: track.ID},
		{UserID: u.ID, TrackID: track.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created[0].Serial == uuid.Nil || created[0].Serial == created[1].Serial {
		t.Fatalf("serials must be assigned and distinct: %v %v", created[0].Serial, created[1].Serial)
	}
	if created[0].TemplateID != nil {
		t.Fatalf("template_id must stay nil")
	}

	got, err := repo.GetBySerial(dbc, created[1].Serial)
	if err != nil || got == nil || got.ID != created[1].ID {
		t.Fatalf("GetBySerial: err=%v got=%+v", err, got)
	}
	if got, err := repo.GetBySerial(dbc, uuid.New()); err != nil || got != nil {
		t.Fatalf("GetBySerial(missing): err=%v got=%+v", err, got)
	}

	if rows, err := repo.GetByUserIDs(dbc, []uint{u.ID}); err != nil || len(rows) != 2 {
		t.Fatalf("GetByUserIDs: err=%v len=%d", err, len(rows))
	}

	_, err = repo.Create(dbc, []*types.Certificate{{UserID: u.ID, TrackID: track.ID, Serial: created[0].Serial}})
	if !dberr.IsUniqueViolation(err) {
		t.Fatalf("Create duplicate serial: expected unique violation, got %v", err)
	}
}
