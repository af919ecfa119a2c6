package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/trackwise-backend/internal/data/repos/testutil"
	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/pointers"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
)

func TestEmailTemplateRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewEmailTemplateRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	created, err := repo.Create(dbc, []*types.EmailTemplate{
		{Name: "Welcome", Type: "welcome", Subject: pointers.String("Welcome aboard")},
		{Name: "Certificate", Type: "certificate_issued"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	before := created[0].UpdatedAt
	if before.IsZero() {
		t.Fatalf("updated_at must be stamped on create")
	}

	got, err := repo.GetByType(dbc, "welcome")
	if err != nil || got == nil || got.Subject == nil || *got.Subject != "Welcome aboard" {
		t.Fatalf("GetByType: err=%v got=%+v", err, got)
	}
	if got.BodyHTML != nil {
		t.Fatalf("body_html must stay nil")
	}
	if got, err := repo.GetByType(dbc, "password_reset"); err != nil || got != nil {
		t.Fatalf("GetByType(missing): err=%v got=%+v", err, got)
	}

	time.Sleep(10 * time.Millisecond)
	if err := repo.UpdateFields(dbc, created[0].ID, map[string]interface{}{"body_html": "<p>Hi</p>"}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	rows, err := repo.GetByIDs(dbc, []uint{created[0].ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows[0].BodyHTML == nil || *rows[0].BodyHTML != "<p>Hi</p>" {
		t.Fatalf("body_html not updated: %+v", rows[0])
	}
	if !rows[0].UpdatedAt.After(before) {
		t.Fatalf("updated_at not bumped: before=%v after=%v", before, rows[0].UpdatedAt)
	}

	list, err := repo.List(dbc)
	if err != nil || len(list) != 2 {
		t.Fatalf("List: err=%v len=%d", err, len(list))
	}
	if list[0].Type != "certificate_issued" {
		t.Fatalf("List must order by type: %+v", list[0])
	}
}
