package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/trackwise-backend/internal/data/repos"
	"github.com/yungbote/trackwise-backend/internal/data/repos/testutil"
	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/trackwise-backend/internal/pkg/errors"
)

func TestCertificateServiceIssueAndVerify(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	log := testutil.Logger(t)
	templates := repos.NewCertificateTemplateRepo(db, log)
	svc := NewCertificateService(db, log, templates, repos.NewCertificateRepo(db, log))
	dbc := dbctx.Context{Ctx: ctx}

	u := testutil.SeedUser(t, ctx, db, "graduate")
	track := testutil.SeedTrack(t, ctx, db, "Onboarding", 0)

	bare, err := svc.Issue(dbc, u.ID, track.ID)
	if err != nil {
		t.Fatalf("Issue without template: %v", err)
	}
	if bare.TemplateID != nil {
		t.Fatalf("template_id must be nil when no template exists")
	}

	tmpl, err := templates.Create(dbc, []*types.CertificateTemplate{{Name: "Generic"}})
	if err != nil {
		t.Fatalf("create template: %v", err)
	}
	issued, err := svc.Issue(dbc, u.ID, track.ID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if issued.TemplateID == nil || *issued.TemplateID != tmpl[0].ID {
		t.Fatalf("template_id: got %v want %d", issued.TemplateID, tmpl[0].ID)
	}

	got, err := svc.Verify(dbc, issued.Serial)
	if err != nil || got.ID != issued.ID {
		t.Fatalf("Verify: err=%v got=%+v", err, got)
	}
	if _, err := svc.Verify(dbc, "not-a-serial"); !errors.Is(err, apperrors.ErrInvalidArgument) {
		t.Fatalf("Verify(garbage): expected ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.Verify(dbc, uuid.NewString()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("Verify(unknown): expected ErrNotFound, got %v", err)
	}
}
