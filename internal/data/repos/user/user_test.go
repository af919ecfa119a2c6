package user

import (
	"context"
	"testing"
	"time"

	"github.com/yungbote/trackwise-backend/internal/data/dberr"
	"github.com/yungbote/trackwise-backend/internal/data/repos/testutil"
	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/pkg/pointers"
)

func newUser(username, email string) *types.User {
	return &types.User{
		FirstName:    "A",
		LastName:     "B",
		Username:     username,
		Email:        email,
		PasswordHash: "pw",
	}
}

func TestUserRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	created, err := repo.Create(dbc, []*types.User{newUser("jdoe", "jdoe@example.com")})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 || created[0].ID == 0 {
		t.Fatalf("Create: unexpected result: %+v", created)
	}
	u := created[0]
	if u.Role != types.RoleTrainee {
		t.Fatalf("Create: expected default role trainee, got %q", u.Role)
	}
	if u.LastActive == nil {
		t.Fatalf("Create: expected last_active to be stamped")
	}

	gotByIDs, err := repo.GetByIDs(dbc, []uint{u.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(gotByIDs) != 1 || gotByIDs[0].ID != u.ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", gotByIDs)
	}
	if !gotByIDs[0].Active() || gotByIDs[0].LoginAttempts != 0 {
		t.Fatalf("GetByIDs: expected defaults, got %+v", gotByIDs[0])
	}

	byName, err := repo.GetByUsername(dbc, "jdoe")
	if err != nil || byName == nil || byName.ID != u.ID {
		t.Fatalf("GetByUsername: err=%v got=%+v", err, byName)
	}
	if missing, err := repo.GetByUsername(dbc, "nobody"); err != nil || missing != nil {
		t.Fatalf("GetByUsername(missing): err=%v got=%+v", err, missing)
	}

	gotByEmails, err := repo.GetByEmails(dbc, []string{u.Email})
	if err != nil {
		t.Fatalf("GetByEmails: %v", err)
	}
	if len(gotByEmails) != 1 || gotByEmails[0].Email != u.Email {
		t.Fatalf("GetByEmails: unexpected result: %+v", gotByEmails)
	}

	if exists, err := repo.UsernameExists(dbc, "jdoe"); err != nil || !exists {
		t.Fatalf("UsernameExists: err=%v exists=%v", err, exists)
	}
	if exists, err := repo.EmailExists(dbc, "does-not-exist@example.com"); err != nil || exists {
		t.Fatalf("EmailExists(missing): err=%v exists=%v", err, exists)
	}

	if err := repo.UpdateFields(dbc, u.ID, map[string]interface{}{"first_name": "Jane", "role": types.RoleInstructor}); err != nil {
		t.Fatalf("UpdateFields: %v", err)
	}
	if err := repo.SetActive(dbc, u.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	rows, err := repo.GetByIDs(dbc, []uint{u.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs after update: err=%v len=%d", err, len(rows))
	}
	if rows[0].FirstName != "Jane" || rows[0].Role != types.RoleInstructor || rows[0].Active() {
		t.Fatalf("update not applied: %+v", rows[0])
	}
}

func TestUserRepoCreateKeepsExplicitValues(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	seen := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	inactive := newUser("dormant", "dormant@example.com")
	inactive.IsActive = pointers.Bool(false)
	inactive.LastActive = pointers.Time(seen)

	created, err := repo.Create(dbc, []*types.User{inactive})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := repo.GetByIDs(dbc, []uint{created[0].ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows[0].IsActive == nil || *rows[0].IsActive {
		t.Fatalf("is_active=false must survive the insert, got %v", rows[0].IsActive)
	}
	if rows[0].LastActive == nil || !rows[0].LastActive.Equal(seen) {
		t.Fatalf("last_active overwritten: %v", rows[0].LastActive)
	}
}

func TestUserRepoRejectsDuplicates(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	if _, err := repo.Create(dbc, []*types.User{newUser("jdoe", "jdoe@example.com")}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := repo.Create(dbc, []*types.User{newUser("jdoe", "other@example.com")})
	if err == nil {
		t.Fatalf("Create: expected duplicate username to fail")
	}
	if !dberr.IsUniqueViolation(err) {
		t.Fatalf("Create: expected unique violation, got %v", err)
	}

	_, err = repo.Create(dbc, []*types.User{newUser("other", "jdoe@example.com")})
	if !dberr.IsUniqueViolation(err) {
		t.Fatalf("Create: expected unique violation on email, got %v", err)
	}

	var count int64
	if err := tx.Model(&types.User{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 stored user, got %d", count)
	}
}

func TestUserRepoRejectsUnknownRole(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: context.Background(), Tx: tx}

	u := newUser("root", "root@example.com")
	u.Role = "superuser"
	if _, err := repo.Create(dbc, []*types.User{u}); !dberr.IsCheckViolation(err) {
		t.Fatalf("Create: expected check violation, got %v", err)
	}
}

func TestUserRepoLockout(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	ctx := context.Background()

	repo := NewUserRepo(db, testutil.Logger(t))
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}
	u := testutil.SeedUser(t, ctx, tx, "locky")

	for i := 0; i < 3; i++ {
		if err := repo.IncrementLoginAttempts(dbc, u.ID); err != nil {
			t.Fatalf("IncrementLoginAttempts: %v", err)
		}
	}
	until := time.Now().Add(15 * time.Minute)
	if err := repo.LockUntil(dbc, u.ID, until); err != nil {
		t.Fatalf("LockUntil: %v", err)
	}

	rows, err := repo.GetByIDs(dbc, []uint{u.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows[0].LoginAttempts != 3 {
		t.Fatalf("login_attempts: got %d want 3", rows[0].LoginAttempts)
	}
	if !rows[0].Locked(time.Now()) {
		t.Fatalf("expected user to be locked")
	}

	if err := repo.ResetLoginAttempts(dbc, u.ID); err != nil {
		t.Fatalf("ResetLoginAttempts: %v", err)
	}
	seen := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	if err := repo.TouchLastActive(dbc, u.ID, seen); err != nil {
		t.Fatalf("TouchLastActive: %v", err)
	}
	rows, err = repo.GetByIDs(dbc, []uint{u.ID})
	if err != nil || len(rows) != 1 {
		t.Fatalf("GetByIDs: err=%v len=%d", err, len(rows))
	}
	if rows[0].LoginAttempts != 0 || rows[0].LockedUntil != nil {
		t.Fatalf("reset not applied: %+v", rows[0])
	}
	if rows[0].LastActive == nil || !rows[0].LastActive.Equal(seen) {
		t.Fatalf("last_active: got %v want %v", rows[0].LastActive, seen)
	}
}
