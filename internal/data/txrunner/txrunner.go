package txrunner

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
)

var errNilDB = errors.New("transaction runner has nil db")

// Runner is the shared transaction boundary for multi-query reads and writes.
type Runner interface {
	InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error
	// Join runs fn inside dbc.Tx when the caller already holds one and opens a
	// new transaction otherwise.
	Join(dbc dbctx.Context, fn func(dbc dbctx.Context) error) error
}

type gormRunner struct {
	db *gorm.DB
}

func New(db *gorm.DB) Runner {
	return &gormRunner{db: db}
}

func (r *gormRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if r == nil || r.db == nil {
		return errNilDB
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(dbctx.Context{Ctx: ctx, Tx: tx})
	})
}

func (r *gormRunner) Join(dbc dbctx.Context, fn func(dbc dbctx.Context) error) error {
	if fn == nil {
		return nil
	}
	if dbc.Tx != nil {
		return fn(dbc)
	}
	ctx := dbc.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return r.InTx(ctx, fn)
}
