package dberr

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Kind is the store failure category a caller can translate into a
// user-facing message.
type Kind string

const (
	KindNone       Kind = ""
	KindNotFound   Kind = "not_found"
	KindUnique     Kind = "unique_violation"
	KindForeignKey Kind = "foreign_key_violation"
	KindNotNull    Kind = "not_null_violation"
	KindCheck      Kind = "check_violation"
	KindConnection Kind = "connection"
	KindOther      Kind = "other"
)

// Classify maps an error returned by a repo to a Kind. Repos never translate
// errors themselves; callers use this at the boundary.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return KindUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return KindForeignKey
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded):
		return KindConnection
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := strings.TrimSpace(pgErr.Code)
		switch {
		case code == "23505":
			return KindUnique
		case code == "23503":
			return KindForeignKey
		case code == "23502":
			return KindNotNull
		case code == "23514":
			return KindCheck
		case strings.HasPrefix(code, "08"):
			return KindConnection
		}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return KindConnection
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return KindUnique
		case sqlite3.ErrConstraintForeignKey:
			return KindForeignKey
		case sqlite3.ErrConstraintNotNull:
			return KindNotNull
		case sqlite3.ErrConstraintCheck:
			return KindCheck
		}
		switch liteErr.Code {
		case sqlite3.ErrCantOpen, sqlite3.ErrBusy, sqlite3.ErrLocked:
			return KindConnection
		}
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "duplicate key"), strings.Contains(msg, "unique constraint"):
		return KindUnique
	case strings.Contains(msg, "foreign key"):
		return KindForeignKey
	case strings.Contains(msg, "not null constraint"), strings.Contains(msg, "violates not-null"):
		return KindNotNull
	case strings.Contains(msg, "check constraint"):
		return KindCheck
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "broken pipe"):
		return KindConnection
	default:
		return KindOther
	}
}

func IsNotFound(err error) bool { return Classify(err) == KindNotFound }

func IsUniqueViolation(err error) bool { return Classify(err) == KindUnique }

func IsForeignKeyViolation(err error) bool { return Classify(err) == KindForeignKey }

func IsNotNullViolation(err error) bool { return Classify(err) == KindNotNull }

func IsCheckViolation(err error) bool { return Classify(err) == KindCheck }

func IsConnection(err error) bool { return Classify(err) == KindConnection }
