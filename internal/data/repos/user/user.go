package user

import (
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type UserRepo interface {
	Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error)
	GetByIDs(dbc dbctx.Context, userIDs []uint) ([]*types.User, error)
	GetByUsername(dbc dbctx.Context, username string) (*types.User, error)
	GetByEmails(dbc dbctx.Context, emails []string) ([]*types.User, error)
	UsernameExists(dbc dbctx.Context, username string) (bool, error)
	EmailExists(dbc dbctx.Context, email string) (bool, error)
	UpdateFields(dbc dbctx.Context, userID uint, updates map[string]interface{}) error
	SetActive(dbc dbctx.Context, userID uint, active bool) error
	TouchLastActive(dbc dbctx.Context, userID uint, at time.Time) error
	IncrementLoginAttempts(dbc dbctx.Context, userID uint) error
	LockUntil(dbc dbctx.Context, userID uint, until time.Time) error
	ResetLoginAttempts(dbc dbctx.Context, userID uint) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

// Create inserts users as given. A duplicate username or email fails with the
// store's unique violation; see dberr.IsUniqueViolation.
func (ur *userRepo) Create(dbc dbctx.Context, users []*types.User) ([]*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	if len(users) == 0 {
		return []*types.User{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (ur *userRepo) GetByIDs(dbc dbctx.Context, userIDs []uint) ([]*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*types.User
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", userIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByUsername returns nil, nil when no user has that username.
func (ur *userRepo) GetByUsername(dbc dbctx.Context, username string) (*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	if username == "" {
		return nil, nil
	}
	var results []*types.User
	if err := transaction.WithContext(dbc.Ctx).
		Where("username = ?", username).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (ur *userRepo) GetByEmails(dbc dbctx.Context, emails []string) ([]*types.User, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	var results []*types.User
	if len(emails) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("email IN ?", emails).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (ur *userRepo) UsernameExists(dbc dbctx.Context, username string) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) EmailExists(dbc dbctx.Context, email string) (bool, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	var count int64
	if err := transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (ur *userRepo) UpdateFields(dbc dbctx.Context, userID uint, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	if userID == 0 || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

// SetActive toggles an existing account.
func (ur *userRepo) SetActive(dbc dbctx.Context, userID uint, active bool) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("is_active", active).Error
}

func (ur *userRepo) TouchLastActive(dbc dbctx.Context, userID uint, at time.Time) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("last_active", at.UTC()).Error
}

func (ur *userRepo) IncrementLoginAttempts(dbc dbctx.Context, userID uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("login_attempts", gorm.Expr("login_attempts + ?", 1)).Error
}

func (ur *userRepo) LockUntil(dbc dbctx.Context, userID uint, until time.Time) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Update("locked_until", until.UTC()).Error
}

func (ur *userRepo) ResetLoginAttempts(dbc dbctx.Context, userID uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"login_attempts": 0,
			"locked_until":   nil,
		}).Error
}
