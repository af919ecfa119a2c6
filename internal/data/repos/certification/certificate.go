package certification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type CertificateRepo interface {
	Create(dbc dbctx.Context, certs []*types.Certificate) ([]*types.Certificate, error)
	GetByIDs(dbc dbctx.Context, certIDs []uint) ([]*types.Certificate, error)
	GetByUserIDs(dbc dbctx.Context, userIDs []uint) ([]*types.Certificate, error)
	GetBySerial(dbc dbctx.Context, serial uuid.UUID) (*types.Certificate, error)
}

type certificateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCertificateRepo(db *gorm.DB, baseLog *logger.Logger) CertificateRepo {
	repoLog := baseLog.With("repo", "CertificateRepo")
	return &certificateRepo{db: db, log: repoLog}
}

func (r *certificateRepo) Create(dbc dbctx.Context, certs []*types.Certificate) ([]*types.Certificate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(certs) == 0 {
		return []*types.Certificate{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *certificateRepo) GetByIDs(dbc dbctx.Context, certIDs []uint) ([]*types.Certificate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Certificate
	if len(certIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", certIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *certificateRepo) GetByUserIDs(dbc dbctx.Context, userIDs []uint) ([]*types.Certificate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Certificate
	if len(userIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id IN ?", userIDs).
		Order("issued_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *certificateRepo) GetBySerial(dbc dbctx.Context, serial uuid.UUID) (*types.Certificate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if serial == uuid.Nil {
		return nil, nil
	}
	var results []*types.Certificate
	if err := transaction.WithContext(dbc.Ctx).
		Where("serial = ?", serial).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}
