package certification

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type CertificateTemplateRepo interface {
	Create(dbc dbctx.Context, templates []*types.CertificateTemplate) ([]*types.CertificateTemplate, error)
	GetByIDs(dbc dbctx.Context, templateIDs []uint) ([]*types.CertificateTemplate, error)
	GetForTrack(dbc dbctx.Context, trackID uint) (*types.CertificateTemplate, error)
	List(dbc dbctx.Context) ([]*types.CertificateTemplate, error)
}

type certificateTemplateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCertificateTemplateRepo(db *gorm.DB, baseLog *logger.Logger) CertificateTemplateRepo {
	repoLog := baseLog.With("repo", "CertificateTemplateRepo")
	return &certificateTemplateRepo{db: db, log: repoLog}
}

func (r *certificateTemplateRepo) Create(dbc dbctx.Context, templates []*types.CertificateTemplate) ([]*types.CertificateTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(templates) == 0 {
		return []*types.CertificateTemplate{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *certificateTemplateRepo) GetByIDs(dbc dbctx.Context, templateIDs []uint) ([]*types.CertificateTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.CertificateTemplate
	if len(templateIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", templateIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetForTrack prefers the newest template bound to trackID and falls back to
// the newest unbound one. It returns nil, nil when neither exists.
func (r *certificateTemplateRepo) GetForTrack(dbc dbctx.Context, trackID uint) (*types.CertificateTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.CertificateTemplate
	if err := transaction.WithContext(dbc.Ctx).
		Where("track_id = ? OR track_id IS NULL", trackID).
		Order("CASE WHEN track_id IS NULL THEN 1 ELSE 0 END ASC, id DESC").
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *certificateTemplateRepo) List(dbc dbctx.Context) ([]*types.CertificateTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.CertificateTemplate
	if err := transaction.WithContext(dbc.Ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
