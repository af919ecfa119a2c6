package messaging

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type EmailTemplateRepo interface {
	Create(dbc dbctx.Context, templates []*types.EmailTemplate) ([]*types.EmailTemplate, error)
	GetByIDs(dbc dbctx.Context, templateIDs []uint) ([]*types.EmailTemplate, error)
	GetByType(dbc dbctx.Context, templateType string) (*types.EmailTemplate, error)
	List(dbc dbctx.Context) ([]*types.EmailTemplate, error)
	UpdateFields(dbc dbctx.Context, templateID uint, updates map[string]interface{}) error
}

type emailTemplateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmailTemplateRepo(db *gorm.DB, baseLog *logger.Logger) EmailTemplateRepo {
	repoLog := baseLog.With("repo", "EmailTemplateRepo")
	return &emailTemplateRepo{db: db, log: repoLog}
}

func (r *emailTemplateRepo) Create(dbc dbctx.Context, templates []*types.EmailTemplate) ([]*types.EmailTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(templates) == 0 {
		return []*types.EmailTemplate{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *emailTemplateRepo) GetByIDs(dbc dbctx.Context, templateIDs []uint) ([]*types.EmailTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EmailTemplate
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

// GetByType returns the most recently updated template of a type, or nil, nil.
func (r *emailTemplateRepo) GetByType(dbc dbctx.Context, templateType string) (*types.EmailTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EmailTemplate
	if err := transaction.WithContext(dbc.Ctx).
		Where("type = ?", templateType).
		Order("updated_at DESC, id DESC").
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *emailTemplateRepo) List(dbc dbctx.Context) ([]*types.EmailTemplate, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.EmailTemplate
	if err := transaction.WithContext(dbc.Ctx).
		Order("type ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateFields also bumps updated_at.
func (r *emailTemplateRepo) UpdateFields(dbc dbctx.Context, templateID uint, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if templateID == 0 || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.EmailTemplate{}).
		Where("id = ?", templateID).
		Updates(updates).Error
}
