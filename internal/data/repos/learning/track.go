package learning

import (
	"gorm.io/gorm"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type TrackRepo interface {
	Create(dbc dbctx.Context, tracks []*types.Track) ([]*types.Track, error)
	GetByIDs(dbc dbctx.Context, trackIDs []uint) ([]*types.Track, error)
	GetByName(dbc dbctx.Context, name string) (*types.Track, error)
	List(dbc dbctx.Context) ([]*types.Track, error)
	UpdateFields(dbc dbctx.Context, trackID uint, updates map[string]interface{}) error
	DeleteByIDs(dbc dbctx.Context, trackIDs []uint) error
}

type trackRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTrackRepo(db *gorm.DB, baseLog *logger.Logger) TrackRepo {
	repoLog := baseLog.With("repo", "TrackRepo")
	return &trackRepo{db: db, log: repoLog}
}

func (r *trackRepo) Create(dbc dbctx.Context, tracks []*types.Track) ([]*types.Track, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(tracks) == 0 {
		return []*types.Track{}, nil
	}
	if err := transaction.WithContext(dbc.Ctx).Create(&tracks).Error; err != nil {
		return nil, err
	}
	return tracks, nil
}

func (r *trackRepo) GetByIDs(dbc dbctx.Context, trackIDs []uint) ([]*types.Track, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Track
	if len(trackIDs) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(dbc.Ctx).
		Where("id IN ?", trackIDs).
		Order("display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByName returns nil, nil when no track has that name.
func (r *trackRepo) GetByName(dbc dbctx.Context, name string) (*types.Track, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Track
	if err := transaction.WithContext(dbc.Ctx).
		Where("name = ?", name).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *trackRepo) List(dbc dbctx.Context) ([]*types.Track, error) {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Track
	if err := transaction.WithContext(dbc.Ctx).
		Order("display_order ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *trackRepo) UpdateFields(dbc dbctx.Context, trackID uint, updates map[string]interface{}) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if trackID == 0 || len(updates) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Model(&types.Track{}).
		Where("id = ?", trackID).
		Updates(updates).Error
}

// DeleteByIDs fails with a foreign key violation while any module, enrollment,
// certificate or template still references one of the tracks.
func (r *trackRepo) DeleteByIDs(dbc dbctx.Context, trackIDs []uint) error {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if len(trackIDs) == 0 {
		return nil
	}
	return transaction.WithContext(dbc.Ctx).
		Where("id IN ?", trackIDs).
		Delete(&types.Track{}).Error
}
