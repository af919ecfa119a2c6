package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/trackwise-backend/internal/data/repos"
	"github.com/yungbote/trackwise-backend/internal/data/txrunner"
	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/domain/progress"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type EnrollmentService interface {
	// Enroll stores an enrollment unless the user already has one for the
	// track, in which case the oldest existing row is returned with
	// created=false. The table itself accepts duplicates.
	Enroll(dbc dbctx.Context, userID, trackID uint) (enrollment *types.Enrollment, created bool, err error)
	ListForUser(dbc dbctx.Context, userID uint) ([]progress.EnrollmentView, error)
}

type enrollmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	runner         txrunner.Runner
	enrollmentRepo repos.EnrollmentRepo
}

func NewEnrollmentService(db *gorm.DB, baseLog *logger.Logger, enrollmentRepo repos.EnrollmentRepo) EnrollmentService {
	serviceLog := baseLog.With("service", "EnrollmentService")
	return &enrollmentService{
		db:             db,
		log:            serviceLog,
		runner:         txrunner.New(db),
		enrollmentRepo: enrollmentRepo,
	}
}

func (es *enrollmentService) Enroll(dbc dbctx.Context, userID, trackID uint) (*types.Enrollment, bool, error) {
	var out *types.Enrollment
	created := false
	err := es.runner.Join(dbc, func(inner dbctx.Context) error {
		existing, err := es.enrollmentRepo.GetByUserIDs(inner, []uint{userID})
		if err != nil {
			return fmt.Errorf("load enrollments: %w", err)
		}
		for _, e := range existing {
			if e.TrackID == trackID {
				out = e
				return nil
			}
		}
		rows, err := es.enrollmentRepo.Create(inner, []*types.Enrollment{{UserID: userID, TrackID: trackID}})
		if err != nil {
			return fmt.Errorf("create enrollment: %w", err)
		}
		out = rows[0]
		created = true
		return nil
	})
	if err != nil {
		es.log.Warn("Enroll failed", "user_id", userID, "track_id", trackID, "error", err)
		return nil, false, err
	}
	return out, created, nil
}

func (es *enrollmentService) ListForUser(dbc dbctx.Context, userID uint) ([]progress.EnrollmentView, error) {
	rows, err := es.enrollmentRepo.GetByUserIDs(dbc, []uint{userID})
	if err != nil {
		return nil, fmt.Errorf("load enrollments: %w", err)
	}
	out := make([]progress.EnrollmentView, 0, len(rows))
	for _, e := range rows {
		out = append(out, progress.NewEnrollmentView(e))
	}
	return out, nil
}
