package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/trackwise-backend/internal/data/repos"
	"github.com/yungbote/trackwise-backend/internal/data/txrunner"
	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/domain/certification"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/trackwise-backend/internal/pkg/errors"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type CertificateService interface {
	// Issue records a certificate for a user and track, bound to the track's
	// template or the generic one. Rendering happens elsewhere.
	Issue(dbc dbctx.Context, userID, trackID uint) (*certification.CertificateView, error)
	// Verify looks a certificate up by the serial printed on it.
	Verify(dbc dbctx.Context, serial string) (*certification.CertificateView, error)
}

type certificateService struct {
	db           *gorm.DB
	log          *logger.Logger
	runner       txrunner.Runner
	templateRepo repos.CertificateTemplateRepo
	certRepo     repos.CertificateRepo
}

func NewCertificateService(
	db *gorm.DB,
	baseLog *logger.Logger,
	templateRepo repos.CertificateTemplateRepo,
	certRepo repos.CertificateRepo,
) CertificateService {
	serviceLog := baseLog.With("service", "CertificateService")
	return &certificateService{
		db:           db,
		log:          serviceLog,
		runner:       txrunner.New(db),
		templateRepo: templateRepo,
		certRepo:     certRepo,
	}
}

func (cs *certificateService) Issue(dbc dbctx.Context, userID, trackID uint) (*certification.CertificateView, error) {
	var cert *types.Certificate
	err := cs.runner.Join(dbc, func(inner dbctx.Context) error {
		tmpl, err := cs.templateRepo.GetForTrack(inner, trackID)
		if err != nil {
			return fmt.Errorf("load template: %w", err)
		}
		c := &types.Certificate{UserID: userID, TrackID: trackID}
		if tmpl != nil {
			c.TemplateID = &tmpl.ID
		}
		rows, err := cs.certRepo.Create(inner, []*types.Certificate{c})
		if err != nil {
			return fmt.Errorf("create certificate: %w", err)
		}
		cert = rows[0]
		return nil
	})
	if err != nil {
		cs.log.Warn("Issue certificate failed", "user_id", userID, "track_id", trackID, "error", err)
		return nil, err
	}
	cs.log.Info("Certificate issued", "user_id", userID, "track_id", trackID, "serial", cert.Serial.String())
	view := certification.NewCertificateView(cert)
	return &view, nil
}

func (cs *certificateService) Verify(dbc dbctx.Context, serial string) (*certification.CertificateView, error) {
	id, err := uuid.Parse(strings.TrimSpace(serial))
	if err != nil || id == uuid.Nil {
		return nil, fmt.Errorf("serial %q: %w", serial, apperrors.ErrInvalidArgument)
	}
	cert, err := cs.certRepo.GetBySerial(dbc, id)
	if err != nil {
		return nil, fmt.Errorf("load certificate: %w", err)
	}
	if cert == nil {
		return nil, fmt.Errorf("certificate %s: %w", id, apperrors.ErrNotFound)
	}
	view := certification.NewCertificateView(cert)
	return &view, nil
}
