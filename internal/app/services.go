package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/trackwise-backend/internal/platform/logger"
	"github.com/yungbote/trackwise-backend/internal/services"
)

type Services struct {
	Catalog     services.CatalogService
	Enrollment  services.EnrollmentService
	Certificate services.CertificateService
}

func wireServices(db *gorm.DB, log *logger.Logger, repos Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Catalog: services.NewCatalogService(
			db,
			log,
			repos.Track,
			repos.Module,
			repos.Course,
			repos.Quiz,
			repos.QuizQuestion,
			repos.QuizOption,
		),
		Enrollment:  services.NewEnrollmentService(db, log, repos.Enrollment),
		Certificate: services.NewCertificateService(db, log, repos.CertificateTemplate, repos.Certificate),
	}
}
