package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/trackwise-backend/internal/data/repos"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

type Repos struct {
	User                repos.UserRepo
	Track               repos.TrackRepo
	Module              repos.ModuleRepo
	Course              repos.CourseRepo
	Quiz                repos.QuizRepo
	QuizQuestion        repos.QuizQuestionRepo
	QuizOption          repos.QuizOptionRepo
	Enrollment          repos.EnrollmentRepo
	CourseProgress      repos.CourseProgressRepo
	ModuleProgress      repos.ModuleProgressRepo
	QuizAttempt         repos.QuizAttemptRepo
	CertificateTemplate repos.CertificateTemplateRepo
	Certificate         repos.CertificateRepo
	EmailTemplate       repos.EmailTemplateRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:                repos.NewUserRepo(db, log),
		Track:               repos.NewTrackRepo(db, log),
		Module:              repos.NewModuleRepo(db, log),
		Course:              repos.NewCourseRepo(db, log),
		Quiz:                repos.NewQuizRepo(db, log),
		QuizQuestion:        repos.NewQuizQuestionRepo(db, log),
		QuizOption:          repos.NewQuizOptionRepo(db, log),
		Enrollment:          repos.NewEnrollmentRepo(db, log),
		CourseProgress:      repos.NewCourseProgressRepo(db, log),
		ModuleProgress:      repos.NewModuleProgressRepo(db, log),
		QuizAttempt:         repos.NewQuizAttemptRepo(db, log),
		CertificateTemplate: repos.NewCertificateTemplateRepo(db, log),
		Certificate:         repos.NewCertificateRepo(db, log),
		EmailTemplate:       repos.NewEmailTemplateRepo(db, log),
	}
}
