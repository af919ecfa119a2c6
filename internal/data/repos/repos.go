package repos

import (
	"github.com/yungbote/trackwise-backend/internal/data/repos/certification"
	"github.com/yungbote/trackwise-backend/internal/data/repos/learning"
	"github.com/yungbote/trackwise-backend/internal/data/repos/messaging"
	"github.com/yungbote/trackwise-backend/internal/data/repos/progress"
	"github.com/yungbote/trackwise-backend/internal/data/repos/user"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type UserRepo = user.UserRepo

type TrackRepo = learning.TrackRepo
type ModuleRepo = learning.ModuleRepo
type CourseRepo = learning.CourseRepo
type QuizRepo = learning.QuizRepo
type QuizQuestionRepo = learning.QuizQuestionRepo
type QuizOptionRepo = learning.QuizOptionRepo

type EnrollmentRepo = progress.EnrollmentRepo
type CourseProgressRepo = progress.CourseProgressRepo
type ModuleProgressRepo = progress.ModuleProgressRepo
type QuizAttemptRepo = progress.QuizAttemptRepo

type CertificateTemplateRepo = certification.CertificateTemplateRepo
type CertificateRepo = certification.CertificateRepo

type EmailTemplateRepo = messaging.EmailTemplateRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }

func NewTrackRepo(db *gorm.DB, baseLog *logger.Logger) TrackRepo {
	return learning.NewTrackRepo(db, baseLog)
}
func NewModuleRepo(db *gorm.DB, baseLog *logger.Logger) ModuleRepo {
	return learning.NewModuleRepo(db, baseLog)
}
func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return learning.NewCourseRepo(db, baseLog)
}
func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	return learning.NewQuizRepo(db, baseLog)
}
func NewQuizQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuizQuestionRepo {
	return learning.NewQuizQuestionRepo(db, baseLog)
}
func NewQuizOptionRepo(db *gorm.DB, baseLog *logger.Logger) QuizOptionRepo {
	return learning.NewQuizOptionRepo(db, baseLog)
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	return progress.NewEnrollmentRepo(db, baseLog)
}
func NewCourseProgressRepo(db *gorm.DB, baseLog *logger.Logger) CourseProgressRepo {
	return progress.NewCourseProgressRepo(db, baseLog)
}
func NewModuleProgressRepo(db *gorm.DB, baseLog *logger.Logger) ModuleProgressRepo {
	return progress.NewModuleProgressRepo(db, baseLog)
}
func NewQuizAttemptRepo(db *gorm.DB, baseLog *logger.Logger) QuizAttemptRepo {
	return progress.NewQuizAttemptRepo(db, baseLog)
}

func NewCertificateTemplateRepo(db *gorm.DB, baseLog *logger.Logger) CertificateTemplateRepo {
	return certification.NewCertificateTemplateRepo(db, baseLog)
}
func NewCertificateRepo(db *gorm.DB, baseLog *logger.Logger) CertificateRepo {
	return certification.NewCertificateRepo(db, baseLog)
}

func NewEmailTemplateRepo(db *gorm.DB, baseLog *logger.Logger) EmailTemplateRepo {
	return messaging.NewEmailTemplateRepo(db, baseLog)
}
