package domain

import (
	"github.com/yungbote/trackwise-backend/internal/domain/certification"
	"github.com/yungbote/trackwise-backend/internal/domain/learning"
	"github.com/yungbote/trackwise-backend/internal/domain/messaging"
	"github.com/yungbote/trackwise-backend/internal/domain/progress"
	"github.com/yungbote/trackwise-backend/internal/domain/user"
)

const (
	RoleTrainee    = user.RoleTrainee
	RoleInstructor = user.RoleInstructor
	RoleAdmin      = user.RoleAdmin
)

type User = user.User

type Track = learning.Track
type Module = learning.Module
type Course = learning.Course
type Quiz = learning.Quiz
type QuizQuestion = learning.QuizQuestion
type QuizOption = learning.QuizOption

type Enrollment = progress.Enrollment
type CourseProgress = progress.CourseProgress
type ModuleProgress = progress.ModuleProgress
type QuizAttempt = progress.QuizAttempt

type CertificateTemplate = certification.CertificateTemplate
type Certificate = certification.Certificate

type EmailTemplate = messaging.EmailTemplate

// All lists one zero value per table, parents before children.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Track{},
		&Module{},
		&Course{},
		&Quiz{},
		&QuizQuestion{},
		&QuizOption{},
		&Enrollment{},
		&CourseProgress{},
		&ModuleProgress{},
		&QuizAttempt{},
		&CertificateTemplate{},
		&Certificate{},
		&EmailTemplate{},
	}
}
