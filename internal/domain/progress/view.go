package progress

import "github.com/yungbote/trackwise-backend/internal/platform/timefmt"

type EnrollmentView struct {
	ID         uint   `json:"id"`
	UserID     uint   `json:"user_id"`
	TrackID    uint   `json:"track_id"`
	EnrolledAt string `json:"enrolled_at"`
}

type CourseProgressView struct {
	ID            uint    `json:"id"`
	UserID        uint    `json:"user_id"`
	CourseID      uint    `json:"course_id"`
	Completed     bool    `json:"completed"`
	CompletedAt   *string `json:"completed_at"`
	TimeSpentMins int     `json:"time_spent_mins"`
}

type ModuleProgressView struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"user_id"`
	ModuleID    uint    `json:"module_id"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at"`
}

type QuizAttemptView struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	QuizID      uint   `json:"quiz_id"`
	Score       int    `json:"score"`
	Passed      bool   `json:"passed"`
	AttemptedAt string `json:"attempted_at"`
}

func NewEnrollmentView(e *Enrollment) EnrollmentView {
	return EnrollmentView{
		ID:         e.ID,
		UserID:     e.UserID,
		TrackID:    e.TrackID,
		EnrolledAt: timefmt.ISO(e.EnrolledAt),
	}
}

func NewCourseProgressView(p *CourseProgress) CourseProgressView {
	return CourseProgressView{
		ID:            p.ID,
		UserID:        p.UserID,
		CourseID:      p.CourseID,
		Completed:     p.Completed,
		CompletedAt:   timefmt.ISOPtr(p.CompletedAt),
		TimeSpentMins: p.TimeSpentMins,
	}
}

func NewModuleProgressView(p *ModuleProgress) ModuleProgressView {
	return ModuleProgressView{
		ID:          p.ID,
		UserID:      p.UserID,
		ModuleID:    p.ModuleID,
		Completed:   p.Completed,
		CompletedAt: timefmt.ISOPtr(p.CompletedAt),
	}
}

func NewQuizAttemptView(a *QuizAttempt) QuizAttemptView {
	return QuizAttemptView{
		ID:          a.ID,
		UserID:      a.UserID,
		QuizID:      a.QuizID,
		Score:       a.Score,
		Passed:      a.Passed,
		AttemptedAt: timefmt.ISO(a.AttemptedAt),
	}
}
