package testutil

import (
	"context"
	"fmt"
	"testing"

	types "github.com/yungbote/trackwise-backend/internal/domain"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username string) *types.User {
	tb.Helper()
	u := &types.User{
		FirstName:    "A",
		LastName:     "B",
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedTrack(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, displayOrder int) *types.Track {
	tb.Helper()
	t := &types.Track{Name: name, DisplayOrder: displayOrder}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed track: %v", err)
	}
	return t
}

func SeedModule(tb testing.TB, ctx context.Context, tx *gorm.DB, trackID uint, displayOrder int) *types.Module {
	tb.Helper()
	m := &types.Module{TrackID: trackID, Title: fmt.Sprintf("module-%d", displayOrder), DisplayOrder: displayOrder}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed module: %v", err)
	}
	return m
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, moduleID uint, displayOrder int) *types.Course {
	tb.Helper()
	c := &types.Course{ModuleID: moduleID, Title: fmt.Sprintf("course-%d", displayOrder), DisplayOrder: displayOrder}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedQuiz(tb testing.TB, ctx context.Context, tx *gorm.DB, moduleID uint, title string) *types.Quiz {
	tb.Helper()
	q := &types.Quiz{ModuleID: moduleID, Title: title}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	return q
}

func SeedQuestion(tb testing.TB, ctx context.Context, tx *gorm.DB, quizID uint, displayOrder int) *types.QuizQuestion {
	tb.Helper()
	q := &types.QuizQuestion{QuizID: quizID, QuestionText: fmt.Sprintf("question-%d", displayOrder), DisplayOrder: displayOrder}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed question: %v", err)
	}
	return q
}

func SeedOption(tb testing.TB, ctx context.Context, tx *gorm.DB, questionID uint, displayOrder int, correct bool) *types.QuizOption {
	tb.Helper()
	o := &types.QuizOption{QuestionID: questionID, OptionText: fmt.Sprintf("option-%d", displayOrder), IsCorrect: correct, DisplayOrder: displayOrder}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed option: %v", err)
	}
	return o
}
