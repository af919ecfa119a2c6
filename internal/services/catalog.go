package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/trackwise-backend/internal/data/repos"
	"github.com/yungbote/trackwise-backend/internal/data/txrunner"
	types "github.com/yungbote/trackwise-backend/internal/domain"
	"github.com/yungbote/trackwise-backend/internal/domain/learning"
	"github.com/yungbote/trackwise-backend/internal/pkg/dbctx"
	apperrors "github.com/yungbote/trackwise-backend/internal/pkg/errors"
	"github.com/yungbote/trackwise-backend/internal/platform/logger"
)

// CatalogService assembles the track > module > course/quiz > question >
// option hierarchy into views. Every level is loaded with one batched query,
// and a lookup without a transaction runs inside its own so the tree is read
// from a single snapshot.
type CatalogService interface {
	ListTracks(dbc dbctx.Context) ([]learning.TrackView, error)

	// Track renders a track at the requested depth: TrackView,
	// TrackModulesView or TrackTreeView.
	Track(dbc dbctx.Context, trackID uint, depth learning.Depth) (any, error)
	TrackTree(dbc dbctx.Context, trackID uint) (*learning.TrackTreeView, error)

	// Module renders ModuleView when shallow and ModuleDetailView otherwise.
	Module(dbc dbctx.Context, moduleID uint, depth learning.Depth) (any, error)
	ModuleDetail(dbc dbctx.Context, moduleID uint) (*learning.ModuleDetailView, error)

	// Quiz renders QuizView when shallow and QuizDetailView otherwise. The
	// answer key is only reachable through QuizAnswerKey.
	Quiz(dbc dbctx.Context, quizID uint, depth learning.Depth) (any, error)
	QuizForTaker(dbc dbctx.Context, quizID uint) (*learning.QuizDetailView, error)
	QuizAnswerKey(dbc dbctx.Context, quizID uint) (*learning.QuizAnswerKeyView, error)
}

type catalogService struct {
	db           *gorm.DB
	log          *logger.Logger
	runner       txrunner.Runner
	trackRepo    repos.TrackRepo
	moduleRepo   repos.ModuleRepo
	courseRepo   repos.CourseRepo
	quizRepo     repos.QuizRepo
	questionRepo repos.QuizQuestionRepo
	optionRepo   repos.QuizOptionRepo
}

func NewCatalogService(
	db *gorm.DB,
	baseLog *logger.Logger,
	trackRepo repos.TrackRepo,
	moduleRepo repos.ModuleRepo,
	courseRepo repos.CourseRepo,
	quizRepo repos.QuizRepo,
	questionRepo repos.QuizQuestionRepo,
	optionRepo repos.QuizOptionRepo,
) CatalogService {
	serviceLog := baseLog.With("service", "CatalogService")
	return &catalogService{
		db:           db,
		log:          serviceLog,
		runner:       txrunner.New(db),
		trackRepo:    trackRepo,
		moduleRepo:   moduleRepo,
		courseRepo:   courseRepo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		optionRepo:   optionRepo,
	}
}

func (cs *catalogService) ListTracks(dbc dbctx.Context) ([]learning.TrackView, error) {
	tracks, err := cs.trackRepo.List(dbc)
	if err != nil {
		cs.log.Warn("ListTracks failed", "error", err)
		return nil, fmt.Errorf("list tracks: %w", err)
	}
	out := make([]learning.TrackView, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, learning.NewTrackView(t))
	}
	return out, nil
}

func (cs *catalogService) Track(dbc dbctx.Context, trackID uint, depth learning.Depth) (any, error) {
	switch depth {
	case learning.Shallow:
		t, err := cs.loadTrack(dbc, trackID)
		if err != nil {
			return nil, err
		}
		return learning.NewTrackView(t), nil
	case learning.WithChildren:
		var view learning.TrackModulesView
		err := cs.runner.Join(dbc, func(inner dbctx.Context) error {
			t, err := cs.loadTrack(inner, trackID)
			if err != nil {
				return err
			}
			modules, err := cs.moduleRepo.GetByTrackIDs(inner, []uint{t.ID})
			if err != nil {
				return fmt.Errorf("load modules: %w", err)
			}
			view = learning.NewTrackModulesView(t, modules)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return view, nil
	case learning.Full:
		view, err := cs.TrackTree(dbc, trackID)
		if err != nil {
			return nil, err
		}
		return view, nil
	default:
		return nil, fmt.Errorf("depth %d: %w", depth, apperrors.ErrInvalidArgument)
	}
}

func (cs *catalogService) TrackTree(dbc dbctx.Context, trackID uint) (*learning.TrackTreeView, error) {
	var view learning.TrackTreeView
	err := cs.runner.Join(dbc, func(inner dbctx.Context) error {
		t, err := cs.loadTrack(inner, trackID)
		if err != nil {
			return err
		}
		modules, err := cs.moduleRepo.GetByTrackIDs(inner, []uint{t.ID})
		if err != nil {
			return fmt.Errorf("load modules: %w", err)
		}
		details, err := cs.moduleDetails(inner, modules)
		if err != nil {
			return err
		}
		view = learning.NewTrackTreeView(t, details)
		return nil
	})
	if err != nil {
		cs.log.Debug("TrackTree failed", "track_id", trackID, "error", err)
		return nil, err
	}
	return &view, nil
}

func (cs *catalogService) Module(dbc dbctx.Context, moduleID uint, depth learning.Depth) (any, error) {
	switch depth {
	case learning.Shallow:
		m, err := cs.loadModule(dbc, moduleID)
		if err != nil {
			return nil, err
		}
		return learning.NewModuleView(m), nil
	case learning.WithChildren, learning.Full:
		view, err := cs.ModuleDetail(dbc, moduleID)
		if err != nil {
			return nil, err
		}
		return view, nil
	default:
		return nil, fmt.Errorf("depth %d: %w", depth, apperrors.ErrInvalidArgument)
	}
}

func (cs *catalogService) ModuleDetail(dbc dbctx.Context, moduleID uint) (*learning.ModuleDetailView, error) {
	var view learning.ModuleDetailView
	err := cs.runner.Join(dbc, func(inner dbctx.Context) error {
		m, err := cs.loadModule(inner, moduleID)
		if err != nil {
			return err
		}
		details, err := cs.moduleDetails(inner, []*types.Module{m})
		if err != nil {
			return err
		}
		view = details[0]
		return nil
	})
	if err != nil {
		cs.log.Debug("ModuleDetail failed", "module_id", moduleID, "error", err)
		return nil, err
	}
	return &view, nil
}

func (cs *catalogService) Quiz(dbc dbctx.Context, quizID uint, depth learning.Depth) (any, error) {
	switch depth {
	case learning.Shallow:
		q, err := cs.loadQuiz(dbc, quizID)
		if err != nil {
			return nil, err
		}
		return learning.NewQuizView(q), nil
	case learning.WithChildren, learning.Full:
		view, err := cs.QuizForTaker(dbc, quizID)
		if err != nil {
			return nil, err
		}
		return view, nil
	default:
		return nil, fmt.Errorf("depth %d: %w", depth, apperrors.ErrInvalidArgument)
	}
}

func (cs *catalogService) QuizForTaker(dbc dbctx.Context, quizID uint) (*learning.QuizDetailView, error) {
	var view learning.QuizDetailView
	err := cs.runner.Join(dbc, func(inner dbctx.Context) error {
		q, questions, options, err := cs.loadQuizContent(inner, quizID)
		if err != nil {
			return err
		}
		view = learning.NewQuizDetailView(q, questions, options)
		return nil
	})
	if err != nil {
		cs.log.Debug("QuizForTaker failed", "quiz_id", quizID, "error", err)
		return nil, err
	}
	return &view, nil
}

func (cs *catalogService) QuizAnswerKey(dbc dbctx.Context, quizID uint) (*learning.QuizAnswerKeyView, error) {
	var view learning.QuizAnswerKeyView
	err := cs.runner.Join(dbc, func(inner dbctx.Context) error {
		q, questions, options, err := cs.loadQuizContent(inner, quizID)
		if err != nil {
			return err
		}
		view = learning.NewQuizAnswerKeyView(q, questions, options)
		return nil
	})
	if err != nil {
		cs.log.Debug("QuizAnswerKey failed", "quiz_id", quizID, "error", err)
		return nil, err
	}
	return &view, nil
}

// moduleDetails expands modules with two queries total, whatever the number
// of modules. The result keeps the order of modules.
func (cs *catalogService) moduleDetails(dbc dbctx.Context, modules []*types.Module) ([]learning.ModuleDetailView, error) {
	out := make([]learning.ModuleDetailView, 0, len(modules))
	if len(modules) == 0 {
		return out, nil
	}
	moduleIDs := make([]uint, 0, len(modules))
	for _, m := range modules {
		moduleIDs = append(moduleIDs, m.ID)
	}

	courses, err := cs.courseRepo.GetByModuleIDs(dbc, moduleIDs)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	quizzes, err := cs.quizRepo.GetByModuleIDs(dbc, moduleIDs)
	if err != nil {
		return nil, fmt.Errorf("load quizzes: %w", err)
	}

	coursesByModule := make(map[uint][]*types.Course, len(modules))
	for _, c := range courses {
		coursesByModule[c.ModuleID] = append(coursesByModule[c.ModuleID], c)
	}
	quizzesByModule := make(map[uint][]*types.Quiz, len(modules))
	for _, q := range quizzes {
		quizzesByModule[q.ModuleID] = append(quizzesByModule[q.ModuleID], q)
	}

	for _, m := range modules {
		out = append(out, learning.NewModuleDetailView(m, coursesByModule[m.ID], quizzesByModule[m.ID]))
	}
	return out, nil
}

func (cs *catalogService) loadQuizContent(dbc dbctx.Context, quizID uint) (*types.Quiz, []*types.QuizQuestion, map[uint][]*types.QuizOption, error) {
	q, err := cs.loadQuiz(dbc, quizID)
	if err != nil {
		return nil, nil, nil, err
	}
	questions, err := cs.questionRepo.GetByQuizIDs(dbc, []uint{q.ID})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load questions: %w", err)
	}
	questionIDs := make([]uint, 0, len(questions))
	for _, qq := range questions {
		questionIDs = append(questionIDs, qq.ID)
	}
	options, err := cs.optionRepo.GetByQuestionIDs(dbc, questionIDs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load options: %w", err)
	}
	byQuestion := make(map[uint][]*types.QuizOption, len(questions))
	for _, o := range options {
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], o)
	}
	return q, questions, byQuestion, nil
}

func (cs *catalogService) loadTrack(dbc dbctx.Context, trackID uint) (*types.Track, error) {
	found, err := cs.trackRepo.GetByIDs(dbc, []uint{trackID})
	if err != nil {
		return nil, fmt.Errorf("load track: %w", err)
	}
	if len(found) == 0 || found[0] == nil {
		return nil, fmt.Errorf("track %d: %w", trackID, apperrors.ErrNotFound)
	}
	return found[0], nil
}

func (cs *catalogService) loadModule(dbc dbctx.Context, moduleID uint) (*types.Module, error) {
	found, err := cs.moduleRepo.GetByIDs(dbc, []uint{moduleID})
	if err != nil {
		return nil, fmt.Errorf("load module: %w", err)
	}
	if len(found) == 0 || found[0] == nil {
		return nil, fmt.Errorf("module %d: %w", moduleID, apperrors.ErrNotFound)
	}
	return found[0], nil
}

func (cs *catalogService) loadQuiz(dbc dbctx.Context, quizID uint) (*types.Quiz, error) {
	found, err := cs.quizRepo.GetByIDs(dbc, []uint{quizID})
	if err != nil {
		return nil, fmt.Errorf("load quiz: %w", err)
	}
	if len(found) == 0 || found[0] == nil {
		return nil, fmt.Errorf("quiz %d: %w", quizID, apperrors.ErrNotFound)
	}
	return found[0], nil
}
