package learning

import (
	"encoding/json"
	"testing"

	"github.com/yungbote/trackwise-backend/internal/pkg/pointers"
)

func toMap(t *testing.T, v any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}

func TestQuizOptionViewOmitsAnswerKey(t *testing.T) {
	for _, correct := range []bool{true, false} {
		o := &QuizOption{ID: 1, QuestionID: 2, OptionText: "42", IsCorrect: correct, DisplayOrder: 1}

		m := toMap(t, NewQuizOptionView(o))
		if _, ok := m["is_correct"]; ok {
			t.Fatalf("QuizOptionView leaked is_correct: %v", m)
		}

		m = toMap(t, NewQuizOptionAnswerView(o))
		got, ok := m["is_correct"]
		if !ok {
			t.Fatalf("QuizOptionAnswerView missing is_correct: %v", m)
		}
		if got != correct {
			t.Fatalf("is_correct: got %v want %v", got, correct)
		}
	}
}

func TestQuizOptionEntityNeverMarshalsAnswerKey(t *testing.T) {
	m := toMap(t, &QuizOption{ID: 1, OptionText: "x", IsCorrect: true})
	if _, ok := m["is_correct"]; ok {
		t.Fatalf("entity JSON leaked is_correct: %v", m)
	}
}

func TestQuizDetailViewEmbedsOptionsWithoutKey(t *testing.T) {
	q := &Quiz{ID: 5, ModuleID: 1, Title: "Safety", DurationMins: pointers.Int(15), PassPercentage: pointers.Int(70)}
	questions := []*QuizQuestion{{ID: 10, QuizID: 5, QuestionText: "Q1", DisplayOrder: 0}}
	options := map[uint][]*QuizOption{
		10: {{ID: 100, QuestionID: 10, OptionText: "A", IsCorrect: true}},
	}

	m := toMap(t, NewQuizDetailView(q, questions, options))
	qs := m["questions"].([]any)
	if len(qs) != 1 {
		t.Fatalf("questions: got %d", len(qs))
	}
	opts := qs[0].(map[string]any)["options"].([]any)
	if len(opts) != 1 {
		t.Fatalf("options: got %d", len(opts))
	}
	if _, ok := opts[0].(map[string]any)["is_correct"]; ok {
		t.Fatalf("quiz detail leaked is_correct")
	}

	key := toMap(t, NewQuizAnswerKeyView(q, questions, options))
	kopts := key["questions"].([]any)[0].(map[string]any)["options"].([]any)
	if kopts[0].(map[string]any)["is_correct"] != true {
		t.Fatalf("answer key missing is_correct")
	}
}

func TestQuestionWithoutOptionsRendersEmptyList(t *testing.T) {
	m := toMap(t, NewQuizQuestionView(&QuizQuestion{ID: 1, QuestionText: "Q"}, nil))
	opts, ok := m["options"].([]any)
	if !ok || len(opts) != 0 {
		t.Fatalf("options: expected empty list, got %#v", m["options"])
	}
}

func TestTrackTreeViewDepthCutoff(t *testing.T) {
	track := &Track{ID: 1, Name: "Onboarding"}
	module := &Module{ID: 2, TrackID: 1, Title: "Basics"}
	course := &Course{ID: 3, ModuleID: 2, Title: "Intro video", Source: pointers.String("YouTube"), DurationMins: pointers.Int(12)}
	quiz := &Quiz{ID: 4, ModuleID: 2, Title: "Basics check", DurationMins: pointers.Int(15), PassPercentage: pointers.Int(70)}

	tree := NewTrackTreeView(track, []ModuleDetailView{NewModuleDetailView(module, []*Course{course}, []*Quiz{quiz})})
	m := toMap(t, tree)

	modules := m["modules"].([]any)
	if len(modules) != 1 {
		t.Fatalf("modules: got %d", len(modules))
	}
	mod := modules[0].(map[string]any)
	if courses := mod["courses"].([]any); len(courses) != 1 {
		t.Fatalf("courses: got %d", len(courses))
	}
	quizzes := mod["quizzes"].([]any)
	q0 := quizzes[0].(map[string]any)
	if q0["title"] != "Basics check" {
		t.Fatalf("quiz title: got %v", q0["title"])
	}
	if _, ok := q0["questions"]; ok {
		t.Fatalf("quizzes inside a track tree must not embed questions")
	}
	if m["description"] != nil {
		t.Fatalf("nil description must serialize as null, got %#v", m["description"])
	}
}

func TestTrackViewsKeys(t *testing.T) {
	track := &Track{ID: 1, Name: "Ops", Description: pointers.String("desc"), DisplayOrder: 2}

	shallow := toMap(t, NewTrackView(track))
	if _, ok := shallow["modules"]; ok {
		t.Fatalf("shallow track must not have modules")
	}
	for _, k := range []string{"id", "name", "description", "display_order"} {
		if _, ok := shallow[k]; !ok {
			t.Fatalf("missing key %q", k)
		}
	}

	tree := toMap(t, NewTrackTreeView(track, nil))
	mods, ok := tree["modules"].([]any)
	if !ok || len(mods) != 0 {
		t.Fatalf("tree of an empty track must have modules: [], got %#v", tree["modules"])
	}

	withChildren := toMap(t, NewTrackModulesView(track, []*Module{{ID: 9, TrackID: 1, Title: "M"}}))
	mod := withChildren["modules"].([]any)[0].(map[string]any)
	if _, ok := mod["courses"]; ok {
		t.Fatalf("shallow modules must not embed courses")
	}
}

func TestParseDepth(t *testing.T) {
	for _, d := range []Depth{Shallow, WithChildren, Full} {
		got, ok := ParseDepth(d.String())
		if !ok || got != d {
			t.Fatalf("ParseDepth(%q) = %v, %v", d.String(), got, ok)
		}
	}
	if _, ok := ParseDepth("deep"); ok {
		t.Fatalf("unknown depth accepted")
	}
}
