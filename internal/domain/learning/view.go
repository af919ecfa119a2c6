package learning

// Depth selects how much of the catalog hierarchy a view embeds.
type Depth int

const (
	// Shallow renders the entity's own fields only.
	Shallow Depth = iota
	// WithChildren adds the direct children, each rendered shallow.
	WithChildren
	// Full adds everything the entity nests: a track's modules with their
	// courses and quizzes, a quiz's questions with their options.
	Full
)

func (d Depth) String() string {
	switch d {
	case Shallow:
		return "shallow"
	case WithChildren:
		return "with_children"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// ParseDepth maps the textual names back to a Depth.
func ParseDepth(s string) (Depth, bool) {
	switch s {
	case "", "shallow":
		return Shallow, true
	case "with_children", "children":
		return WithChildren, true
	case "full":
		return Full, true
	default:
		return Shallow, false
	}
}

type TrackView struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
}

// TrackModulesView is a track with its modules rendered shallow.
type TrackModulesView struct {
	TrackView
	Modules []ModuleView `json:"modules"`
}

// TrackTreeView is a track with every module expanded to its courses and
// quizzes. Quizzes stay shallow at this depth.
type TrackTreeView struct {
	TrackView
	Modules []ModuleDetailView `json:"modules"`
}

type ModuleView struct {
	ID           uint    `json:"id"`
	TrackID      uint    `json:"track_id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	DisplayOrder int     `json:"display_order"`
}

type ModuleDetailView struct {
	ModuleView
	Courses []CourseView `json:"courses"`
	Quizzes []QuizView   `json:"quizzes"`
}

type CourseView struct {
	ID           uint    `json:"id"`
	ModuleID     uint    `json:"module_id"`
	Title        string  `json:"title"`
	Source       *string `json:"source"`
	DurationMins *int    `json:"duration_mins"`
	DisplayOrder int     `json:"display_order"`
}

type QuizView struct {
	ID             uint   `json:"id"`
	ModuleID       uint   `json:"module_id"`
	Title          string `json:"title"`
	DurationMins   int    `json:"duration_mins"`
	PassPercentage int    `json:"pass_percentage"`
}

// QuizDetailView is what a quiz taker receives: questions and options,
// no answer key.
type QuizDetailView struct {
	QuizView
	Questions []QuizQuestionView `json:"questions"`
}

// QuizAnswerKeyView is the grading/admin counterpart of QuizDetailView.
type QuizAnswerKeyView struct {
	QuizView
	Questions []QuizQuestionAnswerKeyView `json:"questions"`
}

type QuizQuestionView struct {
	ID           uint             `json:"id"`
	QuestionText string           `json:"question_text"`
	DisplayOrder int              `json:"display_order"`
	Options      []QuizOptionView `json:"options"`
}

type QuizQuestionAnswerKeyView struct {
	ID           uint                   `json:"id"`
	QuestionText string                 `json:"question_text"`
	DisplayOrder int                    `json:"display_order"`
	Options      []QuizOptionAnswerView `json:"options"`
}

// QuizOptionView has no is_correct field at all, so the answer key cannot
// leak through it.
type QuizOptionView struct {
	ID           uint   `json:"id"`
	OptionText   string `json:"option_text"`
	DisplayOrder int    `json:"display_order"`
}

type QuizOptionAnswerView struct {
	QuizOptionView
	IsCorrect bool `json:"is_correct"`
}

func NewTrackView(t *Track) TrackView {
	return TrackView{
		ID:           t.ID,
		Name:         t.Name,
		Description:  t.Description,
		DisplayOrder: t.DisplayOrder,
	}
}

func NewTrackModulesView(t *Track, modules []*Module) TrackModulesView {
	out := TrackModulesView{TrackView: NewTrackView(t), Modules: make([]ModuleView, 0, len(modules))}
	for _, m := range modules {
		out.Modules = append(out.Modules, NewModuleView(m))
	}
	return out
}

func NewTrackTreeView(t *Track, modules []ModuleDetailView) TrackTreeView {
	if modules == nil {
		modules = []ModuleDetailView{}
	}
	return TrackTreeView{TrackView: NewTrackView(t), Modules: modules}
}

func NewModuleView(m *Module) ModuleView {
	return ModuleView{
		ID:           m.ID,
		TrackID:      m.TrackID,
		Title:        m.Title,
		Description:  m.Description,
		DisplayOrder: m.DisplayOrder,
	}
}

func NewModuleDetailView(m *Module, courses []*Course, quizzes []*Quiz) ModuleDetailView {
	out := ModuleDetailView{
		ModuleView: NewModuleView(m),
		Courses:    make([]CourseView, 0, len(courses)),
		Quizzes:    make([]QuizView, 0, len(quizzes)),
	}
	for _, c := range courses {
		out.Courses = append(out.Courses, NewCourseView(c))
	}
	for _, q := range quizzes {
		out.Quizzes = append(out.Quizzes, NewQuizView(q))
	}
	return out
}

func NewCourseView(c *Course) CourseView {
	return CourseView{
		ID:           c.ID,
		ModuleID:     c.ModuleID,
		Title:        c.Title,
		Source:       c.Source,
		DurationMins: c.DurationMins,
		DisplayOrder: c.DisplayOrder,
	}
}

func NewQuizView(q *Quiz) QuizView {
	return QuizView{
		ID:             q.ID,
		ModuleID:       q.ModuleID,
		Title:          q.Title,
		DurationMins:   q.Duration(),
		PassPercentage: q.PassMark(),
	}
}

// NewQuizDetailView renders questions in the given order; options are looked
// up by question id and rendered without the answer key.
func NewQuizDetailView(q *Quiz, questions []*QuizQuestion, options map[uint][]*QuizOption) QuizDetailView {
	out := QuizDetailView{QuizView: NewQuizView(q), Questions: make([]QuizQuestionView, 0, len(questions))}
	for _, qq := range questions {
		out.Questions = append(out.Questions, NewQuizQuestionView(qq, options[qq.ID]))
	}
	return out
}

func NewQuizAnswerKeyView(q *Quiz, questions []*QuizQuestion, options map[uint][]*QuizOption) QuizAnswerKeyView {
	out := QuizAnswerKeyView{QuizView: NewQuizView(q), Questions: make([]QuizQuestionAnswerKeyView, 0, len(questions))}
	for _, qq := range questions {
		out.Questions = append(out.Questions, NewQuizQuestionAnswerKeyView(qq, options[qq.ID]))
	}
	return out
}

func NewQuizQuestionView(q *QuizQuestion, options []*QuizOption) QuizQuestionView {
	out := QuizQuestionView{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		DisplayOrder: q.DisplayOrder,
		Options:      make([]QuizOptionView, 0, len(options)),
	}
	for _, o := range options {
		out.Options = append(out.Options, NewQuizOptionView(o))
	}
	return out
}

func NewQuizQuestionAnswerKeyView(q *QuizQuestion, options []*QuizOption) QuizQuestionAnswerKeyView {
	out := QuizQuestionAnswerKeyView{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		DisplayOrder: q.DisplayOrder,
		Options:      make([]QuizOptionAnswerView, 0, len(options)),
	}
	for _, o := range options {
		out.Options = append(out.Options, NewQuizOptionAnswerView(o))
	}
	return out
}

func NewQuizOptionView(o *QuizOption) QuizOptionView {
	return QuizOptionView{
		ID:           o.ID,
		OptionText:   o.OptionText,
		DisplayOrder: o.DisplayOrder,
	}
}

func NewQuizOptionAnswerView(o *QuizOption) QuizOptionAnswerView {
	return QuizOptionAnswerView{QuizOptionView: NewQuizOptionView(o), IsCorrect: o.IsCorrect}
}
