package content

import (
	"fmt"
	"regexp"
	"time"
)

const (
	QuizKind               = "quiz"
	SupportedSchemaVersion = 1
)

// Label alphabets are generated by rune arithmetic from a base
// character, so round and answer counts must fit in the base's
// remaining range.
const (
	maxLetterLabels = 26
	maxDigitLabels  = 10
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{2,63}$`)

// Pack is one loadable quiz: display profile, input limits, verbiage,
// outcome templates and the question bank, plus the title and intro
// text files that sit next to quiz.yaml.
type Pack struct {
	Kind          string       `yaml:"kind"`
	SchemaVersion int          `yaml:"schema_version"`
	QuizID        string       `yaml:"quiz_id"`
	Name          string       `yaml:"name"`
	Display       DisplaySpec  `yaml:"display"`
	Input         InputSpec    `yaml:"input"`
	Strings       StringsSpec  `yaml:"strings"`
	Outcomes      OutcomeSpec  `yaml:"outcomes"`
	Questions     QuestionBank `yaml:"questions"`

	Path  string `yaml:"-"`
	Title string `yaml:"-"` // title.txt, shown on the title screen
	Intro string `yaml:"-"` // intro.txt, wrapped and teletyped
}

// DisplaySpec is the immutable render profile. Durations are stored as
// milliseconds in yaml and exposed as time.Duration accessors.
type DisplaySpec struct {
	Animation AnimationSpec        `yaml:"animation"`
	WrapWidth int                  `yaml:"text_wrap_width"`
	Margins   MarginSpec           `yaml:"margins"`
	Pauses    PauseSpec            `yaml:"pauses"`
	Colors    map[string]ColorSpec `yaml:"colors"`
}

type AnimationSpec struct {
	TitleStyle     string  `yaml:"title_style"` // "fade-in" or "teletype"
	FadeDurationMS int     `yaml:"fade_duration_ms"`
	FPS            float64 `yaml:"fps"`
	FPSFast        float64 `yaml:"fps_fast"`
	FPSSlow        float64 `yaml:"fps_slow"`
}

func (a AnimationSpec) FadeDuration() time.Duration {
	return time.Duration(a.FadeDurationMS) * time.Millisecond
}

type MarginSpec struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type PauseSpec struct {
	DrumrollPrePostMS int `yaml:"drumroll_prepost_ms"`
	DrumrollMS        int `yaml:"drumroll_ms"`
	ResultMS          int `yaml:"result_ms"`
	InputReflectMS    int `yaml:"input_reflect_ms"`
}

func (p PauseSpec) DrumrollPrePost() time.Duration {
	return time.Duration(p.DrumrollPrePostMS) * time.Millisecond
}
func (p PauseSpec) Drumroll() time.Duration {
	return time.Duration(p.DrumrollMS) * time.Millisecond
}
func (p PauseSpec) Result() time.Duration {
	return time.Duration(p.ResultMS) * time.Millisecond
}
func (p PauseSpec) InputReflect() time.Duration {
	return time.Duration(p.InputReflectMS) * time.Millisecond
}

type ColorSpec struct {
	FG string `yaml:"fg"`
	BG string `yaml:"bg"`
}

type InputSpec struct {
	ResponseTimeoutMS int `yaml:"response_timeout_ms"`
	WarningAfterMS    int `yaml:"warning_after_ms"`
}

func (i InputSpec) ResponseTimeout() time.Duration {
	return time.Duration(i.ResponseTimeoutMS) * time.Millisecond
}
func (i InputSpec) WarningAfter() time.Duration {
	return time.Duration(i.WarningAfterMS) * time.Millisecond
}

type StringsSpec struct {
	QuestionLabel   string     `yaml:"question_label"`
	AnswerLabel     string     `yaml:"answer_label"`
	LineSeparator   string     `yaml:"line_separator"`
	InputPrompt     string     `yaml:"input_prompt"`
	PromptMark      string     `yaml:"prompt_mark"`
	ContinuePrompt  string     `yaml:"continue_prompt"`
	RestartPrompt   string     `yaml:"restart_prompt"`
	TimeoutWarning  string     `yaml:"timeout_warning"`
	ErrNoInput      string     `yaml:"err_no_input"`
	ErrInvalidInput string     `yaml:"err_invalid_input"`
	DrumrollHeader  string     `yaml:"drumroll_header"`
	DrumrollFooter  string     `yaml:"drumroll_footer"`
	DrumrollPools   [][]string `yaml:"drumroll_pools"`
	EndMessage      string     `yaml:"end_message"`
	MenuHeading     string     `yaml:"menu_heading"`
	MenuPrompt      string     `yaml:"menu_prompt"`
}

type OutcomeSpec struct {
	Default  string             `yaml:"default"`
	Messages map[string]Message `yaml:"messages"`
}

// Message is the per-outcome result template: text before the
// highlighted outcome name, text after it, and the story conclusion.
type Message struct {
	Pre   string    `yaml:"pre"`
	Post  string    `yaml:"post"`
	Story string    `yaml:"story"`
	Color ColorSpec `yaml:"color"`
}

type QuestionBank struct {
	Randomize  bool       `yaml:"randomize"`
	PerSession int        `yaml:"per_session"`
	Items      []Question `yaml:"items"`
}

type Question struct {
	Question string   `yaml:"question"`
	Answers  []Answer `yaml:"answers"`
}

type Answer struct {
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
}

func (p Pack) Validate() error {
	if p.Kind != QuizKind {
		return fmt.Errorf("kind must be %q", QuizKind)
	}
	if p.SchemaVersion == 0 {
		return fmt.Errorf("schema_version is required")
	}
	if p.SchemaVersion > SupportedSchemaVersion {
		return fmt.Errorf("unsupported quiz schema_version %d (max supported %d)", p.SchemaVersion, SupportedSchemaVersion)
	}
	if !idPattern.MatchString(p.QuizID) {
		return fmt.Errorf("invalid quiz_id %q", p.QuizID)
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if err := p.validateDisplay(); err != nil {
		return err
	}
	if err := p.validateInput(); err != nil {
		return err
	}
	if err := p.validateStrings(); err != nil {
		return err
	}
	if err := p.validateQuestions(); err != nil {
		return err
	}
	return p.validateOutcomes()
}

// Play and the status line look these color sets up unconditionally, so
// their absence is a load-time error rather than a mid-game one.
var requiredColorSets = []string{"default", "warning", "error"}

func (p Pack) validateDisplay() error {
	switch p.Display.Animation.TitleStyle {
	case "", "fade-in", "teletype":
	default:
		return fmt.Errorf("display.animation.title_style must be fade-in or teletype")
	}
	for _, name := range requiredColorSets {
		if _, ok := p.Display.Colors[name]; !ok {
			return fmt.Errorf("display.colors is missing the %q color set", name)
		}
	}
	return nil
}

func (p Pack) validateInput() error {
	if p.Input.ResponseTimeoutMS <= 0 {
		return fmt.Errorf("input.response_timeout_ms must be > 0")
	}
	if p.Input.WarningAfterMS <= 0 || p.Input.WarningAfterMS >= p.Input.ResponseTimeoutMS {
		return fmt.Errorf("input.warning_after_ms must be > 0 and below input.response_timeout_ms")
	}
	return nil
}

func (p Pack) validateStrings() error {
	s := p.Strings
	if len([]rune(s.QuestionLabel)) != 1 {
		return fmt.Errorf("strings.question_label must be a single character")
	}
	if len([]rune(s.AnswerLabel)) != 1 {
		return fmt.Errorf("strings.answer_label must be a single character")
	}
	if s.LineSeparator == "" || len([]rune(s.LineSeparator)) != 1 {
		return fmt.Errorf("strings.line_separator must be a single character")
	}
	if len(s.DrumrollPools) != 3 {
		return fmt.Errorf("strings.drumroll_pools must hold exactly 3 word pools")
	}
	for i, pool := range s.DrumrollPools {
		if len(pool) == 0 {
			return fmt.Errorf("strings.drumroll_pools[%d] is empty", i)
		}
	}
	return nil
}

func (p Pack) validateQuestions() error {
	q := p.Questions
	if len(q.Items) == 0 {
		return fmt.Errorf("questions.items must not be empty")
	}
	if q.PerSession <= 0 {
		return fmt.Errorf("questions.per_session must be > 0")
	}
	rounds := q.PerSession
	if rounds > len(q.Items) {
		rounds = len(q.Items)
	}
	if err := labelRange(p.Strings.QuestionLabel, rounds); err != nil {
		return fmt.Errorf("questions.per_session: %w", err)
	}
	for i, item := range q.Items {
		if item.Question == "" {
			return fmt.Errorf("questions.items[%d].question is required", i)
		}
		if len(item.Answers) == 0 {
			return fmt.Errorf("questions.items[%d] has no answers", i)
		}
		if err := labelRange(p.Strings.AnswerLabel, len(item.Answers)); err != nil {
			return fmt.Errorf("questions.items[%d]: %w", i, err)
		}
		for j, a := range item.Answers {
			if a.Text == "" {
				return fmt.Errorf("questions.items[%d].answers[%d].text is required", i, j)
			}
			if a.Category == "" {
				return fmt.Errorf("questions.items[%d].answers[%d].category is required", i, j)
			}
		}
	}
	return nil
}

func (p Pack) validateOutcomes() error {
	if p.Outcomes.Default == "" {
		return fmt.Errorf("outcomes.default is required")
	}
	if len(p.Outcomes.Messages) == 0 {
		return fmt.Errorf("outcomes.messages must not be empty")
	}
	if _, ok := p.Outcomes.Messages[p.Outcomes.Default]; !ok {
		return fmt.Errorf("outcomes.default %q has no message template", p.Outcomes.Default)
	}
	for i, item := range p.Questions.Items {
		for j, a := range item.Answers {
			if _, ok := p.Outcomes.Messages[a.Category]; !ok {
				return fmt.Errorf("questions.items[%d].answers[%d]: category %q has no outcome message", i, j, a.Category)
			}
		}
	}
	return nil
}

// labelRange rejects label sequences that would run off the end of the
// base character's alphabet; generating them silently would wrap into
// unrelated characters.
func labelRange(base string, count int) error {
	b := []rune(base)[0]
	var remaining int
	switch {
	case b >= 'a' && b <= 'z':
		remaining = maxLetterLabels - int(b-'a')
	case b >= 'A' && b <= 'Z':
		remaining = maxLetterLabels - int(b-'A')
	case b >= '0' && b <= '9':
		remaining = maxDigitLabels - int(b-'0')
	default:
		return fmt.Errorf("label base %q must be an ASCII letter or digit", base)
	}
	if count > remaining {
		return fmt.Errorf("%d labels from base %q overflow the alphabet (%d available)", count, base, remaining)
	}
	return nil
}

// Label returns the i'th label generated from base. Bounds are enforced
// by Validate at load time.
func Label(base string, i int) rune {
	return []rune(base)[0] + rune(i)
}
