package game

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"quizbox/internal/canvas"
	"quizbox/internal/content"
	"quizbox/internal/input"
	"quizbox/internal/telemetry"
)

// scriptedPrompter feeds canned results to the play loop, one per round.
type scriptedPrompter struct {
	keys []rune
	errs []error
	call int
}

func (p *scriptedPrompter) Await(req input.Request) (rune, error) {
	i := p.call
	p.call++
	if i < len(p.errs) && p.errs[i] != nil {
		return 0, p.errs[i]
	}
	return p.keys[i], nil
}

func testPack() content.Pack {
	return content.Pack{
		Kind:          content.QuizKind,
		SchemaVersion: 1,
		QuizID:        "test-quiz",
		Name:          "Test Quiz",
		Title:         "TEST\nQUIZ",
		Intro:         "Answer the questions.",
		Display: content.DisplaySpec{
			Animation: content.AnimationSpec{
				TitleStyle: "teletype",
				FPS:        100000,
				FPSFast:    100000,
				FPSSlow:    100000,
			},
			WrapWidth: 40,
			Margins:   content.MarginSpec{X: 4, Y: 2},
			Pauses: content.PauseSpec{
				DrumrollPrePostMS: 1,
				DrumrollMS:        1,
				ResultMS:          1,
				InputReflectMS:    1,
			},
			Colors: map[string]content.ColorSpec{
				"default": {FG: "white", BG: "black"},
				"warning": {FG: "yellow"},
				"error":   {FG: "red"},
			},
		},
		Input: content.InputSpec{ResponseTimeoutMS: 10000, WarningAfterMS: 5000},
		Strings: content.StringsSpec{
			QuestionLabel:   "1",
			AnswerLabel:     "a",
			LineSeparator:   "-",
			InputPrompt:     "Your answer ",
			PromptMark:      "> ",
			TimeoutWarning:  "hurry",
			ErrNoInput:      "too slow",
			ErrInvalidInput: "bad key",
			DrumrollHeader:  "thinking...",
			DrumrollFooter:  "got it",
			DrumrollPools:   [][]string{{"x1", "x2", "x3"}, {"y1", "y2", "y3"}, {"z1", "z2", "z3"}},
			EndMessage:      "bye now",
		},
		Outcomes: content.OutcomeSpec{
			Default: "Owl",
			Messages: map[string]content.Message{
				"Fox": {Pre: "you are a ", Post: ", clever.", Story: "A fox story.", Color: content.ColorSpec{FG: "orange"}},
				"Owl": {Pre: "you are an ", Post: ", wise."},
			},
		},
		Questions: content.QuestionBank{
			PerSession: 2,
			Items: []content.Question{
				{Question: "first?", Answers: []content.Answer{
					{Text: "fox pick", Category: "Fox"},
					{Text: "owl pick", Category: "Owl"},
				}},
				{Question: "second?", Answers: []content.Answer{
					{Text: "fox pick", Category: "Fox"},
					{Text: "owl pick", Category: "Owl"},
				}},
			},
		},
	}
}

func newTestGame(t *testing.T, pack content.Pack) (*Game, tcell.SimulationScreen) {
	t.Helper()
	screen, sim, err := canvas.NewSimulation(80, 24)
	if err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	log, err := telemetry.NewLogger("", false)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	g, err := New(Config{PacksDir: "packs", QuizID: pack.QuizID, Seed: 1}, log, screen, []content.Pack{pack})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.pack = pack
	g.layoutWindows()
	return g, sim
}

func screenContains(sim tcell.SimulationScreen, want string) bool {
	cols, rows := sim.Size()
	for y := 0; y < rows; y++ {
		var b strings.Builder
		for x := 0; x < cols; x++ {
			r, _, _, _ := sim.GetContent(x, y)
			b.WriteRune(r)
		}
		if strings.Contains(b.String(), want) {
			return true
		}
	}
	return false
}

func TestPlayCollectsResponses(t *testing.T) {
	g, sim := newTestGame(t, testPack())
	g.prompter = &scriptedPrompter{keys: []rune{'a', 'b'}}

	s, err := newSession(g.pack, g.rng)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	done, err := g.play(s)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !done {
		t.Fatalf("play should complete")
	}
	if len(s.Responses) != 2 {
		t.Fatalf("responses = %v", s.Responses)
	}
	for _, cat := range s.Responses {
		if cat != "Fox" && cat != "Owl" {
			t.Fatalf("unexpected category %q", cat)
		}
	}
	if !screenContains(sim, "[ 2 of 2 ]") {
		t.Fatalf("round indicator missing")
	}
}

func TestUnanimousSessionResolvesToThatOutcome(t *testing.T) {
	g, _ := newTestGame(t, testPack())
	g.prompter = &scriptedPrompter{keys: []rune{'a', 'a'}}

	s, err := newSession(g.pack, g.rng)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	done, err := g.play(s)
	if err != nil || !done {
		t.Fatalf("play: done=%v err=%v", done, err)
	}
	if err := g.results(s); err != nil {
		t.Fatalf("results: %v", err)
	}
	if s.Outcome != "Fox" {
		t.Fatalf("outcome = %q, want Fox", s.Outcome)
	}
}

func TestPlayTimeoutAbandonsSession(t *testing.T) {
	g, sim := newTestGame(t, testPack())
	g.prompter = &scriptedPrompter{keys: []rune{'a', 0}, errs: []error{nil, input.ErrTimeout}}

	s, err := newSession(g.pack, g.rng)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	done, err := g.play(s)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if done {
		t.Fatalf("timed-out session must not complete")
	}
	if len(s.Responses) != 1 {
		t.Fatalf("responses = %v, want only the first round", s.Responses)
	}
	if !screenContains(sim, "too slow") {
		t.Fatalf("timeout notice missing from the status row")
	}
}

func TestResultsRevealsMajorityOutcome(t *testing.T) {
	g, sim := newTestGame(t, testPack())
	s, err := newSession(g.pack, g.rng)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	s.Responses = []string{"Fox", "Fox", "Owl"}
	if err := g.results(s); err != nil {
		t.Fatalf("results: %v", err)
	}
	if s.Outcome != "Fox" {
		t.Fatalf("outcome = %q, want Fox", s.Outcome)
	}
	if !screenContains(sim, "Fox") {
		t.Fatalf("outcome name not painted")
	}
	if !screenContains(sim, "bye now") {
		t.Fatalf("end message not painted")
	}
	if !s.Palette.Has("Fox") {
		t.Fatalf("outcome color should be registered in the session palette")
	}
}

func TestResultsTieFallsBackToDefault(t *testing.T) {
	g, _ := newTestGame(t, testPack())
	s, err := newSession(g.pack, g.rng)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	s.Responses = []string{"Fox", "Owl"}
	if err := g.results(s); err != nil {
		t.Fatalf("results: %v", err)
	}
	if s.Outcome != "Owl" {
		t.Fatalf("outcome = %q, want the configured default", s.Outcome)
	}
}

func TestNewSessionDrawsBoundedQuestionSet(t *testing.T) {
	pack := testPack()
	pack.Questions.Randomize = true
	pack.Questions.PerSession = 1
	g, _ := newTestGame(t, pack)

	firstBefore := pack.Questions.Items[0].Answers[0].Text
	s, err := newSession(pack, g.rng)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if len(s.Questions) != 1 {
		t.Fatalf("drew %d questions, want 1", len(s.Questions))
	}
	if pack.Questions.Items[0].Answers[0].Text != firstBefore {
		t.Fatalf("session shuffle mutated the loaded pack")
	}
	if s.ID == "" {
		t.Fatalf("session needs an id")
	}
	if !s.Palette.Has("default") || !s.Palette.Has("warning") || !s.Palette.Has("error") {
		t.Fatalf("palette missing core color sets: %v", s.Palette.Names())
	}
}

func TestSessionsGetFreshPalettes(t *testing.T) {
	g, _ := newTestGame(t, testPack())
	s1, err := newSession(g.pack, g.rng)
	if err != nil {
		t.Fatalf("session 1: %v", err)
	}
	s1.Responses = []string{"Fox"}
	if err := g.results(s1); err != nil {
		t.Fatalf("results 1: %v", err)
	}
	s2, err := newSession(g.pack, g.rng)
	if err != nil {
		t.Fatalf("session 2: %v", err)
	}
	if s2.Palette.Has("Fox") {
		t.Fatalf("outcome registration leaked into the next session")
	}
}

func TestChoosePackHonorsConfiguredQuiz(t *testing.T) {
	g, _ := newTestGame(t, testPack())
	pack, err := g.choosePack()
	if err != nil {
		t.Fatalf("choose pack: %v", err)
	}
	if pack.QuizID != "test-quiz" {
		t.Fatalf("quiz = %q", pack.QuizID)
	}
	g.cfg.QuizID = "missing"
	if _, err := g.choosePack(); err == nil {
		t.Fatalf("expected not-found error")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg.PacksDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected packs dir error")
	}
	cfg = DefaultConfig()
	cfg.Seed = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected seed error")
	}
}
