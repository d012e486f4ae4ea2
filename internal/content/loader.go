// Package content loads and validates quiz packs: a directory of pack
// dirs, each holding quiz.yaml plus title.txt and intro.txt. Malformed
// or missing content is fatal at load time so play never sees it.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	quizFile  = "quiz.yaml"
	titleFile = "title.txt"
	introFile = "intro.txt"
)

type FSLoader struct{}

func NewLoader() *FSLoader { return &FSLoader{} }

// LoadPacks reads every pack directory under root. A directory without
// quiz.yaml is skipped; a pack that fails to parse or validate aborts
// the load.
func (l *FSLoader) LoadPacks(root string) ([]Pack, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	packs := make([]Pack, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		packPath := filepath.Join(root, entry.Name())
		quizYAML := filepath.Join(packPath, quizFile)
		if _, err := os.Stat(quizYAML); err != nil {
			continue
		}
		pack, err := readPack(quizYAML)
		if err != nil {
			return nil, fmt.Errorf("load pack %s: %w", packPath, err)
		}
		pack.Path = packPath
		applyDefaults(&pack)
		if err := hydratePack(&pack); err != nil {
			return nil, fmt.Errorf("load pack %s: %w", packPath, err)
		}
		packs = append(packs, pack)
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].QuizID < packs[j].QuizID })
	return packs, nil
}

func readPack(path string) (Pack, error) {
	var pack Pack
	b, err := os.ReadFile(path)
	if err != nil {
		return pack, err
	}
	if err := yaml.Unmarshal(b, &pack); err != nil {
		return pack, err
	}
	if err := pack.Validate(); err != nil {
		return pack, err
	}
	return pack, nil
}

// hydratePack pulls in the screen text files next to quiz.yaml.
func hydratePack(pack *Pack) error {
	title, err := os.ReadFile(filepath.Join(pack.Path, titleFile))
	if err != nil {
		return fmt.Errorf("title screen: %w", err)
	}
	intro, err := os.ReadFile(filepath.Join(pack.Path, introFile))
	if err != nil {
		return fmt.Errorf("intro screen: %w", err)
	}
	pack.Title = strings.TrimRight(string(title), "\n")
	pack.Intro = strings.TrimRight(string(intro), "\n")
	if pack.Title == "" {
		return fmt.Errorf("title screen: %s is empty", titleFile)
	}
	if pack.Intro == "" {
		return fmt.Errorf("intro screen: %s is empty", introFile)
	}
	return nil
}

func applyDefaults(pack *Pack) {
	if pack.Display.Animation.TitleStyle == "" {
		pack.Display.Animation.TitleStyle = "fade-in"
	}
	if pack.Display.Animation.FadeDurationMS <= 0 {
		pack.Display.Animation.FadeDurationMS = 2000
	}
	if pack.Display.Animation.FPS <= 0 {
		pack.Display.Animation.FPS = 30
	}
	if pack.Display.Animation.FPSFast <= 0 {
		pack.Display.Animation.FPSFast = 90
	}
	if pack.Display.Animation.FPSSlow <= 0 {
		pack.Display.Animation.FPSSlow = 12
	}
	if pack.Display.WrapWidth <= 0 {
		pack.Display.WrapWidth = 55
	}
	if pack.Display.Margins.X <= 0 {
		pack.Display.Margins.X = 4
	}
	if pack.Display.Margins.Y <= 0 {
		pack.Display.Margins.Y = 2
	}
	if pack.Display.Pauses.DrumrollPrePostMS <= 0 {
		pack.Display.Pauses.DrumrollPrePostMS = 900
	}
	if pack.Display.Pauses.DrumrollMS <= 0 {
		pack.Display.Pauses.DrumrollMS = 700
	}
	if pack.Display.Pauses.ResultMS <= 0 {
		pack.Display.Pauses.ResultMS = 1200
	}
	if pack.Display.Pauses.InputReflectMS <= 0 {
		pack.Display.Pauses.InputReflectMS = 350
	}
	if pack.Strings.PromptMark == "" {
		pack.Strings.PromptMark = "> "
	}
	if pack.Strings.ContinuePrompt == "" {
		pack.Strings.ContinuePrompt = "Press any key to continue"
	}
	if pack.Strings.RestartPrompt == "" {
		pack.Strings.RestartPrompt = "Press any key to play again"
	}
	if pack.Strings.MenuHeading == "" {
		pack.Strings.MenuHeading = "Quiz Library"
	}
	if pack.Strings.MenuPrompt == "" {
		pack.Strings.MenuPrompt = "Pick a quiz: "
	}
}

// FindPack locates a pack by quiz id.
func FindPack(packs []Pack, quizID string) (Pack, error) {
	for _, p := range packs {
		if p.QuizID == quizID {
			return p, nil
		}
	}
	return Pack{}, fmt.Errorf("quiz %s not found", quizID)
}
