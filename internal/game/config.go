package game

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Config controls runtime behavior for the quiz app.
type Config struct {
	PacksDir string
	LogPath  string
	Debug    bool
	QuizID   string // start this quiz directly instead of showing the menu
	Seed     int64  // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		PacksDir: "packs",
		LogPath:  "quizbox.log",
	}
}

func (c *Config) Validate() error {
	if c.PacksDir == "" {
		return errors.New("packs dir is required")
	}
	if c.LogPath != "" && !filepath.IsLocal(c.LogPath) && !filepath.IsAbs(c.LogPath) {
		return fmt.Errorf("invalid log path %q", c.LogPath)
	}
	if c.Seed < 0 {
		return fmt.Errorf("invalid seed %d", c.Seed)
	}
	return nil
}
