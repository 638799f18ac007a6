package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/hikari/internal/domain/sprite"
)

// Validate checks the values the game loop cannot run without.
func (c *GameConfig) Validate() error {
	if c.Display.MaxWidth <= 0 || c.Display.MaxHeight <= 0 {
		return errors.New("display size must be positive")
	}
	if c.Loop.MaxDT <= 0 {
		return errors.New("loop.maxDt must be positive")
	}
	if c.Transition.Rate <= 0 {
		return errors.New("transition.rate must be positive")
	}
	if c.Save.Key == "" {
		return errors.New("save.key is required")
	}
	return nil
}

// Validate checks catalogue consistency.
func (c *Content) Validate() error {
	if len(c.Stages) == 0 {
		return errors.New("no stages")
	}
	seen := make(map[int]bool)
	for _, s := range c.Stages {
		if seen[s.ID] {
			return fmt.Errorf("duplicate stage id %d", s.ID)
		}
		seen[s.ID] = true
		if s.Icon != "" && !sprite.Known(s.Icon) {
			return fmt.Errorf("stage %d: unknown icon %q", s.ID, s.Icon)
		}
	}
	if seen[c.Secret.ID] {
		return fmt.Errorf("secret stage id %d collides with a main stage", c.Secret.ID)
	}
	if !seen[c.Finale] {
		return fmt.Errorf("finale %d is not a main stage", c.Finale)
	}
	if len(c.Breaths) == 0 || len(c.Demons) == 0 {
		return errors.New("battle needs breaths and demons")
	}
	return nil
}
