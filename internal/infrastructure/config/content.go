package config

import "github.com/younwookim/hikari/internal/domain/sprite"

// Content is the root of content.yaml: names, text and catalogue data.
type Content struct {
	Title       string                       `yaml:"title"`
	Subtitle    string                       `yaml:"subtitle"`
	Stages      []StageInfo                  `yaml:"stages"`
	Secret      StageInfo                    `yaml:"secret"`
	Finale      int                          `yaml:"finale"`
	Opening     []string                     `yaml:"opening"`
	SpinAfter   int                          `yaml:"spinAfter"` // Opening line index that triggers the spin
	Ending      []string                     `yaml:"ending"`
	Reactions   map[string]map[string]string `yaml:"reactions"`
	NPCs        []NPC                        `yaml:"npcs"`
	MakeupTools []MakeupTool                 `yaml:"makeupTools"`
	GhostTypes  []GhostType                  `yaml:"ghostTypes"`
	HideSpots   []sprite.ID                  `yaml:"hideSpots"`
	Breaths     []Breath                     `yaml:"breaths"`
	Demons      []Demon                      `yaml:"demons"`
}

// StageInfo describes one entry of the stage select grid.
type StageInfo struct {
	ID          int       `yaml:"id"`
	Name        string    `yaml:"name"`
	Icon        sprite.ID `yaml:"icon"`
	Description string    `yaml:"description"`
	Background  string    `yaml:"background"`
	Accent      string    `yaml:"accent"`
}

type NPC struct {
	Name   string    `yaml:"name"`
	Sprite sprite.ID `yaml:"sprite"`
}

type MakeupTool struct {
	Name   string      `yaml:"name"`
	Sprite sprite.ID   `yaml:"sprite"`
	Colors []string    `yaml:"colors"`
	Decals []sprite.ID `yaml:"decals,omitempty"`
}

type GhostType struct {
	Name     string    `yaml:"name"`
	Sprite   sprite.ID `yaml:"sprite"`
	Speed    float64   `yaml:"speed"`
	Behavior string    `yaml:"behavior"` // patrol | chase | teleport
}

type Breath struct {
	Name   string    `yaml:"name"`
	Sprite sprite.ID `yaml:"sprite"`
	Power  float64   `yaml:"power"`
	Color  string    `yaml:"color"`
}

type Demon struct {
	Name   string    `yaml:"name"`
	Sprite sprite.ID `yaml:"sprite"`
	HP     float64   `yaml:"hp"`
	Attack float64   `yaml:"attack"`
}

// Reaction returns the line for key in a stage's reaction table, or "".
func (c *Content) Reaction(stage, key string) string {
	return c.Reactions[stage][key]
}

// StageIDs returns the main stage IDs in catalogue order.
func (c *Content) StageIDs() []int {
	ids := make([]int, len(c.Stages))
	for i, s := range c.Stages {
		ids[i] = s.ID
	}
	return ids
}

// Stage looks up a main or secret stage by ID.
func (c *Content) Stage(id int) (StageInfo, bool) {
	for _, s := range c.Stages {
		if s.ID == id {
			return s, true
		}
	}
	if c.Secret.ID == id {
		return c.Secret, true
	}
	return StageInfo{}, false
}

// Predecessor returns the stage before id in catalogue order.
// ok is false for the first stage and for unknown IDs.
func (c *Content) Predecessor(id int) (prev int, ok bool) {
	for i, s := range c.Stages {
		if s.ID == id {
			if i == 0 {
				return 0, false
			}
			return c.Stages[i-1].ID, true
		}
	}
	return 0, false
}
