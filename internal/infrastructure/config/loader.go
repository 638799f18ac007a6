package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Bundle holds all loaded configurations.
type Bundle struct {
	Game    *GameConfig
	Content *Content
}

// Loader loads game configuration from JSON and YAML files using fs.FS interface.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS.
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}

	return &cfg, nil
}

// LoadContent loads content.yaml.
func (l *Loader) LoadContent() (*Content, error) {
	data, err := fs.ReadFile(l.fsys, "content.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read content.yaml: %w", err)
	}

	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content.yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content.yaml: %w", err)
	}

	return &c, nil
}

// LoadAll loads all configurations (game, content).
func (l *Loader) LoadAll() (*Bundle, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	content, err := l.LoadContent()
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Game:    game,
		Content: content,
	}, nil
}
