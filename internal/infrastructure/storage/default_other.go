//go:build !(js && wasm)

package storage

import "github.com/younwookim/hikari/internal/infrastructure/config"

// Open returns the platform store: override if set, else a file in the
// user config dir.
func Open(cfg config.SaveConfig, override string) (Store, error) {
	if override != "" {
		return NewFileStore(override), nil
	}
	path, err := DefaultPath(cfg.File)
	if err != nil {
		return nil, err
	}
	return NewFileStore(path), nil
}
