//go:build js && wasm

package storage

import "github.com/younwookim/hikari/internal/infrastructure/config"

// Open returns the platform store. The browser ignores override.
func Open(cfg config.SaveConfig, override string) (Store, error) {
	return NewLocalStore(cfg.Key), nil
}
