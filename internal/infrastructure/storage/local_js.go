//go:build js && wasm

package storage

import (
	"fmt"
	"syscall/js"
)

// LocalStore keeps the record in window.localStorage under a fixed key.
type LocalStore struct {
	key string
}

// NewLocalStore creates a store for key.
func NewLocalStore(key string) *LocalStore {
	return &LocalStore{key: key}
}

func (l *LocalStore) Read() (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage unavailable: %v", r)
		}
	}()
	v := js.Global().Get("localStorage").Call("getItem", l.key)
	if v.IsNull() || v.IsUndefined() {
		return nil, ErrNotFound
	}
	return []byte(v.String()), nil
}

func (l *LocalStore) Write(data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage unavailable: %v", r)
		}
	}()
	js.Global().Get("localStorage").Call("setItem", l.key, string(data))
	return nil
}
