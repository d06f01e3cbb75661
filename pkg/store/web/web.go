//go:build js && wasm

package web

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"

	"pkv/pkg/store"
)

// Store namespaces keys under prefix inside window.localStorage.
type Store struct {
	prefix string
}

// New returns a localStorage-backed store. prefix is typically
// "qualifier.organization.application"; a "." separator is appended
// before each key.
func New(prefix string) *Store {
	return &Store{prefix: prefix + "."}
}

func (s *Store) storage() js.Value {
	return js.Global().Get("localStorage")
}

func (s *Store) format(key string) string {
	return s.prefix + key
}

// call invokes a localStorage method, converting a thrown JavaScript
// exception into an error instead of a panic.
func (s *Store) call(method string, args ...any) (val js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage.%s: %v", method, r)
		}
	}()
	return s.storage().Call(method, args...), nil
}

func (s *Store) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncode, err)
	}
	_, err = s.call("setItem", s.format(key), string(data))
	return err
}

func (s *Store) SetString(key, value string) error {
	return s.Set(key, value)
}

func (s *Store) Get(key string, dest any) error {
	entry, err := s.call("getItem", s.format(key))
	if err != nil {
		return err
	}
	if entry.IsNull() {
		return store.ErrNotFound
	}
	if err := json.Unmarshal([]byte(entry.String()), dest); err != nil {
		return fmt.Errorf("%w: %w", store.ErrDecode, err)
	}
	return nil
}

func (s *Store) GetWith(key string, decode store.DecodeFunc) (any, error) {
	entry, err := s.call("getItem", s.format(key))
	if err != nil {
		return nil, err
	}
	if entry.IsNull() {
		return nil, store.ErrNotFound
	}
	return decode([]byte(entry.String()))
}

func (s *Store) Remove(key string) error {
	entry, err := s.call("getItem", s.format(key))
	if err != nil {
		return err
	}
	if entry.IsNull() {
		return store.ErrNotFound
	}
	_, err = s.call("removeItem", s.format(key))
	return err
}

func (s *Store) Clear() error {
	keys, err := s.Keys()
	if err != nil {
		return err
	}
	for _, key := range keys {
		if _, err := s.call("removeItem", s.format(key)); err != nil {
			return err
		}
	}
	return nil
}

// Keys walks the whole host store and filters by prefix, since
// localStorage is shared across everything on the origin.
func (s *Store) Keys() ([]string, error) {
	length := s.storage().Get("length").Int()
	var keys []string
	for i := 0; i < length; i++ {
		entry, err := s.call("key", i)
		if err != nil {
			return nil, err
		}
		if entry.IsNull() {
			continue
		}
		name := entry.String()
		if strings.HasPrefix(name, s.prefix) {
			keys = append(keys, strings.TrimPrefix(name, s.prefix))
		}
	}
	return keys, nil
}

func (s *Store) Close() error {
	return nil
}
