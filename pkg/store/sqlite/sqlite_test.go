package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"pkv/pkg/store"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

type profile struct {
	Name  string
	Level int
}

func TestOpenClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("db file should exist: %v", err)
	}
}

func TestSetAndGet(t *testing.T) {
	s := tempStore(t)

	want := profile{Name: "alice", Level: 7}
	if err := s.Set("profile", want); err != nil {
		t.Fatal(err)
	}

	var got profile
	if err := s.Get("profile", &got); err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestGetMissing(t *testing.T) {
	s := tempStore(t)
	var v string
	if err := s.Get("missing", &v); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDecodeFailure(t *testing.T) {
	s := tempStore(t)
	if err := s.SetString("k", "hi"); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := s.Get("k", &n); !errors.Is(err, store.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestGetWith(t *testing.T) {
	s := tempStore(t)
	if err := s.Set("profile", profile{Name: "bob", Level: 3}); err != nil {
		t.Fatal(err)
	}

	v, err := s.GetWith("profile", func(data []byte) (any, error) {
		var m map[string]any
		if err := msgpack.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		return m, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", v)
	}
	if m["Name"] != "bob" {
		t.Fatalf("expected Name=bob, got %v", m["Name"])
	}
}

func TestOverwrite(t *testing.T) {
	s := tempStore(t)
	if err := s.Set("score", 42); err != nil {
		t.Fatal(err)
	}
	if err := s.SetString("score", "hi"); err != nil {
		t.Fatal(err)
	}
	var got string
	if err := s.Get("score", &got); err != nil {
		t.Fatal(err)
	}
	if got != "hi" {
		t.Fatalf("expected overwritten value hi, got %q", got)
	}
}

func TestRemove(t *testing.T) {
	s := tempStore(t)
	if err := s.SetString("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatal(err)
	}
	var v string
	if err := s.Get("k", &v); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after remove, got %v", err)
	}
}

func TestRemoveMissing(t *testing.T) {
	s := tempStore(t)
	if err := s.Remove("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKeysAndClear(t *testing.T) {
	s := tempStore(t)
	for _, k := range []string{"a", "b", "c"} {
		if err := s.SetString(k, "v"); err != nil {
			t.Fatal(err)
		}
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 3 {
		t.Fatalf("expected 3 keys, got %v", keys)
	}

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}
	keys, err = s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys after clear, got %v", keys)
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.sqlite")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("score", 42); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	var n int
	if err := s.Get("score", &n); err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("expected 42 after reopen, got %d", n)
	}
}

func TestScoreScenario(t *testing.T) {
	s := tempStore(t)

	if err := s.Set("score", 42); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := s.Get("score", &n); err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("expected 42, got %d", n)
	}

	if err := s.SetString("score", "hi"); err != nil {
		t.Fatal(err)
	}
	var str string
	if err := s.Get("score", &str); err != nil {
		t.Fatal(err)
	}
	if str != "hi" {
		t.Fatalf("expected hi, got %q", str)
	}
}
