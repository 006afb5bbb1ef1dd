package kv

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

// openAll opens one backend of each kind in a temporary directory.
func openAll(t *testing.T) map[string]Backend {
	t.Helper()
	tmp := t.TempDir()
	backends := map[string]Backend{}
	for backend, path := range map[string]string{
		BackendMemory: "",
		BackendDir:    filepath.Join(tmp, "store"),
		BackendSQLite: filepath.Join(tmp, "db", "balancete.db"),
	} {
		b, err := Open(backend, path)
		if err != nil {
			t.Fatalf("Open(%q, %q) error: %v", backend, path, err)
		}
		t.Cleanup(func() { b.Close() })
		backends[backend] = b
	}
	return backends
}

func TestBackends(t *testing.T) {
	for name, b := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			const key = "balancete_dashboard_data"

			if _, ok, err := b.Get(key); ok || err != nil {
				t.Errorf("Get() on an empty backend = %v, %v, want absent", ok, err)
			}
			if err := b.Set(key, []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Set() error: %v", err)
			}
			if err := b.Set(key, []byte(`{"a":2}`)); err != nil {
				t.Fatalf("second Set() error: %v", err)
			}
			got, ok, err := b.Get(key)
			if err != nil || !ok || !bytes.Equal(got, []byte(`{"a":2}`)) {
				t.Errorf("Get() = %s, %v, %v, want the last value", got, ok, err)
			}
			if err := b.Delete(key); err != nil {
				t.Fatalf("Delete() error: %v", err)
			}
			if _, ok, _ := b.Get(key); ok {
				t.Errorf("Get() after Delete() found a value")
			}
			if err := b.Delete(key); err != nil {
				t.Errorf("Delete() of an absent key error: %v", err)
			}
		})
	}
}

func TestMemoryCopies(t *testing.T) {
	m := NewMemory()
	value := []byte("abc")
	m.Set("k", value)
	value[0] = 'x'
	got, _, _ := m.Get("k")
	if string(got) != "abc" {
		t.Errorf("Get() = %q, the stored value must not alias the caller's slice", got)
	}
}

func TestDirPersists(t *testing.T) {
	path := t.TempDir()
	d, err := NewDir(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	reopened, _ := NewDir(path)
	if got, ok, _ := reopened.Get("k"); !ok || string(got) != "v" {
		t.Errorf("reopened Get() = %q, %v, want %q", got, ok, "v")
	}
	if matches, _ := filepath.Glob(filepath.Join(path, ".k-*")); len(matches) != 0 {
		t.Errorf("temporary files left behind: %v", matches)
	}
}

func TestDirInvalidKey(t *testing.T) {
	d, _ := NewDir(t.TempDir())
	for _, key := range []string{"", "..", "a/b", "../escape"} {
		if err := d.Set(key, nil); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("Set(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestSQLitePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if got, ok, _ := s.Get("k"); !ok || string(got) != "v" {
		t.Errorf("reopened Get() = %q, %v, want %q", got, ok, "v")
	}
}

func TestOpenUnknown(t *testing.T) {
	if _, err := Open("redis", ""); err == nil {
		t.Errorf("Open() of an unknown backend must fail")
	}
	if _, err := Open(BackendDir, ""); err == nil {
		t.Errorf("Open() of a dir backend without path must fail")
	}
}
