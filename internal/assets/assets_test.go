package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPriority(t *testing.T) {
	base := t.TempDir()
	override := t.TempDir()
	writeFile(t, base, "textures/wave0.png", []byte("base"))
	writeFile(t, base, "heightmap.raw", []byte("raw"))
	writeFile(t, override, "textures/wave0.png", []byte("override"))

	m := NewManager(base)
	if err := m.AddRoot(override); err != nil {
		t.Fatalf("AddRoot failed: %v", err)
	}

	data, err := m.Load("textures/wave0.png")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "override" {
		t.Errorf("Load() = %q, want last root to win", data)
	}

	data, err = m.Load("heightmap.raw")
	if err != nil || string(data) != "raw" {
		t.Errorf("Load(heightmap.raw) = %q, %v", data, err)
	}
}

func TestLoadNotFound(t *testing.T) {
	m := NewManager(t.TempDir())
	if _, err := m.Load("missing.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestLoadUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bin", []byte("first"))

	m := NewManager(dir)
	if _, err := m.Load("a.bin"); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "a.bin", []byte("second"))

	data, err := m.Load("a.bin")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "first" {
		t.Errorf("cached Load() = %q, want first", data)
	}

	hits, misses := m.Cache().Stats()
	if hits != 1 || misses != 1 {
		t.Errorf("Stats() = (%d, %d), want (1, 1)", hits, misses)
	}
}

func TestAddRootErrors(t *testing.T) {
	m := NewManager()
	if err := m.AddRoot(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}

	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := m.AddRoot(file); err == nil {
		t.Error("expected error for file root")
	}
}

func TestResolveAbsolute(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "x.raw", []byte{1})

	m := NewManager()
	abs := filepath.Join(dir, "x.raw")
	got, err := m.Resolve(abs)
	if err != nil || got != abs {
		t.Errorf("Resolve(abs) = %q, %v", got, err)
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "sky/px.png", buf.Bytes())
	writeFile(t, dir, "broken.png", []byte("nope"))

	m := NewManager(dir)
	img, err := m.LoadImage("sky/px.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if img.Bounds().Dx() != 2 {
		t.Errorf("width = %d, want 2", img.Bounds().Dx())
	}

	if _, err := m.LoadImage("broken.png"); err == nil {
		t.Error("expected decode error")
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key := string(rune('a' + i))
			c.Set(key, []byte{byte(i)})
			c.Get(key)
		}()
	}
	wg.Wait()

	hits, _ := c.Stats()
	if hits != 8 {
		t.Errorf("hits = %d, want 8", hits)
	}

	c.Clear()
	if _, ok := c.Get("a"); ok {
		t.Error("Clear() left data behind")
	}
}
