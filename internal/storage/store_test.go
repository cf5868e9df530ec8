package storage

import (
	"errors"
	"image"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fogleman/gg"
	"github.com/san-kum/gravel/internal/gravel"
	"github.com/san-kum/gravel/internal/render"
)

func testState() *gravel.State {
	st := gravel.NewState(gravel.DefaultRows, gravel.DefaultCols, rand.New(rand.NewPCG(3, 4)))
	st.Seed = 42
	st.Recompute()
	return st
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(filepath.Join(tmpDir, "output"))

	state := testState()
	sn := SnapshotOf("gravel", state)
	img := render.Frame(state.Stones, render.DefaultLayout(), state.BackgroundColor())

	path, err := st.Save(sn, img)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if filepath.Base(path) != "gravel-42.png" {
		t.Errorf("expected gravel-42.png, got %s", filepath.Base(path))
	}

	loaded, err := gg.LoadPNG(path)
	if err != nil {
		t.Fatalf("load png failed: %v", err)
	}
	if loaded.Bounds().Dx() != 620 {
		t.Errorf("expected width 620, got %d", loaded.Bounds().Dx())
	}

	meta, err := st.Load("gravel-42")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Seed != 42 {
		t.Errorf("expected seed 42, got %d", meta.Seed)
	}
	if meta.Background != state.Swatch().Name {
		t.Errorf("expected background %s, got %s", state.Swatch().Name, meta.Background)
	}
}

func TestStoreOverwrite(t *testing.T) {
	st := New(t.TempDir())
	sn := Snapshot{Name: "gravel", Seed: 7, Displacement: 1, Rotation: 1, Background: "gold"}

	small := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if _, err := st.Save(sn, small); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	sn.Displacement = 2
	big := image.NewRGBA(image.Rect(0, 0, 8, 8))
	path, err := st.Save(sn, big)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := gg.LoadPNG(path)
	if err != nil {
		t.Fatalf("load png failed: %v", err)
	}
	if loaded.Bounds().Dx() != 8 {
		t.Errorf("expected overwritten image, got width %d", loaded.Bounds().Dx())
	}
	meta, err := st.Load(sn.ID())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Displacement != 2 {
		t.Errorf("expected displacement 2, got %f", meta.Displacement)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	snaps, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected 0 snapshots, got %d", len(snaps))
	}

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	older := Snapshot{Name: "gravel", Seed: 1, Timestamp: time.Now().Add(-time.Hour)}
	newer := Snapshot{Name: "gravel", Seed: 2, Timestamp: time.Now()}
	for _, sn := range []Snapshot{older, newer} {
		if _, err := st.Save(sn, img); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "junk.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}

	snaps, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	if snaps[0].Seed != 2 {
		t.Errorf("expected newest first, got seed %d", snaps[0].Seed)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	snaps, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("expected empty list, got %d", len(snaps))
	}
}

func TestStoreLoadNotFound(t *testing.T) {
	st := New(t.TempDir())
	_, err := st.Load("gravel-123")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreSaveFailure(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	st := New(filepath.Join(blocker, "output"))

	_, err := st.Save(Snapshot{Name: "gravel", Seed: 1}, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	if err == nil {
		t.Error("expected error when output dir cannot be created")
	}
}

func TestSaveSVG(t *testing.T) {
	st := New(t.TempDir())
	state := testState()
	sn := SnapshotOf("gravel", state)
	doc := render.SVG(state.Stones, render.DefaultLayout(), state.BackgroundColor())

	path, err := st.SaveSVG(sn, doc)
	if err != nil {
		t.Fatalf("save svg failed: %v", err)
	}
	if filepath.Base(path) != "gravel-42.svg" {
		t.Errorf("expected gravel-42.svg, got %s", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != doc {
		t.Error("svg content mismatch")
	}
}

func TestSnapshotRestore(t *testing.T) {
	state := testState()
	state.Displacement = 2.3
	state.Recompute()
	sn := SnapshotOf("gravel", state)

	other := gravel.NewState(gravel.DefaultRows, gravel.DefaultCols, rand.New(rand.NewPCG(9, 9)))
	other.Recompute()
	sn.Restore(other)

	if other.Seed != 42 || other.Displacement != 2.3 {
		t.Errorf("parameters not restored: seed %d, displacement %f", other.Seed, other.Displacement)
	}
	for i := range state.Stones {
		if other.Stones[i] != state.Stones[i] {
			t.Fatalf("stone %d differs after restore", i)
		}
	}
}
