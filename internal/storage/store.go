package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"github.com/san-kum/gravel/internal/gravel"
)

// ErrNotFound is returned when no snapshot matches a name and seed.
var ErrNotFound = errors.New("storage: snapshot not found")

// Store keeps exported frames in a single flat directory.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Snapshot records the parameters that reproduce a saved frame.
type Snapshot struct {
	Name         string    `json:"name"`
	Seed         uint64    `json:"seed"`
	Displacement float64   `json:"displacement"`
	Rotation     float64   `json:"rotation"`
	Background   string    `json:"background"`
	Rows         int       `json:"rows"`
	Cols         int       `json:"cols"`
	Timestamp    time.Time `json:"timestamp"`
}

// SnapshotOf captures the current parameters of st.
func SnapshotOf(name string, st *gravel.State) Snapshot {
	return Snapshot{
		Name:         name,
		Seed:         st.Seed,
		Displacement: st.Displacement,
		Rotation:     st.Rotation,
		Background:   st.Swatch().Name,
		Rows:         st.Rows,
		Cols:         st.Cols,
		Timestamp:    time.Now(),
	}
}

// ID is the file stem shared by a snapshot's files, "<name>-<seed>".
func (sn Snapshot) ID() string {
	return fmt.Sprintf("%s-%d", sn.Name, sn.Seed)
}

// Restore applies the snapshot's parameters to st and recomputes it.
func (sn Snapshot) Restore(st *gravel.State) {
	st.Seed = sn.Seed
	st.Displacement = sn.Displacement
	st.Rotation = sn.Rotation
	if i := gravel.SwatchIndex(sn.Background); i >= 0 {
		st.Background = i
	}
	st.Recompute()
}

// PNGPath is where Save writes the frame for sn.
func (s *Store) PNGPath(sn Snapshot) string {
	return filepath.Join(s.baseDir, sn.ID()+".png")
}

// Save writes img as <name>-<seed>.png next to a JSON metadata file. An
// existing snapshot for the same seed is overwritten.
func (s *Store) Save(sn Snapshot, img image.Image) (string, error) {
	if err := s.Init(); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := s.PNGPath(sn)
	if err := gg.SavePNG(path, img); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := s.writeMeta(sn); err != nil {
		return "", err
	}
	return path, nil
}

// SaveSVG writes an SVG document as <name>-<seed>.svg with its metadata.
func (s *Store) SaveSVG(sn Snapshot, doc string) (string, error) {
	if err := s.Init(); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(s.baseDir, sn.ID()+".svg")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := s.writeMeta(sn); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Store) writeMeta(sn Snapshot) error {
	metaPath := filepath.Join(s.baseDir, sn.ID()+".json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sn); err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return nil
}

// List returns every snapshot with readable metadata, newest first. A
// missing directory is an empty list.
func (s *Store) List() ([]Snapshot, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Snapshot{}, nil
		}
		return nil, err
	}

	snaps := make([]Snapshot, 0)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}

		var sn Snapshot
		if err := json.Unmarshal(data, &sn); err != nil {
			continue
		}
		snaps = append(snaps, sn)
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].Timestamp.After(snaps[j].Timestamp)
	})
	return snaps, nil
}

// Load reads the metadata for id ("<name>-<seed>").
func (s *Store) Load(id string) (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	var sn Snapshot
	if err := json.Unmarshal(data, &sn); err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return &sn, nil
}
