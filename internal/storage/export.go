package storage

import (
	"github.com/san-kum/gravel/internal/gravel"
	"github.com/san-kum/gravel/internal/render"
)

// Exporter writes the current frame of a sketch to a Store.
type Exporter struct {
	Store  *Store
	Name   string
	Layout render.Layout
}

func NewExporter(store *Store, name string, layout render.Layout) *Exporter {
	return &Exporter{Store: store, Name: name, Layout: layout}
}

// Export saves st as <name>-<seed>.png. The stones are regenerated from st's
// parameters first so the image always matches its metadata.
func (e *Exporter) Export(st *gravel.State) (string, error) {
	st.Recompute()
	img := render.Frame(st.Stones, e.Layout, st.BackgroundColor())
	return e.Store.Save(SnapshotOf(e.Name, st), img)
}

// ExportSVG saves st as <name>-<seed>.svg.
func (e *Exporter) ExportSVG(st *gravel.State) (string, error) {
	st.Recompute()
	doc := render.SVG(st.Stones, e.Layout, st.BackgroundColor())
	return e.Store.SaveSVG(SnapshotOf(e.Name, st), doc)
}
