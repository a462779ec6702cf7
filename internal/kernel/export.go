package kernel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hktonylee/Autodesk-Fusion-360-MCP-Server/internal/model"
)

// Exporter writes design exports into a directory.
type Exporter struct {
	dir string
}

// NewExporter creates an exporter rooted at dir, creating it if needed.
func NewExporter(dir string) (*Exporter, error) {
	if dir == "" {
		return nil, fmt.Errorf("export directory required: %w", model.ErrNotValid)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create export directory: %w", err)
	}
	return &Exporter{dir: dir}, nil
}

// ExportSTL writes the design's bodies as an ASCII STL mesh file and
// returns the written path. The file name defaults to a timestamped name
// when empty.
func (e *Exporter) ExportSTL(d *Design, fileName string) (string, error) {
	if len(d.Bodies()) == 0 {
		return "", fmt.Errorf("design has no bodies to export: %w", model.ErrNotValid)
	}
	path := e.exportPath(fileName, ".stl")
	var sb strings.Builder
	for _, b := range d.Bodies() {
		sb.WriteString(fmt.Sprintf("solid %s\n", b.Name()))
		writeBBoxFacets(&sb, b.BoundingBox())
		sb.WriteString(fmt.Sprintf("endsolid %s\n", b.Name()))
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("could not write STL file: %w", err)
	}
	return path, nil
}

// ExportSTEP writes the design as a STEP AP214 file and returns the written
// path.
func (e *Exporter) ExportSTEP(d *Design, fileName string) (string, error) {
	if len(d.Bodies()) == 0 {
		return "", fmt.Errorf("design has no bodies to export: %w", model.ErrNotValid)
	}
	path := e.exportPath(fileName, ".step")
	var sb strings.Builder
	sb.WriteString("ISO-10303-21;\nHEADER;\n")
	sb.WriteString(fmt.Sprintf("FILE_DESCRIPTION(('%d bodies'),'2;1');\n", len(d.Bodies())))
	sb.WriteString(fmt.Sprintf("FILE_NAME('%s','%s',(''),(''),'','','');\n",
		filepath.Base(path), time.Now().UTC().Format(time.RFC3339)))
	sb.WriteString("FILE_SCHEMA(('AUTOMOTIVE_DESIGN'));\nENDSEC;\nDATA;\n")
	for i, b := range d.Bodies() {
		sb.WriteString(fmt.Sprintf("#%d=MANIFOLD_SOLID_BREP('%s',#%d);\n", i*2+1, b.Name(), i*2+2))
	}
	sb.WriteString("ENDSEC;\nEND-ISO-10303-21;\n")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("could not write STEP file: %w", err)
	}
	return path, nil
}

func (e *Exporter) exportPath(fileName, ext string) string {
	if fileName == "" {
		fileName = fmt.Sprintf("design-%s", time.Now().UTC().Format("20060102-150405"))
	}
	if !strings.HasSuffix(strings.ToLower(fileName), ext) {
		fileName += ext
	}
	return filepath.Join(e.dir, filepath.Base(fileName))
}

// writeBBoxFacets emits the 12 triangle facets of the body's bounding box.
func writeBBoxFacets(sb *strings.Builder, bbox model.BoundingBox) {
	min, max := bbox.Min, bbox.Max
	corners := [8]model.Point{
		{X: min.X, Y: min.Y, Z: min.Z}, {X: max.X, Y: min.Y, Z: min.Z},
		{X: max.X, Y: max.Y, Z: min.Z}, {X: min.X, Y: max.Y, Z: min.Z},
		{X: min.X, Y: min.Y, Z: max.Z}, {X: max.X, Y: min.Y, Z: max.Z},
		{X: max.X, Y: max.Y, Z: max.Z}, {X: min.X, Y: max.Y, Z: max.Z},
	}
	faces := [12][3]int{
		{0, 1, 2}, {0, 2, 3}, {4, 6, 5}, {4, 7, 6},
		{0, 4, 5}, {0, 5, 1}, {3, 2, 6}, {3, 6, 7},
		{0, 3, 7}, {0, 7, 4}, {1, 5, 6}, {1, 6, 2},
	}
	for _, f := range faces {
		sb.WriteString("  facet normal 0 0 0\n    outer loop\n")
		for _, idx := range f {
			p := corners[idx]
			sb.WriteString(fmt.Sprintf("      vertex %g %g %g\n", p.X, p.Y, p.Z))
		}
		sb.WriteString("    endloop\n  endfacet\n")
	}
}
