package geo

import (
	"path/filepath"
	"testing"

	shp "github.com/jonas-p/go-shp"
)

func countShapes(t *testing.T, path string) int {
	t.Helper()
	r, err := shp.Open(path)
	if err != nil {
		t.Fatalf("opening shapefile %s: %v", path, err)
	}
	defer r.Close()

	count := 0
	for r.Next() {
		count++
	}
	return count
}

func TestExportBoundaryShapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anp.shp")
	if err := ExportBoundaryShapefile(path); err != nil {
		t.Fatalf("ExportBoundaryShapefile() error = %v", err)
	}

	// Boundary plus the three landmark traces with full rings
	// (María Madre, Puerto Balleto, María Cleofas).
	if got := countShapes(t, path); got != 4 {
		t.Errorf("polygon shapefile has %d records, want 4", got)
	}
}

func TestExportMarkerShapefile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "islets.shp")
	if err := ExportMarkerShapefile(path); err != nil {
		t.Fatalf("ExportMarkerShapefile() error = %v", err)
	}

	// The six two-point islet traces.
	if got := countShapes(t, path); got != 6 {
		t.Errorf("polyline shapefile has %d records, want 6", got)
	}
}
