package geo

import (
	"fmt"

	shp "github.com/jonas-p/go-shp"
)

// ExportBoundaryShapefile writes the maritime boundary and the island
// polygons to a POLYGON shapefile with a NAME attribute, for GIS and
// renderer consumers.
func ExportBoundaryShapefile(path string) error {
	w, err := shp.Create(path, shp.POLYGON)
	if err != nil {
		return fmt.Errorf("creating shapefile %s: %w", path, err)
	}
	defer w.Close()

	w.SetFields([]shp.Field{shp.StringField("NAME", 64)})

	row := 0
	writeRing := func(name string, ring []Point) {
		if len(ring) < 3 {
			return
		}
		pts := make([]shp.Point, len(ring))
		for i, p := range ring {
			pts[i] = shp.Point{X: p.Lon, Y: p.Lat}
		}
		poly := (*shp.Polygon)(shp.NewPolyLine([][]shp.Point{pts}))
		w.Write(poly)
		w.WriteAttribute(row, 0, name)
		row++
	}

	writeRing("ANP Maritime Boundary", Maritime().Vertices())
	for _, lm := range Landmarks() {
		writeRing(lm.Name, lm.Vertices)
	}

	return nil
}

// ExportMarkerShapefile writes the short decorative traces (minor islands)
// as a POLYLINE shapefile so chart plotters can draw them without closing
// two-point rings into degenerate polygons.
func ExportMarkerShapefile(path string) error {
	w, err := shp.Create(path, shp.POLYLINE)
	if err != nil {
		return fmt.Errorf("creating shapefile %s: %w", path, err)
	}
	defer w.Close()

	w.SetFields([]shp.Field{shp.StringField("NAME", 64)})

	row := 0
	for _, lm := range Landmarks() {
		if len(lm.Vertices) >= 3 {
			continue // full rings live in the polygon file
		}
		pts := make([]shp.Point, len(lm.Vertices))
		for i, p := range lm.Vertices {
			pts[i] = shp.Point{X: p.Lon, Y: p.Lat}
		}
		w.Write(shp.NewPolyLine([][]shp.Point{pts}))
		w.WriteAttribute(row, 0, lm.Name)
		row++
	}

	return nil
}
