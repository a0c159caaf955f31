// Package geo holds the ANP reference geometry and the point-containment
// classifier. The maritime boundary polygon is built once at startup from
// the fixed UTM vertex table and shared read-only by every classification
// call.
package geo

import (
	"fmt"
	"math"

	"github.com/vigiamar/anp-sightings/internal/coords"
)

// Point is a geographic coordinate in WGS84 decimal degrees.
type Point struct {
	Lon float64
	Lat float64
}

// Polygon is an immutable closed ring of geographic vertices.
type Polygon struct {
	vertices []Point
}

// maritimeBoundary is the classification reference. Built at package init;
// a conversion failure aborts the process rather than running with an
// empty boundary, which would silently classify everything as outside.
var maritimeBoundary = mustBuildPolygon(maritimeBoundaryUTM)

// Maritime returns the shared ANP maritime boundary polygon.
func Maritime() *Polygon {
	return maritimeBoundary
}

// Contains reports whether the point lies inside the ANP maritime
// boundary. Points on the boundary itself count as inside.
func Contains(lon, lat float64) bool {
	return maritimeBoundary.Contains(lon, lat)
}

// Vertices returns a copy of the polygon's ring.
func (p *Polygon) Vertices() []Point {
	out := make([]Point, len(p.vertices))
	copy(out, p.vertices)
	return out
}

// Contains performs an even-odd ray cast against the ring. A point on an
// edge or vertex is inside.
func (p *Polygon) Contains(lon, lat float64) bool {
	n := len(p.vertices)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.vertices[j], p.vertices[i]
		if onSegment(a, b, lon, lat) {
			return true
		}
		if (a.Lat > lat) != (b.Lat > lat) {
			x := a.Lon + (b.Lon-a.Lon)*(lat-a.Lat)/(b.Lat-a.Lat)
			if lon < x {
				inside = !inside
			}
		}
	}
	return inside
}

const onEdgeEpsilon = 1e-9

// onSegment reports whether (lon, lat) lies on the segment a-b within a
// small tolerance in degrees.
func onSegment(a, b Point, lon, lat float64) bool {
	if lon < math.Min(a.Lon, b.Lon)-onEdgeEpsilon || lon > math.Max(a.Lon, b.Lon)+onEdgeEpsilon {
		return false
	}
	if lat < math.Min(a.Lat, b.Lat)-onEdgeEpsilon || lat > math.Max(a.Lat, b.Lat)+onEdgeEpsilon {
		return false
	}
	cross := (b.Lon-a.Lon)*(lat-a.Lat) - (b.Lat-a.Lat)*(lon-a.Lon)
	return math.Abs(cross) <= onEdgeEpsilon
}

// convertRing projects a UTM vertex table to geographic coordinates.
func convertRing(ring []utmVertex) ([]Point, error) {
	pts := make([]Point, 0, len(ring))
	for _, v := range ring {
		lon, lat, err := coords.UTMToGeographic(v.Easting, v.Northing)
		if err != nil {
			return nil, fmt.Errorf("projecting vertex (%.3f, %.3f): %w", v.Easting, v.Northing, err)
		}
		pts = append(pts, Point{Lon: lon, Lat: lat})
	}
	return pts, nil
}

func mustBuildPolygon(ring []utmVertex) *Polygon {
	if len(ring) < 4 {
		panic(fmt.Sprintf("geo: boundary ring has %d vertices, need a closed ring", len(ring)))
	}
	pts, err := convertRing(ring)
	if err != nil {
		panic(fmt.Sprintf("geo: building reference boundary: %v", err))
	}
	return &Polygon{vertices: pts}
}
