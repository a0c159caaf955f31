package geo

import (
	"log/slog"
	"sync"
)

// Landmark is decorative geometry handed to map and shapefile consumers.
// Landmarks never participate in classification.
type Landmark struct {
	Name     string
	Marker   string
	Color    string
	Vertices []Point
}

var (
	landmarksOnce sync.Once
	landmarks     []Landmark
)

// Landmarks returns the island and port geometry in geographic
// coordinates. A landmark whose projection fails is skipped; decoration is
// never worth failing a request over.
func Landmarks() []Landmark {
	landmarksOnce.Do(buildLandmarks)
	return landmarks
}

func buildLandmarks() {
	add := func(name, marker, color string, ring []utmVertex) {
		pts, err := convertRing(ring)
		if err != nil {
			slog.Warn("skipping landmark", "name", name, "error", err)
			return
		}
		landmarks = append(landmarks, Landmark{Name: name, Marker: marker, Color: color, Vertices: pts})
	}

	add("Isla María Madre", "", "saddlebrown", islaMariaMadreUTM)
	add("Puerto Balleto", "", "dimgray", puertoBalletoUTM)
	for _, isl := range minorIslandsUTM {
		add(isl.Name, isl.Marker, isl.Color, isl.Vertices)
	}
}
