package geo

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		want     bool
	}{
		{"center of the ANP", -106.4712, 21.5170, true},
		{"puerto balleto anchorage", -106.5400, 21.6616, true},
		{"gdm example point", -106.220983, 21.312317, true},
		{"mazatlan, far northeast", -106.4111, 23.2494, false},
		{"open pacific, far west", -110.0, 21.5, false},
		{"east of the boundary", -105.80, 21.3336, false},
		{"null island", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.lon, tt.lat); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestPolygonContainsEdgeInclusive(t *testing.T) {
	// Unit square: points on edges and vertices count as inside.
	square := &Polygon{vertices: []Point{
		{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
	}}

	tests := []struct {
		name     string
		lon, lat float64
		want     bool
	}{
		{"interior", 0.5, 0.5, true},
		{"vertex", 0, 0, true},
		{"bottom edge midpoint", 0.5, 0, true},
		{"left edge midpoint", 0, 0.5, true},
		{"just outside left", -0.001, 0.5, false},
		{"just outside top", 0.5, 1.001, false},
		{"far away", 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := square.Contains(tt.lon, tt.lat); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.lon, tt.lat, got, tt.want)
			}
		})
	}
}

func TestMaritimeRing(t *testing.T) {
	ring := Maritime().Vertices()
	if len(ring) != 5 {
		t.Fatalf("boundary ring has %d vertices, want 5", len(ring))
	}
	first, last := ring[0], ring[len(ring)-1]
	if first != last {
		t.Errorf("ring is not closed: first %v, last %v", first, last)
	}
	for _, p := range ring {
		if p.Lat < 20 || p.Lat > 23 || p.Lon > -105 || p.Lon < -108 {
			t.Errorf("vertex %v outside the expected ANP region", p)
		}
	}
}

func TestLandmarks(t *testing.T) {
	lms := Landmarks()
	// Isla María Madre, Puerto Balleto, and the seven minor island traces.
	if len(lms) != 9 {
		t.Fatalf("Landmarks() returned %d entries, want 9", len(lms))
	}
	for _, lm := range lms {
		if lm.Name == "" {
			t.Error("landmark with empty name")
		}
		if len(lm.Vertices) < 2 {
			t.Errorf("landmark %s has %d vertices", lm.Name, len(lm.Vertices))
		}
	}
	if got := len(lms[0].Vertices); got != 297 {
		t.Errorf("Isla María Madre trace has %d vertices, want 297", got)
	}
}
