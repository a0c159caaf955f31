// Package coords normalizes the accepted coordinate input formats into
// canonical WGS84 decimal degrees and converts to and from the ANP's UTM
// zone (13N, EPSG:32613).
package coords

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/im7mortal/UTM"
)

// Accepted input format ids.
const (
	FormatGMS = "gms" // degrees, minutes, seconds, hemisphere
	FormatDD  = "dd"  // signed decimal degrees
	FormatUTM = "utm" // easting/northing in zone 13N
	FormatGDMID = "gdm" // degrees + decimal minutes, hemisphere
)

// UTM zone of the ANP. All projected input is interpreted in this zone.
const (
	ZoneNumber = 13
	ZoneLetter = "Q"
)

// ErrInvalidCoordinate is returned for unparseable numeric fields, bad
// hemisphere letters, or projection failures.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Input carries one coordinate pair in any of the accepted formats. Fields
// are raw strings as captured from a form; only the set matching Format is
// consulted.
type Input struct {
	Format string

	// gms
	LatDeg, LatMin, LatSec, LatHem string
	LonDeg, LonMin, LonSec, LonHem string

	// dd
	LatDD, LonDD string

	// utm
	Easting, Northing string

	// gdm
	LatGDMDeg, LatGDMMin, LatGDMHem string
	LonGDMDeg, LonGDMMin, LonGDMHem string
}

// Normalize converts an Input into a canonical (longitude, latitude) pair
// in WGS84 decimal degrees.
func Normalize(in Input) (lon, lat float64, err error) {
	switch in.Format {
	case FormatGMS:
		lat, err = GMSToDD(in.LatDeg, in.LatMin, in.LatSec, in.LatHem)
		if err != nil {
			return 0, 0, err
		}
		lon, err = GMSToDD(in.LonDeg, in.LonMin, in.LonSec, in.LonHem)
		if err != nil {
			return 0, 0, err
		}
	case FormatDD:
		lat, err = ParseDD(in.LatDD)
		if err != nil {
			return 0, 0, err
		}
		lon, err = ParseDD(in.LonDD)
		if err != nil {
			return 0, 0, err
		}
	case FormatUTM:
		easting, err := parseFloat(in.Easting, "easting")
		if err != nil {
			return 0, 0, err
		}
		northing, err := parseFloat(in.Northing, "northing")
		if err != nil {
			return 0, 0, err
		}
		return UTMToGeographic(easting, northing)
	case FormatGDMID:
		lat, err = GDMToDD(in.LatGDMDeg, in.LatGDMMin, in.LatGDMHem)
		if err != nil {
			return 0, 0, err
		}
		lon, err = GDMToDD(in.LonGDMDeg, in.LonGDMMin, in.LonGDMHem)
		if err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, fmt.Errorf("%w: unknown format %q", ErrInvalidCoordinate, in.Format)
	}
	return lon, lat, nil
}

// GMSToDD converts degrees/minutes/seconds plus hemisphere to decimal
// degrees. Hemisphere must be one of N, S, E, O, W (O is the Spanish
// abbreviation for west).
func GMSToDD(deg, min, sec, hemisphere string) (float64, error) {
	d, err := parseFloat(deg, "degrees")
	if err != nil {
		return 0, err
	}
	m, err := parseFloat(min, "minutes")
	if err != nil {
		return 0, err
	}
	s, err := parseFloat(sec, "seconds")
	if err != nil {
		return 0, err
	}
	dd := d + m/60.0 + s/3600.0
	return applyHemisphere(dd, hemisphere)
}

// GDMToDD converts degrees plus decimal minutes and hemisphere to decimal
// degrees. Same hemisphere rule as GMSToDD.
func GDMToDD(deg, decimalMinutes, hemisphere string) (float64, error) {
	d, err := parseFloat(deg, "degrees")
	if err != nil {
		return 0, err
	}
	m, err := parseFloat(decimalMinutes, "decimal minutes")
	if err != nil {
		return 0, err
	}
	return applyHemisphere(d+m/60.0, hemisphere)
}

// ParseDD parses a signed decimal-degree value.
func ParseDD(value string) (float64, error) {
	return parseFloat(value, "decimal degrees")
}

// UTMToGeographic converts zone 13N easting/northing to (longitude,
// latitude) decimal degrees.
func UTMToGeographic(easting, northing float64) (lon, lat float64, err error) {
	lat, lon, err = UTM.ToLatLon(easting, northing, ZoneNumber, ZoneLetter)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: utm conversion: %v", ErrInvalidCoordinate, err)
	}
	return lon, lat, nil
}

// GeographicToUTM converts (longitude, latitude) decimal degrees to zone
// 13N easting/northing.
func GeographicToUTM(lon, lat float64) (easting, northing float64, err error) {
	easting, northing, zone, _, err := UTM.FromLatLon(lat, lon, lat >= 0)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: utm conversion: %v", ErrInvalidCoordinate, err)
	}
	if zone != ZoneNumber {
		return 0, 0, fmt.Errorf("%w: point falls in UTM zone %d, expected %d", ErrInvalidCoordinate, zone, ZoneNumber)
	}
	return easting, northing, nil
}

// FormatGDM renders a decimal-degree value as a degrees–decimal-minutes
// string, e.g. 21.3123 -> `21°18.739' N`. The hemisphere letter follows
// the sign and axis.
func FormatGDM(dd float64, isLatitude bool) string {
	var hemisphere string
	if isLatitude {
		if dd >= 0 {
			hemisphere = "N"
		} else {
			hemisphere = "S"
		}
	} else {
		if dd >= 0 {
			hemisphere = "E"
		} else {
			hemisphere = "W"
		}
	}
	abs := math.Abs(dd)
	degrees := int(abs)
	minutes := (abs - float64(degrees)) * 60
	return fmt.Sprintf("%d°%.3f' %s", degrees, minutes, hemisphere)
}

// ValidateGeographic checks that a canonical pair is finite and within
// WGS84 range.
func ValidateGeographic(lon, lat float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinate, lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinate, lon)
	}
	return nil
}

func applyHemisphere(dd float64, hemisphere string) (float64, error) {
	switch strings.ToUpper(strings.TrimSpace(hemisphere)) {
	case "S", "O", "W":
		return -dd, nil
	case "N", "E":
		return dd, nil
	default:
		return 0, fmt.Errorf("%w: hemisphere %q not recognized, use N, S, E, W", ErrInvalidCoordinate, hemisphere)
	}
}

func parseFloat(s, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not numeric", ErrInvalidCoordinate, field, s)
	}
	return v, nil
}
