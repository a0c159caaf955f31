package models

import "time"

// Observation represents a single vessel sighting in or around the ANP.
type Observation struct {
	ID           int64     `json:"id"`             // Database primary key (0 if not saved)
	Registration string    `json:"registration"`   // Vessel registration (matrícula), stored uppercase
	VesselName   string    `json:"vessel_name"`    // Defaults to "Emb. <registration>" when absent
	CaptainName  string    `json:"captain_name"`   // Defaults to "N/A" when absent
	Timestamp    time.Time `json:"timestamp"`      // Sighting date-time
	Latitude     float64   `json:"latitude"`       // WGS84 decimal degrees
	Longitude    float64   `json:"longitude"`      // WGS84 decimal degrees
	VesselTypeID string    `json:"vessel_type_id"` // One of the VesselTypes ids
	StatusID     string    `json:"status_id"`      // One of the StatusCategories ids or StatusOutsideANP
	Notes        string    `json:"notes"`
}

// StatusDescription returns the human-readable description for the
// observation's stored status id.
func (o *Observation) StatusDescription() string {
	return DescribeStatus(o.StatusID)
}

// VesselTypeDescription returns the description for the observation's
// vessel type, falling back to the unknown-type description.
func (o *Observation) VesselTypeDescription() string {
	return VesselTypeInfo(o.VesselTypeID).Description
}
