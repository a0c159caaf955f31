// Package models defines the sighting record and the fixed status and
// vessel-type catalogs shared by the classifier, store and UI.
package models

// Status category ids as stored in the database. The six inside-boundary
// categories apply only to points within the ANP maritime polygon;
// StatusOutsideANP is forced for any point outside it.
const (
	StatusInnocentPassage    = "paso_inocente"
	StatusAuthorizedTourism  = "turistico_autorizado"
	StatusAuthorizedResearch = "investigacion"
	StatusDocNavIssue        = "doc_nav_issue"
	StatusFisheriesIssue     = "pesca_lgpas_issue"
	StatusEnvironmentalCrime = "delito"
	StatusOutsideANP         = "outside_anp"
)

// Vessel type ids.
const (
	VesselPanga = "panga"
	VesselYate  = "yate"
	VesselOtra  = "otra"
)

// StatusCategory describes one classification status.
type StatusCategory struct {
	ID          string
	Description string
	ColorKey    string // Map rendering color name
}

// VesselType describes one vessel class.
type VesselType struct {
	ID          string
	Description string
	MarkerChar  string // Map marker glyph
}

// StatusCategoriesInsideANP maps the six inside-boundary status ids to
// their catalog entries. Built once, never mutated.
var StatusCategoriesInsideANP = map[string]StatusCategory{
	StatusInnocentPassage:    {ID: StatusInnocentPassage, Description: "Paso Inocente", ColorKey: "blanco"},
	StatusAuthorizedTourism:  {ID: StatusAuthorizedTourism, Description: "Turístico Autorizado", ColorKey: "verde"},
	StatusAuthorizedResearch: {ID: StatusAuthorizedResearch, Description: "Investigación Autorizada", ColorKey: "azul_marino"},
	StatusDocNavIssue:        {ID: StatusDocNavIssue, Description: "Inconsistencias Doc. / Nav.", ColorKey: "amarillo"},
	StatusFisheriesIssue:     {ID: StatusFisheriesIssue, Description: "Infracción LGPAS (Pesca/Acuacultura)", ColorKey: "anaranjado"},
	StatusEnvironmentalCrime: {ID: StatusEnvironmentalCrime, Description: "Delito Ambiental / Otro", ColorKey: "rojo"},
}

// statusOrder lists the inside categories in catalog order for UI menus.
var statusOrder = []string{
	StatusInnocentPassage,
	StatusAuthorizedTourism,
	StatusAuthorizedResearch,
	StatusDocNavIssue,
	StatusFisheriesIssue,
	StatusEnvironmentalCrime,
}

// OutsideANPCategory is the catalog entry for sightings outside the
// maritime boundary.
var OutsideANPCategory = StatusCategory{
	ID:          StatusOutsideANP,
	Description: "Fuera del Polígono ANP",
	ColorKey:    "outside_anp",
}

// InfractionStatusIDs are the status ids counted by the repeat-infraction
// detector.
var InfractionStatusIDs = []string{StatusFisheriesIssue, StatusEnvironmentalCrime}

// VesselTypes maps vessel type ids to their catalog entries.
var VesselTypes = map[string]VesselType{
	VesselPanga: {ID: VesselPanga, Description: "Panga / Emb. Menor", MarkerChar: "^"},
	VesselYate:  {ID: VesselYate, Description: "Yate / Emb. Mayor", MarkerChar: "s"},
	VesselOtra:  {ID: VesselOtra, Description: "Otra / No especificada", MarkerChar: "o"},
}

// unknownVesselType is the fallback for ids not present in VesselTypes.
var unknownVesselType = VesselType{ID: "default", Description: "Desconocido", MarkerChar: "o"}

// IsInsideStatus reports whether id is one of the six inside-boundary
// category ids.
func IsInsideStatus(id string) bool {
	_, ok := StatusCategoriesInsideANP[id]
	return ok
}

// IsInfractionStatus reports whether id is an infraction-class status.
func IsInfractionStatus(id string) bool {
	return id == StatusFisheriesIssue || id == StatusEnvironmentalCrime
}

// DescribeStatus returns the human-readable description for any status id,
// including the outside-boundary status. Unknown ids get an explicit
// fallback rather than an empty string.
func DescribeStatus(id string) string {
	if id == StatusOutsideANP {
		return OutsideANPCategory.Description
	}
	if cat, ok := StatusCategoriesInsideANP[id]; ok {
		return cat.Description
	}
	return "Estatus desconocido"
}

// AllStatusCategories returns the inside categories in catalog order
// followed by the outside-boundary category; used by UI selects and
// report filters.
func AllStatusCategories() []StatusCategory {
	cats := make([]StatusCategory, 0, len(statusOrder)+1)
	for _, id := range statusOrder {
		cats = append(cats, StatusCategoriesInsideANP[id])
	}
	return append(cats, OutsideANPCategory)
}

// VesselTypeInfo returns the catalog entry for a vessel type id, falling
// back to the unknown entry.
func VesselTypeInfo(id string) VesselType {
	if vt, ok := VesselTypes[id]; ok {
		return vt
	}
	return unknownVesselType
}

// NormalizeVesselType maps unknown vessel type ids to VesselOtra.
func NormalizeVesselType(id string) string {
	if _, ok := VesselTypes[id]; ok {
		return id
	}
	return VesselOtra
}
