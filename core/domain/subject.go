// ABOUTME: Subject domain models for SuperWASP light-curve subjects
// ABOUTME: Holds source identifiers and coordinates recovered from subject file names

package domain

// SourceIDs are the identifiers and coordinates encoded in a SuperWASP subject file name
type SourceIDs struct {
	// SourceID is the catalogue id with a space, e.g. "1SWASP J002447.51+620405.0"
	SourceID string

	// SourceIDNoSpace is SourceID without the space after the prefix
	SourceIDNoSpace string

	// Coord is the sexagesimal coordinate pair "hh:mm:ss.s +dd:mm:ss.s"
	Coord string

	// CoordDeg is the decimal degree pair with 5 decimals
	CoordDeg string

	// RA is the sexagesimal right ascension
	RA string

	// Dec is the sexagesimal declination
	Dec string

	// RADeg is the right ascension in decimal degrees
	RADeg float64

	// DecDeg is the declination in decimal degrees
	DecDeg float64
}

// Link is a named external URL
type Link struct {
	Name string
	URL  string
}
