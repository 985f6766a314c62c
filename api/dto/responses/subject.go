// ABOUTME: Response DTOs for subject follow-up helpers
// ABOUTME: Exposes SuperWASP source ids, coordinates, catalogue links and magnitude

package responses

// LinkResponse is a named external URL
type LinkResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// SuperWASPSubjectResponse describes a SuperWASP subject
type SuperWASPSubjectResponse struct {
	SourceID        string         `json:"sourceId"`
	SourceIDNoSpace string         `json:"sourceIdNoSpace"`
	Coord           string         `json:"coord" doc:"Sexagesimal RA and Dec"`
	CoordDeg        string         `json:"coordDeg" doc:"Decimal degree RA and Dec, 5 decimals"`
	RA              string         `json:"ra"`
	Dec             string         `json:"dec"`
	RADeg           float64        `json:"raDeg"`
	DecDeg          float64        `json:"decDeg"`
	Links           []LinkResponse `json:"links"`
	Magnitude       *float64       `json:"magnitude,omitempty" doc:"Magnitude for the given flux, when flux was supplied"`
}
