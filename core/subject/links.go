// ABOUTME: External follow-up links for a SuperWASP source
// ABOUTME: Builds VSX, VESPA, SIMBAD, ASAS-SN and CERIT lookups from parsed ids

package subject

import (
	"net/url"

	"talk-search-api/core/domain"
)

// FollowUpLinks returns catalogue lookups for the given source
func FollowUpLinks(ids *domain.SourceIDs) []domain.Link {
	if ids == nil {
		return nil
	}

	coord := url.QueryEscape(ids.Coord)

	simbad := url.Values{}
	simbad.Set("Coord", ids.Coord)
	simbad.Set("CooFrame", "FK5")
	simbad.Set("CooEpoch", "2000")
	simbad.Set("CooEqui", "2000")
	simbad.Set("Radius", "2")
	simbad.Set("Radius.unit", "arcmin")
	simbad.Set("submit", "submit query")

	asassn := url.Values{}
	asassn.Set("ra", ids.RA)
	asassn.Set("dec", ids.Dec)
	asassn.Set("radius", "2")
	asassn.Set("sort_by", "distance")
	asassn.Set("sort_order", "asc")
	asassn.Set("show_non_periodic", "true")
	asassn.Set("show_without_class", "true")

	return []domain.Link{
		{Name: "VSX", URL: "https://www.aavso.org/vsx/index.php?view=search.top#coord=" + coord},
		{Name: "VESPA", URL: "https://www.superwasp.org/vespa/source/" + url.PathEscape(ids.SourceIDNoSpace) + "/"},
		{Name: "SIMBAD", URL: "http://simbad.u-strasbg.fr/simbad/sim-coo?" + simbad.Encode()},
		{Name: "ASAS-SN", URL: "https://asas-sn.osu.edu/variables?" + asassn.Encode()},
		{Name: "CERIT", URL: "https://wasp.cerit-sc.cz/klimes/?object=" + url.QueryEscape(ids.SourceID)},
	}
}
