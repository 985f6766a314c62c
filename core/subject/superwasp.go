// ABOUTME: SuperWASP subject helpers
// ABOUTME: Recovers source ids and coordinates from subject file names and converts flux to magnitude

package subject

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"talk-search-api/core/domain"
	apperrors "talk-search-api/core/errors"
)

// fileNamePattern matches names like "1SWASPJ002447.51+620405.0_Pn_fold.gif"
var fileNamePattern = regexp.MustCompile(`(^.+)J(\d+)(\d\d)(\d\d[.]\d*)([+-]\d+)(\d\d)(\d\d[.]\d*)_`)

// ParseFileName extracts the source ids and coordinates from a subject file name.
// RADeg is in degrees (15 per hour) and the Dec sign applies to the whole
// value, so CoordDeg differs from tools that report RA in hours.
func ParseFileName(fileName string) (*domain.SourceIDs, error) {
	m := fileNamePattern.FindStringSubmatch(strings.TrimSpace(fileName))
	if m == nil {
		return nil, &apperrors.ValidationError{Field: "fileName", Message: "not a SuperWASP subject file name"}
	}
	prefix, raH, raM, raS, decD, decM, decS := m[1], m[2], m[3], m[4], m[5], m[6], m[7]

	raDeg, err := sexagesimal(raH, raM, raS)
	if err != nil {
		return nil, err
	}
	raDeg *= 15

	decDeg, err := sexagesimal(decD, decM, decS)
	if err != nil {
		return nil, err
	}

	body := raH + raM + raS + decD + decM + decS
	ra := raH + ":" + raM + ":" + raS
	dec := decD + ":" + decM + ":" + decS

	return &domain.SourceIDs{
		SourceID:        prefix + " J" + body,
		SourceIDNoSpace: prefix + "J" + body,
		Coord:           ra + " " + dec,
		CoordDeg:        fmt.Sprintf("%.5f %.5f", raDeg, decDeg),
		RA:              ra,
		Dec:             dec,
		RADeg:           raDeg,
		DecDeg:          decDeg,
	}, nil
}

// sexagesimal converts a signed "d m s" triple to decimal units.
// The sign lives on the leading field, so "-00" counts as negative.
func sexagesimal(whole, minutes, seconds string) (float64, error) {
	w, err := strconv.Atoi(whole)
	if err != nil {
		return 0, &apperrors.ValidationError{Field: "fileName", Message: "invalid coordinate " + whole}
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, &apperrors.ValidationError{Field: "fileName", Message: "invalid coordinate " + minutes}
	}
	s, err := strconv.ParseFloat(seconds, 64)
	if err != nil {
		return 0, &apperrors.ValidationError{Field: "fileName", Message: "invalid coordinate " + seconds}
	}

	value := math.Abs(float64(w)) + float64(m)/60 + s/3600
	if strings.HasPrefix(whole, "-") {
		value = -value
	}
	return value, nil
}

// FluxToMagnitude converts a SuperWASP flux in micro-Vega to a magnitude
func FluxToMagnitude(flux float64) (float64, error) {
	if flux <= 0 || math.IsNaN(flux) || math.IsInf(flux, 0) {
		return 0, &apperrors.ValidationError{Field: "flux", Message: "must be a positive number"}
	}
	return -2.5*math.Log10(flux) + 15, nil
}
