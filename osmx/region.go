// Copyright 2016 Patrick Brosi
// Authors: info@patrickbrosi.de
//
// Use of this source code is governed by a GPL v2
// license that can be found in the LICENSE file

package osmx

// Region classifies a coordinate into a state or NYC borough. The cuts are
// rough river and latitude lines, good enough for labeling.
func Region(lat, lng float64) string {
	// Connecticut: north of ~41.0, east of Hudson
	if lat > 41.0 && lng > -73.73 {
		return "Connecticut"
	}
	// Pennsylvania: west of the Delaware River
	if lng < -74.7 {
		return "Pennsylvania"
	}
	// New Jersey: west of Hudson River / Kill Van Kull
	if lng < -74.05 && lat > 40.5 {
		return "New Jersey"
	}
	if lng < -74.15 && lat <= 40.5 {
		return "New Jersey"
	}
	// Westchester / Hudson Valley
	if lat > 41.0 {
		return "New York"
	}
	if lat > 40.8 {
		return "Bronx"
	}
	if lng > -73.85 && lat < 40.75 {
		return "Queens"
	}
	if lat < 40.65 {
		return "Brooklyn"
	}
	if lng < -74.05 {
		return "Staten Island"
	}
	return "Manhattan"
}
