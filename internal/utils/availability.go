package utils

import "strings"

// LocationServiceable classifies a resolved human-readable location string
// ("City, Region, Country") as inside or outside the service area by
// case-insensitive substring match against the supported-city identifier.
// Geocoding happens upstream in the location collaborator; empty or
// unrecognized text simply classifies as not serviceable.
func LocationServiceable(location, supportedCity string) bool {
	if supportedCity == "" {
		return false
	}
	return strings.Contains(strings.ToLower(location), strings.ToLower(supportedCity))
}
