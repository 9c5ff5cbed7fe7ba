package archive

import "strconv"

// EncodeSpeed renders a playback rate for the snapshot URL's speed query
// parameter. Shortest representation that round-trips: "1", "0.25".
func EncodeSpeed(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// DecodeSpeed parses a speed query parameter back to its numeric value.
func DecodeSpeed(v string) (float64, error) {
	return strconv.ParseFloat(v, 64)
}
