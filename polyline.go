package main

import (
	"fmt"
	"math"
	"strings"
)

const defaultPrecision = 5

// DecodeError reports a malformed polyline string.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("polyline decode failed at byte %d: %s", e.Offset, e.Reason)
}

// decodePolyline decodes a Google encoded polyline into coordinates. Each
// component is a zigzag-encoded delta from the running total, packed as
// 5-bit groups with 0x20 as the continuation flag. The empty string decodes
// to an empty route. Input that ends mid-component or a latitude without a
// matching longitude returns a DecodeError; the loop never reads past the
// end of the string.
func decodePolyline(encoded string, precision int) ([]Coordinate, error) {
	factor := math.Pow(10, float64(precision))
	var coords []Coordinate
	var lat, lon int64

	i := 0
	for i < len(encoded) {
		dLat, next, err := decodeComponent(encoded, i)
		if err != nil {
			return nil, err
		}
		i = next
		if i >= len(encoded) {
			return nil, &DecodeError{Offset: i, Reason: "latitude without longitude"}
		}
		dLon, next, err := decodeComponent(encoded, i)
		if err != nil {
			return nil, err
		}
		i = next

		lat += dLat
		lon += dLon
		coords = append(coords, Coordinate{Lat: float64(lat) / factor, Lon: float64(lon) / factor})
	}
	return coords, nil
}

func decodeComponent(encoded string, start int) (int64, int, error) {
	var result int64
	var shift uint
	i := start
	for {
		if i >= len(encoded) {
			return 0, i, &DecodeError{Offset: start, Reason: "truncated component"}
		}
		b := int64(encoded[i]) - 63
		if b < 0 || b > 63 {
			return 0, i, &DecodeError{Offset: i, Reason: fmt.Sprintf("byte %q out of range", encoded[i])}
		}
		i++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1), i, nil
	}
	return result >> 1, i, nil
}

// encodePolyline is the inverse of decodePolyline.
func encodePolyline(coords []Coordinate, precision int) string {
	factor := math.Pow(10, float64(precision))
	var sb strings.Builder
	var prevLat, prevLon int64
	for _, c := range coords {
		lat := int64(math.Round(c.Lat * factor))
		lon := int64(math.Round(c.Lon * factor))
		encodeComponent(&sb, lat-prevLat)
		encodeComponent(&sb, lon-prevLon)
		prevLat, prevLon = lat, lon
	}
	return sb.String()
}

func encodeComponent(sb *strings.Builder, v int64) {
	u := v << 1
	if v < 0 {
		u = ^u
	}
	for u >= 0x20 {
		sb.WriteByte(byte(0x20|(u&0x1f)) + 63)
		u >>= 5
	}
	sb.WriteByte(byte(u) + 63)
}
