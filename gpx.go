package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// --- GPX Import ---

// loadGpxActivities parses every .gpx file in dir into an Activity shaped
// like a Strava export record, so imported tracks flow through the same
// filtering, stats and rendering as downloaded runs. Files that fail to
// parse are skipped with a warning.
func loadGpxActivities(dir string) ([]Activity, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read GPX directory: %w", err)
	}

	var activities []Activity
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".gpx") {
			continue
		}
		act, err := gpxToActivity(filepath.Join(dir, e.Name()))
		if err != nil {
			log.Printf("Warning: skipping %s: %v", e.Name(), err)
			continue
		}
		activities = append(activities, act)
	}
	return activities, nil
}

func gpxToActivity(path string) (Activity, error) {
	gpxFile, err := gpx.ParseFile(path)
	if err != nil {
		return Activity{}, fmt.Errorf("failed to parse GPX file: %w", err)
	}

	var coords []Coordinate
	var first, last time.Time
	for _, track := range gpxFile.Tracks {
		for _, segment := range track.Segments {
			for _, p := range segment.Points {
				coords = append(coords, Coordinate{Lat: p.Latitude, Lon: p.Longitude})
				if !p.Timestamp.IsZero() {
					if first.IsZero() {
						first = p.Timestamp
					}
					last = p.Timestamp
				}
			}
		}
	}
	if len(coords) == 0 {
		return Activity{}, fmt.Errorf("no track points in %s", path)
	}
	if first.IsZero() {
		return Activity{}, fmt.Errorf("no timestamps in %s", path)
	}

	var distanceKm float64
	for i := 1; i < len(coords); i++ {
		distanceKm += haversine(coords[i-1], coords[i])
	}

	return Activity{
		Type:           "Run",
		StartDateLocal: first.UTC().Format(dateLayout),
		Distance:       distanceKm * 1000,
		MovingTime:     int(last.Sub(first).Seconds()),
		StartLatLng:    []float64{coords[0].Lat, coords[0].Lon},
		Map:            ActivityMap{SummaryPolyline: encodePolyline(coords, defaultPrecision)},
	}, nil
}

// haversine returns the great-circle distance between two coordinates in
// kilometers.
func haversine(p1, p2 Coordinate) float64 {
	const R = 6371 // Earth radius in kilometers
	lat1 := p1.Lat * math.Pi / 180
	lon1 := p1.Lon * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lon2 := p2.Lon * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}
