package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"time"
)

const dateLayout = "2006-01-02T15:04:05Z"

// --- Structs ---

type Coordinate struct {
	Lat, Lon float64
}

type BoundingBox struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Activity mirrors one record of the Strava activities export.
type Activity struct {
	Type           string      `json:"type"`
	StartDateLocal string      `json:"start_date_local"`
	Distance       float64     `json:"distance"`     // meters
	MovingTime     int         `json:"moving_time"`  // seconds
	StartLatLng    []float64   `json:"start_latlng"` // [lat, lon]
	Map            ActivityMap `json:"map"`
}

type ActivityMap struct {
	SummaryPolyline string `json:"summary_polyline"`
}

// Run is one activity reduced to what the renderer and stats consume.
type Run struct {
	SummaryPolyline string
	Date            time.Time
	Distance        float64 // meters
	MovingTime      int     // seconds
	StartLatLng     []float64
}

// SummaryInput is the full input to one year's rendering.
type SummaryInput struct {
	Year        int
	Runs        []Run
	MainMapRuns []Run
	Stats       SummaryStats
	BoundingBox BoundingBox
}

// --- Loading & Filtering ---

func loadActivities(path string) ([]Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read activities file: %w", err)
	}
	var activities []Activity
	if err := json.Unmarshal(data, &activities); err != nil {
		return nil, fmt.Errorf("failed to parse activities file %s: %w", path, err)
	}
	return activities, nil
}

// runsForYear keeps activities of type "Run" whose local start date falls in
// the given year, sorted by date ascending. Unparseable dates are skipped
// with a warning.
func runsForYear(activities []Activity, year int) []Run {
	var runs []Run
	for _, act := range activities {
		if act.Type != "Run" {
			continue
		}
		date, err := time.Parse(dateLayout, act.StartDateLocal)
		if err != nil {
			log.Printf("Warning: could not parse date %q, skipping activity", act.StartDateLocal)
			continue
		}
		if date.Year() != year {
			continue
		}
		runs = append(runs, Run{
			SummaryPolyline: act.Map.SummaryPolyline,
			Date:            date,
			Distance:        act.Distance,
			MovingTime:      act.MovingTime,
			StartLatLng:     act.StartLatLng,
		})
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Date.Before(runs[j].Date) })
	return runs
}

// mainMapRuns keeps runs whose start point lies inside the bounding box.
func mainMapRuns(runs []Run, bbox BoundingBox) []Run {
	var filtered []Run
	for _, r := range runs {
		if len(r.StartLatLng) == 2 && bbox.Contains(r.StartLatLng[0], r.StartLatLng[1]) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func buildSummaryInput(year int, runs []Run, bbox BoundingBox) *SummaryInput {
	return &SummaryInput{
		Year:        year,
		Runs:        runs,
		MainMapRuns: mainMapRuns(runs, bbox),
		Stats:       computeStats(runs),
		BoundingBox: bbox,
	}
}
