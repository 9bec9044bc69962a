package main

import "fmt"

// SummaryStats holds the aggregate figures preformatted for display.
type SummaryStats struct {
	TotalRuns     string
	TotalDistance string
	MaxDistance   string
	AvgDistance   string
	RunsPerWeek   string
	AvgPace       string
}

func computeStats(runs []Run) SummaryStats {
	var totalMeters, maxMeters float64
	var totalSeconds int
	for _, r := range runs {
		totalMeters += r.Distance
		totalSeconds += r.MovingTime
		if r.Distance > maxMeters {
			maxMeters = r.Distance
		}
	}

	totalRuns := len(runs)
	avgKm := 0.0
	if totalRuns > 0 {
		avgKm = totalMeters / 1000 / float64(totalRuns)
	}

	return SummaryStats{
		TotalRuns:     fmt.Sprintf("%d", totalRuns),
		TotalDistance: fmt.Sprintf("%.1f km", totalMeters/1000),
		MaxDistance:   fmt.Sprintf("%.1f km", maxMeters/1000),
		AvgDistance:   fmt.Sprintf("%.1f km", avgKm),
		RunsPerWeek:   fmt.Sprintf("%.1f", float64(totalRuns)/52),
		AvgPace:       formatPace(totalSeconds, totalMeters),
	}
}

// formatPace renders average pace as minutes:seconds per kilometer.
func formatPace(totalSeconds int, totalMeters float64) string {
	if totalMeters <= 0 {
		return "0:00 /km"
	}
	paceMinutes := float64(totalSeconds) / totalMeters * 1000 / 60
	mins := int(paceMinutes)
	secs := int((paceMinutes - float64(mins)) * 60)
	return fmt.Sprintf("%d:%02d /km", mins, secs)
}
