package main

import "testing"

func TestComputeStats(t *testing.T) {
	runs := []Run{
		{Distance: 5000, MovingTime: 1500},
		{Distance: 4600, MovingTime: 1500},
	}
	stats := computeStats(runs)

	if stats.TotalRuns != "2" {
		t.Errorf("TotalRuns: expected 2, got %s", stats.TotalRuns)
	}
	if stats.TotalDistance != "9.6 km" {
		t.Errorf("TotalDistance: expected 9.6 km, got %s", stats.TotalDistance)
	}
	if stats.MaxDistance != "5.0 km" {
		t.Errorf("MaxDistance: expected 5.0 km, got %s", stats.MaxDistance)
	}
	if stats.AvgDistance != "4.8 km" {
		t.Errorf("AvgDistance: expected 4.8 km, got %s", stats.AvgDistance)
	}
	if stats.RunsPerWeek != "0.0" {
		t.Errorf("RunsPerWeek: expected 0.0, got %s", stats.RunsPerWeek)
	}
	// 3000 s over 9.6 km is 312.5 s/km.
	if stats.AvgPace != "5:12 /km" {
		t.Errorf("AvgPace: expected 5:12 /km, got %s", stats.AvgPace)
	}
}

func TestComputeStatsNoRuns(t *testing.T) {
	stats := computeStats(nil)
	if stats.TotalRuns != "0" {
		t.Errorf("TotalRuns: expected 0, got %s", stats.TotalRuns)
	}
	if stats.TotalDistance != "0.0 km" {
		t.Errorf("TotalDistance: expected 0.0 km, got %s", stats.TotalDistance)
	}
	if stats.AvgPace != "0:00 /km" {
		t.Errorf("AvgPace: expected 0:00 /km, got %s", stats.AvgPace)
	}
}

func TestFormatPace(t *testing.T) {
	cases := []struct {
		seconds int
		meters  float64
		want    string
	}{
		{3000, 9500, "5:15 /km"},
		{0, 0, "0:00 /km"},
		{600, 0, "0:00 /km"},
	}
	for _, c := range cases {
		if got := formatPace(c.seconds, c.meters); got != c.want {
			t.Errorf("formatPace(%d, %v): expected %s, got %s", c.seconds, c.meters, c.want, got)
		}
	}
}
