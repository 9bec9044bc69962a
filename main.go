package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Main Logic ---

func main() {
	args := parseArguments()

	years, err := args.yearRange()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	activities, err := loadActivities(args.DataFile)
	if err != nil {
		log.Fatalf("Error loading activities: %v", err)
	}
	log.Printf("Loaded %d activities from %s", len(activities), args.DataFile)

	if args.GpxDir != "" {
		gpxActivities, err := loadGpxActivities(args.GpxDir)
		if err != nil {
			log.Fatalf("Error loading GPX activities: %v", err)
		}
		log.Printf("Imported %d GPX activities from %s", len(gpxActivities), args.GpxDir)
		activities = append(activities, gpxActivities...)
	}

	if err := os.MkdirAll(args.OutputDir, 0755); err != nil {
		log.Fatalf("Error creating output directory: %v", err)
	}

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}

	batch := len(years) > 1
	var bar *progressbar.ProgressBar
	if batch {
		bar = progressbar.Default(int64(len(years)), "Years")
	}

	for _, year := range years {
		runs := runsForYear(activities, year)
		if len(runs) == 0 && batch {
			log.Printf("No runs for %d, skipping", year)
			bar.Add(1)
			continue
		}

		input := buildSummaryInput(year, runs, args.BBox)
		log.Printf("%d: %d runs, %d in main map area", year, len(input.Runs), len(input.MainMapRuns))

		canvas := newGGCanvas(canvasWidth, canvasHeight, font)
		if err := renderSummary(input, canvas, args); err != nil {
			log.Fatalf("Error rendering %d: %v", year, err)
		}

		outPath := filepath.Join(args.OutputDir, fmt.Sprintf("yearly_summary_%d.png", year))
		if err := canvas.Export(outPath); err != nil {
			log.Fatalf("Error saving summary: %v", err)
		}
		log.Printf("Saved %s", outPath)

		if batch {
			bar.Add(1)
		}
	}
}
