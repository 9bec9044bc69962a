package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
)

// --- Structs ---

type Arguments struct {
	DataFile      string
	GpxDir        string
	OutputDir     string
	Year          int
	FromYear      int
	ToYear        int
	BBox          BoundingBox
	RouteColor    color.Color
	MapRouteColor color.Color
	RouteWidth    float64
}

// --- Argument Parsing ---

func parseArguments() *Arguments {
	args := &Arguments{}
	var bboxStr, routeColorStr, mapRouteColorStr string

	flag.StringVar(&args.DataFile, "data", "data/activities.json", "Path to the activities export JSON.")
	flag.StringVar(&args.GpxDir, "gpx-dir", "", "Optional directory of GPX files to merge with the export.")
	flag.StringVar(&args.OutputDir, "output", "output", "Output directory.")
	flag.IntVar(&args.Year, "year", 0, "Year to generate a summary for.")
	flag.IntVar(&args.FromYear, "from-year", 0, "First year of a batch range (used with -to-year).")
	flag.IntVar(&args.ToYear, "to-year", 0, "Last year of a batch range (used with -from-year).")
	flag.StringVar(&bboxStr, "bbox", "-3.32322,51.38586,-3.14065,51.51634", "Main map bounding box as minLon,minLat,maxLon,maxLat.")
	flag.StringVar(&routeColorStr, "route-color", "#1A1A1A", "Color of the grid thumbnails (hex).")
	flag.StringVar(&mapRouteColorStr, "map-route-color", "#E34902", "Color of the main map routes (hex).")
	flag.Float64Var(&args.RouteWidth, "route-width", 2, "Stroke width of the drawn routes.")
	flag.Parse()

	var err error
	if args.BBox, err = parseBoundingBox(bboxStr); err != nil {
		log.Fatalf("Invalid -bbox: %v", err)
	}
	if args.RouteColor, err = parseHexColor(routeColorStr); err != nil {
		log.Fatalf("Invalid -route-color: %v", err)
	}
	if args.MapRouteColor, err = parseHexColor(mapRouteColorStr); err != nil {
		log.Fatalf("Invalid -map-route-color: %v", err)
	}

	return args
}

// yearRange resolves the -year / -from-year / -to-year flags into the list
// of years to render.
func (a *Arguments) yearRange() ([]int, error) {
	if a.Year != 0 {
		return []int{a.Year}, nil
	}
	if a.FromYear == 0 || a.ToYear == 0 {
		return nil, fmt.Errorf("either -year or both -from-year and -to-year are required")
	}
	if a.ToYear < a.FromYear {
		return nil, fmt.Errorf("-to-year %d is before -from-year %d", a.ToYear, a.FromYear)
	}
	var years []int
	for y := a.FromYear; y <= a.ToYear; y++ {
		years = append(years, y)
	}
	return years, nil
}

func parseBoundingBox(s string) (BoundingBox, error) {
	var b BoundingBox
	_, err := fmt.Sscanf(s, "%f,%f,%f,%f", &b.MinLon, &b.MinLat, &b.MaxLon, &b.MaxLat)
	if err != nil {
		return b, fmt.Errorf("expected minLon,minLat,maxLon,maxLat: %w", err)
	}
	if b.MinLon >= b.MaxLon || b.MinLat >= b.MaxLat {
		return b, fmt.Errorf("bounding box extents must satisfy minLon<maxLon and minLat<maxLat")
	}
	return b, nil
}

func parseHexColor(s string) (color.Color, error) {
	var r, g, b uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return color.Black, err
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
