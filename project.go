package main

import "math"

// --- Structs ---

type Rect struct {
	X, Y, W, H float64
}

// Projection maps a geographic coordinate to a pixel position. Pure and
// reusable: one per route in auto-fit, one shared across routes in
// fixed-fit.
type Projection func(c Coordinate) (x, y float64)

// Floor applied to a bounding box axis so a single point or a zero-extent
// route fits without a divide-by-zero. Small enough that any real route
// extent dominates it.
const minGeoExtent = 1e-9

// --- Projections ---

// autoFitProjection derives scale and translation from the route's own
// bounding box so the route exactly fits target inset by padding on all
// sides. The smaller of the two axis scales wins so nothing clips, and the
// leftover margin is centered. A single-point route maps to the center of
// the padded rectangle. Plain degree scaling; thumbnail cells are too small
// for latitude distortion to read.
func autoFitProjection(route []Coordinate, target Rect, padding float64) Projection {
	minLat, maxLat := route[0].Lat, route[0].Lat
	minLon, maxLon := route[0].Lon, route[0].Lon
	for _, c := range route {
		minLat = math.Min(minLat, c.Lat)
		maxLat = math.Max(maxLat, c.Lat)
		minLon = math.Min(minLon, c.Lon)
		maxLon = math.Max(maxLon, c.Lon)
	}

	lonRange := math.Max(maxLon-minLon, minGeoExtent)
	latRange := math.Max(maxLat-minLat, minGeoExtent)

	drawW := target.W - 2*padding
	drawH := target.H - 2*padding
	scale := math.Min(drawW/lonRange, drawH/latRange)

	midLon := (minLon + maxLon) / 2
	midLat := (minLat + maxLat) / 2
	centerX := target.X + target.W/2
	centerY := target.Y + target.H/2

	return func(c Coordinate) (float64, float64) {
		// y inverted: north is up
		return centerX + (c.Lon-midLon)*scale, centerY - (c.Lat-midLat)*scale
	}
}

// fixedFitProjection derives a single scale and translation from an
// externally supplied bounding box, so every route drawn through it stays
// spatially comparable. Latitude goes through the Mercator transform before
// the linear fit; the region spans enough latitude that plain degree
// scaling would visibly squash it. Longitude is linear.
func fixedFitProjection(bbox BoundingBox, target Rect, padding float64) Projection {
	// Both axes in radians so the fit is conformal: longitude stays linear,
	// latitude is stretched by the Mercator transform.
	minX := bbox.MinLon * math.Pi / 180
	maxX := bbox.MaxLon * math.Pi / 180
	minY := mercatorY(bbox.MinLat)
	maxY := mercatorY(bbox.MaxLat)

	xRange := math.Max(maxX-minX, minGeoExtent)
	yRange := math.Max(maxY-minY, minGeoExtent)

	drawW := target.W - 2*padding
	drawH := target.H - 2*padding
	scale := math.Min(drawW/xRange, drawH/yRange)

	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2
	centerX := target.X + target.W/2
	centerY := target.Y + target.H/2

	return func(c Coordinate) (float64, float64) {
		return centerX + (c.Lon*math.Pi/180-midX)*scale, centerY - (mercatorY(c.Lat)-midY)*scale
	}
}

func mercatorY(lat float64) float64 {
	rad := lat * math.Pi / 180
	return math.Log(math.Tan(rad) + 1/math.Cos(rad))
}
