package main

import (
	"fmt"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/schollz/progressbar/v3"
)

// --- Layout Constants ---

const (
	canvasWidth  = 1800
	canvasHeight = 1300
	canvasMargin = 40
	headerHeight = 110
	panelGap     = 40

	gridPanelWidth = 1010
	cellPadding    = 8
	mapPadding     = 24
	statsRowCount  = 6

	titleFontSize     = 72
	subtitleFontSize  = 28
	statLabelFontSize = 26
	statValueFontSize = 44

	mapRouteAlpha = 70
)

// --- Drawing Surface ---

// Canvas is the rasterization surface the renderer draws on. The one
// backend is fogleman/gg; keeping the renderer behind this interface means
// the composition logic never touches the drawing library directly.
type Canvas interface {
	FillRect(r Rect, c color.Color)
	StrokeRect(r Rect, c color.Color, width float64)
	DrawPath(points [][2]float64, c color.Color, width float64)
	// DrawText draws s with its baseline-left at (x, y).
	DrawText(s string, x, y, size float64, c color.Color)
	// DrawTextAnchored positions s so the fraction (ax, ay) of its extent
	// sits at (x, y).
	DrawTextAnchored(s string, x, y, size, ax, ay float64, c color.Color)
	// Export rasterizes to a PNG at path. No partial file is left behind
	// on failure.
	Export(path string) error
}

type ggCanvas struct {
	dc   *gg.Context
	font *truetype.Font
}

func newGGCanvas(width, height int, font *truetype.Font) *ggCanvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()
	return &ggCanvas{dc: dc, font: font}
}

func (c *ggCanvas) FillRect(r Rect, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Fill()
}

func (c *ggCanvas) StrokeRect(r Rect, col color.Color, width float64) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
	c.dc.Stroke()
}

func (c *ggCanvas) DrawPath(points [][2]float64, col color.Color, width float64) {
	if len(points) == 0 {
		return
	}
	c.dc.SetColor(col)
	if len(points) == 1 {
		c.dc.DrawPoint(points[0][0], points[0][1], width)
		c.dc.Fill()
		return
	}
	c.dc.SetLineWidth(width)
	c.dc.SetLineCapRound()
	c.dc.SetLineJoinRound()
	c.dc.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		c.dc.LineTo(p[0], p[1])
	}
	c.dc.Stroke()
}

func (c *ggCanvas) setFace(size float64) {
	c.dc.SetFontFace(truetype.NewFace(c.font, &truetype.Options{Size: size}))
}

func (c *ggCanvas) DrawText(s string, x, y, size float64, col color.Color) {
	c.setFace(size)
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}

func (c *ggCanvas) DrawTextAnchored(s string, x, y, size, ax, ay float64, col color.Color) {
	c.setFace(size)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, ax, ay)
}

// Export writes the PNG to a temporary path and renames it into place, so
// an encode or write failure never leaves a partial output file.
func (c *ggCanvas) Export(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}
	if err := png.Encode(f, c.dc.Image()); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move %s into place: %w", path, err)
	}
	return nil
}

// --- Composition ---

// renderSummary draws the full two-panel summary onto canvas: header, the
// grid of route thumbnails on the left, the fixed-region map and statistics
// on the right. A polyline that fails to decode aborts the whole render
// with a diagnostic naming the offending run.
func renderSummary(input *SummaryInput, canvas Canvas, args *Arguments) error {
	textColor := color.RGBA{30, 30, 30, 255}
	faintColor := color.RGBA{150, 150, 150, 255}
	borderColor := color.RGBA{225, 225, 225, 255}

	// Header
	canvas.DrawText(fmt.Sprintf("%d", input.Year), canvasMargin, canvasMargin+60, titleFontSize, textColor)
	canvas.DrawText("Running", canvasMargin+200, canvasMargin+60, subtitleFontSize, faintColor)

	contentY := float64(canvasMargin + headerHeight)
	contentH := float64(canvasHeight) - contentY - canvasMargin

	gridArea := Rect{X: canvasMargin, Y: contentY, W: gridPanelWidth, H: contentH}
	rightX := gridArea.X + gridArea.W + panelGap
	rightW := float64(canvasWidth) - rightX - canvasMargin

	if err := renderGrid(input.Runs, gridArea, canvas, args); err != nil {
		return err
	}

	statsBlockH := float64(statsRowCount) * 90
	mapArea := Rect{X: rightX, Y: contentY, W: rightW, H: contentH - statsBlockH - panelGap}
	canvas.StrokeRect(mapArea, borderColor, 2)
	if err := renderMainMap(input.MainMapRuns, input.BoundingBox, mapArea, canvas, args); err != nil {
		return err
	}

	statsArea := Rect{X: rightX, Y: mapArea.Y + mapArea.H + panelGap, W: rightW, H: statsBlockH}
	renderStats(input.Stats, statsArea, canvas, textColor, faintColor)
	return nil
}

// renderGrid lays the runs out in reading order, one auto-fit thumbnail per
// cell. A zero-run year leaves the panel empty.
func renderGrid(runs []Run, area Rect, canvas Canvas, args *Arguments) error {
	rows, cols := planGrid(len(runs), area.W, area.H)
	if rows == 0 {
		return nil
	}

	bar := progressbar.Default(int64(len(runs)), "Rendering routes")
	for i, run := range runs {
		route, err := decodePolyline(run.SummaryPolyline, defaultPrecision)
		if err != nil {
			return fmt.Errorf("run %d (%s): %w", i, run.Date.Format("2006-01-02"), err)
		}
		bar.Add(1)
		if len(route) == 0 {
			continue
		}

		cell := cellRect(i, rows, cols, area)
		project := autoFitProjection(route, cell, cellPadding)
		canvas.DrawPath(projectRoute(route, project), args.RouteColor, args.RouteWidth)
	}
	return nil
}

// renderMainMap strokes every route through one shared fixed-fit
// projection, with enough transparency that overlap density reads.
func renderMainMap(runs []Run, bbox BoundingBox, area Rect, canvas Canvas, args *Arguments) error {
	project := fixedFitProjection(bbox, area, mapPadding)

	r, g, b, _ := args.MapRouteColor.RGBA()
	routeColor := color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: mapRouteAlpha}

	for i, run := range runs {
		route, err := decodePolyline(run.SummaryPolyline, defaultPrecision)
		if err != nil {
			return fmt.Errorf("main map run %d (%s): %w", i, run.Date.Format("2006-01-02"), err)
		}
		if len(route) == 0 {
			continue
		}
		canvas.DrawPath(projectRoute(route, project), routeColor, args.RouteWidth+1)
	}
	return nil
}

func renderStats(stats SummaryStats, area Rect, canvas Canvas, textColor, labelColor color.Color) {
	items := []struct {
		label, value string
	}{
		{"Runs", stats.TotalRuns},
		{"Total distance", stats.TotalDistance},
		{"Longest run", stats.MaxDistance},
		{"Average distance", stats.AvgDistance},
		{"Runs per week", stats.RunsPerWeek},
		{"Average pace", stats.AvgPace},
	}

	rowH := area.H / float64(len(items))
	for i, row := range items {
		y := area.Y + float64(i)*rowH + rowH/2
		canvas.DrawTextAnchored(row.label, area.X, y, statLabelFontSize, 0, 0.5, labelColor)
		canvas.DrawTextAnchored(row.value, area.X+area.W, y, statValueFontSize, 1, 0.5, textColor)
	}
}

func projectRoute(route []Coordinate, project Projection) [][2]float64 {
	points := make([][2]float64, len(route))
	for i, c := range route {
		x, y := project(c)
		points[i] = [2]float64{x, y}
	}
	return points
}
