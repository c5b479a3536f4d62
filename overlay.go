package basemap

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/basemap/data"
)

// An Overlay decorates a map surface. Overlays are drawn in the order
// they were added to the surface, later overlays end up on top.
type Overlay interface {
	Draw(s *Surface)
}

// ----------------------------------------------------------------------------
// Gridlines

// Gridlines draws a graticule, lines of constant longitude and
// latitude, across a surface, with optional labels at the surface
// edges.
type Gridlines struct {
	Style  GridlineStyle
	Labels LabelSpec

	// LonStep and LatStep are the graticule spacings in degrees.
	// Zero or negative steps fall back to 30.
	LonStep, LatStep float64
}

func (g Gridlines) Draw(s *Surface) {
	lonStep, latStep := g.LonStep, g.LatStep
	if lonStep <= 0 {
		lonStep = 30
	}
	if latStep <= 0 {
		latStep = 30
	}
	sty := g.Style.lineStyle()
	canvas := s.Canvas

	meridians := graticule(lonMin, lonMax, lonStep)
	// The first and the last meridian project onto the same vertical.
	meridians = meridians[:len(meridians)-1]
	parallels := graticule(latMin, latMax, latStep)

	for _, lon := range meridians {
		p := s.Map(lon, 0)
		canvas.StrokeLine2(sty, p.X, canvas.Min.Y, p.X, canvas.Max.Y)
	}
	for _, lat := range parallels {
		p := s.Map(0, lat)
		canvas.StrokeLine2(sty, canvas.Min.X, p.Y, canvas.Max.X, p.Y)
	}

	base := s.style().Label
	for side, axis := range g.Labels.sides() {
		switch {
		case axis == AxisX && (side == Bottom || side == Top):
			lsty := base.TextStyle
			lsty.XAlign = draw.XCenter
			y := canvas.Min.Y - base.Gap
			lsty.YAlign = draw.YTop
			if side == Top {
				y = canvas.Max.Y + base.Gap
				lsty.YAlign = draw.YBottom
			}
			for _, lon := range meridians {
				p := s.Map(lon, 0)
				canvas.FillText(lsty, vg.Point{X: p.X, Y: y}, formatLon(lon))
			}

		case axis == AxisY && (side == Left || side == Right):
			lsty := base.TextStyle
			lsty.YAlign = draw.YCenter
			x := canvas.Min.X - base.Gap
			lsty.XAlign = draw.XRight
			if side == Right {
				x = canvas.Max.X + base.Gap
				lsty.XAlign = draw.XLeft
			}
			for _, lat := range parallels {
				p := s.Map(0, lat)
				canvas.FillText(lsty, vg.Point{X: x, Y: p.Y}, formatLat(lat))
			}
		}
	}
}

// graticule returns the values min, min+step, ..., max.
func graticule(min, max, step float64) []float64 {
	n := int(math.Round((max-min)/step)) + 1
	if n < 2 {
		n = 2
	}
	return floats.Span(make([]float64, n), min, max)
}

func formatLon(lon float64) string {
	switch {
	case lon == 0 || lon == 180 || lon == -180:
		return fmt.Sprintf("%g°", math.Abs(lon))
	case lon < 0:
		return fmt.Sprintf("%g°W", -lon)
	default:
		return fmt.Sprintf("%g°E", lon)
	}
}

func formatLat(lat float64) string {
	switch {
	case lat == 0:
		return "0°"
	case lat < 0:
		return fmt.Sprintf("%g°S", -lat)
	default:
		return fmt.Sprintf("%g°N", lat)
	}
}

// ----------------------------------------------------------------------------
// Coastlines

// Coastlines draws the world coastline outlines onto a surface.
type Coastlines struct {
	Style CoastlineStyle
}

func (c Coastlines) Draw(s *Surface) {
	sty := c.Style.lineStyle()
	for _, seg := range data.Coastline() {
		var line []vg.Point
		prevX := math.NaN()
		for _, pt := range seg {
			x, _ := s.Projection.Project(pt.Lon(), pt.Lat())
			if !math.IsNaN(prevX) && math.Abs(x-prevX) > 180 {
				// The segment wraps around the projection seam.
				if len(line) > 1 {
					s.Canvas.StrokeLines(sty, line)
				}
				line = nil
			}
			prevX = x
			line = append(line, s.Map(pt.Lon(), pt.Lat()))
		}
		if len(line) > 1 {
			s.Canvas.StrokeLines(sty, line)
		}
	}
}
