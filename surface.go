package basemap

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/basemap/proj"
)

// World extent of the Plate Carree projection plane.
const (
	lonMin, lonMax = -180.0, 180.0
	latMin, latMax = -90.0, 90.0
)

// ----------------------------------------------------------------------------
// Surface

// A Surface is a single map panel inside a Figure. Its canvas is
// assigned by Figure.Draw, overlays are drawn onto it in the order
// they were added.
type Surface struct {
	Figure     *Figure
	Projection proj.PlateCarree
	Canvas     draw.Canvas
	Overlays   []Overlay
}

// Map maps the geographic coordinate (lon, lat), in degrees, to a
// canvas point of s.
func (s *Surface) Map(lon, lat float64) vg.Point {
	x, y := s.Projection.Project(lon, lat)
	size := s.Canvas.Size()
	xu := (x - lonMin) / (lonMax - lonMin)
	yu := (y - latMin) / (latMax - latMin)
	return vg.Point{
		X: s.Canvas.Min.X + vg.Length(xu)*size.X,
		Y: s.Canvas.Min.Y + vg.Length(yu)*size.Y,
	}
}

// style returns the figure style governing s.
func (s *Surface) style() FigureStyle {
	if s.Figure != nil {
		return s.Figure.Style
	}
	return DefaultFigureStyle(12)
}
