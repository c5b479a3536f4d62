package basemap

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Decoration styles

// A GridlineStyle controls how graticule lines are drawn.
type GridlineStyle struct {
	// Color of the lines. A nil Color falls back to grey.
	Color color.Color

	// Alpha is the opacity of the lines in (0, 1]. Values outside
	// of that interval fall back to 0.5.
	Alpha float64

	// Width of the lines. A zero Width falls back to 1pt.
	Width vg.Length

	// Dashes is the dash pattern of the lines.
	Dashes []vg.Length
}

// DefaultGridlineStyle returns the style used by DefaultOptions:
// grey, half transparent, dashed lines.
func DefaultGridlineStyle() GridlineStyle {
	return GridlineStyle{
		Color:  colornames.Grey,
		Alpha:  0.5,
		Width:  vg.Length(1),
		Dashes: []vg.Length{4, 4},
	}
}

// lineStyle resolves s, including the fallbacks for zero fields, into
// a drawable line style.
func (s GridlineStyle) lineStyle() draw.LineStyle {
	col := s.Color
	if col == nil {
		col = colornames.Grey
	}
	alpha := s.Alpha
	if alpha <= 0 || alpha > 1 {
		alpha = 0.5
	}
	width := s.Width
	if width == 0 {
		width = vg.Length(1)
	}
	return draw.LineStyle{
		Color:  withAlpha(col, alpha),
		Width:  width,
		Dashes: s.Dashes,
	}
}

// A CoastlineStyle controls how coastline outlines are drawn.
type CoastlineStyle struct {
	// EdgeColor of the outlines. A nil EdgeColor falls back to black.
	EdgeColor color.Color

	// LineWidth of the outlines. A zero LineWidth falls back to 0.5pt.
	LineWidth vg.Length
}

// DefaultCoastlineStyle returns the style used by DefaultOptions:
// black outlines of width 0.5pt.
func DefaultCoastlineStyle() CoastlineStyle {
	return CoastlineStyle{
		EdgeColor: colornames.Black,
		LineWidth: vg.Length(0.5),
	}
}

func (s CoastlineStyle) lineStyle() draw.LineStyle {
	col := s.EdgeColor
	if col == nil {
		col = colornames.Black
	}
	width := s.LineWidth
	if width == 0 {
		width = vg.Length(0.5)
	}
	return draw.LineStyle{Color: col, Width: width}
}

// withAlpha scales the opacity of col by alpha.
func withAlpha(col color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return col
	}
	r, g, b, a := col.RGBA()
	return color.NRGBA64{
		uint16(r),
		uint16(g),
		uint16(b),
		uint16(float64(a) * alpha),
	}
}

// ----------------------------------------------------------------------------
// Figure style

// A FigureStyle controls the layout and decoration of a Figure.
type FigureStyle struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	// Margin is the room kept free around the surface grid for the
	// graticule edge labels.
	Margin vg.Length

	Panel struct {
		Background color.Color
		PadX       vg.Length
		PadY       vg.Length
	}

	// Label is the base text style of the graticule edge labels. Its
	// alignment is adjusted per surface side while drawing.
	Label struct {
		draw.TextStyle
		Gap vg.Length
	}
}

// DefaultFigureStyle returns a clean, white figure style. The
// baseFontSize is the font size of the edge labels, the title is a bit
// bigger.
func DefaultFigureStyle(baseFontSize vg.Length) FigureStyle {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	labelFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}

	fs := FigureStyle{}
	fs.Background = color.White

	fs.TitleHeight = scale(baseFontSize, 3)
	fs.Title.Color = color.Black
	fs.Title.Font = titleFont
	fs.Title.XAlign = draw.XCenter
	fs.Title.YAlign = draw.YTop

	fs.Margin = scale(baseFontSize, 3)

	fs.Panel.Background = color.White
	fs.Panel.PadX = scale(baseFontSize, 2.5)
	fs.Panel.PadY = scale(baseFontSize, 2.5)

	fs.Label.Color = color.Black
	fs.Label.Font = labelFont
	fs.Label.Gap = scale(baseFontSize, 0.4)

	return fs
}
