package basemap

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// Figure

// A Figure holds a rows x cols grid of map surfaces. All surfaces
// share the same projection; the grid is stored flattened in row-major
// order with row 0 at the top.
type Figure struct {
	Title      string
	Rows, Cols int
	Surfaces   []*Surface
	Style      FigureStyle
}

// Surface returns the surface at (row, col).
func (f *Figure) Surface(row, col int) *Surface {
	return f.Surfaces[row*f.Cols+col]
}

// Draw lays out the surface grid on c and draws every surface with its
// overlays. Each surface keeps the canvas rectangle it was assigned, so
// callers may draw additional content onto a surface afterwards.
func (f *Figure) Draw(c draw.Canvas) error {
	style := f.Style

	if style.Background != nil {
		c.SetColor(style.Background)
		c.Fill(c.Rectangle.Path())
	}

	if f.Title != "" {
		c.FillText(style.Title, vg.Point{X: c.Center().X, Y: c.Max.Y}, f.Title)
		c.Max.Y -= style.TitleHeight
	}

	// Keep room for the graticule edge labels around every surface.
	m := style.Margin
	c.Min.X += m
	c.Min.Y += m
	c.Max.X -= m
	c.Max.Y -= m

	padx, pady := style.Panel.PadX, style.Panel.PadY
	numCols, numRows := vg.Length(f.Cols), vg.Length(f.Rows)
	width := (c.Max.X - c.Min.X - padx*(numCols-1)) / numCols
	height := (c.Max.Y - c.Min.Y - pady*(numRows-1)) / numRows

	// Point (x0, y0) is the top-left corner of each surface.
	y0 := c.Max.Y
	for row := 0; row < f.Rows; row++ {
		x0 := c.Min.X
		for col := 0; col < f.Cols; col++ {
			s := f.Surface(row, col)
			s.Canvas.Canvas = c.Canvas
			s.Canvas.Min = vg.Point{X: x0, Y: y0 - height}
			s.Canvas.Max = vg.Point{X: x0 + width, Y: y0}
			if style.Panel.Background != nil {
				s.Canvas.SetColor(style.Panel.Background)
				s.Canvas.Fill(s.Canvas.Rectangle.Path())
			}
			x0 += width + padx
		}
		y0 -= height + pady
	}

	for _, s := range f.Surfaces {
		for _, ov := range s.Overlays {
			ov.Draw(s)
		}
	}

	return nil
}
