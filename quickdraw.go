package basemap

import (
	"fmt"

	"github.com/vdobler/basemap/proj"
)

// ----------------------------------------------------------------------------
// Capabilities

// A FigureProvider constructs a figure with a rows x cols grid of
// surfaces, every surface set up with the given projection. The
// returned slice is the figure's flattened, row-major surface grid.
type FigureProvider interface {
	Subplots(rows, cols int, p proj.PlateCarree) (*Figure, []*Surface, error)
}

// A Decorator applies the two map decorations to a surface. Styles and
// label specs reach the decorator exactly as the caller supplied them.
type Decorator interface {
	Gridlines(s *Surface, sty GridlineStyle, labels LabelSpec) error
	Coastlines(s *Surface, sty CoastlineStyle) error
}

// GonumProvider is the default FigureProvider. It builds figures that
// render through gonum.org/v1/plot canvases.
type GonumProvider struct{}

func (GonumProvider) Subplots(rows, cols int, p proj.PlateCarree) (*Figure, []*Surface, error) {
	if rows < 1 || cols < 1 {
		return nil, nil, fmt.Errorf("basemap: invalid subplot grid %dx%d", rows, cols)
	}
	fig := &Figure{
		Rows:     rows,
		Cols:     cols,
		Surfaces: make([]*Surface, rows*cols),
		Style:    DefaultFigureStyle(12),
	}
	for i := range fig.Surfaces {
		fig.Surfaces[i] = &Surface{Figure: fig, Projection: p}
	}
	return fig, fig.Surfaces, nil
}

// GonumDecorator is the default Decorator. Decorations become overlays
// on the surface; they are rendered when the figure is drawn, in the
// order they were applied.
type GonumDecorator struct{}

func (GonumDecorator) Gridlines(s *Surface, sty GridlineStyle, labels LabelSpec) error {
	s.Overlays = append(s.Overlays, Gridlines{Style: sty, Labels: labels})
	return nil
}

func (GonumDecorator) Coastlines(s *Surface, sty CoastlineStyle) error {
	s.Overlays = append(s.Overlays, Coastlines{Style: sty})
	return nil
}

// ----------------------------------------------------------------------------
// Quick drawing

// Options bundles the styling of a quick drawn base map. The zero
// value is usable, all styles fall back to the documented defaults.
type Options struct {
	// CentralLongitude is the central meridian of the shared Plate
	// Carree projection, in degrees.
	CentralLongitude float64

	// Labels selects the graticule edge labels. The zero value
	// labels the bottom and left edges.
	Labels LabelSpec

	Gridlines  GridlineStyle
	Coastlines CoastlineStyle

	// Provider and Decorator replace the gonum/plot backed defaults
	// when non-nil.
	Provider  FigureProvider
	Decorator Decorator
}

// DefaultOptions returns Options with all defaults filled in
// explicitly: projection centered at 0, labels on the bottom and left
// edges, grey dashed gridlines at half opacity and black coastlines of
// width 0.5pt.
func DefaultOptions() Options {
	return Options{
		Labels:     LabelTokens(TokenBottom, TokenLeft),
		Gridlines:  DefaultGridlineStyle(),
		Coastlines: DefaultCoastlineStyle(),
	}
}

// QuickDraw builds a figure with a single decorated map surface.
func QuickDraw(o Options) (*Figure, *Surface, error) {
	fig, surfaces, err := quickDraw(1, 1, o)
	if err != nil {
		return nil, nil, err
	}
	return fig, surfaces[0], nil
}

// QuickDrawGrid builds a figure with a rows x cols grid of decorated
// map surfaces and returns them flattened in row-major order.
func QuickDrawGrid(rows, cols int, o Options) (*Figure, []*Surface, error) {
	return quickDraw(rows, cols, o)
}

func quickDraw(rows, cols int, o Options) (*Figure, []*Surface, error) {
	provider := o.Provider
	if provider == nil {
		provider = GonumProvider{}
	}
	decorator := o.Decorator
	if decorator == nil {
		decorator = GonumDecorator{}
	}

	fig, surfaces, err := provider.Subplots(rows, cols, proj.PlateCarree{
		CentralLongitude: o.CentralLongitude,
	})
	if err != nil {
		return nil, nil, err
	}

	for _, s := range surfaces {
		if err := decorator.Gridlines(s, o.Gridlines, o.Labels); err != nil {
			return nil, nil, err
		}
		if err := decorator.Coastlines(s, o.Coastlines); err != nil {
			return nil, nil, err
		}
	}
	return fig, surfaces, nil
}
