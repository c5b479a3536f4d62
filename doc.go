// Package basemap produces quick geographical base maps on top of
// gonum.org/v1/plot.
//
// A base map is a figure containing a grid of map surfaces, all sharing
// one cylindrical equirectangular (Plate Carree) projection centered at
// a caller supplied longitude. Every surface is decorated with a
// graticule (lines of constant longitude and latitude, optionally
// labeled at the surface edges) and with coastline outlines.
//
// The two entry points are QuickDraw, which builds a single decorated
// surface, and QuickDrawGrid, which builds rows x cols surfaces and
// returns them as a flat, row-major slice:
//
//	fig, surfaces, err := basemap.QuickDrawGrid(2, 3, basemap.DefaultOptions())
//
// The figure is drawn onto any vg canvas via fig.Draw, e.g. through
// vg/vgimg to produce a PNG.
//
// Construction and decoration are split into two capabilities, a
// FigureProvider and a Decorator. Both default to gonum/plot backed
// implementations but can be replaced through Options, e.g. to record
// decoration calls in tests.
//
// Labels
//
// Which graticule labels are drawn is controlled by a LabelSpec which
// comes in four shapes: a single axis (LabelAxis), everything or
// nothing (Labels), a set of side and axis tokens (LabelTokens), or an
// explicit side to axis mapping (LabelMap). The default places
// longitude labels on the bottom edge and latitude labels on the left
// edge.
package basemap
