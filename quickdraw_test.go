package basemap

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/basemap/proj"
)

type decoCall struct {
	surface *Surface
	op      string
	grid    GridlineStyle
	coast   CoastlineStyle
	labels  LabelSpec
}

// recordingDecorator records every decoration call instead of
// decorating anything.
type recordingDecorator struct {
	calls    []decoCall
	failGrid int // fail the n-th Gridlines call (1 based), 0 never
}

func (d *recordingDecorator) Gridlines(s *Surface, sty GridlineStyle, labels LabelSpec) error {
	d.calls = append(d.calls, decoCall{surface: s, op: "gridlines", grid: sty, labels: labels})
	if n := d.countOp("gridlines"); d.failGrid > 0 && n == d.failGrid {
		return errors.New("boom")
	}
	return nil
}

func (d *recordingDecorator) Coastlines(s *Surface, sty CoastlineStyle) error {
	d.calls = append(d.calls, decoCall{surface: s, op: "coastlines", coast: sty})
	return nil
}

func (d *recordingDecorator) countOp(op string) int {
	n := 0
	for _, c := range d.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func TestQuickDrawSingle(t *testing.T) {
	rec := &recordingDecorator{}
	o := DefaultOptions()
	o.Decorator = rec

	fig, s, err := QuickDraw(o)
	if err != nil {
		t.Fatalf("QuickDraw: %v", err)
	}
	if s == nil {
		t.Fatal("QuickDraw returned no surface")
	}
	if fig.Rows != 1 || fig.Cols != 1 || len(fig.Surfaces) != 1 {
		t.Errorf("got %dx%d grid with %d surfaces, want 1x1 with 1",
			fig.Rows, fig.Cols, len(fig.Surfaces))
	}
	if fig.Surfaces[0] != s {
		t.Error("returned surface is not the figure's surface")
	}
	if len(rec.calls) != 2 ||
		rec.calls[0].op != "gridlines" || rec.calls[1].op != "coastlines" ||
		rec.calls[0].surface != s || rec.calls[1].surface != s {
		t.Errorf("decoration calls = %+v, want gridlines then coastlines on the surface", rec.calls)
	}
}

func TestQuickDrawGrid(t *testing.T) {
	rec := &recordingDecorator{}
	o := DefaultOptions()
	o.Decorator = rec

	fig, surfaces, err := QuickDrawGrid(2, 3, o)
	if err != nil {
		t.Fatalf("QuickDrawGrid: %v", err)
	}
	if len(surfaces) != 6 {
		t.Fatalf("got %d surfaces, want 6", len(surfaces))
	}
	for i, s := range surfaces {
		if fig.Surface(i/3, i%3) != s {
			t.Errorf("surface %d is not at grid position (%d, %d)", i, i/3, i%3)
		}
	}
	if len(rec.calls) != 12 {
		t.Fatalf("got %d decoration calls, want 12", len(rec.calls))
	}
	for i, s := range surfaces {
		grid, coast := rec.calls[2*i], rec.calls[2*i+1]
		if grid.op != "gridlines" || grid.surface != s {
			t.Errorf("call %d = %s on wrong surface, want gridlines on surface %d", 2*i, grid.op, i)
		}
		if coast.op != "coastlines" || coast.surface != s {
			t.Errorf("call %d = %s on wrong surface, want coastlines on surface %d", 2*i+1, coast.op, i)
		}
		if !reflect.DeepEqual(grid.grid, o.Gridlines) {
			t.Errorf("surface %d gridline style = %+v, want %+v", i, grid.grid, o.Gridlines)
		}
		if !reflect.DeepEqual(coast.coast, o.Coastlines) {
			t.Errorf("surface %d coastline style = %+v, want %+v", i, coast.coast, o.Coastlines)
		}
	}
}

func TestSharedProjection(t *testing.T) {
	o := DefaultOptions()
	o.CentralLongitude = 180

	_, surfaces, err := QuickDrawGrid(2, 2, o)
	if err != nil {
		t.Fatalf("QuickDrawGrid: %v", err)
	}
	want := proj.PlateCarree{CentralLongitude: 180}
	for i, s := range surfaces {
		if s.Projection != want {
			t.Errorf("surface %d projection = %+v, want %+v", i, s.Projection, want)
		}
		if s.Projection == (proj.PlateCarree{}) {
			t.Errorf("surface %d got the default projection", i)
		}
	}
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if o.CentralLongitude != 0 {
		t.Errorf("CentralLongitude = %g, want 0", o.CentralLongitude)
	}
	if o.Gridlines.Color != colornames.Grey {
		t.Errorf("gridline color = %v, want grey", o.Gridlines.Color)
	}
	if o.Gridlines.Alpha != 0.5 {
		t.Errorf("gridline alpha = %g, want 0.5", o.Gridlines.Alpha)
	}
	if len(o.Gridlines.Dashes) == 0 {
		t.Error("gridlines are not dashed")
	}
	if o.Coastlines.EdgeColor != colornames.Black {
		t.Errorf("coastline color = %v, want black", o.Coastlines.EdgeColor)
	}
	if o.Coastlines.LineWidth != vg.Length(0.5) {
		t.Errorf("coastline width = %v, want 0.5", o.Coastlines.LineWidth)
	}
	want := map[Side]Axis{Bottom: AxisX, Left: AxisY}
	if got := o.Labels.sides(); !equalSides(got, want) {
		t.Errorf("default labels = %v, want %v", got, want)
	}
}

func TestLabelMapPassThrough(t *testing.T) {
	rec := &recordingDecorator{}
	o := DefaultOptions()
	o.Decorator = rec
	m := map[Side]Axis{Bottom: AxisX, Left: AxisY}
	o.Labels = LabelMap(m)

	if _, _, err := QuickDraw(o); err != nil {
		t.Fatalf("QuickDraw: %v", err)
	}
	got := rec.calls[0].labels
	if !reflect.DeepEqual(got, o.Labels) {
		t.Errorf("decorator received %+v, want %+v", got, o.Labels)
	}
	if !equalSides(got.sides(), m) {
		t.Errorf("received label map resolves to %v, want %v", got.sides(), m)
	}
}

func TestInvalidGrid(t *testing.T) {
	for _, grid := range [][2]int{{0, 3}, {3, 0}, {-1, 1}} {
		fig, surfaces, err := QuickDrawGrid(grid[0], grid[1], DefaultOptions())
		if err == nil {
			t.Errorf("QuickDrawGrid(%d, %d) succeeded, want error", grid[0], grid[1])
		}
		if fig != nil || surfaces != nil {
			t.Errorf("QuickDrawGrid(%d, %d) returned a partial result", grid[0], grid[1])
		}
	}
}

func TestDecorationErrorAborts(t *testing.T) {
	rec := &recordingDecorator{failGrid: 3}
	o := DefaultOptions()
	o.Decorator = rec

	_, _, err := QuickDrawGrid(2, 2, o)
	if err == nil {
		t.Fatal("QuickDrawGrid succeeded, want decoration error")
	}
	// Two surfaces fully decorated, the third aborted mid-decoration,
	// the fourth never touched.
	if g, c := rec.countOp("gridlines"), rec.countOp("coastlines"); g != 3 || c != 2 {
		t.Errorf("got %d gridline and %d coastline calls, want 3 and 2", g, c)
	}
}

func TestGonumDecoratorOrder(t *testing.T) {
	s := &Surface{}
	d := GonumDecorator{}
	if err := d.Gridlines(s, DefaultGridlineStyle(), LabelSpec{}); err != nil {
		t.Fatalf("Gridlines: %v", err)
	}
	if err := d.Coastlines(s, DefaultCoastlineStyle()); err != nil {
		t.Fatalf("Coastlines: %v", err)
	}
	if len(s.Overlays) != 2 {
		t.Fatalf("got %d overlays, want 2", len(s.Overlays))
	}
	if _, ok := s.Overlays[0].(Gridlines); !ok {
		t.Errorf("overlay 0 is %T, want Gridlines", s.Overlays[0])
	}
	if _, ok := s.Overlays[1].(Coastlines); !ok {
		t.Errorf("overlay 1 is %T, want Coastlines", s.Overlays[1])
	}
}
