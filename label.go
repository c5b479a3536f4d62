package basemap

// ----------------------------------------------------------------------------
// Label selection

// Axis identifies one of the two geographic coordinates.
type Axis int

const (
	// AxisX selects longitude labels.
	AxisX Axis = iota
	// AxisY selects latitude labels.
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Side identifies one edge of a map surface.
type Side int

const (
	Top Side = iota
	Bottom
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// A Token selects sides and/or coordinates in LabelTokens.
type Token string

const (
	TokenX      Token = "x"
	TokenY      Token = "y"
	TokenTop    Token = "top"
	TokenBottom Token = "bottom"
	TokenLeft   Token = "left"
	TokenRight  Token = "right"
	// TokenGeo selects labels along a curved map boundary. The Plate
	// Carree boundary is rectangular, so it selects nothing here and
	// is accepted only for compatibility.
	TokenGeo Token = "geo"
)

type labelKind int

const (
	labelDefault labelKind = iota
	labelAxis
	labelAll
	labelTokens
	labelMap
)

// A LabelSpec selects which graticule labels are drawn and on which
// surface edges. It is a union of four shapes, built by one of the
// constructors LabelAxis, Labels, LabelTokens or LabelMap. The zero
// value selects the default: longitude labels on the bottom edge and
// latitude labels on the left edge.
//
// Longitude labels only ever appear on the top and bottom edges and
// latitude labels only on the left and right edges.
type LabelSpec struct {
	kind    labelKind
	axis    Axis
	all     bool
	tokens  []Token
	sideMap map[Side]Axis
}

// LabelAxis draws only the labels of the given coordinate, on its
// natural edges: bottom and top for AxisX, left and right for AxisY.
func LabelAxis(a Axis) LabelSpec {
	return LabelSpec{kind: labelAxis, axis: a}
}

// Labels draws labels on all four edges (on true) or none at all
// (on false).
func Labels(on bool) LabelSpec {
	return LabelSpec{kind: labelAll, all: on}
}

// LabelTokens draws labels selected by side and/or coordinate tokens.
// Side tokens select edges, coordinate tokens restrict which
// coordinate is labeled. Without any side token all four edges are
// candidates, without any coordinate token each selected edge shows
// its natural coordinate.
func LabelTokens(tokens ...Token) LabelSpec {
	return LabelSpec{kind: labelTokens, tokens: tokens}
}

// LabelMap draws exactly the given edge to coordinate assignment. The
// map is forwarded to the decorator unmodified.
func LabelMap(m map[Side]Axis) LabelSpec {
	return LabelSpec{kind: labelMap, sideMap: m}
}

// naturalAxis returns the coordinate conventionally labeled on s.
func naturalAxis(s Side) Axis {
	if s == Top || s == Bottom {
		return AxisX
	}
	return AxisY
}

// sides resolves the selector into an edge to coordinate assignment.
// Only the gonum backed decorator resolves a LabelSpec, injected
// decorators receive the spec value itself.
func (l LabelSpec) sides() map[Side]Axis {
	switch l.kind {
	case labelAxis:
		if l.axis == AxisX {
			return map[Side]Axis{Bottom: AxisX, Top: AxisX}
		}
		return map[Side]Axis{Left: AxisY, Right: AxisY}

	case labelAll:
		if !l.all {
			return nil
		}
		return map[Side]Axis{Bottom: AxisX, Top: AxisX, Left: AxisY, Right: AxisY}

	case labelTokens:
		sides := make(map[Side]bool)
		axes := make(map[Axis]bool)
		for _, t := range l.tokens {
			switch t {
			case TokenX:
				axes[AxisX] = true
			case TokenY:
				axes[AxisY] = true
			case TokenTop:
				sides[Top] = true
			case TokenBottom:
				sides[Bottom] = true
			case TokenLeft:
				sides[Left] = true
			case TokenRight:
				sides[Right] = true
			case TokenGeo:
				// No curved boundary on a rectangular projection.
			}
		}
		if len(sides) == 0 {
			sides = map[Side]bool{Top: true, Bottom: true, Left: true, Right: true}
		}
		m := make(map[Side]Axis)
		for s := range sides {
			a := naturalAxis(s)
			if len(axes) > 0 && !axes[a] {
				continue
			}
			m[s] = a
		}
		return m

	case labelMap:
		return l.sideMap

	default:
		return map[Side]Axis{Bottom: AxisX, Left: AxisY}
	}
}
