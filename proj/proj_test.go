package proj

import (
	"strconv"
	"testing"
)

var projectTests = []struct {
	central      float64
	lon, lat     float64
	wantX, wantY float64
}{
	{0, 0, 0, 0, 0},
	{0, 120, 45, 120, 45},
	{0, -180, -90, -180, -90},
	{0, 180, 0, -180, 0},
	{0, 190, 10, -170, 10},
	{0, -350, 0, 10, 0},
	{0, 0, 95, 0, 90},
	{0, 0, -95, 0, -90},
	{180, 180, 10, 0, 10},
	{180, 0, 0, -180, 0},
	{180, -170, 0, 10, 0},
	{180, 90, -30, -90, -30},
	{-90, -100, -30, -10, -30},
	{-90, 170, 0, -100, 0},
	{30, 30, 60, 0, 60},
}

func TestPlateCarreeProject(t *testing.T) {
	for i, tc := range projectTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			p := PlateCarree{CentralLongitude: tc.central}
			x, y := p.Project(tc.lon, tc.lat)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("PlateCarree{%g}.Project(%g, %g) = (%g, %g), want (%g, %g)",
					tc.central, tc.lon, tc.lat, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPlateCarreeInvert(t *testing.T) {
	for i, tc := range projectTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			p := PlateCarree{CentralLongitude: tc.central}
			lon, lat := p.Invert(tc.wantX, tc.wantY)
			x, y := p.Project(lon, lat)
			if x != tc.wantX || y != tc.wantY {
				t.Errorf("round trip of (%g, %g) through PlateCarree{%g} gave (%g, %g)",
					tc.wantX, tc.wantY, tc.central, x, y)
			}
		})
	}
}
