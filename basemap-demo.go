// +build ignore

package main

import (
	"os"

	"github.com/vdobler/basemap"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	o := basemap.DefaultOptions()
	o.CentralLongitude = 180
	o.Labels = basemap.Labels(true)

	fig, _, err := basemap.QuickDrawGrid(2, 2, o)
	if err != nil {
		panic(err)
	}
	fig.Title = "Pacific centered base maps"

	img := vgimg.New(800, 500)
	dc := draw.New(img)
	if err := fig.Draw(dc); err != nil {
		panic(err)
	}

	w, err := os.Create("basemap.png")
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
