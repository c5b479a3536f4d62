// Package data contains the geographic datasets drawn by basemap
// overlays, currently a low resolution world coastline.
package data

import (
	"sync"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var (
	coastOnce sync.Once
	coast     []orb.LineString
)

// Coastline returns the world coastline as individual line segments.
// Longitudes are in [-180, 180] and latitudes in [-90, 90] degrees.
// The returned slice is shared, callers must not modify it.
func Coastline() []orb.LineString {
	coastOnce.Do(func() {
		fc, err := geojson.UnmarshalFeatureCollection([]byte(coastlineJSON))
		if err != nil {
			panic(err) // the dataset is compiled in, this cannot happen
		}
		for _, f := range fc.Features {
			switch g := f.Geometry.(type) {
			case orb.LineString:
				coast = append(coast, g)
			case orb.MultiLineString:
				coast = append(coast, g...)
			}
		}
	})
	return coast
}

// coastlineJSON is a heavily simplified world coastline. It is meant
// as a recognizable backdrop, not as an accurate shoreline.
const coastlineJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Americas"},
      "geometry": {
        "type": "LineString",
        "coordinates": [
          [-166, 66], [-152, 60], [-140, 60], [-131, 55], [-125, 49],
          [-124, 40], [-117, 33], [-110, 23], [-105, 20], [-95, 16],
          [-87, 13], [-84, 9], [-79, 9], [-77, 4], [-81, -5],
          [-70, -18], [-72, -37], [-74, -50], [-71, -54], [-65, -55],
          [-58, -51], [-48, -28], [-42, -23], [-35, -8], [-44, -3],
          [-50, 0], [-53, 5], [-61, 10], [-72, 12], [-77, 8],
          [-84, 10], [-90, 21], [-97, 26], [-90, 29], [-82, 28],
          [-80, 25], [-76, 35], [-70, 42], [-66, 45], [-60, 46],
          [-53, 47], [-57, 52], [-64, 60], [-78, 62], [-85, 66],
          [-81, 70], [-95, 72], [-110, 68], [-125, 70], [-140, 69],
          [-156, 71], [-166, 66]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Africa"},
      "geometry": {
        "type": "LineString",
        "coordinates": [
          [-6, 35], [3, 37], [10, 37], [20, 32], [32, 31],
          [34, 28], [43, 12], [51, 12], [41, -2], [40, -16],
          [35, -24], [32, -29], [20, -35], [18, -33], [12, -18],
          [14, -8], [9, 4], [6, 4], [-4, 5], [-8, 4],
          [-13, 9], [-17, 15], [-16, 21], [-10, 31], [-6, 35]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Eurasia"},
      "geometry": {
        "type": "MultiLineString",
        "coordinates": [
          [
            [-9, 43], [-9, 37], [-6, 36], [0, 39], [3, 43],
            [8, 44], [12, 42], [16, 40], [19, 42], [23, 36],
            [26, 39], [29, 41], [36, 36], [34, 28], [48, 30],
            [57, 25], [59, 23], [67, 24], [72, 20], [77, 8],
            [80, 13], [86, 21], [91, 22], [94, 16], [98, 8],
            [103, 1], [105, 10], [107, 16], [109, 21], [114, 22],
            [121, 31], [117, 39], [122, 40], [125, 39], [127, 35],
            [129, 42], [135, 43], [141, 53], [152, 59], [158, 52],
            [160, 61], [170, 60], [179, 63], [178, 66], [170, 70],
            [150, 72], [130, 72], [110, 74], [86, 74], [68, 69],
            [54, 69], [44, 68], [33, 69], [25, 71], [13, 68],
            [5, 62], [6, 58], [8, 54], [1, 51], [-2, 49],
            [-5, 48], [-9, 43]
          ],
          [
            [-5, 50], [2, 52], [0, 54], [-3, 58], [-7, 57],
            [-5, 53], [-5, 50]
          ],
          [
            [95, 5], [105, -6], [114, -8], [120, -9], [125, -9],
            [132, -1], [137, -2], [141, -3], [147, -6], [151, -10],
            [141, -8], [135, -4], [131, 0], [127, 1], [120, 0],
            [117, 5], [113, 4], [109, 2], [104, 1], [95, 5]
          ]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Australia"},
      "geometry": {
        "type": "LineString",
        "coordinates": [
          [114, -22], [122, -18], [130, -12], [137, -12], [142, -11],
          [146, -19], [153, -27], [150, -37], [140, -38], [131, -32],
          [124, -33], [115, -35], [114, -22]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Antarctica"},
      "geometry": {
        "type": "LineString",
        "coordinates": [
          [-180, -78], [-150, -76], [-120, -74], [-90, -73], [-60, -64],
          [-45, -78], [-30, -70], [0, -70], [30, -69], [60, -67],
          [90, -66], [120, -66], [150, -69], [170, -72], [180, -78]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Greenland"},
      "geometry": {
        "type": "LineString",
        "coordinates": [
          [-45, 60], [-40, 64], [-30, 68], [-22, 70], [-20, 75],
          [-32, 80], [-45, 82], [-60, 81], [-67, 77], [-55, 70],
          [-53, 66], [-45, 60]
        ]
      }
    }
  ]
}`
