package streetnet

import (
	"math"

	"github.com/wardrecon/boundary-engine/internal/geomath"
)

// defaultCellSizeDeg sizes grid cells at roughly 500m at mid-latitudes,
// small enough to keep bucket occupancy low without exploding cell count
// for a typical single-city street network.
const defaultCellSizeDeg = 0.005

type cellKey struct {
	x, y int
}

// grid is a simple uniform spatial hash over segment bounding boxes. It
// trades index-build cost for O(1)-ish bbox/near-point lookups, which is
// all §4.3's query surface needs for networks sized at a single city.
type grid struct {
	cellSize float64
	cells    map[cellKey][]int
}

func buildGrid(segments []StreetSegment, cellSize float64) *grid {
	g := &grid{cellSize: cellSize, cells: make(map[cellKey][]int)}
	for i, s := range segments {
		for _, k := range g.cellsForBBox(s.BBox) {
			g.cells[k] = append(g.cells[k], i)
		}
	}
	return g
}

func (g *grid) cellsForBBox(b geomath.BBox) []cellKey {
	minX := int(math.Floor(b.MinLon / g.cellSize))
	maxX := int(math.Floor(b.MaxLon / g.cellSize))
	minY := int(math.Floor(b.MinLat / g.cellSize))
	maxY := int(math.Floor(b.MaxLat / g.cellSize))

	keys := make([]cellKey, 0, (maxX-minX+1)*(maxY-minY+1))
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			keys = append(keys, cellKey{x, y})
		}
	}
	return keys
}

// candidates returns the deduplicated set of segment indices whose bbox
// overlaps the query bbox's covering cells.
func (g *grid) candidates(b geomath.BBox) []int {
	seen := make(map[int]bool)
	var out []int
	for _, k := range g.cellsForBBox(b) {
		for _, idx := range g.cells[k] {
			if !seen[idx] {
				seen[idx] = true
				out = append(out, idx)
			}
		}
	}
	return out
}
