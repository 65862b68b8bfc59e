package systems

import (
	"math"

	"github.com/pthm-cable/werm/geom"
)

// ObstacleGrid buckets obstacles by the cells their bounding circles touch so
// sensor casts only test obstacles near the caster.
type ObstacleGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]int // obstacle indices per cell
	rects    []geom.Rect

	// stamp dedups obstacles spanning several cells within one query.
	stamp []int
	query int
}

// NewObstacleGrid creates an empty grid covering a width x height world.
func NewObstacleGrid(width, height, cellSize float64) *ObstacleGrid {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols := int(width/cellSize) + 1
	rows := int(height/cellSize) + 1

	cells := make([][]int, cols*rows)
	for i := range cells {
		cells[i] = make([]int, 0, 4)
	}

	return &ObstacleGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// Rebuild replaces the grid contents with rects.
func (g *ObstacleGrid) Rebuild(rects []geom.Rect) {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
	g.rects = rects
	g.stamp = make([]int, len(rects))
	g.query = 0

	for i, r := range rects {
		c := r.Center()
		rad := r.BoundRadius()
		c0, r0 := g.cell(c.X-rad, c.Y-rad)
		c1, r1 := g.cell(c.X+rad, c.Y+rad)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				idx := row*g.cols + col
				g.cells[idx] = append(g.cells[idx], i)
			}
		}
	}
}

// Len returns the number of obstacles in the grid.
func (g *ObstacleGrid) Len() int {
	return len(g.rects)
}

// NearInto appends to dst every obstacle whose bounding circle comes within
// reach of pos and returns the slice. Order follows the cell walk; CastSensor
// does not depend on it. Reuse dst across calls to avoid allocations. A nil
// grid holds nothing.
func (g *ObstacleGrid) NearInto(dst []geom.Rect, pos geom.Vec, reach float64) []geom.Rect {
	if g == nil || len(g.rects) == 0 {
		return dst
	}
	g.query++

	c0, r0 := g.cell(pos.X-reach, pos.Y-reach)
	c1, r1 := g.cell(pos.X+reach, pos.Y+reach)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			for _, i := range g.cells[row*g.cols+col] {
				if g.stamp[i] == g.query {
					continue
				}
				g.stamp[i] = g.query
				r := g.rects[i]
				if geom.Distance(pos, r.Center()) <= reach+r.BoundRadius() {
					dst = append(dst, r)
				}
			}
		}
	}

	return dst
}

// cell returns the clamped column and row holding (x, y).
func (g *ObstacleGrid) cell(x, y float64) (int, int) {
	col := int(math.Floor(x / g.cellSize))
	row := int(math.Floor(y / g.cellSize))
	return min(max(col, 0), g.cols-1), min(max(row, 0), g.rows-1)
}
