package fire

import "wildfire-ca/internal/core"

// Grid holds the burn state of every cell plus the remaining burn time of
// Burning cells. Timers are zero for every other state.
type Grid struct {
	n      int
	states *core.ByteGrid
	timers []int
}

func newGrid(n int) *Grid {
	return &Grid{n: n, states: core.NewByteGrid(n, n), timers: make([]int, n*n)}
}

// Size returns the side length of the square grid.
func (g *Grid) Size() int { return g.n }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool { return g.states.InBounds(col, row) }

func (g *Grid) index(row, col int) int { return g.states.Index(col, row) }

// State returns the state at (row, col).
func (g *Grid) State(row, col int) CellState {
	return CellState(g.states.Cells()[g.index(row, col)])
}

// Timer returns the remaining burn time at (row, col).
func (g *Grid) Timer(row, col int) int { return g.timers[g.index(row, col)] }

func (g *Grid) stateAt(idx int) CellState { return CellState(g.states.Cells()[idx]) }

func (g *Grid) set(idx int, s CellState, timer int) {
	g.states.Cells()[idx] = uint8(s)
	g.timers[idx] = timer
}

func (g *Grid) copyFrom(src *Grid) {
	g.states.CopyFrom(src.states)
	copy(g.timers, src.timers)
}

func (g *Grid) clear() {
	g.states.Clear()
	for i := range g.timers {
		g.timers[i] = 0
	}
}

// Count returns how many cells are in state s.
func (g *Grid) Count(s CellState) int { return g.states.Count(uint8(s)) }

// Snapshot returns an immutable copy of the current states.
func (g *Grid) Snapshot() Snapshot {
	return Snapshot{n: g.n, cells: append([]uint8(nil), g.states.Cells()...)}
}

// Snapshot is a frozen copy of grid states at one step.
type Snapshot struct {
	n     int
	cells []uint8
}

// Size returns the side length of the snapshot.
func (s Snapshot) Size() int { return s.n }

// At returns the state at (row, col).
func (s Snapshot) At(row, col int) CellState { return CellState(s.cells[row*s.n+col]) }

// Cells exposes the row-major state bytes. Callers must not modify them.
func (s Snapshot) Cells() []uint8 { return s.cells }

// Rows returns the snapshot as a matrix of state codes.
func (s Snapshot) Rows() [][]uint8 {
	rows := make([][]uint8, s.n)
	for r := range rows {
		rows[r] = append([]uint8(nil), s.cells[r*s.n:(r+1)*s.n]...)
	}
	return rows
}

// Equal reports whether both snapshots hold identical states.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.n != o.n || len(s.cells) != len(o.cells) {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
