package oledgfx

import (
	"errors"
	"testing"
)

// testMap builds a width-column map whose cell (row, col) holds a value
// unique per source position, so torus contents can be traced back to the
// map coordinates they came from.
func testMap(t *testing.T, width, height int) *TileMap {
	t.Helper()
	cells := make([]byte, width*height)
	for i := range cells {
		cells[i] = byte(i)
	}
	m, err := NewTileMap(width, cells)
	if err != nil {
		t.Fatalf("NewTileMap: %v", err)
	}
	return m
}

func TestNewTileMapValidation(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		cells   int
		wantErr bool
	}{
		{"valid 4x3", 4, 12, false},
		{"single row", 4, 4, false},
		{"zero width", 0, 12, true},
		{"negative width", -1, 12, true},
		{"empty cells", 4, 0, true},
		{"ragged rows", 4, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTileMap(tt.width, make([]byte, tt.cells))
			if tt.wantErr {
				if !errors.Is(err, ErrGeometry) {
					t.Errorf("NewTileMap error = %v, want ErrGeometry", err)
				}
				return
			}
			if err != nil {
				t.Errorf("NewTileMap unexpected error: %v", err)
			}
		})
	}
}

func TestTileMapRowWrap(t *testing.T) {
	m := testMap(t, 4, 3)

	tests := []struct {
		row, col int
		want     byte
	}{
		{0, 0, 0},
		{1, 2, 6},
		{2, 3, 11},
		{3, 0, 0},   // wraps to row 0
		{5, 1, 9},   // wraps to row 2
		{-1, 0, 8},  // negative wraps to last row
		{-3, 3, 3},  // full negative period
	}

	for _, tt := range tests {
		if got := m.At(tt.row, tt.col); got != tt.want {
			t.Errorf("At(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}

	m.Set(4, 1, 0xEE) // wraps to row 1
	if got := m.At(1, 1); got != 0xEE {
		t.Errorf("At(1, 1) after wrapped Set = %d, want 0xEE", got)
	}
}

func TestNewPlayfieldValidation(t *testing.T) {
	src := testMap(t, 6, 8)

	if _, err := NewPlayfield(0, 4, src); !errors.Is(err, ErrGeometry) {
		t.Errorf("zero rows error = %v, want ErrGeometry", err)
	}
	if _, err := NewPlayfield(4, 0, src); !errors.Is(err, ErrGeometry) {
		t.Errorf("zero cols error = %v, want ErrGeometry", err)
	}
	// src is 6 wide, playfield needs viewportCols+2
	if _, err := NewPlayfield(4, 6, src); !errors.Is(err, ErrGeometry) {
		t.Errorf("width mismatch error = %v, want ErrGeometry", err)
	}
	pf, err := NewPlayfield(4, 4, src)
	if err != nil {
		t.Fatalf("NewPlayfield: %v", err)
	}
	if pf.Rows() != 6 || pf.Cols() != 6 {
		t.Errorf("torus = %dx%d, want 6x6", pf.Rows(), pf.Cols())
	}
}

// checkSynced verifies that for the given scroll position every torus cell
// holds the tile the source map defines for its wrapped coordinate.
func checkSynced(t *testing.T, pf *Playfield, src *TileMap, scrollY int) {
	t.Helper()
	start := scrollY >> 3
	for y := start; y < start+pf.Rows(); y++ {
		for col := 0; col < pf.Cols(); col++ {
			if got, want := pf.Cell(y, col), src.At(y, col); got != want {
				t.Fatalf("scrollY=%d: Cell(%d, %d) = %d, want %d", scrollY, y, col, got, want)
			}
		}
	}
}

func TestPlayfieldReload(t *testing.T) {
	src := testMap(t, 6, 9)
	pf, err := NewPlayfield(4, 4, src)
	if err != nil {
		t.Fatalf("NewPlayfield: %v", err)
	}

	for _, scrollY := range []int{0, 8, 24, 64, 72, 128} {
		pf.Reload(scrollY)
		checkSynced(t, pf, src, scrollY)
	}
}

// TestPlayfieldIncrementalEqualsFull walks the scroll position in single
// pixel steps, patching only the edges, and checks this never diverges from
// a full reload. This is the property the whole torus scheme rests on.
func TestPlayfieldIncrementalEqualsFull(t *testing.T) {
	src := testMap(t, 6, 9) // height not a multiple of torus rows, the nasty case
	pf, err := NewPlayfield(4, 4, src)
	if err != nil {
		t.Fatalf("NewPlayfield: %v", err)
	}

	pf.Reload(0)
	for scrollY := 1; scrollY <= 4*9*8; scrollY++ {
		pf.AdjustEdges(scrollY)
		checkSynced(t, pf, src, scrollY)
	}
}

func TestPlayfieldSetCellTransient(t *testing.T) {
	src := testMap(t, 6, 9)
	pf, err := NewPlayfield(4, 4, src)
	if err != nil {
		t.Fatalf("NewPlayfield: %v", err)
	}
	pf.Reload(0)

	pf.SetCell(2, 3, 0xAA)
	if got := pf.Cell(2, 3); got != 0xAA {
		t.Fatalf("Cell(2, 3) = %d, want 0xAA", got)
	}
	// Interior rows survive edge adjustment
	pf.AdjustEdges(8)
	if got := pf.Cell(2, 3); got != 0xAA {
		t.Errorf("Cell(2, 3) after AdjustEdges = %d, want 0xAA", got)
	}
	// A full reload restores the source value
	pf.Reload(0)
	if got, want := pf.Cell(2, 3), src.At(2, 3); got != want {
		t.Errorf("Cell(2, 3) after Reload = %d, want %d", got, want)
	}
}

func TestPlayfieldCellWraps(t *testing.T) {
	src := testMap(t, 6, 9)
	pf, err := NewPlayfield(4, 4, src)
	if err != nil {
		t.Fatalf("NewPlayfield: %v", err)
	}
	pf.Reload(0)

	if got, want := pf.Cell(6, 0), pf.Cell(0, 0); got != want {
		t.Errorf("Cell(6, 0) = %d, want wrapped value %d", got, want)
	}
	if got, want := pf.Cell(0, -1), pf.Cell(0, 5); got != want {
		t.Errorf("Cell(0, -1) = %d, want wrapped value %d", got, want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		a, n, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{13, 5, 3},
		{-1, 5, 4},
		{-5, 5, 0},
		{-13, 5, 2},
	}
	for _, tt := range tests {
		if got := wrap(tt.a, tt.n); got != tt.want {
			t.Errorf("wrap(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}
