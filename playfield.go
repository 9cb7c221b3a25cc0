package oledgfx

import "fmt"

// Edges is the number of extra tile rows and columns kept around the visible
// viewport so that partially scrolled tiles can be drawn at every border.
const Edges = 2

// TileMap is the read-only source grid of tile indices that a Playfield
// slides over. Its width must match the playfield column count; its height is
// arbitrary, and row reads wrap modulo the height so a short map repeats.
type TileMap struct {
	width int
	cells []byte
}

// NewTileMap wraps cells as a width-column tile map. The data is row-major
// and is not copied.
func NewTileMap(width int, cells []byte) (*TileMap, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: tile map width must be positive, got %d", ErrGeometry, width)
	}
	if len(cells) == 0 || len(cells)%width != 0 {
		return nil, fmt.Errorf("%w: tile map data length %d is not a positive multiple of width %d",
			ErrGeometry, len(cells), width)
	}
	return &TileMap{width: width, cells: cells}, nil
}

// Width returns the number of columns.
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *TileMap) Height() int {
	return len(m.cells) / m.width
}

// At returns the tile index at (row, col). The row wraps modulo the map
// height; the column must be within the map width.
func (m *TileMap) At(row, col int) byte {
	return m.row(row)[col]
}

// Set writes the tile index at (row, col), wrapping the row like At. Level
// authors use this to compose maps before (or between) renders; the engine
// itself never writes to the map.
func (m *TileMap) Set(row, col int, tile byte) {
	m.row(row)[col] = tile
}

func (m *TileMap) row(y int) []byte {
	off := wrap(y, m.Height()) * m.width
	return m.cells[off : off+m.width]
}

// Playfield is a torus buffer of tile indices covering the viewport plus a
// one-tile border on each side. It is a sliding, periodically patched cache
// of the source tile map: for any scroll position every cell holds the tile
// the map defines for its wrapped source coordinate.
type Playfield struct {
	rows, cols int
	cells      []byte
	src        *TileMap
}

// NewPlayfield builds a torus sized viewportRows+Edges by viewportCols+Edges
// over src, whose width must equal the torus column count.
func NewPlayfield(viewportRows, viewportCols int, src *TileMap) (*Playfield, error) {
	if viewportRows <= 0 || viewportCols <= 0 {
		return nil, fmt.Errorf("%w: viewport must be at least 1x1 tiles, got %dx%d",
			ErrGeometry, viewportCols, viewportRows)
	}
	rows, cols := viewportRows+Edges, viewportCols+Edges
	if src.Width() != cols {
		return nil, fmt.Errorf("%w: tile map width %d does not match playfield columns %d",
			ErrGeometry, src.Width(), cols)
	}
	return &Playfield{
		rows:  rows,
		cols:  cols,
		cells: make([]byte, rows*cols),
		src:   src,
	}, nil
}

// Rows returns the torus row count (viewport rows plus edges).
func (p *Playfield) Rows() int {
	return p.rows
}

// Cols returns the torus column count (viewport columns plus edges).
func (p *Playfield) Cols() int {
	return p.cols
}

// Reload fully resynchronizes the torus with the source map for the given
// vertical scroll position: every torus row takes the wrapped source row it
// represents. Used at level start and after a scroll wrap-around reset.
func (p *Playfield) Reload(scrollY int) {
	start := scrollY >> 3
	for y := 0; y < p.rows; y++ {
		copy(p.rowSlice(start+y), p.src.row(start+y))
	}
}

// AdjustEdges incrementally resynchronizes the torus after the scroll
// position moved: only the current top row and the incoming bottom border
// row are refreshed, O(cols) instead of O(rows*cols). Stepping scrollY one
// tile at a time and calling AdjustEdges keeps the torus identical to a
// fresh Reload at each position.
func (p *Playfield) AdjustEdges(scrollY int) {
	top := scrollY >> 3
	bottom := top + p.rows - 1
	copy(p.rowSlice(top), p.src.row(top))
	copy(p.rowSlice(bottom), p.src.row(bottom))
}

// Cell returns the tile index at (row, col), wrapping both coordinates
// modulo the torus dimensions.
func (p *Playfield) Cell(row, col int) byte {
	return p.cells[wrap(row, p.rows)*p.cols+wrap(col, p.cols)]
}

// SetCell writes a tile index directly into the torus, wrapping like Cell.
// The write is transient: the next Reload or AdjustEdges pass over that row
// restores the source map's value.
func (p *Playfield) SetCell(row, col int, tile byte) {
	p.cells[wrap(row, p.rows)*p.cols+wrap(col, p.cols)] = tile
}

func (p *Playfield) rowSlice(row int) []byte {
	off := wrap(row, p.rows) * p.cols
	return p.cells[off : off+p.cols]
}

// wrap reduces a modulo n into [0, n), also for negative a.
func wrap(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
