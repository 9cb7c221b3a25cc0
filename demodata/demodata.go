// Package demodata carries the compiled-in tile sets, sprites, font and
// level maps shared by the oledgfx demo programs. Everything here is
// immutable content; the demos wire it into engines.
package demodata

import (
	"github.com/etnassoft/oledgfx"
)

// MapWidth is the column count of the bundled maps, matching the playfield
// of a 128-pixel-wide display (16 viewport columns plus the border).
const MapWidth = 18

// Tiles returns the shared demo tile atlas. Index 0 is empty, 1 is brick,
// 2 and 3 are solid fills; see the data file for the rest.
func Tiles() *oledgfx.TileAtlas {
	return mustTiles(tileData)
}

// Font returns the ASCII font as a tile atlas: glyph index = character code
// minus 32. Text rendered through it uses the exact same pipeline as any
// other tile background.
func Font() *oledgfx.TileAtlas {
	return mustTiles(fontData)
}

// FontIndex returns the font atlas index for ch, mapping characters outside
// 32..127 to space.
func FontIndex(ch byte) byte {
	if ch < 32 || ch > 127 {
		return 0
	}
	return ch - 32
}

// WriteString stamps s into the tile map starting at (row, col), one glyph
// index per cell, truncating at the right map edge.
func WriteString(m *oledgfx.TileMap, row, col int, s string) {
	for i := 0; i < len(s) && col+i < m.Width(); i++ {
		m.Set(row, col+i, FontIndex(s[i]))
	}
}

// Sprites returns the demo sprite atlas: the phantom as small sprite 0, the
// plumber as big sprite 0 and the four numbered test blocks as big sprites
// 1..4.
func Sprites() *oledgfx.SpriteAtlas {
	big := make([]byte, 0, len(marioData)+len(blockData))
	big = append(big, marioData...)
	big = append(big, blockData...)
	a, err := oledgfx.NewSpriteAtlas(phantomData, big)
	if err != nil {
		panic(err)
	}
	return a
}

// MountainMap returns the 29-row vertical-scroll level.
func MountainMap() *oledgfx.TileMap {
	m, err := oledgfx.NewTileMap(MapWidth, append([]byte(nil), mountainMap...))
	if err != nil {
		panic(err)
	}
	return m
}

// EmptyMap returns a writable all-empty map of the given height, MapWidth
// columns wide.
func EmptyMap(height int) *oledgfx.TileMap {
	m, err := oledgfx.NewTileMap(MapWidth, make([]byte, MapWidth*height))
	if err != nil {
		panic(err)
	}
	return m
}

// SideScrollMap returns the horizontal-scroll level: gradient sky bands on
// top, brick pillars at regular intervals and a solid floor with a gap.
func SideScrollMap() *oledgfx.TileMap {
	const height = 10
	m := EmptyMap(height)
	for col := 0; col < MapWidth; col++ {
		m.Set(0, col, 16) // dense gradient band
		m.Set(1, col, 17) // sparse gradient band
		m.Set(height-1, col, 4)
	}
	for _, col := range []int{0, 7, 15} {
		for row := 3; row < height-1; row++ {
			m.Set(row, col, 11)
		}
	}
	// Floor gap, as in the side-scroller level.
	m.Set(height-1, 12, 0)
	m.Set(height-1, 13, 0)
	return m
}

func mustTiles(data []byte) *oledgfx.TileAtlas {
	a, err := oledgfx.NewTileAtlas(data)
	if err != nil {
		panic(err)
	}
	return a
}
