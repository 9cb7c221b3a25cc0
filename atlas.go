package oledgfx

import (
	"errors"
	"fmt"
)

// Tile geometry shared by every atlas: glyphs are 8x8 pixels stored as 8
// column bytes, bit 0 on top (SSD1306 page orientation).
const (
	// TileSize is the edge length, in pixels, of a background tile.
	TileSize = 8

	smallSpriteBytes = 2 * TileSize // 8 mask bytes + 8 pattern bytes
	bigSpriteBytes   = 8 * TileSize // 32 mask bytes + 32 pattern bytes
)

var (
	// ErrIndexOutOfRange is returned when a tile or sprite index exceeds
	// the bounds of its atlas.
	ErrIndexOutOfRange = errors.New("oledgfx: index out of range")

	// ErrGeometry is returned for dimension mismatches detected at
	// initialization. It is never returned during steady-state rendering.
	ErrGeometry = errors.New("oledgfx: geometry invariant violation")
)

// TileAtlas is an immutable table of 8x8 1-bpp glyph bitmaps addressed by an
// 8-bit index. Each glyph is 8 column bytes in display page orientation.
type TileAtlas struct {
	data []byte
}

// NewTileAtlas wraps data as a tile atlas. The data is not copied; callers
// must not mutate it once the atlas is in use.
func NewTileAtlas(data []byte) (*TileAtlas, error) {
	if len(data) == 0 || len(data)%TileSize != 0 {
		return nil, fmt.Errorf("%w: tile data must be a positive multiple of %d bytes, got %d",
			ErrGeometry, TileSize, len(data))
	}
	return &TileAtlas{data: data}, nil
}

// Len returns the number of glyphs in the atlas.
func (a *TileAtlas) Len() int {
	return len(a.data) / TileSize
}

// Tile returns the 8 column bytes of the glyph at index. The returned slice
// aliases the atlas data and must be treated as read-only.
func (a *TileAtlas) Tile(index byte) []byte {
	off := int(index) * TileSize
	return a.data[off : off+TileSize]
}

// SpriteAtlas is an immutable table of mask/pattern sprite bitmaps. Small
// sprites are 8x8: 8 mask bytes followed by 8 pattern bytes. Big sprites are
// 16x16: 16 top-half mask bytes, 16 bottom-half mask bytes, then the pattern
// halves in the same order.
type SpriteAtlas struct {
	small []byte
	big   []byte
}

// NewSpriteAtlas wraps the small and big sprite tables. Either table may be
// empty. The data is not copied.
func NewSpriteAtlas(small, big []byte) (*SpriteAtlas, error) {
	if len(small)%smallSpriteBytes != 0 {
		return nil, fmt.Errorf("%w: small sprite data must be a multiple of %d bytes, got %d",
			ErrGeometry, smallSpriteBytes, len(small))
	}
	if len(big)%bigSpriteBytes != 0 {
		return nil, fmt.Errorf("%w: big sprite data must be a multiple of %d bytes, got %d",
			ErrGeometry, bigSpriteBytes, len(big))
	}
	return &SpriteAtlas{small: small, big: big}, nil
}

// SmallLen returns the number of 8x8 sprites.
func (a *SpriteAtlas) SmallLen() int {
	return len(a.small) / smallSpriteBytes
}

// BigLen returns the number of 16x16 sprites.
func (a *SpriteAtlas) BigLen() int {
	return len(a.big) / bigSpriteBytes
}

// Small returns the 16 bytes (mask, then pattern) of the 8x8 sprite at index.
func (a *SpriteAtlas) Small(index byte) []byte {
	off := int(index) * smallSpriteBytes
	return a.small[off : off+smallSpriteBytes]
}

// Big returns the 64 bytes of the 16x16 sprite at index: top mask, bottom
// mask, top pattern, bottom pattern, 16 bytes each.
func (a *SpriteAtlas) Big(index byte) []byte {
	off := int(index) * bigSpriteBytes
	return a.big[off : off+bigSpriteBytes]
}
