package oledgfx

import (
	"fmt"
	"image"

	"github.com/etnassoft/oledgfx/image1bit"
)

// Transport pushes finished page bytes to a display controller. WritePage is
// fire-and-forget from the engine's point of view: the engine renders one
// strip, hands it over, and moves on to the next.
type Transport interface {
	// WriteCommand sends raw controller command bytes.
	WriteCommand(cmd ...byte) error
	// WritePage writes one 8-pixel-tall strip of display data. The page
	// index counts strips from the top of the display.
	WritePage(page int, data []byte) error
}

// Opts configures an Engine.
type Opts struct {
	// Display dimensions in pixels. Defaults: 128x64. The height must be a
	// multiple of 8; the width may be any positive value, including widths
	// that are not tile aligned.
	W int
	H int

	// Tiles is the background glyph atlas. Required.
	Tiles *TileAtlas

	// Sprites is the sprite atlas. Optional when no objects are drawn.
	Sprites *SpriteAtlas

	// Map is the source tile map the playfield slides over. Its width must
	// equal the viewport column count plus the border columns. Required.
	Map *TileMap

	// Objects is the object list capacity. Default: 16.
	Objects int
}

// Engine renders a scrolling tile playfield with overlaid sprites, one
// 8-pixel-tall strip at a time, into a Transport. It owns all render state
// explicitly; there are no package globals, so several engines can coexist.
//
// The engine is not safe for concurrent use. Input handlers must not mutate
// scroll positions or objects while a render pass runs; queue changes (see
// InputQueue) and apply them between frames.
type Engine struct {
	width, height int
	pages         int // viewport rows, one per display page

	tiles     *TileAtlas
	sprites   *SpriteAtlas
	playfield *Playfield
	objects   *ObjectList
	transport Transport

	strip []byte // scratch strip buffer, reused across pages
}

// NewEngine validates the geometry and builds an engine writing to t. All
// dimension mismatches surface here, never during steady-state rendering.
func NewEngine(t Transport, opts *Opts) (*Engine, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil transport", ErrGeometry)
	}
	if opts == nil {
		opts = &Opts{}
	}
	w, h := opts.W, opts.H
	if w == 0 && h == 0 {
		w, h = 128, 64
	}
	if w <= 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrGeometry, w)
	}
	if h <= 0 || h%TileSize != 0 {
		return nil, fmt.Errorf("%w: height must be a positive multiple of %d, got %d",
			ErrGeometry, TileSize, h)
	}
	if opts.Tiles == nil {
		return nil, fmt.Errorf("%w: tile atlas is required", ErrGeometry)
	}
	if opts.Map == nil {
		return nil, fmt.Errorf("%w: tile map is required", ErrGeometry)
	}
	for row := 0; row < opts.Map.Height(); row++ {
		for col := 0; col < opts.Map.Width(); col++ {
			if int(opts.Map.At(row, col)) >= opts.Tiles.Len() {
				return nil, fmt.Errorf("%w: tile map cell (%d,%d) is %d, atlas holds %d tiles",
					ErrIndexOutOfRange, row, col, opts.Map.At(row, col), opts.Tiles.Len())
			}
		}
	}

	viewportCols := (w + TileSize - 1) / TileSize
	pages := h / TileSize
	pf, err := NewPlayfield(pages, viewportCols, opts.Map)
	if err != nil {
		return nil, err
	}

	capacity := opts.Objects
	if capacity == 0 {
		capacity = 16
	}

	return &Engine{
		width:     w,
		height:    h,
		pages:     pages,
		tiles:     opts.Tiles,
		sprites:   opts.Sprites,
		playfield: pf,
		objects:   NewObjectList(capacity),
		transport: t,
		strip:     make([]byte, w),
	}, nil
}

// Bounds returns the display bounds in pixels.
func (e *Engine) Bounds() image.Rectangle {
	return image.Rect(0, 0, e.width, e.height)
}

// Pages returns the number of 8-pixel-tall strips the display is divided
// into.
func (e *Engine) Pages() int {
	return e.pages
}

// Playfield returns the engine's torus buffer for direct control (forced
// reloads, transient cell pokes).
func (e *Engine) Playfield() *Playfield {
	return e.playfield
}

// Objects returns the engine's sprite instance list.
func (e *Engine) Objects() *ObjectList {
	return e.objects
}

// DrawPlayfield renders the complete frame at the given pixel scroll
// position: it patches the playfield edges, then renders and transmits each
// strip in page order. One call runs to completion before the next begins;
// there is no buffering of whole frames.
func (e *Engine) DrawPlayfield(scrollX, scrollY int) error {
	e.playfield.AdjustEdges(scrollY)
	for page := 0; page < e.pages; page++ {
		if err := e.DrawStrip(page, scrollX, scrollY, e.strip); err != nil {
			return err
		}
		if err := e.transport.WritePage(page, e.strip); err != nil {
			return fmt.Errorf("oledgfx: page %d: %w", page, err)
		}
	}
	return nil
}

// DrawStrip renders one strip into dst, which must hold at least the display
// width. The strip is rebuilt from scratch: background tiles first, then all
// visible sprites in list order.
func (e *Engine) DrawStrip(page, scrollX, scrollY int, dst []byte) error {
	if page < 0 || page >= e.pages {
		return fmt.Errorf("%w: page %d of %d", ErrIndexOutOfRange, page, e.pages)
	}
	if len(dst) < e.width {
		return fmt.Errorf("%w: strip buffer %d bytes, need %d", ErrGeometry, len(dst), e.width)
	}
	dst = dst[:e.width]
	for i := range dst {
		dst[i] = 0
	}

	xOff := scrollX & 7
	yOff := uint(scrollY & 7)
	ty := (scrollY >> 3) + page
	tx := scrollX >> 3

	// Column fill: the first column starts at the sub-tile bit offset, the
	// middle columns are whole tiles, and a trailing partial column takes
	// the leading bytes of the next tile when the offset pushed the last
	// full tile past the right edge.
	pos := 0
	off := xOff
	for pos < e.width {
		n := TileSize - off
		if n > e.width-pos {
			n = e.width - pos
		}
		cur, err := e.tileBytes(e.playfield.Cell(ty, tx))
		if err != nil {
			return err
		}
		if yOff == 0 {
			copy(dst[pos:pos+n], cur[off:off+n])
		} else {
			next, err := e.tileBytes(e.playfield.Cell(ty+1, tx))
			if err != nil {
				return err
			}
			for z := 0; z < n; z++ {
				dst[pos+z] = cur[off+z]>>yOff | next[off+z]<<(8-yOff)
			}
		}
		pos += n
		off = 0
		tx++
	}

	return e.drawSprites(page*TileSize, dst)
}

// Render composites the complete frame into img at the given scroll
// position instead of transmitting it, reusing the strip renderer. The image
// must match the display dimensions. Useful for host-side inspection and
// tests.
func (e *Engine) Render(img *image1bit.VerticalLSB, scrollX, scrollY int) error {
	if img.Bounds().Dx() != e.width || img.Bounds().Dy() != e.height {
		return fmt.Errorf("%w: image %dx%d, display %dx%d",
			ErrGeometry, img.Bounds().Dx(), img.Bounds().Dy(), e.width, e.height)
	}
	e.playfield.AdjustEdges(scrollY)
	for page := 0; page < e.pages; page++ {
		if err := e.DrawStrip(page, scrollX, scrollY, img.Page(page)); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) tileBytes(index byte) ([]byte, error) {
	if int(index) >= e.tiles.Len() {
		return nil, fmt.Errorf("%w: tile %d, atlas holds %d", ErrIndexOutOfRange, index, e.tiles.Len())
	}
	return e.tiles.Tile(index), nil
}
