package oledgfx

import "fmt"

// bigFlag marks a 16x16 sprite in an Object's Type byte; the low 7 bits are
// the atlas index.
const bigFlag = 0x80

// Object is one sprite instance: a screen position and a type byte. Gameplay
// code mutates objects between render passes; during a pass they are
// read-only.
type Object struct {
	X, Y byte
	Type byte
}

// Big reports whether the object uses a 16x16 sprite.
func (o Object) Big() bool {
	return o.Type&bigFlag != 0
}

// Index returns the object's sprite atlas index.
func (o Object) Index() byte {
	return o.Type &^ bigFlag
}

// Height returns the sprite height in pixels.
func (o Object) Height() int {
	if o.Big() {
		return 2 * TileSize
	}
	return TileSize
}

// ObjectList is a fixed-capacity ordered collection of sprite instances.
// Objects draw in list order, so later entries appear on top.
type ObjectList struct {
	objs []Object
}

// NewObjectList returns an empty list that can hold up to capacity objects.
func NewObjectList(capacity int) *ObjectList {
	return &ObjectList{objs: make([]Object, 0, capacity)}
}

// Add appends an object and returns a pointer to the stored copy for later
// mutation. It fails when the list is full.
func (l *ObjectList) Add(o Object) (*Object, error) {
	if len(l.objs) == cap(l.objs) {
		return nil, fmt.Errorf("oledgfx: object list full (capacity %d)", cap(l.objs))
	}
	l.objs = append(l.objs, o)
	return &l.objs[len(l.objs)-1], nil
}

// Len returns the number of stored objects.
func (l *ObjectList) Len() int {
	return len(l.objs)
}

// At returns a pointer to the i-th object.
func (l *ObjectList) At(i int) *Object {
	return &l.objs[i]
}

// Reset empties the list without releasing its capacity.
func (l *ObjectList) Reset() {
	l.objs = l.objs[:0]
}

// drawSprites composites every visible object onto the strip starting at
// vertical pixel offset stripY (a multiple of 8). Strip bytes are in page
// orientation; the per-column rule is dst = (dst AND mask) OR pattern.
func (e *Engine) drawSprites(stripY int, strip []byte) error {
	for i := 0; i < e.objects.Len(); i++ {
		o := e.objects.At(i)
		sx, sy := int(o.X), int(o.Y)
		if sy >= stripY+TileSize { // past strip bottom
			continue
		}
		if sy+o.Height() <= stripY { // above strip top
			continue
		}
		if sx >= e.width { // off right edge
			continue
		}
		var err error
		if o.Big() {
			err = e.drawBigSprite(o, stripY, strip)
		} else {
			err = e.drawSmallSprite(o, stripY, strip)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// drawSmallSprite composites an 8x8 mask/pattern sprite. With a sub-tile
// vertical offset the sprite spans two strips, and only one shift direction
// applies per strip: left when the sprite starts below the strip top, right
// when it started in the strip above.
func (e *Engine) drawSmallSprite(o *Object, stripY int, strip []byte) error {
	idx := int(o.Index())
	if e.sprites == nil || idx >= e.sprites.SmallLen() {
		return fmt.Errorf("%w: small sprite %d", ErrIndexOutOfRange, idx)
	}
	src := e.sprites.Small(o.Index())
	sx, sy := int(o.X), int(o.Y)
	yOff := uint(sy & 7)

	width := TileSize
	if e.width-sx < width {
		width = e.width - sx
	}
	dst := strip[sx:]

	for x := 0; x < width; x++ {
		mask := src[x]
		pat := src[TileSize+x]
		if yOff != 0 {
			if sy > stripY {
				mask = mask<<yOff | 0xff>>(8-yOff) // exposed bits stay transparent
				pat <<= yOff
			} else {
				mask = mask>>(8-yOff) | 0xff<<yOff
				pat >>= 8 - yOff
			}
		}
		dst[x] = dst[x]&mask | pat
	}
	return nil
}

// drawBigSprite composites a 16x16 mask/pattern sprite. The bitmap is stored
// as four 16-byte blocks: top mask, bottom mask, top pattern, bottom
// pattern. Four cases apply per strip: byte aligned, bottom half only, top
// half only, or both halves shifted into the same strip.
func (e *Engine) drawBigSprite(o *Object, stripY int, strip []byte) error {
	idx := int(o.Index())
	if e.sprites == nil || idx >= e.sprites.BigLen() {
		return fmt.Errorf("%w: big sprite %d", ErrIndexOutOfRange, idx)
	}
	src := e.sprites.Big(o.Index())
	sx, sy := int(o.X), int(o.Y)
	yOff := uint(sy & 7)

	width := 2 * TileSize
	if e.width-sx < width {
		width = e.width - sx
	}
	dst := strip[sx:]

	const (
		topMask    = 0
		bottomMask = 16
		topPat     = 32
		bottomPat  = 48
	)

	switch {
	case yOff == 0:
		// Byte aligned: one source row per strip, no shifting.
		half := topMask
		if sy+TileSize <= stripY {
			half = bottomMask
		}
		for x := 0; x < width; x++ {
			dst[x] = dst[x]&src[half+x] | src[half+topPat+x]
		}
	case sy+TileSize < stripY:
		// Top half clipped above: bottom half shifted down into the strip.
		for x := 0; x < width; x++ {
			mask := src[bottomMask+x]>>(8-yOff) | 0xff<<yOff
			dst[x] = dst[x]&mask | src[bottomPat+x]>>(8-yOff)
		}
	case sy > stripY:
		// Bottom half clipped below: top half shifted up within the strip.
		for x := 0; x < width; x++ {
			mask := src[topMask+x]<<yOff | 0xff>>(8-yOff)
			dst[x] = dst[x]&mask | src[topPat+x]<<yOff
		}
	default:
		// Both halves land on this strip; their shifted bits are disjoint,
		// so masks and patterns combine with OR before compositing.
		for x := 0; x < width; x++ {
			mask := src[topMask+x]>>(8-yOff) | src[bottomMask+x]<<yOff
			pat := src[topPat+x]>>(8-yOff) | src[bottomPat+x]<<yOff
			dst[x] = dst[x]&mask | pat
		}
	}
	return nil
}
