// Package termview renders SSD1306-style display pages into a terminal, so
// the oledgfx demos run on a development host without any display hardware.
//
// Each terminal cell shows a 1x2 pixel pair using half-block glyphs. Arrow
// keys are translated into encoder events, Enter and Space into clicks, and
// Escape, q or Ctrl-C into a quit event, all delivered through an
// oledgfx.InputQueue drained by the demo's frame loop.
package termview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/etnassoft/oledgfx"
)

// View implements oledgfx.Transport on top of a tcell screen.
type View struct {
	screen tcell.Screen
	width  int
	height int
	queue  *oledgfx.InputQueue

	style tcell.Style
}

var _ oledgfx.Transport = (*View)(nil)

// New creates a terminal view for a width x height pixel display. Input
// events are pushed to queue, which may be nil when the caller does not
// care about keys.
func New(width, height int, queue *oledgfx.InputQueue) (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termview: %w", err)
	}
	v, err := newView(screen, width, height, queue)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	go v.eventLoop()
	return v, nil
}

// newView wires a View to an already initialized screen.
func newView(screen tcell.Screen, width, height int, queue *oledgfx.InputQueue) (*View, error) {
	if width <= 0 || height <= 0 || height%8 != 0 {
		return nil, fmt.Errorf("termview: invalid display size %dx%d", width, height)
	}
	return &View{
		screen: screen,
		width:  width,
		height: height,
		queue:  queue,
		style:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}, nil
}

// WriteCommand ignores controller commands; a terminal has no command set.
func (v *View) WriteCommand(cmd ...byte) error {
	return nil
}

// WritePage draws one page of display data into the terminal buffer. Call
// Flush after the last page of a frame to present it.
func (v *View) WritePage(page int, data []byte) error {
	if page < 0 || page >= v.height/8 {
		return fmt.Errorf("termview: page %d out of range", page)
	}
	if len(data) > v.width {
		return fmt.Errorf("termview: page data %d bytes exceeds width %d", len(data), v.width)
	}
	// A page holds 8 pixel rows, shown as 4 cell rows of half blocks.
	for x, b := range data {
		for half := 0; half < 4; half++ {
			top := b&(1<<(2*half)) != 0
			bottom := b&(1<<(2*half+1)) != 0
			v.screen.SetContent(x, page*4+half, blockRune(top, bottom), nil, v.style)
		}
	}
	return nil
}

// Flush presents everything drawn since the previous Flush.
func (v *View) Flush() {
	v.screen.Show()
}

// Close releases the terminal.
func (v *View) Close() {
	v.screen.Fini()
}

func blockRune(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}

// eventLoop translates key events into engine input events until the screen
// is finalized.
func (v *View) eventLoop() {
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if v.queue == nil {
			continue
		}
		if ev, ok := translateKey(key); ok {
			v.queue.Push(ev)
		}
	}
}

// translateKey maps a key press to an engine input event. Arrows act as the
// encoder, Enter and Space as the button.
func translateKey(key *tcell.EventKey) (oledgfx.Event, bool) {
	switch key.Key() {
	case tcell.KeyLeft, tcell.KeyUp:
		return oledgfx.Event{Delta: -1}, true
	case tcell.KeyRight, tcell.KeyDown:
		return oledgfx.Event{Delta: 1}, true
	case tcell.KeyEnter:
		return oledgfx.Event{Click: true}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return oledgfx.Event{Quit: true}, true
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			return oledgfx.Event{Click: true}, true
		case 'q', 'Q':
			return oledgfx.Event{Quit: true}, true
		}
	}
	return oledgfx.Event{}, false
}
