package termview

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/etnassoft/oledgfx"
)

func newSimView(t *testing.T, w, h int) (*View, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init: %v", err)
	}
	t.Cleanup(sim.Fini)

	v, err := newView(sim, w, h, nil)
	if err != nil {
		t.Fatalf("newView: %v", err)
	}
	return v, sim
}

func TestNewViewValidation(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init: %v", err)
	}
	defer sim.Fini()

	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"valid 128x64", 128, 64, false},
		{"valid 16x8", 16, 8, false},
		{"zero width", 0, 64, true},
		{"zero height", 16, 0, true},
		{"ragged height", 16, 12, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newView(sim, tt.w, tt.h, nil)
			if tt.wantErr && err == nil {
				t.Error("expected error but didn't get one")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestWritePageHalfBlocks(t *testing.T) {
	v, sim := newSimView(t, 16, 8)

	// 0x0F lights display rows 0..3: two full-block cell rows, two blank.
	// 0x01 lights only row 0: the top half of the first cell row.
	data := make([]byte, 16)
	data[0] = 0x0F
	data[1] = 0x01
	data[2] = 0x02 // row 1 only: bottom half of the first cell row
	if err := v.WritePage(0, data); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	v.Flush()

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '█'},
		{0, 1, '█'},
		{0, 2, ' '},
		{0, 3, ' '},
		{1, 0, '▀'},
		{1, 1, ' '},
		{2, 0, '▄'},
		{3, 0, ' '},
	}
	for _, tt := range tests {
		got, _, _, _ := sim.GetContent(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("cell (%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestWritePagePlacement(t *testing.T) {
	v, sim := newSimView(t, 16, 16)

	data := make([]byte, 16)
	data[5] = 0xFF
	if err := v.WritePage(1, data); err != nil {
		t.Fatalf("WritePage: %v", err)
	}
	v.Flush()

	// Page 1 occupies cell rows 4..7
	for row := 4; row < 8; row++ {
		got, _, _, _ := sim.GetContent(5, row)
		if got != '█' {
			t.Errorf("cell (5, %d) = %q, want full block", row, got)
		}
	}
	got, _, _, _ := sim.GetContent(5, 0)
	if got == '█' {
		t.Error("page 1 write must not touch page 0 rows")
	}
}

func TestWritePageErrors(t *testing.T) {
	v, _ := newSimView(t, 16, 8)

	if err := v.WritePage(-1, make([]byte, 16)); err == nil {
		t.Error("negative page should fail")
	}
	if err := v.WritePage(1, make([]byte, 16)); err == nil {
		t.Error("page past end should fail")
	}
	if err := v.WritePage(0, make([]byte, 17)); err == nil {
		t.Error("oversized page data should fail")
	}
}

func TestWriteCommandIgnored(t *testing.T) {
	v, _ := newSimView(t, 16, 8)
	if err := v.WriteCommand(0xAE, 0x81, 0x7F); err != nil {
		t.Errorf("WriteCommand: %v", err)
	}
}

func TestBlockRune(t *testing.T) {
	tests := []struct {
		top, bottom bool
		want        rune
	}{
		{false, false, ' '},
		{true, false, '▀'},
		{false, true, '▄'},
		{true, true, '█'},
	}
	for _, tt := range tests {
		if got := blockRune(tt.top, tt.bottom); got != tt.want {
			t.Errorf("blockRune(%v, %v) = %q, want %q", tt.top, tt.bottom, got, tt.want)
		}
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name   string
		key    tcell.Key
		r      rune
		want   oledgfx.Event
		wantOK bool
	}{
		{"left", tcell.KeyLeft, 0, oledgfx.Event{Delta: -1}, true},
		{"up", tcell.KeyUp, 0, oledgfx.Event{Delta: -1}, true},
		{"right", tcell.KeyRight, 0, oledgfx.Event{Delta: 1}, true},
		{"down", tcell.KeyDown, 0, oledgfx.Event{Delta: 1}, true},
		{"enter", tcell.KeyEnter, 0, oledgfx.Event{Click: true}, true},
		{"space", tcell.KeyRune, ' ', oledgfx.Event{Click: true}, true},
		{"escape", tcell.KeyEscape, 0, oledgfx.Event{Quit: true}, true},
		{"ctrl-c", tcell.KeyCtrlC, 0, oledgfx.Event{Quit: true}, true},
		{"q", tcell.KeyRune, 'q', oledgfx.Event{Quit: true}, true},
		{"Q", tcell.KeyRune, 'Q', oledgfx.Event{Quit: true}, true},
		{"unmapped rune", tcell.KeyRune, 'x', oledgfx.Event{}, false},
		{"unmapped key", tcell.KeyTab, 0, oledgfx.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := translateKey(tcell.NewEventKey(tt.key, tt.r, tcell.ModNone))
			if ok != tt.wantOK {
				t.Fatalf("translateKey ok = %v, want %v", ok, tt.wantOK)
			}
			if ev != tt.want {
				t.Errorf("translateKey = %+v, want %+v", ev, tt.want)
			}
		})
	}
}
