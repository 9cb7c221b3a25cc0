// Package oledgfx renders scrolling tile playfields with overlaid sprites on
// SSD1306-class monochrome OLED displays.
//
// The engine targets page-mode controllers: the display is divided into
// 8-pixel-tall horizontal strips ("pages"), and each byte of display data is
// a vertical column of 8 pixels with bit 0 at the top. Frames are rendered
// one strip at a time into a small reusable buffer, so a full frame never
// exists in memory. This keeps the working set tiny even on large maps.
//
// # Rendering Model
//
// A frame is composed from three inputs:
//
//   - A TileAtlas of 8x8 background glyphs, 8 bytes each.
//   - A TileMap of glyph indices that the viewport slides over. The map may
//     be taller than the screen; vertical coordinates wrap, so the map is
//     periodic.
//   - An ObjectList of sprite instances, drawn over the background with
//     mask/pattern compositing (dst = dst&mask | pattern).
//
// The engine keeps a Playfield, a torus-shaped cache of the visible map
// window plus a one-tile border on every side. Smooth scrolling reads the
// border cells for the sub-tile remainder; AdjustEdges refreshes only the
// two edge rows as the scroll position moves, so steady-state scrolling
// touches a handful of cells per frame.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//
//		"github.com/etnassoft/oledgfx"
//		"github.com/etnassoft/oledgfx/demodata"
//		"github.com/etnassoft/oledgfx/ssd1306"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I2C bus
//		bus, _ := i2creg.Open("")
//
//		// Create device
//		dev, err := ssd1306.NewI2C(bus, &ssd1306.Opts{W: 128, H: 64})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		engine, err := oledgfx.NewEngine(dev, &oledgfx.Opts{
//			Tiles: demodata.Tiles(),
//			Map:   demodata.MountainMap(),
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		engine.Playfield().Reload(0)
//		for scroll := 0; ; scroll++ {
//			if err := engine.DrawPlayfield(0, scroll); err != nil {
//				log.Fatal(err)
//			}
//		}
//	}
//
// # Transports
//
// The engine writes through the Transport interface, one page at a time.
// Two implementations ship with the module:
//
//   - ssd1306: a periph.io I2C driver for SSD1306 controllers in page
//     addressing mode.
//   - termview: a terminal emulator built on tcell, rendering pages as
//     half-block characters. Useful for development without hardware.
//
// Any type with WriteCommand and WritePage methods works; tests use
// in-memory recorders.
//
// # Sprites
//
// Sprites come in two sizes. Small sprites are 8x8 and occupy one strip
// (16 bytes: 8 mask, 8 pattern). Big sprites are 16x16 and span two strips
// (64 bytes: top mask, bottom mask, top pattern, bottom pattern, 16 bytes
// each). An Object selects its sprite with a type byte: bit 7 chooses the
// size, the low bits index the atlas. Vertical positions off the 8-pixel
// grid are handled by shifting mask and pattern against the strip boundary,
// so sprites move with pixel precision.
//
// # Host-Side Rendering
//
// Render composites a frame into an image1bit.VerticalLSB instead of a
// transport. The image uses the same page layout as the display, which makes
// golden-frame comparisons and screenshot tooling straightforward.
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Input arrives through
// InputQueue, a bounded queue drained between frames, so handlers never
// mutate render state mid-strip.
package oledgfx
