// Command oledgfx-demo runs the classic tile and sprite demos in a terminal
// instead of on OLED hardware. Arrow keys stand in for the rotary encoder,
// Enter or Space for the encoder click, and q quits.
package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/etnassoft/oledgfx"
	"github.com/etnassoft/oledgfx/demodata"
	"github.com/etnassoft/oledgfx/termview"
)

const (
	screenW = 128
	screenH = 64
)

func main() {
	app := cli.NewApp()

	app.Name = "oledgfx-demo"
	app.Usage = "tile/sprite engine demos on a terminal display"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.IntFlag{
			Name:  "fps",
			Value: 30,
			Usage: "frames per second",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:   "scrolly",
			Usage:  "Vertical tile-map scroll with a big sprite",
			Action: func(c *cli.Context) error { return runDemo(c, scrollY) },
		},
		{
			Name:   "scrollx",
			Usage:  "Horizontal side-scroller level",
			Action: func(c *cli.Context) error { return runDemo(c, scrollX) },
		},
		{
			Name:   "sprites",
			Usage:  "Phantom wave with a four-part big sprite player",
			Action: func(c *cli.Context) error { return runDemo(c, sprites) },
		},
		{
			Name:   "bounce",
			Usage:  "Block bouncing on the tile grid",
			Action: func(c *cli.Context) error { return runDemo(c, bounce) },
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// frameFn advances one demo frame. delta is the net encoder rotation since
// the previous frame, click reports a button press.
type frameFn func(e *oledgfx.Engine, frame, delta int, click bool) error

type demo struct {
	tileMap *oledgfx.TileMap
	setup   func(e *oledgfx.Engine) error
	frame   frameFn
}

func runDemo(c *cli.Context, build func() demo) error {
	d := build()

	queue := oledgfx.NewInputQueue(64)
	view, err := termview.New(screenW, screenH, queue)
	if err != nil {
		return err
	}
	defer view.Close()

	engine, err := oledgfx.NewEngine(view, &oledgfx.Opts{
		W:       screenW,
		H:       screenH,
		Tiles:   demodata.Tiles(),
		Sprites: demodata.Sprites(),
		Map:     d.tileMap,
		Objects: 20,
	})
	if err != nil {
		return err
	}
	if d.setup != nil {
		if err := d.setup(engine); err != nil {
			return err
		}
	}

	fps := c.Int("fps")
	if fps <= 0 {
		fps = 30
	}
	tick := time.NewTicker(time.Second / time.Duration(fps))
	defer tick.Stop()

	frame := 0
	for range tick.C {
		delta, click, quit := 0, false, false
		queue.Drain(func(ev oledgfx.Event) {
			delta += ev.Delta
			click = click || ev.Click
			quit = quit || ev.Quit
		})
		if quit {
			return nil
		}
		if err := d.frame(engine, frame, delta, click); err != nil {
			return err
		}
		view.Flush()
		frame++
	}
	return nil
}

// scrollY is the vertical tile-map scroller: the mountain level slides past
// a stationary big sprite, the encoder nudges the scroll speed.
func scrollY() demo {
	var scroll int
	return demo{
		tileMap: demodata.MountainMap(),
		setup: func(e *oledgfx.Engine) error {
			e.Playfield().Reload(0)
			_, err := e.Objects().Add(oledgfx.Object{X: 56, Y: 40, Type: 0x80})
			return err
		},
		frame: func(e *oledgfx.Engine, frame, delta int, click bool) error {
			// Edge patching tracks at most one tile row per frame, so cap
			// the per-frame step below a tile height.
			if delta > 6 {
				delta = 6
			}
			if delta < -6 {
				delta = -6
			}
			scroll += 1 + delta
			if click || scroll < 0 {
				scroll = 0
				e.Playfield().Reload(scroll)
			}
			// One full map period scrolled: resynchronize to keep the
			// scroll value small.
			if scroll >= 29*8 {
				scroll -= 29 * 8
				e.Playfield().Reload(scroll)
			}
			return e.DrawPlayfield(0, scroll)
		},
	}
}

// scrollX pans across the side-scroller level; the encoder drives the pan
// direction and speed.
func scrollX() demo {
	var scroll, speed int
	speed = 1
	return demo{
		tileMap: demodata.SideScrollMap(),
		setup: func(e *oledgfx.Engine) error {
			e.Playfield().Reload(0)
			_, err := e.Objects().Add(oledgfx.Object{X: 60, Y: 48, Type: 0})
			return err
		},
		frame: func(e *oledgfx.Engine, frame, delta int, click bool) error {
			if delta != 0 {
				speed += delta
			}
			if click {
				speed = 1
			}
			scroll += speed
			return e.DrawPlayfield(scroll, 0)
		},
	}
}

// sprites recreates the phantom wave: fifteen small sprites sweeping over an
// empty playfield, with a four-part big sprite player steered by the
// encoder.
func sprites() demo {
	const player = 15
	dir := 1
	return demo{
		tileMap: demodata.EmptyMap(10),
		setup: func(e *oledgfx.Engine) error {
			e.Playfield().Reload(0)
			for i := 0; i < player; i++ {
				_, err := e.Objects().Add(oledgfx.Object{
					X:    byte((i & 7) * 12),
					Y:    byte((i & 8) * 2),
					Type: 0,
				})
				if err != nil {
					return err
				}
			}
			// Player: blocks 1..4 arranged as a 32x32 figure.
			for _, o := range []oledgfx.Object{
				{X: 40, Y: 32, Type: 0x81},
				{X: 40, Y: 48, Type: 0x82},
				{X: 56, Y: 32, Type: 0x83},
				{X: 56, Y: 48, Type: 0x84},
			} {
				if _, err := e.Objects().Add(o); err != nil {
					return err
				}
			}
			return nil
		},
		frame: func(e *oledgfx.Engine, frame, delta int, click bool) error {
			objs := e.Objects()
			if frame%4 == 0 {
				if objs.At(14).X >= screenW-8 || objs.At(0).X == 0 {
					dir = -dir
				}
				for i := 0; i < player; i++ {
					objs.At(i).X = byte(int(objs.At(i).X) + dir)
				}
			}
			if delta != 0 {
				move := func(o *oledgfx.Object) {
					x := int(o.X) + 2*delta
					if x < 0 {
						x = 0
					}
					if x > screenW-32 {
						x = screenW - 32
					}
					o.X = byte(x)
				}
				move(objs.At(player))
				move(objs.At(player + 1))
				objs.At(player + 2).X = objs.At(player).X + 16
				objs.At(player + 3).X = objs.At(player).X + 16
			}
			return e.DrawPlayfield(0, 0)
		},
	}
}

// bounce moves a solid tile around the grid: the position advances every
// few frames and reflects off the viewport edges.
func bounce() demo {
	x, y := 2, 3
	vx, vy := 1, 1
	return demo{
		tileMap: demodata.EmptyMap(10),
		setup: func(e *oledgfx.Engine) error {
			e.Playfield().Reload(0)
			return nil
		},
		frame: func(e *oledgfx.Engine, frame, delta int, click bool) error {
			if frame%3 != 0 {
				return e.DrawPlayfield(0, 0)
			}
			pf := e.Playfield()
			pf.SetCell(y, x, 0)
			if x+vx < 0 || x+vx > 15 {
				vx = -vx
			}
			// Row 0 is refreshed from the map on every frame, so the block
			// bounces within rows 1..7.
			if y+vy < 1 || y+vy > 7 {
				vy = -vy
			}
			x += vx
			y += vy
			pf.SetCell(y, x, 2)
			return e.DrawPlayfield(0, 0)
		},
	}
}
