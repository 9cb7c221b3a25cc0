// Package ssd1306 controls a SSD1306 OLED display in page mode via I2C.
//
// The SSD1306 is a 1-bpp OLED controller for up to 128x64 pixels with 1KB of
// internal display RAM. The driver keeps the controller in page addressing
// mode and exposes page writes directly, which is the unit the oledgfx
// engine renders in: no frame buffer exists on either side.
//
// Commands travel with a 0x00 control prefix, display data with 0x40, as the
// controller's two-wire protocol defines.
package ssd1306

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"

	"github.com/etnassoft/oledgfx"
	"github.com/etnassoft/oledgfx/image1bit"
)

// DefaultAddr is the usual SSD1306 I2C slave address.
const DefaultAddr = 0x3C

// Opts is the configuration for the SSD1306 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 128, must be 1..128)
	H int // Height (default: 64, must be a multiple of 8, ≤64)

	// Addr is the I2C slave address; 0 means DefaultAddr.
	Addr uint16

	Rotated bool // 180° rotation
	Invert  bool // Inverted display mode (lit pixels dark)

	// Contrast sets the initial brightness, 0-255. Zero selects the
	// controller default used by the demos.
	Contrast byte

	// Optional hardware reset pin
	RST gpio.PinIO // Reset pin (optional, nil if not used)
}

// Dev is the device handle for the SSD1306 display.
type Dev struct {
	// Communication
	c   conn.Conn  // I2C connection
	rst gpio.PinIO // Reset pin (optional)

	// Display geometry
	rect  image.Rectangle
	pages int

	// Scratch buffer for page writes: control byte + one page of data.
	buf []byte

	// State
	halted bool
}

var _ oledgfx.Transport = (*Dev)(nil)

// NewI2C creates a new SSD1306 device on the given I2C bus.
//
// opts can be nil to use defaults (128x64 display at address 0x3C).
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	// Apply defaults and validate options
	if opts == nil {
		opts = &Opts{W: 128, H: 64}
	} else if opts.W == 0 && opts.H == 0 {
		o := *opts
		o.W, o.H = 128, 64
		opts = &o
	}

	if opts.W <= 0 || opts.W > 128 {
		return nil, errors.New("ssd1306: width must be between 1 and 128")
	}
	if opts.H <= 0 || opts.H%8 != 0 || opts.H > 64 {
		return nil, errors.New("ssd1306: height must be a multiple of 8 between 8 and 64")
	}

	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}

	d := &Dev{
		c:     &i2c.Dev{Bus: b, Addr: addr},
		rst:   opts.RST,
		rect:  image.Rect(0, 0, opts.W, opts.H),
		pages: opts.H / 8,
		buf:   make([]byte, 1, 1+opts.W),
	}

	// Initialize the display
	if err := d.init(opts); err != nil {
		return nil, err
	}

	return d, nil
}

// init sends the initialization sequence that puts the controller into page
// addressing mode.
func (d *Dev) init(opts *Opts) error {
	// Hardware reset sequence (if RST pin is provided)
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST low: %w", err)
		}
		time.Sleep(10 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1306: failed to pull RST high: %w", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	contrast := opts.Contrast
	if contrast == 0 {
		contrast = 0xAA
	}

	// COM pin mapping differs between the 64-row and 32-row panels.
	comPins := byte(0x12)
	if opts.H <= 32 {
		comPins = 0x02
	}

	cmds := []byte{
		0xAE,                // Display OFF
		0xA8, byte(opts.H - 1), // MUX ratio
		0xD3, 0x00, // Display offset
		0x40,           // Display start line 0
		0xDA, comPins,  // COM pin configuration
		0x81, contrast, // Contrast
		0xA4,       // Resume display from RAM contents
		0xD5, 0x80, // Oscillator frequency
		0x8D, 0x14, // Enable charge pump regulator
		0x20, 0x02, // Page addressing mode
	}

	// Segment/COM scan direction: defaults map (0,0) to the top-left pin
	// corner, the rotated variant flips both axes.
	if opts.Rotated {
		cmds = append(cmds, 0xA0, 0xC0)
	} else {
		cmds = append(cmds, 0xA1, 0xC8)
	}

	mode := byte(0xA6) // Normal display
	if opts.Invert {
		mode = 0xA7
	}
	cmds = append(cmds, mode)

	if err := d.WriteCommand(cmds...); err != nil {
		return err
	}

	// Clear display RAM
	if err := d.Fill(0x00); err != nil {
		return err
	}

	// Turn display ON
	return d.WriteCommand(0xAF)
}

// WriteCommand sends raw command bytes with the command control prefix.
func (d *Dev) WriteCommand(cmd ...byte) error {
	buf := make([]byte, 0, 1+len(cmd))
	buf = append(buf, 0x00)
	buf = append(buf, cmd...)
	return d.c.Tx(buf, nil)
}

// WritePage positions the write cursor at the start of the given page and
// streams the data bytes. data must not exceed the display width.
func (d *Dev) WritePage(page int, data []byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	if page < 0 || page >= d.pages {
		return fmt.Errorf("ssd1306: page %d out of range 0..%d", page, d.pages-1)
	}
	if len(data) > d.rect.Dx() {
		return fmt.Errorf("ssd1306: page data %d bytes exceeds width %d", len(data), d.rect.Dx())
	}
	if err := d.setPosition(0, page); err != nil {
		return err
	}
	return d.sendData(data)
}

// setPosition moves the controller's write cursor to column x of the given
// page.
func (d *Dev) setPosition(x, page int) error {
	return d.WriteCommand(
		0xB0|byte(page),          // page address
		byte(x)&0x0F,             // lower column address
		0x10|(byte(x>>4)&0x0F),   // upper column address
	)
}

// sendData streams display data with the data control prefix.
func (d *Dev) sendData(data []byte) error {
	d.buf = append(d.buf[:1], data...)
	d.buf[0] = 0x40
	return d.c.Tx(d.buf, nil)
}

// Fill writes the byte pattern to every page, e.g. all off (0x00) or all on
// (0xFF).
func (d *Dev) Fill(pattern byte) error {
	row := make([]byte, d.rect.Dx())
	for i := range row {
		row[i] = pattern
	}
	for page := 0; page < d.pages; page++ {
		if err := d.setPosition(0, page); err != nil {
			return err
		}
		if err := d.sendData(row); err != nil {
			return err
		}
	}
	return nil
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in VerticalLSB page format.
// The data must be exactly Dx*Dy/8 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, errors.New("ssd1306: halted")
	}
	if len(pixels) != d.rect.Dx()*d.rect.Dy()/8 {
		return 0, errors.New("ssd1306: invalid buffer size")
	}
	w := d.rect.Dx()
	for page := 0; page < d.pages; page++ {
		if err := d.WritePage(page, pixels[page*w:(page+1)*w]); err != nil {
			return page * w, err
		}
	}
	return len(pixels), nil
}

// Draw draws an image onto the display. The dst rectangle specifies the
// destination region on the display; sp is the top-left point of the source
// image to draw from.
//
// A full-size *image1bit.VerticalLSB source takes the fast path and is
// written page by page without conversion.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	zeroPoint := image.Point{}
	if srcImg, ok := src.(*image1bit.VerticalLSB); ok {
		if dst == d.rect && sp == zeroPoint && srcImg.Rect == d.rect {
			_, err := d.Write(srcImg.Pix)
			return err
		}
	}

	// Slow path: convert through a page-layout buffer.
	img := image1bit.NewVerticalLSB(d.rect)
	draw.Draw(img, dst, src, sp, draw.Src)
	_, err := d.Write(img.Pix)
	return err
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	return d.WriteCommand(0x81, contrast)
}

// Invert inverts the display colors (lit pixels become dark and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return errors.New("ssd1306: halted")
	}
	mode := byte(0xA6) // Normal display
	if invert {
		mode = 0xA7 // Inverted display
	}
	return d.WriteCommand(mode)
}

// Halt powers off the display. After calling Halt, the display will not
// respond to further writes until the device is re-initialized.
func (d *Dev) Halt() error {
	err := d.WriteCommand(0xAE) // Display OFF
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
