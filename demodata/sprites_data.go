package demodata

// phantomData is the 8x8 phantom sprite: 8 mask bytes then 8 pattern bytes.
var phantomData = []byte{
	0x7c, 0xf6, 0x66, 0xff, 0x7f, 0xf6, 0x66, 0xfc,
	0x7c, 0xf6, 0x66, 0xff, 0x7f, 0xf6, 0x66, 0xfc,
}

// marioData is a 16x16 plumber sprite: top and bottom mask halves followed
// by the pattern halves.
var marioData = []byte{
	0xff, 0xff, 0xff, 0x0f, 0x07, 0x03, 0x03, 0x03,
	0x03, 0x03, 0x07, 0x07, 0xaf, 0xff, 0xff, 0xff,
	0xff, 0x73, 0x21, 0x00, 0x00, 0x00, 0x00, 0x80,
	0x00, 0x00, 0x00, 0x01, 0x23, 0x7f, 0xff, 0xff,
	0x00, 0x00, 0x00, 0x00, 0x60, 0xb0, 0xf8, 0x98,
	0xb8, 0xd0, 0x50, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x8c, 0xd6, 0xf2, 0x3f, 0x1f,
	0x3c, 0xf2, 0xdc, 0x80, 0x00, 0x00, 0x00, 0x00,
}

// blockData holds four numbered 16x16 test-pattern sprites, 64 bytes each,
// meant to be arranged as the quadrants of a 32x32 figure.
var blockData = []byte{
	0x7f, 0x7f, 0x7b, 0x41, 0x7f, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x45, 0x55, 0x51, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x51, 0x55, 0x45, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x41, 0x55, 0x45, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x7b, 0x41, 0x7f, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x45, 0x55, 0x51, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x51, 0x55, 0x45, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x41, 0x55, 0x45, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x51, 0x55, 0x41, 0x7f, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x41, 0x5d, 0x41, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x5d, 0x55, 0x41, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x71, 0x77, 0x43, 0x7f, 0x00,
	0x7f, 0x7f, 0x51, 0x55, 0x41, 0x7f, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x41, 0x5d, 0x41, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x5d, 0x55, 0x41, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x71, 0x77, 0x43, 0x7f, 0x00,
	0x7f, 0x7f, 0x5d, 0x55, 0x41, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x71, 0x77, 0x43, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x7d, 0x45, 0x71, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x41, 0x55, 0x41, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x5d, 0x55, 0x41, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x71, 0x77, 0x43, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x7d, 0x45, 0x71, 0x7f, 0x7f, 0x00,
	0x7f, 0x7f, 0x41, 0x55, 0x41, 0x7f, 0x7f, 0x00,
	0x7f, 0x7b, 0x41, 0x7f, 0x7b, 0x41, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x45, 0x55, 0x51, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x51, 0x55, 0x45, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x41, 0x55, 0x45, 0x7f, 0x00,
	0x7f, 0x7b, 0x41, 0x7f, 0x7b, 0x41, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x45, 0x55, 0x51, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x51, 0x55, 0x45, 0x7f, 0x00,
	0x7f, 0x41, 0x7f, 0x41, 0x55, 0x45, 0x7f, 0x00,
}
