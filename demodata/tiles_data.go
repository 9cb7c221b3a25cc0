package demodata

// tileData is the shared demo tile set: solid fills, bricks, platform
// glyphs, the quadrants of a question box and two dither gradients. Index 0
// is the empty tile.
var tileData = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xaa, 0xc1, 0xe8, 0xd5, 0xe8, 0xd5, 0xbe, 0x7f,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0x7f, 0x21, 0x7d, 0x3d, 0x7d, 0x3f, 0x55, 0x00,
	0x00, 0x14, 0x14, 0x14, 0x14, 0x14, 0x14, 0x00,
	0x60, 0x30, 0x18, 0x0c, 0x06, 0x03, 0x01, 0x00,
	0x01, 0x03, 0x06, 0x0c, 0x18, 0x30, 0x60, 0x00,
	0x54, 0x00, 0x05, 0x00, 0x51, 0xa8, 0xf1, 0x18,
	0x11, 0xa8, 0x51, 0xe0, 0x01, 0x04, 0x01, 0xfe,
	0xd5, 0x80, 0xa0, 0x80, 0x80, 0x80, 0x80, 0x8a,
	0xb5, 0xb7, 0x81, 0x81, 0x80, 0xa0, 0x80, 0xff,
	0x6a, 0x81, 0x80, 0xb5, 0x8c, 0x81, 0xc0, 0xff,
	0xaa, 0xc1, 0xe8, 0xd5, 0xe8, 0xd5, 0xbe, 0x7f,
	0x2c, 0x5e, 0xa6, 0xe0, 0xc0, 0x0c, 0xcc, 0xee,
	0xae, 0x0e, 0xe0, 0xea, 0xee, 0x0c, 0xe0, 0xee,
	0xde, 0x18, 0xc2, 0x9e, 0xda, 0x74, 0x38, 0x00,
	0xaa, 0x5f, 0xaa, 0x5f, 0xaa, 0x5f, 0xaa, 0x5f,
	0x8a, 0x00, 0x2a, 0x00, 0x8a, 0x00, 0x2a, 0x00,
}
