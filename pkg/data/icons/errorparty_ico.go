package icons

// errorPartyICO holds the tray icon at 16x16 and 32x32 for Windows,
// which loads tray icons from ICO data only.
var errorPartyICO = []byte{
	0x00, 0x00, 0x01, 0x00, 0x02, 0x00, 0x10, 0x10, 0x00, 0x00, 0x01, 0x00,
	0x20, 0x00, 0x68, 0x04, 0x00, 0x00, 0x26, 0x00, 0x00, 0x00, 0x20, 0x20,
	0x00, 0x00, 0x01, 0x00, 0x20, 0x00, 0xA8, 0x10, 0x00, 0x00, 0x8E, 0x04,
	0x00, 0x00, 0x28, 0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x20, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x80, 0x01,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0x01,
	0x00, 0x00, 0x28, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x40, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x00, 0x00,
	0x00, 0x00, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x2F, 0x2F,
	0xD3, 0xFF, 0x2F, 0x2F, 0xD3, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x1B, 0x1B,
	0x8E, 0xFF, 0x1B, 0x1B, 0x8E, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x00,
	0x00, 0x0F, 0xC0, 0x00, 0x00, 0x03, 0x80, 0x00, 0x00, 0x01, 0x80, 0x00,
	0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x80, 0x00, 0x00, 0x01, 0x80, 0x00, 0x00, 0x01, 0xC0, 0x00,
	0x00, 0x03, 0xF0, 0x00, 0x00, 0x0F,
}
