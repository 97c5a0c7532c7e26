package icons

// errorPartyPNG is the 32x32 tray icon.
var errorPartyPNG = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x20,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x73, 0x7A, 0x7A, 0xF4, 0x00, 0x00, 0x00,
	0x59, 0x49, 0x44, 0x41, 0x54, 0x78, 0xDA, 0x63, 0x60, 0x40, 0x03, 0x7D,
	0xD2, 0xD2, 0xFF, 0x69, 0x89, 0x19, 0x70, 0x81, 0xCB, 0xFA, 0xFA, 0xFF,
	0xE9, 0x89, 0x07, 0xD4, 0x72, 0x0C, 0x47, 0x0C, 0xA8, 0x03, 0x40, 0xF1,
	0x32, 0x50, 0x0E, 0x00, 0xA7, 0x09, 0x72, 0x1C, 0x80, 0x0B, 0x8C, 0x3A,
	0x60, 0xD4, 0x01, 0xA3, 0x0E, 0x18, 0x75, 0xC0, 0xA8, 0x03, 0x46, 0x1D,
	0x30, 0xEA, 0x00, 0xBA, 0x39, 0x60, 0xC0, 0xDB, 0x03, 0xA3, 0x0E, 0x18,
	0x4D, 0x84, 0xA3, 0x0E, 0xA0, 0xAA, 0x03, 0x46, 0x7B, 0x46, 0x83, 0xA2,
	0x73, 0x3A, 0x90, 0xDD, 0x73, 0x00, 0x13, 0xE1, 0x29, 0x48, 0x44, 0x8F,
	0x9F, 0x66, 0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42,
	0x60, 0x82,
}
