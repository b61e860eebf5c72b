// Package display renders monitor snapshots.
//
// FrameRenderer draws the fixed four-line layout into a paletted image sized
// to a Device and pushes it in one call:
//
//	pihole - 192.168.1.2          1d 2h 3m
//	blocking: 123,456 domains
//	piholed: 1,234 of 5,678 21.73%
//	[████████░░░░░░░░░░░░░░░░░░░░░░░]
//
// Devices are the Inky pHAT (InkyDevice, via periph.io) and a terminal
// emulator (MockDevice) that prints half-block cells and can hold the last
// frame on screen until closed.
//
// TextRenderer is the console variant: it prints the same figures, plus the
// effective configuration, as styled lines.
package display
