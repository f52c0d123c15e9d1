//go:build tinygo

// Package pico drives Binary Breaker on a Raspberry Pi Pico. Six push
// buttons are wired to ground, two status LEDs and a passive buzzer sit on
// their own pins, and a 128x64 SSD1306 OLED on I2C0 shows the panel, which
// is also mirrored to the USB serial console. The high score lives in a
// littlefs filesystem on the on-board flash.
package pico

import "machine"

// GPIO pins
const (
	PinBit0    machine.Pin = machine.GP2
	PinBit1    machine.Pin = machine.GP3
	PinBit2    machine.Pin = machine.GP4
	PinBit3    machine.Pin = machine.GP5
	PinConfirm machine.Pin = machine.GP6
	PinCancel  machine.Pin = machine.GP7

	PinBuzzer machine.Pin = machine.GP10
	PinGreen  machine.Pin = machine.GP14
	PinRed    machine.Pin = machine.GP15

	PinSDA machine.Pin = machine.GP0
	PinSCL machine.Pin = machine.GP1
)

// OLEDAddress is the SSD1306 I2C address.
const OLEDAddress = 0x3C

// bitPins is indexed by bit position.
var bitPins = [...]machine.Pin{PinBit0, PinBit1, PinBit2, PinBit3}
