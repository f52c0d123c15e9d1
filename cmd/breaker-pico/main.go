//go:build tinygo

// Command breaker-pico is the Binary Breaker firmware for a Raspberry Pi
// Pico with an SSD1306 OLED on I2C0. Build it with:
//
//	tinygo flash -target=pico ./cmd/breaker-pico
package main

import (
	"context"
	"machine"
	"time"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
	"github.com/vovakirdan/binary-breaker/internal/platform/pico"
)

func main() {
	// Give the USB serial console time to attach
	time.Sleep(2 * time.Second)

	ctrl, err := pico.NewController(breaker.DefaultRules(), time.Now().UnixNano())
	if err != nil {
		println("breaker: hardware setup failed:", err.Error())
		failLoop()
	}

	ctrl.Run(context.Background())
}

// failLoop blinks the onboard LED forever.
func failLoop() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(200 * time.Millisecond)
		led.Low()
		time.Sleep(200 * time.Millisecond)
	}
}
