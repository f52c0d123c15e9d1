//go:build tinygo

package pico

import (
	"fmt"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/vovakirdan/binary-breaker/internal/core"
	"github.com/vovakirdan/binary-breaker/internal/display"
)

const (
	oledWidth  = display.Cols * display.CellSize
	oledHeight = display.Rows * display.CellSize

	// glyphBaseline is the font baseline measured from the top of a cell.
	glyphBaseline = 7
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// OLED draws frames on a 128x64 SSD1306 over I2C. Each character cell is
// 8x8 pixels.
type OLED struct {
	dev ssd1306.Device
}

var _ display.Panel = (*OLED)(nil)

// NewOLED brings up the I2C bus on sda/scl and clears the panel.
func NewOLED(bus *machine.I2C, sda, scl machine.Pin, addr uint16) (*OLED, error) {
	err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       sda,
		SCL:       scl,
	})
	if err != nil {
		return nil, fmt.Errorf("pico: oled i2c: %w", err)
	}

	o := &OLED{dev: ssd1306.NewI2C(bus)}
	o.dev.Configure(ssd1306.Config{
		Address: addr,
		Width:   oledWidth,
		Height:  oledHeight,
	})
	o.dev.ClearDisplay()
	return o, nil
}

// Show implements display.Panel. The whole frame is redrawn into the
// driver's buffer and sent in one transfer.
func (o *OLED) Show(s *core.Screen) {
	o.dev.ClearBuffer()
	for row := 0; row < s.Height(); row++ {
		for col := 0; col < s.Width(); col++ {
			o.drawCell(col*display.CellSize, row*display.CellSize, s.Get(col, row))
		}
	}
	o.dev.Display()
}

func (o *OLED) drawCell(x, y int, r rune) {
	if r == ' ' {
		return
	}
	if strokes, ok := display.BoxStrokes(r, display.CellSize); ok {
		for _, st := range strokes {
			st.Points(func(px, py int) {
				o.dev.SetPixel(int16(x+px), int16(y+py), white)
			})
		}
		return
	}
	tinyfont.DrawChar(&o.dev, &proggy.TinySZ8pt7b, int16(x), int16(y+glyphBaseline), r, white)
}
