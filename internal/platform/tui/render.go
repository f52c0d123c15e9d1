package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/binary-breaker/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	// The panel mimics a cyan-on-black OLED.
	panelStyle = colorStyles[core.ColorCyan].
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Background(lipgloss.Color("0")).
			Padding(0, 1)

	offStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// style returns the lipgloss style for c.
func style(c core.Color) lipgloss.Style {
	s, ok := colorStyles[c]
	if !ok {
		return colorStyles[core.ColorDefault]
	}
	return s
}

// RenderLamp draws one status lamp in color c when lit.
func RenderLamp(label string, on bool, c core.Color) string {
	if on {
		return style(c).Render("●") + " " + style(core.ColorGray).Render(label)
	}
	return offStyle.Render("○") + " " + style(core.ColorGray).Render(label)
}

// RenderBuzzer draws the buzzer with the tone it is sounding.
func RenderBuzzer(freq uint32) string {
	if freq == 0 {
		return offStyle.Render("♪") + " " + style(core.ColorGray).Render("----")
	}
	return style(core.ColorYellow).Render("♪") + " " + style(core.ColorGray).Render(fmt.Sprintf("%dHz", freq))
}

// RenderDevice draws the whole front of the device: title, display panel
// and the row of lamps and buzzer beneath it.
func RenderDevice(frame string, green, red bool, tone uint32) string {
	indicators := strings.Join([]string{
		RenderLamp("OK", green, core.ColorBrightGreen),
		RenderLamp("ERR", red, core.ColorBrightRed),
		RenderBuzzer(tone),
	}, "   ")

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("BINARY BREAKER"),
		"",
		panelStyle.Render(frame),
		"",
		indicators,
	)
}
