package ui

import (
	"fmt"
	"strings"

	"github.com/desertthunder/aurabeat/internal/vibe"
)

// vibeAxis pairs a display label with its vector value.
type vibeAxis struct {
	label string
	value float64
}

// RenderVibe renders the vibe profile as per-axis bars for terminal output.
func RenderVibe(v vibe.Vector) string {
	axes := []vibeAxis{
		{"Energy", v.Energy},
		{"Danceability", v.Danceability},
		{"Valence", v.Valence},
		{"Acousticness", v.Acousticness},
		{"Instrumentalness", v.Instrumentalness},
	}

	var b strings.Builder
	b.WriteString(styles.title.Render("Vibe Profile"))
	b.WriteString("\n")

	for _, axis := range axes {
		b.WriteString(fmt.Sprintf("%-17s %s %.2f\n", axis.label, axisBar(axis.value, 20), axis.value))
	}

	return b.String()
}

// axisBar renders a [0,1] value as a fixed-width bar.
func axisBar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value*float64(width) + 0.5)
	return styles.ok.Render(strings.Repeat("█", filled)) + styles.help.Render(strings.Repeat("░", width-filled))
}
