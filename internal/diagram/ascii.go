// Package diagram draws mix proportion charts: ASCII bars for the
// terminal and image exports via gonum/plot.
package diagram

import (
	"fmt"
	"strings"
)

// MixBars holds the labelled material masses of one design for drawing.
// Materials and Masses are parallel slices.
type MixBars struct {
	Title     string
	Materials []string
	Masses    []float64 // kg/m³
}

// barWidth is the character length of the largest bar.
const barWidth = 40

// DrawMassBars renders horizontal proportion bars scaled to the largest
// mass. A non-positive mass keeps its row and printed value but gets no
// bar, so infeasible designs remain visible.
func DrawMassBars(data MixBars) string {
	var sb strings.Builder

	title := data.Title
	if title == "" {
		title = "MIX PROPORTIONS (kg/m³)"
	}

	sb.WriteString("\n")
	sb.WriteString("  " + title + "\n")
	sb.WriteString("  " + strings.Repeat("─", len([]rune(title))) + "\n\n")

	var labelWidth int
	var maxMass float64
	for i, material := range data.Materials {
		if len(material) > labelWidth {
			labelWidth = len(material)
		}
		if i < len(data.Masses) && data.Masses[i] > maxMass {
			maxMass = data.Masses[i]
		}
	}

	for i, material := range data.Materials {
		if i >= len(data.Masses) {
			break
		}
		mass := data.Masses[i]

		barLen := 0
		if maxMass > 0 && mass > 0 {
			barLen = int(mass / maxMass * barWidth)
		}

		sb.WriteString(fmt.Sprintf("  %-*s │%s▶ %.1f\n", labelWidth, material, strings.Repeat("█", barLen), mass))
	}

	return sb.String()
}

// DrawSummaryBox creates a double-ruled summary box for results.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
