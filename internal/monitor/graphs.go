package monitor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille character rendering for the trend panel.
//
// Braille patterns use a 2x4 dot matrix per character, so each character cell
// holds 2 horizontal data points at 4 vertical levels. Unicode braille starts
// at U+2800 (empty) and composes via bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '\u2800'

// brailleDots maps [row][col] to the bit offset for the braille pattern,
// where row is 0-3 (top to bottom) and col is 0-1 (left to right).
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// SeriesMax returns the largest value across all given series.
// Trend series share axes, so both are scaled against one maximum.
func SeriesMax(series ...[]float64) float64 {
	var maxVal float64
	for _, data := range series {
		for _, v := range data {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}

// RenderBrailleSeries renders one data series as a braille line graph scaled
// to [0, maxVal]. Pass the shared maximum when plotting several series on the
// same axes. Data shorter than the display width fills from the right.
func RenderBrailleSeries(data []float64, width, height int, maxVal float64, color lipgloss.Color) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	totalDots := height * 4
	targetPoints := width * 2

	// Only downsample when the series outgrows the display width.
	resampled := data
	if len(data) > targetPoints {
		resampled = resampleSeries(data, targetPoints)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	// Right-align short series so the newest sample sits at the right edge.
	horizOffset := targetPoints - len(resampled)
	if horizOffset < 0 {
		horizOffset = 0
	}

	for i, val := range resampled {
		normalized := val / maxVal
		if normalized > 1 {
			normalized = 1
		}
		if normalized < 0 {
			normalized = 0
		}
		dotHeight := int(normalized * float64(totalDots))
		if dotHeight > totalDots {
			dotHeight = totalDots
		}

		charCol := (i + horizOffset) / 2
		if charCol >= width {
			continue
		}
		subCol := (i + horizOffset) % 2

		// Fill dots from the bottom up.
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - (dot / 4)
			if row < 0 {
				continue
			}
			subRow := 3 - (dot % 4)
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = style.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

// RenderSplitBar renders the memory composition as a horizontal bar: the used
// share in the used color, the remainder in the free color.
func RenderSplitBar(width int, usedPercent float64) string {
	if width < 1 {
		width = 1
	}
	if usedPercent < 0 {
		usedPercent = 0
	}
	if usedPercent > 100 {
		usedPercent = 100
	}

	used := int(usedPercent / 100 * float64(width))
	if used > width {
		used = width
	}

	usedStyle := lipgloss.NewStyle().Foreground(ColorUsed)
	freeStyle := lipgloss.NewStyle().Foreground(ColorFree)
	return usedStyle.Render(strings.Repeat("█", used)) +
		freeStyle.Render(strings.Repeat("█", width-used))
}

// resampleSeries resamples data to the target size. Downsampling keeps the
// max within each bucket to preserve spikes; upsampling interpolates.
func resampleSeries(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}
	if len(data) == targetSize {
		return data
	}

	result := make([]float64, targetSize)

	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	if len(data) > targetSize {
		bucketSize := float64(len(data)) / float64(targetSize)
		for i := 0; i < targetSize; i++ {
			start := int(float64(i) * bucketSize)
			end := int(float64(i+1) * bucketSize)
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				start = end - 1
			}
			if start < 0 {
				start = 0
			}

			maxVal := data[start]
			for j := start + 1; j < end; j++ {
				if data[j] > maxVal {
					maxVal = data[j]
				}
			}
			result[i] = maxVal
		}
		return result
	}

	// Upsampling: linear interpolation between neighbors.
	scale := float64(len(data)-1) / float64(targetSize-1)
	for i := 0; i < targetSize; i++ {
		pos := float64(i) * scale
		idx := int(pos)
		frac := pos - float64(idx)

		if idx >= len(data)-1 {
			result[i] = data[len(data)-1]
		} else {
			result[i] = data[idx]*(1-frac) + data[idx+1]*frac
		}
	}
	return result
}

// truncateWithEllipsis truncates a string to maxLen runes, adding an
// ellipsis marker when it was cut. Cutting by runes keeps multi-byte
// characters from the serial stream intact.
func truncateWithEllipsis(s string, maxLen int) string {
	if maxLen <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
