package dash

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille cells pack a 2x4 dot matrix per character, giving twice the
// horizontal and four times the vertical resolution of block glyphs.
// Unicode braille starts at U+2800; each dot is one bit.
const brailleBase = '⠀'

// brailleDots maps [row][col] to the bit offset for that dot, rows top
// to bottom.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// sparkBlocks are the 8-level block glyphs, lowest to highest.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a single-row percentage sparkline in the theme's
// graph color. One glyph per resampled point, fixed 0-100 scale so the
// same load always looks the same height.
func Sparkline(data []float64, width int, theme Theme) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	var b strings.Builder
	for _, val := range resample(data, width) {
		idx := clampInt(int(val/100*float64(len(sparkBlocks)-1)), len(sparkBlocks)-1)
		b.WriteRune(sparkBlocks[idx])
	}
	return lipgloss.NewStyle().Foreground(theme.Graph).Render(b.String())
}

// BrailleGraph renders a multi-row braille trend graph. Each character
// column holds 2 data points; columns are colored by the larger of the
// two values so spikes stand out. Data shorter than the width fills
// from the right.
func BrailleGraph(data []float64, width, height int, theme Theme) string {
	if len(data) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	totalDots := height * 4
	targetPoints := width * 2

	points := data
	if len(data) > targetPoints {
		points = resample(data, targetPoints)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	colPeaks := make([]float64, width)
	offset := targetPoints - len(points)
	if offset < 0 {
		offset = 0
	}

	for i, val := range points {
		col := (i + offset) / 2
		if col >= width {
			continue
		}
		if val > colPeaks[col] {
			colPeaks[col] = val
		}

		subCol := (i + offset) % 2
		dotHeight := clampInt(int(val/100*float64(totalDots)), totalDots)
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - dot/4
			if row < 0 {
				continue
			}
			subRow := 3 - dot%4
			grid[row][col] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	lines := make([]string, 0, height)
	for _, row := range grid {
		var b strings.Builder
		for col, ch := range row {
			style := lipgloss.NewStyle().Foreground(theme.MetricColor(colPeaks[col]))
			b.WriteString(style.Render(string(ch)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Gauge renders a horizontal percentage bar. The filled portion shifts
// from healthy through warning to critical along its length.
func Gauge(percent float64, width int, theme Theme) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			pos := float64(i+1) / float64(width) * 100
			b.WriteString(lipgloss.NewStyle().Foreground(theme.MetricColor(pos)).Render("█"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextMuted).Render("░"))
		}
	}
	return b.String()
}

// resample stretches or compresses data to target points. Downsampling
// keeps the max per bucket so short spikes survive; upsampling
// interpolates linearly.
func resample(data []float64, target int) []float64 {
	if len(data) == 0 || target <= 0 {
		return nil
	}
	if len(data) == target {
		return data
	}

	out := make([]float64, target)

	if len(data) == 1 {
		for i := range out {
			out[i] = data[0]
		}
		return out
	}

	if len(data) > target {
		bucket := float64(len(data)) / float64(target)
		for i := 0; i < target; i++ {
			start := int(float64(i) * bucket)
			end := int(float64(i+1) * bucket)
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				start = end - 1
			}
			peak := data[start]
			for j := start + 1; j < end; j++ {
				if data[j] > peak {
					peak = data[j]
				}
			}
			out[i] = peak
		}
		return out
	}

	scale := float64(len(data)-1) / float64(target-1)
	for i := 0; i < target; i++ {
		pos := float64(i) * scale
		idx := int(pos)
		frac := pos - float64(idx)
		if idx >= len(data)-1 {
			out[i] = data[len(data)-1]
		} else {
			out[i] = data[idx]*(1-frac) + data[idx+1]*frac
		}
	}
	return out
}

func clampInt(val, max int) int {
	if val < 0 {
		return 0
	}
	if val > max {
		return max
	}
	return val
}
