package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/particles/internal/engine"
)

// FrameToSVG renders the draw instructions of a frame as one square per
// particle on a width x height canvas. Points outside the canvas are dropped.
func FrameToSVG(frame engine.Frame, width, height int, pointSize float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if pointSize <= 0 {
		pointSize = 1
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
<g shape-rendering="crispEdges">
`, width, height, width, height)

	half := pointSize / 2
	for _, d := range frame.Draws {
		if d.X < 0 || d.X >= width || d.Y < 0 || d.Y >= height {
			continue
		}
		fmt.Fprintf(&sb, `<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#%02x%02x%02x"/>
`, float64(d.X)-half, float64(d.Y)-half, pointSize, pointSize, d.Color.R, d.Color.G, d.Color.B)
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SeriesToSVG draws a metric series as a polyline, frame index on the x axis.
func SeriesToSVG(series []float64, width, height int, strokeColor string) string {
	if len(series) < 2 {
		return ""
	}

	minY, maxY := series[0], series[0]
	for _, v := range series {
		minY = min(minY, v)
		maxY = max(maxY, v)
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	rangeY *= 1.2
	stepX := float64(width) / float64(len(series)-1)

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, v := range series {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
