package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/kinwave/internal/viz"
	"github.com/san-kum/kinwave/internal/wave"
)

const svgMargin = 60

// ProfileToSVG draws depth against distance with a title and axis labels.
func ProfileToSVG(p *wave.Profile, width, height int, strokeColor string) string {
	if p == nil || p.Len() == 0 {
		return ""
	}

	minX, maxX := p.Coordinates[0], p.Coordinates[p.Len()-1]
	minY, maxY := p.Depth[0], p.Depth[0]
	for _, v := range p.Depth {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	if minY > 0 {
		minY = 0
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	plotW := float64(width - 2*svgMargin)
	plotH := float64(height - 2*svgMargin)
	left := float64(svgMargin)
	bottom := float64(height - svgMargin)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g font-family="sans-serif" font-size="14" fill="#222222" text-anchor="middle">
<text x="%d" y="%d" font-size="18">%s</text>
<text x="%d" y="%d">%s</text>
<text x="%d" y="%d" transform="rotate(-90 %d %d)">%s</text>
<text x="%.1f" y="%.1f">%.0f</text>
<text x="%.1f" y="%.1f">%.0f</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.2f</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.2f</text>
</g>
<path fill="none" stroke="#888888" stroke-width="1" d="M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f"/>
`,
		width, height, width, height,
		width/2, svgMargin/2, viz.PlotTitle,
		width/2, height-svgMargin/4, viz.XAxisLabel,
		svgMargin/3, height/2, svgMargin/3, height/2, viz.YAxisLabel,
		left, bottom+20, minX,
		left+plotW, bottom+20, maxX,
		left-6, bottom, minY,
		left-6, bottom-plotH, maxY,
		left, bottom-plotH, left, bottom, left+plotW, bottom))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i := 0; i < p.Len(); i++ {
		x := left + (p.Coordinates[i]-minX)/rangeX*plotW
		y := bottom - (p.Depth[i]-minY)/rangeY*plotH

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>
`)
	return sb.String()
}

func WriteSVG(w io.Writer, p *wave.Profile, width, height int) error {
	svg := ProfileToSVG(p, width, height, "#1f77b4")
	if svg == "" {
		return fmt.Errorf("no data to plot")
	}
	_, err := io.WriteString(w, svg)
	return err
}
