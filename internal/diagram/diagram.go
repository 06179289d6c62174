// Package diagram renders the pipeline and project architecture diagrams as
// SVG so the page can inline them without client-side drawing code.
package diagram

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/guna-thota/portfolio/internal/pipeline"
	"github.com/guna-thota/portfolio/internal/portfolio"
)

const (
	colorBackdrop = "#0d1117"
	colorNode     = "#21262d"
	colorSelected = "#238636"
	colorStroke   = "#30363d"
	colorEdge     = "#8b949e"
	colorText     = "#f0f6fc"
	colorSubtle   = "#8b949e"

	nodeW   = 120
	nodeH   = 56
	gapX    = 36
	gapY    = 40
	padding = 20
)

// PipelineOptions controls how the stage diagram is drawn.
type PipelineOptions struct {
	// Target is the element HTMX swaps with the response of a stage click.
	// An empty Target renders a static diagram.
	Target string
}

// Pipeline draws the six stages left to right, highlighting the selected one.
func Pipeline(w io.Writer, state pipeline.ViewState, opts PipelineOptions) {
	stages := pipeline.Stages()
	width := padding*2 + len(stages)*nodeW + (len(stages)-1)*gapX
	height := padding*2 + nodeH

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", colorBackdrop))

	for i := range stages[:len(stages)-1] {
		x1 := padding + i*(nodeW+gapX) + nodeW
		y := padding + nodeH/2
		drawArrow(canvas, x1, y, x1+gapX, y)
	}

	for i, s := range stages {
		x := padding + i*(nodeW+gapX)
		y := padding
		fill := colorNode
		if s == state.Stage {
			fill = colorSelected
		}

		attrs := []string{fmt.Sprintf(`id="stage-%s"`, s.ID())}
		if opts.Target != "" {
			attrs = append(attrs,
				fmt.Sprintf(`hx-post="/view/stage/%s"`, s.ID()),
				fmt.Sprintf(`hx-target="%s"`, opts.Target),
				`hx-swap="outerHTML"`,
				`role="button"`,
				`tabindex="0"`,
				`hx-trigger="click, keyup[key=='Enter']"`,
				"cursor:pointer",
			)
		}
		canvas.Group(attrs...)
		canvas.Title(s.Hint())
		canvas.Roundrect(x, y, nodeW, nodeH, 8, 8,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", fill, colorStroke))
		canvas.Text(x+nodeW/2, y+24, s.Label(),
			fmt.Sprintf("fill:%s;font-size:14px;font-family:sans-serif;font-weight:bold;text-anchor:middle", colorText))
		canvas.Text(x+nodeW/2, y+42, s.Hint(),
			fmt.Sprintf("fill:%s;font-size:10px;font-family:sans-serif;text-anchor:middle", colorSubtle))
		canvas.Gend()
	}
	canvas.End()
}

// Architecture draws a project's nodes on their grid positions with edges
// between them.
func Architecture(w io.Writer, p portfolio.Project) {
	cols, rows := 1, 1
	for _, n := range p.Nodes {
		cols = max(cols, n.Column+1)
		rows = max(rows, n.Row+1)
	}
	width := padding*2 + cols*nodeW + (cols-1)*gapX
	height := padding*2 + rows*nodeH + (rows-1)*gapY

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, fmt.Sprintf("fill:%s", colorBackdrop))

	for _, e := range p.Edges {
		from, ok := p.Node(e.From)
		if !ok {
			continue
		}
		to, ok := p.Node(e.To)
		if !ok {
			continue
		}
		x1, y1, x2, y2 := edgePoints(from, to)
		drawArrow(canvas, x1, y1, x2, y2)
	}

	for _, n := range p.Nodes {
		x, y := origin(n)
		canvas.Roundrect(x, y, nodeW, nodeH, 8, 8,
			fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", colorNode, colorStroke))
		canvas.Text(x+nodeW/2, y+nodeH/2+5, n.Label,
			fmt.Sprintf("fill:%s;font-size:13px;font-family:sans-serif;text-anchor:middle", colorText))
	}
	canvas.End()
}

// Inline returns the SVG produced by draw without the XML prolog, ready to be
// embedded in an HTML document.
func Inline(draw func(io.Writer)) string {
	var buf bytes.Buffer
	draw(&buf)
	out := buf.String()
	if i := strings.Index(out, "<svg"); i > 0 {
		out = out[i:]
	}
	return out
}

func origin(n portfolio.ArchNode) (int, int) {
	return padding + n.Column*(nodeW+gapX), padding + n.Row*(nodeH+gapY)
}

// edgePoints picks the facing sides of two boxes.
func edgePoints(from, to portfolio.ArchNode) (x1, y1, x2, y2 int) {
	fx, fy := origin(from)
	tx, ty := origin(to)
	switch {
	case from.Row == to.Row && from.Column < to.Column:
		return fx + nodeW, fy + nodeH/2, tx, ty + nodeH/2
	case from.Row == to.Row:
		return fx, fy + nodeH/2, tx + nodeW, ty + nodeH/2
	case from.Row < to.Row:
		return fx + nodeW/2, fy + nodeH, tx + nodeW/2, ty
	default:
		return fx + nodeW/2, fy, tx + nodeW/2, ty + nodeH
	}
}

func drawArrow(canvas *svg.SVG, x1, y1, x2, y2 int) {
	canvas.Line(x1, y1, x2, y2, fmt.Sprintf("stroke:%s;stroke-width:2", colorEdge))

	const head = 6
	switch {
	case y1 == y2 && x2 >= x1:
		canvas.Polygon([]int{x2, x2 - head, x2 - head}, []int{y2, y2 - head, y2 + head}, "fill:"+colorEdge)
	case y1 == y2:
		canvas.Polygon([]int{x2, x2 + head, x2 + head}, []int{y2, y2 - head, y2 + head}, "fill:"+colorEdge)
	case y2 > y1:
		canvas.Polygon([]int{x2, x2 - head, x2 + head}, []int{y2, y2 - head, y2 - head}, "fill:"+colorEdge)
	default:
		canvas.Polygon([]int{x2, x2 - head, x2 + head}, []int{y2, y2 + head, y2 + head}, "fill:"+colorEdge)
	}
}
