package diagram

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guna-thota/portfolio/internal/pipeline"
	"github.com/guna-thota/portfolio/internal/portfolio"
)

func TestPipelineHighlightsSelectedStage(t *testing.T) {
	var buf bytes.Buffer
	state := pipeline.NewViewState().SelectStage(pipeline.Warehouse)
	Pipeline(&buf, state, PipelineOptions{Target: "#pipeline"})
	out := buf.String()

	for _, s := range pipeline.Stages() {
		assert.Contains(t, out, `id="stage-`+s.ID()+`"`)
		assert.Contains(t, out, `hx-post="/view/stage/`+s.ID()+`"`)
	}
	assert.Equal(t, 1, strings.Count(out, colorSelected))
	assert.Contains(t, out, "SQL DW")
}

func TestPipelineStaticHasNoHTMXAttributes(t *testing.T) {
	var buf bytes.Buffer
	Pipeline(&buf, pipeline.NewViewState(), PipelineOptions{})
	assert.NotContains(t, buf.String(), "hx-post")
}

func TestArchitectureDrawsEveryNode(t *testing.T) {
	for _, p := range portfolio.Projects() {
		var buf bytes.Buffer
		Architecture(&buf, p)
		out := buf.String()
		for _, n := range p.Nodes {
			assert.Contains(t, out, n.Label, p.Slug)
		}
		assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"), p.Slug)
	}
}

func TestInlineStripsProlog(t *testing.T) {
	out := Inline(func(w io.Writer) {
		Pipeline(w, pipeline.NewViewState(), PipelineOptions{})
	})
	assert.True(t, strings.HasPrefix(out, "<svg"))
}
