package table

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// Renderer turns headers and rows into a boxed terminal table.
type Renderer interface {
	Render(headers []string, rows [][]string, opts ...Option) string
}

type renderer struct {
	log logrus.FieldLogger
}

// NewRenderer creates a new table renderer
func NewRenderer(log logrus.FieldLogger) Renderer {
	return &renderer{
		log: log.WithField("component", "table.renderer"),
	}
}

// Option adjusts one table before it is rendered.
type Option func(*tablewriter.Table)

// WithColumnAlignment sets per-column alignment using tablewriter.ALIGN_* values.
func WithColumnAlignment(aligns ...int) Option {
	return func(t *tablewriter.Table) {
		t.SetColumnAlignment(aligns)
	}
}

// WithCaption prints a line of text under the table.
func WithCaption(text string) Option {
	return func(t *tablewriter.Table) {
		t.SetCaption(true, text)
	}
}

func (r *renderer) Render(headers []string, rows [][]string, opts ...Option) string {
	var buf bytes.Buffer

	t := tablewriter.NewWriter(&buf)
	t.SetHeader(headers)
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(true)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetCenterSeparator("")
	t.SetColumnSeparator("│")
	t.SetRowSeparator("─")
	t.SetHeaderLine(true)
	t.SetBorder(true)

	for _, opt := range opts {
		opt(t)
	}

	t.AppendBulk(rows)

	r.log.WithField("rows", len(rows)).Debug("rendering table")

	t.Render()

	return buf.String()
}

var _ Renderer = (*renderer)(nil)
