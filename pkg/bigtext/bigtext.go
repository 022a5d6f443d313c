package bigtext

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bigtext/pkg/buffer"
	"github.com/matzehuels/bigtext/pkg/errors"
	"github.com/matzehuels/bigtext/pkg/font"
	"github.com/matzehuels/bigtext/pkg/layout"
	"github.com/matzehuels/bigtext/pkg/pixel"
	"github.com/matzehuels/bigtext/pkg/raster"
)

// Line is one line of big text. Its Style is layered over the widget style:
// properties set on the line win, unset ones come from the widget.
type Line struct {
	Text  string
	Style lipgloss.Style
}

// Lines splits s on line breaks into lines sharing style.
// "\r\n" is treated as a single break.
func Lines(s string, style lipgloss.Style) []Line {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	parts := strings.Split(s, "\n")
	out := make([]Line, len(parts))
	for i, p := range parts {
		out[i] = Line{Text: p, Style: style}
	}
	return out
}

// Config holds the widget options. The zero value is valid and renders
// nothing: Full density, Left alignment, the built-in font.
type Config struct {
	// Lines are rendered top to bottom.
	Lines []Line

	// Style applies to every cell; line styles override it.
	Style lipgloss.Style

	// Density selects how many font pixels fit in one cell.
	Density pixel.Density

	// Alignment places each line horizontally.
	Alignment layout.Alignment

	// Font supplies the glyphs. Nil means font.Basic.
	Font font.Source
}

// Validate checks the density and alignment.
func (c Config) Validate() error {
	if err := c.Density.Validate(); err != nil {
		return err
	}
	return c.Alignment.Validate()
}

// BigText is a configured widget. It is immutable and safe for concurrent
// use as long as each call paints into its own buffer.
type BigText struct {
	lines      []Line
	style      lipgloss.Style
	alignment  layout.Alignment
	rasterizer *raster.Rasterizer
}

// New validates cfg and builds the widget.
func New(cfg Config) (*BigText, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	packer, err := pixel.NewPacker(cfg.Density)
	if err != nil {
		return nil, err
	}
	src := cfg.Font
	if src == nil {
		src = font.Basic
	}
	return &BigText{
		lines:      append([]Line(nil), cfg.Lines...),
		style:      cfg.Style,
		alignment:  cfg.Alignment,
		rasterizer: raster.New(src, packer),
	}, nil
}

// MustNew is like New but panics on a configuration error. It is meant for
// configurations known at compile time.
func MustNew(cfg Config) *BigText {
	bt, err := New(cfg)
	if err != nil {
		panic(errors.Wrap(errors.ErrCodeInternal, err, "bigtext.MustNew"))
	}
	return bt
}

// plans rasterizes every line with its effective style.
func (bt *BigText) plans() []raster.Plan {
	plans := make([]raster.Plan, len(bt.lines))
	for i, l := range bt.lines {
		plans[i] = bt.rasterizer.Rasterize(l.Text, l.Style.Inherit(bt.style))
	}
	return plans
}

// SizeHint returns the rows and columns the content occupies before any
// clipping.
func (bt *BigText) SizeHint() buffer.Size {
	size := buffer.Size{Rows: len(bt.lines) * bt.rasterizer.GlyphHeight()}
	for _, l := range bt.lines {
		size.Cols = max(size.Cols, raster.Graphemes(l.Text)*bt.rasterizer.GlyphWidth())
	}
	return size
}

// Paint draws the widget into area of buf. The area is clipped to the
// buffer first. Only cells covered by glyphs are written.
func (bt *BigText) Paint(buf *buffer.Buffer, area buffer.Rect) {
	area = area.Intersect(buf.Area)
	if area.IsEmpty() || len(bt.lines) == 0 {
		return
	}
	for _, span := range layout.Layout(bt.plans(), bt.alignment, area.Width, area.Height) {
		for i, c := range span.Cells {
			buf.Set(area.X+span.X+i, area.Y+span.Y, c)
		}
	}
}

// Render paints the widget into a blank width x height buffer and returns
// its styled text. A non-positive width or height is replaced by the
// corresponding SizeHint dimension.
func (bt *BigText) Render(width, height int) string {
	hint := bt.SizeHint()
	if width <= 0 {
		width = hint.Cols
	}
	if height <= 0 {
		height = hint.Rows
	}
	buf := buffer.New(buffer.Rect{Width: width, Height: height})
	bt.Paint(buf, buf.Area)
	return buf.String()
}
