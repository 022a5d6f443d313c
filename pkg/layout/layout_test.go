package layout

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/bigtext/pkg/errors"
	"github.com/matzehuels/bigtext/pkg/font"
	"github.com/matzehuels/bigtext/pkg/pixel"
	"github.com/matzehuels/bigtext/pkg/raster"
)

func plans(t *testing.T, d pixel.Density, lines ...string) []raster.Plan {
	t.Helper()
	p, err := pixel.NewPacker(d)
	if err != nil {
		t.Fatal(err)
	}
	r := raster.New(font.Basic, p)
	out := make([]raster.Plan, len(lines))
	for i, l := range lines {
		out[i] = r.Rasterize(l, lipgloss.NewStyle())
	}
	return out
}

func TestMeasure(t *testing.T) {
	size := Measure(plans(t, pixel.HalfHeight, "Hello", "Hi", ""))
	if size.Rows != 12 || size.Cols != 40 {
		t.Errorf("Measure() = %+v, want 12 rows x 40 cols", size)
	}

	if size := Measure(nil); size.Rows != 0 || size.Cols != 0 {
		t.Errorf("Measure(nil) = %+v, want zero", size)
	}
}

func TestAlignmentOffset(t *testing.T) {
	tests := []struct {
		align       Alignment
		avail, used int
		want        int
	}{
		{Left, 40, 16, 0},
		{Center, 40, 16, 12},
		{Center, 41, 16, 12},
		{Right, 40, 16, 24},
		{Right, 16, 16, 0},
		{Center, 10, 16, 0},
		{Right, 10, 16, 0},
	}

	for _, tt := range tests {
		if got := tt.align.Offset(tt.avail, tt.used); got != tt.want {
			t.Errorf("%s.Offset(%d, %d) = %d, want %d", tt.align, tt.avail, tt.used, got, tt.want)
		}
	}
}

func TestLayoutAlignment(t *testing.T) {
	ps := plans(t, pixel.Full, "Hi") // 16 columns
	const width = 41

	tests := []struct {
		align   Alignment
		leading int
	}{
		{Left, 0},
		{Center, (width - 16) / 2},
		{Right, width - 16},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			spans := Layout(ps, tt.align, width, 8)
			if len(spans) != 8 {
				t.Fatalf("got %d spans, want 8", len(spans))
			}
			for _, s := range spans {
				if s.X != tt.leading {
					t.Errorf("row %d starts at %d, want %d", s.Y, s.X, tt.leading)
				}
				if len(s.Cells) != 16 {
					t.Errorf("row %d has %d cells, want 16", s.Y, len(s.Cells))
				}
			}
		})
	}
}

func TestLayoutClipsWidth(t *testing.T) {
	ps := plans(t, pixel.Full, "Truncated") // 72 columns
	for _, align := range []Alignment{Left, Center, Right} {
		spans := Layout(ps, align, 70, 8)
		for _, s := range spans {
			if s.X != 0 || len(s.Cells) != 70 {
				t.Errorf("%s: row %d at %d with %d cells, want 0 and 70", align, s.Y, s.X, len(s.Cells))
			}
		}
	}
}

func TestLayoutTruncatesHeight(t *testing.T) {
	// Three lines of four rows each in a five row area.
	ps := plans(t, pixel.Quadrant, "One", "Two", "Six")
	spans := Layout(ps, Left, 80, 5)

	if len(spans) != 5 {
		t.Fatalf("got %d spans, want 5", len(spans))
	}
	for i, s := range spans {
		if s.Y != i {
			t.Errorf("span %d at row %d", i, s.Y)
		}
	}
	// The fifth row is the first row of the second line.
	if got, want := spans[4].Cells[0].Rune, ps[1].Rows[0][0].Rune; got != want {
		t.Errorf("row 4 starts with %q, want %q", got, want)
	}
}

func TestLayoutEmpty(t *testing.T) {
	ps := plans(t, pixel.Full, "Hi")
	tests := []struct {
		name          string
		plans         []raster.Plan
		width, height int
	}{
		{"no lines", nil, 80, 24},
		{"zero width", ps, 0, 24},
		{"zero height", ps, 80, 0},
		{"negative", ps, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if spans := Layout(tt.plans, Left, tt.width, tt.height); len(spans) != 0 {
				t.Errorf("got %d spans, want none", len(spans))
			}
		})
	}
}

func TestLayoutEmptyLineKeepsRows(t *testing.T) {
	ps := plans(t, pixel.HalfHeight, "A", "", "B")
	spans := Layout(ps, Left, 80, 24)

	if len(spans) != 8 {
		t.Fatalf("got %d spans, want 8", len(spans))
	}
	if spans[4].Y != 8 {
		t.Errorf("third line starts at row %d, want 8", spans[4].Y)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		input   string
		want    Alignment
		wantErr bool
	}{
		{"left", Left, false},
		{"Center", Center, false},
		{" RIGHT ", Right, false},
		{"justify", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAlignment(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlignment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidAlignment) {
			t.Errorf("ParseAlignment(%q) code = %v", tt.input, errors.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseAlignment(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if err := Alignment(5).Validate(); err == nil {
		t.Error("Alignment(5).Validate() should fail")
	}
}
