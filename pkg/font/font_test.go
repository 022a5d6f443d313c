package font

import (
	"strings"
	"testing"
)

func TestBasicCoverage(t *testing.T) {
	for r := rune(0x20); r <= 0x7E; r++ {
		if _, ok := Basic.Glyph(r); !ok {
			t.Errorf("Basic.Glyph(%q) missing", r)
		}
	}

	for _, r := range []rune{0x00, 0x1F, 0x7F, 'é', '✓', '世'} {
		if _, ok := Basic.Glyph(r); ok {
			t.Errorf("Basic.Glyph(%U) should be unsupported", r)
		}
	}
}

func TestBasicGlyphA(t *testing.T) {
	b, ok := Basic.Glyph('A')
	if !ok {
		t.Fatal("Basic.Glyph('A') missing")
	}

	want := Bitmap{0x0C, 0x1E, 0x33, 0x33, 0x3F, 0x33, 0x33, 0x00}
	if b != want {
		t.Errorf("Basic.Glyph('A') = %#v, want %#v", b, want)
	}

	// 0x0C: pixels 2 and 3 counted from the left.
	wantTop := "  XX    "
	if got := strings.Split(b.String(), "\n")[0]; got != wantTop {
		t.Errorf("top row = %q, want %q", got, wantTop)
	}
}

func TestBitmapPixel(t *testing.T) {
	b := Bitmap{0x01, 0x80}

	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{1, 0, false},
		{7, 1, true},
		{0, 1, false},
		{-1, 0, false},
		{8, 0, false},
		{0, 8, false},
	}

	for _, tt := range tests {
		if got := b.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBitmapForFallback(t *testing.T) {
	if got := BitmapFor(Basic, '世'); got != Fallback {
		t.Errorf("BitmapFor(unsupported) = %#v, want Fallback", got)
	}
	if !Fallback.IsBlank() {
		t.Error("Fallback should be blank")
	}

	a, _ := Basic.Glyph('A')
	if got := BitmapFor(nil, 'A'); got != a {
		t.Error("BitmapFor(nil, 'A') should use the basic font")
	}
}

func TestChain(t *testing.T) {
	custom := Table{'A': Bitmap{0xFF}}
	src := Chain(nil, custom, Basic)

	if got := BitmapFor(src, 'A'); got != (Bitmap{0xFF}) {
		t.Errorf("Chain should prefer the first source, got %#v", got)
	}

	b, _ := Basic.Glyph('B')
	if got := BitmapFor(src, 'B'); got != b {
		t.Errorf("Chain should fall back to later sources, got %#v", got)
	}

	if _, ok := src.Glyph('世'); ok {
		t.Error("Chain should report missing glyphs")
	}
}
