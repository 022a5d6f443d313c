package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/bigtext/pkg/pixel"
)

func TestRunDensities(t *testing.T) {
	var buf bytes.Buffer
	runDensities(&buf)
	out := ansi.Strip(buf.String())

	for _, d := range pixel.Densities() {
		if !strings.Contains(out, d.String()) {
			t.Errorf("table missing density %s", d)
		}
	}

	lines := strings.Split(out, "\n")
	row := func(name string) string {
		for _, l := range lines {
			if strings.Contains(l, " "+name+" ") {
				return l
			}
		}
		t.Fatalf("no row for %s:\n%s", name, out)
		return ""
	}

	if r := row("quadrant"); !strings.Contains(r, "4x4") || !strings.Contains(r, iconSuccess) || !strings.Contains(r, "▗█▖") {
		t.Errorf("quadrant row = %q", r)
	}
	if r := row("sextant"); !strings.Contains(r, "2x3") || !strings.Contains(r, iconError) {
		t.Errorf("sextant row = %q", r)
	}
	if r := row("braille"); !strings.Contains(r, "4x2") || !strings.Contains(r, "⣴⠛⣦") {
		t.Errorf("braille row = %q", r)
	}
}

func TestDensitiesCommand(t *testing.T) {
	isolateEnv(t)
	out, _, err := executeCommand(t, "", "densities")
	if err != nil {
		t.Fatalf("densities error: %v", err)
	}
	if !strings.Contains(out, "half-height") {
		t.Errorf("densities output =\n%s", out)
	}

	if _, _, err := executeCommand(t, "", "densities", "extra"); err == nil {
		t.Error("densities with an argument succeeded, want error")
	}
}
