package theme

import (
	"bytes"
	"testing"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		th, ok := ByName(name)
		if !ok || th.Name != name {
			t.Errorf("ByName(%q) = %v, %v", name, th.Name, ok)
		}
		if th.Primary == "" || th.Overdue == "" {
			t.Errorf("theme %q has unset colors", name)
		}
	}
	if _, ok := ByName(Default); !ok {
		t.Errorf("default theme %q not available", Default)
	}
	if _, ok := ByName("solarized"); ok {
		t.Error("ByName(solarized) found a theme")
	}
}

func TestPlainRendererStripsColor(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(Nord, NewRenderer(&buf, false))
	if got := styles.Checked.Render("done"); got != "done" {
		t.Errorf("Checked.Render() = %q, want plain text", got)
	}
}
