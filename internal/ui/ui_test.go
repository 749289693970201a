package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConfirmDangerousOperation(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"I AGREE\n", true},
		{"  I AGREE  \n", true},
		{"I AGREE", true},
		{"i agree\n", false},
		{"yes\n", false},
		{"", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := ConfirmDangerousOperation(strings.NewReader(tt.input), &out, "TEST", []string{"something happens"})
		if got != tt.want {
			t.Errorf("input %q: got %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "something happens") {
			t.Errorf("input %q: warning not rendered", tt.input)
		}
		if !tt.want && !strings.Contains(out.String(), "Operation cancelled.") {
			t.Errorf("input %q: cancellation not reported", tt.input)
		}
	}
}

func TestResultRender(t *testing.T) {
	r := NewSuccessResult("Setting updated").
		SetWidth(80).
		AddDetail("Key", "Colormap").
		AddDetail("Value", "gray").
		AddHint("Run 'cellprefs list' to see all settings")

	s := r.String()
	for _, want := range []string{"SUCCESS", "Setting updated", "Colormap", "gray", "cellprefs list"} {
		if !strings.Contains(s, want) {
			t.Errorf("rendered result missing %q:\n%s", want, s)
		}
	}
	if strings.Index(s, "Colormap") > strings.Index(s, "gray") {
		t.Error("details rendered out of order")
	}
}

func TestFailureResultShowsError(t *testing.T) {
	s := NewFailureResult("Could not set value", errors.New("invalid number")).SetWidth(10).Render()
	if !strings.Contains(s, "FAILED") || !strings.Contains(s, "invalid number") {
		t.Errorf("rendered failure:\n%s", s)
	}
}

func TestSwatchWidth(t *testing.T) {
	if s := Swatch("#8fbc8f", 0); !strings.Contains(s, " ") {
		t.Errorf("Swatch with width 0 = %q, want at least one cell", s)
	}
}
