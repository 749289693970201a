package prefs

import "testing"

func TestEnablingVersionChecksResetsSkipVersion(t *testing.T) {
	p, _ := newTestPrefs(t)

	if err := p.SetCheckNewVersions(false); err != nil {
		t.Fatal(err)
	}
	if err := p.SetSkipVersion(10997); err != nil {
		t.Fatal(err)
	}

	if err := p.SetCheckNewVersions(true); err != nil {
		t.Fatal(err)
	}
	if !p.CheckNewVersions() {
		t.Error("CheckNewVersions() = false after enabling")
	}
	if got := p.SkipVersion(); got != 0 {
		t.Errorf("SkipVersion() = %d, want 0 after off->on", got)
	}
}

func TestVersionChecksOnToOnKeepsSkipVersion(t *testing.T) {
	p, _ := newTestPrefs(t)

	// Default is on.
	if err := p.SetSkipVersion(42); err != nil {
		t.Fatal(err)
	}
	if err := p.SetCheckNewVersions(true); err != nil {
		t.Fatal(err)
	}
	if got := p.SkipVersion(); got != 42 {
		t.Errorf("SkipVersion() = %d, want 42 after on->on", got)
	}

	if err := p.SetCheckNewVersions(true); err != nil {
		t.Fatal(err)
	}
	if got := p.SkipVersion(); got != 42 {
		t.Errorf("SkipVersion() = %d, want 42 after stored on->on", got)
	}
}

func TestDisablingVersionChecksKeepsSkipVersion(t *testing.T) {
	p, _ := newTestPrefs(t)
	_ = p.SetSkipVersion(7)

	if err := p.SetCheckNewVersions(false); err != nil {
		t.Fatal(err)
	}
	if p.CheckNewVersions() {
		t.Error("CheckNewVersions() = true after disabling")
	}
	if got := p.SkipVersion(); got != 7 {
		t.Errorf("SkipVersion() = %d, want 7", got)
	}
}

func TestVersionFlagsFallBackOnMalformedValues(t *testing.T) {
	p, backend := newTestPrefs(t)
	_ = backend.Write(KeyCheckNewVersions, "sometimes")
	_ = backend.Write(KeySkipVersion, "v2")

	if !p.CheckNewVersions() {
		t.Error("CheckNewVersions() should fall back to true")
	}
	if got := p.SkipVersion(); got != 0 {
		t.Errorf("SkipVersion() = %d, want 0", got)
	}
}

func TestShouldAnnounceVersion(t *testing.T) {
	tests := []struct {
		name      string
		check     bool
		skip      int
		current   int
		available int
		want      bool
	}{
		{"newer release", true, 0, 100, 101, true},
		{"same release", true, 0, 100, 100, false},
		{"older release", true, 0, 100, 99, false},
		{"checks disabled", false, 0, 100, 101, false},
		{"skipped release", true, 101, 100, 101, false},
		{"newer than skipped", true, 101, 100, 102, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, backend := newTestPrefs(t)
			_ = backend.WriteBool(KeyCheckNewVersions, tt.check)
			_ = backend.WriteInt(KeySkipVersion, tt.skip)

			if got := p.ShouldAnnounceVersion(tt.current, tt.available); got != tt.want {
				t.Errorf("ShouldAnnounceVersion(%d, %d) = %v, want %v", tt.current, tt.available, got, tt.want)
			}
		})
	}
}
