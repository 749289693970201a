package prefs

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestValidKeys(t *testing.T) {
	keys := ValidKeys()
	if len(keys) != len(specs) {
		t.Fatalf("ValidKeys() returned %d keys, want %d", len(keys), len(specs))
	}
	seen := map[string]bool{}
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key %q", k)
		}
		seen[k] = true
	}
	for _, k := range []string{KeyDefaultImageDirectory, KeyBackgroundColor, KeyCheckNewVersions, KeySkipVersion} {
		if !seen[k] {
			t.Errorf("ValidKeys() missing %q", k)
		}
	}
}

func TestGetReturnsDefaults(t *testing.T) {
	p, _ := newTestPrefs(t)

	tests := map[string]string{
		KeyTitleFontSize:    "12",
		KeyTableFontSize:    "9",
		KeyTitleFontName:    "Tahoma",
		KeyBackgroundColor:  "143,188,143",
		KeyPixelSize:        "1",
		KeyColormap:         "jet",
		KeyCheckNewVersions: "true",
		KeySkipVersion:      "0",
	}
	for key, want := range tests {
		got, err := p.Get(key)
		if err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
			continue
		}
		if got != want {
			t.Errorf("Get(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestSetParsesByKind(t *testing.T) {
	p, _ := newTestPrefs(t)

	ok := map[string]string{
		KeyTitleFontSize:    "16",
		KeyPixelSize:        "0.325",
		KeyBackgroundColor:  "10,20,30",
		KeyCheckNewVersions: "false",
		KeySkipVersion:      "3",
		KeyColormap:         "viridis",
	}
	for key, value := range ok {
		if err := p.Set(key, value); err != nil {
			t.Errorf("Set(%q, %q) error = %v", key, value, err)
			continue
		}
		if got, _ := p.Get(key); got != value {
			t.Errorf("Get(%q) = %q after Set %q", key, got, value)
		}
	}

	bad := map[string]string{
		KeyTitleFontSize:    "big",
		KeyBackgroundColor:  "teal",
		KeyCheckNewVersions: "perhaps",
		KeySkipVersion:      "1.5",
	}
	for key, value := range bad {
		if err := p.Set(key, value); err == nil {
			t.Errorf("Set(%q, %q) should fail", key, value)
		}
	}
}

func TestSetDirectoryUsesTypedSetter(t *testing.T) {
	p, _ := newTestPrefs(t)

	notified := 0
	p.AddOutputDirectoryListener(func(DirectoryChangedEvent) { notified++ })

	err := p.Set(KeyDefaultOutputDirectory, filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrInvalidDirectory) {
		t.Errorf("Set(output dir) error = %v, want ErrInvalidDirectory", err)
	}

	if err := p.Set(KeyDefaultOutputDirectory, t.TempDir()); err != nil {
		t.Fatal(err)
	}
	if notified != 1 {
		t.Errorf("listener notified %d times, want 1", notified)
	}
}

func TestUnknownKey(t *testing.T) {
	p, _ := newTestPrefs(t)

	if _, err := p.Get("NoSuchKey"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get() error = %v, want ErrUnknownKey", err)
	}
	if err := p.Set("NoSuchKey", "1"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Set() error = %v, want ErrUnknownKey", err)
	}
}

func TestShowAll(t *testing.T) {
	p, _ := newTestPrefs(t)
	_ = p.SetDefaultColormap("gray")

	infos := p.ShowAll()
	if len(infos) != len(specs) {
		t.Fatalf("ShowAll() returned %d entries, want %d", len(infos), len(specs))
	}
	for _, info := range infos {
		switch info.Key {
		case KeyColormap:
			if !info.Stored || info.Value != "gray" || info.Default != "jet" {
				t.Errorf("Colormap info = %+v", info)
			}
			if info.Kind != KindString {
				t.Errorf("Colormap kind = %v", info.Kind)
			}
		case KeyPixelSize:
			if info.Stored || info.Value != info.Default {
				t.Errorf("PixelSize info = %+v, want default and not stored", info)
			}
		}
	}
}

func TestReset(t *testing.T) {
	p, backend := newTestPrefs(t)
	_ = p.SetTitleFontName("Arial")
	_ = p.SetSkipVersion(5)
	_ = p.SetDefaultOutputDirectory(t.TempDir())
	_ = p.AddRecentFile("a.cppipe")

	if err := p.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if keys, _ := backend.Keys(); len(keys) != 0 {
		t.Errorf("keys after Reset() = %v", keys)
	}
	if got, want := p.DefaultOutputDirectory(), homeDirectory(); got != want {
		t.Errorf("DefaultOutputDirectory() after Reset = %q, want %q", got, want)
	}
	if len(p.RecentFiles()) != 0 {
		t.Error("recent files survived Reset")
	}
}

func TestResetDeletesKeysOutsideTable(t *testing.T) {
	p, backend := newTestPrefs(t)
	_ = backend.Write("ShowAnalysisCompleteDialog", "1")
	_ = backend.Write("RecentFile11", "stale")
	_ = p.SetDefaultColormap("gray")

	if err := p.Reset(); err != nil {
		t.Fatal(err)
	}
	if keys, _ := backend.Keys(); len(keys) != 0 {
		t.Errorf("keys after Reset() = %v, want none", keys)
	}
}

func TestOtherSettings(t *testing.T) {
	p, backend := newTestPrefs(t)
	_ = backend.Write("ZLegacy", "z")
	_ = backend.Write("ALegacy", "a")
	_ = p.SetPixelSize(0.5)
	_ = p.AddRecentFile("a.cppipe")

	others, err := p.OtherSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(others) != 2 {
		t.Fatalf("OtherSettings() = %+v, want two legacy keys", others)
	}
	if others[0].Key != "ALegacy" || others[1].Key != "ZLegacy" {
		t.Errorf("OtherSettings() not sorted: %+v", others)
	}
	if others[0].Value != "a" || !others[0].Stored || others[0].Kind != KindOther {
		t.Errorf("OtherSettings()[0] = %+v", others[0])
	}
}

func TestKindString(t *testing.T) {
	if KindColor.String() != "color" || KindDirectory.String() != "directory" || KindOther.String() != "other" {
		t.Errorf("unexpected kind names %q %q %q", KindColor, KindDirectory, KindOther)
	}
	if Kind(99).String() != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q", Kind(99).String())
	}
}

func TestStandardizeDefaultFolderNames(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Default Image Folder", DefaultInputFolderName},
		{"Default image directory", DefaultInputFolderName},
		{"Default input directory", DefaultInputFolderName},
		{"Default output directory", DefaultOutputFolderName},
		{"Default Output Folder", "Default Output Folder"},
		{"Elsewhere...", "Elsewhere..."},
	}

	for _, tt := range tests {
		values := []string{"keep", tt.in, "keep"}
		got := StandardizeDefaultFolderNames(values, 1)
		if got[1] != tt.want {
			t.Errorf("StandardizeDefaultFolderNames(%q) = %q, want %q", tt.in, got[1], tt.want)
		}
		if got[0] != "keep" || got[2] != "keep" {
			t.Errorf("other slots changed: %v", got)
		}
		if values[1] != tt.in {
			t.Errorf("input slice modified: %v", values)
		}
	}

	if got := StandardizeDefaultFolderNames([]string{"a"}, 5); len(got) != 1 || got[0] != "a" {
		t.Errorf("out-of-range slot = %v", got)
	}
}
