package prefs

import (
	"errors"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// newPathPrefs returns preferences with distinct image and output folders.
func newPathPrefs(t *testing.T) (p *Preferences, imageDir, outputDir string) {
	t.Helper()
	p, _ = newTestPrefs(t)
	imageDir, outputDir = t.TempDir(), t.TempDir()
	if err := p.SetDefaultImageDirectory(imageDir); err != nil {
		t.Fatal(err)
	}
	if err := p.SetDefaultOutputDirectory(outputDir); err != nil {
		t.Fatal(err)
	}
	return p, imageDir, outputDir
}

func TestAbsolutePathFolderMarkers(t *testing.T) {
	p, imageDir, outputDir := newPathPrefs(t)
	sub := filepath.Join("sub", "f.png")

	tests := []struct {
		name string
		path string
		mode PathMode
		want string
	}{
		{"dot in output mode", "./sub/f.png", AbsPathOutput, filepath.Join(outputDir, sub)},
		{"ampersand in output mode", "&/sub/f.png", AbsPathOutput, filepath.Join(imageDir, sub)},
		{"dot in image mode", "./sub/f.png", AbsPathImage, filepath.Join(imageDir, sub)},
		{"ampersand in image mode", "&/sub/f.png", AbsPathImage, filepath.Join(outputDir, sub)},
		{"bare file name, output mode", "f.png", AbsPathOutput, filepath.Join(outputDir, "f.png")},
		{"bare file name, image mode", "f.png", AbsPathImage, filepath.Join(outputDir, "f.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.FromSlash(tt.path)
			got, err := p.AbsolutePath(path, tt.mode)
			if err != nil {
				t.Fatalf("AbsolutePath(%q) error = %v", path, err)
			}
			if got != tt.want {
				t.Errorf("AbsolutePath(%q, %s) = %q, want %q", path, tt.mode, got, tt.want)
			}
		})
	}
}

func TestAbsolutePathURLsUnchanged(t *testing.T) {
	p, _, _ := newPathPrefs(t)

	for _, url := range []string{"http://x", "HTTPS://example.org/a.tif", "ftp://host/plate.zip"} {
		for _, mode := range []PathMode{AbsPathImage, AbsPathOutput} {
			got, err := p.AbsolutePath(url, mode)
			if err != nil {
				t.Fatalf("AbsolutePath(%q) error = %v", url, err)
			}
			if got != url {
				t.Errorf("AbsolutePath(%q, %s) = %q, want unchanged", url, mode, got)
			}
		}
	}
}

func TestAbsolutePathOtherPaths(t *testing.T) {
	p, _, _ := newPathPrefs(t)
	root := t.TempDir()

	abs := filepath.Join(root, "images", "a.tif")
	got, err := p.AbsolutePath(abs, AbsPathImage)
	if err != nil {
		t.Fatal(err)
	}
	if got != abs {
		t.Errorf("AbsolutePath(%q) = %q, want unchanged absolute path", abs, got)
	}

	t.Chdir(root)
	rel := filepath.Join("images", "a.tif")
	got, err = p.AbsolutePath(rel, AbsPathOutput)
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(got) || !strings.HasSuffix(got, rel) {
		t.Errorf("AbsolutePath(%q) = %q, want absolute path ending in %q", rel, got, rel)
	}
}

func TestAbsolutePathMarkerNeedsSeparator(t *testing.T) {
	p, _, outputDir := newPathPrefs(t)

	// ".hidden" has no directory component, so it is a bare file name.
	got, err := p.AbsolutePath(".hidden", AbsPathImage)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(outputDir, ".hidden"); got != want {
		t.Errorf("AbsolutePath(.hidden) = %q, want %q", got, want)
	}
}

func TestAbsolutePathAlternateSeparator(t *testing.T) {
	if runtime.GOOS != "windows" {
		t.Skip("only Windows has an alternate path separator")
	}
	p, imageDir, _ := newPathPrefs(t)

	got, err := p.AbsolutePath("./sub/f.png", AbsPathImage)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(imageDir, "sub", "f.png"); got != want {
		t.Errorf("AbsolutePath() = %q, want %q", got, want)
	}
}

func TestAbsolutePathUnknownMode(t *testing.T) {
	p, _, _ := newPathPrefs(t)

	_, err := p.AbsolutePath("f.png", PathMode("abspath_default"))
	if !errors.Is(err, ErrUnknownPathMode) {
		t.Errorf("error = %v, want ErrUnknownPathMode", err)
	}
}

func TestIsURLPath(t *testing.T) {
	tests := map[string]bool{
		"http://x":          true,
		"https://x":         true,
		"FTP://x":           true,
		"http:relative":     true,
		"file:///tmp/a.tif": false,
		"/data/http/a.tif":  false,
		"httpx://x":         false,
		"":                  false,
	}
	for in, want := range tests {
		if got := IsURLPath(in); got != want {
			t.Errorf("IsURLPath(%q) = %v, want %v", in, got, want)
		}
	}
}
