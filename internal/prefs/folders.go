package prefs

import "strings"

// Folder names as they appear in saved pipeline settings.
const (
	DefaultInputFolderName  = "Default Input Folder"
	DefaultOutputFolderName = "Default Output Folder"
)

// StandardizeDefaultFolderNames rewrites the folder choice at slot to the
// current folder names. Older pipelines spell them "Default Image Folder",
// "Default image directory", "Default input directory" or "Default output
// directory". A new slice is returned; values is not modified.
func StandardizeDefaultFolderNames(values []string, slot int) []string {
	out := make([]string, len(values))
	copy(out, values)
	if slot < 0 || slot >= len(out) {
		return out
	}

	v := out[slot]
	switch {
	case strings.HasPrefix(v, "Default Image"),
		strings.HasPrefix(v, "Default image"),
		strings.HasPrefix(v, "Default input"):
		out[slot] = DefaultInputFolderName
	case strings.HasPrefix(v, "Default output"):
		out[slot] = DefaultOutputFolderName
	}
	return out
}
