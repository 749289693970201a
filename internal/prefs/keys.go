package prefs

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Backend keys.
const (
	KeyDefaultImageDirectory  = "DefaultImageDirectory"
	KeyDefaultOutputDirectory = "DefaultOutputDirectory"
	KeyTitleFontSize          = "TitleFontSize"
	KeyTitleFontName          = "TitleFontName"
	KeyTableFontName          = "TableFontName"
	KeyTableFontSize          = "TableFontSize"
	KeyBackgroundColor        = "BackgroundColor"
	KeyPixelSize              = "PixelSize"
	KeyColormap               = "Colormap"
	KeyModuleDirectory        = "ModuleDirectory"
	KeyCheckNewVersions       = "CheckForNewVersions"
	KeySkipVersion            = "SkipVersion"
)

// Defaults.
const (
	DefaultTitleFontSize  = 12.0
	DefaultTableFontSize  = 9.0
	DefaultFontName       = "Tahoma"
	DefaultPixelSize      = 1.0
	DefaultColormap       = "jet"
	DefaultOutputFileName = "DefaultOUT.mat"
)

// Kind is the value type of a setting.
type Kind int

const (
	KindString Kind = iota
	KindFloat
	KindInt
	KindBool
	KindColor
	KindDirectory
	// KindOther marks a stored key outside the settings table.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	case KindDirectory:
		return "directory"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type keySpec struct {
	key  string
	kind Kind
	def  func(p *Preferences) string
	get  func(p *Preferences) string
	set  func(p *Preferences, v string) error
}

func constant(s string) func(*Preferences) string {
	return func(*Preferences) string { return s }
}

var specs = []keySpec{
	{
		key: KeyDefaultImageDirectory, kind: KindDirectory,
		def: func(*Preferences) string { return homeDirectory() },
		get: func(p *Preferences) string { return p.DefaultImageDirectory() },
		set: func(p *Preferences, v string) error { return p.SetDefaultImageDirectory(v) },
	},
	{
		key: KeyDefaultOutputDirectory, kind: KindDirectory,
		def: func(*Preferences) string { return homeDirectory() },
		get: func(p *Preferences) string { return p.DefaultOutputDirectory() },
		set: func(p *Preferences, v string) error { return p.SetDefaultOutputDirectory(v) },
	},
	{
		key: KeyTitleFontSize, kind: KindFloat,
		def: constant(formatFloat(DefaultTitleFontSize)),
		get: func(p *Preferences) string { return formatFloat(p.TitleFontSize()) },
		set: floatSetter(func(p *Preferences, f float64) error { return p.SetTitleFontSize(f) }),
	},
	{
		key: KeyTitleFontName, kind: KindString,
		def: constant(DefaultFontName),
		get: func(p *Preferences) string { return p.TitleFontName() },
		set: func(p *Preferences, v string) error { return p.SetTitleFontName(v) },
	},
	{
		key: KeyTableFontSize, kind: KindFloat,
		def: constant(formatFloat(DefaultTableFontSize)),
		get: func(p *Preferences) string { return formatFloat(p.TableFontSize()) },
		set: floatSetter(func(p *Preferences, f float64) error { return p.SetTableFontSize(f) }),
	},
	{
		key: KeyTableFontName, kind: KindString,
		def: constant(DefaultFontName),
		get: func(p *Preferences) string { return p.TableFontName() },
		set: func(p *Preferences, v string) error { return p.SetTableFontName(v) },
	},
	{
		key: KeyBackgroundColor, kind: KindColor,
		def: constant(DefaultBackgroundColor.String()),
		get: func(p *Preferences) string { return p.BackgroundColor().String() },
		set: func(p *Preferences, v string) error {
			c, err := ParseColor(v)
			if err != nil {
				return err
			}
			return p.SetBackgroundColor(c)
		},
	},
	{
		key: KeyPixelSize, kind: KindFloat,
		def: constant(formatFloat(DefaultPixelSize)),
		get: func(p *Preferences) string { return formatFloat(p.PixelSize()) },
		set: floatSetter(func(p *Preferences, f float64) error { return p.SetPixelSize(f) }),
	},
	{
		key: KeyColormap, kind: KindString,
		def: constant(DefaultColormap),
		get: func(p *Preferences) string { return p.DefaultColormap() },
		set: func(p *Preferences, v string) error { return p.SetDefaultColormap(v) },
	},
	{
		key: KeyModuleDirectory, kind: KindString,
		def: func(p *Preferences) string { return p.defaultModuleDirectory() },
		get: func(p *Preferences) string { return p.ModuleDirectory() },
		set: func(p *Preferences, v string) error { return p.SetModuleDirectory(v) },
	},
	{
		key: KeyCheckNewVersions, kind: KindBool,
		def: constant("true"),
		get: func(p *Preferences) string { return strconv.FormatBool(p.CheckNewVersions()) },
		set: func(p *Preferences, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid boolean value %q: %w", v, err)
			}
			return p.SetCheckNewVersions(b)
		},
	},
	{
		key: KeySkipVersion, kind: KindInt,
		def: constant("0"),
		get: func(p *Preferences) string { return strconv.Itoa(p.SkipVersion()) },
		set: func(p *Preferences, v string) error {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid integer value %q: %w", v, err)
			}
			return p.SetSkipVersion(i)
		},
	},
}

func floatSetter(set func(p *Preferences, f float64) error) func(*Preferences, string) error {
	return func(p *Preferences, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", v, err)
		}
		return set(p, f)
	}
}

func lookup(key string) (keySpec, error) {
	for _, s := range specs {
		if s.key == key {
			return s, nil
		}
	}
	return keySpec{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// KeyInfo describes a setting for display purposes.
type KeyInfo struct {
	Key     string
	Kind    Kind
	Value   string
	Default string
	Stored  bool // Whether the backend holds a value
}

// ShowAll returns every scalar setting with its effective value.
func (p *Preferences) ShowAll() []KeyInfo {
	result := make([]KeyInfo, 0, len(specs))
	for _, s := range specs {
		result = append(result, KeyInfo{
			Key:     s.key,
			Kind:    s.kind,
			Value:   s.get(p),
			Default: s.def(p),
			Stored:  p.backend.Exists(s.key),
		})
	}
	return result
}

// Get returns the effective value of key in its display form.
func (p *Preferences) Get(key string) (string, error) {
	s, err := lookup(key)
	if err != nil {
		return "", err
	}
	return s.get(p), nil
}

// Set parses value according to the setting's kind and stores it through
// the typed setter, so side effects such as listener notification apply.
func (p *Preferences) Set(key, value string) error {
	s, err := lookup(key)
	if err != nil {
		return err
	}
	if err := s.set(p, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	return nil
}

// ValidKeys returns the names of every scalar setting.
func ValidKeys() []string {
	keys := make([]string, 0, len(specs))
	for _, s := range specs {
		keys = append(keys, s.key)
	}
	return keys
}

// OtherSettings returns stored keys that are neither in the settings table
// nor recent-file slots, sorted by key, with their raw values. Such keys
// are written by other versions of the application.
func (p *Preferences) OtherSettings() ([]KeyInfo, error) {
	keys, err := p.backend.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list stored settings: %w", err)
	}

	var result []KeyInfo
	for _, key := range keys {
		if _, err := lookup(key); err == nil || isRecentFileKey(key) {
			continue
		}
		raw, err := p.backend.Read(key)
		if err != nil {
			p.logFallback(key, "", "", err)
			continue
		}
		result = append(result, KeyInfo{Key: key, Kind: KindOther, Value: raw, Stored: true})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}

// Reset deletes every stored setting: the settings table, the recent-file
// slots and any other key the backend holds. Caches are dropped and
// listeners are not notified.
func (p *Preferences) Reset() error {
	var errs []error

	keys := ValidKeys()
	stored, err := p.backend.Keys()
	if err != nil {
		errs = append(errs, fmt.Errorf("failed to list stored settings: %w", err))
	}
	for _, key := range stored {
		if _, err := lookup(key); err != nil && !isRecentFileKey(key) {
			keys = append(keys, key)
		}
	}

	for _, key := range keys {
		if err := p.backend.Delete(key); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", key, err))
		}
	}
	if err := p.ClearRecentFiles(); err != nil {
		errs = append(errs, err)
	}
	p.ResetCache()
	return errors.Join(errs...)
}
