package prefs

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/muurk/cellprefs/internal/config"
	"github.com/muurk/cellprefs/internal/logging"
)

// Preferences is the settings facade. It owns the backend, the in-process
// caches and the listener registries. Construct one at startup and pass it
// to whatever needs settings.
//
// Preferences is not safe for concurrent use; callers must synchronise.
type Preferences struct {
	backend  config.Backend
	headless bool
	logger   *zap.Logger
	rootDir  string

	// Cached directories shadow backend reads until ResetCache.
	imageDir  *string
	outputDir *string

	recentFiles  []string
	recentLoaded bool

	// Session values, never persisted.
	outputFileName string
	pipelinePath   string
	dataFile       string

	imageDirListeners       listeners[DirectoryChangedEvent]
	outputDirListeners      listeners[DirectoryChangedEvent]
	outputFileNameListeners listeners[OutputFilenameEvent]
}

// Option configures a Preferences in New.
type Option func(*Preferences)

// WithLogger sets the logger. The default is logging.GetLogger().
func WithLogger(l *zap.Logger) Option {
	return func(p *Preferences) { p.logger = l }
}

// WithHeadless marks the preferences as running without an interactive
// settings store. By default this is true only for a *config.Memory backend.
func WithHeadless(headless bool) Option {
	return func(p *Preferences) { p.headless = headless }
}

// WithRootDirectory sets the installation root used for the default module
// directory. The default is the parent of the executable's directory.
func WithRootDirectory(dir string) Option {
	return func(p *Preferences) { p.rootDir = dir }
}

// New returns preferences backed by backend.
func New(backend config.Backend, opts ...Option) *Preferences {
	_, headless := backend.(*config.Memory)
	p := &Preferences{
		backend:        backend,
		headless:       headless,
		logger:         logging.GetLogger(),
		outputFileName: DefaultOutputFileName,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rootDir == "" {
		p.rootDir = installRoot()
	}
	return p
}

// Open selects a backend with config.Open and wraps it.
func Open(opts config.Options, popts ...Option) (*Preferences, error) {
	backend, err := config.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings store: %w", err)
	}
	logging.Info("Settings store opened",
		zap.String("location", backend.Location()),
		zap.Bool("headless", opts.Headless),
	)
	return New(backend, append([]Option{WithHeadless(opts.Headless)}, popts...)...), nil
}

// Backend returns the underlying store.
func (p *Preferences) Backend() config.Backend {
	return p.backend
}

// Headless reports whether the preferences run without an interactive store.
func (p *Preferences) Headless() bool {
	return p.headless
}

// ResetCache drops the cached directories and recent-file list so the next
// read goes to the backend.
func (p *Preferences) ResetCache() {
	p.imageDir = nil
	p.outputDir = nil
	p.recentFiles = nil
	p.recentLoaded = false
}

// RootDirectory returns the installation root.
func (p *Preferences) RootDirectory() string {
	return p.rootDir
}

// ModuleDirectory returns the directory holding analysis modules.
func (p *Preferences) ModuleDirectory() string {
	return p.readString(KeyModuleDirectory, p.defaultModuleDirectory())
}

func (p *Preferences) defaultModuleDirectory() string {
	return filepath.Join(p.rootDir, "Modules")
}

func (p *Preferences) SetModuleDirectory(dir string) error {
	return p.write(KeyModuleDirectory, dir)
}

// ModuleExtension is the file extension of module files.
func (p *Preferences) ModuleExtension() string {
	return ".m"
}

// PluginDirectory returns the per-user plugin directory. There is none in
// headless mode.
func (p *Preferences) PluginDirectory() (string, bool) {
	if p.headless {
		return "", false
	}
	dir, err := config.GetConfigDir()
	if err != nil {
		p.logger.Warn("Cannot determine plugin directory", zap.Error(err))
		return "", false
	}
	return filepath.Join(dir, "plugins"), true
}

// OutputFileName returns the name of the measurements output file.
func (p *Preferences) OutputFileName() string {
	return p.outputFileName
}

// SetOutputFileName changes the output file name and notifies listeners.
func (p *Preferences) SetOutputFileName(name string) {
	p.outputFileName = name
	p.outputFileNameListeners.notify(OutputFilenameEvent{OutputFilename: name})
}

func (p *Preferences) AddOutputFileNameListener(fn func(OutputFilenameEvent)) Subscription {
	return p.outputFileNameListeners.add(fn)
}

func (p *Preferences) RemoveOutputFileNameListener(sub Subscription) error {
	return p.outputFileNameListeners.remove(sub)
}

// CurrentPipelinePath is the path of the pipeline being edited, if any.
func (p *Preferences) CurrentPipelinePath() string {
	return p.pipelinePath
}

func (p *Preferences) SetCurrentPipelinePath(path string) {
	p.pipelinePath = path
}

// DataFile is the data file given on the command line, if any.
func (p *Preferences) DataFile() string {
	return p.dataFile
}

func (p *Preferences) SetDataFile(path string) {
	p.dataFile = path
}

// write stores a string value and logs it.
func (p *Preferences) write(key, value string) error {
	if err := p.backend.Write(key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	p.logger.Debug("Setting written",
		zap.String("key", key),
		zap.String("value", value),
		zap.String("backend", p.backend.Location()),
	)
	return nil
}

// readString returns the stored value for key, or def when it is missing
// or unreadable.
func (p *Preferences) readString(key, def string) string {
	if !p.backend.Exists(key) {
		return def
	}
	v, err := p.backend.Read(key)
	if err != nil {
		p.logger.Warn("Cannot read setting, using default", zap.String("key", key), zap.Error(err))
		return def
	}
	return v
}

// installRoot is the directory above the one holding the executable.
func installRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return ".."
	}
	return filepath.Dir(filepath.Dir(exe))
}
