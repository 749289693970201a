package prefs

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/muurk/cellprefs/internal/pathutil"
)

// DefaultImageDirectory returns the Default Input Folder.
//
// A cached value wins. Without a stored value the user's home directory is
// returned (and not cached), as it is when the stored value cannot be read.
// A stored value that is no longer a directory is replaced by the current
// working directory, which is written back and announced to listeners.
func (p *Preferences) DefaultImageDirectory() string {
	if p.imageDir != nil {
		return *p.imageDir
	}
	if !p.backend.Exists(KeyDefaultImageDirectory) {
		return homeDirectory()
	}

	stored, err := p.backend.Read(KeyDefaultImageDirectory)
	if err != nil {
		// The stored value is unknown, so leave it alone.
		p.logger.Warn("Cannot read Default Input Folder, using home directory", zap.Error(err))
		return homeDirectory()
	}
	if isDir(stored) {
		dir := pathutil.ProperCase(stored)
		p.imageDir = &dir
		return dir
	}

	cwd := currentDirectory()
	p.logger.Warn("Stored Default Input Folder is not a valid directory, switching to current directory",
		zap.String("stored", stored),
		zap.String("current", cwd),
	)
	if err := p.SetDefaultImageDirectory(cwd); err != nil {
		p.logger.Warn("Cannot store Default Input Folder", zap.Error(err))
	}
	return pathutil.ProperCase(cwd)
}

// SetDefaultImageDirectory stores path as the Default Input Folder and
// notifies image directory listeners. The path is not checked.
func (p *Preferences) SetDefaultImageDirectory(path string) error {
	if err := p.write(KeyDefaultImageDirectory, path); err != nil {
		return err
	}
	p.imageDir = &path
	p.imageDirListeners.notify(DirectoryChangedEvent{Path: path})
	return nil
}

// AddImageDirectoryListener registers fn to be called after every change
// of the Default Input Folder.
func (p *Preferences) AddImageDirectoryListener(fn func(DirectoryChangedEvent)) Subscription {
	return p.imageDirListeners.add(fn)
}

// RemoveImageDirectoryListener unregisters a listener added with
// AddImageDirectoryListener.
func (p *Preferences) RemoveImageDirectoryListener(sub Subscription) error {
	return p.imageDirListeners.remove(sub)
}

// DefaultOutputDirectory returns the Default Output Folder: the cached
// value, else the stored value, else the user's home directory.
func (p *Preferences) DefaultOutputDirectory() string {
	if p.outputDir != nil {
		return *p.outputDir
	}
	if !p.backend.Exists(KeyDefaultOutputDirectory) {
		return homeDirectory()
	}

	stored, err := p.backend.Read(KeyDefaultOutputDirectory)
	if err != nil {
		p.logger.Warn("Cannot read Default Output Folder, using home directory", zap.Error(err))
		return homeDirectory()
	}
	dir := pathutil.ProperCase(stored)
	p.outputDir = &dir
	return dir
}

// SetDefaultOutputDirectory stores path as the Default Output Folder and
// notifies output directory listeners. It fails with *InvalidDirectoryError
// if path is not an existing directory; nothing is stored or announced then.
func (p *Preferences) SetDefaultOutputDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &InvalidDirectoryError{Setting: DefaultOutputFolderName, Path: path, Err: err}
	}
	if err := p.write(KeyDefaultOutputDirectory, path); err != nil {
		return err
	}
	p.outputDir = &path
	p.outputDirListeners.notify(DirectoryChangedEvent{Path: path})
	return nil
}

// AddOutputDirectoryListener registers fn to be called after every change
// of the Default Output Folder.
func (p *Preferences) AddOutputDirectoryListener(fn func(DirectoryChangedEvent)) Subscription {
	return p.outputDirListeners.add(fn)
}

// RemoveOutputDirectoryListener unregisters a listener added with
// AddOutputDirectoryListener.
func (p *Preferences) RemoveOutputDirectoryListener(sub Subscription) error {
	return p.outputDirListeners.remove(sub)
}

func homeDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return currentDirectory()
	}
	abs, err := filepath.Abs(home)
	if err != nil {
		return home
	}
	return abs
}

func currentDirectory() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
