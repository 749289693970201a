package prefs

import (
	"errors"
	"fmt"
)

// RecentFileCount is the maximum length of the recent-file list.
const RecentFileCount = 10

// RecentFileKey returns the backend key of slot index (0-based):
// RecentFile1 through RecentFile10.
func RecentFileKey(index int) string {
	return fmt.Sprintf("RecentFile%d", index+1)
}

func isRecentFileKey(key string) bool {
	for i := 0; i < RecentFileCount; i++ {
		if key == RecentFileKey(i) {
			return true
		}
	}
	return false
}

// RecentFiles returns the most-recently-used pipeline files, newest first.
// The list is loaded from the backend on first use; empty slots are skipped.
func (p *Preferences) RecentFiles() []string {
	p.loadRecentFiles()
	out := make([]string, len(p.recentFiles))
	copy(out, p.recentFiles)
	return out
}

func (p *Preferences) loadRecentFiles() {
	if p.recentLoaded {
		return
	}
	p.recentFiles = p.recentFiles[:0]
	for i := 0; i < RecentFileCount; i++ {
		key := RecentFileKey(i)
		if !p.backend.Exists(key) {
			continue
		}
		name, err := p.backend.Read(key)
		if err != nil {
			p.logFallback(key, "", "", err)
			continue
		}
		p.recentFiles = append(p.recentFiles, name)
	}
	p.recentLoaded = true
}

// AddRecentFile puts filename at the front of the list, removing an earlier
// occurrence and dropping the oldest entry past RecentFileCount. All slots
// are rewritten.
func (p *Preferences) AddRecentFile(filename string) error {
	p.loadRecentFiles()

	files := make([]string, 0, RecentFileCount+1)
	files = append(files, filename)
	for _, f := range p.recentFiles {
		if f != filename {
			files = append(files, f)
		}
	}
	if len(files) > RecentFileCount {
		files = files[:RecentFileCount]
	}
	p.recentFiles = files

	var errs []error
	for i, f := range files {
		if err := p.write(RecentFileKey(i), f); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ClearRecentFiles empties the list and removes every slot from the backend.
func (p *Preferences) ClearRecentFiles() error {
	p.recentFiles = nil
	p.recentLoaded = true

	var errs []error
	for i := 0; i < RecentFileCount; i++ {
		if err := p.backend.Delete(RecentFileKey(i)); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", RecentFileKey(i), err))
		}
	}
	return errors.Join(errs...)
}
