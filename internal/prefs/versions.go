package prefs

import (
	"fmt"

	"go.uber.org/zap"
)

// CheckNewVersions reports whether the application should look for new
// releases. Defaults to true.
func (p *Preferences) CheckNewVersions() bool {
	if !p.backend.Exists(KeyCheckNewVersions) {
		return true
	}
	v, err := p.backend.ReadBool(KeyCheckNewVersions)
	if err != nil {
		p.logFallback(KeyCheckNewVersions, "", true, err)
		return true
	}
	return v
}

// SetCheckNewVersions stores the flag. Turning checks on after they were
// off also clears SkipVersion.
func (p *Preferences) SetCheckNewVersions(check bool) error {
	old := p.CheckNewVersions()
	if err := p.backend.WriteBool(KeyCheckNewVersions, check); err != nil {
		return fmt.Errorf("failed to write %s: %w", KeyCheckNewVersions, err)
	}
	p.logger.Debug("Setting written", zap.String("key", KeyCheckNewVersions), zap.Bool("value", check))
	if check && !old {
		return p.SetSkipVersion(0)
	}
	return nil
}

// SkipVersion is the release the user chose not to be told about; 0 means
// none.
func (p *Preferences) SkipVersion() int {
	if !p.backend.Exists(KeySkipVersion) {
		return 0
	}
	v, err := p.backend.ReadInt(KeySkipVersion)
	if err != nil {
		p.logFallback(KeySkipVersion, "", 0, err)
		return 0
	}
	return v
}

func (p *Preferences) SetSkipVersion(version int) error {
	if err := p.backend.WriteInt(KeySkipVersion, version); err != nil {
		return fmt.Errorf("failed to write %s: %w", KeySkipVersion, err)
	}
	p.logger.Debug("Setting written", zap.String("key", KeySkipVersion), zap.Int("value", version))
	return nil
}

// ShouldAnnounceVersion reports whether release available should be
// offered to a user running release current.
func (p *Preferences) ShouldAnnounceVersion(current, available int) bool {
	return p.CheckNewVersions() && available > current && available > p.SkipVersion()
}
