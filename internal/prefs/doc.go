// Package prefs is the CellProfiler preferences facade.
//
// A Preferences value owns a config.Backend plus in-process state: cached
// Default Input/Output Folders, the recent-file list, session values such
// as the output file name, and listener registries. Every getter has a
// hard-coded default, so a missing or malformed stored value never fails:
//
//	p, err := prefs.Open(config.Options{Headless: true})
//	if err != nil {
//	    return err
//	}
//	p.TitleFontSize()   // 12 until set
//	p.BackgroundColor() // 143,188,143 until set
//
// # Folders
//
// The Default Input Folder (image directory) and Default Output Folder are
// cached once read or set. Setting the output folder requires an existing
// directory. Listeners are called synchronously in registration order:
//
//	sub := p.AddOutputDirectoryListener(func(e prefs.DirectoryChangedEvent) {
//	    fmt.Println("output folder is now", e.Path)
//	})
//	defer p.RemoveOutputDirectoryListener(sub)
//
// # Paths
//
// AbsolutePath resolves pipeline paths against the two folders. "./x" and
// "&/x" name opposite folders in AbsPathOutput and AbsPathImage modes;
// saved pipelines depend on this, so the convention is kept as is.
//
// # Thread Safety
//
// Preferences is not safe for concurrent use.
package prefs
