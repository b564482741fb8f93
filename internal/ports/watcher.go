package ports

// Watcher monitors a fixed set of files and reports changes.
// The adapter (fsnotify) must survive editors that replace files on save
// (rename + create) and must debounce the multiple events a single save
// can produce. Only one Watch call should be active at a time.
type Watcher interface {
	// Watch starts monitoring the given files. onChange is called with the
	// absolute path of each changed file. The callback may be invoked from
	// any goroutine. Returns an error if a file's directory doesn't exist
	// or permissions are insufficient.
	Watch(paths []string, onChange func(path string)) error

	// Stop ends monitoring and releases all resources. After Stop returns,
	// no further onChange calls will fire. Safe to call multiple times.
	Stop() error
}
